package usecase

import (
	"context"
	"fmt"

	"github.com/careerhub/job-board/internal/domain"
	"github.com/careerhub/job-board/internal/repository"
)

type JobUsecase struct {
	repo repository.JobRepository
}

func NewJobUsecase(repo repository.JobRepository) *JobUsecase {
	return &JobUsecase{repo: repo}
}

type CreateJobInput struct {
	Title       string
	Company     string
	Location    string
	JobType     string
	Description string
}

func (u *JobUsecase) CreateJob(ctx context.Context, input CreateJobInput) (*domain.Job, error) {
	job := &domain.Job{
		Title:       input.Title,
		Company:     input.Company,
		Location:    input.Location,
		JobType:     input.JobType,
		Description: input.Description,
	}

	created, err := u.repo.Create(ctx, job)
	if err != nil {
		return nil, fmt.Errorf("create job: %w", err)
	}
	return created, nil
}

func (u *JobUsecase) GetByID(ctx context.Context, id string) (*domain.Job, error) {
	job, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return job, nil
}

// List returns every posting. Filtering by keyword/type happens client-side.
func (u *JobUsecase) List(ctx context.Context) ([]*domain.Job, error) {
	jobs, err := u.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}
	return jobs, nil
}

func (u *JobUsecase) UpdateJob(ctx context.Context, id string, patch domain.JobPatch) (*domain.Job, error) {
	job, err := u.repo.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	return job, nil
}

func (u *JobUsecase) DeleteJob(ctx context.Context, id string) error {
	return u.repo.Delete(ctx, id)
}
