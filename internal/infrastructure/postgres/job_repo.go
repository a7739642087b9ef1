package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/careerhub/job-board/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type JobRepository struct {
	pool *pgxpool.Pool
}

func NewJobRepository(pool *pgxpool.Pool) *JobRepository {
	return &JobRepository{pool: pool}
}

func (r *JobRepository) Create(ctx context.Context, job *domain.Job) (*domain.Job, error) {
	query := `
		INSERT INTO jobs (title, company, location, job_type, description)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, title, company, location, job_type, description,
		          created_at, updated_at`

	row := r.pool.QueryRow(ctx, query,
		job.Title,
		job.Company,
		job.Location,
		job.JobType,
		job.Description,
	)
	return scanJob(row)
}

func (r *JobRepository) GetByID(ctx context.Context, id string) (*domain.Job, error) {
	query := `
		SELECT id, title, company, location, job_type, description,
		       created_at, updated_at
		FROM jobs
		WHERE id = $1`

	return scanJob(r.pool.QueryRow(ctx, query, id))
}

func (r *JobRepository) List(ctx context.Context) ([]*domain.Job, error) {
	query := `
		SELECT id, title, company, location, job_type, description,
		       created_at, updated_at
		FROM jobs
		ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}
	defer rows.Close()

	return collectJobs(rows)
}

// Update replaces only the fields present in the patch. A single UPDATE with
// COALESCE keeps the per-row write atomic, so no transaction is needed.
func (r *JobRepository) Update(ctx context.Context, id string, patch domain.JobPatch) (*domain.Job, error) {
	query := `
		UPDATE jobs
		SET    title       = COALESCE($2, title),
		       company     = COALESCE($3, company),
		       location    = COALESCE($4, location),
		       job_type    = COALESCE($5, job_type),
		       description = COALESCE($6, description),
		       updated_at  = NOW()
		WHERE id = $1
		RETURNING id, title, company, location, job_type, description,
		          created_at, updated_at`

	row := r.pool.QueryRow(ctx, query, id,
		patch.Title,
		patch.Company,
		patch.Location,
		patch.JobType,
		patch.Description,
	)
	return scanJob(row)
}

func (r *JobRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		if isInvalidUUID(err) {
			return domain.ErrJobNotFound
		}
		return fmt.Errorf("delete job: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrJobNotFound
	}
	return nil
}

func (r *JobRepository) ListCreatedSince(ctx context.Context, since time.Time) ([]*domain.Job, error) {
	query := `
		SELECT id, title, company, location, job_type, description,
		       created_at, updated_at
		FROM jobs
		WHERE created_at >= $1
		ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, since)
	if err != nil {
		return nil, fmt.Errorf("list jobs since: %w", err)
	}
	defer rows.Close()

	return collectJobs(rows)
}

func collectJobs(rows pgx.Rows) ([]*domain.Job, error) {
	jobs := []*domain.Job{}
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, j)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate jobs: %w", err)
	}
	return jobs, nil
}

func scanJob(row pgx.Row) (*domain.Job, error) {
	var j domain.Job
	err := row.Scan(
		&j.ID,
		&j.Title,
		&j.Company,
		&j.Location,
		&j.JobType,
		&j.Description,
		&j.CreatedAt,
		&j.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isInvalidUUID(err) {
			return nil, domain.ErrJobNotFound
		}
		return nil, fmt.Errorf("scan job: %w", err)
	}
	return &j, nil
}

// isInvalidUUID treats a non-UUID path parameter as "no such row" so the API
// answers 404 instead of 500 for ids like /jobs/abc.
func isInvalidUUID(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "22P02"
}
