package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/careerhub/job-board/internal/domain"
	"github.com/careerhub/job-board/internal/metrics"
	"github.com/careerhub/job-board/internal/usecase"
	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	jobUsecase *usecase.JobUsecase
	logger     *slog.Logger
}

func NewJobHandler(jobUsecase *usecase.JobUsecase, logger *slog.Logger) *JobHandler {
	return &JobHandler{jobUsecase: jobUsecase, logger: logger.With("component", "job_handler")}
}

type createJobRequest struct {
	Title       string `json:"title"       binding:"required"`
	Company     string `json:"company"     binding:"required"`
	Location    string `json:"location"    binding:"required"`
	JobType     string `json:"jobType"     binding:"required"`
	Description string `json:"description" binding:"required"`
}

// updateJobRequest allows any subset of fields; omitted ones keep their
// stored value.
type updateJobRequest struct {
	Title       *string `json:"title"`
	Company     *string `json:"company"`
	Location    *string `json:"location"`
	JobType     *string `json:"jobType"`
	Description *string `json:"description"`
}

type jobResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Company     string    `json:"company"`
	Location    string    `json:"location"`
	JobType     string    `json:"jobType"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func toJobResponse(j *domain.Job) jobResponse {
	return jobResponse{
		ID:          j.ID,
		Title:       j.Title,
		Company:     j.Company,
		Location:    j.Location,
		JobType:     j.JobType,
		Description: j.Description,
		CreatedAt:   j.CreatedAt,
		UpdatedAt:   j.UpdatedAt,
	}
}

// GET /jobs — protected. No server-side filtering; clients filter locally.
func (h *JobHandler) List(c *gin.Context) {
	jobs, err := h.jobUsecase.List(c.Request.Context())
	if err != nil {
		h.logger.ErrorContext(c.Request.Context(), "list jobs", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": errInternalServer})
		return
	}

	resp := make([]jobResponse, 0, len(jobs))
	for _, j := range jobs {
		resp = append(resp, toJobResponse(j))
	}
	c.JSON(http.StatusOK, resp)
}

// GET /jobs/:id — unprotected.
func (h *JobHandler) GetByID(c *gin.Context) {
	id := c.Param("id")

	job, err := h.jobUsecase.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrJobNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": errJobNotFound})
			return
		}
		h.logger.ErrorContext(c.Request.Context(), "get job", "job_id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": errInternalServer})
		return
	}

	c.JSON(http.StatusOK, toJobResponse(job))
}

// POST /jobs — protected.
func (h *JobHandler) Create(c *gin.Context) {
	var req createJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	job, err := h.jobUsecase.CreateJob(c.Request.Context(), usecase.CreateJobInput{
		Title:       req.Title,
		Company:     req.Company,
		Location:    req.Location,
		JobType:     req.JobType,
		Description: req.Description,
	})
	if err != nil {
		h.logger.ErrorContext(c.Request.Context(), "create job", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": errInternalServer})
		return
	}

	metrics.JobsCreatedTotal.Inc()
	c.JSON(http.StatusCreated, toJobResponse(job))
}

// PUT /jobs/:id — unprotected.
func (h *JobHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var req updateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	job, err := h.jobUsecase.UpdateJob(c.Request.Context(), id, domain.JobPatch{
		Title:       req.Title,
		Company:     req.Company,
		Location:    req.Location,
		JobType:     req.JobType,
		Description: req.Description,
	})
	if err != nil {
		if errors.Is(err, domain.ErrJobNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": errJobNotFound})
			return
		}
		h.logger.ErrorContext(c.Request.Context(), "update job", "job_id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": errInternalServer})
		return
	}

	c.JSON(http.StatusOK, toJobResponse(job))
}

// DELETE /jobs/:id — unprotected. Deleting a missing id is 404, so a repeat
// delete fails rather than reporting success.
func (h *JobHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	if err := h.jobUsecase.DeleteJob(c.Request.Context(), id); err != nil {
		if errors.Is(err, domain.ErrJobNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": errJobNotFound})
			return
		}
		h.logger.ErrorContext(c.Request.Context(), "delete job", "job_id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": errInternalServer})
		return
	}

	metrics.JobsDeletedTotal.Inc()
	c.JSON(http.StatusOK, gin.H{"message": "Job deleted"})
}
