package httptransport

import (
	"log/slog"
	"net/http"

	"github.com/careerhub/job-board/internal/repository"
	"github.com/careerhub/job-board/internal/token"
	"github.com/careerhub/job-board/internal/transport/http/handler"
	"github.com/careerhub/job-board/internal/transport/http/middleware"
	"github.com/gin-gonic/gin"

	sloggin "github.com/samber/slog-gin"
)

func NewRouter(
	logger *slog.Logger,
	authHandler *handler.AuthHandler,
	jobHandler *handler.JobHandler,
	tokens *token.Service,
	users repository.UserRepository,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Security())
	r.Use(sloggin.New(logger))
	r.Use(middleware.Metrics())

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "job board API")
	})

	auth := r.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)

	authMW := middleware.Auth(tokens, users)

	// Only list and create sit behind the gatekeeper; get/update/delete are
	// open. This mirrors the shipped API exactly — see DESIGN.md before
	// changing the policy.
	jobs := r.Group("/jobs")
	jobs.GET("", authMW, jobHandler.List)
	jobs.POST("", authMW, jobHandler.Create)
	jobs.GET("/:id", jobHandler.GetByID)
	jobs.PUT("/:id", jobHandler.Update)
	jobs.DELETE("/:id", jobHandler.Delete)

	return r
}
