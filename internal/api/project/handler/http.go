package projectHandler

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	projectService "PortfolioGolang/internal/api/project/service"
	"PortfolioGolang/internal/middleware"
)

type ProjectHandler struct {
	log            *logrus.Logger
	projectService projectService.IProjectService
	validator      *validator.Validate
	middleware     middleware.Middleware
}

func New(
	log *logrus.Logger,
	ps projectService.IProjectService,
	validate *validator.Validate,
	middleware middleware.Middleware,
) *ProjectHandler {
	return &ProjectHandler{
		log:            log,
		projectService: ps,
		validator:      validate,
		middleware:     middleware,
	}
}

func (h *ProjectHandler) Start(srv fiber.Router) {
	projects := srv.Group("/projects")
	projects.Get("/", h.ListProjects)
	projects.Post("/", h.middleware.NewTokenMiddleware, h.CreateProject)
	projects.Get("/:slug", h.GetProjectBySlug)
	projects.Put("/:slug", h.middleware.NewTokenMiddleware, h.UpdateProject)
	projects.Delete("/:slug", h.middleware.NewTokenMiddleware, h.DeleteProject)
	projects.Get("/:slug/download", h.middleware.NewTokenMiddleware, h.GetDownload)

	achievements := srv.Group("/achievements")
	achievements.Get("/", h.ListAchievements)
}
