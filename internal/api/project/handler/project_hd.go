package projectHandler

import (
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"

	projects "PortfolioGolang/internal/api/project"
	contextPkg "PortfolioGolang/pkg/context"
	"PortfolioGolang/pkg/handlerUtil"
	"PortfolioGolang/pkg/log"
)

func (h *ProjectHandler) ListProjects(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing list projects request")

	page, _ := strconv.Atoi(ctx.Query("page", "1"))
	perPage, _ := strconv.Atoi(ctx.Query("per_page", "0"))

	result, err := h.projectService.ListProjects(c, page, perPage)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "list_projects")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, result)
	}
}

func (h *ProjectHandler) GetProjectBySlug(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing get project request")

	slug := ctx.Params("slug")
	if slug == "" {
		return errHandler.HandleValidationError(ctx, requestID,
			errors.New("project slug is required"), ctx.Path())
	}

	result, err := h.projectService.GetProjectBySlug(c, slug)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_project")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, result)
	}
}

func (h *ProjectHandler) CreateProject(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 30*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing create project request")

	req := projects.CreateProjectRequest{
		Title:            ctx.FormValue("title"),
		Description:      ctx.FormValue("description"),
		ShortDescription: ctx.FormValue("short_description"),
		ProjectType:      ctx.FormValue("project_type"),
		Version:          ctx.FormValue("version"),
		Status:           ctx.FormValue("status"),
		Tags:             ctx.FormValue("tags"),
		Technologies:     ctx.FormValue("technologies"),
		ExternalURL:      ctx.FormValue("external_url"),
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	// Both files are optional
	thumbnail, _ := ctx.FormFile("thumbnail")
	download, _ := ctx.FormFile("download_file")

	result, err := h.projectService.CreateProject(c, req, thumbnail, download)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "create_project")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusCreated, result)
	}
}

func (h *ProjectHandler) UpdateProject(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 30*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing update project request")

	slug := ctx.Params("slug")
	if slug == "" {
		return errHandler.HandleValidationError(ctx, requestID,
			errors.New("project slug is required"), ctx.Path())
	}

	req := projects.UpdateProjectRequest{
		Title:            ctx.FormValue("title"),
		Description:      ctx.FormValue("description"),
		ShortDescription: ctx.FormValue("short_description"),
		ProjectType:      ctx.FormValue("project_type"),
		Version:          ctx.FormValue("version"),
		Status:           ctx.FormValue("status"),
		Tags:             ctx.FormValue("tags"),
		Technologies:     ctx.FormValue("technologies"),
		ExternalURL:      ctx.FormValue("external_url"),
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	thumbnail, _ := ctx.FormFile("thumbnail")
	download, _ := ctx.FormFile("download_file")

	result, err := h.projectService.UpdateProject(c, slug, req, thumbnail, download)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "update_project")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, result)
	}
}

func (h *ProjectHandler) DeleteProject(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing delete project request")

	slug := ctx.Params("slug")
	if slug == "" {
		return errHandler.HandleValidationError(ctx, requestID,
			errors.New("project slug is required"), ctx.Path())
	}

	if err := h.projectService.DeleteProject(c, slug); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "delete_project")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, fiber.Map{
			"message": "Project deleted successfully",
		})
	}
}

func (h *ProjectHandler) GetDownload(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing project download request")

	slug := ctx.Params("slug")
	if slug == "" {
		return errHandler.HandleValidationError(ctx, requestID,
			errors.New("project slug is required"), ctx.Path())
	}

	result, err := h.projectService.GetDownloadURL(c, slug)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "project_download")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, result)
	}
}

func (h *ProjectHandler) ListAchievements(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing list achievements request")

	result, err := h.projectService.ListAchievements(c)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "list_achievements")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, result)
	}
}
