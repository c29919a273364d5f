package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"designmentor.app/api/internal/http/dto"
	"designmentor.app/api/internal/http/middleware"
	"designmentor.app/api/internal/service"
	"designmentor.app/api/internal/store"
	"github.com/gin-gonic/gin"
)

type ProjectHandler struct {
	projectService service.ProjectService
}

func NewProjectHandler(projectService service.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectService: projectService}
}

func (h *ProjectHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()
	user := middleware.GetUser(ctx)

	var req dto.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.WarnContext(ctx, "invalid request body", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	project, err := h.projectService.Create(ctx, user.ID, req.Title, req.Description, req.DesignContent)
	if err != nil {
		slog.ErrorContext(ctx, "failed to create project", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create project"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToProjectResponse(project))
}

func (h *ProjectHandler) List(c *gin.Context) {
	ctx := c.Request.Context()
	user := middleware.GetUser(ctx)

	limit := queryInt32(c, "limit", 0)
	offset := queryInt32(c, "offset", 0)

	projects, err := h.projectService.List(ctx, user.ID, limit, offset)
	if err != nil {
		slog.ErrorContext(ctx, "failed to list projects", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list projects"})
		return
	}

	resp := dto.ListProjectsResponse{Projects: make([]dto.ProjectResponse, len(projects))}
	for i := range projects {
		resp.Projects[i] = *dto.ToProjectResponse(&projects[i])
	}

	c.JSON(http.StatusOK, resp)
}

func (h *ProjectHandler) Get(c *gin.Context) {
	ctx := c.Request.Context()
	user := middleware.GetUser(ctx)

	projectID, ok := pathID(c, "id")
	if !ok {
		return
	}

	project, err := h.projectService.Get(ctx, user.ID, projectID)
	if err != nil {
		respondProjectError(c, err, "failed to get project")
		return
	}

	c.JSON(http.StatusOK, dto.ToProjectResponse(project))
}

func (h *ProjectHandler) GetFull(c *gin.Context) {
	ctx := c.Request.Context()
	user := middleware.GetUser(ctx)

	projectID, ok := pathID(c, "id")
	if !ok {
		return
	}

	full, err := h.projectService.GetFull(ctx, user.ID, projectID)
	if err != nil {
		respondProjectError(c, err, "failed to get project")
		return
	}

	c.JSON(http.StatusOK, dto.ProjectFullResponse{
		Project:     *dto.ToProjectResponse(full.Project),
		Design:      *dto.ToDesignResponse(full.Design),
		Suggestions: dto.ToSuggestionResponses(full.Suggestions),
	})
}

func (h *ProjectHandler) Update(c *gin.Context) {
	ctx := c.Request.Context()
	user := middleware.GetUser(ctx)

	projectID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.WarnContext(ctx, "invalid request body", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	project, err := h.projectService.Update(ctx, user.ID, projectID, req.Title, req.Description)
	if err != nil {
		respondProjectError(c, err, "failed to update project")
		return
	}

	c.JSON(http.StatusOK, dto.ToProjectResponse(project))
}

func (h *ProjectHandler) Delete(c *gin.Context) {
	ctx := c.Request.Context()
	user := middleware.GetUser(ctx)

	projectID, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.projectService.Delete(ctx, user.ID, projectID); err != nil {
		respondProjectError(c, err, "failed to delete project")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "project deleted"})
}

func (h *ProjectHandler) GetDesign(c *gin.Context) {
	ctx := c.Request.Context()
	user := middleware.GetUser(ctx)

	projectID, ok := pathID(c, "id")
	if !ok {
		return
	}

	design, err := h.projectService.GetDesign(ctx, user.ID, projectID)
	if err != nil {
		respondProjectError(c, err, "failed to get design")
		return
	}

	c.JSON(http.StatusOK, dto.ToDesignResponse(design))
}

func (h *ProjectHandler) UpdateDesign(c *gin.Context) {
	ctx := c.Request.Context()
	user := middleware.GetUser(ctx)

	projectID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateDesignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.WarnContext(ctx, "invalid request body", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	design, err := h.projectService.UpdateDesign(ctx, user.ID, projectID, req.Content)
	if err != nil {
		respondProjectError(c, err, "failed to update design")
		return
	}

	c.JSON(http.StatusOK, dto.ToDesignResponse(design))
}

// respondProjectError maps service errors for project-scoped routes.
// Ownership failures surface as 404 so project IDs are not probeable.
func respondProjectError(c *gin.Context, err error, msg string) {
	ctx := c.Request.Context()
	switch {
	case errors.Is(err, store.ErrNotFound), errors.Is(err, service.ErrForbidden):
		c.JSON(http.StatusNotFound, gin.H{"error": "project not found"})
	default:
		slog.ErrorContext(ctx, msg, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": msg})
	}
}

func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return 0, false
	}
	return id, true
}

func queryInt32(c *gin.Context, name string, fallback int32) int32 {
	raw := c.Query(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || v < 0 {
		return fallback
	}
	return int32(v)
}
