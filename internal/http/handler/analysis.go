package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"designmentor.app/api/internal/http/dto"
	"designmentor.app/api/internal/http/middleware"
	"designmentor.app/api/internal/model"
	"designmentor.app/api/internal/service"
	"designmentor.app/api/internal/store"
	"github.com/gin-gonic/gin"
)

type AnalysisHandler struct {
	analysisService service.AnalysisService
}

func NewAnalysisHandler(analysisService service.AnalysisService) *AnalysisHandler {
	return &AnalysisHandler{analysisService: analysisService}
}

func (h *AnalysisHandler) Run(c *gin.Context) {
	ctx := c.Request.Context()
	user := middleware.GetUser(ctx)

	projectID, ok := pathID(c, "id")
	if !ok {
		return
	}

	result, err := h.analysisService.Run(ctx, user.ID, projectID)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound), errors.Is(err, service.ErrForbidden):
			c.JSON(http.StatusNotFound, gin.H{"error": "project not found"})
		case errors.Is(err, service.ErrAnalysisInFlight):
			c.JSON(http.StatusConflict, gin.H{"error": "analysis already in progress for this project"})
		case errors.Is(err, store.ErrConflict):
			// Another run snapshotted this version first.
			c.JSON(http.StatusConflict, gin.H{"error": "analysis already in progress for this project"})
		default:
			slog.ErrorContext(ctx, "analysis failed", "error", err, "project_id", projectID)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "analysis failed"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToAnalysisResponse(result))
}

func (h *AnalysisHandler) Evolution(c *gin.Context) {
	ctx := c.Request.Context()
	user := middleware.GetUser(ctx)

	projectID, ok := pathID(c, "id")
	if !ok {
		return
	}

	evolution, err := h.analysisService.Evolution(ctx, user.ID, projectID)
	if err != nil {
		respondProjectError(c, err, "failed to get evolution")
		return
	}

	c.JSON(http.StatusOK, dto.ToEvolutionResponse(evolution))
}

func (h *AnalysisHandler) ListSuggestions(c *gin.Context) {
	ctx := c.Request.Context()
	user := middleware.GetUser(ctx)

	projectID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var filter *model.SuggestionStatus
	if raw := c.Query("status"); raw != "" {
		status := model.SuggestionStatus(strings.ToUpper(raw))
		switch status {
		case model.SuggestionStatusOpen, model.SuggestionStatusAddressed, model.SuggestionStatusIgnored:
			filter = &status
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": "status must be OPEN, ADDRESSED, or IGNORED"})
			return
		}
	}

	suggestions, err := h.analysisService.ListSuggestions(ctx, user.ID, projectID)
	if err != nil {
		respondProjectError(c, err, "failed to list suggestions")
		return
	}

	if filter != nil {
		filtered := suggestions[:0]
		for _, s := range suggestions {
			if s.Status == *filter {
				filtered = append(filtered, s)
			}
		}
		suggestions = filtered
	}

	c.JSON(http.StatusOK, dto.ListSuggestionsResponse{
		Suggestions: dto.ToSuggestionResponses(suggestions),
	})
}

func (h *AnalysisHandler) UpdateSuggestionStatus(c *gin.Context) {
	ctx := c.Request.Context()
	user := middleware.GetUser(ctx)

	suggestionID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateSuggestionStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.WarnContext(ctx, "invalid request body", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "status must be ADDRESSED or IGNORED"})
		return
	}

	suggestion, err := h.analysisService.UpdateSuggestionStatus(ctx, user.ID, suggestionID, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "suggestion not found"})
		case errors.Is(err, service.ErrForbidden):
			c.JSON(http.StatusForbidden, gin.H{"error": "not authorized to modify this suggestion"})
		default:
			slog.ErrorContext(ctx, "failed to update suggestion status", "error", err, "suggestion_id", suggestionID)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update suggestion status"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToSuggestionResponse(suggestion))
}
