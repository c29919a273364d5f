package router

import (
	"designmentor.app/api/internal/http/handler"
	"github.com/gin-gonic/gin"
)

func SuggestionRouter(rg *gin.RouterGroup, h *handler.AnalysisHandler) {
	rg.PATCH("/:id/status", h.UpdateSuggestionStatus)
}
