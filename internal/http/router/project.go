package router

import (
	"designmentor.app/api/internal/http/handler"
	"github.com/gin-gonic/gin"
)

func ProjectRouter(rg *gin.RouterGroup, h *handler.ProjectHandler, ah *handler.AnalysisHandler) {
	rg.POST("", h.Create)
	rg.GET("", h.List)
	rg.GET("/:id", h.Get)
	rg.GET("/:id/full", h.GetFull)
	rg.PUT("/:id", h.Update)
	rg.DELETE("/:id", h.Delete)

	rg.GET("/:id/design", h.GetDesign)
	rg.PUT("/:id/design", h.UpdateDesign)

	rg.POST("/:id/analyze", ah.Run)
	rg.GET("/:id/evolution", ah.Evolution)
	rg.GET("/:id/suggestions", ah.ListSuggestions)
}
