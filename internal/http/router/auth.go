package router

import (
	"designmentor.app/api/internal/http/handler"
	"designmentor.app/api/internal/http/middleware"
	"designmentor.app/api/internal/service"
	"github.com/gin-gonic/gin"
)

func AuthRouter(rg *gin.RouterGroup, h *handler.AuthHandler, authService service.AuthService) {
	rg.GET("/login", h.Login)
	rg.GET("/callback", h.Callback)

	authed := rg.Group("")
	authed.Use(middleware.RequireAuth(authService))
	{
		authed.POST("/logout", h.Logout)
		authed.GET("/me", h.Me)
	}
}
