package router

import (
	"ecosort/internal/adapter/api/handler"
	"ecosort/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupProfileRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {

	profileHandler := handler.GetProfileHandler()

	profile := e.Group("/v1/profile")
	profile.Use(authMiddleware.Authenticate)

	profile.GET("", profileHandler.GetProfile)
	profile.POST("/reconcile", profileHandler.Reconcile)

	auth := e.Group("/v1/auth")
	auth.Use(authMiddleware.Authenticate)

	auth.POST("/logout", profileHandler.Logout)
}
