package router

import (
	"ecosort/internal/adapter/api/handler"
	"ecosort/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupClassificationRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {

	classificationHandler := handler.GetClassificationHandler()

	classifications := e.Group("/v1/classifications")
	classifications.Use(authMiddleware.Authenticate)

	classifications.POST("", classificationHandler.Classify)
	classifications.GET("", classificationHandler.History)
}
