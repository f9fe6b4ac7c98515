package router

import (
	"ecosort/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func Setup(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	SetupClassificationRouter(e, authMiddleware)
	SetupProfileRouter(e, authMiddleware)
	SetupCategoryRouter(e)
	SetupDashboardRouter(e)
	SetupHealthRouter(e)
}
