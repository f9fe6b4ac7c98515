package router

import (
	"ecosort/internal/adapter/api/handler"

	"github.com/labstack/echo/v4"
)

func SetupCategoryRouter(e *echo.Echo) {
	categoryHandler := handler.GetCategoryHandler()

	categories := e.Group("/v1/categories")

	categories.GET("", categoryHandler.ListCategories)
	categories.GET("/:category/tips", categoryHandler.GetTips)
}
