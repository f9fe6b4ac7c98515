package router

import (
	"ecosort/internal/adapter/api/handler"

	"github.com/labstack/echo/v4"
)

func SetupDevRouter(e *echo.Echo, environment string) {
	if environment != "development" {
		return
	}
	devTokenHandler := handler.GetDevTokenHandler()

	e.POST("/_dev/token", devTokenHandler.GenerateToken)
	e.POST("/_dev/claims", devTokenHandler.DecodeClaims)
}
