package handler

import (
	"github.com/labstack/echo/v4"

	"ecosort/internal/usecase"
	"ecosort/pkg/response"
)

type BinHandler struct {
	dashboardUseCase *usecase.DashboardUseCase
}

func NewBinHandler(dashboardUseCase *usecase.DashboardUseCase) *BinHandler {
	return &BinHandler{
		dashboardUseCase: dashboardUseCase,
	}
}

func (h *BinHandler) ListBins(c echo.Context) error {
	bins, err := h.dashboardUseCase.Bins(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]interface{}{
		"items": bins,
		"count": len(bins),
	})
}

func (h *BinHandler) GetBin(c echo.Context) error {
	bin, err := h.dashboardUseCase.Bin(c.Request().Context(), c.Param("binId"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, bin)
}

func (h *BinHandler) FillHistory(c echo.Context) error {
	binID := c.Param("binId")

	levels, err := h.dashboardUseCase.BinLevels(c.Request().Context(), binID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]interface{}{
		"binId":  binID,
		"levels": levels,
	})
}
