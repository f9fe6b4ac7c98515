package handler

import (
	"github.com/labstack/echo/v4"

	"ecosort/internal/domain/entity"
	"ecosort/pkg/errors"
	"ecosort/pkg/response"
)

// CategoryHandler serves the fixed category enumeration and its static
// point/tip configuration.
type CategoryHandler struct{}

func NewCategoryHandler() *CategoryHandler {
	return &CategoryHandler{}
}

func (h *CategoryHandler) ListCategories(c echo.Context) error {
	items := make([]map[string]interface{}, 0, len(entity.AllCategories))
	for _, category := range entity.AllCategories {
		items = append(items, map[string]interface{}{
			"category": category,
			"points":   entity.PointsFor(category),
		})
	}

	return response.Success(c, map[string]interface{}{
		"items": items,
		"count": len(items),
	})
}

func (h *CategoryHandler) GetTips(c echo.Context) error {
	category := entity.WasteCategory(c.Param("category"))
	if !category.Valid() {
		return response.Error(c, errors.NotFound("Category", nil))
	}

	return response.Success(c, map[string]interface{}{
		"category": category,
		"points":   entity.PointsFor(category),
		"tips":     entity.TipsFor(category),
	})
}
