package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"ecosort/internal/domain/entity"
	"ecosort/internal/usecase"
	"ecosort/pkg/response"
)

type ClassificationHandler struct {
	classificationUseCase *usecase.ClassificationUseCase
}

func NewClassificationHandler(classificationUseCase *usecase.ClassificationUseCase) *ClassificationHandler {
	return &ClassificationHandler{
		classificationUseCase: classificationUseCase,
	}
}

type classifyRequest struct {
	Image string `json:"image" validate:"required"`
	Hint  string `json:"hint" validate:"omitempty"`
}

func (h *ClassificationHandler) Classify(c echo.Context) error {
	var req classifyRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	uid := c.Get("uid").(string)

	output, err := h.classificationUseCase.Classify(c.Request().Context(), uid, usecase.ClassifyInput{
		Image: req.Image,
		Hint:  entity.WasteCategory(req.Hint),
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, output)
}

func (h *ClassificationHandler) History(c echo.Context) error {
	uid := c.Get("uid").(string)

	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err == nil {
			limit = parsed
		}
	}

	history, err := h.classificationUseCase.History(uid, limit)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]interface{}{
		"items": history,
		"count": len(history),
	})
}
