package handler

import (
	"github.com/labstack/echo/v4"

	"ecosort/internal/usecase"
	"ecosort/pkg/response"
)

type ProfileHandler struct {
	profileUseCase *usecase.ProfileUseCase
}

func NewProfileHandler(profileUseCase *usecase.ProfileUseCase) *ProfileHandler {
	return &ProfileHandler{
		profileUseCase: profileUseCase,
	}
}

func (h *ProfileHandler) GetProfile(c echo.Context) error {
	uid := c.Get("uid").(string)

	view, err := h.profileUseCase.GetProfile(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, view)
}

func (h *ProfileHandler) Reconcile(c echo.Context) error {
	uid := c.Get("uid").(string)

	view, err := h.profileUseCase.Reconcile(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, view)
}

func (h *ProfileHandler) Logout(c echo.Context) error {
	uid := c.Get("uid").(string)

	if err := h.profileUseCase.Logout(c.Request().Context(), uid); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]interface{}{
		"loggedOut": true,
	})
}
