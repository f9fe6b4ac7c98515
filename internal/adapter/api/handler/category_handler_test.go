package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestListCategories(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/categories", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := NewCategoryHandler()

	if assert.NoError(t, h.ListCategories(c)) {
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "cardboard")
		assert.Contains(t, rec.Body.String(), "plasticPete")
	}
}

func TestGetTipsForKnownCategory(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/v1/categories/:category/tips")
	c.SetParamNames("category")
	c.SetParamValues("glass")

	h := NewCategoryHandler()

	if assert.NoError(t, h.GetTips(c)) {
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "recycle")
	}
}

func TestGetTipsForUnknownCategory(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/v1/categories/:category/tips")
	c.SetParamNames("category")
	c.SetParamValues("battery")

	h := NewCategoryHandler()

	if assert.NoError(t, h.GetTips(c)) {
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), "NOT_FOUND")
	}
}
