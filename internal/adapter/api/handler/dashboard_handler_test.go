package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ecosort/internal/domain/entity"
	"ecosort/internal/usecase"
	"ecosort/pkg/errors"
)

type stubMirror struct {
	top []entity.UserProfile
}

func (s *stubMirror) SaveSnapshot(ctx context.Context, profile *entity.UserProfile) error {
	return nil
}

func (s *stubMirror) GetByID(ctx context.Context, userID string) (*entity.UserProfile, error) {
	return nil, errors.NotFound("Profile", nil)
}

func (s *stubMirror) TopByScore(ctx context.Context, limit int) ([]entity.UserProfile, error) {
	if len(s.top) > limit {
		return s.top[:limit], nil
	}
	return s.top, nil
}

func (s *stubMirror) All(ctx context.Context) ([]entity.UserProfile, error) {
	return s.top, nil
}

func (s *stubMirror) SaveClassification(ctx context.Context, userID string, record entity.ClassificationRecord) error {
	return nil
}

func (s *stubMirror) RecentByUser(ctx context.Context, userID string, limit int) ([]entity.ClassificationRecord, error) {
	return nil, nil
}

func TestLeaderboardUsesPaginatedEnvelope(t *testing.T) {
	mirror := &stubMirror{top: []entity.UserProfile{
		{ID: "eco-1", DisplayName: "Eco One", Score: 600},
		{ID: "eco-2", DisplayName: "Eco Two", Score: 80},
	}}
	h := NewDashboardHandler(usecase.NewDashboardUseCase(mirror, nil))

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/leaderboard?limit=5", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.Leaderboard(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, `"items"`)
	assert.Contains(t, body, `"total":2`)
	assert.Contains(t, body, `"page":1`)
	assert.Contains(t, body, `"pageSize":5`)
	assert.Contains(t, body, `"eco-1"`)
}

func TestLeaderboardIgnoresInvalidLimit(t *testing.T) {
	h := NewDashboardHandler(usecase.NewDashboardUseCase(&stubMirror{}, nil))

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/leaderboard?limit=banana", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.Leaderboard(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"pageSize":10`)
}
