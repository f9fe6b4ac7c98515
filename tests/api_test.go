package tests

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ecosort/internal/adapter/api/handler"
	"ecosort/internal/adapter/api/middleware"
	"ecosort/internal/adapter/api/router"
	"ecosort/internal/infrastructure/firebase"
	"ecosort/internal/infrastructure/localstore"
	"ecosort/internal/usecase"
)

// newTestServer wires the real routers with in-process infrastructure. No
// Firebase project or classifier endpoint is reachable, so the tests cover
// the public surface and the auth gate.
func newTestServer(t *testing.T) *echo.Echo {
	t.Helper()

	store, err := localstore.New(t.TempDir())
	require.NoError(t, err)

	handler.SetupHealthHandler(firebase.NewFirebaseAuthClient(nil))
	handler.Setup(
		usecase.NewClassificationUseCase(store, nil, nil, nil),
		usecase.NewProfileUseCase(store, nil, nil),
		usecase.NewDashboardUseCase(nil, nil),
	)

	e := echo.New()
	router.Setup(e, middleware.NewAuthMiddleware(nil))
	return e
}

func request(e *echo.Echo, method, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestHealthRoute(t *testing.T) {
	e := newTestServer(t)

	rec := request(e, http.MethodGet, "/health")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "running")
}

func TestCategoryRoutes(t *testing.T) {
	e := newTestServer(t)

	rec := request(e, http.MethodGet, "/v1/categories")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "cardboard")

	rec = request(e, http.MethodGet, "/v1/categories/glass/tips")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "recycle")

	rec = request(e, http.MethodGet, "/v1/categories/battery/tips")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "NOT_FOUND")
}

func TestProtectedRoutesRequireAuthorizationHeader(t *testing.T) {
	e := newTestServer(t)

	for _, target := range []string{"/v1/profile", "/v1/classifications"} {
		rec := request(e, http.MethodGet, target)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, target)
	}
}

func TestDashboardRoutesWithoutRemoteBackends(t *testing.T) {
	e := newTestServer(t)

	for _, target := range []string{"/v1/leaderboard", "/v1/community/stats", "/v1/bins"} {
		rec := request(e, http.MethodGet, target)
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code, target)
		assert.Contains(t, rec.Body.String(), "REMOTE_DATA_UNAVAILABLE", target)
	}
}
