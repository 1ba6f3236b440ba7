package bootstrap

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/webprojects/webprojects/internal/projects/repository"
	"github.com/webprojects/webprojects/internal/projects/service"
)

func newTestEngine(t *testing.T, rps float64, burst int) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	return BuildRouter(RouterDeps{
		ServiceName:    "web-projects",
		Version:        "test",
		Projects:       service.NewProjectService(repository.NewProjectRepository(repository.Seed()), nil),
		RateLimitRPS:   rps,
		RateLimitBurst: burst,
	})
}

func TestBuildRouter_ProjectsRoundTrip(t *testing.T) {
	r := newTestEngine(t, 0, 0)

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/projects",
		strings.NewReader(`{"title":"A","description":"B","url":"C"}`)))
	require.Equal(t, http.StatusCreated, rr.Code)
	assert.JSONEq(t, `{"id":3,"title":"A","description":"B","url":"C"}`, rr.Body.String())
	assert.NotEmpty(t, rr.Header().Get("X-Request-Id"))

	rr = httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"projects":3`)
}

func TestBuildRouter_AllowsAnyOrigin(t *testing.T) {
	r := newTestEngine(t, 0, 0)

	req := httptest.NewRequest(http.MethodGet, "/api/projects", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))
}

func TestBuildRouter_Preflight(t *testing.T) {
	r := newTestEngine(t, 0, 0)

	req := httptest.NewRequest(http.MethodOptions, "/api/projects/1", nil)
	req.Header.Set("Origin", "http://example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPut)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rr.Header().Get("Access-Control-Allow-Methods"), http.MethodPut)
}

func TestBuildRouter_MethodNotAllowed(t *testing.T) {
	r := newTestEngine(t, 0, 0)

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodPatch, "/api/projects/1", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
}

func TestBuildRouter_RateLimit(t *testing.T) {
	r := newTestEngine(t, 0.001, 1)

	first := httptest.NewRecorder()
	r.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/api/projects", nil))
	assert.Equal(t, http.StatusOK, first.Code)

	second := httptest.NewRecorder()
	r.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/api/projects", nil))
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
}

func TestSetGinMode(t *testing.T) {
	defer gin.SetMode(gin.TestMode)

	SetGinMode("production")
	assert.Equal(t, gin.ReleaseMode, gin.Mode())
}
