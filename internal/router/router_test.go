package router_test

import (
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	v1 "github.com/hearthledger/backend/internal/controllers/v1"
	"github.com/hearthledger/backend/internal/router"
	"github.com/hearthledger/backend/internal/storage"
	"github.com/hearthledger/backend/internal/store"
	"github.com/hearthledger/backend/internal/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testController(t *testing.T) v1.Controller {
	sqlite, err := storage.Connect(filepath.Join(t.TempDir(), "router.db"))
	require.Nil(t, err)
	t.Cleanup(func() { _ = sqlite.Close() })

	return v1.Controller{Store: store.New(sqlite), Snapshots: sqlite}
}

func TestGinMode(t *testing.T) {
	os.Setenv("GIN_MODE", "debug")

	r, teardown, err := router.Config()
	defer teardown()
	assert.Nil(t, err, "Error on router initialization")

	router.AttachRoutes(testController(t), r.Group(""))

	assert.True(t, gin.IsDebugging())

	os.Unsetenv("GIN_MODE")
}

func TestPprofOn(t *testing.T) {
	os.Setenv("ENABLE_PPROF", "true")

	r, teardown, err := router.Config()
	defer teardown()
	assert.Nil(t, err, "Error on router initialization")

	router.AttachRoutes(testController(t), r.Group(""))

	var routes []string
	for _, route := range r.Routes() {
		routes = append(routes, route.Path)
	}
	assert.Contains(t, routes, "/debug/pprof/")

	os.Unsetenv("ENABLE_PPROF")
}

func TestPprofOff(t *testing.T) {
	r, teardown, err := router.Config()
	defer teardown()
	assert.Nil(t, err, "Error on router initialization")

	router.AttachRoutes(testController(t), r.Group(""))

	for _, route := range r.Routes() {
		assert.NotContains(t, route.Path, "pprof", "pprof routes are registered erroneously! Route: %s", route)
	}
}

func TestCorsSetting(t *testing.T) {
	os.Setenv("CORS_ALLOW_ORIGINS", "http://localhost:3000 https://example.com")

	r, teardown, err := router.Config()
	defer teardown()
	assert.Nil(t, err, "Error on router initialization")

	router.AttachRoutes(testController(t), r.Group(""))

	recorder := test.Request(t, r, http.MethodOptions, "http://example.com/v1", "", map[string]string{
		"Origin":                        "https://example.com",
		"Access-Control-Request-Method": "GET",
	})
	assert.Equal(t, "https://example.com", recorder.Header().Get("Access-Control-Allow-Origin"))

	os.Unsetenv("CORS_ALLOW_ORIGINS")
}

func TestGetRoot(t *testing.T) {
	r, teardown, err := router.Config()
	defer teardown()
	require.Nil(t, err)

	router.AttachRoutes(testController(t), r.Group(""))

	recorder := test.Request(t, r, http.MethodGet, "http://example.com/", "")
	test.AssertHTTPStatus(t, http.StatusOK, &recorder)

	var response router.RootResponse
	test.DecodeResponse(t, &recorder, &response)
	assert.Equal(t, "http://example.com/v1", response.Links.V1)
	assert.Equal(t, "http://example.com/healthz", response.Links.Healthz)
}

func TestGetVersion(t *testing.T) {
	r, teardown, err := router.Config()
	defer teardown()
	require.Nil(t, err)

	router.AttachRoutes(testController(t), r.Group(""))

	recorder := test.Request(t, r, http.MethodGet, "http://example.com/version", "")
	test.AssertHTTPStatus(t, http.StatusOK, &recorder)

	var response router.VersionResponse
	test.DecodeResponse(t, &recorder, &response)
	assert.Equal(t, "0.0.0", response.Data.Version)
}

func TestMetricsEndpoint(t *testing.T) {
	r, teardown, err := router.Config()
	defer teardown()
	require.Nil(t, err)

	router.AttachRoutes(testController(t), r.Group(""))

	recorder := test.Request(t, r, http.MethodGet, "http://example.com/metrics", "")
	test.AssertHTTPStatus(t, http.StatusOK, &recorder)
}

func TestNoMethod(t *testing.T) {
	r, teardown, err := router.Config()
	defer teardown()
	require.Nil(t, err)

	router.AttachRoutes(testController(t), r.Group(""))

	recorder := test.Request(t, r, http.MethodPut, "http://example.com/version", "")
	test.AssertHTTPStatus(t, http.StatusMethodNotAllowed, &recorder)
}
