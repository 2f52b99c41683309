package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vietanh2810/icecream-api/internal/config"
	"github.com/vietanh2810/icecream-api/internal/metrics"
)

func testServer(t *testing.T) *Server {
	t.Helper()

	conf := &config.AppConfig{
		API: &config.APIConfig{
			Environment:        "test",
			Port:               "8080",
			BaseURL:            "localhost:8080",
			AllowedCORSDomains: []string{"http://localhost:8080"},
		},
		Gin:   &config.GinConfig{Mode: gin.TestMode},
		Flash: &config.FlashConfig{CookieName: "icecream_flash", MaxAge: 60},
	}

	// Requests below never reach the store.
	return NewServer(conf, nil, metrics.New())
}

func get(s *Server, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	s.Router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))

	return w
}

func TestServer_Healthcheck(t *testing.T) {
	w := get(testServer(t), "/")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"OK"}`, w.Body.String())
}

func TestServer_MalformedIDsAreNotFound(t *testing.T) {
	s := testServer(t)

	for _, target := range []string{"/flavour/abc/", "/flavour/0/", "/flavour/x/delete/"} {
		w := get(s, target)
		assert.Equal(t, http.StatusNotFound, w.Code, target)
	}
}

func TestServer_APIRejectsMalformedIDs(t *testing.T) {
	s := testServer(t)

	assert.Equal(t, http.StatusBadRequest, get(s, "/api/v1/flavours/abc").Code)
	assert.Equal(t, http.StatusBadRequest, get(s, "/api/v1/persons/0").Code)
}

func TestServer_MetricsCountRequestsByRoute(t *testing.T) {
	s := testServer(t)
	get(s, "/flavour/abc/")

	w := get(s, "/metrics")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(),
		`icecream_http_requests_total{method="GET",route="/flavour/:id/",status="404"} 1`)
}

func TestServer_Swagger(t *testing.T) {
	w := get(testServer(t), "/swagger/doc.json")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "/flavours/{flavourID}")
}
