package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/playmatatu/tinko/internal/config"
)

func newRouter(cfg *config.Config) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/ws", WebSocketCORSCheck(cfg), func(c *gin.Context) { c.Status(http.StatusOK) })
	return r
}

func upgradeRequest(origin string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/ws", nil)
	req.Header.Set("Connection", "keep-alive, Upgrade")
	req.Header.Set("Upgrade", "websocket")
	if origin != "" {
		req.Header.Set("Origin", origin)
	}
	return req
}

func TestWebSocketOriginCheck(t *testing.T) {
	dev := &config.Config{Environment: "development"}
	prod := &config.Config{Environment: "production", FrontendURL: "https://tinko.example"}

	cases := []struct {
		name   string
		cfg    *config.Config
		origin string
		want   int
	}{
		{"dev localhost", dev, "http://localhost:8080", http.StatusOK},
		{"dev foreign", dev, "https://evil.example", http.StatusForbidden},
		{"missing origin", dev, "", http.StatusBadRequest},
		{"prod frontend", prod, "https://tinko.example", http.StatusOK},
		{"prod localhost", prod, "http://localhost:5173", http.StatusForbidden},
	}

	for _, tc := range cases {
		w := httptest.NewRecorder()
		newRouter(tc.cfg).ServeHTTP(w, upgradeRequest(tc.origin))
		if w.Code != tc.want {
			t.Errorf("%s: status = %d, want %d", tc.name, w.Code, tc.want)
		}
	}
}

func TestPlainRequestsSkipOriginCheck(t *testing.T) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ws", nil)
	newRouter(&config.Config{Environment: "production"}).ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", w.Code)
	}
}
