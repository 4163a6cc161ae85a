package http

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/Shaik-Nazidulla/sweetyIntimates-sub000/internal/config"
	"github.com/Shaik-Nazidulla/sweetyIntimates-sub000/internal/interfaces/http/handlers"
)

func testEngine(t *testing.T, trustedProxies []string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	log := logrus.New()
	log.SetOutput(io.Discard)

	cfg := &config.Config{}
	cfg.App.Environment = "test"
	cfg.Server.RequestTimeout = time.Second
	cfg.Security.RateLimitPerMinute = 100
	cfg.Security.TrustedProxies = trustedProxies
	cfg.Session.CookieName = "storefront_session"

	// Unreachable Redis: the rate limiter fails open, which is all these
	// tests need from it
	redisClient := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"})
	t.Cleanup(func() { redisClient.Close() })

	srv := NewServer(handlers.Deps{Config: cfg, Log: log}, redisClient)
	engine := srv.buildEngine()
	engine.GET("/client-ip", func(c *gin.Context) {
		c.String(http.StatusOK, c.ClientIP())
	})
	return engine
}

func TestTrustedProxyForwardedFor(t *testing.T) {
	engine := testEngine(t, []string{"10.0.0.0/8"})

	req := httptest.NewRequest(http.MethodGet, "/client-ip", nil)
	req.RemoteAddr = "10.0.0.5:43210"
	req.Header.Set("X-Forwarded-For", "203.0.113.9")
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	if rec.Body.String() != "203.0.113.9" {
		t.Fatalf("expected forwarded client ip from a trusted proxy, got %q", rec.Body.String())
	}

	req = httptest.NewRequest(http.MethodGet, "/client-ip", nil)
	req.RemoteAddr = "172.16.0.9:43210"
	req.Header.Set("X-Forwarded-For", "203.0.113.9")
	rec = httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	if rec.Body.String() != "172.16.0.9" {
		t.Fatalf("expected peer address for an untrusted proxy, got %q", rec.Body.String())
	}
}

func TestNoTrustedProxiesIgnoresForwardedFor(t *testing.T) {
	engine := testEngine(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/client-ip", nil)
	req.RemoteAddr = "10.0.0.5:43210"
	req.Header.Set("X-Forwarded-For", "203.0.113.9")
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	if rec.Body.String() != "10.0.0.5" {
		t.Fatalf("expected forwarded header ignored by default, got %q", rec.Body.String())
	}
}
