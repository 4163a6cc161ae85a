package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Shaik-Nazidulla/sweetyIntimates-sub000/internal/config"
)

func TestRequestTimeoutUsesConfiguredDeadline(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{}
	cfg.Server.RequestTimeout = 2 * time.Second

	var deadline time.Time
	var hasDeadline bool

	router := gin.New()
	router.Use(RequestTimeout(cfg))
	router.GET("/", func(c *gin.Context) {
		deadline, hasDeadline = c.Request.Context().Deadline()
		c.Status(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status %d", rec.Code)
	}
	if !hasDeadline {
		t.Fatal("expected a deadline on the request context")
	}
	if remaining := time.Until(deadline); remaining > 2*time.Second {
		t.Fatalf("deadline exceeds the configured timeout: %v", remaining)
	}
}

func TestRequestTimeoutDefaultsWhenUnset(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var hasDeadline bool
	router := gin.New()
	router.Use(RequestTimeout(&config.Config{}))
	router.GET("/", func(c *gin.Context) {
		_, hasDeadline = c.Request.Context().Deadline()
		c.Status(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if !hasDeadline {
		t.Fatal("expected a fallback deadline when no timeout is configured")
	}
}

func TestRequestTimeoutAbortsSlowHandlers(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{}
	cfg.Server.RequestTimeout = 10 * time.Millisecond

	router := gin.New()
	router.Use(RequestTimeout(cfg))
	router.GET("/", func(c *gin.Context) {
		<-c.Request.Context().Done()
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusRequestTimeout {
		t.Fatalf("expected 408, got %d", rec.Code)
	}
}
