// internal/config/config_test.go
package config

import (
	"testing"
	"time"
)

func validConfig() *Config {
	return &Config{
		Server:  ServerConfig{Port: "8080"},
		Backend: BackendConfig{BaseURL: "http://localhost:9000/api/v1", Timeout: 15 * time.Second},
		Redis:   RedisConfig{Host: "localhost", Port: "6379"},
		JWT:     JWTConfig{Secret: "test-secret-key-that-is-long-enough-123"},
		Session: SessionConfig{CookieName: "storefront_session", GuestTagTTL: time.Hour},
	}
}

func TestValidateAcceptsCompleteConfig(t *testing.T) {
	if err := validConfig().Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateRejectsShortJWTSecret(t *testing.T) {
	cfg := validConfig()
	cfg.JWT.Secret = "too-short"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for short JWT secret")
	}
}

func TestValidateRejectsBadBackendURL(t *testing.T) {
	cfg := validConfig()
	cfg.Backend.BaseURL = ""
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for missing backend URL")
	}

	cfg.Backend.BaseURL = "localhost:9000"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for non-absolute backend URL")
	}
}

func TestValidateRequiresSessionCookieName(t *testing.T) {
	cfg := validConfig()
	cfg.Session.CookieName = ""
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for missing cookie name")
	}
}

func TestGetRedisAddr(t *testing.T) {
	cfg := validConfig()
	if addr := cfg.GetRedisAddr(); addr != "localhost:6379" {
		t.Fatalf("unexpected address: %s", addr)
	}
}

func TestEnvironmentHelpers(t *testing.T) {
	cfg := validConfig()
	cfg.App.Environment = "development"
	if !cfg.IsDevelopment() || cfg.IsProduction() {
		t.Fatal("expected development mode")
	}
	cfg.App.Environment = "production"
	if cfg.IsDevelopment() || !cfg.IsProduction() {
		t.Fatal("expected production mode")
	}
}
