package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"SERVER_PORT", "SUBMIT_DELAY", "CLINIC_TIMEZONE", "NOTIFICATION_LIMIT", "CORS_ORIGINS"} {
		t.Setenv(k, "")
	}

	cfg := Load()
	if cfg.Addr() != ":8080" {
		t.Fatalf("addr = %q", cfg.Addr())
	}
	if cfg.SubmitDelay != time.Second {
		t.Fatalf("submit delay = %v", cfg.SubmitDelay)
	}
	if cfg.Timezone != "America/New_York" {
		t.Fatalf("timezone = %q", cfg.Timezone)
	}
	if cfg.NotificationLimit != 50 {
		t.Fatalf("notification limit = %d", cfg.NotificationLimit)
	}
	if cfg.CORSOrigins != nil {
		t.Fatalf("cors origins = %v", cfg.CORSOrigins)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("SUBMIT_DELAY", "250")
	t.Setenv("RATE_LIMIT_RPS", "0.5")
	t.Setenv("CORS_ORIGINS", "http://a.test, http://b.test")

	cfg := Load()
	if cfg.Addr() != ":9090" {
		t.Fatalf("addr = %q", cfg.Addr())
	}
	if cfg.SubmitDelay != 250*time.Millisecond {
		t.Fatalf("submit delay = %v", cfg.SubmitDelay)
	}
	if cfg.RateLimitRPS != 0.5 {
		t.Fatalf("rps = %v", cfg.RateLimitRPS)
	}
	if len(cfg.CORSOrigins) != 2 || cfg.CORSOrigins[1] != "http://b.test" {
		t.Fatalf("cors origins = %v", cfg.CORSOrigins)
	}
}

func TestGetDurationAcceptsGoSyntax(t *testing.T) {
	t.Setenv("SUBMIT_DELAY", "1500ms")
	if d := getDuration("SUBMIT_DELAY", 0); d != 1500*time.Millisecond {
		t.Fatalf("duration = %v", d)
	}
	t.Setenv("SUBMIT_DELAY", "soon")
	if d := getDuration("SUBMIT_DELAY", time.Second); d != time.Second {
		t.Fatalf("fallback = %v", d)
	}
}
