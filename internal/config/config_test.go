package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "ENV", "CORS_ORIGINS", "API_BASE_URL", "REQUEST_TIMEOUT", "REPORT_YEAR", "REPORT_TOP_N"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "8080" {
		t.Errorf("expected port 8080, got %s", cfg.Port)
	}
	if cfg.RequestTimeout != 10*time.Second {
		t.Errorf("expected 10s timeout, got %v", cfg.RequestTimeout)
	}
	if cfg.ReportYear != time.Now().Year() {
		t.Errorf("expected current year, got %d", cfg.ReportYear)
	}
	if cfg.ReportTopN != 5 {
		t.Errorf("expected top 5, got %d", cfg.ReportTopN)
	}
	if len(cfg.CORSOrigins) != 1 || cfg.CORSOrigins[0] != "*" {
		t.Errorf("expected wildcard origin, got %v", cfg.CORSOrigins)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("API_BASE_URL", "http://api.internal/api/")
	t.Setenv("REQUEST_TIMEOUT", "3s")
	t.Setenv("REPORT_YEAR", "2024")
	t.Setenv("REPORT_TOP_N", "10")
	t.Setenv("CORS_ORIGINS", "http://a.test, http://b.test ,")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.APIBaseURL != "http://api.internal/api" {
		t.Errorf("trailing slash should be trimmed, got %s", cfg.APIBaseURL)
	}
	if cfg.RequestTimeout != 3*time.Second || cfg.ReportYear != 2024 || cfg.ReportTopN != 10 {
		t.Errorf("unexpected values: %+v", cfg)
	}
	if len(cfg.CORSOrigins) != 2 || cfg.CORSOrigins[1] != "http://b.test" {
		t.Errorf("unexpected origins: %v", cfg.CORSOrigins)
	}
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"bad timeout", "REQUEST_TIMEOUT", "soon"},
		{"negative timeout", "REQUEST_TIMEOUT", "-1s"},
		{"bad year", "REPORT_YEAR", "twenty"},
		{"zero top n", "REPORT_TOP_N", "0"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv(tc.key, tc.val)
			if _, err := Load(); err == nil {
				t.Errorf("expected error for %s=%q", tc.key, tc.val)
			}
		})
	}
}
