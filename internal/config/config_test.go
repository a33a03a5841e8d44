package config

import (
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	t.Setenv("COMPANIES_HOUSE_HOST", "https://api.company-information.service.gov.uk")
	t.Setenv("COMPANIES_HOUSE_APIKEY", "test-key")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Host != "https://api.company-information.service.gov.uk" {
		t.Fatalf("unexpected host: %s", cfg.Host)
	}
	if cfg.APIKey != "test-key" {
		t.Fatalf("unexpected api key: %s", cfg.APIKey)
	}
	if cfg.LogLevel != "info" {
		t.Fatalf("unexpected default log level: %s", cfg.LogLevel)
	}
	if cfg.RequestTimeout != 15*time.Second {
		t.Fatalf("unexpected default request timeout: %v", cfg.RequestTimeout)
	}
}

func TestLoadMissingHost(t *testing.T) {
	t.Setenv("COMPANIES_HOUSE_HOST", "")
	t.Setenv("COMPANIES_HOUSE_APIKEY", "test-key")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for missing host, got nil")
	}
}

func TestLoadMissingAPIKey(t *testing.T) {
	t.Setenv("COMPANIES_HOUSE_HOST", "https://api.company-information.service.gov.uk")
	t.Setenv("COMPANIES_HOUSE_APIKEY", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for missing api key, got nil")
	}
}

func TestLoadInvalidTimeout(t *testing.T) {
	t.Setenv("COMPANIES_HOUSE_HOST", "https://api.company-information.service.gov.uk")
	t.Setenv("COMPANIES_HOUSE_APIKEY", "test-key")
	t.Setenv("REQUEST_TIMEOUT_SECONDS", "0")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for zero timeout, got nil")
	}
}
