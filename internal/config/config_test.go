// Package config provides configuration management for the MMA EV tool.
package config

import (
	"os"
	"strings"
	"testing"
)

const (
	validConfigPath     = "testdata/valid_config.yaml"
	expansionConfigPath = "testdata/expansion_config.yaml"
)

// TestLoadConfigSuccess tests loading a valid configuration file
func TestLoadConfigSuccess(t *testing.T) {
	cfg, err := Load(validConfigPath)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if cfg == nil {
		t.Fatal("expected non-nil config")
	}

	if cfg.App.Name != "mma-ev-tool" {
		t.Errorf("expected app name 'mma-ev-tool', got '%s'", cfg.App.Name)
	}

	if cfg.App.Environment != "development" {
		t.Errorf("expected environment 'development', got '%s'", cfg.App.Environment)
	}

	if cfg.Storage.Backend != "file" {
		t.Errorf("expected storage backend 'file', got '%s'", cfg.Storage.Backend)
	}

	if cfg.Feed.CacheTTLSeconds != 300 {
		t.Errorf("expected cache TTL 300, got %d", cfg.Feed.CacheTTLSeconds)
	}
}

// TestLoadConfigMissingFile tests loading a nonexistent configuration file
func TestLoadConfigMissingFile(t *testing.T) {
	_, err := Load("testdata/nonexistent_config.yaml")
	if err == nil {
		t.Fatal("expected error for missing config file")
	}
}

// TestLoadConfigEnvExpansion tests ${VAR} expansion in the config file
func TestLoadConfigEnvExpansion(t *testing.T) {
	os.Setenv("TEST_DB_PASSWORD", "expanded_secret_value")
	defer os.Unsetenv("TEST_DB_PASSWORD")

	cfg, err := Load(expansionConfigPath)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if cfg.Storage.Database.Password != "expanded_secret_value" {
		t.Errorf("expected expanded password, got '%s'", cfg.Storage.Database.Password)
	}
}

// TestLoadWithDefaultsNoFile tests defaults when no config file exists
func TestLoadWithDefaultsNoFile(t *testing.T) {
	cfg, err := LoadWithDefaults("testdata/nonexistent_config.yaml")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if cfg.App.LogLevel != "info" {
		t.Errorf("expected default log level 'info', got '%s'", cfg.App.LogLevel)
	}

	if cfg.Storage.Backend != "file" {
		t.Errorf("expected default backend 'file', got '%s'", cfg.Storage.Backend)
	}

	if cfg.Feed.RefreshSchedule == "" {
		t.Error("expected default refresh schedule")
	}
}

// TestValidateValidConfig tests validation of a complete configuration
func TestValidateValidConfig(t *testing.T) {
	cfg, err := Load(validConfigPath)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if err := Validate(cfg); err != nil {
		t.Errorf("expected valid config, got %v", err)
	}
}

// TestValidateInvalidEnvironment tests rejection of unknown environments
func TestValidateInvalidEnvironment(t *testing.T) {
	cfg, _ := Load(validConfigPath)
	cfg.App.Environment = "invalid"

	err := Validate(cfg)
	if err == nil {
		t.Fatal("expected validation error for invalid environment")
	}
	if !strings.Contains(err.Error(), "environment") {
		t.Errorf("expected environment in error, got: %v", err)
	}
}

// TestValidatePostgresRequiresConnection tests the postgres cross-field rule
func TestValidatePostgresRequiresConnection(t *testing.T) {
	cfg, _ := Load(validConfigPath)
	cfg.Storage.Backend = "postgres"

	if err := Validate(cfg); err == nil {
		t.Fatal("expected validation error for postgres backend without connection details")
	}
}

// TestValidateStreamRequiresURL tests the stream cross-field rule
func TestValidateStreamRequiresURL(t *testing.T) {
	cfg, _ := Load(validConfigPath)
	cfg.Feed.StreamEnabled = true
	cfg.Feed.StreamURL = ""

	if err := Validate(cfg); err == nil {
		t.Fatal("expected validation error for stream without URL")
	}
}

// TestOverlaySecrets tests applying a secrets overlay to the config
func TestOverlaySecrets(t *testing.T) {
	cfg, _ := Load(expansionConfigPath)

	overlaySecretsOnConfig(cfg, &SecretsOverlay{DatabasePassword: "from_aws"})
	if cfg.Storage.Database.Password != "from_aws" {
		t.Errorf("expected overlaid password, got '%s'", cfg.Storage.Database.Password)
	}
}
