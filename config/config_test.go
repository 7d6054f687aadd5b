package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	t.Setenv("API_PASSWORD", "secret123")

	path := writeConfig(t, `
server:
  port: 9090
  read_timeout_seconds: 10
log:
  level: "debug"
  format: "json"
  name: "upload-api"
  file: "/tmp/upload.log"
  max_backups: 3
upload:
  max_bytes: 2048
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("Expected port 9090, got %d", cfg.Server.Port)
	}
	if cfg.Server.ReadTimeoutSeconds != 10 {
		t.Errorf("Expected read timeout 10, got %d", cfg.Server.ReadTimeoutSeconds)
	}
	if cfg.Auth.Password != "secret123" {
		t.Errorf("Expected password from environment, got %q", cfg.Auth.Password)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Expected log level debug, got %s", cfg.Log.Level)
	}
	if cfg.Log.Format != "json" {
		t.Errorf("Expected log format json, got %s", cfg.Log.Format)
	}
	if cfg.Log.Name != "upload-api" {
		t.Errorf("Expected logger name upload-api, got %s", cfg.Log.Name)
	}
	if cfg.Log.MaxBackups != 3 {
		t.Errorf("Expected max_backups 3, got %d", cfg.Log.MaxBackups)
	}
	if cfg.Upload.MaxBytes != 2048 {
		t.Errorf("Expected max_bytes 2048, got %d", cfg.Upload.MaxBytes)
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("API_PASSWORD", "secret123")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.Server.Port != 8000 {
		t.Errorf("Expected default port 8000, got %d", cfg.Server.Port)
	}
	if cfg.Server.WriteTimeoutSeconds != 60 || cfg.Server.IdleTimeoutSeconds != 120 {
		t.Errorf("Unexpected default timeouts: %+v", cfg.Server)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("Expected default log level info, got %s", cfg.Log.Level)
	}
	if cfg.Log.Format != "text" {
		t.Errorf("Expected default log format text, got %s", cfg.Log.Format)
	}
	if cfg.Log.File != "app.log" {
		t.Errorf("Expected default log file app.log, got %s", cfg.Log.File)
	}
	if cfg.Upload.MaxBytes != 10<<20 {
		t.Errorf("Expected default max_bytes 10MiB, got %d", cfg.Upload.MaxBytes)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("API_PASSWORD", "secret123")
	t.Setenv("PORT", "7070")
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("LOG_FILE", "other.log")

	path := writeConfig(t, `
server:
  port: 9090
log:
  level: "debug"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}
	if cfg.Server.Port != 7070 {
		t.Errorf("Expected PORT override 7070, got %d", cfg.Server.Port)
	}
	if cfg.Log.Level != "warn" || cfg.Log.Format != "json" || cfg.Log.File != "other.log" {
		t.Errorf("Expected log overrides, got %+v", cfg.Log)
	}
}

func TestLoadUploadMaxBytes(t *testing.T) {
	t.Setenv("API_PASSWORD", "secret123")

	tests := []struct {
		name     string
		content  string
		expected int64
	}{
		{"zero keeps default", "upload:\n  max_bytes: 0\n", 10 << 20},
		{"negative disables limit", "upload:\n  max_bytes: -1\n", -1},
		{"explicit limit", "upload:\n  max_bytes: 512\n", 512},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(writeConfig(t, tt.content))
			if err != nil {
				t.Fatalf("Failed to load config: %v", err)
			}
			if cfg.Upload.MaxBytes != tt.expected {
				t.Errorf("Expected max_bytes %d, got %d", tt.expected, cfg.Upload.MaxBytes)
			}
		})
	}
}

func TestLoadInvalidPort(t *testing.T) {
	t.Setenv("API_PASSWORD", "secret123")
	t.Setenv("PORT", "eighty")

	if _, err := Load(""); err == nil {
		t.Error("Expected error for non-numeric PORT")
	}
}

func TestLoadMissingPassword(t *testing.T) {
	t.Setenv("API_PASSWORD", "")

	_, err := Load("")
	if !errors.Is(err, ErrMissingPassword) {
		t.Errorf("Expected ErrMissingPassword, got %v", err)
	}
}

func TestLoadPasswordIgnoredInYAML(t *testing.T) {
	t.Setenv("API_PASSWORD", "")

	path := writeConfig(t, `
auth:
  password: "from-file"
`)

	_, err := Load(path)
	if !errors.Is(err, ErrMissingPassword) {
		t.Errorf("Expected ErrMissingPassword when secret is only in YAML, got %v", err)
	}
}

func TestLoadNonExistent(t *testing.T) {
	t.Setenv("API_PASSWORD", "secret123")

	_, err := Load(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	if err == nil {
		t.Error("Expected error for non-existent file")
	}
}

func TestLoadMissingDefaultPath(t *testing.T) {
	t.Setenv("API_PASSWORD", "secret123")
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get working directory: %v", err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatalf("Failed to change directory: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })

	if _, err := Load(DefaultPath); err != nil {
		t.Errorf("Expected missing default config to be tolerated, got %v", err)
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	t.Setenv("API_PASSWORD", "secret123")

	path := writeConfig(t, "invalid: yaml: content:")

	if _, err := Load(path); err == nil {
		t.Error("Expected error for invalid YAML")
	}
}

func TestLoadDotenv(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	if err := os.WriteFile(envFile, []byte("JSONUPLOAD_TEST_VAR=from-dotenv\n"), 0o600); err != nil {
		t.Fatalf("Failed to write .env: %v", err)
	}
	t.Cleanup(func() { os.Unsetenv("JSONUPLOAD_TEST_VAR") })

	if err := LoadDotenv(envFile, filepath.Join(dir, "missing.env")); err != nil {
		t.Fatalf("LoadDotenv failed: %v", err)
	}
	if got := os.Getenv("JSONUPLOAD_TEST_VAR"); got != "from-dotenv" {
		t.Errorf("Expected from-dotenv, got %q", got)
	}
}

func TestLoadDotenvKeepsExisting(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	if err := os.WriteFile(envFile, []byte("API_PASSWORD=from-dotenv\n"), 0o600); err != nil {
		t.Fatalf("Failed to write .env: %v", err)
	}
	t.Setenv("API_PASSWORD", "from-env")

	if err := LoadDotenv(envFile); err != nil {
		t.Fatalf("LoadDotenv failed: %v", err)
	}
	if got := os.Getenv("API_PASSWORD"); got != "from-env" {
		t.Errorf("Expected real environment to win, got %q", got)
	}
}
