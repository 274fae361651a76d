package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/JaimeStill/taxonomist/internal/config"
	"github.com/JaimeStill/taxonomist/pkg/provider"
)

const baseConfig = `
shutdown_timeout = "30s"
version = "0.1.0"
log_level = "debug"

[server]
host = "0.0.0.0"
port = 8080
read_timeout = "1m"
write_timeout = "5m"

[api]
base_path = "/api"
max_upload_size = "10MB"

[api.cors]
enabled = true
origins = ["http://localhost:5173"]

[provider]
name = "openrouter"
api_key = "sk-config"
temperature = 0.4

[classifier]
max_attempts = 5
backoff = "250ms"
attempt_timeout = "20s"

[extraction]
min_text_length = 40
keywords = ["saas", "platform"]
`

const overlayConfig = `
[server]
port = 9090

[provider]
model = "openai/gpt-4o"

[classifier]
retry_auth_failures = false
`

var isolatedEnv = []string{
	"TAXONOMIST_ENV",
	"TAXONOMIST_LOG_LEVEL",
	"TAXONOMIST_SERVER_PORT",
	"TAXONOMIST_PROVIDER_NAME",
	"TAXONOMIST_PROVIDER_API_KEY",
	"TAXONOMIST_PROVIDER_MODEL",
	"TAXONOMIST_CLASSIFIER_MAX_ATTEMPTS",
	"TAXONOMIST_CLASSIFIER_RETRY_AUTH_FAILURES",
	"TAXONOMIST_API_MAX_UPLOAD_SIZE",
	"GROQ_API_KEY",
	"VITE_GROQ_API_KEY",
	"OPENROUTER_API_KEY",
	"VITE_OPENROUTER_API_KEY",
}

// setup isolates the test in a temporary working directory with a clean environment.
func setup(t *testing.T) string {
	t.Helper()
	for _, v := range isolatedEnv {
		t.Setenv(v, "")
	}
	dir := t.TempDir()
	t.Chdir(dir)
	return dir
}

func writeConfig(t *testing.T, dir, filename, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, filename), []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", filename, err)
	}
}

func TestLoad(t *testing.T) {
	dir := setup(t)
	writeConfig(t, dir, config.BaseConfigFile, baseConfig)

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("server port: got %d, want 8080", cfg.Server.Port)
	}
	if cfg.Level() != slog.LevelDebug {
		t.Errorf("log level: got %v, want debug", cfg.Level())
	}
	if cfg.API.MaxUploadSizeBytes() != 10*1024*1024 {
		t.Errorf("max upload: got %d, want 10MB", cfg.API.MaxUploadSizeBytes())
	}
	if !cfg.API.CORS.Enabled || len(cfg.API.CORS.Origins) != 1 {
		t.Errorf("cors: got %+v", cfg.API.CORS)
	}
	if cfg.API.Auth.Enabled {
		t.Error("auth should be disabled by default")
	}
	if cfg.Provider.Name != provider.OpenRouter || cfg.Provider.APIKey != "sk-config" {
		t.Errorf("provider: got name=%s key=%s", cfg.Provider.Name, cfg.Provider.APIKey)
	}
	if cfg.Provider.BaseURL == "" || cfg.Provider.Model != "openai/gpt-4o-mini" {
		t.Errorf("provider defaults: got base_url=%q model=%q", cfg.Provider.BaseURL, cfg.Provider.Model)
	}
	if cfg.Provider.TemperatureValue() != 0.4 {
		t.Errorf("temperature: got %v, want 0.4", cfg.Provider.TemperatureValue())
	}
	if cfg.Extraction.MinTextLength != 40 || len(cfg.Extraction.Keywords) != 2 {
		t.Errorf("extraction: got %+v", cfg.Extraction)
	}

	orch := cfg.Classifier.Orchestrator()
	if orch.Retry.MaxAttempts != 5 {
		t.Errorf("max attempts: got %d, want 5", orch.Retry.MaxAttempts)
	}
	if orch.Retry.BackoffDuration() != 250*time.Millisecond {
		t.Errorf("backoff: got %v, want 250ms", orch.Retry.BackoffDuration())
	}
	if orch.Retry.AttemptTimeoutDuration() != 20*time.Second {
		t.Errorf("attempt timeout: got %v, want 20s", orch.Retry.AttemptTimeoutDuration())
	}
	if !orch.RetryAuthFailures {
		t.Error("retry_auth_failures should default to true")
	}
}

func TestLoadWithOverlay(t *testing.T) {
	dir := setup(t)
	writeConfig(t, dir, config.BaseConfigFile, baseConfig)
	writeConfig(t, dir, "config.staging.toml", overlayConfig)
	t.Setenv(config.EnvTaxonomistEnv, "staging")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.Env() != "staging" {
		t.Errorf("env: got %s, want staging", cfg.Env())
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("server port: got %d, want 9090", cfg.Server.Port)
	}
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("server host should be preserved: got %s", cfg.Server.Host)
	}
	if cfg.Provider.Model != "openai/gpt-4o" {
		t.Errorf("provider model: got %s, want openai/gpt-4o", cfg.Provider.Model)
	}
	if cfg.Provider.APIKey != "sk-config" {
		t.Errorf("provider key should be preserved: got %s", cfg.Provider.APIKey)
	}
	if cfg.Classifier.Orchestrator().RetryAuthFailures {
		t.Error("overlay should disable retry_auth_failures")
	}
	if cfg.Classifier.MaxAttempts != 5 {
		t.Errorf("max attempts should be preserved: got %d", cfg.Classifier.MaxAttempts)
	}
}

func TestLoadEnvVarOverrides(t *testing.T) {
	dir := setup(t)
	writeConfig(t, dir, config.BaseConfigFile, baseConfig)
	t.Setenv("TAXONOMIST_SERVER_PORT", "3000")
	t.Setenv("TAXONOMIST_PROVIDER_API_KEY", "sk-env")
	t.Setenv("TAXONOMIST_CLASSIFIER_MAX_ATTEMPTS", "2")
	t.Setenv("TAXONOMIST_CLASSIFIER_RETRY_AUTH_FAILURES", "false")
	t.Setenv("TAXONOMIST_LOG_LEVEL", "warn")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.Server.Port != 3000 {
		t.Errorf("server port: got %d, want 3000", cfg.Server.Port)
	}
	if cfg.Provider.APIKey != "sk-env" {
		t.Errorf("api key: got %s, want sk-env", cfg.Provider.APIKey)
	}
	if cfg.Classifier.MaxAttempts != 2 {
		t.Errorf("max attempts: got %d, want 2", cfg.Classifier.MaxAttempts)
	}
	if cfg.Classifier.Orchestrator().RetryAuthFailures {
		t.Error("env should disable retry_auth_failures")
	}
	if cfg.Level() != slog.LevelWarn {
		t.Errorf("log level: got %v, want warn", cfg.Level())
	}
}

func TestLoadNoConfigFile(t *testing.T) {
	setup(t)
	t.Setenv("GROQ_API_KEY", "gsk-conventional")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("server port: got %d, want 8080", cfg.Server.Port)
	}
	if cfg.API.BasePath != "/api" {
		t.Errorf("base path: got %s, want /api", cfg.API.BasePath)
	}
	if cfg.API.MaxUploadSizeBytes() != 50*1024*1024 {
		t.Errorf("max upload: got %d, want 50MB", cfg.API.MaxUploadSizeBytes())
	}
	if cfg.ShutdownTimeoutDuration() != 30*time.Second {
		t.Errorf("shutdown timeout: got %v, want 30s", cfg.ShutdownTimeoutDuration())
	}
	if cfg.Level() != slog.LevelInfo {
		t.Errorf("log level: got %v, want info", cfg.Level())
	}
	if cfg.Provider.Name != provider.Groq {
		t.Errorf("provider: got %s, want groq", cfg.Provider.Name)
	}
	if cfg.Provider.APIKey != "gsk-conventional" {
		t.Errorf("conventional key not picked up: got %q", cfg.Provider.APIKey)
	}
	if cfg.Classifier.MaxAttempts != 3 || cfg.Extraction.MinTextLength != 20 {
		t.Errorf("domain defaults: attempts=%d min_text=%d", cfg.Classifier.MaxAttempts, cfg.Extraction.MinTextLength)
	}
}

func TestLoadFile(t *testing.T) {
	setup(t)
	dir := t.TempDir()
	writeConfig(t, dir, "custom.toml", "[server]\nport = 7070\n")
	writeConfig(t, dir, "config.ci.toml", "[server]\nhost = \"127.0.0.1\"\n")
	t.Setenv(config.EnvTaxonomistEnv, "ci")

	cfg, err := config.LoadFile(filepath.Join(dir, "custom.toml"))
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.Server.Addr() != "127.0.0.1:7070" {
		t.Errorf("addr: got %s, want 127.0.0.1:7070", cfg.Server.Addr())
	}
}

func TestValidation(t *testing.T) {
	tests := []struct {
		name    string
		config  string
		wantErr string
	}{
		{name: "invalid port", config: "[server]\nport = 99999\n", wantErr: "invalid port"},
		{name: "invalid read_timeout", config: "[server]\nread_timeout = \"bad\"\n", wantErr: "invalid read_timeout"},
		{name: "invalid log level", config: "log_level = \"loud\"\n", wantErr: "invalid log_level"},
		{name: "invalid upload size", config: "[api]\nmax_upload_size = \"lots\"\n", wantErr: "invalid max_upload_size"},
		{name: "unknown provider", config: "[provider]\nname = \"mystery\"\n", wantErr: "provider"},
		{name: "zero attempts", config: "[classifier]\nmax_attempts = -1\n", wantErr: "classifier"},
		{name: "auth without issuer", config: "[api.auth]\nenabled = true\n", wantErr: "issuer required"},
		{name: "malformed toml", config: "[server\nport = 1\n", wantErr: "parse config"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := setup(t)
			writeConfig(t, dir, config.BaseConfigFile, tt.config)

			_, err := config.Load()
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not contain %q", err.Error(), tt.wantErr)
			}
		})
	}
}

func TestEnvDefault(t *testing.T) {
	setup(t)

	cfg := &config.Config{}
	if cfg.Env() != "local" {
		t.Errorf("env: got %s, want local", cfg.Env())
	}
}
