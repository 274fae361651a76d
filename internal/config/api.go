package config

import (
	"fmt"
	"os"

	"github.com/JaimeStill/taxonomist/pkg/formatting"
	"github.com/JaimeStill/taxonomist/pkg/middleware"
	"github.com/JaimeStill/taxonomist/pkg/openapi"
)

var corsEnv = &middleware.CORSEnv{
	Enabled:          "TAXONOMIST_CORS_ENABLED",
	Origins:          "TAXONOMIST_CORS_ORIGINS",
	AllowedMethods:   "TAXONOMIST_CORS_ALLOWED_METHODS",
	AllowedHeaders:   "TAXONOMIST_CORS_ALLOWED_HEADERS",
	AllowCredentials: "TAXONOMIST_CORS_ALLOW_CREDENTIALS",
	MaxAge:           "TAXONOMIST_CORS_MAX_AGE",
}

var authEnv = &middleware.AuthEnv{
	Enabled:  "TAXONOMIST_AUTH_ENABLED",
	Issuer:   "TAXONOMIST_AUTH_ISSUER",
	Audience: "TAXONOMIST_AUTH_AUDIENCE",
}

var openAPIEnv = &openapi.ConfigEnv{
	Title:       "TAXONOMIST_OPENAPI_TITLE",
	Description: "TAXONOMIST_OPENAPI_DESCRIPTION",
}

// APIConfig holds API routing, upload limits, CORS, auth, and OpenAPI settings.
type APIConfig struct {
	BasePath      string                `toml:"base_path"`
	MaxUploadSize string                `toml:"max_upload_size"`
	CORS          middleware.CORSConfig `toml:"cors"`
	Auth          middleware.AuthConfig `toml:"auth"`
	OpenAPI       openapi.Config        `toml:"openapi"`
}

// MaxUploadSizeBytes returns MaxUploadSize parsed to bytes.
func (c *APIConfig) MaxUploadSizeBytes() int64 {
	size, err := formatting.ParseBytes(c.MaxUploadSize)
	if err != nil {
		return 50 * 1024 * 1024
	}
	return size
}

// Finalize applies defaults, environment variable overrides, and validation
// for the API config and its nested configs.
func (c *APIConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()

	if err := c.validate(); err != nil {
		return err
	}
	if err := c.CORS.Finalize(corsEnv); err != nil {
		return fmt.Errorf("cors: %w", err)
	}
	if err := c.Auth.Finalize(authEnv); err != nil {
		return fmt.Errorf("auth: %w", err)
	}
	if err := c.OpenAPI.Finalize(openAPIEnv); err != nil {
		return fmt.Errorf("openapi: %w", err)
	}
	return nil
}

// Merge overwrites non-zero fields from overlay across nested configs.
func (c *APIConfig) Merge(overlay *APIConfig) {
	if overlay.BasePath != "" {
		c.BasePath = overlay.BasePath
	}
	if overlay.MaxUploadSize != "" {
		c.MaxUploadSize = overlay.MaxUploadSize
	}

	c.CORS.Merge(&overlay.CORS)
	c.Auth.Merge(&overlay.Auth)
	c.OpenAPI.Merge(&overlay.OpenAPI)
}

func (c *APIConfig) loadDefaults() {
	if c.BasePath == "" {
		c.BasePath = "/api"
	}
	if c.MaxUploadSize == "" {
		c.MaxUploadSize = "50MB"
	}
}

func (c *APIConfig) loadEnv() {
	if v := os.Getenv("TAXONOMIST_API_BASE_PATH"); v != "" {
		c.BasePath = v
	}
	if v := os.Getenv("TAXONOMIST_API_MAX_UPLOAD_SIZE"); v != "" {
		c.MaxUploadSize = v
	}
}

func (c *APIConfig) validate() error {
	size, err := formatting.ParseBytes(c.MaxUploadSize)
	if err != nil {
		return fmt.Errorf("invalid max_upload_size: %w", err)
	}
	if size <= 0 {
		return fmt.Errorf("max_upload_size must be positive: %s", c.MaxUploadSize)
	}
	return nil
}
