package provider

import (
	"fmt"
	"os"
	"slices"
	"strconv"
	"time"
)

// Supported provider names.
const (
	Groq       = "groq"
	OpenRouter = "openrouter"
	Azure      = "azure"
	Anthropic  = "anthropic"
)

// Azure authentication modes.
const (
	AuthAPIKey        = "api_key"
	AuthAzureIdentity = "azure_identity"
)

var names = []string{Groq, OpenRouter, Azure, Anthropic}

var defaultBaseURLs = map[string]string{
	Groq:       "https://api.groq.com/openai/v1",
	OpenRouter: "https://openrouter.ai/api/v1",
}

var defaultModels = map[string]string{
	Groq:       "meta-llama/llama-4-maverick-17b-128e-instruct",
	OpenRouter: "openai/gpt-4o-mini",
	Anthropic:  "claude-sonnet-4-5",
}

// credentialVars lists the conventional environment variables consulted
// for a provider's API key when none is configured explicitly.
var credentialVars = map[string][]string{
	Groq:       {"GROQ_API_KEY", "VITE_GROQ_API_KEY"},
	OpenRouter: {"OPENROUTER_API_KEY", "VITE_OPENROUTER_API_KEY"},
	Azure:      {"AZURE_OPENAI_API_KEY"},
	Anthropic:  {"ANTHROPIC_API_KEY"},
}

// Names returns the supported provider names.
func Names() []string {
	return names
}

// Config identifies the single completion backend used by the process.
type Config struct {
	Name        string   `toml:"name"`
	APIKey      string   `toml:"api_key"`
	BaseURL     string   `toml:"base_url"`
	Model       string   `toml:"model"`
	Temperature *float64 `toml:"temperature"`
	MaxTokens   int      `toml:"max_tokens"`
	Timeout     string   `toml:"timeout"`
	APIVersion  string   `toml:"api_version"`
	AuthType    string   `toml:"auth_type"`
}

// Env maps config fields to environment variable names for override injection.
type Env struct {
	Name        string
	APIKey      string
	BaseURL     string
	Model       string
	Temperature string
	MaxTokens   string
	Timeout     string
	APIVersion  string
	AuthType    string
}

// HasCredentials reports whether a credential source is configured.
func (c *Config) HasCredentials() bool {
	if c.Name == Azure && c.AuthType == AuthAzureIdentity {
		return true
	}
	return c.APIKey != ""
}

// TemperatureValue returns the sampling temperature.
func (c *Config) TemperatureValue() float64 {
	if c.Temperature == nil {
		return 0.2
	}
	return *c.Temperature
}

// TimeoutDuration returns Timeout as a time.Duration.
func (c *Config) TimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(c.Timeout)
	return d
}

// Finalize applies defaults, environment variable overrides, and validation.
// Provider-specific defaults are applied after overrides so that changing
// the provider name through the environment selects matching defaults.
func (c *Config) Finalize(env *Env) error {
	c.loadDefaults()
	if env != nil {
		c.loadEnv(env)
	}
	c.loadProviderDefaults()
	return c.validate()
}

// Merge overwrites non-zero fields from overlay.
func (c *Config) Merge(overlay *Config) {
	if overlay.Name != "" {
		c.Name = overlay.Name
	}
	if overlay.APIKey != "" {
		c.APIKey = overlay.APIKey
	}
	if overlay.BaseURL != "" {
		c.BaseURL = overlay.BaseURL
	}
	if overlay.Model != "" {
		c.Model = overlay.Model
	}
	if overlay.Temperature != nil {
		c.Temperature = overlay.Temperature
	}
	if overlay.MaxTokens != 0 {
		c.MaxTokens = overlay.MaxTokens
	}
	if overlay.Timeout != "" {
		c.Timeout = overlay.Timeout
	}
	if overlay.APIVersion != "" {
		c.APIVersion = overlay.APIVersion
	}
	if overlay.AuthType != "" {
		c.AuthType = overlay.AuthType
	}
}

func (c *Config) loadDefaults() {
	if c.Name == "" {
		c.Name = Groq
	}
	if c.Temperature == nil {
		t := 0.2
		c.Temperature = &t
	}
	if c.MaxTokens == 0 {
		c.MaxTokens = 1024
	}
	if c.Timeout == "" {
		c.Timeout = "60s"
	}
}

func (c *Config) loadEnv(env *Env) {
	if env.Name != "" {
		if v := os.Getenv(env.Name); v != "" {
			c.Name = v
		}
	}
	if env.APIKey != "" {
		if v := os.Getenv(env.APIKey); v != "" {
			c.APIKey = v
		}
	}
	if env.BaseURL != "" {
		if v := os.Getenv(env.BaseURL); v != "" {
			c.BaseURL = v
		}
	}
	if env.Model != "" {
		if v := os.Getenv(env.Model); v != "" {
			c.Model = v
		}
	}
	if env.Temperature != "" {
		if v := os.Getenv(env.Temperature); v != "" {
			if t, err := strconv.ParseFloat(v, 64); err == nil {
				c.Temperature = &t
			}
		}
	}
	if env.MaxTokens != "" {
		if v := os.Getenv(env.MaxTokens); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				c.MaxTokens = n
			}
		}
	}
	if env.Timeout != "" {
		if v := os.Getenv(env.Timeout); v != "" {
			c.Timeout = v
		}
	}
	if env.APIVersion != "" {
		if v := os.Getenv(env.APIVersion); v != "" {
			c.APIVersion = v
		}
	}
	if env.AuthType != "" {
		if v := os.Getenv(env.AuthType); v != "" {
			c.AuthType = v
		}
	}
}

func (c *Config) loadProviderDefaults() {
	if c.BaseURL == "" {
		c.BaseURL = defaultBaseURLs[c.Name]
	}
	if c.Model == "" {
		c.Model = defaultModels[c.Name]
	}
	if c.APIKey == "" {
		for _, name := range credentialVars[c.Name] {
			if v := os.Getenv(name); v != "" {
				c.APIKey = v
				break
			}
		}
	}
	if c.Name == Azure {
		if c.AuthType == "" {
			c.AuthType = AuthAPIKey
		}
		if c.APIVersion == "" {
			c.APIVersion = "2024-10-21"
		}
	}
}

func (c *Config) validate() error {
	if !slices.Contains(names, c.Name) {
		return fmt.Errorf("%w: %q", ErrUnknownProvider, c.Name)
	}
	if c.Model == "" {
		return fmt.Errorf("model required")
	}
	if t := c.TemperatureValue(); t < 0 || t > 2 {
		return fmt.Errorf("temperature out of range [0, 2]: %v", t)
	}
	if c.MaxTokens < 1 {
		return fmt.Errorf("max_tokens must be positive: %d", c.MaxTokens)
	}
	if _, err := time.ParseDuration(c.Timeout); err != nil {
		return fmt.Errorf("invalid timeout: %w", err)
	}
	if c.Name == Azure {
		if c.BaseURL == "" {
			return fmt.Errorf("base_url required for azure")
		}
		if c.AuthType != AuthAPIKey && c.AuthType != AuthAzureIdentity {
			return fmt.Errorf("invalid auth_type for azure: %q", c.AuthType)
		}
	}
	return nil
}
