package retry

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds bounded retry parameters. Durations are expressed as
// Go duration strings (e.g. "500ms") so they round-trip through TOML.
type Config struct {
	MaxAttempts       int     `toml:"max_attempts"`
	Backoff           string  `toml:"backoff"`
	BackoffMultiplier float64 `toml:"backoff_multiplier"`
	MaxBackoff        string  `toml:"max_backoff"`
	AttemptTimeout    string  `toml:"attempt_timeout"`
}

// Env maps config fields to environment variable names for override injection.
type Env struct {
	MaxAttempts       string
	Backoff           string
	BackoffMultiplier string
	MaxBackoff        string
	AttemptTimeout    string
}

// BackoffDuration returns Backoff as a time.Duration.
func (c *Config) BackoffDuration() time.Duration {
	d, _ := time.ParseDuration(c.Backoff)
	return d
}

// MaxBackoffDuration returns MaxBackoff as a time.Duration. Zero means uncapped.
func (c *Config) MaxBackoffDuration() time.Duration {
	if c.MaxBackoff == "" {
		return 0
	}
	d, _ := time.ParseDuration(c.MaxBackoff)
	return d
}

// AttemptTimeoutDuration returns AttemptTimeout as a time.Duration. Zero means unbounded.
func (c *Config) AttemptTimeoutDuration() time.Duration {
	if c.AttemptTimeout == "" {
		return 0
	}
	d, _ := time.ParseDuration(c.AttemptTimeout)
	return d
}

// Finalize applies defaults, environment variable overrides, and validation.
func (c *Config) Finalize(env *Env) error {
	c.loadDefaults()
	if env != nil {
		c.loadEnv(env)
	}
	return c.validate()
}

// Merge overwrites non-zero fields from overlay.
func (c *Config) Merge(overlay *Config) {
	if overlay.MaxAttempts != 0 {
		c.MaxAttempts = overlay.MaxAttempts
	}
	if overlay.Backoff != "" {
		c.Backoff = overlay.Backoff
	}
	if overlay.BackoffMultiplier != 0 {
		c.BackoffMultiplier = overlay.BackoffMultiplier
	}
	if overlay.MaxBackoff != "" {
		c.MaxBackoff = overlay.MaxBackoff
	}
	if overlay.AttemptTimeout != "" {
		c.AttemptTimeout = overlay.AttemptTimeout
	}
}

func (c *Config) loadDefaults() {
	if c.MaxAttempts == 0 {
		c.MaxAttempts = 3
	}
	if c.Backoff == "" {
		c.Backoff = "500ms"
	}
	if c.BackoffMultiplier == 0 {
		c.BackoffMultiplier = 1
	}
	if c.AttemptTimeout == "" {
		c.AttemptTimeout = "60s"
	}
}

func (c *Config) loadEnv(env *Env) {
	if env.MaxAttempts != "" {
		if v := os.Getenv(env.MaxAttempts); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				c.MaxAttempts = n
			}
		}
	}
	if env.Backoff != "" {
		if v := os.Getenv(env.Backoff); v != "" {
			c.Backoff = v
		}
	}
	if env.BackoffMultiplier != "" {
		if v := os.Getenv(env.BackoffMultiplier); v != "" {
			if f, err := strconv.ParseFloat(v, 64); err == nil {
				c.BackoffMultiplier = f
			}
		}
	}
	if env.MaxBackoff != "" {
		if v := os.Getenv(env.MaxBackoff); v != "" {
			c.MaxBackoff = v
		}
	}
	if env.AttemptTimeout != "" {
		if v := os.Getenv(env.AttemptTimeout); v != "" {
			c.AttemptTimeout = v
		}
	}
}

func (c *Config) validate() error {
	if c.MaxAttempts < 1 {
		return fmt.Errorf("max_attempts must be at least 1: %d", c.MaxAttempts)
	}
	if _, err := time.ParseDuration(c.Backoff); err != nil {
		return fmt.Errorf("invalid backoff: %w", err)
	}
	if c.BackoffMultiplier < 1 {
		return fmt.Errorf("backoff_multiplier must be at least 1: %v", c.BackoffMultiplier)
	}
	if c.MaxBackoff != "" {
		if _, err := time.ParseDuration(c.MaxBackoff); err != nil {
			return fmt.Errorf("invalid max_backoff: %w", err)
		}
	}
	if c.AttemptTimeout != "" {
		if _, err := time.ParseDuration(c.AttemptTimeout); err != nil {
			return fmt.Errorf("invalid attempt_timeout: %w", err)
		}
	}
	return nil
}
