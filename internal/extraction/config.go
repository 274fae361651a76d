package extraction

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// DefaultKeywords are the business terms reported when found in extracted text.
var DefaultKeywords = []string{
	"company",
	"business",
	"revenue",
	"market",
	"product",
	"customer",
	"technology",
}

// Config holds text extraction settings.
type Config struct {
	MinTextLength int      `toml:"min_text_length"`
	Keywords      []string `toml:"keywords"`
}

// Env maps config fields to environment variable names for override injection.
type Env struct {
	MinTextLength string
	Keywords      string
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
	if overlay.MinTextLength != 0 {
		c.MinTextLength = overlay.MinTextLength
	}
	if overlay.Keywords != nil {
		c.Keywords = overlay.Keywords
	}
}

func (c *Config) loadDefaults() {
	if c.MinTextLength == 0 {
		c.MinTextLength = 20
	}
	if len(c.Keywords) == 0 {
		c.Keywords = DefaultKeywords
	}
}

func (c *Config) loadEnv(env *Env) {
	if env.MinTextLength != "" {
		if v := os.Getenv(env.MinTextLength); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				c.MinTextLength = n
			}
		}
	}
	if env.Keywords != "" {
		if v := os.Getenv(env.Keywords); v != "" {
			keywords := strings.Split(v, ",")
			c.Keywords = make([]string, 0, len(keywords))
			for _, kw := range keywords {
				if trimmed := strings.TrimSpace(kw); trimmed != "" {
					c.Keywords = append(c.Keywords, trimmed)
				}
			}
		}
	}
}

func (c *Config) validate() error {
	if c.MinTextLength < 1 {
		return fmt.Errorf("min_text_length must be positive: %d", c.MinTextLength)
	}
	return nil
}
