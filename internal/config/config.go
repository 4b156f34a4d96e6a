// Package config handles configuration for the account manager CLI,
// including defaults, JSON overlay, and command-line flags.
package config

// Config holds runtime settings.
//
// Fields:
//   - DatabaseDSN: path of the local sqlite store holding the slots.
//   - PasswordScheme: "plain" (compatibility default) or "bcrypt".
//   - Env: "development" enables human-readable debug logging; anything else
//     gets JSON at info level.
type Config struct {
	DatabaseDSN    string
	PasswordScheme string
	Env            string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabaseDSN = "accounts.db"
	c.PasswordScheme = "plain"
	c.Env = "development"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags. Later sources take precedence.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
