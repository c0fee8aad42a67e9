// Package config holds runtime settings for the MediXpert CLI and the
// layered loading logic: defaults, then an optional JSON file, then
// command-line flags, with later sources taking precedence.
package config

// Config holds runtime settings for the MediXpert CLI.
//
// Fields:
//   - BaseURL: base URL of the backend REST API, including the /api prefix.
//   - ContentType: content type sent (and accepted) on every request.
//   - DatabaseDSN: sqlite DSN for the local session database.
type Config struct {
	BaseURL     string
	ContentType string
	DatabaseDSN string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BaseURL = "http://localhost:8000/api"
	c.ContentType = "application/json"
	c.DatabaseDSN = "medixpert.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
