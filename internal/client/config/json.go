package config

import (
	"encoding/json"
	"os"

	"github.com/medixpert/medixpert-cli/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Values are
// copied into the runtime Config after parsing; absent fields leave the
// existing value untouched.
type JsonConfig struct {
	BaseURL     *string `json:"base_url"`
	ContentType *string `json:"content_type"`
	DatabaseDSN *string `json:"database_dsn"`
}

// parseJson overlays Config with values loaded from a JSON file.
//
// The file path is resolved from the -c/-config flags via
// flagx.JsonConfigFlags(); when empty, no JSON is loaded. Read or unmarshal
// errors panic (caller should recover if desired).
//
// Intended usage is: defaults -> parseJson -> parseFlags, where later stages
// override earlier ones.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.BaseURL != nil {
		cfg.BaseURL = *jc.BaseURL
	}
	if jc.ContentType != nil {
		cfg.ContentType = *jc.ContentType
	}
	if jc.DatabaseDSN != nil {
		cfg.DatabaseDSN = *jc.DatabaseDSN
	}
}
