package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/accountkeeper/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Parsed values
// are copied into the runtime Config; fields absent from the file keep their
// current (default) values.
type JsonConfig struct {
	DatabaseDSN    string `json:"database_dsn"`
	PasswordScheme string `json:"password_scheme"`
	Env            string `json:"env"`
}

// parseJson overlays Config with values loaded from a JSON file. The file
// path comes from the -c/-config flags; when absent, nothing is loaded.
// Read or unmarshal errors panic (caller may recover if desired).
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.ConfigFileFlag()
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

	if jc.DatabaseDSN != "" {
		cfg.DatabaseDSN = jc.DatabaseDSN
	}
	if jc.PasswordScheme != "" {
		cfg.PasswordScheme = jc.PasswordScheme
	}
	if jc.Env != "" {
		cfg.Env = jc.Env
	}
}
