package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/studentdir/internal/flagx"
	"github.com/dmitrijs2005/studentdir/internal/timex"
)

// JsonConfig is the on-disk shape of the config file. Absent keys keep the
// values set by earlier sources.
type JsonConfig struct {
	APIBaseURL     *string         `json:"api_base_url"`
	RequestTimeout *timex.Duration `json:"request_timeout"`
	LogFile        *string         `json:"log_file"`
	LogLevel       *string         `json:"log_level"`
}

// parseJson overlays cfg with the JSON file named by flagx.ConfigPath. It
// panics when the file cannot be read or parsed.
func parseJson(cfg *Config) {
	path := flagx.ConfigPath()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.APIBaseURL != nil {
		cfg.APIBaseURL = *jc.APIBaseURL
	}
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.LogFile != nil {
		cfg.LogFile = *jc.LogFile
	}
	if jc.LogLevel != nil {
		cfg.LogLevel = *jc.LogLevel
	}
}
