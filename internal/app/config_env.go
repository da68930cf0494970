package app

import (
	"os"
	"strings"
)

// ApplyEnvToConfig overlays environment variables into cfg for fields
// still holding their flag defaults, keeping the precedence
// flags > env > file config. Call after any dotenv files are loaded.
func ApplyEnvToConfig(cfg *Config) {
	if cfg == nil {
		return
	}
	if cfg.InputPath == "" || cfg.InputPath == InputDefault {
		if v := strings.TrimSpace(os.Getenv("SCRAPE_INPUT")); v != "" {
			cfg.InputPath = v
		}
	}
	if cfg.OutputPath == "" || cfg.OutputPath == OutputDefault {
		if v := strings.TrimSpace(os.Getenv("SCRAPE_OUTPUT")); v != "" {
			cfg.OutputPath = v
		}
	}
	if cfg.OutputPDFPath == "" {
		cfg.OutputPDFPath = strings.TrimSpace(os.Getenv("SCRAPE_OUTPUT_PDF"))
	}
}
