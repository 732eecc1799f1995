package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/alnah/go-pep2html/internal/config"
)

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath string // PEP2HTML_CONFIG: config file name or path
	Style      string // PEP2HTML_STYLE: CSS style name or path
	InputDir   string // PEP2HTML_INPUT_DIR: directory where PEP numbers are looked up
	OutputDir  string // PEP2HTML_OUTPUT_DIR: default output directory
	AssetPath  string // PEP2HTML_ASSET_PATH: custom asset directory
	IndexName  string // PEP2HTML_INDEX_NAME: file name of the index document
	DateFormat string // PEP2HTML_DATE_FORMAT: Last-Modified fallback format
}

// envPrefix starts every recognized variable.
const envPrefix = "PEP2HTML_"

// knownEnvVars lists valid PEP2HTML_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"PEP2HTML_CONFIG":      true,
	"PEP2HTML_STYLE":       true,
	"PEP2HTML_INPUT_DIR":   true,
	"PEP2HTML_OUTPUT_DIR":  true,
	"PEP2HTML_ASSET_PATH":  true,
	"PEP2HTML_INDEX_NAME":  true,
	"PEP2HTML_DATE_FORMAT": true,
}

// loadEnvConfig reads configuration from environment variables.
func loadEnvConfig(getenv func(string) string) *envConfig {
	return &envConfig{
		ConfigPath: getenv("PEP2HTML_CONFIG"),
		Style:      getenv("PEP2HTML_STYLE"),
		InputDir:   getenv("PEP2HTML_INPUT_DIR"),
		OutputDir:  getenv("PEP2HTML_OUTPUT_DIR"),
		AssetPath:  getenv("PEP2HTML_ASSET_PATH"),
		IndexName:  getenv("PEP2HTML_INDEX_NAME"),
		DateFormat: getenv("PEP2HTML_DATE_FORMAT"),
	}
}

// warnUnknownEnvVars writes warnings for unrecognized PEP2HTML_* variables.
// Helps catch typos like PEP2HTML_OUTPUTDIR.
func warnUnknownEnvVars(w io.Writer, environ []string) {
	for _, kv := range environ {
		if !strings.HasPrefix(kv, envPrefix) {
			continue
		}
		name, _, _ := strings.Cut(kv, "=")
		if !knownEnvVars[name] {
			fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
		}
	}
}

// applyEnvConfig applies environment variable values to config.
// A set variable overrides the config file value. This ensures:
// CLI flags > env vars > config file > defaults
// (CLI flags are applied later via mergeFlags)
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.Style != "" {
		cfg.Style = env.Style
	}
	if env.InputDir != "" {
		cfg.Input.DefaultDir = env.InputDir
	}
	if env.OutputDir != "" {
		cfg.Output.DefaultDir = env.OutputDir
	}
	if env.AssetPath != "" {
		cfg.Assets.BasePath = env.AssetPath
	}
	if env.IndexName != "" {
		cfg.Index.Filename = env.IndexName
	}
	if env.DateFormat != "" {
		cfg.Settings.DateFormat = env.DateFormat
	}
}
