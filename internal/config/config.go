package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-pep2html/internal/dateutil"
	"github.com/alnah/go-pep2html/internal/fileutil"
	"github.com/alnah/go-pep2html/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// Field length limits.
const (
	MaxPathLength       = 4096 // Filesystem paths
	MaxFilenameLength   = 255  // Single path component
	MaxStyleLength      = 4096 // Style name or path
	MaxURLLength        = 2048 // Browser limit
	MaxEmailLength      = 254  // RFC 5321
	MaxDateFormatLength = dateutil.MaxDateFormatLength
	MaxUnmaskedEmails   = 100
	MaxBannerCount      = 1000
)

// DefaultConfigDir is the directory under the user config directory that
// LoadConfig searches for config names.
const DefaultConfigDir = "go-pep2html"

// Config holds all configuration for a conversion run.
type Config struct {
	Input           InputConfig    `yaml:"input"`
	Output          OutputConfig   `yaml:"output"`
	Style           string         `yaml:"style"`           // Embedded style name or CSS file path
	WriteStylesheet bool           `yaml:"writeStylesheet"` // Write the stylesheet next to the pages
	Assets          AssetsConfig   `yaml:"assets"`
	Index           IndexConfig    `yaml:"index"`
	Settings        SettingsConfig `yaml:"settings"`
}

// InputConfig defines input source options.
type InputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Directory searched for PEP numbers (empty = current directory)
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default output directory (empty = same as source)
}

// AssetsConfig defines asset loading options.
type AssetsConfig struct {
	BasePath string `yaml:"basePath"` // Empty = use embedded styles only
}

// IndexConfig identifies the PEP index document.
type IndexConfig struct {
	Filename string `yaml:"filename"` // Base name, e.g. "pep-0000.txt"
}

// SettingsConfig overrides the page settings. Empty fields keep the
// built-in defaults.
type SettingsConfig struct {
	RFCURL         string   `yaml:"rfcURL"`
	PEPURL         string   `yaml:"pepURL"`
	SourceURL      string   `yaml:"sourceURL"`
	RevisionURL    string   `yaml:"revisionURL"`
	HomeURL        string   `yaml:"homeURL"`
	IndexURL       string   `yaml:"indexURL"`
	Stylesheet     string   `yaml:"stylesheet"`
	BannerURL      string   `yaml:"bannerURL"`
	BannerCount    *int     `yaml:"bannerCount"` // nil = default; 0 always uses banner 0
	DateFormat     string   `yaml:"dateFormat"`  // Token format or preset, see dateutil
	UnmaskedEmails []string `yaml:"unmaskedEmails"`
}

// DefaultIndexFilename is the PEP index document.
const DefaultIndexFilename = "pep-0000.txt"

// Validate checks field lengths and value ranges.
// Called automatically by LoadConfig, but available for consumers
// who construct Config manually.
func (c *Config) Validate() error {
	fields := []struct {
		name  string
		value string
		max   int
	}{
		{"input.defaultDir", c.Input.DefaultDir, MaxPathLength},
		{"output.defaultDir", c.Output.DefaultDir, MaxPathLength},
		{"style", c.Style, MaxStyleLength},
		{"assets.basePath", c.Assets.BasePath, MaxPathLength},
		{"index.filename", c.Index.Filename, MaxFilenameLength},
		{"settings.rfcURL", c.Settings.RFCURL, MaxURLLength},
		{"settings.pepURL", c.Settings.PEPURL, MaxURLLength},
		{"settings.sourceURL", c.Settings.SourceURL, MaxURLLength},
		{"settings.revisionURL", c.Settings.RevisionURL, MaxURLLength},
		{"settings.homeURL", c.Settings.HomeURL, MaxURLLength},
		{"settings.indexURL", c.Settings.IndexURL, MaxURLLength},
		{"settings.stylesheet", c.Settings.Stylesheet, MaxURLLength},
		{"settings.bannerURL", c.Settings.BannerURL, MaxURLLength},
		{"settings.dateFormat", c.Settings.DateFormat, MaxDateFormatLength},
	}
	for _, f := range fields {
		if err := validateFieldLength(f.name, f.value, f.max); err != nil {
			return err
		}
	}

	if strings.ContainsAny(c.Index.Filename, `/\`) {
		return fmt.Errorf("%w: index.filename: %q must be a base name", ErrInvalidValue, c.Index.Filename)
	}

	if n := c.Settings.BannerCount; n != nil && (*n < 0 || *n > MaxBannerCount) {
		return fmt.Errorf("%w: settings.bannerCount: must be between 0 and %d, got %d", ErrInvalidValue, MaxBannerCount, *n)
	}

	if len(c.Settings.UnmaskedEmails) > MaxUnmaskedEmails {
		return fmt.Errorf("%w: settings.unmaskedEmails: %d entries, max %d",
			ErrInvalidValue, len(c.Settings.UnmaskedEmails), MaxUnmaskedEmails)
	}
	for i, email := range c.Settings.UnmaskedEmails {
		name := fmt.Sprintf("settings.unmaskedEmails[%d]", i)
		if err := validateFieldLength(name, email, MaxEmailLength); err != nil {
			return err
		}
		if !strings.Contains(email, "@") {
			return fmt.Errorf("%w: %s: %q is not an email address", ErrInvalidValue, name, email)
		}
	}

	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns the configuration used without a config file.
func DefaultConfig() *Config {
	return &Config{
		Index: IndexConfig{Filename: DefaultIndexFilename},
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
// Missing keys keep the values of DefaultConfig.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}
	if cfg.Index.Filename == "" {
		cfg.Index.Filename = DefaultIndexFilename
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, ~/.config/go-pep2html/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2) // 2 locations

	for _, ext := range extensions {
		localPath := name + ext
		if fileutil.FileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, DefaultConfigDir, name+ext)
			if fileutil.FileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}
