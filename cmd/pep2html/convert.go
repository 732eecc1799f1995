package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	pep2html "github.com/alnah/go-pep2html"
	"github.com/alnah/go-pep2html/internal/config"
	"github.com/alnah/go-pep2html/internal/fileutil"
	"github.com/alnah/go-pep2html/internal/hints"
	flag "github.com/spf13/pflag"
)

// Sentinel errors for CLI operations.
var (
	ErrUsage            = errors.New("invalid usage")
	ErrNoInput          = errors.New("no input specified")
	ErrReadStyle        = errors.New("failed to read stylesheet")
	ErrWriteOutput      = errors.New("failed to write output")
	ErrConversionFailed = errors.New("conversion failed")
)

// stylesheetName is the file written by --write-css.
const stylesheetName = "style.css"

// runConvertCmd parses convert flags and runs the conversion.
func runConvertCmd(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseConvertFlags(args, env)
	if errors.Is(err, flag.ErrHelp) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}
	return runConvert(ctx, positional, flags, env)
}

// runConvert orchestrates the conversion process.
func runConvert(ctx context.Context, positionalArgs []string, flags *convertFlags, env *Environment) error {
	cfg, err := loadRunConfig(flags.common.config, env)
	if err != nil {
		return err
	}

	// Merge CLI flags into config (CLI wins)
	mergeFlags(flags, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	conv, err := pep2html.NewConverter(pep2html.WithSettings(buildSettings(cfg)))
	if err != nil {
		return err
	}

	files, err := discoverFiles(positionalArgs, cfg.Input.DefaultDir, cfg.Output.DefaultDir)
	if err != nil {
		return err
	}

	var css string
	if cfg.WriteStylesheet {
		if css, err = resolveStylesheet(cfg); err != nil {
			return err
		}
	}

	params := &conversionParams{
		indexName: cfg.Index.Filename,
		inputDir:  cfg.Input.DefaultDir,
		now:       env.Now,
	}
	results := convertBatch(ctx, conv, files, params)

	if cfg.WriteStylesheet {
		if err := writeStylesheets(css, results); err != nil {
			return err
		}
	}

	failedCount := printResults(results, flags.common.quiet, flags.common.verbose, env)
	if failedCount > 0 {
		return fmt.Errorf("%w: %d of %d document(s)", ErrConversionFailed, failedCount, len(results))
	}
	return nil
}

// loadRunConfig builds the effective configuration from the config file
// and PEP2HTML_* variables. CLI flags are merged by the caller.
func loadRunConfig(configFlag string, env *Environment) (*config.Config, error) {
	warnUnknownEnvVars(env.Stderr, env.Environ())
	envCfg := loadEnvConfig(env.Getenv)

	name := configFlag
	if name == "" {
		name = envCfg.ConfigPath
	}

	cfg := config.DefaultConfig()
	if name != "" {
		loaded, err := config.LoadConfig(name)
		if err != nil {
			if errors.Is(err, config.ErrConfigNotFound) {
				return nil, fmt.Errorf("loading config: %w%s", err, hints.ForConfigNotFound(searchedConfigPaths(name)))
			}
			return nil, fmt.Errorf("loading config: %w", err)
		}
		cfg = loaded
	}

	applyEnvConfig(envCfg, cfg)
	return cfg, nil
}

// searchedConfigPaths lists where LoadConfig looks for a config name.
func searchedConfigPaths(name string) []string {
	if fileutil.IsFilePath(name) {
		return nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return nil
	}
	return []string{filepath.Join(dir, config.DefaultConfigDir, name+".yaml")}
}

// mergeFlags merges CLI flags into config. CLI values override config values.
func mergeFlags(flags *convertFlags, cfg *config.Config) {
	if flags.io.output != "" {
		cfg.Output.DefaultDir = flags.io.output
	}
	if flags.io.inputDir != "" {
		cfg.Input.DefaultDir = flags.io.inputDir
	}
	if flags.io.indexName != "" {
		cfg.Index.Filename = flags.io.indexName
	}

	if flags.assets.style != "" {
		cfg.Style = flags.assets.style
	}
	if flags.assets.assetPath != "" {
		cfg.Assets.BasePath = flags.assets.assetPath
	}
	if flags.assets.writeCSS {
		cfg.WriteStylesheet = true
	}

	if flags.settings.pepURL != "" {
		cfg.Settings.PEPURL = flags.settings.pepURL
	}
	if flags.settings.rfcURL != "" {
		cfg.Settings.RFCURL = flags.settings.rfcURL
	}
	if flags.settings.dateFormat != "" {
		cfg.Settings.DateFormat = flags.settings.dateFormat
	}
	if flags.settings.bannerCount != bannerCountUnset {
		n := flags.settings.bannerCount
		cfg.Settings.BannerCount = &n
	}
}

// buildSettings overlays the config's non-empty settings on the defaults.
func buildSettings(cfg *config.Config) pep2html.Settings {
	s := pep2html.DefaultSettings()
	c := cfg.Settings

	overrides := []struct {
		value string
		dst   *string
	}{
		{c.RFCURL, &s.RFCURL},
		{c.PEPURL, &s.PEPURL},
		{c.SourceURL, &s.SourceURL},
		{c.RevisionURL, &s.RevisionURL},
		{c.HomeURL, &s.HomeURL},
		{c.IndexURL, &s.IndexURL},
		{c.Stylesheet, &s.Stylesheet},
		{c.BannerURL, &s.BannerURL},
		{c.DateFormat, &s.DateFormat},
	}
	for _, o := range overrides {
		if o.value != "" {
			*o.dst = o.value
		}
	}

	if c.BannerCount != nil {
		s.BannerCount = *c.BannerCount
	}
	if len(c.UnmaskedEmails) > 0 {
		s.UnmaskedEmails = append([]string(nil), c.UnmaskedEmails...)
	}
	return s
}

// resolveStylesheet returns the CSS written by --write-css. A style that
// looks like a path is read from disk; anything else is a style name
// resolved through the asset loader.
func resolveStylesheet(cfg *config.Config) (string, error) {
	style := cfg.Style
	if style == "" {
		style = pep2html.DefaultStyle
	}

	if fileutil.IsFilePath(style) {
		content, err := os.ReadFile(style) // #nosec G304 -- user-provided stylesheet path
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrReadStyle, err)
		}
		return string(content), nil
	}

	loader, err := pep2html.NewAssetLoader(cfg.Assets.BasePath)
	if err != nil {
		return "", err
	}
	css, err := loader.LoadStyle(style)
	if err != nil {
		if errors.Is(err, pep2html.ErrStyleNotFound) {
			return "", fmt.Errorf("%w%s", err, hints.ForStyleNotFound(pep2html.EmbeddedStyles()))
		}
		return "", err
	}
	return css, nil
}

// writeStylesheets writes css once into every directory that received a page.
func writeStylesheets(css string, results []ConversionResult) error {
	written := make(map[string]bool)
	for _, r := range results {
		if r.Err != nil || r.OutputPath == "" {
			continue
		}
		dir := filepath.Dir(r.OutputPath)
		if written[dir] {
			continue
		}
		written[dir] = true

		f, err := fileutil.CreateOutput(filepath.Join(dir, stylesheetName))
		if err != nil {
			return fmt.Errorf("%w: %v", ErrWriteOutput, err)
		}
		_, werr := f.WriteString(css)
		if err := fileutil.FinishOutput(f); err != nil && werr == nil {
			werr = err
		}
		if werr != nil {
			return fmt.Errorf("%w: %s: %v", ErrWriteOutput, stylesheetName, werr)
		}
	}
	return nil
}
