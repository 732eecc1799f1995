package main

// Notes:
// - parseConvertFlags: we test short and long forms, positional args, and
//   the banner-count sentinel.
// - mergeFlags: we test that set flags override config and unset flags keep it.

import (
	"errors"
	"testing"

	"github.com/alnah/go-pep2html/internal/config"
	flag "github.com/spf13/pflag"
)

// ---------------------------------------------------------------------------
// TestParseConvertFlags - Flag parsing
// ---------------------------------------------------------------------------

func TestParseConvertFlags(t *testing.T) {
	t.Parallel()

	env, _, _ := testEnv(nil)
	f, args, err := parseConvertFlags([]string{
		"-o", "out", "-i", "peps", "--index-name", "index.txt",
		"-c", "work", "-q", "-v",
		"--style", "modern", "--asset-path", "assets", "--write-css",
		"--pep-url", "p%d.html", "--rfc-url", "r%d", "--date-format", "iso", "--banner-count", "0",
		"8", "pep-0001.txt",
	}, env)
	if err != nil {
		t.Fatalf("parseConvertFlags() error = %v", err)
	}

	checks := []struct {
		name string
		got  any
		want any
	}{
		{"output", f.io.output, "out"},
		{"inputDir", f.io.inputDir, "peps"},
		{"indexName", f.io.indexName, "index.txt"},
		{"config", f.common.config, "work"},
		{"quiet", f.common.quiet, true},
		{"verbose", f.common.verbose, true},
		{"style", f.assets.style, "modern"},
		{"assetPath", f.assets.assetPath, "assets"},
		{"writeCSS", f.assets.writeCSS, true},
		{"pepURL", f.settings.pepURL, "p%d.html"},
		{"rfcURL", f.settings.rfcURL, "r%d"},
		{"dateFormat", f.settings.dateFormat, "iso"},
		{"bannerCount", f.settings.bannerCount, 0},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s = %v, want %v", c.name, c.got, c.want)
		}
	}

	if len(args) != 2 || args[0] != "8" || args[1] != "pep-0001.txt" {
		t.Errorf("args = %v, want [8 pep-0001.txt]", args)
	}
}

func TestParseConvertFlags_Defaults(t *testing.T) {
	t.Parallel()

	env, _, _ := testEnv(nil)
	f, args, err := parseConvertFlags(nil, env)
	if err != nil {
		t.Fatalf("parseConvertFlags() error = %v", err)
	}
	if f.settings.bannerCount != bannerCountUnset {
		t.Errorf("bannerCount = %d, want sentinel %d", f.settings.bannerCount, bannerCountUnset)
	}
	if len(args) != 0 {
		t.Errorf("args = %v, want none", args)
	}
}

func TestParseConvertFlags_Errors(t *testing.T) {
	t.Parallel()

	t.Run("unknown flag", func(t *testing.T) {
		t.Parallel()
		env, _, _ := testEnv(nil)
		if _, _, err := parseConvertFlags([]string{"--nope"}, env); err == nil {
			t.Error("expected error for unknown flag")
		}
	})

	t.Run("help prints usage", func(t *testing.T) {
		t.Parallel()
		env, _, stderr := testEnv(nil)
		_, _, err := parseConvertFlags([]string{"--help"}, env)
		if !errors.Is(err, flag.ErrHelp) {
			t.Fatalf("error = %v, want flag.ErrHelp", err)
		}
		if stderr.Len() == 0 {
			t.Error("usage should be written to stderr")
		}
	})
}

// ---------------------------------------------------------------------------
// TestMergeFlags - CLI over config
// ---------------------------------------------------------------------------

func TestMergeFlags(t *testing.T) {
	t.Parallel()

	t.Run("set flags override", func(t *testing.T) {
		t.Parallel()

		cfg := config.DefaultConfig()
		cfg.Output.DefaultDir = "/cfg"
		cfg.Style = "pep"

		flags := &convertFlags{}
		flags.io.output = "/flag"
		flags.io.inputDir = "/peps"
		flags.io.indexName = "index.txt"
		flags.assets.style = "modern"
		flags.assets.assetPath = "/assets"
		flags.assets.writeCSS = true
		flags.settings.pepURL = "p%d.html"
		flags.settings.rfcURL = "r%d"
		flags.settings.dateFormat = "iso"
		flags.settings.bannerCount = 0

		mergeFlags(flags, cfg)

		if cfg.Output.DefaultDir != "/flag" {
			t.Errorf("Output.DefaultDir = %q, want /flag", cfg.Output.DefaultDir)
		}
		if cfg.Input.DefaultDir != "/peps" {
			t.Errorf("Input.DefaultDir = %q, want /peps", cfg.Input.DefaultDir)
		}
		if cfg.Index.Filename != "index.txt" {
			t.Errorf("Index.Filename = %q, want index.txt", cfg.Index.Filename)
		}
		if cfg.Style != "modern" || cfg.Assets.BasePath != "/assets" || !cfg.WriteStylesheet {
			t.Errorf("style settings = %q %q %v", cfg.Style, cfg.Assets.BasePath, cfg.WriteStylesheet)
		}
		if cfg.Settings.PEPURL != "p%d.html" || cfg.Settings.RFCURL != "r%d" || cfg.Settings.DateFormat != "iso" {
			t.Errorf("settings = %+v", cfg.Settings)
		}
		if cfg.Settings.BannerCount == nil || *cfg.Settings.BannerCount != 0 {
			t.Errorf("BannerCount = %v, want 0", cfg.Settings.BannerCount)
		}
	})

	t.Run("unset flags keep config", func(t *testing.T) {
		t.Parallel()

		cfg := config.DefaultConfig()
		cfg.Output.DefaultDir = "/cfg"
		cfg.WriteStylesheet = true

		flags := &convertFlags{}
		flags.settings.bannerCount = bannerCountUnset
		mergeFlags(flags, cfg)

		if cfg.Output.DefaultDir != "/cfg" {
			t.Errorf("Output.DefaultDir = %q, want /cfg", cfg.Output.DefaultDir)
		}
		if !cfg.WriteStylesheet {
			t.Error("WriteStylesheet should stay enabled")
		}
		if cfg.Settings.BannerCount != nil {
			t.Errorf("BannerCount = %v, want nil", *cfg.Settings.BannerCount)
		}
	})
}
