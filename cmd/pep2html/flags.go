package main

import (
	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// ioFlags holds input and output location flags.
type ioFlags struct {
	output    string
	inputDir  string
	indexName string
}

// assetFlags holds stylesheet flags.
type assetFlags struct {
	style     string // Name or path of the stylesheet written by --write-css
	assetPath string // Override asset directory
	writeCSS  bool   // Write style.css next to the pages
}

// settingsFlags holds page settings overrides.
type settingsFlags struct {
	pepURL      string
	rfcURL      string
	dateFormat  string
	bannerCount int
}

// bannerCountUnset detects if --banner-count was explicitly set.
// Since 0 is a valid count, we use an out-of-range sentinel.
const bannerCountUnset = -1

// convertFlags holds all flags for the convert command.
type convertFlags struct {
	common   commonFlags
	io       ioFlags
	assets   assetFlags
	settings settingsFlags
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show content types and timing")
}

// addIOFlags adds input/output flags to a FlagSet.
func addIOFlags(fs *flag.FlagSet, f *ioFlags) {
	fs.StringVarP(&f.output, "output", "o", "", "output directory (default: next to each source)")
	fs.StringVarP(&f.inputDir, "input-dir", "i", "", "directory where PEP numbers are looked up")
	fs.StringVar(&f.indexName, "index-name", "", "file name of the PEP index document")
}

// addAssetFlags adds stylesheet flags to a FlagSet.
func addAssetFlags(fs *flag.FlagSet, f *assetFlags) {
	fs.StringVar(&f.style, "style", "", "CSS style name or file path")
	fs.StringVar(&f.assetPath, "asset-path", "", "custom asset directory")
	fs.BoolVar(&f.writeCSS, "write-css", false, "write style.css next to the pages")
}

// addSettingsFlags adds page settings flags to a FlagSet.
func addSettingsFlags(fs *flag.FlagSet, f *settingsFlags) {
	fs.StringVar(&f.pepURL, "pep-url", "", "PEP page URL template, e.g. pep-%04d.html")
	fs.StringVar(&f.rfcURL, "rfc-url", "", "RFC URL template, e.g. https://www.rfc-editor.org/rfc/rfc%d")
	fs.StringVar(&f.dateFormat, "date-format", "", "Last-Modified fallback format or preset")
	fs.IntVar(&f.bannerCount, "banner-count", bannerCountUnset, "number of banner images (0 = always the first)")
}

// parseConvertFlags parses convert command flags and returns positional args.
func parseConvertFlags(args []string, env *Environment) (*convertFlags, []string, error) {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	fs.SetOutput(env.Stderr)
	f := &convertFlags{}

	addIOFlags(fs, &f.io)
	addCommonFlags(fs, &f.common)
	addAssetFlags(fs, &f.assets)
	addSettingsFlags(fs, &f.settings)

	fs.Usage = func() { printConvertUsage(env.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}
