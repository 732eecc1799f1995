package main

import (
	"fmt"
	"io"
	"strings"

	pep2html "github.com/alnah/go-pep2html"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: pep2html [command] [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  convert    Convert PEP text files to HTML (default)")
	fmt.Fprintln(w, "  config     Print the effective configuration as YAML")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'pep2html help <command>' for details on a specific command.")
}

// printConvertUsage prints usage for the convert command.
func printConvertUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: pep2html [convert] [flags] [pep ...]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert PEP text files to HTML pages.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  pep      File, directory, or PEP number (looked up as pep-NNNN.txt)")
	fmt.Fprintln(w, "           Without arguments, every pep-*.txt in the input directory")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <dir>        Output directory (default: next to each source)")
	fmt.Fprintln(w, "  -i, --input-dir <dir>     Directory where PEP numbers are looked up")
	fmt.Fprintln(w, "      --index-name <file>   File name of the PEP index (default: pep-0000.txt)")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Page:")
	fmt.Fprintln(w, "      --pep-url <tpl>       PEP page URL template (default: pep-%04d.html)")
	fmt.Fprintln(w, "      --rfc-url <tpl>       RFC URL template")
	fmt.Fprintln(w, "      --date-format <s>     Last-Modified fallback format (default: DD-MMM-YYYY)")
	fmt.Fprintln(w, "                            Tokens: YYYY, YY, MMMM, MMM, MM, M, DD, D")
	fmt.Fprintln(w, "                            Presets (case-insensitive): iso, european, us, long, rfc")
	fmt.Fprintln(w, "      --banner-count <n>    Number of banner images (0 = always the first)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Styling:")
	fmt.Fprintln(w, "      --style <name|path>   CSS style for --write-css (available: "+strings.Join(pep2html.EmbeddedStyles(), ", ")+")")
	fmt.Fprintln(w, "      --asset-path <dir>    Custom asset directory (styles/<name>.css)")
	fmt.Fprintln(w, "      --write-css           Write style.css next to the pages")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors and warnings")
	fmt.Fprintln(w, "  -v, --verbose             Show content types and timing")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  PEP2HTML_CONFIG, PEP2HTML_STYLE, PEP2HTML_INPUT_DIR, PEP2HTML_OUTPUT_DIR,")
	fmt.Fprintln(w, "  PEP2HTML_ASSET_PATH, PEP2HTML_INDEX_NAME, PEP2HTML_DATE_FORMAT")
	fmt.Fprintln(w, "  Flags override environment variables, which override the config file.")
}

// printConfigUsage prints usage for the config command.
func printConfigUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: pep2html config [-c <name>]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Print the effective configuration as YAML.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return
	}

	switch args[0] {
	case "convert":
		printConvertUsage(env.Stdout)
	case "config":
		printConfigUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: pep2html version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: pep2html help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
	}
}
