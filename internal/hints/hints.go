// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"strings"
)

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in ~/.config/go-pep2html/.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(p, ".config/go-pep2html") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForStyleNotFound returns hints for style not found errors.
func ForStyleNotFound(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available: " + strings.Join(available, ", "))
}

// ForMissingInput returns hints for a source file that does not exist.
func ForMissingInput(inputDir string) string {
	if inputDir == "" {
		inputDir = "the current directory"
	}
	return format("PEP numbers are looked up in " + inputDir + "; set --input-dir or input.defaultDir")
}

// ForNotPEP returns hints for documents rejected by content-type sniffing.
func ForNotPEP() string {
	return format("the header must have a PEP: or Content-Type: field before the first blank line")
}

// ForUnknownContentType returns hints for an unrecognized Content-Type.
func ForUnknownContentType(known []string) string {
	if len(known) == 0 {
		return ""
	}
	return format("supported content types: " + strings.Join(known, ", "))
}

// ForEngineUnavailable returns hints for a known but unavailable engine.
func ForEngineUnavailable() string {
	return format("render this PEP with its own toolchain, or set Content-Type: text/plain")
}

// ForMalformedReference returns hints for a bad Requires/Replaces value.
func ForMalformedReference() string {
	return format("Requires, Replaces and Replaced-By take PEP numbers separated by commas")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}
