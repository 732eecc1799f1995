package pipeline

import (
	"regexp"
	"strings"
	"time"
)

// crlfOrCR matches Windows and old Mac line endings.
var crlfOrCR = regexp.MustCompile(`\r\n?`)

// Document is one input file split into lines.
type Document struct {
	Name    string    // base filename, e.g. "pep-0008.txt"
	Lines   []string  // lines with their "\n" terminator, if any
	ModTime time.Time // used when Last-Modified is empty
	IsIndex bool      // the PEP index gets summary-row linking
}

// SplitLines normalizes line endings to "\n" and splits content into lines,
// each keeping its terminator. The last line has none if content does not
// end with a newline.
func SplitLines(content string) []string {
	if content == "" {
		return nil
	}
	lines := strings.SplitAfter(normalizeLineEndings(content), "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// normalizeLineEndings converts \r\n and \r to \n.
func normalizeLineEndings(content string) string {
	return crlfOrCR.ReplaceAllString(content, "\n")
}
