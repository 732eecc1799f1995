package pipeline

import (
	"errors"
	"strings"
)

// DefaultContentType applies to PEPs without a Content-Type field.
const DefaultContentType = "text/plain"

// ErrNotPEP indicates the header has neither a PEP nor a Content-Type field.
var ErrNotPEP = errors.New("input is not a PEP")

// SniffContentType scans the header block (up to the first blank line) and
// returns the declared content type. An explicit Content-Type field wins;
// otherwise a PEP field implies DefaultContentType. Returns ErrNotPEP when
// neither field is present.
func SniffContentType(lines []string) (string, error) {
	contentType := ""
	for _, line := range lines {
		l := strings.ToLower(strings.TrimSpace(line))
		if l == "" {
			break
		}
		switch {
		case strings.HasPrefix(l, "content-type:"):
			return parseContentType(l[len("content-type:"):]), nil
		case strings.HasPrefix(l, "pep:"):
			contentType = DefaultContentType
		}
	}
	if contentType == "" {
		return "", ErrNotPEP
	}
	return contentType, nil
}

// parseContentType returns the media type token of a Content-Type value,
// dropping parameters such as "; charset=utf-8".
func parseContentType(value string) string {
	mediaType, _, _ := strings.Cut(value, ";")
	fields := strings.Fields(mediaType)
	if len(fields) == 0 {
		return DefaultContentType
	}
	return fields[0]
}
