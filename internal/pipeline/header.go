package pipeline

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Field is one header field. Value keeps the line breaks of continuation
// lines; Name keeps its original casing.
type Field struct {
	Name  string
	Value string
}

// Header is the parsed header block of a PEP, fields in order of appearance.
type Header struct {
	Fields []Field
	Title  string // last value seen for "Title"
	PEP    string // last value seen for "PEP"
}

// ParseHeader consumes the header block at the top of lines and returns it
// with the remaining body lines.
//
// The header ends at the first blank line, which is consumed. A line that is
// neither a continuation nor a "name: value" pair also ends the header, but
// is left at the start of the body. A document without a blank line is all
// header.
func ParseHeader(lines []string) (*Header, []string) {
	h := &Header{}
	i := 0
	for ; i < len(lines); i++ {
		line := lines[i]
		if strings.TrimSpace(line) == "" {
			i++
			break
		}

		if startsWithSpace(line) {
			if len(h.Fields) == 0 {
				break
			}
			h.Fields[len(h.Fields)-1].Value += line
		} else {
			name, value, ok := strings.Cut(line, ":")
			if !ok {
				break
			}
			h.Fields = append(h.Fields, Field{Name: name, Value: strings.TrimSpace(value)})
		}
		h.track(h.Fields[len(h.Fields)-1])
	}
	return h, lines[i:]
}

// track records the fields used for the page title.
func (h *Header) track(f Field) {
	switch strings.ToLower(f.Name) {
	case "title":
		h.Title = f.Value
	case "pep":
		h.PEP = f.Value
	}
}

// DocumentTitle returns "PEP <number> -- <title>", or whichever part exists.
func (h *Header) DocumentTitle() string {
	switch {
	case h.PEP != "" && h.Title != "":
		return "PEP " + h.PEP + " -- " + h.Title
	case h.PEP != "":
		return "PEP " + h.PEP
	default:
		return h.Title
	}
}

// Number parses the PEP field as an integer.
func (h *Header) Number() (int, error) {
	return strconv.Atoi(strings.TrimSpace(h.PEP))
}

// Get returns the value of the first field named name (case-insensitive).
func (h *Header) Get(name string) (string, bool) {
	for _, f := range h.Fields {
		if strings.EqualFold(f.Name, name) {
			return f.Value, true
		}
	}
	return "", false
}

// startsWithSpace reports whether the first character of s is whitespace.
func startsWithSpace(s string) bool {
	r, size := utf8.DecodeRuneInString(s)
	return size > 0 && unicode.IsSpace(r)
}
