package pipeline

import (
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// localVariables starts the editor trailer; it and everything after it
// are dropped.
const localVariables = "Local Variables:"

// indexNumber matches the PEP number column of an index summary row.
var indexNumber = regexp.MustCompile(`^\d{1,4}$`)

// preState tracks whether a <pre> block is open.
type preState int

const (
	preClosed preState = iota
	preOpen
)

// lineKind is the classification of one body line.
type lineKind int

const (
	lineFormFeed lineKind = iota
	lineTrailer
	lineHeading
	lineBlank
	lineContent
)

// BodyTransformer turns body lines into headings and preformatted runs.
type BodyTransformer struct {
	fixer   *LinkFixer
	emails  *EmailPolicy
	pepURL  string
	pep     string
	isIndex bool
}

// NewBodyTransformer creates a BodyTransformer for doc. pep is the raw
// value of the PEP header field.
func NewBodyTransformer(s Settings, emails *EmailPolicy, doc Document, pep string) *BodyTransformer {
	return &BodyTransformer{
		fixer:   NewLinkFixer(s, doc.Name),
		emails:  emails,
		pepURL:  s.PEPURL,
		pep:     pep,
		isIndex: doc.IsIndex,
	}
}

// Transform writes the markup for lines to w.
//
// Transitions:
//
//	heading:  close <pre> if open, emit <h3>; state closed
//	blank:    skipped while closed, kept inside an open <pre>
//	content:  open <pre> if closed, emit the fixed line; state open
//	end:      close <pre> if open
//
// An unindented line is a heading only when more text follows it; the
// last non-blank line of the body is always content.
func (t *BodyTransformer) Transform(w io.Writer, lines []string) error {
	ew := &errWriter{w: w}
	state := preClosed

	body := bodyLines(lines)
	last := lastTextLine(body)
	for i, text := range body {
		kind := classifyLine(text)
		if kind == lineHeading && i == last {
			kind = lineContent
		}
		switch kind {
		case lineHeading:
			if state == preOpen {
				ew.printf("</pre>\n")
			}
			ew.printf("<h3>%s</h3>\n", t.fixer.Fix(strings.TrimSpace(text)))
			state = preClosed
		case lineBlank:
			if state == preClosed {
				continue
			}
			ew.printf("%s\n", text)
		case lineContent:
			if state == preClosed {
				ew.printf("<pre>\n")
				state = preOpen
			}
			ew.printf("%s\n", t.content(text))
		}
		if ew.err != nil {
			return ew.err
		}
	}

	if state == preOpen {
		ew.printf("</pre>\n")
	}
	return ew.err
}

// bodyLines strips terminators, drops form-feed lines and cuts the body
// at the editor trailer.
func bodyLines(lines []string) []string {
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		text := strings.TrimSuffix(line, "\n")
		switch classifyLine(text) {
		case lineFormFeed:
			continue
		case lineTrailer:
			return out
		}
		out = append(out, text)
	}
	return out
}

// lastTextLine returns the index of the last non-blank line, or -1.
func lastTextLine(body []string) int {
	for i := len(body) - 1; i >= 0; i-- {
		if strings.TrimSpace(body[i]) != "" {
			return i
		}
	}
	return -1
}

// classifyLine decides how a body line (without terminator) is handled.
func classifyLine(text string) lineKind {
	trimmed := strings.TrimSpace(text)
	switch {
	case strings.ContainsRune(text, '\f') && trimmed == "":
		return lineFormFeed
	case trimmed == localVariables:
		return lineTrailer
	case trimmed == "":
		return lineBlank
	case !startsWithSpace(text):
		return lineHeading
	default:
		return lineContent
	}
}

// content renders a content line. The index document links the number
// column of summary rows and masks trailing addresses of owner rows.
func (t *BodyTransformer) content(text string) string {
	if t.isIndex {
		fields := strings.Fields(text)
		if len(fields) > 1 && indexNumber.MatchString(fields[1]) {
			n, _ := strconv.Atoi(fields[1])
			return replaceField(text, 1, anchor(fmt.Sprintf(t.pepURL, n), fields[1]))
		}
		if len(fields) > 0 && strings.Contains(fields[len(fields)-1], "@") {
			last := len(fields) - 1
			return replaceField(text, last, t.emails.Render(fields[last], t.pep))
		}
	}
	return t.fixer.Fix(text)
}

// replaceField substitutes the markup repl for the idx-th whitespace
// separated field of text, escaping the text around it.
func replaceField(text string, idx int, repl string) string {
	start, end := fieldBounds(text, idx)
	if start < 0 {
		return EscapeHTML(text)
	}
	return EscapeHTML(text[:start]) + repl + EscapeHTML(text[end:])
}

// fieldBounds returns the byte range of the idx-th field of text, or
// (-1, -1) if there are not enough fields.
func fieldBounds(text string, idx int) (int, int) {
	n := -1
	inField := false
	start := 0
	for i, r := range text {
		space := unicode.IsSpace(r)
		switch {
		case !space && !inField:
			inField = true
			start = i
			n++
		case space && inField:
			inField = false
			if n == idx {
				return start, i
			}
		}
	}
	if inField && n == idx {
		return start, len(text)
	}
	return -1, -1
}

// errWriter keeps the first write error and drops later writes.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...any) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}
