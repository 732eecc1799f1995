package pipeline

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/zostay/go-addr/pkg/addr"
)

// ErrMalformedReference indicates a non-numeric PEP number in a
// Replaces, Replaced-By or Requires field.
var ErrMalformedReference = errors.New("malformed PEP reference")

// authorSeparator splits Author and Discussions-To values.
var authorSeparator = regexp.MustCompile(`,\s*`)

// RenderedField is a header field ready for the header table. Both Name and
// Value are HTML-safe.
type RenderedField struct {
	Name  string
	Value string
}

// FieldRenderer applies the field-specific rewriting rules.
type FieldRenderer struct {
	settings Settings
	emails   *EmailPolicy
	pep      string    // raw value of the PEP field
	modTime  time.Time // fallback for an empty Last-Modified
}

// NewFieldRenderer creates a FieldRenderer for one document.
func NewFieldRenderer(s Settings, emails *EmailPolicy, pep string, modTime time.Time) *FieldRenderer {
	return &FieldRenderer{settings: s, emails: emails, pep: pep, modTime: modTime}
}

// Render rewrites f. Only a malformed cross-reference in Replaces,
// Replaced-By or Requires is an error; other parse failures fall back
// to plain text.
func (r *FieldRenderer) Render(f Field) (RenderedField, error) {
	out := RenderedField{Name: EscapeHTML(f.Name)}

	switch strings.ToLower(f.Name) {
	case "author":
		out.Value = r.renderPeople(f.Value, false)
	case "discussions-to":
		out.Value = r.renderPeople(f.Value, true)
	case "replaces", "replaced-by", "requires":
		v, err := r.renderReferences(f.Value)
		if err != nil {
			return RenderedField{}, fmt.Errorf("%s: %w", f.Name, err)
		}
		out.Value = v
	case "last-modified":
		out.Value = r.renderLastModified(f.Value)
	case "content-type":
		contentType := f.Value
		if contentType == "" {
			contentType = DefaultContentType
		}
		out.Value = anchor(fmt.Sprintf(r.settings.PEPURL, r.settings.ContentTypeRef), EscapeHTML(contentType))
	default:
		out.Value = EscapeHTML(f.Value)
	}
	return out, nil
}

// renderPeople handles comma-separated names, addresses and URLs.
func (r *FieldRenderer) renderPeople(value string, alwaysLink bool) string {
	var parts []string
	for _, part := range authorSeparator.Split(value, -1) {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		switch {
		case strings.Contains(part, "@"):
			name, address := parseAddress(part)
			var mail string
			if alwaysLink {
				mail = r.emails.Link(address, r.pep)
			} else {
				mail = r.emails.Render(address, r.pep)
			}
			if name == "" {
				parts = append(parts, mail)
			} else {
				parts = append(parts, hideAt(EscapeHTML(name))+" &lt;"+mail+"&gt;")
			}
		case strings.HasPrefix(part, "http:") || strings.HasPrefix(part, "https:"):
			parts = append(parts, anchor(part, EscapeHTML(part)))
		default:
			parts = append(parts, EscapeHTML(part))
		}
	}
	return strings.Join(parts, ", ")
}

// renderReferences links each PEP number of a reference list.
func (r *FieldRenderer) renderReferences(value string) (string, error) {
	tokens := strings.FieldsFunc(value, func(c rune) bool {
		return c == ',' || c == ' ' || c == '\t' || c == '\n'
	})
	if len(tokens) == 0 {
		return "", fmt.Errorf("%w: empty value", ErrMalformedReference)
	}
	links := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		n, err := strconv.Atoi(tok)
		if err != nil {
			return "", fmt.Errorf("%w: %q", ErrMalformedReference, tok)
		}
		links = append(links, anchor(fmt.Sprintf(r.settings.PEPURL, n), strconv.Itoa(n)))
	}
	return strings.Join(links, " "), nil
}

// renderLastModified links the date to the revision history of the PEP.
// Without a usable PEP number the date is returned as is.
func (r *FieldRenderer) renderLastModified(value string) string {
	date := value
	if date == "" && !r.modTime.IsZero() {
		date = r.modTime.Format(r.settings.DateLayout)
	}
	n, err := strconv.Atoi(strings.TrimSpace(r.pep))
	if err != nil {
		return date
	}
	return anchor(fmt.Sprintf(r.settings.RevisionURL, n), EscapeHTML(date))
}

// parseAddress splits "Display Name <local@domain>" or
// "local@domain (Display Name)" into a name and a bare address.
// Strict RFC 5322 parsing is tried first; anything it rejects is split
// leniently: the last word is the address, the rest is the name.
func parseAddress(s string) (name, address string) {
	clean, comment := extractComments(s)

	mb, err := addr.ParseEmailMailbox(strings.TrimSpace(clean))
	if err == nil && strings.Contains(clean, mb.DisplayName()) {
		name = mb.DisplayName()
		if name == "" {
			name = comment
		}
		return name, mb.Address()
	}

	words := strings.Fields(clean)
	if len(words) == 0 {
		return comment, ""
	}
	address = strings.Trim(words[len(words)-1], "<>")
	name = strings.Trim(strings.Join(words[:len(words)-1], " "), `"`)
	if name == "" {
		name = comment
	}
	return name, address
}

// extractComments removes parenthesized comments from s and returns them
// separately. Nested parentheses stay inside the comment.
func extractComments(s string) (clean, comment string) {
	var c, com strings.Builder
	depth := 0
	for _, r := range s {
		switch {
		case r == '(':
			depth++
			if depth > 1 {
				com.WriteRune(r)
			}
		case r == ')':
			depth--
			switch {
			case depth == 0:
			case depth < 0:
				depth = 0
				c.WriteRune(r)
			default:
				com.WriteRune(r)
			}
		case depth > 0:
			com.WriteRune(r)
		default:
			c.WriteRune(r)
		}
	}
	return c.String(), strings.TrimSpace(com.String())
}
