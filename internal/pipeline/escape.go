package pipeline

import "strings"

// textEscaper escapes the characters that are significant in HTML text.
// Quotes are left alone so body text reads the same as its source.
var textEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
)

// attrEscaper additionally escapes double quotes for attribute values.
var attrEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)

// EscapeHTML escapes &, < and > in s.
func EscapeHTML(s string) string {
	return textEscaper.Replace(s)
}

// escapeAttr escapes s for use inside a double-quoted attribute.
func escapeAttr(s string) string {
	return attrEscaper.Replace(s)
}

// anchor builds an <a> element. The href is attribute-escaped and the
// label is inserted as given, so callers escape it first.
func anchor(href, label string) string {
	return `<a href="` + escapeAttr(href) + `">` + label + `</a>`
}
