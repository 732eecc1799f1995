package pipeline

import (
	"fmt"
	"path"
	"regexp"
	"strconv"
	"strings"
)

// TokenKind classifies a piece of body text matched by the link pattern.
type TokenKind int

// Token kinds, in matching priority order.
const (
	TokenLiteral TokenKind = iota // any other single character
	TokenURL                      // http:, https: or ftp: URL
	TokenDocRef                   // pep-NNNN or pep-NNNN.txt file reference
	TokenRFC                      // "RFC 822", "RFC-822", "RFC822"
	TokenPEP                      // "PEP 8"
)

// Submatch group indexes in linkPattern.
const (
	groupURL    = 1
	groupDocRef = 2
	groupRFCNum = 4
	groupPEPNum = 6
)

// linkPattern is an ordered alternation. The final (?s:.) alternative
// guarantees every character of a line belongs to exactly one match.
var linkPattern = regexp.MustCompile(
	`((?:https?|ftp):[-_a-zA-Z0-9/.+~:?#$=&,]+)` +
		`|(pep-\d+(?:\.txt)?)` +
		`|(RFC[- ]?(\d+))` +
		`|(PEP\s+(\d+))` +
		`|(?s:.)`)

// urlTrailingPunct is stripped from the end of a matched URL.
const urlTrailingPunct = `();:,.?'"<>`

// Token is one match of the link pattern.
type Token struct {
	Kind   TokenKind
	Text   string
	Number string // digits of RFC and PEP references
}

// Tokenize splits line into tokens. Concatenating the Text of all tokens
// yields line again.
func Tokenize(line string) []Token {
	matches := linkPattern.FindAllStringSubmatchIndex(line, -1)
	tokens := make([]Token, 0, len(matches))
	for _, m := range matches {
		tok := Token{Kind: TokenLiteral, Text: line[m[0]:m[1]]}
		switch {
		case m[2*groupURL] >= 0:
			tok.Kind = TokenURL
		case m[2*groupDocRef] >= 0:
			tok.Kind = TokenDocRef
		case m[2*groupRFCNum] >= 0:
			tok.Kind = TokenRFC
			tok.Number = line[m[2*groupRFCNum]:m[2*groupRFCNum+1]]
		case m[2*groupPEPNum] >= 0:
			tok.Kind = TokenPEP
			tok.Number = line[m[2*groupPEPNum]:m[2*groupPEPNum+1]]
		}
		tokens = append(tokens, tok)
	}
	return tokens
}

// LinkFixer rewrites references in body text into anchors and escapes
// everything else.
type LinkFixer struct {
	rfcURL  string
	pepURL  string
	current string // own filename, never linked
}

// NewLinkFixer creates a LinkFixer for the document named current.
func NewLinkFixer(s Settings, current string) *LinkFixer {
	return &LinkFixer{rfcURL: s.RFCURL, pepURL: s.PEPURL, current: current}
}

// Fix returns line as HTML-safe markup with anchors for URLs, RFC and PEP
// references and pep-NNNN file names.
func (f *LinkFixer) Fix(line string) string {
	var b strings.Builder
	b.Grow(len(line))
	for _, tok := range Tokenize(line) {
		b.WriteString(f.render(tok))
	}
	return b.String()
}

// render converts one token to markup.
func (f *LinkFixer) render(tok Token) string {
	switch tok.Kind {
	case TokenURL:
		link := trimURLPunctuation(tok.Text)
		if link == "" {
			return EscapeHTML(tok.Text)
		}
		return anchor(link, EscapeHTML(link)) + EscapeHTML(tok.Text[len(link):])
	case TokenDocRef:
		if f.isSelf(tok.Text) {
			return EscapeHTML(tok.Text)
		}
		return anchor(strings.TrimSuffix(tok.Text, ".txt")+".html", EscapeHTML(tok.Text))
	case TokenRFC:
		return numberedLink(f.rfcURL, tok)
	case TokenPEP:
		return numberedLink(f.pepURL, tok)
	default:
		return EscapeHTML(tok.Text)
	}
}

// isSelf reports whether a pep-NNNN reference names the current document.
func (f *LinkFixer) isSelf(ref string) bool {
	if f.current == "" {
		return false
	}
	current := path.Base(f.current)
	return ref == current || ref == strings.TrimSuffix(current, ".txt")
}

// numberedLink links tok to template formatted with its number. Numbers
// that overflow an int are left as text.
func numberedLink(template string, tok Token) string {
	n, err := strconv.Atoi(tok.Number)
	if err != nil {
		return EscapeHTML(tok.Text)
	}
	return anchor(fmt.Sprintf(template, n), EscapeHTML(tok.Text))
}

// trimURLPunctuation strips trailing punctuation one character at a time.
func trimURLPunctuation(url string) string {
	return strings.TrimRight(url, urlTrailingPunct)
}
