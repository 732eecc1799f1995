package pipeline

import (
	"context"
	"fmt"
	"io"
	"math/rand/v2"
)

// doctype is emitted as is. Headings inside <pre> do not validate against
// it, but browsers render them fine.
const doctype = `<!DOCTYPE html PUBLIC "-//W3C//DTD HTML 4.0 Transitional//EN"
                      "http://www.w3.org/TR/REC-html40/loose.dtd">`

// Rendered describes a page written by a renderer.
type Rendered struct {
	Title    string
	Warnings []string
}

// bodyFunc writes the content area of a page from the body lines.
type bodyFunc func(w io.Writer, h *Header, body []string) error

// PageWriter writes the page scaffold shared by all body engines: head,
// navigation table, header table and content wrapper.
type PageWriter struct {
	settings Settings
	emails   *EmailPolicy
	intn     func(n int) int
}

// NewPageWriter creates a PageWriter. intn picks the banner image; nil
// uses math/rand.
func NewPageWriter(s Settings, intn func(n int) int) *PageWriter {
	if intn == nil {
		intn = rand.IntN
	}
	return &PageWriter{
		settings: s,
		emails:   NewEmailPolicy(s.UnmaskedEmails),
		intn:     intn,
	}
}

// Write parses the header of doc, writes the scaffold and delegates the
// content area to body. Output is written as it is produced; on error w
// holds a truncated page.
func (p *PageWriter) Write(ctx context.Context, w io.Writer, doc Document, body bodyFunc) (*Rendered, error) {
	h, rest := ParseHeader(doc.Lines)
	rendered := &Rendered{Title: h.DocumentTitle()}
	ew := &errWriter{w: w}

	p.writeHead(ew, rendered.Title)
	p.writeNavigation(ew, doc, h, rendered)
	if err := p.writeHeaderTable(ew, doc, h); err != nil {
		return rendered, err
	}
	ew.printf("<hr />\n<div class=\"content\">\n")
	if ew.err != nil {
		return rendered, ew.err
	}

	if err := ctx.Err(); err != nil {
		return rendered, err
	}
	if err := body(w, h, rest); err != nil {
		return rendered, err
	}

	ew.printf("</div>\n</body>\n</html>\n")
	return rendered, ew.err
}

// writeHead writes the doctype and <head> element.
func (p *PageWriter) writeHead(ew *errWriter, title string) {
	ew.printf("%s\n<html>\n<head>\n", doctype)
	if title != "" {
		ew.printf("  <title>%s</title>\n", EscapeHTML(title))
	}
	ew.printf("  <link rel=\"STYLESHEET\" href=\"%s\" type=\"text/css\">\n</head>\n", escapeAttr(p.settings.Stylesheet))
}

// writeNavigation writes the banner and the text links.
func (p *PageWriter) writeNavigation(ew *errWriter, doc Document, h *Header, rendered *Rendered) {
	banner := 0
	if p.settings.BannerCount > 0 {
		banner = p.intn(p.settings.BannerCount)
	}
	home := escapeAttr(p.settings.HomeURL)

	ew.printf("<body bgcolor=\"white\" marginwidth=\"0\" marginheight=\"0\">\n")
	ew.printf("<table class=\"navigation\" cellpadding=\"0\" cellspacing=\"0\"\n       width=\"100%%\" border=\"0\">\n")
	ew.printf("<tr><td class=\"navicon\" width=\"150\" height=\"35\">\n")
	ew.printf("<a href=\"%s\" title=\"Python Home Page\">\n", home)
	ew.printf("<img src=\"%s\" alt=\"[Python]\"\n border=\"0\" width=\"150\" height=\"35\" /></a></td>\n",
		escapeAttr(fmt.Sprintf(p.settings.BannerURL, banner)))
	ew.printf("<td class=\"textlinks\" align=\"left\">\n")
	ew.printf("[<b><a href=\"%s\">Python Home</a></b>]\n", home)

	if !doc.IsIndex {
		ew.printf("[<b><a href=\"%s\">PEP Index</a></b>]\n", escapeAttr(p.settings.IndexURL))
	}
	if h.PEP != "" {
		if n, err := h.Number(); err == nil {
			ew.printf("[<b><a href=\"%s\">PEP Source</a></b>]\n", escapeAttr(fmt.Sprintf(p.settings.SourceURL, n)))
		} else {
			rendered.Warnings = append(rendered.Warnings,
				fmt.Sprintf("PEP number %q is not an integer, source link omitted", h.PEP))
		}
	}
	ew.printf("</td></tr></table>\n")
}

// writeHeaderTable renders every header field in order.
func (p *PageWriter) writeHeaderTable(ew *errWriter, doc Document, h *Header) error {
	fr := NewFieldRenderer(p.settings, p.emails, h.PEP, doc.ModTime)

	ew.printf("<div class=\"header\">\n<table border=\"0\">\n")
	for _, f := range h.Fields {
		rf, err := fr.Render(f)
		if err != nil {
			return err
		}
		ew.printf("  <tr><th>%s:&nbsp;</th><td>%s</td></tr>\n", rf.Name, rf.Value)
	}
	ew.printf("</table>\n</div>\n")
	return ew.err
}

// TextRenderer renders text/plain PEPs.
type TextRenderer struct {
	page *PageWriter
}

// NewTextRenderer creates a TextRenderer.
func NewTextRenderer(s Settings, intn func(n int) int) *TextRenderer {
	return &TextRenderer{page: NewPageWriter(s, intn)}
}

// Render writes the HTML page for doc to w.
func (r *TextRenderer) Render(ctx context.Context, w io.Writer, doc Document) (*Rendered, error) {
	return r.page.Write(ctx, w, doc, func(w io.Writer, h *Header, body []string) error {
		return NewBodyTransformer(r.page.settings, r.page.emails, doc, h.PEP).Transform(w, body)
	})
}
