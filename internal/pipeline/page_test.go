package pipeline

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"
)

const samplePEP = `PEP: 8
Title: Style Guide for Python Code
Author: A. Bee <a@example.com>
Requires: 1
Last-Modified: 2001/07/05

Introduction

    See PEP 257 and RFC 822.
    http://example.com/a.b,

Local Variables:
mode: indented-text
`

func renderText(t *testing.T, doc Document) (string, *Rendered) {
	t.Helper()

	r := NewTextRenderer(DefaultSettings(), func(int) int { return 7 })
	var sb strings.Builder
	rendered, err := r.Render(context.Background(), &sb, doc)
	if err != nil {
		t.Fatalf("Render() unexpected error: %v", err)
	}
	return sb.String(), rendered
}

func TestTextRenderer_Render(t *testing.T) {
	t.Parallel()

	got, rendered := renderText(t, Document{Name: "pep-0008.txt", Lines: SplitLines(samplePEP)})

	if rendered.Title != "PEP 8 -- Style Guide for Python Code" {
		t.Errorf("Title = %q", rendered.Title)
	}
	if len(rendered.Warnings) != 0 {
		t.Errorf("Warnings = %q, want none", rendered.Warnings)
	}

	// Fragments in the order they must appear.
	want := []string{
		`<!DOCTYPE html PUBLIC "-//W3C//DTD HTML 4.0 Transitional//EN"`,
		"<title>PEP 8 -- Style Guide for Python Code</title>",
		`<link rel="STYLESHEET" href="style.css" type="text/css">`,
		`<img src="../pics/PyBanner007.gif"`,
		`[<b><a href="../">Python Home</a></b>]`,
		`[<b><a href=".">PEP Index</a></b>]`,
		`[<b><a href="pep-0008.txt">PEP Source</a></b>]`,
		`<tr><th>PEP:&nbsp;</th><td>8</td></tr>`,
		`<tr><th>Author:&nbsp;</th><td>A. Bee &lt;a&#32;&#97;t&#32;example.com&gt;</td></tr>`,
		`<tr><th>Requires:&nbsp;</th><td><a href="pep-0001.html">1</a></td></tr>`,
		`pep-0008.txt">2001/07/05</a></td></tr>`,
		"<hr />\n<div class=\"content\">\n",
		"<h3>Introduction</h3>\n<pre>\n",
		`See <a href="pep-0257.html">PEP 257</a> and <a href="http://www.faqs.org/rfcs/rfc822.html">RFC 822</a>.`,
		`<a href="http://example.com/a.b">http://example.com/a.b</a>,`,
		"</pre>\n</div>\n</body>\n</html>\n",
	}
	pos := 0
	for _, fragment := range want {
		i := strings.Index(got[pos:], fragment)
		if i < 0 {
			t.Fatalf("output missing %q after offset %d:\n%s", fragment, pos, got)
		}
		pos += i + len(fragment)
	}

	if strings.Contains(got, "indented-text") {
		t.Error("editor trailer leaked into the output")
	}
	if strings.Contains(got, "a@example.com") {
		t.Error("author address leaked unmasked")
	}
}

func TestTextRenderer_HeaderOnly(t *testing.T) {
	t.Parallel()

	got, _ := renderText(t, Document{Name: "pep-0002.txt", Lines: SplitLines("PEP: 2\nTitle: Header only")})

	if !strings.Contains(got, "<tr><th>Title:&nbsp;</th><td>Header only</td></tr>") {
		t.Errorf("missing title row:\n%s", got)
	}
	if strings.Contains(got, "<pre>") || strings.Contains(got, "<h3>") {
		t.Errorf("header-only document has body markup:\n%s", got)
	}
	if !strings.HasSuffix(got, "<div class=\"content\">\n</div>\n</body>\n</html>\n") {
		t.Errorf("unexpected page end:\n%s", got)
	}
}

func TestTextRenderer_IndexDocument(t *testing.T) {
	t.Parallel()

	doc := Document{
		Name:    "pep-0000.txt",
		Lines:   SplitLines("PEP: 0\nTitle: Index of PEPs\n\n     I   1  Purpose   Warsaw\n"),
		IsIndex: true,
	}
	got, _ := renderText(t, doc)

	if strings.Contains(got, "PEP Index</a>") {
		t.Error("index page links to itself")
	}
	if !strings.Contains(got, `<a href="pep-0001.html">1</a>`) {
		t.Errorf("summary row not linked:\n%s", got)
	}
}

func TestTextRenderer_NonNumericPEP(t *testing.T) {
	t.Parallel()

	got, rendered := renderText(t, Document{Lines: SplitLines("PEP: XYZ\nTitle: T\n\n")})

	if strings.Contains(got, "PEP Source") {
		t.Error("source link rendered for non-numeric PEP")
	}
	if len(rendered.Warnings) != 1 || !strings.Contains(rendered.Warnings[0], "XYZ") {
		t.Errorf("Warnings = %q, want one naming XYZ", rendered.Warnings)
	}
}

func TestTextRenderer_LastModifiedFallback(t *testing.T) {
	t.Parallel()

	doc := Document{
		Lines:   SplitLines("PEP: 8\nLast-Modified:\n\n"),
		ModTime: time.Date(2003, time.March, 9, 0, 0, 0, 0, time.UTC),
	}
	got, _ := renderText(t, doc)

	if !strings.Contains(got, ">09-Mar-2003</a>") {
		t.Errorf("missing fallback date:\n%s", got)
	}
}

func TestTextRenderer_MalformedReference(t *testing.T) {
	t.Parallel()

	r := NewTextRenderer(DefaultSettings(), nil)
	var sb strings.Builder
	_, err := r.Render(context.Background(), &sb, Document{Lines: SplitLines("PEP: 1\nRequires: x\n\nBody\n")})

	if !errors.Is(err, ErrMalformedReference) {
		t.Fatalf("Render() error = %v, want %v", err, ErrMalformedReference)
	}
	if strings.Contains(sb.String(), `<div class="content">`) {
		t.Error("content written after a fatal header error")
	}
}

func TestTextRenderer_ContextCanceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := NewTextRenderer(DefaultSettings(), nil)
	var sb strings.Builder
	_, err := r.Render(ctx, &sb, Document{Lines: SplitLines(samplePEP)})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Render() error = %v, want %v", err, context.Canceled)
	}
}

func TestPageWriter_BannerRange(t *testing.T) {
	t.Parallel()

	var gotN int
	s := DefaultSettings()
	s.BannerCount = 5
	p := NewPageWriter(s, func(n int) int { gotN = n; return 4 })

	var sb strings.Builder
	_, err := p.Write(context.Background(), &sb, Document{Lines: SplitLines("PEP: 1\n\n")},
		func(io.Writer, *Header, []string) error { return nil })
	if err != nil {
		t.Fatalf("Write() unexpected error: %v", err)
	}
	if gotN != 5 {
		t.Errorf("banner chosen in [0, %d), want [0, 5)", gotN)
	}
	if !strings.Contains(sb.String(), "PyBanner004.gif") {
		t.Errorf("banner 4 not used:\n%s", sb.String())
	}
}
