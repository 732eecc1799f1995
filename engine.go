package pep2html

import (
	"context"
	"io"
	"strings"
	"time"

	"github.com/alnah/go-pep2html/internal/pipeline"
)

// Content types with built-in handling.
const (
	ContentTypeText       = "text/plain"
	ContentTypeMarkdown   = "text/markdown"
	ContentTypeXMarkdown  = "text/x-markdown"
	ContentTypeRestructed = "text/x-rst"
)

// Document is a PEP handed to an Engine, already split into lines.
type Document struct {
	Name    string
	Lines   []string // lines with their "\n" terminator, if any
	ModTime time.Time
	IsIndex bool
}

// PageInfo describes a page written by an Engine.
type PageInfo struct {
	Title    string
	Warnings []string
}

// Engine renders one content type to a complete HTML page.
// Implementations write incrementally to w; on error w may hold a
// truncated page.
type Engine interface {
	Render(ctx context.Context, w io.Writer, doc Document) (*PageInfo, error)
}

// engineEntry is a registry slot. A zero engine with a reason marks a
// known content type that cannot be rendered.
type engineEntry struct {
	engine      Engine
	unavailable string
}

// pipelineRenderer is satisfied by the internal body engines.
type pipelineRenderer interface {
	Render(ctx context.Context, w io.Writer, doc pipeline.Document) (*pipeline.Rendered, error)
}

// Compile-time interface implementation checks.
var (
	_ pipelineRenderer       = (*pipeline.TextRenderer)(nil)
	_ pipelineRenderer       = (*pipeline.MarkdownRenderer)(nil)
	_ pipeline.HTMLConverter = (*pipeline.GoldmarkConverter)(nil)
	_ Engine                 = (*pipelineEngine)(nil)
)

// pipelineEngine adapts an internal renderer to the public Engine.
type pipelineEngine struct {
	r pipelineRenderer
}

func (e *pipelineEngine) Render(ctx context.Context, w io.Writer, doc Document) (*PageInfo, error) {
	rendered, err := e.r.Render(ctx, w, pipeline.Document{
		Name:    doc.Name,
		Lines:   doc.Lines,
		ModTime: doc.ModTime,
		IsIndex: doc.IsIndex,
	})
	if rendered == nil {
		return nil, err
	}
	return &PageInfo{Title: rendered.Title, Warnings: rendered.Warnings}, err
}

// defaultEngines returns the built-in registry for settings s.
func defaultEngines(s pipeline.Settings, intn func(n int) int) map[string]engineEntry {
	markdown := engineEntry{engine: &pipelineEngine{r: pipeline.NewMarkdownRenderer(s, intn, nil)}}
	return map[string]engineEntry{
		ContentTypeText:      {engine: &pipelineEngine{r: pipeline.NewTextRenderer(s, intn)}},
		ContentTypeMarkdown:  markdown,
		ContentTypeXMarkdown: markdown,
		ContentTypeRestructed: {
			unavailable: "reStructuredText PEPs need an external engine, register one with WithEngine",
		},
	}
}

// normalizeContentType lowercases and trims a content type.
func normalizeContentType(contentType string) string {
	return strings.ToLower(strings.TrimSpace(contentType))
}
