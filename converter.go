package pep2html

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/alnah/go-pep2html/internal/pipeline"
)

// Converter turns PEP documents into HTML pages. It holds no per-document
// state and may be reused for any number of documents.
type Converter struct {
	settings Settings
	engines  map[string]engineEntry
}

// NewConverter creates a Converter with default settings and the built-in
// engines. Returns an error if the settings are invalid.
func NewConverter(opts ...Option) (*Converter, error) {
	cfg := converterConfig{
		settings: DefaultSettings(),
		engines:  make(map[string]engineEntry),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	if err := cfg.settings.Validate(); err != nil {
		return nil, err
	}
	ps, err := cfg.settings.toPipeline()
	if err != nil {
		return nil, err
	}

	// Options win over built-in engines.
	engines := defaultEngines(ps, cfg.intn)
	for contentType, entry := range cfg.engines {
		engines[contentType] = entry
	}

	return &Converter{settings: cfg.settings, engines: engines}, nil
}

// Settings returns a copy of the converter's settings.
func (c *Converter) Settings() Settings {
	s := c.settings
	s.UnmaskedEmails = append([]string(nil), c.settings.UnmaskedEmails...)
	return s
}

// Classify sniffs the content type of content and checks that an engine
// can render it. Callers use it to reject a document before creating any
// output.
func (c *Converter) Classify(content string) (string, error) {
	_, contentType, err := c.classify(pipeline.SplitLines(content))
	return contentType, err
}

// classify returns the engine for lines along with the content type.
func (c *Converter) classify(lines []string) (Engine, string, error) {
	if len(lines) == 0 {
		return nil, "", ErrEmptyDocument
	}
	contentType, err := pipeline.SniffContentType(lines)
	if err != nil {
		return nil, "", err
	}
	contentType = normalizeContentType(contentType)

	entry, ok := c.engines[contentType]
	switch {
	case !ok:
		return nil, contentType, fmt.Errorf("%w: %q", ErrUnknownContentType, contentType)
	case entry.engine == nil:
		return nil, contentType, fmt.Errorf("%w: %s: %s", ErrEngineUnavailable, contentType, entry.unavailable)
	}
	return entry.engine, contentType, nil
}

// Render writes the HTML page for input to w as it is produced.
// Result.HTML is nil. On a rendering error w holds a truncated page.
func (c *Converter) Render(ctx context.Context, w io.Writer, input Input) (*Result, error) {
	if strings.TrimSpace(input.Content) == "" {
		return nil, ErrEmptyDocument
	}
	lines := pipeline.SplitLines(input.Content)

	engine, contentType, err := c.classify(lines)
	if err != nil {
		return nil, err
	}

	info, err := engine.Render(ctx, w, Document{
		Name:    input.Name,
		Lines:   lines,
		ModTime: input.ModTime,
		IsIndex: input.IsIndex,
	})
	result := &Result{ContentType: contentType}
	if info != nil {
		result.Title = info.Title
		result.Warnings = info.Warnings
	}
	if err != nil {
		return result, fmt.Errorf("rendering %s: %w", contentType, err)
	}
	return result, nil
}

// Convert renders input into memory and returns the page in Result.HTML.
// Recovers from internal panics to prevent crashes from propagating to callers.
func (c *Converter) Convert(ctx context.Context, input Input) (result *Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			result, err = nil, fmt.Errorf("internal error: %v", r)
		}
	}()

	var buf bytes.Buffer
	result, err = c.Render(ctx, &buf, input)
	if err != nil {
		return nil, err
	}
	result.HTML = buf.Bytes()
	return result, nil
}

// SniffContentType returns the content type declared by the header of
// content, "text/plain" for PEPs without a Content-Type field, or
// ErrNotPEP when the header has neither field.
func SniffContentType(content string) (string, error) {
	contentType, err := pipeline.SniffContentType(pipeline.SplitLines(content))
	if err != nil {
		return "", err
	}
	return normalizeContentType(contentType), nil
}
