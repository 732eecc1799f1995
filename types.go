package pep2html

import (
	"fmt"
	"strings"
	"time"

	"github.com/alnah/go-pep2html/internal/dateutil"
	"github.com/alnah/go-pep2html/internal/pipeline"
)

// Input is one document to convert.
type Input struct {
	Name    string    // base filename, e.g. "pep-0008.txt"; used to detect self-references
	Content string    // raw document text, any line-ending convention
	ModTime time.Time // fallback for an empty Last-Modified field
	IsIndex bool      // enables the PEP index summary-row heuristics
}

// Result is the outcome of a conversion.
type Result struct {
	HTML        []byte   // nil when written with Render
	ContentType string   // sniffed content type that selected the engine
	Title       string   // page title, e.g. "PEP 8 -- Style Guide for Python Code"
	Warnings    []string // non-fatal problems found while rendering
}

// Settings holds the URL templates and page constants shared by every
// document a Converter renders. Templates take a single integer argument.
type Settings struct {
	RFCURL         string   // RFC viewer, e.g. "http://www.faqs.org/rfcs/rfc%d.html"
	PEPURL         string   // PEP page, e.g. "pep-%04d.html"
	SourceURL      string   // PEP plain-text source, e.g. "pep-%04d.txt"
	RevisionURL    string   // revision history of a PEP source file
	HomeURL        string   // target of the banner and "Python Home" link
	IndexURL       string   // target of the "PEP Index" link
	Stylesheet     string   // href of the page stylesheet
	BannerURL      string   // banner image, templated with the image index
	BannerCount    int      // banner index is chosen in [0, BannerCount)
	DateFormat     string   // Last-Modified fallback, e.g. "DD-MMM-YYYY" or a preset
	UnmaskedEmails []string // addresses always rendered as mailto links
}

// DefaultDateFormat renders modification dates like "05-Jul-2001".
const DefaultDateFormat = "DD-MMM-YYYY"

// DefaultSettings returns the settings used by python.org's PEP pages.
func DefaultSettings() Settings {
	return Settings{
		RFCURL:         pipeline.DefaultRFCURL,
		PEPURL:         pipeline.DefaultPEPURL,
		SourceURL:      pipeline.DefaultSourceURL,
		RevisionURL:    pipeline.DefaultRevisionURL,
		HomeURL:        pipeline.DefaultHomeURL,
		IndexURL:       pipeline.DefaultIndexURL,
		Stylesheet:     pipeline.DefaultStylesheet,
		BannerURL:      pipeline.DefaultBannerURL,
		BannerCount:    pipeline.DefaultBannerCount,
		DateFormat:     DefaultDateFormat,
		UnmaskedEmails: append([]string(nil), pipeline.DefaultUnmaskedEmails...),
	}
}

// Validate checks that every URL template formats a single integer and
// that the date format is usable.
func (s *Settings) Validate() error {
	templates := []struct {
		name  string
		value string
	}{
		{"rfcURL", s.RFCURL},
		{"pepURL", s.PEPURL},
		{"sourceURL", s.SourceURL},
		{"revisionURL", s.RevisionURL},
		{"bannerURL", s.BannerURL},
	}
	for _, tpl := range templates {
		if err := validateURLTemplate(tpl.value); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalidURLTemplate, tpl.name, err)
		}
	}
	if s.BannerCount < 0 {
		return fmt.Errorf("%w: %d, must be >= 0", ErrInvalidBannerCount, s.BannerCount)
	}
	if _, err := dateutil.ResolveLayout(s.DateFormat); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidDateFormat, err)
	}
	return nil
}

// validateURLTemplate rejects templates that do not format exactly one int.
func validateURLTemplate(tpl string) error {
	if tpl == "" {
		return fmt.Errorf("template cannot be empty")
	}
	if out := fmt.Sprintf(tpl, 1); strings.Contains(out, "%!") {
		return fmt.Errorf("%q must contain exactly one integer verb", tpl)
	}
	return nil
}

// toPipeline converts validated settings to the engine's representation.
func (s *Settings) toPipeline() (pipeline.Settings, error) {
	layout, err := dateutil.ResolveLayout(s.DateFormat)
	if err != nil {
		return pipeline.Settings{}, fmt.Errorf("%w: %v", ErrInvalidDateFormat, err)
	}
	ps := pipeline.DefaultSettings()
	ps.RFCURL = s.RFCURL
	ps.PEPURL = s.PEPURL
	ps.SourceURL = s.SourceURL
	ps.RevisionURL = s.RevisionURL
	ps.HomeURL = s.HomeURL
	ps.IndexURL = s.IndexURL
	ps.Stylesheet = s.Stylesheet
	ps.BannerURL = s.BannerURL
	ps.BannerCount = s.BannerCount
	ps.DateLayout = layout
	ps.UnmaskedEmails = append([]string(nil), s.UnmaskedEmails...)
	return ps, nil
}

// Option configures a Converter.
type Option func(*converterConfig)

// converterConfig collects options before the Converter is built.
type converterConfig struct {
	settings Settings
	engines  map[string]engineEntry
	intn     func(n int) int
}

// WithSettings replaces the default settings.
func WithSettings(s Settings) Option {
	return func(c *converterConfig) {
		c.settings = s
		c.settings.UnmaskedEmails = append([]string(nil), s.UnmaskedEmails...)
	}
}

// WithEngine registers e for contentType, replacing any built-in engine.
func WithEngine(contentType string, e Engine) Option {
	return func(c *converterConfig) {
		c.engines[normalizeContentType(contentType)] = engineEntry{engine: e}
	}
}

// WithUnavailableEngine marks contentType as known but not renderable.
// Documents of that type fail with ErrEngineUnavailable and reason.
func WithUnavailableEngine(contentType, reason string) Option {
	return func(c *converterConfig) {
		c.engines[normalizeContentType(contentType)] = engineEntry{unavailable: reason}
	}
}

// WithRandom sets the source used to pick the banner image. intn must
// return a value in [0, n).
func WithRandom(intn func(n int) int) Option {
	return func(c *converterConfig) {
		c.intn = intn
	}
}
