package pep2html

import (
	"errors"

	"github.com/alnah/go-pep2html/internal/pipeline"
)

// Sentinel errors for library operations.
var (
	ErrEmptyDocument = errors.New("document content cannot be empty")

	// Classification errors. A document failing classification is skipped
	// before any output is produced.
	ErrNotPEP             = pipeline.ErrNotPEP
	ErrUnknownContentType = errors.New("unknown content type")
	ErrEngineUnavailable  = errors.New("content type engine not available")

	// Rendering errors.
	ErrMalformedReference = pipeline.ErrMalformedReference
	ErrHTMLConversion     = pipeline.ErrHTMLConversion

	// Settings validation errors.
	ErrInvalidURLTemplate = errors.New("invalid URL template")
	ErrInvalidBannerCount = errors.New("invalid banner count")
	ErrInvalidDateFormat  = errors.New("invalid date format")

	// Asset loading errors.
	ErrStyleNotFound    = errors.New("style not found")
	ErrInvalidAssetPath = errors.New("invalid asset path")
)
