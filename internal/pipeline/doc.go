// Package pipeline implements the plain-text PEP to HTML conversion engine.
//
// The engine works on a document already split into lines and runs a single
// linear scan over them:
//   - Content-Type sniffing of the RFC 822 style header block
//   - Header parsing into an ordered list of fields (continuation lines kept)
//   - Per-field rendering (author masking, cross-reference links, dates)
//   - Body transformation into headings and preformatted runs
//   - Inline link fixing (URLs, RFC/PEP references, pep-NNNN files)
//   - Page scaffold output (navigation table, header table, content)
//
// A second body engine converts Markdown bodies through Goldmark. Selecting
// an engine for a given content type is the job of the root pep2html package;
// this package only provides the building blocks.
package pipeline
