// Package pep2html converts PEP plain-text documents to standalone HTML pages.
//
// # Quick Start
//
// Create a converter and convert a document:
//
//	conv, err := pep2html.NewConverter()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := conv.Convert(ctx, pep2html.Input{
//	    Name:    "pep-0008.txt",
//	    Content: string(text),
//	    ModTime: info.ModTime(),
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("pep-0008.html", result.HTML, 0644)
//
// Render writes the page to an io.Writer as it is produced instead of
// buffering it.
//
// # Conversion Pipeline
//
// A document is processed in a single pass:
//
//  1. Content-type sniffing of the header (PEP: or Content-Type: required)
//  2. Header parsing into ordered fields, with continuation lines
//  3. Field rendering (masked author addresses, PEP cross-references,
//     revision links)
//  4. Body transformation: headings, preformatted runs, and link fixing
//     of URLs, RFC and PEP references
//  5. Page scaffolding: title, navigation bar, header table
//
// Markdown PEPs (text/markdown) use a Goldmark body engine inside the same
// page scaffold. reStructuredText PEPs are recognized but need an engine
// registered with WithEngine.
//
// # Configuration
//
// Use functional options to customize the converter:
//
//	s := pep2html.DefaultSettings()
//	s.PEPURL = "https://peps.example.org/pep-%04d/"
//	s.BannerCount = 0
//
//	conv, err := pep2html.NewConverter(
//	    pep2html.WithSettings(s),
//	    pep2html.WithEngine("text/x-rst", myRSTEngine),
//	)
//
// URL templates take exactly one integer argument. Settings are copied when
// the converter is created and never change afterwards, so a Converter is
// safe for concurrent use.
//
// # Error Handling
//
// Check errors with errors.Is:
//
//	_, err := conv.Convert(ctx, input)
//	switch {
//	case errors.Is(err, pep2html.ErrNotPEP):
//	    // header has neither PEP: nor Content-Type:
//	case errors.Is(err, pep2html.ErrEngineUnavailable):
//	    // known content type without an engine
//	case errors.Is(err, pep2html.ErrMalformedReference):
//	    // non-numeric PEP in Requires, Replaces or Replaced-By
//	}
//
// Classify reports classification errors without rendering anything, so a
// caller can skip a document before creating its output file.
package pep2html
