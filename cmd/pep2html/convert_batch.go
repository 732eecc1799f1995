package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	pep2html "github.com/alnah/go-pep2html"
	"github.com/alnah/go-pep2html/internal/fileutil"
	"github.com/alnah/go-pep2html/internal/hints"
)

// Sentinel errors for batch operations.
var (
	ErrMissingInput = errors.New("input file not found")
	ErrReadInput    = errors.New("failed to read input file")
)

// CLIConverter is the interface for the conversion service.
type CLIConverter interface {
	Classify(content string) (string, error)
	Render(ctx context.Context, w io.Writer, input pep2html.Input) (*pep2html.Result, error)
}

// Compile-time interface implementation check.
var _ CLIConverter = (*pep2html.Converter)(nil)

// conversionParams groups parameters shared across the batch.
type conversionParams struct {
	indexName string // base name of the index document
	inputDir  string // for missing-input hints
	now       func() time.Time
}

// ConversionResult holds the outcome of a single conversion.
type ConversionResult struct {
	InputPath   string
	OutputPath  string // empty when no output file was created
	ContentType string
	Warnings    []string
	Err         error
	Hint        string
	Duration    time.Duration
}

// convertBatch processes files one after the other. A failing document is
// recorded and the batch continues.
func convertBatch(ctx context.Context, conv CLIConverter, files []FileToConvert, params *conversionParams) []ConversionResult {
	results := make([]ConversionResult, 0, len(files))
	for _, f := range files {
		if err := ctx.Err(); err != nil {
			results = append(results, ConversionResult{InputPath: f.InputPath, Err: err})
			continue
		}
		results = append(results, convertFile(ctx, conv, f, params))
	}
	return results
}

// convertFile processes a single file and returns the result. The document
// is classified before the output file is created, so a skipped document
// leaves nothing behind. A rendering error leaves a truncated page.
func convertFile(ctx context.Context, conv CLIConverter, f FileToConvert, params *conversionParams) ConversionResult {
	start := params.now()
	result := ConversionResult{InputPath: f.InputPath}
	finish := func(err error) ConversionResult {
		result.Err = err
		if err != nil {
			result.Hint = hintFor(err, params.inputDir)
		}
		result.Duration = params.now().Sub(start)
		return result
	}

	info, err := os.Stat(f.InputPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return finish(fmt.Errorf("%w: %s", ErrMissingInput, f.InputPath))
		}
		return finish(fmt.Errorf("%w: %v", ErrReadInput, err))
	}
	content, err := os.ReadFile(f.InputPath) // #nosec G304 -- discovered path
	if err != nil {
		return finish(fmt.Errorf("%w: %v", ErrReadInput, err))
	}

	contentType, err := conv.Classify(string(content))
	result.ContentType = contentType
	if err != nil {
		return finish(err)
	}

	out, err := fileutil.CreateOutput(f.OutputPath)
	if err != nil {
		return finish(fmt.Errorf("%w: %v", ErrWriteOutput, err))
	}
	result.OutputPath = f.OutputPath

	name := filepath.Base(f.InputPath)
	res, renderErr := conv.Render(ctx, out, pep2html.Input{
		Name:    name,
		Content: string(content),
		ModTime: info.ModTime(),
		IsIndex: name == params.indexName,
	})
	if res != nil {
		result.Warnings = res.Warnings
	}
	if err := fileutil.FinishOutput(out); err != nil && renderErr == nil {
		return finish(fmt.Errorf("%w: %v", ErrWriteOutput, err))
	}
	return finish(renderErr)
}

// hintFor returns an actionable hint for a per-document error.
func hintFor(err error, inputDir string) string {
	switch {
	case errors.Is(err, ErrMissingInput):
		return hints.ForMissingInput(inputDir)
	case errors.Is(err, pep2html.ErrNotPEP):
		return hints.ForNotPEP()
	case errors.Is(err, pep2html.ErrUnknownContentType):
		return hints.ForUnknownContentType([]string{
			pep2html.ContentTypeText,
			pep2html.ContentTypeMarkdown,
			pep2html.ContentTypeXMarkdown,
		})
	case errors.Is(err, pep2html.ErrEngineUnavailable):
		return hints.ForEngineUnavailable()
	case errors.Is(err, pep2html.ErrMalformedReference):
		return hints.ForMalformedReference()
	case errors.Is(err, ErrWriteOutput):
		return hints.ForOutputDirectory()
	}
	return ""
}

// ResultSummary holds the count of succeeded and failed conversions.
type ResultSummary struct {
	Succeeded int
	Failed    int
}

// countResults tallies succeeded and failed conversions.
func countResults(results []ConversionResult) ResultSummary {
	var summary ResultSummary
	for _, r := range results {
		if r.Err != nil {
			summary.Failed++
		} else {
			summary.Succeeded++
		}
	}
	return summary
}

// printResults outputs conversion results and returns the failure count.
// Failures and warnings go to Stderr even in quiet mode.
func printResults(results []ConversionResult, quiet, verbose bool, env *Environment) int {
	summary := countResults(results)
	out := styleFor(env.Stdout)
	errOut := styleFor(env.Stderr)

	for _, r := range results {
		for _, w := range r.Warnings {
			fmt.Fprintf(env.Stderr, "%s %s: %s\n", errOut.warn.Render("warning:"), r.InputPath, w)
		}

		if r.Err != nil {
			fmt.Fprintf(env.Stderr, "%s %s: %v%s\n", errOut.fail.Render("FAILED"), r.InputPath, r.Err, errOut.hint(r.Hint))
			continue
		}

		if quiet {
			continue
		}

		if verbose {
			fmt.Fprintf(env.Stdout, "%s (%s) -> %s %s\n", r.InputPath, r.ContentType, r.OutputPath,
				out.dim.Render(fmt.Sprintf("(%v)", r.Duration.Round(time.Millisecond))))
		} else {
			fmt.Fprintf(env.Stdout, "%s %s\n", out.ok.Render("Created"), r.OutputPath)
		}
	}

	if !quiet && len(results) > 1 {
		fmt.Fprintf(env.Stdout, "\n%d succeeded, %d failed\n", summary.Succeeded, summary.Failed)
	}

	return summary.Failed
}
