package main

import (
	"fmt"

	"github.com/alnah/go-pep2html/internal/fileutil"
)

// FileToConvert represents a single file to process.
type FileToConvert struct {
	InputPath  string
	OutputPath string
}

// discoverFiles resolves positional args (paths, directories or PEP
// numbers) to the list of documents to convert. Missing files are kept so
// the batch reports them. An empty result is an error.
func discoverFiles(args []string, inputDir, outputDir string) ([]FileToConvert, error) {
	paths, err := fileutil.ExpandInputs(args, inputDir)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNoInput, err)
	}
	if len(paths) == 0 {
		dir := inputDir
		if dir == "" {
			dir = "."
		}
		return nil, fmt.Errorf("%w: no %s files in %s", ErrNoInput, fileutil.PEPFilePattern, dir)
	}

	files := make([]FileToConvert, 0, len(paths))
	for _, p := range paths {
		files = append(files, FileToConvert{
			InputPath:  p,
			OutputPath: fileutil.HTMLPath(p, outputDir),
		})
	}
	return files, nil
}
