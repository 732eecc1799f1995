// Package fileutil provides file and path utility functions.
package fileutil

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

// PEPFilePattern matches PEP source files inside a directory.
const PEPFilePattern = "pep-*.txt"

// OutputPerm is applied to generated pages: owner read/write, others read.
const OutputPerm os.FileMode = 0o644

// PEPFilename returns the source filename of PEP n, e.g. "pep-0008.txt".
func PEPFilename(n int) string {
	return fmt.Sprintf("pep-%04d.txt", n)
}

// ResolvePEPArg maps a command-line argument to a source path. An
// existing file or directory is returned as is; otherwise a non-negative
// number names a PEP inside inputDir. Anything else is returned unchanged
// so the caller reports it as missing.
func ResolvePEPArg(arg, inputDir string) string {
	if _, err := os.Stat(arg); err == nil {
		return arg
	}
	n, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil || n < 0 {
		return arg
	}
	return filepath.Join(inputDir, PEPFilename(n))
}

// ExpandInputs resolves args to the list of source files to convert.
// Directories expand to their PEP files in lexical order. Without args,
// every PEP file in inputDir ("." when empty) is used.
func ExpandInputs(args []string, inputDir string) ([]string, error) {
	if inputDir == "" {
		inputDir = "."
	}
	if len(args) == 0 {
		return listPEPFiles(inputDir)
	}

	var paths []string
	for _, arg := range args {
		path := ResolvePEPArg(arg, inputDir)
		info, err := os.Stat(path)
		if err != nil || !info.IsDir() {
			paths = append(paths, path)
			continue
		}
		files, err := listPEPFiles(path)
		if err != nil {
			return nil, err
		}
		paths = append(paths, files...)
	}
	return paths, nil
}

// listPEPFiles returns the PEP files directly inside dir, sorted.
func listPEPFiles(dir string) ([]string, error) {
	if _, err := os.ReadDir(dir); err != nil {
		return nil, fmt.Errorf("reading input directory: %w", err)
	}
	files, err := filepath.Glob(filepath.Join(dir, PEPFilePattern))
	if err != nil {
		return nil, fmt.Errorf("listing PEP files: %w", err)
	}
	sort.Strings(files)
	return files, nil
}

// HTMLPath returns the page path for a source file: same base name with a
// ".html" extension, in outputDir or next to the source when empty.
func HTMLPath(source, outputDir string) string {
	base := filepath.Base(source)
	name := strings.TrimSuffix(base, filepath.Ext(base)) + ".html"
	if outputDir == "" {
		return filepath.Join(filepath.Dir(source), name)
	}
	return filepath.Join(outputDir, name)
}

// CreateOutput creates (or truncates) path for writing, creating parent
// directories as needed.
func CreateOutput(path string) (*os.File, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return nil, fmt.Errorf("creating output directory: %w", err)
		}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, OutputPerm) // #nosec G304 -- output path is user-provided
	if err != nil {
		return nil, fmt.Errorf("creating output file: %w", err)
	}
	return f, nil
}

// FinishOutput closes f and sets OutputPerm regardless of the umask.
func FinishOutput(f *os.File) error {
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing output file: %w", err)
	}
	if err := os.Chmod(f.Name(), OutputPerm); err != nil {
		return fmt.Errorf("setting output permissions: %w", err)
	}
	return nil
}

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// IsFilePath returns true if the string looks like a file path rather than a name.
// A string containing path separators (/, \) is treated as a path.
//
// Examples:
//   - "pep" -> false (name)
//   - "./custom.css" -> true (relative path)
//   - "/absolute/path.css" -> true (absolute)
//   - "C:\windows\path.css" -> true (Windows)
func IsFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}
