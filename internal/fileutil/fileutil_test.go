package fileutil_test

import (
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"testing"

	"github.com/alnah/go-pep2html/internal/fileutil"
)

// writeFiles creates empty files named names inside dir.
func writeFiles(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, name := range names {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("PEP: 1\n"), 0644); err != nil {
			t.Fatalf("failed to create %s: %v", name, err)
		}
	}
}

func TestPEPFilename(t *testing.T) {
	t.Parallel()

	tests := []struct {
		n    int
		want string
	}{
		{0, "pep-0000.txt"},
		{8, "pep-0008.txt"},
		{3333, "pep-3333.txt"},
		{12345, "pep-12345.txt"},
	}

	for _, tt := range tests {
		if got := fileutil.PEPFilename(tt.n); got != tt.want {
			t.Errorf("PEPFilename(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestResolvePEPArg(t *testing.T) {
	t.Parallel()

	tempDir := t.TempDir()
	existing := filepath.Join(tempDir, "draft.txt")
	writeFiles(t, tempDir, "draft.txt")

	tests := []struct {
		name     string
		arg      string
		inputDir string
		want     string
	}{
		{
			name:     "existing file is kept",
			arg:      existing,
			inputDir: "peps",
			want:     existing,
		},
		{
			name:     "existing directory is kept",
			arg:      tempDir,
			inputDir: "peps",
			want:     tempDir,
		},
		{
			name:     "number maps to input directory",
			arg:      "8",
			inputDir: "peps",
			want:     filepath.Join("peps", "pep-0008.txt"),
		},
		{
			name:     "number without input directory",
			arg:      "257",
			inputDir: "",
			want:     "pep-0257.txt",
		},
		{
			name:     "missing non-number is returned unchanged",
			arg:      filepath.Join(tempDir, "missing.txt"),
			inputDir: "peps",
			want:     filepath.Join(tempDir, "missing.txt"),
		},
		{
			name:     "negative number is not a PEP",
			arg:      "-1",
			inputDir: "peps",
			want:     "-1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := fileutil.ResolvePEPArg(tt.arg, tt.inputDir); got != tt.want {
				t.Errorf("ResolvePEPArg(%q, %q) = %q, want %q", tt.arg, tt.inputDir, got, tt.want)
			}
		})
	}
}

func TestExpandInputs(t *testing.T) {
	t.Parallel()

	inputDir := t.TempDir()
	writeFiles(t, inputDir, "pep-0008.txt", "pep-0001.txt", "README.txt", "pep-0001.html")

	t.Run("no args lists the input directory", func(t *testing.T) {
		t.Parallel()

		got, err := fileutil.ExpandInputs(nil, inputDir)
		if err != nil {
			t.Fatalf("ExpandInputs() unexpected error: %v", err)
		}
		want := []string{filepath.Join(inputDir, "pep-0001.txt"), filepath.Join(inputDir, "pep-0008.txt")}
		if !slices.Equal(got, want) {
			t.Errorf("ExpandInputs() = %v, want %v", got, want)
		}
	})

	t.Run("args keep their order and directories expand", func(t *testing.T) {
		t.Parallel()

		got, err := fileutil.ExpandInputs([]string{"8", inputDir, "9"}, inputDir)
		if err != nil {
			t.Fatalf("ExpandInputs() unexpected error: %v", err)
		}
		want := []string{
			filepath.Join(inputDir, "pep-0008.txt"),
			filepath.Join(inputDir, "pep-0001.txt"),
			filepath.Join(inputDir, "pep-0008.txt"),
			filepath.Join(inputDir, "pep-0009.txt"),
		}
		if !slices.Equal(got, want) {
			t.Errorf("ExpandInputs() = %v, want %v", got, want)
		}
	})

	t.Run("missing input directory is an error", func(t *testing.T) {
		t.Parallel()

		_, err := fileutil.ExpandInputs(nil, filepath.Join(inputDir, "nope"))
		if err == nil {
			t.Error("ExpandInputs() expected error for missing directory")
		}
	})
}

func TestHTMLPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		source    string
		outputDir string
		want      string
	}{
		{
			name:   "next to source",
			source: filepath.Join("peps", "pep-0008.txt"),
			want:   filepath.Join("peps", "pep-0008.html"),
		},
		{
			name:      "in output directory",
			source:    filepath.Join("peps", "pep-0008.txt"),
			outputDir: "site",
			want:      filepath.Join("site", "pep-0008.html"),
		},
		{
			name:   "source without extension",
			source: "pep-0001",
			want:   "pep-0001.html",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := fileutil.HTMLPath(tt.source, tt.outputDir); got != tt.want {
				t.Errorf("HTMLPath(%q, %q) = %q, want %q", tt.source, tt.outputDir, got, tt.want)
			}
		})
	}
}

func TestCreateAndFinishOutput(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "dir", "pep-0008.html")

	f, err := fileutil.CreateOutput(path)
	if err != nil {
		t.Fatalf("CreateOutput() unexpected error: %v", err)
	}
	if _, err := f.WriteString("<html></html>\n"); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	if err := fileutil.FinishOutput(f); err != nil {
		t.Fatalf("FinishOutput() unexpected error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error: %v", err)
	}
	if string(data) != "<html></html>\n" {
		t.Errorf("content = %q", data)
	}

	if runtime.GOOS != "windows" {
		info, err := os.Stat(path)
		if err != nil {
			t.Fatalf("Stat() error: %v", err)
		}
		if got := info.Mode().Perm(); got != fileutil.OutputPerm {
			t.Errorf("mode = %o, want %o", got, fileutil.OutputPerm)
		}
	}
}

func TestCreateOutput_Truncates(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "pep-0001.html")
	if err := os.WriteFile(path, []byte("old content that is longer"), 0600); err != nil {
		t.Fatalf("setup: %v", err)
	}

	f, err := fileutil.CreateOutput(path)
	if err != nil {
		t.Fatalf("CreateOutput() unexpected error: %v", err)
	}
	_, _ = f.WriteString("new")
	if err := fileutil.FinishOutput(f); err != nil {
		t.Fatalf("FinishOutput() unexpected error: %v", err)
	}

	data, _ := os.ReadFile(path)
	if string(data) != "new" {
		t.Errorf("content = %q, want %q", data, "new")
	}
}

func TestFileExists(t *testing.T) {
	t.Parallel()

	tempDir := t.TempDir()
	writeFiles(t, tempDir, "test.txt")

	tests := []struct {
		name string
		path string
		want bool
	}{
		{"existing file returns true", filepath.Join(tempDir, "test.txt"), true},
		{"directory returns false", tempDir, false},
		{"nonexistent path returns false", filepath.Join(tempDir, "nonexistent"), false},
		{"empty path returns false", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := fileutil.FileExists(tt.path); got != tt.want {
				t.Errorf("FileExists(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestIsFilePath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  bool
	}{
		{"pep", false},
		{"./custom.css", true},
		{"../shared/style.css", true},
		{"/absolute/path.css", true},
		{"C:\\windows\\path.css", true},
		{"name.with.dots", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := fileutil.IsFilePath(tt.input); got != tt.want {
			t.Errorf("IsFilePath(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}
