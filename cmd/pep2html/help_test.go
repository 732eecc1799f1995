package main

// Notes:
// - printUsage/printConvertUsage: we test that required content strings are
//   present in the output. We don't test exact formatting as that's an
//   implementation detail.
// - runHelp: we test routing to the correct help topic.

import (
	"bytes"
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// TestPrintUsage - Main usage output
// ---------------------------------------------------------------------------

func TestPrintUsage(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	printUsage(&buf)
	output := buf.String()

	for _, s := range []string{"Usage: pep2html", "Commands:", "convert", "config", "version", "help"} {
		if !strings.Contains(output, s) {
			t.Errorf("printUsage output should contain %q", s)
		}
	}
}

// ---------------------------------------------------------------------------
// TestPrintConvertUsage - Convert usage output
// ---------------------------------------------------------------------------

func TestPrintConvertUsage(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	printConvertUsage(&buf)
	output := buf.String()

	for _, s := range []string{
		"--output", "--input-dir", "--index-name", "--config",
		"--pep-url", "--rfc-url", "--date-format", "--banner-count",
		"--style", "--asset-path", "--write-css",
		"--quiet", "--verbose",
		"PEP2HTML_CONFIG",
		"modern, pep",
	} {
		if !strings.Contains(output, s) {
			t.Errorf("printConvertUsage output should contain %q", s)
		}
	}
}

// ---------------------------------------------------------------------------
// TestRunHelp - Help routing
// ---------------------------------------------------------------------------

func TestRunHelp(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		args       []string
		wantStdout string
		wantStderr string
	}{
		{"no args", nil, "Commands:", ""},
		{"convert", []string{"convert"}, "Convert PEP text files", ""},
		{"config", []string{"config"}, "pep2html config", ""},
		{"version", []string{"version"}, "Usage: pep2html version", ""},
		{"help", []string{"help"}, "Usage: pep2html help", ""},
		{"unknown", []string{"bogus"}, "", "Unknown command: bogus"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			env, stdout, stderr := testEnv(nil)
			runHelp(tt.args, env)

			if !strings.Contains(stdout.String(), tt.wantStdout) {
				t.Errorf("stdout %q should contain %q", stdout.String(), tt.wantStdout)
			}
			if !strings.Contains(stderr.String(), tt.wantStderr) {
				t.Errorf("stderr %q should contain %q", stderr.String(), tt.wantStderr)
			}
		})
	}
}
