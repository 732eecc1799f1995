package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// outputStyle colors status lines. Styles are bound to the destination
// writer, so redirected output stays plain text.
type outputStyle struct {
	ok   lipgloss.Style
	fail lipgloss.Style
	warn lipgloss.Style
	dim  lipgloss.Style
}

// styleFor returns the styles for lines written to w.
func styleFor(w io.Writer) outputStyle {
	r := lipgloss.NewRenderer(w)
	return outputStyle{
		ok:   r.NewStyle().Foreground(lipgloss.Color("2")),
		fail: r.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
		warn: r.NewStyle().Foreground(lipgloss.Color("3")),
		dim:  r.NewStyle().Faint(true),
	}
}

// errorf renders a single-line error message.
func (s outputStyle) errorf(format string, args ...any) string {
	return s.fail.Render(fmt.Sprintf(format, args...))
}

// hint renders a hint suffix from the hints package. Lines are rendered one
// by one since lipgloss pads multi-line blocks to a common width.
func (s outputStyle) hint(h string) string {
	if h == "" {
		return ""
	}
	lines := strings.Split(strings.TrimPrefix(h, "\n"), "\n")
	for i, line := range lines {
		lines[i] = s.dim.Render(line)
	}
	return "\n" + strings.Join(lines, "\n")
}
