package pipeline

import (
	"errors"
	"testing"
)

func TestSniffContentType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		want    string
		wantErr error
	}{
		{
			name:    "PEP field implies text/plain",
			content: "PEP: 8\nTitle: Style Guide\n\nBody\n",
			want:    "text/plain",
		},
		{
			name:    "explicit content type wins",
			content: "PEP: 12\nContent-Type: text/x-rst\n\nBody\n",
			want:    "text/x-rst",
		},
		{
			name:    "field names are case-insensitive",
			content: "pep: 1\nCONTENT-TYPE: Text/Markdown\n\n",
			want:    "text/markdown",
		},
		{
			name:    "parameters are dropped",
			content: "PEP: 1\nContent-Type: text/markdown; charset=utf-8\n\n",
			want:    "text/markdown",
		},
		{
			name:    "empty content type defaults to text/plain",
			content: "Content-Type:\n\n",
			want:    "text/plain",
		},
		{
			name:    "content type without PEP field",
			content: "Content-Type: text/plain\n\n",
			want:    "text/plain",
		},
		{
			name:    "fields after the first blank line are ignored",
			content: "Title: Not a PEP\n\nPEP: 8\n",
			wantErr: ErrNotPEP,
		},
		{
			name:    "no header fields",
			content: "Just some text\n",
			wantErr: ErrNotPEP,
		},
		{
			name:    "empty document",
			content: "",
			wantErr: ErrNotPEP,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := SniffContentType(SplitLines(tt.content))
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("SniffContentType() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("SniffContentType() unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("SniffContentType() = %q, want %q", got, tt.want)
			}
		})
	}
}
