package cli

import (
	"testing"
)

func TestOutputPath(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		output string
		format string
		multi  bool
		want   string
	}{
		{"derived from input", "ring.json", "", "svg", false, "ring.layout.svg"},
		{"derived keeps directory", "out/ring.json", "", "dot", false, "out/ring.layout.dot"},
		{"explicit output wins", "ring.json", "final.svg", "svg", false, "final.svg"},
		{"explicit output as base for multi", "ring.json", "final", "png", true, "final.png"},
		{"derived multi", "ring.json", "", "json", true, "ring.layout.json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := outputPath(tt.input, tt.output, tt.format, tt.multi)
			if got != tt.want {
				t.Errorf("outputPath(%q, %q, %q, %v) = %q, want %q",
					tt.input, tt.output, tt.format, tt.multi, got, tt.want)
			}
		})
	}
}
