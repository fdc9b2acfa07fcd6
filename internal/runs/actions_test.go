package runs

import (
	"testing"
	"unicode/utf8"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		max  int
		want string
	}{
		{"short stays whole", "Rigg", 10, "Rigg"},
		{"exact length stays whole", "abcdefghij", 10, "abcdefghij"},
		{"long is shortened", "abcdefghijk", 10, "abcdefg..."},
		{"norwegian title at the cut", "Scenerigg på Gaustadalléen begge døgn", 15, "Scenerigg på..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := truncate(tt.in, tt.max)
			if got != tt.want {
				t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
			}
			if !utf8.ValidString(got) {
				t.Errorf("truncate(%q, %d) produced invalid UTF-8 %q", tt.in, tt.max, got)
			}
		})
	}
}
