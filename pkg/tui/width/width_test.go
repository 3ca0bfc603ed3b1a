// ABOUTME: Tests for VisibleWidth, Truncate, PadRight and Fit
// ABOUTME: Covers ASCII, CJK, emoji and ANSI sequences

package width

import "testing"

func TestVisibleWidth(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  int
	}{
		{name: "empty string", input: "", want: 0},
		{name: "ascii", input: "hello", want: 5},
		{name: "ansi colored", input: "\x1b[31mred\x1b[0m", want: 3},
		{name: "cjk", input: "你好", want: 4},
		{name: "emoji", input: "👋", want: 2},
		{name: "only ansi", input: "\x1b[31m\x1b[0m", want: 0},
		{name: "osc hyperlink", input: "\x1b]8;;http://x\x07link\x1b]8;;\x07", want: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := VisibleWidth(tt.input); got != tt.want {
				t.Errorf("VisibleWidth(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		s    string
		max  int
		want string
	}{
		{name: "fits", s: "orders.csv", max: 10, want: "orders.csv"},
		{name: "cut ascii", s: "orders.csv", max: 6, want: "order…"},
		{name: "cut wide", s: "你好世界", max: 5, want: "你好…"},
		{name: "zero", s: "abc", max: 0, want: ""},
		{name: "tail only", s: "abc", max: 1, want: "…"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Truncate(tt.s, tt.max, Ellipsis); got != tt.want {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tt.s, tt.max, got, tt.want)
			}
		})
	}
}

func TestFit(t *testing.T) {
	t.Parallel()

	if got := Fit("ab", 4); got != "ab  " {
		t.Errorf("Fit(ab, 4) = %q", got)
	}
	if got := Fit("abcdef", 4); got != "abc…" {
		t.Errorf("Fit(abcdef, 4) = %q", got)
	}
	if got := VisibleWidth(Fit("你好世界", 5)); got != 5 {
		t.Errorf("Fit wide width = %d, want 5", got)
	}
}
