// ABOUTME: Tests for background selection from SDA_BACKGROUND
// ABOUTME: Dark is the default for anything but "light"

package termfix

import "testing"

func TestDarkBackground(t *testing.T) {
	t.Parallel()

	tests := map[string]bool{
		"":        true,
		"dark":    true,
		"light":   false,
		" Light ": false,
		"bogus":   true,
	}
	for in, want := range tests {
		if got := darkBackground(in); got != want {
			t.Errorf("darkBackground(%q) = %v, want %v", in, got, want)
		}
	}
}
