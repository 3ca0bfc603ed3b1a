// ABOUTME: VisibleWidth computes display width of strings with grapheme-aware segmentation
// ABOUTME: Truncate and PadRight fit plain text into fixed terminal columns

package width

import (
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Ellipsis is the default tail used by Truncate.
const Ellipsis = "…"

// VisibleWidth returns the display width of s. ANSI escape sequences count
// as zero; East Asian wide characters and emoji count as two.
func VisibleWidth(s string) int {
	if isPlainASCII(s) {
		return len(s)
	}
	w := 0
	forEachGrapheme(StripANSI(s), func(cluster string, cw int) bool {
		w += cw
		return true
	})
	return w
}

// Truncate shortens plain text s to at most maxCols columns, ending it with
// tail when anything was cut. Grapheme clusters are never split.
func Truncate(s string, maxCols int, tail string) string {
	if maxCols <= 0 {
		return ""
	}
	if VisibleWidth(s) <= maxCols {
		return s
	}
	budget := maxCols - VisibleWidth(tail)
	if budget < 0 {
		return ""
	}

	var b strings.Builder
	used := 0
	forEachGrapheme(s, func(cluster string, cw int) bool {
		if used+cw > budget {
			return false
		}
		b.WriteString(cluster)
		used += cw
		return true
	})
	b.WriteString(tail)
	return b.String()
}

// PadRight pads s with spaces to cols columns.
func PadRight(s string, cols int) string {
	if w := VisibleWidth(s); w < cols {
		return s + strings.Repeat(" ", cols-w)
	}
	return s
}

// Fit truncates with Ellipsis and then pads, yielding exactly cols columns.
func Fit(s string, cols int) string {
	return PadRight(Truncate(s, cols, Ellipsis), cols)
}

// isPlainASCII returns true if s contains only printable ASCII.
func isPlainASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 0x20 || s[i] > 0x7E {
			return false
		}
	}
	return true
}

// forEachGrapheme calls fn with each grapheme cluster of s and its width
// until fn returns false.
func forEachGrapheme(s string, fn func(cluster string, width int) bool) {
	state := -1
	for len(s) > 0 {
		var cluster string
		cluster, s, _, state = uniseg.FirstGraphemeClusterInString(s, state)
		if !fn(cluster, graphemeWidth(cluster)) {
			return
		}
	}
}

// graphemeWidth returns the display width of a single grapheme cluster,
// measured by its first rune.
func graphemeWidth(cluster string) int {
	r, _ := utf8.DecodeRuneInString(cluster)
	return runewidth.RuneWidth(r)
}
