// ABOUTME: Pre-sets the lipgloss background before BubbleTea's init() sends OSC queries
// ABOUTME: Must be imported (with _) before any package that imports bubbletea

package termfix

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// EnvBackground selects the assumed terminal background ("dark" or "light").
const EnvBackground = "SDA_BACKGROUND"

func init() {
	// An explicit background makes lipgloss skip its OSC 10/11 query, whose
	// late reply would otherwise land in the input box.
	// This package must NOT import bubbletea (directly or transitively)
	// so that Go's init order guarantees this runs first.
	lipgloss.SetHasDarkBackground(darkBackground(os.Getenv(EnvBackground)))
}

func darkBackground(v string) bool {
	return !strings.EqualFold(strings.TrimSpace(v), "light")
}
