// ABOUTME: Lipgloss styles for panes, transcript roles, listing rows and the footer
// ABOUTME: Styles() returns the shared palette; colors are 256-color codes

package btea

import "github.com/charmbracelet/lipgloss"

// ThemeStyles holds every style used by the views.
type ThemeStyles struct {
	Pane        lipgloss.Style
	PaneFocused lipgloss.Style
	Title       lipgloss.Style

	User   lipgloss.Style
	Agent  lipgloss.Style
	Failed lipgloss.Style

	Crumb       lipgloss.Style
	CrumbActive lipgloss.Style
	Dir         lipgloss.Style
	Selected    lipgloss.Style
	Dim         lipgloss.Style

	Online  lipgloss.Style
	Offline lipgloss.Style
	Notice  lipgloss.Style
}

var styles = ThemeStyles{
	Pane: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")),
	PaneFocused: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("63")),
	Title: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("111")),

	User:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
	Agent:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("213")),
	Failed: lipgloss.NewStyle().Foreground(lipgloss.Color("203")),

	Crumb:       lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	CrumbActive: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("255")),
	Dir:         lipgloss.NewStyle().Foreground(lipgloss.Color("75")),
	Selected:    lipgloss.NewStyle().Reverse(true),
	Dim:         lipgloss.NewStyle().Foreground(lipgloss.Color("242")),

	Online:  lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
	Offline: lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
	Notice:  lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("179")),
}

// Styles returns the shared palette.
func Styles() ThemeStyles {
	return styles
}
