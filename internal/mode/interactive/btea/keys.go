// ABOUTME: Key bindings for the TUI built on bubbles/key
// ABOUTME: keyMap implements help.KeyMap for the footer hint line

package btea

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Quit        key.Binding
	Submit      key.Binding
	SwitchFocus key.Binding
	Report      key.Binding
	Close       key.Binding
	ScrollUp    key.Binding
	ScrollDown  key.Binding

	// Explorer pane
	Up       key.Binding
	Down     key.Binding
	Open     key.Binding
	Back     key.Binding
	Forward  key.Binding
	Parent   key.Binding
	Refresh  key.Binding
	Download key.Binding
	Crumb    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit:        key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
		Submit:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "send")),
		SwitchFocus: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch pane")),
		Report:      key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "report")),
		Close:       key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
		ScrollUp:    key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "scroll up")),
		ScrollDown:  key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "scroll down")),

		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Open:     key.NewBinding(key.WithKeys("enter", "right", "l"), key.WithHelp("enter", "open")),
		Back:     key.NewBinding(key.WithKeys("b", "alt+left"), key.WithHelp("b", "back")),
		Forward:  key.NewBinding(key.WithKeys("f", "alt+right"), key.WithHelp("f", "forward")),
		Parent:   key.NewBinding(key.WithKeys("u", "backspace", "left", "h"), key.WithHelp("u", "parent")),
		Refresh:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
		Download: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "download")),
		Crumb: key.NewBinding(
			key.WithKeys("0", "1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("0-9", "jump to crumb"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.SwitchFocus, k.Report, k.Close, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		k.ShortHelp(),
		{k.Up, k.Down, k.Open, k.Back, k.Forward, k.Parent, k.Refresh, k.Download, k.Crumb},
	}
}

// explorerHelp lists the bindings active while the explorer pane has focus.
func (k keyMap) explorerHelp() []key.Binding {
	return []key.Binding{k.Open, k.Back, k.Forward, k.Parent, k.Refresh, k.Download, k.Crumb, k.SwitchFocus}
}
