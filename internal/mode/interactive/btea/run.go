// ABOUTME: Entry point for the Bubble Tea interactive TUI
// ABOUTME: Creates the tea.Program, relays session rounds into it, and blocks until exit

package btea

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mauromedda/sda-go/internal/session"
)

// Run starts the Bubble Tea interactive app. Blocks until the user exits.
func Run(deps AppDeps) error {
	m := NewAppModel(deps)
	defer m.sh.cancel()

	p := tea.NewProgram(
		m,
		tea.WithOutput(os.Stderr),
		tea.WithAltScreen(),
	)

	// Inject the program reference into the shared state.
	// This is safe because NewAppModel allocates sh as a pointer,
	// and tea.NewProgram copies the model value but shares the pointer.
	m.sh.program = p

	if deps.Rounds != nil {
		unsubscribe := deps.Rounds.Subscribe(func(ev session.RoundSettled) {
			p.Send(RoundSettledMsg{Event: ev})
		})
		defer unsubscribe()
	}

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("bubble tea: %w", err)
	}
	return nil
}
