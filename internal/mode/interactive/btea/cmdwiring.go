// ABOUTME: Command wiring: builds a CommandContext whose callbacks drive the controllers
// ABOUTME: Uses cmdSideEffects to capture signals from callbacks, applied after Dispatch returns

package btea

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mauromedda/sda-go/internal/commands"
	"github.com/mauromedda/sda-go/internal/explorer"
)

// cmdSideEffects captures signals from command callbacks that need to
// produce tea.Cmd or mutate AppModel after Dispatch returns.
type cmdSideEffects struct {
	quit              bool
	transcriptChanged bool
	showReport        bool
	filter            *string
	cmds              []tea.Cmd
}

// fetch queues f and reports whether the navigation did anything.
func (e *cmdSideEffects) fetch(m AppModel, f *explorer.Fetch) bool {
	if f == nil {
		return false
	}
	e.cmds = append(e.cmds, m.fetchCmd(f))
	return true
}

// buildCommandContext creates a CommandContext with every callback wired as
// a closure over the controllers and a shared cmdSideEffects pointer.
func (m AppModel) buildCommandContext() (*commands.CommandContext, *cmdSideEffects) {
	effects := &cmdSideEffects{}
	st := m.deps.Session.State()
	ex := m.deps.Explorer

	ctx := &commands.CommandContext{
		Version:  m.deps.Version,
		BaseURL:  m.deps.BaseURL,
		Mode:     modeLabel(st),
		Cwd:      ex.Current(),
		Messages: len(st.Transcript),

		StartConversational: func() error {
			x, err := m.deps.Session.OpenConversational()
			if err != nil {
				return err
			}
			effects.transcriptChanged = true
			effects.cmds = append(effects.cmds, m.exchangeCmd(x))
			return nil
		},
		StartFullPrompt: func() error {
			if err := m.deps.Session.BeginFullPrompt(); err != nil {
				return err
			}
			effects.transcriptChanged = true
			return nil
		},

		NavigateTo: func(path string) { effects.fetch(m, ex.NavigateTo(path)) },
		Back:       func() bool { return effects.fetch(m, ex.Back()) },
		Forward:    func() bool { return effects.fetch(m, ex.Forward()) },
		Up:         func() bool { return effects.fetch(m, ex.Up()) },
		Refresh:    func() { effects.fetch(m, ex.Refresh()) },
		SetFilter: func(pattern string) {
			effects.filter = &pattern
		},

		Download: func(path string) {
			effects.cmds = append(effects.cmds, m.downloadCmd(path))
		},
		ShowReport: func() {
			effects.showReport = true
			effects.cmds = append(effects.cmds, m.reportCmd())
		},
		RunFiles: func() {
			effects.cmds = append(effects.cmds, m.runFilesCmd())
		},

		ExitFn: func() {
			effects.quit = true
		},
	}
	return ctx, effects
}
