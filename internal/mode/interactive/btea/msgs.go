// ABOUTME: All custom tea.Msg types for the Bubble Tea TUI
// ABOUTME: Results of background requests and session events relayed via Program.Send

package btea

import (
	"github.com/mauromedda/sda-go/internal/session"
	"github.com/mauromedda/sda-go/pkg/api"
)

// RoundSettledMsg relays a session round event from the event bus.
type RoundSettledMsg struct{ Event session.RoundSettled }

// ExchangeDoneMsg is returned once a chat exchange has been run.
type ExchangeDoneMsg struct{ Err error }

// ListingMsg is returned once a directory fetch resolved.
type ListingMsg struct {
	Path string
	Err  error
}

// ReportMsg is returned once a validation report refresh resolved.
type ReportMsg struct{ Err error }

// HealthMsg carries the startup health probe result.
type HealthMsg struct {
	Health api.Health
	Err    error
}

// RunFilesMsg carries the active run file list.
type RunFilesMsg struct {
	Files api.RunFiles
	Err   error
}

// DownloadMsg reports a finished download.
type DownloadMsg struct {
	Remote string
	Local  string
	Err    error
}
