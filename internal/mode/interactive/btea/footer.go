// ABOUTME: FooterModel is a Bubble Tea leaf that renders a two-line status bar
// ABOUTME: Line 1: backend health, session mode, pending spinner. Line 2: notice or key hints

package btea

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mauromedda/sda-go/internal/session"
	"github.com/mauromedda/sda-go/pkg/api"
	"github.com/mauromedda/sda-go/pkg/tui/width"
)

type healthState int

const (
	healthUnknown healthState = iota
	healthOnline
	healthOffline
)

// FooterModel renders a two-line status bar at the bottom of the terminal.
type FooterModel struct {
	baseURL string
	health  healthState
	service string

	mode    string
	pending bool
	spinner string
	notice  string
	hints   string
	width   int
}

// NewFooterModel creates a footer for the service at baseURL.
func NewFooterModel(baseURL string) FooterModel {
	return FooterModel{baseURL: baseURL, mode: modeLabel(session.State{})}
}

// Init returns nil; no commands needed for a leaf model.
func (m FooterModel) Init() tea.Cmd {
	return nil
}

// Update handles messages relevant to the footer.
func (m FooterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case HealthMsg:
		m = m.WithHealth(msg.Health, msg.Err)
	case tea.WindowSizeMsg:
		m.width = msg.Width
	}
	return m, nil
}

// WithHealth records the health probe result.
func (m FooterModel) WithHealth(h api.Health, err error) FooterModel {
	if err != nil {
		m.health = healthOffline
		m.service = ""
		return m
	}
	m.health = healthOnline
	m.service = h.Service
	return m
}

// WithSession sets the mode label and pending flag from a session snapshot.
func (m FooterModel) WithSession(st session.State) FooterModel {
	m.mode = modeLabel(st)
	m.pending = st.Pending
	return m
}

// WithSpinner sets the spinner frame shown while a request is pending.
func (m FooterModel) WithSpinner(frame string) FooterModel {
	m.spinner = frame
	return m
}

// WithNotice sets the transient notice; it replaces the key hints.
func (m FooterModel) WithNotice(n string) FooterModel {
	m.notice = n
	return m
}

// WithHints sets the key hint line.
func (m FooterModel) WithHints(h string) FooterModel {
	m.hints = h
	return m
}

// View renders the two footer lines.
func (m FooterModel) View() string {
	st := Styles()

	var status string
	switch m.health {
	case healthOnline:
		label := "online"
		if m.service != "" {
			label += " · " + m.service
		}
		status = st.Online.Render("● " + label)
	case healthOffline:
		status = st.Offline.Render("● offline")
	default:
		status = st.Dim.Render("○ checking")
	}

	parts := []string{status, st.Dim.Render(m.baseURL), "mode: " + m.mode}
	if m.pending {
		parts = append(parts, m.spinner+" waiting for agent")
	}
	line1 := strings.Join(parts, "  ")

	line2 := m.hints
	if m.notice != "" {
		line2 = st.Notice.Render(m.notice)
	}

	if m.width > 0 {
		line1 = lipgloss.NewStyle().MaxWidth(m.width).Render(line1)
		line2 = lipgloss.NewStyle().MaxWidth(m.width).Render(line2)
	}
	return line1 + "\n" + line2
}

// modeLabel describes the session mode including its sub-states.
func modeLabel(st session.State) string {
	label := st.Mode.String()
	switch {
	case st.Mode == session.ModeConversational && st.Degraded:
		label += " (start failed)"
	case st.Mode == session.ModeFullPrompt && st.Consumed:
		label += " (sent)"
	}
	return label
}

// truncateNotice keeps single-line notices from wrapping the footer.
func truncateNotice(s string, cols int) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	if cols <= 0 {
		return s
	}
	return width.Truncate(s, cols, width.Ellipsis)
}
