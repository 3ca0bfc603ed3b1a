// ABOUTME: Transcript rendering: role-labelled messages with glamour-rendered agent replies
// ABOUTME: Output feeds the left pane viewport

package btea

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mauromedda/sda-go/internal/report"
	"github.com/mauromedda/sda-go/internal/session"
)

const transcriptWelcome = "Pick a mode to begin: /convo for a conversation, " +
	"/full for a one-shot prompt. /help lists every command."

// renderTranscript renders msgs in display order at the given width.
func renderTranscript(msgs []session.Message, md *report.Renderer, cols int) string {
	st := Styles()
	wrap := lipgloss.NewStyle().Width(max(cols, 1))
	if len(msgs) == 0 {
		return st.Dim.Width(max(cols, 1)).Render(transcriptWelcome)
	}

	var b strings.Builder
	for i, msg := range msgs {
		if i > 0 {
			b.WriteString("\n\n")
		}
		switch {
		case msg.Role == session.RoleUser:
			b.WriteString(st.User.Render("you"))
			b.WriteString("\n")
			b.WriteString(wrap.Render(msg.Text))
		case msg.Failed:
			b.WriteString(st.Agent.Render("agent"))
			b.WriteString("\n")
			b.WriteString(st.Failed.Width(max(cols, 1)).Render(msg.Text))
		default:
			b.WriteString(st.Agent.Render("agent"))
			b.WriteString("\n")
			b.WriteString(md.Render(msg.Text, cols))
		}
	}
	return b.String()
}
