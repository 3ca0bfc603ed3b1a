// ABOUTME: Root AppModel wiring the session and explorer controllers into the Bubble Tea TUI
// ABOUTME: Handles message routing, pane focus, key dispatch and background request commands

package btea

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mauromedda/sda-go/internal/commands"
	"github.com/mauromedda/sda-go/internal/explorer"
	"github.com/mauromedda/sda-go/internal/report"
	"github.com/mauromedda/sda-go/internal/session"
)

// Notices shown when a submission is ignored.
const (
	noticeNotStarted = "Pick a mode first: /convo or /full."
	noticeConsumed   = "The full prompt was already sent. Start a new run with /full or /convo."
	noticeBusy       = "Still waiting for the agent..."
)

type focus int

const (
	focusInput focus = iota
	focusExplorer
)

type panel int

const (
	panelTranscript panel = iota
	panelReport
	panelInfo
)

// shared holds mutable state that must survive AppModel value copies.
// Bubble Tea copies the model on each Update; pointer fields are shared
// across copies. Background goroutines only reach the model via Program.Send.
type shared struct {
	program *tea.Program
	ctx     context.Context
	cancel  context.CancelFunc
}

// layout holds pane sizes derived from the window size.
type layout struct {
	width, height int
	leftW, rightW int
	bodyH         int
}

// AppModel is the root Bubble Tea model for the interactive TUI.
type AppModel struct {
	sh   *shared // survives value copies
	deps AppDeps
	keys keyMap

	layout layout
	focus  focus
	panel  panel

	infoTitle string
	infoBody  string
	notice    string

	input    textarea.Model
	viewport viewport.Model
	spinner  spinner.Model
	help     help.Model
	footer   FooterModel
	explorer ExplorerPane

	cmdRegistry *commands.Registry
}

// NewAppModel creates an AppModel wired with the given dependencies.
func NewAppModel(deps AppDeps) AppModel {
	ctx, cancel := context.WithCancel(context.Background())
	if deps.Markdown == nil {
		deps.Markdown = report.NewRenderer(report.StyleAuto)
	}

	input := textarea.New()
	input.Placeholder = "Type a message or /help"
	input.ShowLineNumbers = false
	input.Prompt = "❯ "
	input.CharLimit = 0
	input.KeyMap.InsertNewline = key.NewBinding(key.WithKeys("alt+enter", "ctrl+j"))
	input.Focus()

	m := AppModel{
		sh:          &shared{ctx: ctx, cancel: cancel},
		deps:        deps,
		keys:        defaultKeyMap(),
		input:       input,
		viewport:    viewport.New(0, 0),
		spinner:     spinner.New(spinner.WithSpinner(spinner.Dot)),
		help:        help.New(),
		footer:      NewFooterModel(deps.BaseURL),
		cmdRegistry: commands.NewRegistry(),
	}
	m = m.resize(80, 24)
	return m.refreshViewport()
}

// Init returns startup commands: health probe, first listing, report and
// the spinner/cursor animations.
func (m AppModel) Init() tea.Cmd {
	return tea.Batch(
		m.healthCmd(),
		m.fetchCmd(m.deps.Explorer.Refresh()),
		m.reportCmd(),
		m.spinner.Tick,
		textarea.Blink,
	)
}

// Update routes messages to the appropriate handler.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m = m.resize(msg.Width, msg.Height)
		return m.refreshViewport(), nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case RoundSettledMsg:
		// Every settled round may have produced new run files.
		m = m.refreshTranscript()
		return m, tea.Batch(m.fetchCmd(m.deps.Explorer.Refresh()), m.reportCmd())

	case ExchangeDoneMsg:
		return m.refreshTranscript(), nil

	case ListingMsg:
		if errors.Is(msg.Err, explorer.ErrStale) {
			return m, nil
		}
		m.explorer = m.explorer.sync(m.deps.Explorer.View())
		return m, nil

	case ReportMsg:
		if errors.Is(msg.Err, report.ErrStale) {
			return m, nil
		}
		if m.panel == panelReport {
			m = m.refreshViewport()
		}
		return m, nil

	case HealthMsg:
		updated, _ := m.footer.Update(msg)
		m.footer = updated.(FooterModel)
		return m, nil

	case RunFilesMsg:
		return m.showInfo("Active run files", formatRunFiles(msg)), nil

	case DownloadMsg:
		if msg.Err != nil {
			m.notice = fmt.Sprintf("Download of %s failed: %v", msg.Remote, msg.Err)
		} else {
			m.notice = fmt.Sprintf("Saved %s to %s", msg.Remote, msg.Local)
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the two panes, the input box and the footer.
func (m AppModel) View() string {
	st := Styles()
	l := m.layout

	leftStyle, rightStyle, inputStyle := st.Pane, st.Pane, st.PaneFocused
	if m.focus == focusExplorer {
		rightStyle, inputStyle = st.PaneFocused, st.Pane
	}

	left := st.Title.Render(m.leftTitle()) + "\n" + m.viewport.View()
	right := st.Title.Render("Runs") + "\n" + m.explorer.View(m.deps.Explorer, m.spinner.View())

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		leftStyle.Width(l.leftW-2).Height(l.bodyH-2).MaxHeight(l.bodyH).Render(left),
		rightStyle.Width(l.rightW-2).Height(l.bodyH-2).MaxHeight(l.bodyH).Render(right),
	)
	input := inputStyle.Width(l.width - 2).Render(m.input.View())

	hints := m.keys.ShortHelp()
	if m.focus == focusExplorer {
		hints = m.keys.explorerHelp()
	}
	footer := m.footer.
		WithSession(m.deps.Session.State()).
		WithSpinner(m.spinner.View()).
		WithNotice(truncateNotice(m.notice, l.width)).
		WithHints(m.help.ShortHelpView(hints))

	return lipgloss.JoinVertical(lipgloss.Left, body, input, footer.View())
}

func (m AppModel) leftTitle() string {
	switch m.panel {
	case panelReport:
		return "Validation report"
	case panelInfo:
		return m.infoTitle
	default:
		return "Chat · " + modeLabel(m.deps.Session.State())
	}
}

// handleKey dispatches key presses: global bindings first, then the
// focused pane.
func (m AppModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.sh.cancel()
		return m, tea.Quit

	case key.Matches(msg, m.keys.SwitchFocus):
		if m.focus == focusInput {
			if prefix, ok := commandPrefix(m.input.Value()); ok {
				return m.completeCommand(prefix), nil
			}
			m.focus = focusExplorer
			m.input.Blur()
			return m, nil
		}
		m.focus = focusInput
		return m, m.input.Focus()

	case key.Matches(msg, m.keys.Report):
		if m.panel == panelReport {
			m.panel = panelTranscript
			return m.refreshViewport(), nil
		}
		m.panel = panelReport
		return m.refreshViewport(), m.reportCmd()

	case key.Matches(msg, m.keys.Close):
		switch {
		case m.panel != panelTranscript:
			m.panel = panelTranscript
			m = m.refreshViewport()
		case m.explorer.filter != "":
			m.explorer = m.explorer.withFilter("")
		default:
			m.notice = ""
		}
		return m, nil

	case key.Matches(msg, m.keys.ScrollUp, m.keys.ScrollDown):
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	if m.focus == focusExplorer {
		return m.handleExplorerKey(msg)
	}

	if key.Matches(msg, m.keys.Submit) {
		return m.submit()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleExplorerKey handles navigation keys while the explorer has focus.
func (m AppModel) handleExplorerKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	ctrl := m.deps.Explorer
	v := ctrl.View()

	switch {
	case key.Matches(msg, m.keys.Up):
		m.explorer = m.explorer.move(v, -1)
	case key.Matches(msg, m.keys.Down):
		m.explorer = m.explorer.move(v, 1)
	case key.Matches(msg, m.keys.Open):
		entry, ok := m.explorer.current(v)
		if !ok {
			return m, nil
		}
		if entry.IsDir() {
			return m, m.fetchCmd(ctrl.NavigateTo(entry.Path))
		}
		return m, m.downloadCmd(entry.Path)
	case key.Matches(msg, m.keys.Download):
		if entry, ok := m.explorer.current(v); ok && !entry.IsDir() {
			return m, m.downloadCmd(entry.Path)
		}
	case key.Matches(msg, m.keys.Back):
		return m, m.fetchCmd(ctrl.Back())
	case key.Matches(msg, m.keys.Forward):
		return m, m.fetchCmd(ctrl.Forward())
	case key.Matches(msg, m.keys.Parent):
		return m, m.fetchCmd(ctrl.Up())
	case key.Matches(msg, m.keys.Refresh):
		return m, m.fetchCmd(ctrl.Refresh())
	case key.Matches(msg, m.keys.Crumb):
		crumbs := ctrl.Breadcrumb()
		i := int(msg.String()[0] - '0')
		if i < len(crumbs) {
			return m, m.fetchCmd(ctrl.NavigateTo(crumbs[i].Path))
		}
	}
	return m, nil
}

// submit sends the input box content as a chat message or slash command.
func (m AppModel) submit() (tea.Model, tea.Cmd) {
	text := strings.TrimSpace(m.input.Value())
	if text == "" {
		return m, nil
	}
	if commands.IsCommand(text) {
		m.input.Reset()
		return m.handleSlashCommand(text)
	}

	x, err := m.deps.Session.Prepare(text)
	switch {
	case errors.Is(err, session.ErrNotStarted):
		m.notice = noticeNotStarted
		return m, nil
	case errors.Is(err, session.ErrPromptConsumed):
		m.notice = noticeConsumed
		return m, nil
	case errors.Is(err, session.ErrBusy):
		m.notice = noticeBusy
		return m, nil
	case err != nil:
		return m, nil
	}

	m.input.Reset()
	m.notice = ""
	m.panel = panelTranscript
	return m.refreshTranscript(), m.exchangeCmd(x)
}

// handleSlashCommand dispatches a slash command and applies its side effects.
func (m AppModel) handleSlashCommand(text string) (tea.Model, tea.Cmd) {
	ctx, effects := m.buildCommandContext()
	out, err := m.cmdRegistry.Dispatch(ctx, text)
	if err != nil {
		m.notice = err.Error()
	} else {
		m.notice = ""
	}

	if effects.filter != nil {
		m.explorer = m.explorer.withFilter(*effects.filter)
	}
	if effects.transcriptChanged {
		m.panel = panelTranscript
		m = m.refreshTranscript()
	}
	if effects.showReport {
		m.panel = panelReport
		m = m.refreshViewport()
	}

	switch {
	case strings.Contains(strings.TrimSpace(out), "\n"):
		name, _, _ := strings.Cut(strings.TrimPrefix(text, "/"), " ")
		m = m.showInfo("/"+name, out)
	case out != "":
		m.notice = out
	}

	if effects.quit {
		m.sh.cancel()
		return m, tea.Quit
	}
	return m, tea.Batch(effects.cmds...)
}

// commandPrefix returns the input when it is a bare "/name" prefix with no
// arguments yet.
func commandPrefix(value string) (string, bool) {
	if !commands.IsCommand(value) || strings.ContainsAny(value, " \n") {
		return "", false
	}
	return value, true
}

// completeCommand fills in a unique command match or lists the candidates.
func (m AppModel) completeCommand(prefix string) AppModel {
	matches := m.cmdRegistry.Complete(prefix)
	switch len(matches) {
	case 0:
		m.notice = "No command matches " + prefix
	case 1:
		m.input.SetValue(matches[0] + " ")
		m.input.CursorEnd()
		m.notice = ""
	default:
		m.notice = strings.Join(matches, "  ")
	}
	return m
}

// showInfo replaces the left pane with a read-only text panel until esc.
func (m AppModel) showInfo(title, body string) AppModel {
	m.panel = panelInfo
	m.infoTitle = title
	m.infoBody = strings.TrimRight(body, "\n")
	return m.refreshViewport()
}

// resize recomputes the pane layout.
func (m AppModel) resize(w, h int) AppModel {
	const footerH, inputH = 2, 5
	l := layout{width: w, height: h}
	l.bodyH = max(h-footerH-inputH, 6)
	l.leftW = w * 3 / 5
	l.rightW = w - l.leftW
	m.layout = l

	m.viewport.Width = max(l.leftW-2, 1)
	m.viewport.Height = max(l.bodyH-3, 1)
	m.explorer.width = max(l.rightW-2, 1)
	m.explorer.height = max(l.bodyH-3, 1)
	m.input.SetWidth(max(w-2, 10))
	m.input.SetHeight(inputH - 2)
	m.help.Width = w
	m.footer.width = w
	return m
}

// refreshTranscript re-renders the transcript when it is the visible panel.
func (m AppModel) refreshTranscript() AppModel {
	if m.panel != panelTranscript {
		return m
	}
	return m.refreshViewport()
}

// refreshViewport loads the visible panel's content into the viewport.
func (m AppModel) refreshViewport() AppModel {
	cols := m.viewport.Width
	switch m.panel {
	case panelReport:
		body := m.deps.Report.Render(cols)
		if m.deps.Report.Err() != nil {
			body = Styles().Failed.Render("Could not refresh the validation report.") + "\n\n" + body
		}
		m.viewport.SetContent(body)
		m.viewport.GotoTop()
	case panelInfo:
		m.viewport.SetContent(m.infoBody)
		m.viewport.GotoTop()
	default:
		m.viewport.SetContent(renderTranscript(m.deps.Session.Transcript(), m.deps.Markdown, cols))
		m.viewport.GotoBottom()
	}
	return m
}

// --- Background commands ---

func (m AppModel) exchangeCmd(x *session.Exchange) tea.Cmd {
	ctx := m.sh.ctx
	return func() tea.Msg {
		return ExchangeDoneMsg{Err: x.Run(ctx)}
	}
}

// fetchCmd runs a listing fetch; nil for a no-op navigation.
func (m AppModel) fetchCmd(f *explorer.Fetch) tea.Cmd {
	if f == nil {
		return nil
	}
	ctx := m.sh.ctx
	return func() tea.Msg {
		return ListingMsg{Path: f.Path(), Err: f.Run(ctx)}
	}
}

func (m AppModel) reportCmd() tea.Cmd {
	ctx, viewer := m.sh.ctx, m.deps.Report
	return func() tea.Msg {
		return ReportMsg{Err: viewer.Refresh(ctx)}
	}
}

func (m AppModel) healthCmd() tea.Cmd {
	ctx, remote := m.sh.ctx, m.deps.Remote
	return func() tea.Msg {
		h, err := remote.Health(ctx)
		return HealthMsg{Health: h, Err: err}
	}
}

func (m AppModel) runFilesCmd() tea.Cmd {
	ctx, remote := m.sh.ctx, m.deps.Remote
	return func() tea.Msg {
		files, err := remote.RunFiles(ctx)
		return RunFilesMsg{Files: files, Err: err}
	}
}

func (m AppModel) downloadCmd(remotePath string) tea.Cmd {
	ctx, remote, dir := m.sh.ctx, m.deps.Remote, m.deps.DownloadDir
	return func() tea.Msg {
		local, err := remote.SaveFile(ctx, remotePath, dir)
		return DownloadMsg{Remote: remotePath, Local: local, Err: err}
	}
}

// formatRunFiles renders the active run file list for the info panel.
func formatRunFiles(msg RunFilesMsg) string {
	if msg.Err != nil {
		return "Could not load the active run files."
	}
	var b strings.Builder
	if msg.Files.ActiveRun != "" {
		fmt.Fprintf(&b, "Active run: %s\n\n", msg.Files.ActiveRun)
	}
	if len(msg.Files.Files) == 0 {
		b.WriteString("No CSV files in the active run.")
		return b.String()
	}
	for _, f := range msg.Files.Files {
		fmt.Fprintf(&b, "  %s\n", f)
	}
	b.WriteString("\nDownload with /get <path>.")
	return b.String()
}
