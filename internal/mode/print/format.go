// ABOUTME: Output formatters for print mode: plain text, a single JSON object, or JSON lines
// ABOUTME: Agent markdown is rendered with glamour only for terminals

package print

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/mauromedda/sda-go/internal/report"
	"github.com/mauromedda/sda-go/internal/session"
)

// formatter abstracts output formatting.
type formatter interface {
	start(mode string)
	message(m session.Message)
	err(e error)
	snapshot(s Snapshot)
	end()
}

func newFormatter(format string, deps Deps) formatter {
	switch format {
	case "json":
		return &jsonFormatter{out: deps.Stdout}
	case "stream-json":
		return &streamJSONFormatter{out: deps.Stdout}
	default:
		f := &textFormatter{out: deps.Stdout, errOut: deps.Stderr}
		if cols, ok := terminalWidth(deps.Stdout); ok {
			f.md, f.cols = deps.Markdown, cols
		}
		return f
	}
}

// textFormatter prints agent replies and the snapshot as plain text.
// User messages are not echoed.
type textFormatter struct {
	out, errOut io.Writer
	md          *report.Renderer // nil: print raw markdown
	cols        int
}

func (f *textFormatter) start(string) {}

func (f *textFormatter) message(m session.Message) {
	if m.Role != session.RoleAgent {
		return
	}
	if m.Failed {
		fmt.Fprintln(f.errOut, m.Text)
		return
	}
	fmt.Fprintln(f.out, f.render(m.Text))
	fmt.Fprintln(f.out)
}

func (f *textFormatter) err(e error) { fmt.Fprintf(f.errOut, "error: %v\n", e) }

func (f *textFormatter) snapshot(s Snapshot) {
	if s.RunFiles != nil {
		fmt.Fprintf(f.out, "Active run: %s\n", s.RunFiles.ActiveRun)
		for _, name := range s.RunFiles.Files {
			fmt.Fprintf(f.out, "  %s\n", name)
		}
		fmt.Fprintln(f.out)
	}

	cwd := s.Cwd
	if cwd == "" {
		cwd = "/"
	}
	fmt.Fprintf(f.out, "Folder %s:\n", cwd)
	for _, e := range s.Entries {
		name := e.Name
		if e.IsDir() {
			name += "/"
		}
		fmt.Fprintf(f.out, "  %s\n", name)
	}

	if strings.TrimSpace(s.Report) != "" {
		fmt.Fprintln(f.out)
		fmt.Fprintln(f.out, f.render(s.Report))
	}
	for _, e := range s.Errors {
		fmt.Fprintf(f.errOut, "warning: %s\n", e)
	}
}

func (f *textFormatter) end() {}

func (f *textFormatter) render(md string) string {
	if f.md == nil {
		return md
	}
	return f.md.Render(md, f.cols)
}

// jsonFormatter collects all output and writes a single JSON object at the end.
type jsonFormatter struct {
	out      io.Writer
	result   jsonOutput
	seenUser bool
}

type jsonMessage struct {
	Role   string `json:"role"`
	Text   string `json:"text"`
	Failed bool   `json:"failed,omitempty"`
}

type jsonOutput struct {
	Mode       string        `json:"mode"`
	OK         bool          `json:"ok"`
	Reply      string        `json:"reply"`
	Transcript []jsonMessage `json:"transcript"`
	Snapshot   *Snapshot     `json:"snapshot,omitempty"`
	Errors     []string      `json:"errors,omitempty"`
}

func (f *jsonFormatter) start(mode string) {
	f.result = jsonOutput{Mode: mode, OK: true, Transcript: []jsonMessage{}}
}

func (f *jsonFormatter) message(m session.Message) {
	f.result.Transcript = append(f.result.Transcript, toJSONMessage(m))
	switch {
	case m.Role == session.RoleUser:
		f.seenUser = true
	case f.seenUser && !m.Failed:
		// Only an answer to the prompt counts as the reply.
		f.result.Reply = m.Text
	}
}

func (f *jsonFormatter) err(e error) {
	f.result.OK = false
	f.result.Errors = append(f.result.Errors, e.Error())
}

func (f *jsonFormatter) snapshot(s Snapshot) { f.result.Snapshot = &s }

func (f *jsonFormatter) end() {
	data, _ := json.Marshal(f.result)
	fmt.Fprintln(f.out, string(data))
}

// streamJSONFormatter outputs one JSON line per event.
type streamJSONFormatter struct {
	out io.Writer
}

type streamEvent struct {
	Type     string       `json:"type"`
	Mode     string       `json:"mode,omitempty"`
	Message  *jsonMessage `json:"message,omitempty"`
	Snapshot *Snapshot    `json:"snapshot,omitempty"`
	Error    string       `json:"error,omitempty"`
}

func (f *streamJSONFormatter) start(mode string) {
	f.write(streamEvent{Type: "start", Mode: mode})
}

func (f *streamJSONFormatter) message(m session.Message) {
	msg := toJSONMessage(m)
	f.write(streamEvent{Type: "message", Message: &msg})
}

func (f *streamJSONFormatter) err(e error) {
	f.write(streamEvent{Type: "error", Error: e.Error()})
}

func (f *streamJSONFormatter) snapshot(s Snapshot) {
	f.write(streamEvent{Type: "snapshot", Snapshot: &s})
}

func (f *streamJSONFormatter) end() {
	f.write(streamEvent{Type: "end"})
}

func (f *streamJSONFormatter) write(evt streamEvent) {
	data, _ := json.Marshal(evt)
	fmt.Fprintln(f.out, string(data))
}

func toJSONMessage(m session.Message) jsonMessage {
	return jsonMessage{Role: string(m.Role), Text: m.Text, Failed: m.Failed}
}
