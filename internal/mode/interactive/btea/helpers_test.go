// ABOUTME: Test fixtures for the TUI: an httptest fake of the agent service and a message pump
// ABOUTME: The pump runs commands to completion, relaying session rounds like Run does

package btea

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mauromedda/sda-go/internal/eventbus"
	"github.com/mauromedda/sda-go/internal/explorer"
	"github.com/mauromedda/sda-go/internal/report"
	"github.com/mauromedda/sda-go/internal/session"
	"github.com/mauromedda/sda-go/pkg/api"
)

var listings = map[string]string{
	"": `{"ok":true,"cwd":"","entries":[
		{"name":"runs","path":"runs","type":"dir"},
		{"name":"notes.csv","path":"notes.csv","type":"file","size":2048,"mtime":1700000000.5}]}`,
	"runs":    `{"ok":true,"cwd":"runs","entries":[{"name":"r1","path":"runs/r1","type":"dir"}]}`,
	"runs/r1": `{"ok":true,"cwd":"runs/r1","entries":[{"name":"out.csv","path":"runs/r1/out.csv","type":"file","size":12}]}`,
}

// fakeService records request paths and answers like the agent service.
type fakeService struct {
	mu    sync.Mutex
	calls map[string]int
}

func (f *fakeService) count(path string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[path]
}

func (f *fakeService) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	f.calls[r.URL.Path]++
	f.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	switch r.URL.Path {
	case "/api/start_convo":
		fmt.Fprint(w, `{"ok":true,"reply":"hello there"}`)
	case "/api/chat_convo", "/api/start_full", "/api/continue_full":
		var req struct{ Message string }
		_ = json.NewDecoder(r.Body).Decode(&req)
		fmt.Fprintf(w, `{"ok":true,"reply":%q}`, "echo: "+req.Message)
	case "/api/list_dir":
		body, ok := listings[r.URL.Query().Get("path")]
		if !ok {
			http.Error(w, `{"detail":"not found"}`, http.StatusNotFound)
			return
		}
		fmt.Fprint(w, body)
	case "/api/validation":
		fmt.Fprint(w, `{"md":"# Report\n\nAll good."}`)
	case "/api/files":
		fmt.Fprint(w, `{"ok":true,"files":["out.csv"],"active_run":"runs/r1"}`)
	case "/healthz":
		fmt.Fprint(w, `{"status":"ok","service":"sda-backend"}`)
	case "/api/download":
		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", `attachment; filename="notes.csv"`)
		fmt.Fprint(w, "a,b\n1,2\n")
	default:
		http.NotFound(w, r)
	}
}

// testApp bundles a model with its fake service and relayed rounds.
type testApp struct {
	svc *fakeService

	mu     sync.Mutex
	rounds []tea.Msg
}

func newTestApp(t *testing.T) (AppModel, *testApp) {
	t.Helper()

	ta := &testApp{svc: &fakeService{calls: map[string]int{}}}
	srv := httptest.NewServer(ta.svc)
	t.Cleanup(srv.Close)

	client := api.NewClient(srv.URL, api.Options{})
	bus := eventbus.New[session.RoundSettled]()
	bus.Subscribe(func(ev session.RoundSettled) {
		ta.mu.Lock()
		ta.rounds = append(ta.rounds, RoundSettledMsg{Event: ev})
		ta.mu.Unlock()
	})

	md := report.NewRenderer("ascii")
	m := NewAppModel(AppDeps{
		Session:     session.NewController(client, bus),
		Explorer:    explorer.NewController(client),
		Report:      report.NewViewer(client, md),
		Markdown:    md,
		Rounds:      bus,
		Remote:      client,
		BaseURL:     srv.URL,
		DownloadDir: t.TempDir(),
		Version:     "0.1.0-test",
	})
	return m, ta
}

func (ta *testApp) takeRounds() []tea.Msg {
	ta.mu.Lock()
	defer ta.mu.Unlock()
	out := ta.rounds
	ta.rounds = nil
	return out
}

// pump runs cmd and every command produced while handling its messages.
// Only the app's own result messages are delivered; timers are dropped.
func (ta *testApp) pump(t *testing.T, m AppModel, cmd tea.Cmd) AppModel {
	t.Helper()

	queue := []tea.Cmd{cmd}
	for steps := 0; len(queue) > 0; steps++ {
		if steps > 100 {
			t.Fatal("pump did not settle")
		}
		c := queue[0]
		queue = queue[1:]
		if c == nil {
			continue
		}

		msgs := []tea.Msg{c()}
		msgs = append(msgs, ta.takeRounds()...)
		for _, msg := range msgs {
			switch msg := msg.(type) {
			case tea.BatchMsg:
				queue = append(queue, msg...)
			case RoundSettledMsg, ExchangeDoneMsg, ListingMsg, ReportMsg,
				HealthMsg, RunFilesMsg, DownloadMsg:
				updated, next := m.Update(msg)
				m = updated.(AppModel)
				queue = append(queue, next)
			}
		}
	}
	return m
}

// send delivers one message synchronously and returns the resulting command.
func send(m AppModel, msg tea.Msg) (AppModel, tea.Cmd) {
	updated, cmd := m.Update(msg)
	return updated.(AppModel), cmd
}

func enter(m AppModel, text string) (AppModel, tea.Cmd) {
	m.input.SetValue(text)
	return send(m, tea.KeyMsg{Type: tea.KeyEnter})
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}
