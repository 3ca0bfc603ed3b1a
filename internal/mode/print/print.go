// ABOUTME: Headless print mode: one full prompt or conversational turn, then a snapshot of the active run
// ABOUTME: Text, JSON and stream-JSON formatters; markdown is styled only when stdout is a terminal

package print

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/sync/errgroup"
	"golang.org/x/term"

	"github.com/mauromedda/sda-go/internal/explorer"
	"github.com/mauromedda/sda-go/internal/log"
	"github.com/mauromedda/sda-go/internal/report"
	"github.com/mauromedda/sda-go/internal/session"
	"github.com/mauromedda/sda-go/pkg/api"
)

// Session modes accepted by Config.Mode.
const (
	ModeFull  = "full"
	ModeConvo = "convo"
)

// Config configures headless execution.
type Config struct {
	OutputFormat string // "text" (default), "json", "stream-json"
	Mode         string // ModeFull (default) or ModeConvo
	Snapshot     bool   // fetch listing, run files and report after the reply
	Path         string // folder listed in the snapshot; "" is the root
}

// RunFilesSource lists the active run's files.
type RunFilesSource interface {
	RunFiles(ctx context.Context) (api.RunFiles, error)
}

// Deps provides dependencies for print mode. Nil writers default to the
// process stdio.
type Deps struct {
	Session  *session.Controller
	Explorer *explorer.Controller
	Report   *report.Viewer
	Markdown *report.Renderer
	Remote   RunFilesSource

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Snapshot is the state of the active run after the exchange.
type Snapshot struct {
	Cwd      string         `json:"cwd"`
	Entries  []api.DirEntry `json:"entries"`
	RunFiles *api.RunFiles  `json:"run_files,omitempty"`
	Report   string         `json:"validation_md"`
	Errors   []string       `json:"errors,omitempty"`
}

// RunWithConfig sends prompt in the configured mode and prints the result.
// An empty prompt is read from stdin. The returned error is the exchange
// error; snapshot failures are reported in the output only.
func RunWithConfig(ctx context.Context, cfg Config, deps Deps, prompt string) error {
	deps = withStdio(deps)
	if cfg.OutputFormat == "" {
		cfg.OutputFormat = "text"
	}
	if cfg.Mode == "" {
		cfg.Mode = ModeFull
	}

	if strings.TrimSpace(prompt) == "" {
		data, err := io.ReadAll(deps.Stdin)
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
		prompt = string(data)
	}
	if strings.TrimSpace(prompt) == "" {
		return fmt.Errorf("no prompt given")
	}

	f := newFormatter(cfg.OutputFormat, deps)
	f.start(cfg.Mode)

	from, err := exchange(ctx, cfg.Mode, deps.Session, prompt)
	for _, msg := range deps.Session.Transcript()[from:] {
		f.message(msg)
	}
	if err != nil {
		f.err(err)
	}

	if cfg.Snapshot {
		f.snapshot(takeSnapshot(ctx, cfg.Path, deps))
	}
	f.end()
	return err
}

// exchange runs the begin action for mode and submits prompt. It returns the
// index of the first transcript message to print; the full prompt
// instruction is skipped, a conversational greeting is not.
func exchange(ctx context.Context, mode string, s *session.Controller, prompt string) (int, error) {
	from := 0
	switch mode {
	case ModeFull:
		if err := s.BeginFullPrompt(); err != nil {
			return 0, err
		}
		from = len(s.Transcript())
	case ModeConvo:
		// A failed start leaves the session degraded but usable; the prompt
		// itself is the retry.
		if err := s.BeginConversational(ctx); err != nil {
			log.Warn("print: conversation start failed, sending prompt anyway: %v", err)
		}
	default:
		return 0, fmt.Errorf("unknown mode %q (want %s or %s)", mode, ModeFull, ModeConvo)
	}
	return from, s.Submit(ctx, prompt)
}

// takeSnapshot fetches the listing, run files and report concurrently.
func takeSnapshot(ctx context.Context, path string, deps Deps) Snapshot {
	var (
		g     errgroup.Group
		files api.RunFiles
		snap  Snapshot
	)

	fetch := deps.Explorer.NavigateTo(path)
	g.Go(func() error {
		if err := fetch.Run(ctx); err != nil {
			return fmt.Errorf("listing: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if files, err = deps.Remote.RunFiles(ctx); err != nil {
			return fmt.Errorf("run files: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		if err := deps.Report.Refresh(ctx); err != nil {
			return fmt.Errorf("validation report: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		log.Warn("print: snapshot incomplete: %v", err)
	}

	v := deps.Explorer.View()
	snap.Cwd = v.Cwd
	snap.Entries = v.Entries
	if v.Err != nil {
		snap.Errors = append(snap.Errors, "listing: "+v.Err.Error())
	}
	if files.OK {
		snap.RunFiles = &files
	}
	snap.Report = deps.Report.Markdown()
	if err := deps.Report.Err(); err != nil {
		snap.Errors = append(snap.Errors, "validation report: "+err.Error())
	}
	return snap
}

func withStdio(d Deps) Deps {
	if d.Stdin == nil {
		d.Stdin = os.Stdin
	}
	if d.Stdout == nil {
		d.Stdout = os.Stdout
	}
	if d.Stderr == nil {
		d.Stderr = os.Stderr
	}
	if d.Markdown == nil {
		d.Markdown = report.NewRenderer(report.StyleAuto)
	}
	return d
}

// terminalWidth returns the column count when w is a terminal.
func terminalWidth(w io.Writer) (int, bool) {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return 0, false
	}
	cols, _, err := term.GetSize(int(f.Fd()))
	if err != nil || cols <= 0 {
		return 80, true
	}
	return cols, true
}
