// ABOUTME: CLI entry point for sda, the terminal client of the Synthetic Data Agents service
// ABOUTME: Parses flags, loads config, builds the controllers once, dispatches to print or interactive mode

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	// termfix must be imported before any package that imports bubbletea.
	_ "github.com/mauromedda/sda-go/internal/termfix"

	"github.com/mauromedda/sda-go/internal/config"
	"github.com/mauromedda/sda-go/internal/eventbus"
	"github.com/mauromedda/sda-go/internal/explorer"
	sdalog "github.com/mauromedda/sda-go/internal/log"
	"github.com/mauromedda/sda-go/internal/mode/interactive/btea"
	"github.com/mauromedda/sda-go/internal/mode/print"
	"github.com/mauromedda/sda-go/internal/report"
	"github.com/mauromedda/sda-go/internal/session"
	"github.com/mauromedda/sda-go/pkg/api"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
		os.Exit(1)
	}
}

// run performs the initialization sequence and dispatches to the selected mode.
func run(argv []string, stdin io.Reader, stdout, stderr io.Writer) error {
	// "config" prints the effective settings and exits.
	explain := len(argv) > 0 && argv[0] == "config"
	if explain {
		argv = argv[1:]
	}

	args, err := parseFlags(argv, stderr)
	if err != nil {
		return err
	}

	if args.version {
		fmt.Fprintf(stdout, "sda %s (%s) built %s\n", version, commit, date)
		return nil
	}
	if args.verbose {
		sdalog.SetLevel(sdalog.LevelDebug)
	}

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting working directory: %w", err)
	}

	cfg, err := config.LoadAll(cwd, buildCLIOverrides(args))
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if explain {
		fmt.Fprint(stdout, config.Explain(cfg))
		return nil
	}

	a := newApp(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if args.headless() {
		prompt := args.prompt
		if prompt == "" {
			prompt = strings.Join(args.rest, " ")
		}
		return print.RunWithConfig(ctx, print.Config{
			OutputFormat: args.outputFormat,
			Mode:         args.mode,
			Snapshot:     !args.noSnapshot,
			Path:         args.path,
		}, print.Deps{
			Session:  a.session,
			Explorer: a.explorer,
			Report:   a.report,
			Markdown: a.markdown,
			Remote:   a.client,
			Stdin:    stdin,
			Stdout:   stdout,
			Stderr:   stderr,
		}, prompt)
	}

	// Interactive mode owns the terminal; logs go to a file.
	closeLog, err := openLog(cfg.LogFile)
	if err != nil {
		fmt.Fprintf(stderr, "warning: %v; logging disabled\n", err)
		sdalog.SetOutput(io.Discard)
	} else {
		defer closeLog()
	}
	sdalog.Info("sda %s starting against %s", version, cfg.BaseURL)

	return btea.Run(btea.AppDeps{
		Session:     a.session,
		Explorer:    a.explorer,
		Report:      a.report,
		Markdown:    a.markdown,
		Rounds:      a.rounds,
		Remote:      a.client,
		BaseURL:     cfg.BaseURL,
		DownloadDir: cfg.DownloadDir,
		Version:     version,
	})
}

// app holds the process-wide components, built once and passed explicitly
// to whichever mode runs.
type app struct {
	client   *api.Client
	rounds   *eventbus.Bus[session.RoundSettled]
	session  *session.Controller
	explorer *explorer.Controller
	markdown *report.Renderer
	report   *report.Viewer
}

func newApp(cfg *config.Settings) *app {
	client := api.NewClient(cfg.BaseURL, cfg.ClientOptions())
	rounds := eventbus.New[session.RoundSettled]()
	md := report.NewRenderer(cfg.MarkdownStyle)
	return &app{
		client:   client,
		rounds:   rounds,
		session:  session.NewController(client, rounds),
		explorer: explorer.NewController(client),
		markdown: md,
		report:   report.NewViewer(client, md),
	}
}

// buildCLIOverrides maps CLI flags to a Settings struct for LoadAll.
func buildCLIOverrides(args cliArgs) *config.Settings {
	s := &config.Settings{}
	if args.baseURL != "" {
		s.BaseURL = args.baseURL
	}
	if args.timeout > 0 {
		s.Timeout = args.timeout
	}
	return s
}

func openLog(path string) (func() error, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating log dir: %w", err)
	}
	return sdalog.OpenFile(path)
}
