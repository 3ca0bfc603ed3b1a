// ABOUTME: CLI flag parsing using stdlib flag package
// ABOUTME: Supports --base-url, --print, -p, --mode, --output-format, --timeout, --path, --version

package main

import (
	"flag"
	"fmt"
	"io"
	"time"
)

type cliArgs struct {
	baseURL      string
	print        bool
	prompt       string
	mode         string
	outputFormat string
	timeout      time.Duration
	path         string
	noSnapshot   bool
	verbose      bool
	version      bool

	rest []string
}

func parseFlags(argv []string, errOut io.Writer) (cliArgs, error) {
	var args cliArgs

	fs := flag.NewFlagSet("sda", flag.ContinueOnError)
	fs.SetOutput(errOut)

	fs.StringVar(&args.baseURL, "base-url", "", "Agent service base URL (default http://localhost:8000)")
	fs.BoolVar(&args.print, "print", false, "Non-interactive print mode; prompt from args or stdin")
	fs.StringVar(&args.prompt, "p", "", "Run one prompt non-interactively")
	fs.StringVar(&args.mode, "mode", "full", "Print mode session: full or convo")
	fs.StringVar(&args.outputFormat, "output-format", "text", "Print mode output: text, json or stream-json")
	fs.DurationVar(&args.timeout, "timeout", 0, "Per-request timeout (0 waits indefinitely)")
	fs.StringVar(&args.path, "path", "", "Run folder listed after a print mode reply")
	fs.BoolVar(&args.noSnapshot, "no-snapshot", false, "Skip the run snapshot in print mode")
	fs.BoolVar(&args.verbose, "verbose", false, "Enable debug logging")
	fs.BoolVar(&args.version, "version", false, "Show version and exit")

	if err := fs.Parse(argv); err != nil {
		return cliArgs{}, err
	}
	args.rest = fs.Args()

	switch args.mode {
	case "full", "convo":
	default:
		return cliArgs{}, fmt.Errorf("invalid --mode %q: want full or convo", args.mode)
	}
	switch args.outputFormat {
	case "text", "json", "stream-json":
	default:
		return cliArgs{}, fmt.Errorf("invalid --output-format %q: want text, json or stream-json", args.outputFormat)
	}
	if args.timeout < 0 {
		return cliArgs{}, fmt.Errorf("invalid --timeout %s: must not be negative", args.timeout)
	}
	return args, nil
}

// headless reports whether the invocation runs print mode.
func (a cliArgs) headless() bool {
	return a.print || a.prompt != ""
}
