// ABOUTME: Slash command registry and dispatch for interactive mode
// ABOUTME: Commands drive the session mode, the run explorer, downloads and the validation report

package commands

import (
	"fmt"
	"sort"
	"strings"
)

// Command represents a slash command.
type Command struct {
	Name        string
	Aliases     []string
	Usage       string
	Description string
	Execute     func(ctx *CommandContext, args string) (string, error)
}

// CommandContext provides access to app state for commands.
// Every callback is nilable; a command whose callback is nil reports
// that it is not available.
type CommandContext struct {
	Version  string
	BaseURL  string
	Mode     string
	Cwd      string
	Messages int

	// Session
	StartConversational func() error
	StartFullPrompt     func() error

	// Explorer. Back, Forward and Up report whether anything moved.
	NavigateTo func(path string)
	Back       func() bool
	Forward    func() bool
	Up         func() bool
	Refresh    func()
	SetFilter  func(pattern string)

	// Files and report
	Download   func(path string)
	ShowReport func()
	RunFiles   func()

	ExitFn func()
}

// Registry holds all registered slash commands.
type Registry struct {
	commands map[string]*Command
	aliases  map[string]string
}

// NewRegistry creates a registry with all core commands registered.
func NewRegistry() *Registry {
	r := &Registry{
		commands: make(map[string]*Command),
		aliases:  make(map[string]string),
	}
	r.registerCoreCommands()
	return r
}

// Get returns a command by name or alias.
// The second return value indicates whether the name was found.
func (r *Registry) Get(name string) (*Command, bool) {
	if target, ok := r.aliases[name]; ok {
		name = target
	}
	cmd, ok := r.commands[name]
	return cmd, ok
}

// List returns all commands sorted by name for deterministic output.
func (r *Registry) List() []*Command {
	result := make([]*Command, 0, len(r.commands))
	for _, cmd := range r.commands {
		result = append(result, cmd)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})
	return result
}

// Complete returns the names of commands starting with prefix.
func (r *Registry) Complete(prefix string) []string {
	prefix = strings.TrimPrefix(prefix, "/")
	var out []string
	for _, cmd := range r.List() {
		if strings.HasPrefix(cmd.Name, prefix) {
			out = append(out, "/"+cmd.Name)
		}
	}
	return out
}

// Dispatch parses a "/command args" input, looks up the command, and executes it.
// Returns the command output or an error if the command is not found.
func (r *Registry) Dispatch(ctx *CommandContext, input string) (string, error) {
	input = strings.TrimSpace(input)
	if !IsCommand(input) {
		return "", fmt.Errorf("not a command: %q", input)
	}

	name, args, _ := strings.Cut(input[1:], " ")
	cmd, ok := r.Get(name)
	if !ok {
		return "", fmt.Errorf("unknown command: /%s", name)
	}
	return cmd.Execute(ctx, strings.TrimSpace(args))
}

// IsCommand returns true if input starts with '/'.
func IsCommand(input string) bool {
	return len(input) > 0 && input[0] == '/'
}

func (r *Registry) register(cmds ...*Command) {
	for _, cmd := range cmds {
		r.commands[cmd.Name] = cmd
		for _, a := range cmd.Aliases {
			r.aliases[a] = cmd.Name
		}
	}
}

func notAvailable(what string) (string, error) {
	return what + " not available.", nil
}

// registerCoreCommands adds all built-in slash commands to the registry.
func (r *Registry) registerCoreCommands() {
	r.register(
		&Command{
			Name:        "convo",
			Description: "Start a conversational session",
			Execute: func(ctx *CommandContext, _ string) (string, error) {
				if ctx.StartConversational == nil {
					return notAvailable("Conversational mode")
				}
				if err := ctx.StartConversational(); err != nil {
					return "", fmt.Errorf("start conversational: %w", err)
				}
				return "Starting conversational session...", nil
			},
		},
		&Command{
			Name:        "full",
			Description: "Start a one-shot full prompt",
			Execute: func(ctx *CommandContext, _ string) (string, error) {
				if ctx.StartFullPrompt == nil {
					return notAvailable("Full prompt mode")
				}
				if err := ctx.StartFullPrompt(); err != nil {
					return "", fmt.Errorf("start full prompt: %w", err)
				}
				return "Full prompt mode: describe the whole job in one message.", nil
			},
		},
		&Command{
			Name:        "cd",
			Usage:       "/cd <path>",
			Description: "Open a run folder (empty for the root)",
			Execute: func(ctx *CommandContext, args string) (string, error) {
				if ctx.NavigateTo == nil {
					return notAvailable("Explorer")
				}
				ctx.NavigateTo(args)
				if args == "" {
					return "Opening root...", nil
				}
				return fmt.Sprintf("Opening %s...", args), nil
			},
		},
		&Command{
			Name:        "back",
			Description: "Go back in folder history",
			Execute: func(ctx *CommandContext, _ string) (string, error) {
				if ctx.Back == nil {
					return notAvailable("Explorer")
				}
				if !ctx.Back() {
					return "Already at the oldest folder.", nil
				}
				return "", nil
			},
		},
		&Command{
			Name:        "forward",
			Aliases:     []string{"fwd"},
			Description: "Go forward in folder history",
			Execute: func(ctx *CommandContext, _ string) (string, error) {
				if ctx.Forward == nil {
					return notAvailable("Explorer")
				}
				if !ctx.Forward() {
					return "Already at the newest folder.", nil
				}
				return "", nil
			},
		},
		&Command{
			Name:        "up",
			Description: "Open the parent folder",
			Execute: func(ctx *CommandContext, _ string) (string, error) {
				if ctx.Up == nil {
					return notAvailable("Explorer")
				}
				if !ctx.Up() {
					return "Already at the root.", nil
				}
				return "", nil
			},
		},
		&Command{
			Name:        "refresh",
			Description: "Reload the current folder",
			Execute: func(ctx *CommandContext, _ string) (string, error) {
				if ctx.Refresh == nil {
					return notAvailable("Explorer")
				}
				ctx.Refresh()
				return "", nil
			},
		},
		&Command{
			Name:        "filter",
			Usage:       "/filter [pattern]",
			Description: "Fuzzy-filter the folder listing (empty clears)",
			Execute: func(ctx *CommandContext, args string) (string, error) {
				if ctx.SetFilter == nil {
					return notAvailable("Filter")
				}
				ctx.SetFilter(args)
				if args == "" {
					return "Filter cleared.", nil
				}
				return fmt.Sprintf("Filtering by %q.", args), nil
			},
		},
		&Command{
			Name:        "get",
			Aliases:     []string{"download"},
			Usage:       "/get <path>",
			Description: "Download a run file",
			Execute: func(ctx *CommandContext, args string) (string, error) {
				if ctx.Download == nil {
					return notAvailable("Download")
				}
				if args == "" {
					return "Usage: /get <path>", nil
				}
				ctx.Download(args)
				return fmt.Sprintf("Downloading %s...", args), nil
			},
		},
		&Command{
			Name:        "report",
			Description: "Show the validation report",
			Execute: func(ctx *CommandContext, _ string) (string, error) {
				if ctx.ShowReport == nil {
					return notAvailable("Validation report")
				}
				ctx.ShowReport()
				return "", nil
			},
		},
		&Command{
			Name:        "files",
			Description: "List the CSV files of the active run",
			Execute: func(ctx *CommandContext, _ string) (string, error) {
				if ctx.RunFiles == nil {
					return notAvailable("Run files")
				}
				ctx.RunFiles()
				return "", nil
			},
		},
		&Command{
			Name:        "status",
			Description: "Show session status",
			Execute: func(ctx *CommandContext, _ string) (string, error) {
				cwd := ctx.Cwd
				if cwd == "" {
					cwd = "/"
				}
				return fmt.Sprintf(
					"Backend:  %s\nMode:     %s\nMessages: %d\nFolder:   %s\nVersion:  %s",
					ctx.BaseURL, ctx.Mode, ctx.Messages, cwd, ctx.Version,
				), nil
			},
		},
		&Command{
			Name:        "exit",
			Aliases:     []string{"quit"},
			Description: "Exit the application",
			Execute: func(ctx *CommandContext, _ string) (string, error) {
				if ctx.ExitFn == nil {
					return notAvailable("Exit")
				}
				ctx.ExitFn()
				return "Goodbye.", nil
			},
		},
		&Command{
			Name:        "help",
			Description: "Show available commands",
			Execute: func(_ *CommandContext, _ string) (string, error) {
				var b strings.Builder
				b.WriteString("Available commands:\n")
				for _, cmd := range r.List() {
					usage := cmd.Usage
					if usage == "" {
						usage = "/" + cmd.Name
					}
					fmt.Fprintf(&b, "  %-18s %s\n", usage, cmd.Description)
				}
				return b.String(), nil
			},
		},
	)
}
