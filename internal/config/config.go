// ABOUTME: Settings loading with global + project YAML config merge and CLI overrides
// ABOUTME: Uses gopkg.in/yaml.v3; defaults and SDA_* env overrides applied after merging

package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/mauromedda/sda-go/pkg/api"
)

// DefaultBaseURL is where the FastAPI backend listens in local development.
const DefaultBaseURL = "http://localhost:8000"

// Settings holds the merged configuration.
type Settings struct {
	BaseURL       string            `yaml:"base_url,omitempty"`
	Timeout       time.Duration     `yaml:"timeout,omitempty"`
	DownloadDir   string            `yaml:"download_dir,omitempty"`
	LogFile       string            `yaml:"log_file,omitempty"`
	MarkdownStyle string            `yaml:"markdown_style,omitempty"`
	Headers       map[string]string `yaml:"headers,omitempty"`
	Endpoints     EndpointSettings  `yaml:"endpoints,omitempty"`
}

// EndpointSettings overrides individual request paths.
type EndpointSettings struct {
	StartConversational string `yaml:"start_conversational,omitempty"`
	ChatConversational  string `yaml:"chat_conversational,omitempty"`
	StartFullPrompt     string `yaml:"start_full_prompt,omitempty"`
	ContinueFullPrompt  string `yaml:"continue_full_prompt,omitempty"`
	ListDirectory       string `yaml:"list_directory,omitempty"`
	DownloadFile        string `yaml:"download_file,omitempty"`
	ValidationReport    string `yaml:"validation_report,omitempty"`
	RunFiles            string `yaml:"run_files,omitempty"`
	Health              string `yaml:"health,omitempty"`
}

// APIEndpoints converts the overrides to the client's form; blanks stay blank
// and are defaulted by the client.
func (e EndpointSettings) APIEndpoints() api.Endpoints {
	return api.Endpoints{
		StartConversational: e.StartConversational,
		ChatConversational:  e.ChatConversational,
		StartFullPrompt:     e.StartFullPrompt,
		ContinueFullPrompt:  e.ContinueFullPrompt,
		ListDirectory:       e.ListDirectory,
		DownloadFile:        e.DownloadFile,
		ValidationReport:    e.ValidationReport,
		RunFiles:            e.RunFiles,
		Health:              e.Health,
	}
}

// ClientOptions returns the api.Options described by these settings.
func (s *Settings) ClientOptions() api.Options {
	return api.Options{
		Timeout:   s.Timeout,
		Endpoints: s.Endpoints.APIEndpoints(),
		Headers:   s.Headers,
	}
}

// LoadAll merges global, project and CLI override settings (in increasing
// priority), applies environment overrides and defaults, then validates.
func LoadAll(projectRoot string, overrides *Settings) (*Settings, error) {
	global, err := loadFile(GlobalConfigFile())
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("loading global config: %w", err)
	}

	project, err := loadFile(ProjectConfigFile(projectRoot))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("loading project config: %w", err)
	}

	merged := merge(global, project)
	applyEnvOverrides(merged)
	merged = merge(merged, overrides)
	ResolveEnvVars(merged)
	applyDefaults(merged)

	if err := merged.Validate(); err != nil {
		return nil, err
	}
	return merged, nil
}

// Validate checks that the settings can drive a client.
func (s *Settings) Validate() error {
	u, err := url.Parse(s.BaseURL)
	if err != nil {
		return fmt.Errorf("invalid base_url %q: %w", s.BaseURL, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("invalid base_url %q: want an absolute http(s) URL", s.BaseURL)
	}
	if s.Timeout < 0 {
		return fmt.Errorf("invalid timeout %s: must not be negative", s.Timeout)
	}
	switch s.MarkdownStyle {
	case "", "auto", "dark", "light", "notty", "ascii":
	default:
		return fmt.Errorf("invalid markdown_style %q", s.MarkdownStyle)
	}
	return nil
}

// loadFile reads Settings from a YAML file. Returns zero Settings if the file
// does not exist.
func loadFile(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return &Settings{}, err
	}
	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &s, nil
}

// merge overlays non-zero fields of top onto base.
func merge(base, top *Settings) *Settings {
	if base == nil {
		base = &Settings{}
	}
	if top == nil {
		return base
	}

	result := *base

	if top.BaseURL != "" {
		result.BaseURL = top.BaseURL
	}
	if top.Timeout != 0 {
		result.Timeout = top.Timeout
	}
	if top.DownloadDir != "" {
		result.DownloadDir = top.DownloadDir
	}
	if top.LogFile != "" {
		result.LogFile = top.LogFile
	}
	if top.MarkdownStyle != "" {
		result.MarkdownStyle = top.MarkdownStyle
	}

	if len(top.Headers) > 0 {
		headers := make(map[string]string, len(base.Headers)+len(top.Headers))
		for k, v := range base.Headers {
			headers[k] = v
		}
		for k, v := range top.Headers {
			headers[k] = v
		}
		result.Headers = headers
	}

	result.Endpoints = mergeEndpoints(base.Endpoints, top.Endpoints)
	return &result
}

func mergeEndpoints(base, top EndpointSettings) EndpointSettings {
	pick := func(b, t string) string {
		if t != "" {
			return t
		}
		return b
	}
	return EndpointSettings{
		StartConversational: pick(base.StartConversational, top.StartConversational),
		ChatConversational:  pick(base.ChatConversational, top.ChatConversational),
		StartFullPrompt:     pick(base.StartFullPrompt, top.StartFullPrompt),
		ContinueFullPrompt:  pick(base.ContinueFullPrompt, top.ContinueFullPrompt),
		ListDirectory:       pick(base.ListDirectory, top.ListDirectory),
		DownloadFile:        pick(base.DownloadFile, top.DownloadFile),
		ValidationReport:    pick(base.ValidationReport, top.ValidationReport),
		RunFiles:            pick(base.RunFiles, top.RunFiles),
		Health:              pick(base.Health, top.Health),
	}
}

// applyDefaults fills the fields that must never be empty.
func applyDefaults(s *Settings) {
	if s.BaseURL == "" {
		s.BaseURL = DefaultBaseURL
	}
	if s.DownloadDir == "" {
		s.DownloadDir = DefaultDownloadDir()
	}
	if s.LogFile == "" {
		s.LogFile = DefaultLogFile()
	}
	if s.MarkdownStyle == "" {
		s.MarkdownStyle = "auto"
	}
	s.DownloadDir = ExpandHome(s.DownloadDir)
	s.LogFile = ExpandHome(s.LogFile)
}
