// ABOUTME: Tests for config loading, merging, defaults and validation
// ABOUTME: Uses temp directories and a fake HOME for isolated file-based tests

package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestMerge(t *testing.T) {
	t.Parallel()

	global := &Settings{BaseURL: "http://global:8000", Timeout: time.Minute}
	project := &Settings{BaseURL: "http://project:8000"}

	result := merge(global, project)

	if result.BaseURL != "http://project:8000" {
		t.Errorf("BaseURL = %q, want project value", result.BaseURL)
	}
	if result.Timeout != time.Minute {
		t.Errorf("Timeout = %v, want 1m from global", result.Timeout)
	}
}

func TestMerge_Nil(t *testing.T) {
	t.Parallel()

	if merge(nil, nil) == nil {
		t.Fatal("merge(nil, nil) should return non-nil")
	}
}

func TestMerge_HeadersAndEndpoints(t *testing.T) {
	t.Parallel()

	global := &Settings{
		Headers:   map[string]string{"A": "1", "B": "2"},
		Endpoints: EndpointSettings{ListDirectory: "/g/list", Health: "/g/health"},
	}
	project := &Settings{
		Headers:   map[string]string{"B": "override"},
		Endpoints: EndpointSettings{Health: "/p/health"},
	}

	result := merge(global, project)

	if result.Headers["A"] != "1" || result.Headers["B"] != "override" {
		t.Errorf("Headers = %v", result.Headers)
	}
	if global.Headers["B"] != "2" {
		t.Error("merge mutated the base header map")
	}
	if result.Endpoints.ListDirectory != "/g/list" || result.Endpoints.Health != "/p/health" {
		t.Errorf("Endpoints = %+v", result.Endpoints)
	}
}

func TestLoadFile_NotExist(t *testing.T) {
	t.Parallel()

	s, err := loadFile("/nonexistent/path/config.yaml")
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("err = %v; want not-exist", err)
	}
	if s == nil {
		t.Error("loadFile should return zero Settings on missing file")
	}
}

func TestLoadFile_YAML(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `base_url: https://agents.example.com
timeout: 90s
download_dir: ~/runs
markdown_style: dark
headers:
  X-Team: data
endpoints:
  list_directory: /api/v2/list
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := loadFile(path)
	if err != nil {
		t.Fatalf("loadFile: %v", err)
	}
	if s.BaseURL != "https://agents.example.com" || s.Timeout != 90*time.Second {
		t.Errorf("settings = %+v", s)
	}
	if s.Headers["X-Team"] != "data" || s.Endpoints.ListDirectory != "/api/v2/list" {
		t.Errorf("settings = %+v", s)
	}
}

func TestLoadFile_Invalid(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("base_url: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := loadFile(path); err == nil || !strings.Contains(err.Error(), "parsing") {
		t.Errorf("err = %v; want parse error", err)
	}
}

func TestLoadAll_Precedence(t *testing.T) {
	home := t.TempDir()
	project := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv(EnvBaseURL, "")
	t.Setenv(EnvTimeout, "")
	t.Setenv(EnvDownloadDir, "")

	writeConfig(t, filepath.Join(home, ".sda", "config.yaml"), "base_url: http://global:1\ntimeout: 5s\n")
	writeConfig(t, filepath.Join(project, ".sda", "config.yaml"), "base_url: http://project:2\n")

	s, err := LoadAll(project, nil)
	if err != nil {
		t.Fatalf("LoadAll: %v", err)
	}
	if s.BaseURL != "http://project:2" || s.Timeout != 5*time.Second {
		t.Errorf("file precedence wrong: %+v", s)
	}

	t.Setenv(EnvBaseURL, "http://env:3")
	s, err = LoadAll(project, nil)
	if err != nil {
		t.Fatalf("LoadAll: %v", err)
	}
	if s.BaseURL != "http://env:3" {
		t.Errorf("env should beat files: %q", s.BaseURL)
	}

	s, err = LoadAll(project, &Settings{BaseURL: "http://cli:4"})
	if err != nil {
		t.Fatalf("LoadAll: %v", err)
	}
	if s.BaseURL != "http://cli:4" {
		t.Errorf("CLI should beat env: %q", s.BaseURL)
	}
}

func TestLoadAll_Defaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv(EnvBaseURL, "")
	t.Setenv(EnvTimeout, "")
	t.Setenv(EnvDownloadDir, "")

	s, err := LoadAll(t.TempDir(), nil)
	if err != nil {
		t.Fatalf("LoadAll: %v", err)
	}
	if s.BaseURL != DefaultBaseURL {
		t.Errorf("BaseURL = %q", s.BaseURL)
	}
	if s.Timeout != 0 {
		t.Errorf("Timeout = %v; want 0 (no timeout)", s.Timeout)
	}
	if s.DownloadDir != filepath.Join(home, "Downloads", "sda") {
		t.Errorf("DownloadDir = %q", s.DownloadDir)
	}
	if s.LogFile != filepath.Join(home, ".sda", "sda.log") {
		t.Errorf("LogFile = %q", s.LogFile)
	}
	if s.MarkdownStyle != "auto" {
		t.Errorf("MarkdownStyle = %q", s.MarkdownStyle)
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		s       Settings
		wantErr bool
	}{
		{"ok", Settings{BaseURL: "http://localhost:8000"}, false},
		{"https", Settings{BaseURL: "https://x.example", MarkdownStyle: "light"}, false},
		{"relative", Settings{BaseURL: "/api"}, true},
		{"ftp", Settings{BaseURL: "ftp://x"}, true},
		{"negative timeout", Settings{BaseURL: "http://x", Timeout: -time.Second}, true},
		{"bad style", Settings{BaseURL: "http://x", MarkdownStyle: "neon"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.s.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() err = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	if got := ExpandHome("~/x/y"); got != filepath.Join(home, "x", "y") {
		t.Errorf("ExpandHome(~/x/y) = %q", got)
	}
	if got := ExpandHome("/abs"); got != "/abs" {
		t.Errorf("ExpandHome(/abs) = %q", got)
	}
	if got := ExpandHome("~user/x"); got != "~user/x" {
		t.Errorf("ExpandHome(~user/x) = %q", got)
	}
}

func TestClientOptions(t *testing.T) {
	t.Parallel()

	s := &Settings{Timeout: 3 * time.Second, Endpoints: EndpointSettings{ChatConversational: "/c"}}
	opts := s.ClientOptions()
	if opts.Timeout != 3*time.Second || opts.Endpoints.ChatConversational != "/c" {
		t.Errorf("opts = %+v", opts)
	}
}

func writeConfig(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}
