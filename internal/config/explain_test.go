// ABOUTME: Tests for human-readable config explanation rendering
// ABOUTME: Covers empty, full, and partial settings scenarios

package config

import (
	"strings"
	"testing"
	"time"
)

func TestExplain_EmptySettings(t *testing.T) {
	t.Parallel()

	result := Explain(nil)
	for _, section := range []string{"Backend", "Endpoints", "Local"} {
		if !strings.Contains(result, "=== "+section+" ===") {
			t.Errorf("missing %s section:\n%s", section, result)
		}
	}
	if !strings.Contains(result, "Timeout: none") {
		t.Error("zero timeout should read as none")
	}
}

func TestExplain_FullSettings(t *testing.T) {
	t.Parallel()

	s := &Settings{
		BaseURL:       "https://agents.example.com",
		Timeout:       90 * time.Second,
		DownloadDir:   "/tmp/dl",
		LogFile:       "/tmp/sda.log",
		MarkdownStyle: "dark",
		Headers:       map[string]string{"X-Team": "data", "Authorization": "Bearer secret"},
		Endpoints:     EndpointSettings{ListDirectory: "/v2/list"},
	}
	result := Explain(s)

	for _, want := range []string{
		"BaseURL: https://agents.example.com",
		"Timeout: 1m30s",
		"Headers: Authorization, X-Team",
		"list_directory:" + strings.Repeat(" ", 7) + "/v2/list",
		"DownloadDir:   /tmp/dl",
		"MarkdownStyle: dark",
	} {
		if !strings.Contains(result, want) {
			t.Errorf("missing %q in:\n%s", want, result)
		}
	}
	if strings.Contains(result, "secret") {
		t.Error("header values must not be printed")
	}
	if strings.Contains(result, "start_full_prompt") {
		t.Error("unset endpoints should be omitted")
	}
}
