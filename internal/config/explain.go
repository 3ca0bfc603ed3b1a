// ABOUTME: Human-readable rendering of effective configuration
// ABOUTME: Used by the "sda config" subcommand to show merged settings

package config

import (
	"fmt"
	"sort"
	"strings"
)

// Explain renders a human-readable summary of the effective settings.
// Shows non-zero values grouped by section.
func Explain(s *Settings) string {
	if s == nil {
		s = &Settings{}
	}

	var b strings.Builder

	b.WriteString("=== Backend ===\n")
	if s.BaseURL != "" {
		fmt.Fprintf(&b, "  BaseURL: %s\n", s.BaseURL)
	}
	if s.Timeout != 0 {
		fmt.Fprintf(&b, "  Timeout: %s\n", s.Timeout)
	} else {
		b.WriteString("  Timeout: none\n")
	}
	if len(s.Headers) > 0 {
		keys := make([]string, 0, len(s.Headers))
		for k := range s.Headers {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		// Values may carry credentials.
		fmt.Fprintf(&b, "  Headers: %s\n", strings.Join(keys, ", "))
	}
	b.WriteString("\n")

	b.WriteString("=== Endpoints ===\n")
	e := s.Endpoints
	for _, row := range [][2]string{
		{"start_conversational", e.StartConversational},
		{"chat_conversational", e.ChatConversational},
		{"start_full_prompt", e.StartFullPrompt},
		{"continue_full_prompt", e.ContinueFullPrompt},
		{"list_directory", e.ListDirectory},
		{"download_file", e.DownloadFile},
		{"validation_report", e.ValidationReport},
		{"run_files", e.RunFiles},
		{"health", e.Health},
	} {
		if row[1] != "" {
			fmt.Fprintf(&b, "  %-21s %s\n", row[0]+":", row[1])
		}
	}
	b.WriteString("\n")

	b.WriteString("=== Local ===\n")
	if s.DownloadDir != "" {
		fmt.Fprintf(&b, "  DownloadDir:   %s\n", s.DownloadDir)
	}
	if s.LogFile != "" {
		fmt.Fprintf(&b, "  LogFile:       %s\n", s.LogFile)
	}
	if s.MarkdownStyle != "" {
		fmt.Fprintf(&b, "  MarkdownStyle: %s\n", s.MarkdownStyle)
	}
	b.WriteString("\n")

	return b.String()
}
