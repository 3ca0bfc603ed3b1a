// ABOUTME: Environment handling for settings: SDA_* overrides and ${VAR} expansion
// ABOUTME: Unset vars expand to empty; overrides beat config files but not CLI flags

package config

import (
	"os"
	"regexp"
	"time"

	"github.com/mauromedda/sda-go/internal/log"
)

// Environment variables that override config files.
const (
	EnvBaseURL     = "SDA_BASE_URL"
	EnvTimeout     = "SDA_TIMEOUT"
	EnvDownloadDir = "SDA_DOWNLOAD_DIR"
)

var envVarPattern = regexp.MustCompile(`\$\{(\w+)\}`)

// applyEnvOverrides applies SDA_* variables on top of the file settings.
func applyEnvOverrides(s *Settings) {
	if v := os.Getenv(EnvBaseURL); v != "" {
		s.BaseURL = v
	}
	if v := os.Getenv(EnvDownloadDir); v != "" {
		s.DownloadDir = v
	}
	if v := os.Getenv(EnvTimeout); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			log.Warn("config: ignoring %s=%q: %v", EnvTimeout, v, err)
			return
		}
		s.Timeout = d
	}
}

// ResolveEnvVars expands ${VAR} patterns in string fields of Settings.
func ResolveEnvVars(s *Settings) {
	s.BaseURL = expandEnv(s.BaseURL)
	s.DownloadDir = expandEnv(s.DownloadDir)
	s.LogFile = expandEnv(s.LogFile)

	for k, v := range s.Headers {
		s.Headers[k] = expandEnv(v)
	}
}

// expandEnv replaces ${VAR} with os.Getenv(VAR). Unset vars become "".
func expandEnv(s string) string {
	if s == "" {
		return s
	}
	return envVarPattern.ReplaceAllStringFunc(s, func(match string) string {
		varName := envVarPattern.FindStringSubmatch(match)[1]
		return os.Getenv(varName)
	})
}
