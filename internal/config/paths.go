// ABOUTME: Standard filesystem paths for sda configuration, logs and downloads
// ABOUTME: Resolves ~/.sda/ for global and .sda/ for project-local paths

package config

import (
	"os"
	"path/filepath"
	"strings"
)

const (
	globalDirName  = ".sda"
	projectDirName = ".sda"
	configFileName = "config.yaml"
)

// GlobalDir returns the user-global config directory (~/.sda/).
func GlobalDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", globalDirName)
	}
	return filepath.Join(home, globalDirName)
}

// ProjectDir returns the project-local config directory (.sda/ in cwd).
func ProjectDir(projectRoot string) string {
	return filepath.Join(projectRoot, projectDirName)
}

// GlobalConfigFile returns the path to the global config file.
func GlobalConfigFile() string {
	return filepath.Join(GlobalDir(), configFileName)
}

// ProjectConfigFile returns the path to the project-local config file.
func ProjectConfigFile(projectRoot string) string {
	return filepath.Join(ProjectDir(projectRoot), configFileName)
}

// DefaultLogFile is where interactive mode writes its log.
func DefaultLogFile() string {
	return filepath.Join(GlobalDir(), "sda.log")
}

// DefaultDownloadDir is where downloaded run files land.
func DefaultDownloadDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", "sda-downloads")
	}
	return filepath.Join(home, "Downloads", "sda")
}

// ExpandHome expands a leading "~" to the user home directory.
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
