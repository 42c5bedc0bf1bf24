package config

import (
	"os"
	"path/filepath"
)

const (
	// EnvConfigPath names an explicit config file
	EnvConfigPath = "GEDSTORE_CONFIG"
	// EnvDocumentPath overrides document.path
	EnvDocumentPath = "GEDSTORE_DOCUMENT"
	// ConfigFileName is looked up in the working directory
	ConfigFileName = "gedstore.yaml"
	// ConfigDirName is the per-user and system directory
	ConfigDirName = "gedstore"

	dirConfigFile = "config.yaml"
)

// searchPaths lists config candidates, highest priority first. Unset
// variables contribute nothing.
func searchPaths() []string {
	var paths []string
	if explicit := os.Getenv(EnvConfigPath); explicit != "" {
		paths = append(paths, explicit)
	}

	local := ConfigFileName
	if abs, err := filepath.Abs(local); err == nil {
		local = abs
	}
	paths = append(paths, local)

	if dir := userConfigDir(); dir != "" {
		paths = append(paths, filepath.Join(dir, ConfigDirName, dirConfigFile))
	}
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		// ~/.config is still read when XDG_CONFIG_HOME points elsewhere
		if home := os.Getenv("HOME"); home != "" {
			fallback := filepath.Join(home, ".config", ConfigDirName, dirConfigFile)
			if fallback != paths[len(paths)-1] {
				paths = append(paths, fallback)
			}
		}
	}
	return append(paths, filepath.Join("/etc", ConfigDirName, dirConfigFile))
}

// userConfigDir is $XDG_CONFIG_HOME, else ~/.config
func userConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return xdg
	}
	if home := os.Getenv("HOME"); home != "" {
		return filepath.Join(home, ".config")
	}
	return ""
}

// FindConfigPath returns the first existing entry of searchPaths, or ""
func FindConfigPath() string {
	for _, path := range searchPaths() {
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
	}
	return ""
}

// DefaultConfigPath is where `gedstore config init` writes
func DefaultConfigPath() string {
	if dir := userConfigDir(); dir != "" {
		return filepath.Join(dir, ConfigDirName, dirConfigFile)
	}
	return ConfigFileName
}

// EnsureConfigDir creates the parent directory of configPath
func EnsureConfigDir(configPath string) error {
	return os.MkdirAll(filepath.Dir(configPath), 0o755)
}
