package config

import (
	"os"
	"path/filepath"
)

const (
	// EnvConfigPath names an explicit config file
	EnvConfigPath = "NOTESGRAPH_CONFIG"
	// ConfigFileName is looked for in the working directory
	ConfigFileName = "notesgraph.yaml"
	// ConfigDirName is the directory under the user config dir
	ConfigDirName = "notesgraph"
)

// FindConfigPath returns the first existing config file, or "" when there
// is none. The environment variable wins; then the working directory; then
// the user config dir. YAML is preferred over TOML in each location.
func FindConfigPath() string {
	if path := os.Getenv(EnvConfigPath); path != "" && fileExists(path) {
		return path
	}
	for _, path := range candidates() {
		if !fileExists(path) {
			continue
		}
		if abs, err := filepath.Abs(path); err == nil {
			return abs
		}
		return path
	}
	return ""
}

func candidates() []string {
	paths := []string{ConfigFileName, "notesgraph.toml"}
	if dir := userConfigDir(); dir != "" {
		paths = append(paths,
			filepath.Join(dir, "config.yaml"),
			filepath.Join(dir, "config.toml"),
		)
	}
	return paths
}

// userConfigDir honours XDG_CONFIG_HOME and falls back to ~/.config
func userConfigDir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(base, ConfigDirName)
}

// DefaultConfigPath is where `config init` writes when given no path
func DefaultConfigPath() string {
	if dir := userConfigDir(); dir != "" {
		return filepath.Join(dir, "config.yaml")
	}
	return ConfigFileName
}

// EnsureConfigDir creates the directory holding configPath
func EnsureConfigDir(configPath string) error {
	return os.MkdirAll(filepath.Dir(configPath), 0o755)
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
