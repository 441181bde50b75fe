package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const (
	configDir  = ".config/exnote"
	configFile = "config.json"
)

// rawConfig is the JSON-unmarshaling intermediary.
type rawConfig struct {
	Storage   StorageConfig      `json:"storage"`
	Editor    rawEditorConfig    `json:"editor"`
	Clipboard rawClipboardConfig `json:"clipboard"`
	Keymap    KeymapConfig       `json:"keymap"`
	UI        rawUIConfig        `json:"ui"`
	Log       rawLogConfig       `json:"log"`
}

type rawEditorConfig struct {
	SyntaxTheme string `json:"syntaxTheme"`
	LineNumbers *bool  `json:"lineNumbers"`
	TabWidth    *int   `json:"tabWidth"`
}

type rawClipboardConfig struct {
	AckDuration string `json:"ackDuration"`
}

type rawUIConfig struct {
	ShowFooter   *bool `json:"showFooter"`
	SidebarWidth *int  `json:"sidebarWidth"`
}

type rawLogConfig struct {
	Path       string `json:"path"`
	Level      string `json:"level"`
	MaxSizeMB  *int   `json:"maxSizeMB"`
	MaxBackups *int   `json:"maxBackups"`
	MaxAgeDays *int   `json:"maxAgeDays"`
	Compress   *bool  `json:"compress"`
}

// Load loads configuration from the default location.
func Load() (*Config, error) {
	return LoadFrom("")
}

// LoadFrom loads configuration from a specific path.
// If path is empty, uses ~/.config/exnote/config.json
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			expandPaths(cfg)
			return cfg, nil // Return defaults on error
		}
		path = filepath.Join(home, configDir, configFile)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			expandPaths(cfg)
			return cfg, nil // Return defaults if no config file
		}
		return nil, err
	}

	var raw rawConfig
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	mergeConfig(cfg, &raw)
	expandPaths(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// mergeConfig merges raw config values into the config.
func mergeConfig(cfg *Config, raw *rawConfig) {
	// Storage
	if raw.Storage.Backend != "" {
		cfg.Storage.Backend = raw.Storage.Backend
		// A file backend without an explicit path gets a JSON file next to the default db.
		if raw.Storage.Backend == BackendFile && raw.Storage.Path == "" {
			cfg.Storage.Path = strings.TrimSuffix(cfg.Storage.Path, ".db") + ".json"
		}
	}
	if raw.Storage.Path != "" {
		cfg.Storage.Path = raw.Storage.Path
	}
	if raw.Storage.Driver != "" {
		cfg.Storage.Driver = raw.Storage.Driver
	}

	// Editor
	if raw.Editor.SyntaxTheme != "" {
		cfg.Editor.SyntaxTheme = raw.Editor.SyntaxTheme
	}
	if raw.Editor.LineNumbers != nil {
		cfg.Editor.LineNumbers = *raw.Editor.LineNumbers
	}
	if raw.Editor.TabWidth != nil {
		cfg.Editor.TabWidth = *raw.Editor.TabWidth
	}

	// Clipboard
	if raw.Clipboard.AckDuration != "" {
		if d, err := time.ParseDuration(raw.Clipboard.AckDuration); err == nil {
			cfg.Clipboard.AckDuration = d
		}
	}

	// Keymap
	if raw.Keymap.Overrides != nil {
		for k, v := range raw.Keymap.Overrides {
			cfg.Keymap.Overrides[k] = v
		}
	}

	// UI
	if raw.UI.ShowFooter != nil {
		cfg.UI.ShowFooter = *raw.UI.ShowFooter
	}
	if raw.UI.SidebarWidth != nil {
		cfg.UI.SidebarWidth = *raw.UI.SidebarWidth
	}

	// Log
	if raw.Log.Path != "" {
		cfg.Log.Path = raw.Log.Path
	}
	if raw.Log.Level != "" {
		cfg.Log.Level = raw.Log.Level
	}
	if raw.Log.MaxSizeMB != nil {
		cfg.Log.MaxSizeMB = *raw.Log.MaxSizeMB
	}
	if raw.Log.MaxBackups != nil {
		cfg.Log.MaxBackups = *raw.Log.MaxBackups
	}
	if raw.Log.MaxAgeDays != nil {
		cfg.Log.MaxAgeDays = *raw.Log.MaxAgeDays
	}
	if raw.Log.Compress != nil {
		cfg.Log.Compress = *raw.Log.Compress
	}
}

func expandPaths(cfg *Config) {
	cfg.Storage.Path = ExpandPath(cfg.Storage.Path)
	cfg.Log.Path = ExpandPath(cfg.Log.Path)
}

// ExpandPath expands ~ to home directory.
func ExpandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// ConfigPath returns the path to the config file.
func ConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, configDir, configFile)
}
