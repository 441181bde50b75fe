package config

import "time"

// Storage backends.
const (
	BackendSQLite = "sqlite"
	BackendFile   = "file"
	BackendMemory = "memory"
)

// Config is the root configuration structure.
type Config struct {
	Storage   StorageConfig   `json:"storage"`
	Editor    EditorConfig    `json:"editor"`
	Clipboard ClipboardConfig `json:"clipboard"`
	Keymap    KeymapConfig    `json:"keymap"`
	UI        UIConfig        `json:"ui"`
	Log       LogConfig       `json:"log"`
}

// StorageConfig selects where notes are persisted.
type StorageConfig struct {
	Backend string `json:"backend"` // "sqlite", "file" or "memory"
	Path    string `json:"path"`    // database or JSON file path (supports ~ expansion)
	Driver  string `json:"driver"`  // sqlite driver: "sqlite" (pure Go) or "sqlite3" (cgo)
}

// EditorConfig configures the editor pane.
type EditorConfig struct {
	SyntaxTheme string `json:"syntaxTheme"` // chroma style name
	LineNumbers bool   `json:"lineNumbers"`
	TabWidth    int    `json:"tabWidth"`
}

// ClipboardConfig configures the copy action.
type ClipboardConfig struct {
	AckDuration time.Duration `json:"ackDuration"` // how long the copied mark stays visible
}

// KeymapConfig holds key binding overrides.
type KeymapConfig struct {
	Overrides map[string]string `json:"overrides"`
}

// UIConfig configures UI appearance.
type UIConfig struct {
	ShowFooter   bool `json:"showFooter"`
	SidebarWidth int  `json:"sidebarWidth"` // percent of total width
}

// LogConfig configures the rotating log file.
type LogConfig struct {
	Path       string `json:"path"`
	Level      string `json:"level"`
	MaxSizeMB  int    `json:"maxSizeMB"`
	MaxBackups int    `json:"maxBackups"`
	MaxAgeDays int    `json:"maxAgeDays"`
	Compress   bool   `json:"compress"`
}

const (
	defaultAckDuration  = 2 * time.Second
	defaultSidebarWidth = 22
	minSidebarWidth     = 15
	maxSidebarWidth     = 50
	defaultTabWidth     = 4
	defaultSyntaxTheme  = "dracula"
)

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Storage: StorageConfig{
			Backend: BackendSQLite,
			Path:    "~/.local/share/exnote/notes.db",
			Driver:  "sqlite",
		},
		Editor: EditorConfig{
			SyntaxTheme: defaultSyntaxTheme,
			LineNumbers: true,
			TabWidth:    defaultTabWidth,
		},
		Clipboard: ClipboardConfig{
			AckDuration: defaultAckDuration,
		},
		Keymap: KeymapConfig{
			Overrides: make(map[string]string),
		},
		UI: UIConfig{
			ShowFooter:   true,
			SidebarWidth: defaultSidebarWidth,
		},
		Log: LogConfig{
			Path:       "~/.local/state/exnote/exnote.log",
			Level:      "info",
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 28,
			Compress:   true,
		},
	}
}

// Validate normalizes out-of-range values back to defaults.
func (c *Config) Validate() error {
	switch c.Storage.Backend {
	case BackendSQLite, BackendFile, BackendMemory:
	default:
		c.Storage.Backend = BackendSQLite
	}
	if c.Storage.Driver != "sqlite" && c.Storage.Driver != "sqlite3" {
		c.Storage.Driver = "sqlite"
	}
	if c.Editor.TabWidth <= 0 {
		c.Editor.TabWidth = defaultTabWidth
	}
	if c.Editor.SyntaxTheme == "" {
		c.Editor.SyntaxTheme = defaultSyntaxTheme
	}
	if c.Clipboard.AckDuration <= 0 {
		c.Clipboard.AckDuration = defaultAckDuration
	}
	if c.UI.SidebarWidth < minSidebarWidth || c.UI.SidebarWidth > maxSidebarWidth {
		c.UI.SidebarWidth = defaultSidebarWidth
	}
	if c.Log.MaxSizeMB <= 0 {
		c.Log.MaxSizeMB = 10
	}
	return nil
}
