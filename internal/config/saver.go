package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// saveConfig is the JSON-marshaling intermediary that uses string durations.
type saveConfig struct {
	Storage   StorageConfig       `json:"storage"`
	Editor    EditorConfig        `json:"editor"`
	Clipboard saveClipboardConfig `json:"clipboard"`
	Keymap    KeymapConfig        `json:"keymap"`
	UI        UIConfig            `json:"ui"`
	Log       LogConfig           `json:"log"`
}

type saveClipboardConfig struct {
	AckDuration string `json:"ackDuration,omitempty"`
}

// toSaveConfig converts Config to the JSON-serializable format.
func toSaveConfig(cfg *Config) saveConfig {
	return saveConfig{
		Storage: cfg.Storage,
		Editor:  cfg.Editor,
		Clipboard: saveClipboardConfig{
			AckDuration: cfg.Clipboard.AckDuration.String(),
		},
		Keymap: cfg.Keymap,
		UI:     cfg.UI,
		Log:    cfg.Log,
	}
}

// Save writes the config to ~/.config/exnote/config.json
func Save(cfg *Config) error {
	return SaveTo(ConfigPath(), cfg)
}

// SaveTo writes the config to path, creating the directory if needed.
// Top-level keys in an existing file that Config does not manage are kept.
func SaveTo(path string, cfg *Config) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	merged := make(map[string]json.RawMessage)
	if existing, err := os.ReadFile(path); err == nil {
		// Unparseable files are overwritten.
		_ = json.Unmarshal(existing, &merged)
	}

	managed, err := json.Marshal(toSaveConfig(cfg))
	if err != nil {
		return err
	}
	var managedKeys map[string]json.RawMessage
	if err := json.Unmarshal(managed, &managedKeys); err != nil {
		return err
	}
	for k, v := range managedKeys {
		merged[k] = v
	}

	data, err := json.MarshalIndent(merged, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// SaveSyntaxTheme updates only the editor syntax theme in the config at path.
func SaveSyntaxTheme(path, theme string) error {
	cfg, err := LoadFrom(path)
	if err != nil {
		return err
	}
	cfg.Editor.SyntaxTheme = theme
	return SaveTo(path, cfg)
}
