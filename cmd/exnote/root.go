package main

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/marcus/exnote/internal/app"
	"github.com/marcus/exnote/internal/config"
	"github.com/marcus/exnote/internal/keymap"
	"github.com/marcus/exnote/internal/kv"
	"github.com/marcus/exnote/internal/logging"
	"github.com/marcus/exnote/internal/notes"
)

var (
	configPath  string
	debugFlag   bool
	storageFlag string
	dbFlag      string
)

// rootCmd launches the TUI when called without a subcommand.
var rootCmd = &cobra.Command{
	Use:           "exnote",
	Short:         "A terminal note editor with syntax highlighting",
	Long:          `exnote keeps a list of titled notes, each with a language used to highlight its content.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runTUI,
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&storageFlag, "storage", "", "storage backend: sqlite, file or memory")
	rootCmd.PersistentFlags().StringVar(&dbFlag, "db", "", "path to the notes database or file")
}

// env holds the wiring shared by all commands.
type env struct {
	cfg     *config.Config
	cfgPath string
	logger  *zap.Logger
	backend kv.Store
	store   *notes.Store
}

// setup loads config, opens storage and loads the note store.
func setup() (*env, error) {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if err := applyStorageFlags(cfg, storageFlag, dbFlag); err != nil {
		return nil, err
	}

	logger, err := logging.New(cfg.Log, debugFlag)
	if err != nil {
		return nil, fmt.Errorf("init logging: %w", err)
	}

	backend, err := kv.Open(cfg.Storage, logger)
	if err != nil {
		_ = logger.Sync()
		return nil, fmt.Errorf("open storage: %w", err)
	}
	logger.Debug("storage opened",
		zap.String("backend", cfg.Storage.Backend),
		zap.String("path", cfg.Storage.Path))

	store := notes.NewStore(backend, notes.WithLogger(logger))
	if err := store.Load(); err != nil {
		backend.Close()
		_ = logger.Sync()
		return nil, err
	}

	path := configPath
	if path == "" {
		path = config.ConfigPath()
	}
	return &env{cfg: cfg, cfgPath: path, logger: logger, backend: backend, store: store}, nil
}

func (e *env) close() {
	if err := e.backend.Close(); err != nil {
		e.logger.Warn("close storage", zap.Error(err))
	}
	_ = e.logger.Sync()
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFrom(config.ExpandPath(path))
	}
	return config.Load()
}

// applyStorageFlags overrides the configured backend and path. Unknown
// backend names are rejected rather than normalized.
func applyStorageFlags(cfg *config.Config, backend, path string) error {
	if backend != "" {
		switch backend {
		case config.BackendSQLite, config.BackendFile, config.BackendMemory:
		default:
			return fmt.Errorf("--storage: %w: %q", kv.ErrUnknownBackend, backend)
		}
		cfg.Storage.Backend = backend
		if backend == config.BackendFile && path == "" {
			cfg.Storage.Path = strings.TrimSuffix(cfg.Storage.Path, ".db") + ".json"
		}
	}
	if path != "" {
		cfg.Storage.Path = config.ExpandPath(path)
	}
	return cfg.Validate()
}

func runTUI(cmd *cobra.Command, args []string) error {
	e, err := setup()
	if err != nil {
		return err
	}
	defer e.close()

	km := keymap.NewRegistry()
	keymap.RegisterDefaults(km)
	for key, cmdID := range e.cfg.Keymap.Overrides {
		km.SetUserOverride(key, cmdID)
	}

	model := app.New(e.store, km, e.cfg,
		app.WithLogger(e.logger),
		app.WithConfigPath(e.cfgPath))
	p := tea.NewProgram(model, tea.WithAltScreen())

	e.logger.Info("starting", zap.String("version", effectiveVersion(Version)), zap.Int("notes", e.store.Len()))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run application: %w", err)
	}
	return nil
}
