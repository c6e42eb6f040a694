package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/example/navcsv/internal/config"
	"github.com/example/navcsv/internal/wire"
)

var (
	configDir string
	verbose   bool
	logger    = zap.NewNop()
)

// AddPersistentFlags registers the flags shared by every subcommand.
func AddPersistentFlags(root *cobra.Command) {
	root.PersistentFlags().StringVar(&configDir, "config-dir", ".", "Directory containing .navcsv/config.yaml")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

// Setup loads configuration, builds the logger and hands both to wire.
// Used as the root command's PersistentPreRunE. Argument validation has
// already passed by now, so later failures suppress the usage text.
func Setup(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	cfg, err := config.LoadConfig(configDir)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config %s: %w", config.Path(configDir), err)
	}

	l, err := buildLogger(cfg, verbose)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	logger = l

	logger.Debug("configuration loaded",
		zap.String("config", config.Path(configDir)),
		zap.String("store", cfg.Catalog.Store))

	wire.Init(cfg, logger)
	return nil
}

// Teardown releases wired resources and flushes the logger.
// Used as the root command's PersistentPostRun.
func Teardown(cmd *cobra.Command, args []string) {
	if err := wire.Close(); err != nil {
		logger.Warn("failed to close resources", zap.Error(err))
	}
	_ = logger.Sync()
}

func buildLogger(cfg *config.Config, debug bool) (*zap.Logger, error) {
	level, err := cfg.LogLevel()
	if err != nil {
		return nil, err
	}
	if debug {
		level = zapcore.DebugLevel
	}

	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(level)
	return zcfg.Build()
}
