// Package cli implements the keypad command line.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/padchain/history"
	"github.com/katalvlaran/padchain/internal/config"
)

// app carries state shared by every subcommand of one invocation.
type app struct {
	configPath string
	dbPath     string
	verbose    bool

	cfg    *config.Config
	logger *zap.Logger
}

// NewRootCmd builds the command tree. A non-nil logger is used as is;
// otherwise one is built from the configured level.
func NewRootCmd(logger *zap.Logger) *cobra.Command {
	a := &app{logger: logger}
	ownLogger := logger == nil

	root := &cobra.Command{
		Use:           "keypad",
		Short:         "Price door codes typed through chains of keypad controllers",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.configPath)
			if err != nil {
				return err
			}
			if a.dbPath != "" {
				cfg.History.Path = a.dbPath
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			a.cfg = cfg
			if ownLogger {
				a.logger, err = newLogger(cfg.Logging.Level, a.verbose)
				if err != nil {
					return fmt.Errorf("failed to initialize logger: %w", err)
				}
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if ownLogger && a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}
	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", config.DefaultPath(), "Config file")
	root.PersistentFlags().StringVarP(&a.dbPath, "db", "d", "", "History database (default: $"+config.EnvHistoryDB+" or ~/.keypad/history.db)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Debug logging")

	root.AddCommand(a.solveCmd(), a.pathsCmd(), a.historyCmd())
	return root
}

func newLogger(level string, verbose bool) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	if verbose {
		lvl = zapcore.DebugLevel
	}
	zc.Level = zap.NewAtomicLevelAt(lvl)
	return zc.Build()
}

func (a *app) openHistory() (*history.Store, error) {
	return history.Open(a.cfg.History.Path)
}
