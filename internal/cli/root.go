package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"FinScreen/internal/di"
	"FinScreen/pkg/config"
	"FinScreen/pkg/logger"
)

var (
	cfgFile  string
	logLevel string
	state    *di.AppState
	cleanup  func()
)

var rootCmd = &cobra.Command{
	Use:           "finscreen",
	Short:         "Cache financial statements and screen stocks",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if state != nil {
			return nil
		}

		cfg, err := config.LoadWithEnv(cfgFile)
		if err != nil {
			return err
		}
		if logLevel != "" {
			cfg.Log.Level = logLevel
		}

		s, done, err := di.InitializeAppState(cfg)
		if err != nil {
			return fmt.Errorf("initialize: %w", err)
		}
		state, cleanup = s, done
		return nil
	},
}

// Execute runs the root command and releases external clients on exit.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if cleanup != nil {
		cleanup()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config/config.yaml", "Path to configuration file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Override log level defined in config")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(screenCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(prefetchCmd)
}

func getState() *di.AppState {
	if state == nil {
		panic("application not initialized; PersistentPreRunE not executed")
	}
	return state
}

// persist snapshots the cache after a batch command. A failed save is
// logged and never replaces the command's own result.
func persist(s *di.AppState, runErr error) error {
	s.LogFetchStats()
	if err := s.SaveCache(); err != nil {
		s.Logger.Warn("cache not persisted after command", logger.Error(err))
	}
	return runErr
}
