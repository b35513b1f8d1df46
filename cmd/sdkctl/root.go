package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"oracle-sdk/internal/config"
	"oracle-sdk/internal/logger"
)

type globalFlags struct {
	ConfigDir string
	RPCURL    string
	APIURL    string
}

var (
	flags     globalFlags
	cfg       *config.Config
	appLogger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:           "sdkctl",
	Short:         "Inspect oracle contracts and backend metadata",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(flags.ConfigDir)
		if err != nil {
			return err
		}
		if flags.RPCURL != "" {
			cfg.RPC.URL = flags.RPCURL
		}
		if flags.APIURL != "" {
			cfg.API.BaseURL = flags.APIURL
		}
		appLogger, err = logger.NewLoggerTo(cfg.Logger, os.Stderr)
		if err != nil {
			return fmt.Errorf("failed to setup logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if appLogger != nil {
			_ = appLogger.Sync()
		}
	},
}

// Execute runs the root command.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flags.ConfigDir, "config-dir", "configs", "directory holding config.yaml and .env")
	rootCmd.PersistentFlags().StringVar(&flags.RPCURL, "rpc-url", "", "JSON-RPC endpoint (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flags.APIURL, "api-url", "", "backend API base URL (overrides config)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(proxyCmd)
	rootCmd.AddCommand(modulesCmd)
	rootCmd.AddCommand(disputesCmd)
	rootCmd.AddCommand(contractsCmd)
	rootCmd.AddCommand(oracleCmd)
	rootCmd.AddCommand(tokenCmd)
}

func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
