package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"oracle-sdk/internal/adapter/storage/abifile"
	"oracle-sdk/internal/adapter/storage/artifact"
	"oracle-sdk/internal/adapter/storage/manifest"
	"oracle-sdk/internal/application"
	"oracle-sdk/internal/application/port"
	"oracle-sdk/internal/config"
	"oracle-sdk/internal/logger"
)

type globalFlags struct {
	ConfigDir string
	Manifest  string
	Runtime   string
	Workers   int
}

var (
	flags     globalFlags
	cfg       *config.Config
	appLogger *zap.Logger
	rootCmd   = &cobra.Command{
		Use:           "sdkgen",
		Short:         "Generate typed contract clients from ABI files",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.Load(flags.ConfigDir)
			if err != nil {
				return err
			}
			appLogger, err = logger.NewLoggerTo(cfg.Logger, os.Stderr)
			if err != nil {
				return fmt.Errorf("failed to setup logger: %w", err)
			}
			if flags.Manifest == "" {
				flags.Manifest = cfg.Generator.Manifest
			}
			if flags.Workers > 0 {
				cfg.Generator.MaxWorkers = flags.Workers
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if appLogger != nil {
				_ = appLogger.Sync()
			}
		},
	}
)

var clientsCmd = &cobra.Command{
	Use:   "clients",
	Short: "Generate contract clients",
	RunE: func(cmd *cobra.Command, args []string) error {
		return generate(cmd, port.GenerateOptions{Clients: true})
	},
}

var resourcesCmd = &cobra.Command{
	Use:   "resources",
	Short: "Generate the ABI resources file",
	RunE: func(cmd *cobra.Command, args []string) error {
		return generate(cmd, port.GenerateOptions{Resources: true})
	},
}

var allCmd = &cobra.Command{
	Use:   "all",
	Short: "Generate contract clients and the ABI resources file",
	RunE: func(cmd *cobra.Command, args []string) error {
		return generate(cmd, port.GenerateOptions{Clients: true, Resources: true})
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
	rootCmd.PersistentFlags().StringVarP(&flags.Manifest, "manifest", "m", "", "generator manifest (default from config)")
	rootCmd.PersistentFlags().StringVar(&flags.Runtime, "runtime", "", "import path prefix of the runtime packages (overrides the manifest)")
	rootCmd.PersistentFlags().IntVar(&flags.Workers, "workers", 0, "contracts rendered concurrently (default from config)")

	rootCmd.AddCommand(clientsCmd)
	rootCmd.AddCommand(resourcesCmd)
	rootCmd.AddCommand(allCmd)
}

func generate(cmd *cobra.Command, opts port.GenerateOptions) error {
	opts.ManifestPath = flags.Manifest
	opts.Runtime = flags.Runtime

	svc := application.NewGenerationService(
		manifest.NewRepository(appLogger),
		abifile.NewRepository(appLogger),
		artifact.NewWriter(appLogger),
		appLogger,
		cfg.Generator,
	)

	files, err := svc.Generate(cmd.Context(), opts)
	for _, f := range files {
		fmt.Fprintf(cmd.OutOrStdout(), "%-9s %s (%d bytes)\n", f.Kind, f.Path, f.Size)
	}
	return err
}
