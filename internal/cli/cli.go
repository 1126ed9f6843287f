// Package cli implements the sales-metrics command line.
package cli

import (
	"context"
	"fmt"
	"runtime"

	"sales-metrics-service/internal/config"
	"sales-metrics-service/internal/logging"

	"github.com/spf13/cobra"
)

// Build information set at compile time via ldflags.
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

var (
	cfgFile  string
	logLevel string

	cfg *config.Config

	rootCmd = &cobra.Command{
		Use:   "sales-metrics",
		Short: "Sales dashboard aggregation service",
		Long: `sales-metrics serves revenue time series, rankings, temporal patterns,
product trends, churn, conversion, ticket and delivery views computed
from the sales database, plus an endpoint that analyzes a posted batch.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

// Execute runs the root command.
func Execute() error {
	return rootCmd.ExecuteContext(context.Background())
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default: ./sales-metrics.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "",
		"log level (debug, info, warn, error)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(serveCmd)
}

func initConfig() error {
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return err
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}

	logging.Init(logging.Config{
		Level:  cfg.Log.Level,
		Pretty: cfg.Log.Pretty,
	})
	return nil
}

func versionInfo() string {
	return fmt.Sprintf("sales-metrics %s (commit: %s, built: %s, go: %s)",
		Version, Commit, BuildDate, runtime.Version())
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Println(versionInfo())
	},
}
