package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/joseph-ayodele/resume-site/internal/common"
	"github.com/joseph-ayodele/resume-site/internal/logging"
)

// Version is set at build time via -ldflags "-X main.Version=X.Y.Z"
var Version = "0.0.0-dev"

var configPath string

var rootCmd = &cobra.Command{
	Use:   "resumesite",
	Short: "Turn an uploaded resume PDF into a personal website",
	Long: `resumesite extracts text from a resume PDF, normalizes it into a fixed
record shape with a generative model, stores it and serves it as a site.

Commands:
  serve              Run the HTTP server
  extract <pdf>      Print the text extracted from a PDF
  normalize <pdf>    Print the record the model produces for a PDF
  dbhealth           Ping the configured store (--migrate creates the table)

Configuration comes from .env, an optional YAML file (--config) and the
environment, in that order.`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to a YAML config file")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(extractCmd)
	rootCmd.AddCommand(normalizeCmd)
	rootCmd.AddCommand(dbhealthCmd)
}

// loadConfig reads configuration and installs the global logger.
func loadConfig() (*common.Config, *slog.Logger, error) {
	cfg, err := common.LoadConfig(configPath)
	if err != nil {
		return nil, nil, err
	}
	return cfg, logging.Init(cfg.Logging), nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
