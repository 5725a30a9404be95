// Package cli provides the command-line interface for the realty client.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/FenadoAI/fv2-realty-chat-3swcmc/internal/api"
	"github.com/FenadoAI/fv2-realty-chat-3swcmc/internal/config"
)

var (
	// Version is set at build time.
	Version = "0.1.0"

	// Global flags
	flagFormat string
	flagAPIURL string

	// Global config, client and logger
	cfg       config.Config
	apiClient *api.Client
	logger    *slog.Logger
	logClose  func() error
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "realty",
	Short: "Browse and manage Sunset Realty listings",
	Long: `Realty is the terminal client for the Sunset Realty marketing site.

Open the public landing page with the chat widget ("realty browse"), manage
listings in the admin panel ("realty admin"), or drive every API operation
headlessly for scripting (list, add, update, delete, chat, seed, health).`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}

		cfg = config.Load()
		if flagAPIURL != "" {
			cfg.APIBaseURL = flagAPIURL
		}

		// Interactive commands own the terminal, so their logs go to
		// the file only; everything else gets the dual fanout.
		if cmd.Name() == "browse" || cmd.Name() == "admin" {
			logger, logClose = config.SetupFileLogger(cfg.LogFile, cfg.LogLevel)
		} else {
			logger, logClose = config.SetupLogger(cfg.LogFile, cfg.LogLevel)
		}

		apiClient = api.New(cfg.APIBaseURL)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logClose != nil {
			if err := logClose(); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: failed to close log file: %v\n", err)
			}
		}
	},
}

// Execute adds all child commands to the root command and runs it.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&flagFormat, "format", "text", "output format (text|json)")
	rootCmd.PersistentFlags().StringVar(&flagAPIURL, "api-url", "", "backend API base URL (overrides config and env)")

	// Add subcommands
	rootCmd.AddCommand(browseCmd)
	rootCmd.AddCommand(adminCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(chatCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(configCmd)
}

// isJSON returns true if the --format flag is set to json.
func isJSON() bool {
	return flagFormat == "json"
}
