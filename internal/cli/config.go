package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/FenadoAI/fv2-realty-chat-3swcmc/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or change persisted settings",
	Long: `Show the resolved configuration or persist an override to
~/.config/realty/config.yaml.

Keys: api-url, log-file, log-level.

Examples:
  realty config show
  realty config set api-url http://localhost:8000`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the resolved configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Printf("api-url:   %s\n", cfg.APIBaseURL)
		fmt.Printf("log-file:  %s\n", cfg.LogFile)
		fmt.Printf("log-level: %s\n", cfg.LogLevel)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Persist one setting to the config file",
	Args:  cobra.ExactArgs(2),
	RunE:  runConfigSet,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	fc, err := config.ReadFileConfig()
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	if err := applyConfigKey(&fc, args[0], args[1]); err != nil {
		return err
	}

	if err := config.SaveFileConfig(fc); err != nil {
		return fmt.Errorf("save config file: %w", err)
	}

	fmt.Printf("Set %s = %s\n", args[0], args[1])
	return nil
}

// applyConfigKey merges one key/value pair into the file overrides.
func applyConfigKey(fc *config.FileConfig, key, value string) error {
	switch key {
	case "api-url":
		fc.APIBaseURL = value
	case "log-file":
		fc.LogFile = value
	case "log-level":
		fc.LogLevel = value
	default:
		return fmt.Errorf("unknown config key %q (expected api-url, log-file or log-level)", key)
	}
	return nil
}
