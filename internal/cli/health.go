package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/FenadoAI/fv2-realty-chat-3swcmc/internal/api"
)

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check that the backend API is reachable",
	Args:  cobra.NoArgs,
	RunE:  runHealth,
}

func runHealth(cmd *cobra.Command, args []string) error {
	resp, err := apiClient.Health(context.Background())
	if err != nil {
		if api.IsNetworkError(err) {
			return fmt.Errorf("backend unreachable at %s: %w", cfg.APIBaseURL, err)
		}
		return fmt.Errorf("health check: %w", err)
	}

	if isJSON() {
		return printJSON(resp)
	}
	fmt.Printf("OK: %s\n", resp.Message)
	return nil
}
