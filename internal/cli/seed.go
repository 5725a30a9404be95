package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load the backend's sample listings",
	Long: `Ask the backend to load its sample listings.

The server skips seeding when properties already exist.`,
	Args: cobra.NoArgs,
	RunE: runSeed,
}

func runSeed(cmd *cobra.Command, args []string) error {
	resp, err := apiClient.SeedProperties(context.Background())
	if err != nil {
		return fmt.Errorf("seed properties: %w", err)
	}

	if isJSON() {
		return printJSON(resp)
	}
	fmt.Println(resp.Message)
	return nil
}
