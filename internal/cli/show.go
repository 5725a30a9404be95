package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a single property",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func runShow(cmd *cobra.Command, args []string) error {
	p, err := apiClient.GetProperty(context.Background(), args[0])
	if err != nil {
		return fmt.Errorf("get property: %w", err)
	}

	if isJSON() {
		return printJSON(p)
	}
	printPropertyDetails(p)
	return nil
}
