package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/FenadoAI/fv2-realty-chat-3swcmc/internal/models"
)

var updateFlags draftFlags

var updateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a property listing",
	Long: `Update a property listing. Unset flags keep their current value:
the existing record is loaded into a draft first and only the flags you
pass are merged in.

Examples:
  realty update 3f1c9a22 --price 899000
  realty update 3f1c9a22 --amenities "Pool, Spa, Gym"`,
	Args: cobra.ExactArgs(1),
	RunE: runUpdate,
}

func init() {
	updateFlags.register(updateCmd)
}

func runUpdate(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	existing, err := apiClient.GetProperty(ctx, args[0])
	if err != nil {
		return fmt.Errorf("get property: %w", err)
	}

	var draft models.Draft
	draft.LoadFromProperty(*existing)
	updateFlags.apply(cmd, &draft)

	p, err := apiClient.UpdateProperty(ctx, existing.ID, draft.ToPayload())
	if err != nil {
		return fmt.Errorf("update property: %w", err)
	}

	if isJSON() {
		return printJSON(p)
	}
	fmt.Printf("Updated %s (%s)\n", p.Title, p.ID)
	return nil
}
