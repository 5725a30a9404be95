package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var deleteForce bool

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a property listing",
	Long: `Delete a property listing.

Requires confirmation unless --force is used. Declining sends nothing
to the server.

Examples:
  realty delete 3f1c9a22
  realty delete 3f1c9a22 --force`,
	Args: cobra.ExactArgs(1),
	RunE: runDelete,
}

func init() {
	deleteCmd.Flags().BoolVarP(&deleteForce, "force", "f", false, "skip confirmation")
}

func runDelete(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	p, err := apiClient.GetProperty(ctx, args[0])
	if err != nil {
		return fmt.Errorf("get property: %w", err)
	}

	if !deleteForce {
		fmt.Printf("About to delete: %s (%s)\n", p.Title, p.ID)
		fmt.Print("\nContinue? [y/N]: ")

		reader := bufio.NewReader(os.Stdin)
		response, err := reader.ReadString('\n')
		if err != nil {
			return fmt.Errorf("read input: %w", err)
		}
		response = strings.TrimSpace(strings.ToLower(response))

		if response != "y" && response != "yes" {
			fmt.Println("Cancelled.")
			return nil
		}
	}

	resp, err := apiClient.DeleteProperty(ctx, p.ID)
	if err != nil {
		return fmt.Errorf("delete property: %w", err)
	}

	if isJSON() {
		return printJSON(resp)
	}
	fmt.Printf("Deleted %s\n", p.Title)
	return nil
}
