package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/FenadoAI/fv2-realty-chat-3swcmc/internal/api"
)

var (
	listStatus   string
	listType     string
	listMinPrice int
	listMaxPrice int
	listBedrooms int
	listLimit    int
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List properties",
	Long: `List properties from the backend, optionally filtered.

The order is whatever the API returns.

Examples:
  realty list
  realty list --type condo --max-price 1500000
  realty list --status sold --format json`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	listCmd.Flags().StringVar(&listStatus, "status", "", "filter by status (active|pending|sold)")
	listCmd.Flags().StringVarP(&listType, "type", "t", "", "filter by property type")
	listCmd.Flags().IntVar(&listMinPrice, "min-price", 0, "minimum price in dollars")
	listCmd.Flags().IntVar(&listMaxPrice, "max-price", 0, "maximum price in dollars")
	listCmd.Flags().IntVar(&listBedrooms, "bedrooms", 0, "exact bedroom count")
	listCmd.Flags().IntVarP(&listLimit, "limit", "n", 0, "max results")
}

func runList(cmd *cobra.Command, args []string) error {
	opts := api.ListOptions{
		Status:       listStatus,
		PropertyType: listType,
		Limit:        listLimit,
	}
	if listMinPrice > 0 {
		opts.MinPrice = &listMinPrice
	}
	if listMaxPrice > 0 {
		opts.MaxPrice = &listMaxPrice
	}
	if listBedrooms > 0 {
		opts.Bedrooms = &listBedrooms
	}

	props, err := apiClient.ListProperties(context.Background(), opts)
	if err != nil {
		return fmt.Errorf("list properties: %w", err)
	}

	if isJSON() {
		return printJSON(props)
	}
	return printPropertyTable(props)
}
