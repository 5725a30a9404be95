package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/FenadoAI/fv2-realty-chat-3swcmc/internal/models"
)

// printJSON marshals v as indented JSON and writes it to stdout.
func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// printPropertyTable prints a list of properties as a formatted table.
func printPropertyTable(props []models.Property) error {
	if len(props) == 0 {
		fmt.Println("No properties found.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintln(w, "ID\tTITLE\tPRICE\tBED\tBATH\tSQFT\tTYPE\tSTATUS"); err != nil {
		return fmt.Errorf("writing table header: %w", err)
	}

	for _, p := range props {
		if _, err := fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%d\t%s\t%s\n",
			shortID(p.ID), truncate(p.Title, 32), models.FormatPrice(p.Price),
			p.Bedrooms, p.Bathrooms, p.Sqft, p.PropertyType, p.Status); err != nil {
			return fmt.Errorf("writing table row: %w", err)
		}
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("flushing table: %w", err)
	}

	fmt.Printf("\nTotal: %d properties\n", len(props))
	return nil
}

// printPropertyDetails prints a single property in text format.
func printPropertyDetails(p *models.Property) {
	fmt.Printf("%s\n", p.Title)
	fmt.Printf("  ID:        %s\n", p.ID)
	fmt.Printf("  Price:     %s\n", models.FormatPrice(p.Price))
	fmt.Printf("  Location:  %s\n", p.Location)
	fmt.Printf("  Address:   %s\n", p.Address)
	fmt.Printf("  Beds:      %d\n", p.Bedrooms)
	fmt.Printf("  Baths:     %d\n", p.Bathrooms)
	fmt.Printf("  Sqft:      %d\n", p.Sqft)
	fmt.Printf("  Type:      %s\n", p.PropertyType)
	fmt.Printf("  Status:    %s\n", p.Status)
	if len(p.Amenities) > 0 {
		fmt.Printf("  Amenities: %s\n", strings.Join(p.Amenities, ", "))
	}
	if p.YearBuilt != nil {
		fmt.Printf("  Built:     %d\n", *p.YearBuilt)
	}
	if p.Garage != nil {
		fmt.Printf("  Garage:    %d\n", *p.Garage)
	}
	if p.LotSize != nil {
		fmt.Printf("  Lot:       %.2f acres\n", *p.LotSize)
	}
	if p.MLSNumber != nil {
		fmt.Printf("  MLS:       %s\n", *p.MLSNumber)
	}
	if p.Description != "" {
		fmt.Printf("\n  %s\n", p.Description)
	}
}

// shortID keeps tables narrow; full ids are available via --format json.
func shortID(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[:8]
}

// truncate shortens a string to maxLen, adding "..." if truncated.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
