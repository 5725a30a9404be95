package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/FenadoAI/fv2-realty-chat-3swcmc/internal/models"
)

// draftFlags collects the all-string form values for add/update. The
// values run through the same draft coercion as the interactive form,
// so e.g. a non-numeric price degrades to 0 instead of failing.
type draftFlags struct {
	title        string
	description  string
	price        string
	location     string
	address      string
	bedrooms     string
	bathrooms    string
	sqft         string
	propertyType string
	imageURL     string
	amenities    string
	yearBuilt    string
	garage       string
	lotSize      string
	mlsNumber    string
}

func (f *draftFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.title, "title", "", "listing title")
	cmd.Flags().StringVar(&f.description, "description", "", "listing description")
	cmd.Flags().StringVar(&f.price, "price", "", "price in whole dollars")
	cmd.Flags().StringVar(&f.location, "location", "", "city / area")
	cmd.Flags().StringVar(&f.address, "address", "", "street address")
	cmd.Flags().StringVar(&f.bedrooms, "bedrooms", "", "bedroom count")
	cmd.Flags().StringVar(&f.bathrooms, "bathrooms", "", "bathroom count")
	cmd.Flags().StringVar(&f.sqft, "sqft", "", "interior square feet")
	cmd.Flags().StringVar(&f.propertyType, "type", "", "house|condo|apartment|townhouse")
	cmd.Flags().StringVar(&f.imageURL, "image-url", "", "photo URL")
	cmd.Flags().StringVar(&f.amenities, "amenities", "", "comma-separated amenities")
	cmd.Flags().StringVar(&f.yearBuilt, "year-built", "", "construction year")
	cmd.Flags().StringVar(&f.garage, "garage", "", "garage spaces")
	cmd.Flags().StringVar(&f.lotSize, "lot-size", "", "lot size in acres")
	cmd.Flags().StringVar(&f.mlsNumber, "mls-number", "", "MLS number")
}

// apply merges each set flag into the draft by field name.
func (f *draftFlags) apply(cmd *cobra.Command, d *models.Draft) {
	set := func(flag, field, value string) {
		if cmd.Flags().Changed(flag) {
			d.Set(field, value)
		}
	}
	set("title", models.FieldTitle, f.title)
	set("description", models.FieldDescription, f.description)
	set("price", models.FieldPrice, f.price)
	set("location", models.FieldLocation, f.location)
	set("address", models.FieldAddress, f.address)
	set("bedrooms", models.FieldBedrooms, f.bedrooms)
	set("bathrooms", models.FieldBathrooms, f.bathrooms)
	set("sqft", models.FieldSqft, f.sqft)
	set("type", models.FieldPropertyType, f.propertyType)
	set("image-url", models.FieldImageURL, f.imageURL)
	set("amenities", models.FieldAmenities, f.amenities)
	set("year-built", models.FieldYearBuilt, f.yearBuilt)
	set("garage", models.FieldGarage, f.garage)
	set("lot-size", models.FieldLotSize, f.lotSize)
	set("mls-number", models.FieldMLSNumber, f.mlsNumber)
}

var addFlags draftFlags

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a property listing",
	Long: `Create a property listing from flags.

Examples:
  realty add --title "Urban Loft" --price 625000 --location "Austin, TX" \
    --bedrooms 2 --bathrooms 2 --sqft 1800 --type condo \
    --amenities "Exposed Brick, High Ceilings"`,
	Args: cobra.NoArgs,
	RunE: runAdd,
}

func init() {
	addFlags.register(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	var draft models.Draft
	addFlags.apply(cmd, &draft)

	p, err := apiClient.CreateProperty(context.Background(), draft.ToPayload())
	if err != nil {
		return fmt.Errorf("create property: %w", err)
	}

	if isJSON() {
		return printJSON(p)
	}
	fmt.Printf("Created %s (%s)\n", p.Title, p.ID)
	return nil
}
