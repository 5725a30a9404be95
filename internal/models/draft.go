package models

import (
	"strconv"
	"strings"
)

// Draft field keys, used by the form to address fields by name.
const (
	FieldTitle        = "title"
	FieldDescription  = "description"
	FieldPrice        = "price"
	FieldLocation     = "location"
	FieldAddress      = "address"
	FieldBedrooms     = "bedrooms"
	FieldBathrooms    = "bathrooms"
	FieldSqft         = "sqft"
	FieldPropertyType = "property_type"
	FieldImageURL     = "image_url"
	FieldAmenities    = "amenities"
	FieldYearBuilt    = "year_built"
	FieldGarage       = "garage"
	FieldLotSize      = "lot_size"
	FieldMLSNumber    = "mls_number"
)

// DraftFields lists the editable fields in form display order.
var DraftFields = []string{
	FieldTitle,
	FieldDescription,
	FieldPrice,
	FieldLocation,
	FieldAddress,
	FieldBedrooms,
	FieldBathrooms,
	FieldSqft,
	FieldPropertyType,
	FieldImageURL,
	FieldAmenities,
	FieldYearBuilt,
	FieldGarage,
	FieldLotSize,
	FieldMLSNumber,
}

// Draft is the all-string editable mirror of a Property bound to the
// create/edit dialog. It exists only while the dialog is open and is
// coerced to a typed payload at submit time; no validation happens at
// keystroke time.
type Draft struct {
	// EditingID holds the id of the property being edited,
	// or "" when composing a new one.
	EditingID string

	Title        string
	Description  string
	Price        string
	Location     string
	Address      string
	Bedrooms     string
	Bathrooms    string
	Sqft         string
	PropertyType string
	ImageURL     string
	Amenities    string // comma-separated
	YearBuilt    string
	Garage       string
	LotSize      string
	MLSNumber    string
}

// Editing reports whether the draft was loaded from an existing property.
func (d *Draft) Editing() bool {
	return d.EditingID != ""
}

// Set merges a single field value into the draft. Unknown fields are ignored.
func (d *Draft) Set(field, value string) {
	switch field {
	case FieldTitle:
		d.Title = value
	case FieldDescription:
		d.Description = value
	case FieldPrice:
		d.Price = value
	case FieldLocation:
		d.Location = value
	case FieldAddress:
		d.Address = value
	case FieldBedrooms:
		d.Bedrooms = value
	case FieldBathrooms:
		d.Bathrooms = value
	case FieldSqft:
		d.Sqft = value
	case FieldPropertyType:
		d.PropertyType = value
	case FieldImageURL:
		d.ImageURL = value
	case FieldAmenities:
		d.Amenities = value
	case FieldYearBuilt:
		d.YearBuilt = value
	case FieldGarage:
		d.Garage = value
	case FieldLotSize:
		d.LotSize = value
	case FieldMLSNumber:
		d.MLSNumber = value
	}
}

// Get returns the current value of a field, or "" for unknown fields.
func (d *Draft) Get(field string) string {
	switch field {
	case FieldTitle:
		return d.Title
	case FieldDescription:
		return d.Description
	case FieldPrice:
		return d.Price
	case FieldLocation:
		return d.Location
	case FieldAddress:
		return d.Address
	case FieldBedrooms:
		return d.Bedrooms
	case FieldBathrooms:
		return d.Bathrooms
	case FieldSqft:
		return d.Sqft
	case FieldPropertyType:
		return d.PropertyType
	case FieldImageURL:
		return d.ImageURL
	case FieldAmenities:
		return d.Amenities
	case FieldYearBuilt:
		return d.YearBuilt
	case FieldGarage:
		return d.Garage
	case FieldLotSize:
		return d.LotSize
	case FieldMLSNumber:
		return d.MLSNumber
	}
	return ""
}

// Reset returns the draft to the empty template and clears the editing marker.
func (d *Draft) Reset() {
	*d = Draft{}
}

// LoadFromProperty populates every field with the property's string
// representation. Absent optional fields become empty strings.
func (d *Draft) LoadFromProperty(p Property) {
	d.EditingID = p.ID
	d.Title = p.Title
	d.Description = p.Description
	d.Price = strconv.Itoa(p.Price)
	d.Location = p.Location
	d.Address = p.Address
	d.Bedrooms = strconv.Itoa(p.Bedrooms)
	d.Bathrooms = strconv.Itoa(p.Bathrooms)
	d.Sqft = strconv.Itoa(p.Sqft)
	d.PropertyType = string(p.PropertyType)
	d.ImageURL = p.ImageURL
	d.Amenities = strings.Join(p.Amenities, ", ")

	d.YearBuilt = ""
	if p.YearBuilt != nil {
		d.YearBuilt = strconv.Itoa(*p.YearBuilt)
	}
	d.Garage = ""
	if p.Garage != nil {
		d.Garage = strconv.Itoa(*p.Garage)
	}
	d.LotSize = ""
	if p.LotSize != nil {
		d.LotSize = strconv.FormatFloat(*p.LotSize, 'f', -1, 64)
	}
	d.MLSNumber = ""
	if p.MLSNumber != nil {
		d.MLSNumber = *p.MLSNumber
	}
}

// ToPayload converts the draft to a typed payload using a lenient
// parse-or-default policy: required numeric fields degrade to 0 on bad
// input, optional numerics are omitted only when the field was left
// empty, and the amenities text splits on commas with each segment
// trimmed. Empty segments survive the split, so trailing commas produce
// empty-string amenities.
func (d *Draft) ToPayload() PropertyPayload {
	return PropertyPayload{
		Title:        d.Title,
		Description:  d.Description,
		Price:        parseIntOrZero(d.Price),
		Location:     d.Location,
		Address:      d.Address,
		Bedrooms:     parseIntOrZero(d.Bedrooms),
		Bathrooms:    parseIntOrZero(d.Bathrooms),
		Sqft:         parseIntOrZero(d.Sqft),
		PropertyType: PropertyType(d.PropertyType),
		ImageURL:     d.ImageURL,
		Amenities:    splitAmenities(d.Amenities),
		YearBuilt:    optionalInt(d.YearBuilt),
		Garage:       optionalInt(d.Garage),
		LotSize:      optionalFloat(d.LotSize),
		MLSNumber:    optionalString(d.MLSNumber),
	}
}

func parseIntOrZero(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}

// optionalInt returns nil for an empty field; a non-empty field parses
// or degrades to 0, it never becomes absent.
func optionalInt(s string) *int {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	n := parseIntOrZero(s)
	return &n
}

func optionalFloat(s string) *float64 {
	t := strings.TrimSpace(s)
	if t == "" {
		return nil
	}
	f, err := strconv.ParseFloat(t, 64)
	if err != nil {
		f = 0
	}
	return &f
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func splitAmenities(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, len(parts))
	for i, p := range parts {
		out[i] = strings.TrimSpace(p)
	}
	return out
}
