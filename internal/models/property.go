// Package models defines the property listing and chat data structures
// shared by the terminal UI and the CLI.
package models

import (
	"strings"
	"time"
)

// PropertyType enumerates the supported listing categories.
type PropertyType string

const (
	PropertyTypeHouse     PropertyType = "house"
	PropertyTypeCondo     PropertyType = "condo"
	PropertyTypeApartment PropertyType = "apartment"
	PropertyTypeTownhouse PropertyType = "townhouse"
)

// PropertyTypes lists the valid categories in display order.
var PropertyTypes = []PropertyType{
	PropertyTypeHouse,
	PropertyTypeCondo,
	PropertyTypeApartment,
	PropertyTypeTownhouse,
}

// ValidPropertyType reports whether s is a known property type.
func ValidPropertyType(s string) bool {
	switch PropertyType(s) {
	case PropertyTypeHouse, PropertyTypeCondo, PropertyTypeApartment, PropertyTypeTownhouse:
		return true
	}
	return false
}

// Status is the listing state. It is assigned by the server and shown as-is.
type Status string

const (
	StatusActive  Status = "active"
	StatusPending Status = "pending"
	StatusSold    Status = "sold"
)

// Property represents a listing record as returned by the backend.
// The client only ever holds a transient copy; the server owns the record.
type Property struct {
	ID           string       `json:"id"`
	Title        string       `json:"title"`
	Description  string       `json:"description"`
	Price        int          `json:"price"`
	Location     string       `json:"location"`
	Address      string       `json:"address"`
	Bedrooms     int          `json:"bedrooms"`
	Bathrooms    int          `json:"bathrooms"`
	Sqft         int          `json:"sqft"`
	PropertyType PropertyType `json:"property_type"`
	Status       Status       `json:"status"`
	ImageURL     string       `json:"image_url"`
	Amenities    []string     `json:"amenities"`
	YearBuilt    *int         `json:"year_built,omitempty"`
	Garage       *int         `json:"garage,omitempty"`
	LotSize      *float64     `json:"lot_size,omitempty"`
	MLSNumber    *string      `json:"mls_number,omitempty"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

// PropertyPayload is the request body for create and update calls.
// The server assigns id, status and timestamps.
type PropertyPayload struct {
	Title        string       `json:"title"`
	Description  string       `json:"description"`
	Price        int          `json:"price"`
	Location     string       `json:"location"`
	Address      string       `json:"address"`
	Bedrooms     int          `json:"bedrooms"`
	Bathrooms    int          `json:"bathrooms"`
	Sqft         int          `json:"sqft"`
	PropertyType PropertyType `json:"property_type"`
	ImageURL     string       `json:"image_url"`
	Amenities    []string     `json:"amenities"`
	YearBuilt    *int         `json:"year_built,omitempty"`
	Garage       *int         `json:"garage,omitempty"`
	LotSize      *float64     `json:"lot_size,omitempty"`
	MLSNumber    *string      `json:"mls_number,omitempty"`
}

// FormatPrice renders a whole-dollar amount with comma grouping,
// e.g. 950000 becomes "$950,000".
func FormatPrice(dollars int) string {
	sign := ""
	if dollars < 0 {
		sign = "-"
		dollars = -dollars
	}
	return sign + "$" + groupThousands(dollars)
}

// FormatSqft renders square footage with comma grouping and unit.
func FormatSqft(sqft int) string {
	return groupThousands(sqft) + " sqft"
}

func groupThousands(n int) string {
	s := strings.Builder{}
	digits := []byte{}
	if n == 0 {
		return "0"
	}
	for n > 0 {
		digits = append(digits, byte('0'+n%10))
		n /= 10
	}
	for i := len(digits) - 1; i >= 0; i-- {
		s.WriteByte(digits[i])
		if i > 0 && i%3 == 0 {
			s.WriteByte(',')
		}
	}
	return s.String()
}
