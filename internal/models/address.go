package models

import (
	"strings"

	"github.com/chrisdamba/foodadmin/internal/relation"
)

type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type Address struct {
	Street      string       `json:"street,omitempty"`
	City        string       `json:"city,omitempty"`
	State       string       `json:"state,omitempty"`
	ZipCode     string       `json:"zipCode,omitempty"`
	Country     string       `json:"country,omitempty"`
	Coordinates *Coordinates `json:"coordinates,omitempty"`
}

// String joins the non-empty street, city, state and zip parts, falling back
// to the country and then to "N/A".
func (a Address) String() string {
	var parts []string
	for _, p := range []string{a.Street, a.City, a.State, a.ZipCode} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	if len(parts) > 0 {
		return strings.Join(parts, ", ")
	}
	if a.Country != "" {
		return a.Country
	}
	return "N/A"
}

// FormatAddress renders an address relation. Some endpoints send the address
// as a preformatted string, which arrives as a Reference and is shown verbatim.
func FormatAddress(r relation.Relation[Address]) string {
	switch r.State() {
	case relation.Resolved:
		a, _ := r.Value()
		return a.String()
	case relation.Reference:
		return r.ID()
	default:
		return "N/A"
	}
}
