package models

import (
	"time"

	"github.com/chrisdamba/foodadmin/internal/relation"
)

type Restaurant struct {
	ID           string                     `json:"_id"`
	Name         string                     `json:"name"`
	Description  string                     `json:"description,omitempty"`
	Cuisine      string                     `json:"cuisine"`
	Status       string                     `json:"status"`
	IsActive     bool                       `json:"isActive"`
	DeliveryFee  float64                    `json:"deliveryFee"`
	MinimumOrder float64                    `json:"minimumOrder"`
	Rating       float64                    `json:"rating"`
	ContactPhone string                     `json:"contactPhone,omitempty"`
	ContactEmail string                     `json:"contactEmail,omitempty"`
	Vendor       relation.Relation[Person]  `json:"vendor"`
	Address      relation.Relation[Address] `json:"address"`
	CreatedAt    time.Time                  `json:"createdAt"`
}

// RestaurantQuery is the server-side filter of the paginated restaurant list.
type RestaurantQuery struct {
	Search   string
	Status   string
	IsActive string
	Page     int
	Limit    int
}

// NewRestaurant registers a restaurant together with its vendor account.
type NewRestaurant struct {
	VendorEmail    string  `json:"vendorEmail" validate:"required,email"`
	VendorName     string  `json:"vendorName" validate:"required"`
	VendorPhone    string  `json:"vendorPhone,omitempty"`
	VendorPassword string  `json:"vendorPassword"`
	Name           string  `json:"name" validate:"required"`
	Description    string  `json:"description,omitempty"`
	Cuisine        string  `json:"cuisine,omitempty"`
	DeliveryFee    float64 `json:"deliveryFee" validate:"gte=0"`
	MinimumOrder   float64 `json:"minimumOrder" validate:"gte=0"`
	ContactPhone   string  `json:"contactPhone,omitempty"`
	ContactEmail   string  `json:"contactEmail,omitempty" validate:"omitempty,email"`
	Street         string  `json:"street,omitempty"`
	City           string  `json:"city,omitempty"`
	State          string  `json:"state,omitempty"`
	ZipCode        string  `json:"zipCode,omitempty"`
	Latitude       float64 `json:"latitude" validate:"gte=-90,lte=90"`
	Longitude      float64 `json:"longitude" validate:"gte=-180,lte=180"`
}

// ApplyDefaults fills the vendor password and the default coordinates.
func (n *NewRestaurant) ApplyDefaults() {
	if n.VendorPassword == "" {
		n.VendorPassword = DefaultVendorPassword
	}
	if n.Latitude == 0 && n.Longitude == 0 {
		n.Latitude = DefaultLatitude
		n.Longitude = DefaultLongitude
	}
}

type RestaurantUpdate struct {
	Name         string   `json:"name,omitempty"`
	Description  string   `json:"description,omitempty"`
	Cuisine      string   `json:"cuisine,omitempty"`
	Status       string   `json:"status,omitempty" validate:"omitempty,oneof=open closed busy"`
	DeliveryFee  *float64 `json:"deliveryFee,omitempty" validate:"omitempty,gte=0"`
	MinimumOrder *float64 `json:"minimumOrder,omitempty" validate:"omitempty,gte=0"`
	ContactPhone string   `json:"contactPhone,omitempty"`
	ContactEmail string   `json:"contactEmail,omitempty" validate:"omitempty,email"`
}
