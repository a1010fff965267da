// Package screens configures the list screen of every entity the console
// manages: its status enum, searchable fields, facets and table columns.
package screens

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/chrisdamba/foodadmin/internal/listing"
	"github.com/chrisdamba/foodadmin/internal/models"
	"github.com/chrisdamba/foodadmin/internal/relation"
)

var Orders = listing.Spec[models.Order]{
	Entity:   "order",
	Statuses: models.OrderStatuses,
	Status:   func(o models.Order) string { return o.Status },
	Key:      func(o models.Order) string { return o.ID },
	Fields: []listing.Field[models.Order]{
		listing.Text("order number", func(o models.Order) string { return o.OrderNumber }),
		listing.Text("customer", func(o models.Order) string { return relation.Name(relation.User, o.Buyer()) }),
		listing.Text("customer email", func(o models.Order) string { return relation.Email(o.Buyer()) }),
		listing.Text("driver", func(o models.Order) string { return relation.Name(relation.Driver, o.Driver) }),
		listing.Text("restaurant", func(o models.Order) string { return relation.Name(relation.Restaurant, o.Restaurant) }),
		listing.TextList("items", func(o models.Order) []string {
			names := make([]string, len(o.Items))
			for i, item := range o.Items {
				names[i] = item.Name
			}
			return names
		}),
	},
	Columns: []listing.Column[models.Order]{
		{Header: "ORDER", Value: func(o models.Order) string { return o.OrderNumber }},
		{Header: "CUSTOMER", Value: func(o models.Order) string { return relation.Name(relation.User, o.Buyer()) }},
		{Header: "RESTAURANT", Value: func(o models.Order) string { return relation.Name(relation.Restaurant, o.Restaurant) }},
		{Header: "DRIVER", Value: func(o models.Order) string { return relation.Name(relation.Driver, o.Driver) }},
		{Header: "ITEMS", Value: func(o models.Order) string { return strconv.Itoa(len(o.Items)) }},
		{Header: "TOTAL", Value: func(o models.Order) string { return models.FormatCurrency(o.Totals().Total) }},
		{Header: "STATUS", Value: func(o models.Order) string { return listing.Title(o.Status) }},
		{Header: "CREATED", Value: func(o models.Order) string { return models.FormatDate(o.CreatedAt) }},
		{Header: "ID", Value: func(o models.Order) string { return o.ID }},
	},
}

var Drivers = listing.Spec[models.Driver]{
	Entity:   "driver",
	Statuses: models.DriverStatuses,
	Status:   func(d models.Driver) string { return d.Status },
	Key:      func(d models.Driver) string { return d.ID },
	Fields: []listing.Field[models.Driver]{
		listing.Text("name", func(d models.Driver) string { return d.Name }),
		listing.Text("email", func(d models.Driver) string { return d.Email }),
		listing.Verbatim("phone", func(d models.Driver) string { return d.Phone }),
		listing.Text("vehicle number", func(d models.Driver) string { return d.VehicleNumber }),
		listing.Text("license number", func(d models.Driver) string { return d.LicenseNumber }),
		listing.Text("vehicle type", func(d models.Driver) string { return d.VehicleType }),
	},
	Columns: []listing.Column[models.Driver]{
		{Header: "NAME", Value: func(d models.Driver) string { return d.Name }},
		{Header: "EMAIL", Value: func(d models.Driver) string { return d.Email }},
		{Header: "PHONE", Value: func(d models.Driver) string { return d.Phone }},
		{Header: "VEHICLE", Value: func(d models.Driver) string { return vehicle(d) }},
		{Header: "LICENSE", Value: func(d models.Driver) string { return d.LicenseNumber }},
		{Header: "RATING", Value: func(d models.Driver) string { return fmt.Sprintf("%.1f", d.Rating) }},
		{Header: "DELIVERIES", Value: func(d models.Driver) string { return strconv.Itoa(d.TotalDeliveries) }},
		{Header: "STATUS", Value: func(d models.Driver) string { return listing.Title(d.Status) }},
		{Header: "ID", Value: func(d models.Driver) string { return d.ID }},
	},
}

func vehicle(d models.Driver) string {
	switch {
	case d.VehicleType != "" && d.VehicleNumber != "":
		return d.VehicleType + " (" + d.VehicleNumber + ")"
	case d.VehicleType != "":
		return d.VehicleType
	default:
		return d.VehicleNumber
	}
}

var Customers = listing.Spec[models.Customer]{
	Entity:   "customer",
	Statuses: models.CustomerStatuses,
	Status:   func(c models.Customer) string { return c.Status },
	Key:      func(c models.Customer) string { return c.ID },
	Fields: []listing.Field[models.Customer]{
		listing.Text("name", func(c models.Customer) string { return c.Name }),
		listing.Text("email", func(c models.Customer) string { return c.Email }),
		listing.Verbatim("phone", func(c models.Customer) string { return c.Phone }),
	},
	Columns: []listing.Column[models.Customer]{
		{Header: "NAME", Value: func(c models.Customer) string { return c.Name }},
		{Header: "EMAIL", Value: func(c models.Customer) string { return c.Email }},
		{Header: "PHONE", Value: func(c models.Customer) string { return c.Phone }},
		{Header: "ORDERS", Value: func(c models.Customer) string { return strconv.Itoa(c.TotalOrders) }},
		{Header: "SPENT", Value: func(c models.Customer) string { return models.FormatCurrency(c.TotalSpent) }},
		{Header: "LOCATION", Value: func(c models.Customer) string { return models.FormatAddress(c.Location) }},
		{Header: "STATUS", Value: func(c models.Customer) string { return listing.Title(c.Status) }},
		{Header: "ID", Value: func(c models.Customer) string { return c.ID }},
	},
}

var Documents = listing.Spec[models.Document]{
	Entity:   "document",
	Statuses: models.DocumentStatuses,
	Status:   func(d models.Document) string { return d.Status },
	Key:      func(d models.Document) string { return d.ID },
	Fields: []listing.Field[models.Document]{
		listing.Text("driver name", func(d models.Document) string { return d.DriverName }),
		listing.Text("driver email", func(d models.Document) string { return d.DriverEmail }),
		listing.Text("document number", func(d models.Document) string { return d.DocumentNumber }),
	},
	Facets: []listing.Facet[models.Document]{
		{Name: "type", Values: models.DocumentTypes, Get: func(d models.Document) string { return d.DocumentType }},
	},
	Columns: []listing.Column[models.Document]{
		{Header: "DRIVER", Value: func(d models.Document) string { return d.DriverName }},
		{Header: "EMAIL", Value: func(d models.Document) string { return d.DriverEmail }},
		{Header: "TYPE", Value: func(d models.Document) string { return listing.Title(d.DocumentType) }},
		{Header: "NUMBER", Value: func(d models.Document) string { return d.DocumentNumber }},
		{Header: "EXPIRES", Value: func(d models.Document) string {
			if d.ExpiryDate == nil {
				return "N/A"
			}
			return d.ExpiryDate.Format("2006-01-02")
		}},
		{Header: "UPLOADED", Value: func(d models.Document) string { return models.FormatDate(d.UploadedAt) }},
		{Header: "STATUS", Value: func(d models.Document) string { return listing.Title(d.Status) }},
		{Header: "ID", Value: func(d models.Document) string { return d.ID }},
	},
}

var Payments = listing.Spec[models.Payment]{
	Entity:   "payment",
	Statuses: models.PaymentStatuses,
	Status:   func(p models.Payment) string { return p.Status },
	Key:      func(p models.Payment) string { return p.ID },
	Fields: []listing.Field[models.Payment]{
		listing.Text("transaction id", func(p models.Payment) string { return p.TransactionID }),
		listing.Text("order id", func(p models.Payment) string { return p.OrderID }),
		listing.Text("customer name", func(p models.Payment) string { return p.CustomerName }),
		listing.Text("customer email", func(p models.Payment) string { return p.CustomerEmail }),
	},
	Facets: []listing.Facet[models.Payment]{
		{Name: "method", Values: models.PaymentMethods, Get: func(p models.Payment) string { return p.PaymentMethod }},
	},
	Columns: []listing.Column[models.Payment]{
		{Header: "TRANSACTION", Value: func(p models.Payment) string { return p.TransactionID }},
		{Header: "ORDER", Value: func(p models.Payment) string { return p.OrderID }},
		{Header: "CUSTOMER", Value: func(p models.Payment) string { return p.CustomerName }},
		{Header: "AMOUNT", Value: func(p models.Payment) string { return models.FormatCurrency(p.Amount) }},
		{Header: "METHOD", Value: func(p models.Payment) string { return listing.Title(p.PaymentMethod) }},
		{Header: "STATUS", Value: func(p models.Payment) string { return listing.Title(p.Status) }},
		{Header: "DATE", Value: func(p models.Payment) string { return models.FormatDate(p.CreatedAt) }},
		{Header: "ID", Value: func(p models.Payment) string { return p.ID }},
	},
}

// Restaurants is filtered by the API; the local fields only serve exports
// and lookups.
var Restaurants = listing.Spec[models.Restaurant]{
	Entity:         "restaurant",
	Statuses:       models.RestaurantStatuses,
	Status:         func(r models.Restaurant) string { return r.Status },
	Key:            func(r models.Restaurant) string { return r.ID },
	ServerFiltered: true,
	Fields: []listing.Field[models.Restaurant]{
		listing.Text("name", func(r models.Restaurant) string { return r.Name }),
		listing.Text("cuisine", func(r models.Restaurant) string { return r.Cuisine }),
		listing.Text("contact email", func(r models.Restaurant) string { return r.ContactEmail }),
		listing.Verbatim("phone", func(r models.Restaurant) string { return r.ContactPhone }),
	},
	Facets: []listing.Facet[models.Restaurant]{
		{Name: "active", Values: []string{"true", "false"}, Get: func(r models.Restaurant) string { return strconv.FormatBool(r.IsActive) }},
	},
	Columns: []listing.Column[models.Restaurant]{
		{Header: "NAME", Value: func(r models.Restaurant) string { return r.Name }},
		{Header: "CUISINE", Value: func(r models.Restaurant) string { return r.Cuisine }},
		{Header: "VENDOR", Value: func(r models.Restaurant) string { return relation.Name(relation.User, r.Vendor) }},
		{Header: "ADDRESS", Value: func(r models.Restaurant) string { return models.FormatAddress(r.Address) }},
		{Header: "FEE", Value: func(r models.Restaurant) string { return models.FormatCurrency(r.DeliveryFee) }},
		{Header: "MIN ORDER", Value: func(r models.Restaurant) string { return models.FormatCurrency(r.MinimumOrder) }},
		{Header: "ACTIVE", Value: func(r models.Restaurant) string { return models.YesNo(r.IsActive) }},
		{Header: "STATUS", Value: func(r models.Restaurant) string { return listing.Title(r.Status) }},
		{Header: "ID", Value: func(r models.Restaurant) string { return r.ID }},
	},
}

// Menu items have no status enum; availability is the server-side filter.
var Menu = listing.Spec[models.MenuItem]{
	Entity:         "menu item",
	Status:         func(m models.MenuItem) string { return availability(m) },
	Statuses:       []string{"available", "unavailable"},
	Key:            func(m models.MenuItem) string { return m.ID },
	ServerFiltered: true,
	Fields: []listing.Field[models.MenuItem]{
		listing.Text("name", func(m models.MenuItem) string { return m.Name }),
		listing.Text("description", func(m models.MenuItem) string { return m.Description }),
		listing.Text("category", func(m models.MenuItem) string { return m.Category }),
	},
	Facets: []listing.Facet[models.MenuItem]{
		{Name: "category", Values: models.MenuCategories, Get: func(m models.MenuItem) string { return m.Category }},
	},
	Columns: []listing.Column[models.MenuItem]{
		{Header: "NAME", Value: func(m models.MenuItem) string { return m.Name }},
		{Header: "CATEGORY", Value: func(m models.MenuItem) string { return m.Category }},
		{Header: "PRICE", Value: func(m models.MenuItem) string { return models.FormatCurrency(m.Price) }},
		{Header: "PREP", Value: func(m models.MenuItem) string { return fmt.Sprintf("%d min", m.PreparationTime) }},
		{Header: "DIET", Value: diet},
		{Header: "SPICE", Value: func(m models.MenuItem) string { return m.SpiceLevel }},
		{Header: "AVAILABLE", Value: func(m models.MenuItem) string { return models.YesNo(m.IsAvailable) }},
		{Header: "ID", Value: func(m models.MenuItem) string { return m.ID }},
	},
}

func availability(m models.MenuItem) string {
	if m.IsAvailable {
		return "available"
	}
	return "unavailable"
}

func diet(m models.MenuItem) string {
	var tags []string
	if m.IsVegetarian {
		tags = append(tags, "V")
	}
	if m.IsVegan {
		tags = append(tags, "VG")
	}
	if m.IsGlutenFree {
		tags = append(tags, "GF")
	}
	if len(tags) == 0 {
		return "-"
	}
	return strings.Join(tags, ",")
}
