package factories

import (
	"time"

	"github.com/chrisdamba/foodadmin/internal/models"
	"github.com/chrisdamba/foodadmin/internal/relation"
)

var cities = []string{"Johannesburg", "Pretoria", "Cape Town", "Durban", "Sandton", "Soweto"}

func (f *Factory) Address() models.Address {
	return models.Address{
		Street:  f.fake.Address().StreetAddress(),
		City:    f.pick(cities),
		State:   "Gauteng",
		ZipCode: f.fake.Numerify("####"),
		Country: "South Africa",
		Coordinates: &models.Coordinates{
			Latitude:  models.DefaultLatitude + f.fake.Float64(4, -1, 1)/10,
			Longitude: models.DefaultLongitude + f.fake.Float64(4, -1, 1)/10,
		},
	}
}

func (f *Factory) Customer() models.Customer {
	name := f.fake.Person().Name()
	c := models.Customer{
		ID:          f.ID(),
		Name:        name,
		Email:       emailFor(name, "customers.example.com"),
		Phone:       f.phone(),
		Status:      models.CustomerStatusActive,
		TotalOrders: f.fake.IntBetween(0, 80),
		CreatedAt:   f.pastTime(2 * 365 * 24 * time.Hour),
	}
	if f.chance(0.15) {
		c.Status = models.CustomerStatusInactive
	}
	c.TotalSpent = float64(c.TotalOrders) * f.fake.Float64(2, 60, 250)

	// some accounts carry their location as a preformatted string
	switch {
	case f.chance(0.1):
	case f.chance(0.2):
		c.Location = relation.Ref[models.Address](f.fake.Address().City() + ", South Africa")
	default:
		c.Location = relation.Resolve(f.Address())
	}
	return c
}
