package factories

import (
	"time"

	"github.com/chrisdamba/foodadmin/internal/models"
	"github.com/chrisdamba/foodadmin/internal/relation"
)

var cuisines = []string{
	"Italian", "Indian", "American", "Japanese", "Mexican", "Chinese",
	"Thai", "Greek", "French", "Mediterranean", "Fast Food", "Street Food",
}

func (f *Factory) Restaurant() models.Restaurant {
	vendorName := f.fake.Person().Name()
	r := models.Restaurant{
		ID:           f.ID(),
		Name:         f.fake.Company().Name(),
		Description:  f.fake.Lorem().Sentence(8),
		Cuisine:      f.pick(cuisines),
		Status:       f.pick(models.RestaurantStatuses),
		IsActive:     !f.chance(0.2),
		DeliveryFee:  f.fake.Float64(2, 10, 45),
		MinimumOrder: f.fake.Float64(0, 50, 150),
		Rating:       f.fake.Float64(1, 2, 5),
		ContactPhone: f.phone(),
		Vendor: relation.Resolve(models.Person{
			ID:    f.ID(),
			Name:  vendorName,
			Email: emailFor(vendorName, "vendors.example.com"),
		}),
		Address:   relation.Resolve(f.Address()),
		CreatedAt: f.pastTime(3 * 365 * 24 * time.Hour),
	}
	r.ContactEmail = emailFor(r.Name, "restaurants.example.com")
	return r
}

func RestaurantRef(r models.Restaurant) models.RestaurantRef {
	return models.RestaurantRef{ID: r.ID, Name: r.Name, Cuisine: r.Cuisine, Phone: r.ContactPhone, Email: r.ContactEmail}
}
