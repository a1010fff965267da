package factories

import (
	"strings"
	"time"

	"github.com/chrisdamba/foodadmin/internal/models"
)

var vehicleTypes = []string{"motorcycle", "car", "bicycle", "scooter"}

func (f *Factory) Driver() models.Driver {
	name := f.fake.Person().Name()
	return models.Driver{
		ID:              f.ID(),
		Name:            name,
		Email:           emailFor(name, "drivers.example.com"),
		Phone:           f.phone(),
		Status:          f.pick(models.DriverStatuses),
		VehicleType:     f.pick(vehicleTypes),
		VehicleNumber:   strings.ToUpper(f.fake.Bothify("??## ??? GP")),
		LicenseNumber:   f.fake.Numerify("DL########"),
		Rating:          f.fake.Float64(1, 3, 5),
		TotalDeliveries: f.fake.IntBetween(0, 900),
		Country:         "South Africa",
		City:            f.pick(cities),
		CreatedAt:       f.pastTime(365 * 24 * time.Hour),
	}
}

func emailFor(name, domain string) string {
	local := strings.ToLower(strings.Join(strings.Fields(name), "."))
	local = strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '.' {
			return r
		}
		return -1
	}, local)
	return local + "@" + domain
}
