package factories

import (
	"fmt"
	"math"
	"time"

	"github.com/chrisdamba/foodadmin/internal/models"
	"github.com/chrisdamba/foodadmin/internal/relation"
)

const vatRate = 0.15

// Order builds an order whose relations come in every shape the API is known
// to send: populated objects, bare ids and missing fields.
func (f *Factory) Order(seq int, c models.Customer, r models.Restaurant, menu []models.MenuItem, drivers []models.Driver) models.Order {
	o := models.Order{
		ID:            f.ID(),
		OrderNumber:   fmt.Sprintf("ORD-%06d", 100000+seq),
		Status:        f.pick(models.OrderStatuses),
		PaymentMethod: f.pick(models.PaymentMethods),
		CreatedAt:     f.pastTime(30 * 24 * time.Hour),
	}

	buyer := models.Person{ID: c.ID, Name: c.Name, Email: c.Email, Phone: c.Phone}
	switch {
	case f.chance(0.15):
		o.User = relation.Ref[models.Person](c.ID)
	case f.chance(0.2):
		o.Customer = relation.Resolve(buyer)
	default:
		o.User = relation.Resolve(buyer)
	}

	if f.chance(0.1) {
		o.Restaurant = relation.Ref[models.RestaurantRef](r.ID)
	} else {
		o.Restaurant = relation.Resolve(RestaurantRef(r))
	}

	if o.Status != models.OrderStatusPending && o.Status != models.OrderStatusConfirmed && len(drivers) > 0 {
		d := drivers[f.rng.Intn(len(drivers))]
		if f.chance(0.2) {
			o.Driver = relation.Ref[models.Person](d.ID)
		} else {
			o.Driver = relation.Resolve(models.Person{ID: d.ID, Name: d.Name, Email: d.Email, Phone: d.Phone})
		}
	}

	if addr, ok := c.Location.Value(); ok {
		o.DeliveryAddress = relation.Resolve(addr)
	} else {
		o.DeliveryAddress = relation.Resolve(f.Address())
	}

	lines := f.fake.IntBetween(1, 4)
	for i := 0; i < lines && len(menu) > 0; i++ {
		item := menu[f.rng.Intn(len(menu))]
		o.Items = append(o.Items, models.OrderItem{
			ID:       item.ID,
			Name:     item.Name,
			Price:    item.Price,
			Quantity: f.fake.IntBetween(1, 3),
		})
	}

	subtotal := o.Totals().Subtotal
	pricing := &models.Pricing{
		Subtotal:    subtotal,
		DeliveryFee: r.DeliveryFee,
		Tax:         round2(subtotal * vatRate),
	}
	pricing.Total = pricing.Subtotal + pricing.DeliveryFee + pricing.Tax
	// older orders carry top-level totals instead of a pricing block
	if f.chance(0.5) {
		o.Pricing = pricing
	} else {
		o.Subtotal, o.DeliveryFee, o.Tax, o.TotalAmount = pricing.Subtotal, pricing.DeliveryFee, pricing.Tax, pricing.Total
	}
	return o
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
