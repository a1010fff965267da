package models

import (
	"time"

	"github.com/chrisdamba/foodadmin/internal/relation"
)

type OrderItem struct {
	ID                  string  `json:"_id,omitempty"`
	Name                string  `json:"name"`
	Price               float64 `json:"price"`
	Quantity            int     `json:"quantity"`
	SpecialInstructions string  `json:"specialInstructions,omitempty"`
}

type Pricing struct {
	Subtotal    float64 `json:"subtotal"`
	DeliveryFee float64 `json:"deliveryFee"`
	Tax         float64 `json:"tax"`
	Total       float64 `json:"total"`
}

type Order struct {
	ID              string                           `json:"_id"`
	OrderNumber     string                           `json:"orderNumber"`
	Status          string                           `json:"status"`
	DeliveryStatus  string                           `json:"deliveryStatus,omitempty"`
	User            relation.Relation[Person]        `json:"user"`
	Customer        relation.Relation[Person]        `json:"customer"`
	Driver          relation.Relation[Person]        `json:"driver"`
	Restaurant      relation.Relation[RestaurantRef] `json:"restaurant"`
	DeliveryAddress relation.Relation[Address]       `json:"deliveryAddress"`
	Items           []OrderItem                      `json:"items"`
	Subtotal        float64                          `json:"subtotal,omitempty"`
	DeliveryFee     float64                          `json:"deliveryFee,omitempty"`
	Tax             float64                          `json:"tax,omitempty"`
	TotalAmount     float64                          `json:"totalAmount,omitempty"`
	Pricing         *Pricing                         `json:"pricing,omitempty"`
	PaymentMethod   string                           `json:"paymentMethod,omitempty"`
	CreatedAt       time.Time                        `json:"createdAt"`
}

// Buyer returns the ordering party. Older records carry it as "customer",
// newer ones as "user".
func (o Order) Buyer() relation.Relation[Person] {
	if o.User.State() != relation.Absent {
		return o.User
	}
	return o.Customer
}

// DisplayStatus prefers the delivery status when the order carries one.
func (o Order) DisplayStatus() string {
	if o.DeliveryStatus != "" {
		return o.DeliveryStatus
	}
	return o.Status
}

type OrderTotals struct {
	Subtotal    float64
	DeliveryFee float64
	Tax         float64
	Total       float64
}

// Totals resolves the order amounts: top-level fields win, then pricing, then
// the sum over the item lines for the subtotal.
func (o Order) Totals() OrderTotals {
	var itemsSubtotal float64
	for _, item := range o.Items {
		itemsSubtotal += item.Price * float64(item.Quantity)
	}

	var p Pricing
	if o.Pricing != nil {
		p = *o.Pricing
	}

	t := OrderTotals{
		Subtotal:    firstNonZero(o.Subtotal, p.Subtotal, itemsSubtotal),
		DeliveryFee: firstNonZero(o.DeliveryFee, p.DeliveryFee),
		Tax:         firstNonZero(o.Tax, p.Tax),
	}
	t.Total = t.Subtotal + t.DeliveryFee + t.Tax
	return t
}

func firstNonZero(values ...float64) float64 {
	for _, v := range values {
		if v != 0 {
			return v
		}
	}
	return 0
}
