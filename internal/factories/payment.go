package factories

import (
	"strings"

	"github.com/chrisdamba/foodadmin/internal/models"
)

// Payment settles o for customer c. Payments of delivered orders are mostly
// completed.
func (f *Factory) Payment(o models.Order, c models.Customer) models.Payment {
	status := f.pick(models.PaymentStatuses)
	if o.Status == models.OrderStatusDelivered && f.chance(0.8) {
		status = models.PaymentStatusCompleted
	}
	return models.Payment{
		ID:            f.ID(),
		TransactionID: "TXN-" + strings.ToUpper(f.fake.Lexify("????????")),
		OrderID:       o.ID,
		CustomerName:  c.Name,
		CustomerEmail: c.Email,
		Amount:        o.Totals().Total,
		Status:        status,
		PaymentMethod: o.PaymentMethod,
		CreatedAt:     o.CreatedAt,
	}
}
