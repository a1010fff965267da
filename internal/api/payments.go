package api

import (
	"context"
	"net/http"

	"github.com/chrisdamba/foodadmin/internal/models"
)

func (c *Client) ListPayments(ctx context.Context) ([]models.Payment, error) {
	payments, _, err := get[[]models.Payment](ctx, c, "/api/payments", nil)
	return payments, err
}

func (c *Client) PaymentStats(ctx context.Context) (models.PaymentStats, error) {
	stats, _, err := get[models.PaymentStats](ctx, c, "/api/payments/stats", nil)
	return stats, err
}

func (c *Client) RefundPayment(ctx context.Context, id string) (*Envelope, error) {
	return c.do(ctx, http.MethodPost, pathf("/api/payments/%s/refund", id), nil, nil, true)
}
