package api

import (
	"context"
	"net/http"

	"github.com/chrisdamba/foodadmin/internal/models"
)

func (c *Client) ListOrders(ctx context.Context) ([]models.Order, error) {
	orders, _, err := get[[]models.Order](ctx, c, "/api/orders", nil)
	return orders, err
}

func (c *Client) UpdateOrderStatus(ctx context.Context, id, status string) (*Envelope, error) {
	return c.do(ctx, http.MethodPut, pathf("/api/orders/%s/status", id), nil, map[string]string{"status": status}, true)
}
