package api

import (
	"context"
	"net/http"

	"github.com/chrisdamba/foodadmin/internal/models"
)

func (c *Client) ListCustomers(ctx context.Context) ([]models.Customer, error) {
	customers, _, err := get[[]models.Customer](ctx, c, "/api/customers", nil)
	return customers, err
}

func (c *Client) GetCustomer(ctx context.Context, id string) (*models.Customer, error) {
	customer, _, err := get[models.Customer](ctx, c, pathf("/api/customers/%s", id), nil)
	if err != nil {
		return nil, err
	}
	return &customer, nil
}

func (c *Client) UpdateCustomerStatus(ctx context.Context, id, status string) (*Envelope, error) {
	return c.do(ctx, http.MethodPut, pathf("/api/customers/%s", id), nil, map[string]string{"status": status}, true)
}

func (c *Client) DeleteCustomer(ctx context.Context, id string) (*Envelope, error) {
	return c.do(ctx, http.MethodDelete, pathf("/api/customers/%s", id), nil, nil, true)
}
