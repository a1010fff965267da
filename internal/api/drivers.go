package api

import (
	"context"
	"net/http"

	"github.com/chrisdamba/foodadmin/internal/models"
)

func (c *Client) ListDrivers(ctx context.Context) ([]models.Driver, error) {
	drivers, _, err := get[[]models.Driver](ctx, c, "/api/drivers", nil)
	return drivers, err
}

func (c *Client) CreateDriver(ctx context.Context, d models.NewDriver) (*Envelope, error) {
	return c.do(ctx, http.MethodPost, "/api/drivers", nil, d, true)
}

func (c *Client) UpdateDriver(ctx context.Context, id string, u models.DriverUpdate) (*Envelope, error) {
	return c.do(ctx, http.MethodPut, pathf("/api/drivers/%s", id), nil, u, true)
}

func (c *Client) ChangeDriverPassword(ctx context.Context, id string, p models.PasswordChange) (*Envelope, error) {
	return c.do(ctx, http.MethodPut, pathf("/api/drivers/%s/password", id), nil, p, true)
}

func (c *Client) DeleteDriver(ctx context.Context, id string) (*Envelope, error) {
	return c.do(ctx, http.MethodDelete, pathf("/api/drivers/%s", id), nil, nil, true)
}
