package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/chrisdamba/foodadmin/internal/models"
)

func (c *Client) ListMenu(ctx context.Context, restaurantID string, q models.MenuQuery) ([]models.MenuItem, error) {
	params := url.Values{}
	if q.Category != "" {
		params.Set("category", q.Category)
	}
	if q.Available != "" {
		params.Set("available", q.Available)
	}
	items, _, err := get[[]models.MenuItem](ctx, c, pathf("/api/menu/restaurant/%s", restaurantID), params)
	return items, err
}

func (c *Client) CreateMenuItem(ctx context.Context, f models.MenuItemForm) (*Envelope, error) {
	return c.do(ctx, http.MethodPost, "/api/menu", nil, f, true)
}

func (c *Client) UpdateMenuItem(ctx context.Context, id string, f models.MenuItemForm) (*Envelope, error) {
	return c.do(ctx, http.MethodPut, pathf("/api/menu/%s", id), nil, f, true)
}

func (c *Client) DeleteMenuItem(ctx context.Context, id string) (*Envelope, error) {
	return c.do(ctx, http.MethodDelete, pathf("/api/menu/%s", id), nil, nil, true)
}

func (c *Client) ToggleMenuItemAvailability(ctx context.Context, id string) (*Envelope, error) {
	return c.do(ctx, http.MethodPatch, pathf("/api/menu/%s/toggle-availability", id), nil, struct{}{}, true)
}
