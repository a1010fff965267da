package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/chrisdamba/foodadmin/internal/models"
)

// ListRestaurants fetches one page of restaurants filtered server-side.
func (c *Client) ListRestaurants(ctx context.Context, q models.RestaurantQuery) ([]models.Restaurant, int, error) {
	params := url.Values{}
	params.Set("page", strconv.Itoa(max(q.Page, 1)))
	params.Set("limit", strconv.Itoa(max(q.Limit, 1)))
	if q.Search != "" {
		params.Set("search", q.Search)
	}
	if q.Status != "" {
		params.Set("status", q.Status)
	}
	if q.IsActive != "" {
		params.Set("isActive", q.IsActive)
	}

	restaurants, env, err := get[[]models.Restaurant](ctx, c, "/api/restaurants", params)
	if err != nil {
		return nil, 0, err
	}
	totalPages := 1
	if env.Pagination != nil && env.Pagination.TotalPages > 0 {
		totalPages = env.Pagination.TotalPages
	}
	return restaurants, totalPages, nil
}

func (c *Client) CreateRestaurant(ctx context.Context, r models.NewRestaurant) (*Envelope, error) {
	return c.do(ctx, http.MethodPost, "/api/restaurants", nil, r, true)
}

func (c *Client) UpdateRestaurant(ctx context.Context, id string, u models.RestaurantUpdate) (*Envelope, error) {
	return c.do(ctx, http.MethodPut, pathf("/api/restaurants/%s", id), nil, u, true)
}

func (c *Client) DeleteRestaurant(ctx context.Context, id string) (*Envelope, error) {
	return c.do(ctx, http.MethodDelete, pathf("/api/restaurants/%s", id), nil, nil, true)
}

func (c *Client) ToggleRestaurantStatus(ctx context.Context, id string) (*Envelope, error) {
	return c.do(ctx, http.MethodPatch, pathf("/api/restaurants/%s/toggle-status", id), nil, struct{}{}, true)
}
