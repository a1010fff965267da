package api

import (
	"context"

	"github.com/chrisdamba/foodadmin/internal/models"
)

func (c *Client) DashboardStats(ctx context.Context) (models.DashboardStats, error) {
	stats, _, err := get[models.DashboardStats](ctx, c, "/api/dashboard/stats", nil)
	return stats, err
}

func (c *Client) ChartData(ctx context.Context) ([]models.ChartPoint, error) {
	points, _, err := get[[]models.ChartPoint](ctx, c, "/api/dashboard/chart-data", nil)
	return points, err
}

func (c *Client) Suggestions(ctx context.Context) ([]models.Suggestion, error) {
	suggestions, _, err := get[[]models.Suggestion](ctx, c, "/api/dashboard/ai-suggestions", nil)
	return suggestions, err
}
