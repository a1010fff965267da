package api

import (
	"context"
	"net/http"

	"github.com/chrisdamba/foodadmin/internal/models"
)

func (c *Client) ListDocuments(ctx context.Context) ([]models.Document, error) {
	docs, _, err := get[[]models.Document](ctx, c, "/api/documents", nil)
	return docs, err
}

func (c *Client) DocumentStats(ctx context.Context) (models.DocumentStats, error) {
	stats, _, err := get[models.DocumentStats](ctx, c, "/api/documents/stats", nil)
	return stats, err
}

func (c *Client) ApproveDocument(ctx context.Context, id string) (*Envelope, error) {
	return c.do(ctx, http.MethodPut, pathf("/api/documents/%s/approve", id), nil, nil, true)
}

func (c *Client) RejectDocument(ctx context.Context, id, reason string) (*Envelope, error) {
	return c.do(ctx, http.MethodPut, pathf("/api/documents/%s/reject", id), nil, map[string]string{"rejectionReason": reason}, true)
}
