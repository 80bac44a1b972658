package service

import (
	"context"
	"net/http"

	"unwind_bot/internal/models"
)

func (c *Client) GetStatus(ctx context.Context) (models.MarketStatus, error) {
	var status models.MarketStatus
	err := c.do(ctx, http.MethodGet, "/market/status", nil, nil, &status)
	return status, err
}
