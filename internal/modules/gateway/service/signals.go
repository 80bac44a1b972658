package service

import (
	"context"
	"net/http"

	"unwind_bot/internal/models"
)

// UpdateSignals uploads position and valuation signals; the gateway matches
// them to contracts by delivery period.
func (c *Client) UpdateSignals(ctx context.Context, signals []models.BulkSignal) error {
	return c.do(ctx, http.MethodPost, "/signals", nil, signals, nil)
}
