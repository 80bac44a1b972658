package service

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"unwind_bot/internal/models"
)

// Order modification actions accepted by the gateway.
const (
	ActionModify     = "MODI"
	ActionDelete     = "DELE"
	ActionActivate   = "ACTI"
	ActionDeactivate = "HIBE"
)

type OrderModify struct {
	RevisionNo int64   `json:"revision_no"`
	Action     string  `json:"action"`
	Quantity   float64 `json:"quantity,omitempty"`
	Price      float64 `json:"price,omitempty"`
}

type orderModifyBatchItem struct {
	OrderID string `json:"order_id"`
	OrderModify
}

// GetOwnOrders returns one page of our open orders for the portfolio and
// delivery area. The gateway caps limit at 500; a short page means there is
// no next page.
func (c *Client) GetOwnOrders(ctx context.Context, portfolioID, deliveryArea string, offset, limit int) ([]models.OwnOrder, error) {
	q := url.Values{}
	q.Set("portfolio_id", portfolioID)
	q.Set("delivery_area", deliveryArea)
	q.Set("offset", strconv.Itoa(offset))
	q.Set("limit", strconv.Itoa(limit))

	var orders []models.OwnOrder
	if err := c.do(ctx, http.MethodGet, "/orders/own", q, nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (c *Client) ModifyOrder(ctx context.Context, orderID string, mod OrderModify) error {
	return c.do(ctx, http.MethodPost, "/orders/"+orderID+"/modifications", nil, mod, nil)
}

func (c *Client) ModifyOrders(ctx context.Context, mods map[string]OrderModify) error {
	batch := make([]orderModifyBatchItem, 0, len(mods))
	for id, mod := range mods {
		batch = append(batch, orderModifyBatchItem{OrderID: id, OrderModify: mod})
	}
	return c.do(ctx, http.MethodPost, "/orders/modifications", nil, batch, nil)
}

// DeleteOrder pulls one of our resting orders. A stale revision or an order
// already gone comes back as ErrOutdated.
func (c *Client) DeleteOrder(ctx context.Context, orderID string, revisionNo int64) error {
	return c.ModifyOrder(ctx, orderID, OrderModify{RevisionNo: revisionNo, Action: ActionDelete})
}

// AddOrders submits the run's intents in one bulk request.
func (c *Client) AddOrders(ctx context.Context, intents []models.OrderIntent) error {
	return c.do(ctx, http.MethodPost, "/orders", nil, intents, nil)
}
