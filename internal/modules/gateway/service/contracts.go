package service

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"unwind_bot/internal/models"
)

type orderBooksResponse struct {
	Contracts []models.Contract `json:"contracts"`
}

// GetOrderBooks returns the contract snapshots (with attached signals) for
// the given products, nearest delivery first.
func (c *Client) GetOrderBooks(ctx context.Context, products []string, portfolioID, deliveryArea string, limit int) ([]models.Contract, error) {
	q := url.Values{}
	q.Set("product", strings.Join(products, ","))
	q.Set("portfolio_id", portfolioID)
	q.Set("delivery_area", deliveryArea)
	q.Set("limit", strconv.Itoa(limit))
	q.Set("with_signals", "true")

	var resp orderBooksResponse
	if err := c.do(ctx, http.MethodGet, "/orderbooks", q, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Contracts, nil
}

// GetOrders returns the unsorted public depth of a single contract.
func (c *Client) GetOrders(ctx context.Context, contractID, deliveryArea string) (models.PublicOrderBook, error) {
	q := url.Values{}
	q.Set("delivery_area", deliveryArea)

	var book models.PublicOrderBook
	err := c.do(ctx, http.MethodGet, "/contracts/"+contractID+"/orders", q, nil, &book)
	return book, err
}
