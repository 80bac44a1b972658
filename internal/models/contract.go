package models

import "time"

// Contract — immutable order-book snapshot for one delivery period,
// fetched once per run together with the signals attached to it.
type Contract struct {
	ContractID    string    `json:"contract_id"`
	Name          string    `json:"name"`
	Product       string    `json:"product"`
	DeliveryStart time.Time `json:"delivery_start"`
	DeliveryEnd   time.Time `json:"delivery_end"`

	BestBidPrice *float64 `json:"best_bid_price,omitempty"`
	BestAskPrice *float64 `json:"best_ask_price,omitempty"`

	PortfolioInformation []PortfolioInfo `json:"portfolio_information"`
	Signals              []Signal        `json:"signals"`
}

type PortfolioInfo struct {
	PortfolioID string  `json:"portfolio_id"`
	NetPos      float64 `json:"net_pos"`
	AbsPos      float64 `json:"abs_pos"`
}

// NetPos returns the already-traded quantity for the portfolio, 0 when the
// contract carries no information for it.
func (c *Contract) NetPos(portfolioID string) float64 {
	for _, pi := range c.PortfolioInformation {
		if pi.PortfolioID == portfolioID {
			return pi.NetPos
		}
	}
	return 0
}

// Spread returns best ask minus best bid; ok is false when either side of the
// touch is missing.
func (c *Contract) Spread() (float64, bool) {
	if c.BestAskPrice == nil || c.BestBidPrice == nil {
		return 0, false
	}
	return *c.BestAskPrice - *c.BestBidPrice, true
}

type MarketStatus struct {
	Status string `json:"status"`
}

// StatusOK is the only market status under which a run may trade.
const StatusOK = "OK"
