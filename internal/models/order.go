package models

import "time"

type Side string

const (
	SideBuy  Side = "BUY"
	SideSell Side = "SELL"
)

// OwnOrder is one of our resting orders as the gateway reports it. RevisionNo
// changes whenever the exchange mutates the order (partial fill); a stale
// revision invalidates a pending modification.
type OwnOrder struct {
	OrderID    string  `json:"order_id"`
	RevisionNo int64   `json:"revision_no"`
	ContractID string  `json:"contract_id"`
	Side       Side    `json:"side"`
	Quantity   float64 `json:"quantity"`
	Price      float64 `json:"price"`
	Txt        string  `json:"txt,omitempty"`
}

// PublicOrderBookEntry is one resting price level of the public depth.
type PublicOrderBookEntry struct {
	ContractID string  `json:"contract_id"`
	Price      float64 `json:"price"`
	Quantity   float64 `json:"quantity"`
}

type PublicOrderBook struct {
	Bid []PublicOrderBookEntry `json:"bid"`
	Ask []PublicOrderBookEntry `json:"ask"`
}

// Order roles stored in the txt tag of every order the engine places.
const (
	RoleAggressor  = "aggressor"
	RoleOriginator = "originator"
)

// OrderTag is JSON-encoded into OrderIntent.Txt for traceability.
type OrderTag struct {
	Type   string `json:"type"`
	AlgoID string `json:"algo_id"`
}

// OrderIntent is the engine's output: created during one run, submitted in a
// single batch at run end, never mutated afterwards by the engine.
type OrderIntent struct {
	ContractID       string  `json:"contract_id"`
	PortfolioID      string  `json:"portfolio_id"`
	DeliveryArea     string  `json:"delivery_area"`
	ClearingAcctType string  `json:"clearing_acct_type"`
	ExecRestriction  string  `json:"ordr_exe_restriction"`
	ValidityRes      string  `json:"validity_res"`
	State            string  `json:"state"`
	Side             Side    `json:"side"`
	Quantity         float64 `json:"quantity"`
	Price            float64 `json:"price"`
	Txt              string  `json:"txt,omitempty"`
}

// Run outcomes persisted to the audit trail.
const (
	RunOutcomeOK         = "ok"
	RunOutcomeMarketDown = "market_down"
	RunOutcomeFailed     = "failed"
)

// RunReport summarizes one completed (or failed) engine run.
type RunReport struct {
	StartedAt    time.Time     `json:"started_at"`
	FinishedAt   time.Time     `json:"finished_at"`
	Attempts     int           `json:"attempts"`
	Outcome      string        `json:"outcome"`
	Error        string        `json:"error,omitempty"`
	OrdersPlaced int           `json:"orders_placed"`
	Intents      []OrderIntent `json:"intents,omitempty"`
}
