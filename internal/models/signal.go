package models

// SourcePosition marks the dedicated long/short position signal; all other
// sources carry a free-form key/value map.
const SourcePosition = "POSITION"

type Signal struct {
	Source        string             `json:"source"`
	Value         map[string]float64 `json:"value,omitempty"`
	PositionLong  float64            `json:"position_long,omitempty"`
	PositionShort float64            `json:"position_short,omitempty"`
}

// BulkSignal is the submission form consumed by the gateway's update_signals
// endpoint; delivery times pin the signal to a contract.
type BulkSignal struct {
	Source        string             `json:"source"`
	DeliveryStart string             `json:"delivery_start"`
	DeliveryEnd   string             `json:"delivery_end"`
	PortfolioIDs  []string           `json:"portfolio_ids"`
	DeliveryAreas []string           `json:"delivery_areas"`
	Value         map[string]float64 `json:"value,omitempty"`
	PositionLong  float64            `json:"position_long,omitempty"`
	PositionShort float64            `json:"position_short,omitempty"`
}
