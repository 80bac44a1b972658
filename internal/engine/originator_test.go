package engine

import (
	"strings"
	"testing"

	"unwind_bot/internal/models"
)

func TestBuildOriginator(t *testing.T) {
	tests := []struct {
		name      string
		contract  *models.Contract
		side      models.Side
		wantPrice float64
		wantOK    bool
	}{
		{
			name:      "sell one margin under best ask",
			contract:  testContract(ptr(40), ptr(41), map[string]float64{"margin": 0.5, "min_price": 35}),
			side:      models.SideSell,
			wantPrice: 40.5,
			wantOK:    true,
		},
		{
			name:      "sell clamped to min price",
			contract:  testContract(ptr(40), ptr(41), map[string]float64{"margin": 10, "min_price": 35}),
			side:      models.SideSell,
			wantPrice: 35,
			wantOK:    true,
		},
		{
			name:      "buy one margin over best bid",
			contract:  testContract(ptr(40), ptr(41), map[string]float64{"margin": 0.5, "max_price": 45}),
			side:      models.SideBuy,
			wantPrice: 40.5,
			wantOK:    true,
		},
		{
			name:      "buy clamped to max price",
			contract:  testContract(ptr(44.8), ptr(46), map[string]float64{"margin": 0.5, "max_price": 45}),
			side:      models.SideBuy,
			wantPrice: 45,
			wantOK:    true,
		},
		{
			name:      "empty touch falls back to fair value",
			contract:  testContract(nil, nil, map[string]float64{"margin": 0.5, "fair_value": 42}),
			side:      models.SideBuy,
			wantPrice: 42,
			wantOK:    true,
		},
		{
			name:     "no touch and no fair value",
			contract: testContract(nil, nil, map[string]float64{"margin": 0.5}),
			side:     models.SideSell,
			wantOK:   false,
		},
		{
			name:      "missing margin means zero margin",
			contract:  testContract(ptr(40), ptr(41), map[string]float64{"min_price": 35}),
			side:      models.SideSell,
			wantPrice: 41,
			wantOK:    true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := New(Config{PortfolioID: "p1", AlgoID: "t"}, nil)
			intent, ok := e.buildOriginator(tt.contract, Tranches{Side: tt.side, Originator: 1.5})
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if intent.Price != tt.wantPrice {
				t.Errorf("price = %v, want %v", intent.Price, tt.wantPrice)
			}
			if intent.Quantity != 1.5 {
				t.Errorf("quantity = %v, want 1.5", intent.Quantity)
			}
			if !strings.Contains(intent.Txt, models.RoleOriginator) {
				t.Errorf("txt tag %q does not carry the originator role", intent.Txt)
			}
		})
	}
}
