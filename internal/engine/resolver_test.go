package engine

import (
	"testing"

	"unwind_bot/internal/models"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name      string
		imbalance float64
		netPos    float64
		factor    float64
		wantSide  models.Side
		wantAgg   float64
		wantOrig  float64
	}{
		{
			// Excess long unwinds by selling: agg 10*0.9-3=6, orig 10*1.0-9=1.
			name:      "long imbalance sells",
			imbalance: 10, netPos: -3, factor: 1.0,
			wantSide: models.SideSell, wantAgg: 6, wantOrig: 1,
		},
		{
			name:      "short imbalance buys",
			imbalance: -10, netPos: 3, factor: 1.0,
			wantSide: models.SideBuy, wantAgg: 6, wantOrig: 1,
		},
		{
			// agg open -2 and orig open +5 collapse to one aggressive 3 SELL.
			name:      "crossed signs collapse to sell",
			imbalance: 50, netPos: -22, factor: 0.5,
			wantSide: models.SideSell, wantAgg: 3, wantOrig: 0,
		},
		{
			name:      "crossed signs collapse to buy",
			imbalance: -50, netPos: 22, factor: 0.5,
			wantSide: models.SideBuy, wantAgg: 3, wantOrig: 0,
		},
		{
			// Factor at or below 0.1 keeps the aggressor tranche off.
			name:      "first slice is originator only",
			imbalance: 10, netPos: 0, factor: 0.1,
			wantSide: models.SideSell, wantAgg: 0, wantOrig: 1,
		},
		{
			name:      "inactive contract",
			imbalance: 10, netPos: 0, factor: 0.0,
			wantSide: models.SideSell, wantAgg: 0, wantOrig: 0,
		},
		{
			name:      "tiny values round away",
			imbalance: 0.02, netPos: 0, factor: 1.0,
			wantSide: models.SideSell, wantAgg: 0, wantOrig: 0,
		},
		{
			name:      "no signals at all",
			imbalance: 0, netPos: 0, factor: 1.0,
			wantSide: models.SideSell, wantAgg: 0, wantOrig: 0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Resolve(tt.imbalance, tt.netPos, tt.factor)
			if got.Side != tt.wantSide || got.Aggressor != tt.wantAgg || got.Originator != tt.wantOrig {
				t.Errorf("Resolve(%v, %v, %v) = %+v, want side=%s agg=%v orig=%v",
					tt.imbalance, tt.netPos, tt.factor, got, tt.wantSide, tt.wantAgg, tt.wantOrig)
			}
		})
	}
}

func TestResolve_SideAlwaysDetermined(t *testing.T) {
	for _, imbalance := range []float64{-12.3, -1, 0, 0.4, 7, 100} {
		for _, netPos := range []float64{-50, -0.1, 0, 0.1, 50} {
			for _, factor := range []float64{0, 0.1, 0.3, 0.5, 0.9, 1.0} {
				got := Resolve(imbalance, netPos, factor)
				if got.Side != models.SideBuy && got.Side != models.SideSell {
					t.Fatalf("Resolve(%v, %v, %v): side undetermined: %+v", imbalance, netPos, factor, got)
				}
				if got.Aggressor < 0 || got.Originator < 0 {
					t.Fatalf("Resolve(%v, %v, %v): negative quantity: %+v", imbalance, netPos, factor, got)
				}
			}
		}
	}
}

func TestRound1(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{0.04, 0.0},
		{0.05, 0.1},
		{-0.04, 0.0},
		{1.25, 1.3},
		{6.0, 6.0},
	}
	for _, tt := range tests {
		if got := round1(tt.in); got != tt.want {
			t.Errorf("round1(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
