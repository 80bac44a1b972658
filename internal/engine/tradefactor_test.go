package engine

import (
	"testing"
	"time"
)

func TestTradeFactor(t *testing.T) {
	tests := []struct {
		name string
		ttd  time.Duration
		want float64
	}{
		{"in delivery", -10 * time.Minute, 1.0},
		{"at offset", 30 * time.Minute, 1.0},
		{"below offset", 20 * time.Minute, 1.0},
		{"first slot", 44 * time.Minute, 1.0},
		{"one completed slot", 45 * time.Minute, 0.9},
		{"one hour", time.Hour, 0.8},
		{"two hours", 2 * time.Hour, 0.4},
		{"last step", 2*time.Hour + 45*time.Minute, 0.1},
		{"just inside window", 2*time.Hour + 59*time.Minute, 0.1},
		{"at window", 3 * time.Hour, 0.0},
		{"beyond window", 4 * time.Hour, 0.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TradeFactor(tt.ttd); got != tt.want {
				t.Errorf("TradeFactor(%s) = %v, want %v", tt.ttd, got, tt.want)
			}
		})
	}
}

func TestTradeFactor_Staircase(t *testing.T) {
	// Non-increasing in time-to-delivery, stepping by exactly 0.1 on
	// 15-minute boundaries.
	prev := TradeFactor(0)
	for m := 1; m <= 240; m++ {
		got := TradeFactor(time.Duration(m) * time.Minute)
		if got > prev {
			t.Fatalf("factor increased at %dm: %v -> %v", m, prev, got)
		}
		if diff := prev - got; diff > 0.1+1e-9 {
			t.Fatalf("factor stepped by more than 0.1 at %dm: %v -> %v", m, prev, got)
		}
		prev = got
	}
}
