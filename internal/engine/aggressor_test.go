package engine

import (
	"context"
	"testing"

	"unwind_bot/internal/models"
)

type fakeBooks struct {
	book  models.PublicOrderBook
	err   error
	calls int
}

func (f *fakeBooks) GetOrders(_ context.Context, _, _ string) (models.PublicOrderBook, error) {
	f.calls++
	return f.book, f.err
}

func ptr(v float64) *float64 { return &v }

func testContract(bid, ask *float64, values map[string]float64) *models.Contract {
	return &models.Contract{
		ContractID:   "c1",
		BestBidPrice: bid,
		BestAskPrice: ask,
		Signals: []models.Signal{
			{Source: DefaultSignalSource, Value: values},
		},
	}
}

func TestBuildAggressor_BuyWalkRespectsBound(t *testing.T) {
	books := &fakeBooks{book: models.PublicOrderBook{
		Ask: []models.PublicOrderBookEntry{
			{ContractID: "c1", Price: 15, Quantity: 3},
			{ContractID: "c1", Price: 10, Quantity: 1},
			{ContractID: "c1", Price: 12, Quantity: 2},
		},
	}}
	e := New(Config{PortfolioID: "p1", DeliveryArea: "a1", AlgoID: "t"}, books)

	c := testContract(ptr(9), ptr(10), map[string]float64{
		"max_spread": 5,
		"max_price":  12,
	})

	intents, err := e.buildAggressor(context.Background(), c, Tranches{Side: models.SideBuy, Aggressor: 2})
	if err != nil {
		t.Fatalf("buildAggressor: %v", err)
	}
	if len(intents) != 2 {
		t.Fatalf("got %d intents, want 2: %+v", len(intents), intents)
	}
	if intents[0].Price != 10 || intents[0].Quantity != 1 {
		t.Errorf("first intent = %.1f@%.1f, want 1.0@10.0", intents[0].Quantity, intents[0].Price)
	}
	if intents[1].Price != 12 || intents[1].Quantity != 1 {
		t.Errorf("second intent = %.1f@%.1f, want 1.0@12.0", intents[1].Quantity, intents[1].Price)
	}
}

func TestBuildAggressor_SellWalksBidsDownward(t *testing.T) {
	books := &fakeBooks{book: models.PublicOrderBook{
		Bid: []models.PublicOrderBookEntry{
			{ContractID: "c1", Price: 38, Quantity: 5},
			{ContractID: "c1", Price: 40, Quantity: 4},
		},
	}}
	e := New(Config{PortfolioID: "p1"}, books)

	c := testContract(ptr(40), ptr(41), map[string]float64{
		"max_spread": 5,
		"min_price":  39,
	})

	intents, err := e.buildAggressor(context.Background(), c, Tranches{Side: models.SideSell, Aggressor: 6})
	if err != nil {
		t.Fatalf("buildAggressor: %v", err)
	}
	// Only the 40 level is at or above min_price; the 38 level stops the walk.
	if len(intents) != 1 {
		t.Fatalf("got %d intents, want 1: %+v", len(intents), intents)
	}
	if intents[0].Price != 40 || intents[0].Quantity != 4 {
		t.Errorf("intent = %.1f@%.1f, want 4.0@40.0", intents[0].Quantity, intents[0].Price)
	}
}

func TestBuildAggressor_SkipConditions(t *testing.T) {
	tests := []struct {
		name     string
		contract *models.Contract
		book     models.PublicOrderBook
	}{
		{
			name:     "no best bid",
			contract: testContract(nil, ptr(10), map[string]float64{"max_spread": 5, "max_price": 12}),
		},
		{
			name:     "zero spread",
			contract: testContract(ptr(10), ptr(10), map[string]float64{"max_spread": 5, "max_price": 12}),
		},
		{
			name:     "spread too wide",
			contract: testContract(ptr(5), ptr(11), map[string]float64{"max_spread": 5, "max_price": 12}),
		},
		{
			name:     "no max_spread signal",
			contract: testContract(ptr(9), ptr(10), map[string]float64{"max_price": 12}),
		},
		{
			name:     "no price bound signal",
			contract: testContract(ptr(9), ptr(10), map[string]float64{"max_spread": 5}),
		},
		{
			name:     "empty book",
			contract: testContract(ptr(9), ptr(10), map[string]float64{"max_spread": 5, "max_price": 12}),
			book:     models.PublicOrderBook{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			books := &fakeBooks{book: tt.book}
			if tt.book.Ask == nil && tt.book.Bid == nil && tt.name != "empty book" {
				books.book = models.PublicOrderBook{
					Ask: []models.PublicOrderBookEntry{{ContractID: "c1", Price: 10, Quantity: 5}},
				}
			}
			e := New(Config{PortfolioID: "p1"}, books)
			intents, err := e.buildAggressor(context.Background(), tt.contract, Tranches{Side: models.SideBuy, Aggressor: 2})
			if err != nil {
				t.Fatalf("buildAggressor: %v", err)
			}
			if len(intents) != 0 {
				t.Errorf("got %d intents, want 0", len(intents))
			}
		})
	}
}
