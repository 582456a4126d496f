package dto

import (
	"testing"

	"github.com/gmarinho/stocklens/internal/domain/models"
)

func TestNewSummaryResponse(t *testing.T) {
	s := &models.StockSummary{
		ID:        7,
		Ticker:    "AAPL",
		StartDate: "2023-01-01",
		EndDate:   "2023-01-31",
		MaxPrice:  150,
		MinPrice:  100,
		MeanPrice: 125,
	}

	fresh := NewSummaryResponse(s, false)
	if fresh.Message != "" {
		t.Fatalf("fresh summary should have no message, got %q", fresh.Message)
	}
	if fresh.Ticker != "AAPL" || fresh.MaxPrice != 150 || fresh.MinPrice != 100 || fresh.MeanPrice != 125 {
		t.Fatalf("unexpected response: %+v", fresh)
	}

	cached := NewSummaryResponse(s, true)
	if cached.Message != "Data already exists in the database." {
		t.Fatalf("cached summary missing message, got %q", cached.Message)
	}
}
