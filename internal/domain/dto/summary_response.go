package dto

import "github.com/gmarinho/stocklens/internal/domain/models"

// SummaryResponse is the JSON structure returned by POST /process.
//
// Fields match the API contract and may differ from internal domain
// models. Message is only set when the summary was already cached.
type SummaryResponse struct {
	Ticker    string  `json:"ticker" example:"AAPL"`
	StartDate string  `json:"start_date" example:"2023-01-01"`
	EndDate   string  `json:"end_date" example:"2023-01-31"`
	MaxPrice  float64 `json:"max_price" example:"150.0"`
	MinPrice  float64 `json:"min_price" example:"100.0"`
	MeanPrice float64 `json:"mean_price" example:"125.0"`
	Message   string  `json:"message,omitempty" example:"Data already exists in the database."`
}

// NewSummaryResponse maps a domain summary onto the API contract.
// cached controls whether the "already exists" message is attached.
func NewSummaryResponse(s *models.StockSummary, cached bool) SummaryResponse {
	resp := SummaryResponse{
		Ticker:    s.Ticker,
		StartDate: s.StartDate,
		EndDate:   s.EndDate,
		MaxPrice:  s.MaxPrice,
		MinPrice:  s.MinPrice,
		MeanPrice: s.MeanPrice,
	}
	if cached {
		resp.Message = "Data already exists in the database."
	}
	return resp
}
