package models

import "time"

// StockSummary is one cached aggregation of closing prices for a
// (ticker, start_date, end_date) key. The key is unique in the stock
// table, so each distinct request range is computed at most once.
//
// Dates are kept as ISO strings ("2006-01-02") because they are part
// of the cache key, not a queryable time axis.
//
// swagger:model StockSummary
type StockSummary struct {
	ID        int64   `json:"id" example:"1"`
	Ticker    string  `json:"ticker" example:"AAPL"`
	StartDate string  `json:"start_date" example:"2023-01-01"`
	EndDate   string  `json:"end_date" example:"2023-01-31"`
	MaxPrice  float64 `json:"max_price" example:"150.0"`
	MinPrice  float64 `json:"min_price" example:"100.0"`
	MeanPrice float64 `json:"mean_price" example:"125.0"`
}

// PriceBar is a single day of provider data. Only the closing price
// participates in the summary aggregation.
type PriceBar struct {
	Date  time.Time
	Close float64
}
