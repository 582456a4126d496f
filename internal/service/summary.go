package service

import (
	"context"
	"errors"

	"github.com/gmarinho/stocklens/internal/domain/models"
	"github.com/gmarinho/stocklens/internal/logger"
	"github.com/gmarinho/stocklens/internal/marketdata"
	"github.com/gmarinho/stocklens/internal/storage"
)

// ErrNoData is returned when the provider has no closing prices for
// the requested ticker and date range.
var ErrNoData = errors.New("no data found for the given ticker and date range")

// SummaryService defines business logic for the lookup-or-compute
// flow and the history operations.
type SummaryService interface {
	// GetOrCreateSummary returns the summary for the key, computing
	// and caching it on a miss. The bool reports whether the value
	// came from the cache.
	GetOrCreateSummary(ctx context.Context, ticker, startDate, endDate string) (*models.StockSummary, bool, error)
	History(ctx context.Context) ([]models.StockSummary, error)
	Delete(ctx context.Context, id int64) error
}

type summaryService struct {
	repo     storage.SummaryRepository
	provider marketdata.Provider
}

func NewSummaryService(repo storage.SummaryRepository, provider marketdata.Provider) SummaryService {
	return &summaryService{repo: repo, provider: provider}
}

func (s *summaryService) GetOrCreateSummary(ctx context.Context, ticker, startDate, endDate string) (*models.StockSummary, bool, error) {
	existing, err := s.repo.FindSummary(ticker, startDate, endDate)
	if err != nil {
		return nil, false, err
	}
	if existing != nil {
		return existing, true, nil
	}

	bars, err := s.provider.FetchDailyCloses(ctx, ticker, startDate, endDate)
	if err != nil {
		return nil, false, err
	}
	if len(bars) == 0 {
		return nil, false, ErrNoData
	}

	summary := &models.StockSummary{
		Ticker:    ticker,
		StartDate: startDate,
		EndDate:   endDate,
		MaxPrice:  maxClose(bars),
		MinPrice:  minClose(bars),
		MeanPrice: meanClose(bars),
	}

	// Two concurrent misses for the same key can both reach this
	// insert; the unique constraint fails the loser and the error is
	// surfaced as-is.
	id, err := s.repo.InsertSummary(summary)
	if err != nil {
		return nil, false, err
	}
	summary.ID = id

	logger.L().Info().
		Str("ticker", ticker).
		Str("start_date", startDate).
		Str("end_date", endDate).
		Int("bars", len(bars)).
		Msg("summary computed and cached")

	return summary, false, nil
}

func (s *summaryService) History(_ context.Context) ([]models.StockSummary, error) {
	return s.repo.ListSummaries()
}

func (s *summaryService) Delete(_ context.Context, id int64) error {
	return s.repo.DeleteSummary(id)
}

func maxClose(bars []models.PriceBar) float64 {
	m := bars[0].Close
	for _, b := range bars[1:] {
		if b.Close > m {
			m = b.Close
		}
	}
	return m
}

func minClose(bars []models.PriceBar) float64 {
	m := bars[0].Close
	for _, b := range bars[1:] {
		if b.Close < m {
			m = b.Close
		}
	}
	return m
}

func meanClose(bars []models.PriceBar) float64 {
	var sum float64
	for _, b := range bars {
		sum += b.Close
	}
	return sum / float64(len(bars))
}
