package marketdata

import (
	"context"

	"github.com/gmarinho/stocklens/internal/domain/models"
)

// Provider fetches a daily closing-price series for a ticker between
// two ISO dates (inclusive start, inclusive end). An empty slice with
// a nil error means the provider had no data for the range.
type Provider interface {
	FetchDailyCloses(ctx context.Context, ticker, startDate, endDate string) ([]models.PriceBar, error)
}
