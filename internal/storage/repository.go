package storage

import (
	"database/sql"

	"github.com/gmarinho/stocklens/internal/domain/models"
)

// SummaryRepository defines the contract for DB operations on the
// stock summary cache.
type SummaryRepository interface {
	EnsureSchema() error
	FindSummary(ticker, startDate, endDate string) (*models.StockSummary, error)
	InsertSummary(s *models.StockSummary) (int64, error)
	ListSummaries() ([]models.StockSummary, error)
	DeleteSummary(id int64) error
}

type summaryRepository struct {
	db *sql.DB
}

func NewSummaryRepository(db *sql.DB) SummaryRepository {
	return &summaryRepository{db: db}
}

// EnsureSchema creates the stock table if it does not exist. The
// unique constraint on (ticker, start_date, end_date) is what makes
// the table act as a cache: a second insert for the same key fails.
func (r *summaryRepository) EnsureSchema() error {
	_, err := r.db.Exec(`
		CREATE TABLE IF NOT EXISTS stock (
			id BIGSERIAL PRIMARY KEY,
			ticker TEXT NOT NULL,
			start_date TEXT NOT NULL,
			end_date TEXT NOT NULL,
			max_price DOUBLE PRECISION NOT NULL,
			min_price DOUBLE PRECISION NOT NULL,
			mean_price DOUBLE PRECISION NOT NULL,
			UNIQUE (ticker, start_date, end_date)
		)`)
	return err
}

// FindSummary performs the exact-match cache lookup. A miss is not an
// error: it returns (nil, nil).
func (r *summaryRepository) FindSummary(ticker, startDate, endDate string) (*models.StockSummary, error) {
	var s models.StockSummary
	err := r.db.QueryRow(`
		SELECT id, ticker, start_date, end_date, max_price, min_price, mean_price
		FROM stock
		WHERE ticker = $1 AND start_date = $2 AND end_date = $3`,
		ticker, startDate, endDate,
	).Scan(&s.ID, &s.Ticker, &s.StartDate, &s.EndDate, &s.MaxPrice, &s.MinPrice, &s.MeanPrice)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// InsertSummary stores a freshly computed summary and returns its id.
// A duplicate key violates the unique constraint and surfaces as an
// error from the driver.
func (r *summaryRepository) InsertSummary(s *models.StockSummary) (int64, error) {
	var id int64
	err := r.db.QueryRow(`
		INSERT INTO stock (ticker, start_date, end_date, max_price, min_price, mean_price)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`,
		s.Ticker, s.StartDate, s.EndDate, s.MaxPrice, s.MinPrice, s.MeanPrice,
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

// ListSummaries returns all cached summaries, most recent first.
func (r *summaryRepository) ListSummaries() ([]models.StockSummary, error) {
	rows, err := r.db.Query(`
		SELECT id, ticker, start_date, end_date, max_price, min_price, mean_price
		FROM stock
		ORDER BY id DESC`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []models.StockSummary
	for rows.Next() {
		var s models.StockSummary
		if err := rows.Scan(&s.ID, &s.Ticker, &s.StartDate, &s.EndDate, &s.MaxPrice, &s.MinPrice, &s.MeanPrice); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// DeleteSummary removes a summary by id. Deleting an id that does not
// exist is not an error.
func (r *summaryRepository) DeleteSummary(id int64) error {
	_, err := r.db.Exec(`DELETE FROM stock WHERE id = $1`, id)
	return err
}
