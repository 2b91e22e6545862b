package collector

import "MarketDash/internal/model"

// Fetcher defines the interface for fetching market data.
type Fetcher interface {
	// FetchDailyCloses returns the daily adjusted-close series for one
	// symbol over a Yahoo period string ("5d", "1mo", "1y", "5y", ...),
	// ascending by date.
	FetchDailyCloses(symbol, period string) ([]model.ClosePoint, error)
	Name() string
}
