package collector

import (
	"fmt"
	"log"
	"time"

	"MarketDash/internal/model"
)

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	Series map[string][]model.ClosePoint
	Errs   map[string]error
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchDailyCloses(symbol, _ string) ([]model.ClosePoint, error) {
	if err, ok := m.Errs[symbol]; ok {
		return nil, err
	}
	if s, ok := m.Series[symbol]; ok {
		return s, nil
	}
	return nil, fmt.Errorf("mock: no data for %s", symbol)
}

// MockSeries builds an ascending daily series from plain close values,
// ending today.
func MockSeries(closes ...float64) []model.ClosePoint {
	points := make([]model.ClosePoint, len(closes))
	for i, c := range closes {
		points[i] = model.ClosePoint{
			Time:  time.Now().AddDate(0, 0, -(len(closes) - 1 - i)),
			Close: c,
		}
	}
	return points
}

// Collector fetches close series for symbol batches, one blocking
// round-trip at a time.
type Collector struct {
	Fetcher Fetcher
}

// NewCollector creates a new Collector.
func NewCollector(fetcher Fetcher) *Collector {
	return &Collector{Fetcher: fetcher}
}

// FetchCloses fetches a daily close series per symbol over the given period.
// A failed fetch is logged and the symbol omitted from the result; the
// calculators then simply produce fewer rows.
func (c *Collector) FetchCloses(symbols []string, period string) map[string][]model.ClosePoint {
	out := make(map[string][]model.ClosePoint, len(symbols))
	for _, sym := range symbols {
		points, err := c.Fetcher.FetchDailyCloses(sym, period)
		if err != nil {
			log.Printf("[WARN] fetch %s: %v", sym, err)
			continue
		}
		out[sym] = points
	}
	return out
}
