package model

import "time"

// ClosePoint is a single daily adjusted-close observation.
type ClosePoint struct {
	Time  time.Time
	Close float64
}

// Change is a fractional price return over one lookback window.
// Valid is false when the series is too short to cover the window.
type Change struct {
	Value float64
	Valid bool
}

// ReturnRow holds the computed trailing returns for one symbol.
type ReturnRow struct {
	Ticker  string
	Name    string
	Price   float64
	Changes map[string]Change // keyed by window label ("1D", "1W", ...)
}

// YieldRow holds a bond maturity's current level and its changes in basis points.
type YieldRow struct {
	Maturity string
	Yield    float64 // level in percentage points
	DayBps   float64
	WeekBps  float64
	MonthBps float64
}

// MetalRow holds a metal's spot price and its 24h move.
type MetalRow struct {
	Name      string
	Spot      float64
	Change    float64
	ChangePct float64
}

// RunRecord summarizes one completed report run for the recorder.
type RunRecord struct {
	EquityRows int
	CryptoRows int
	ProxyRows  int
	BondRows   int
	MetalRows  int
	ReportPath string
	Emailed    bool
	Duration   time.Duration
}
