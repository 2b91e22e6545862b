package calculator

import "MarketDash/internal/model"

// Fixed maturities emitted as change rows, in table order. The 2-year is
// prepended separately when its series is available; the 3-month T-bill is
// tracked raw but never emitted.
var yieldMaturities = []struct {
	Symbol string
	Label  string
}{
	{"^TNX", "US 10-Year"},
	{"^TYX", "US 30-Year"},
}

const twoYearSymbol = "2YY=F"

// ComputeYieldChanges derives a YieldRow per available maturity. Yield levels
// are quoted in percentage points, so a level delta times 100 is a move in
// basis points. Changes default to 0 when the series is too short for the
// window; maturities with fewer than 2 observations are omitted entirely.
func ComputeYieldChanges(closes map[string][]model.ClosePoint) []model.YieldRow {
	rows := make([]model.YieldRow, 0, len(yieldMaturities)+1)
	for _, m := range yieldMaturities {
		if row, ok := yieldRow(closes[m.Symbol], m.Label); ok {
			rows = append(rows, row)
		}
	}
	if row, ok := yieldRow(closes[twoYearSymbol], "US 2-Year"); ok {
		rows = append([]model.YieldRow{row}, rows...)
	}
	return rows
}

func yieldRow(series []model.ClosePoint, label string) (model.YieldRow, bool) {
	if len(series) < 2 {
		return model.YieldRow{}, false
	}
	last := series[len(series)-1].Close
	return model.YieldRow{
		Maturity: label,
		Yield:    last,
		DayBps:   bpsChange(series, 1),
		WeekBps:  bpsChange(series, 5),
		MonthBps: bpsChange(series, 21),
	}, true
}

// bpsChange returns the level move over back observations in basis points,
// or 0 when the series is too short.
func bpsChange(series []model.ClosePoint, back int) float64 {
	if len(series) <= back {
		return 0
	}
	last := series[len(series)-1].Close
	past := series[len(series)-1-back].Close
	return (last - past) * 100
}
