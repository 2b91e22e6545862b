package calculator

import (
	"MarketDash/internal/model"
	"MarketDash/internal/registry"
)

// ComputeReturns derives a ReturnRow per symbol from its close series.
//
// A window of k trading days is satisfied when the series holds more than k
// observations; the return is the simple fraction (latest - past) / past
// against the close k rows before the latest. Shorter series leave the
// window's change marked unavailable. Symbols absent from closes or with
// fewer than 2 observations are omitted entirely. Output follows the entry
// list order.
func ComputeReturns(closes map[string][]model.ClosePoint, entries []registry.Entry, windows []registry.Window) []model.ReturnRow {
	rows := make([]model.ReturnRow, 0, len(entries))
	for _, e := range entries {
		series := closes[e.Symbol]
		if len(series) < 2 {
			continue
		}
		latest := series[len(series)-1].Close
		row := model.ReturnRow{
			Ticker:  e.Symbol,
			Name:    e.Name,
			Price:   latest,
			Changes: make(map[string]model.Change, len(windows)),
		}
		for _, w := range windows {
			if len(series) > w.Days {
				past := series[len(series)-1-w.Days].Close
				if past != 0 {
					row.Changes[w.Label] = model.Change{Value: (latest - past) / past, Valid: true}
					continue
				}
			}
			row.Changes[w.Label] = model.Change{}
		}
		rows = append(rows, row)
	}
	return rows
}
