package calculator

import (
	"MarketDash/internal/model"
	"MarketDash/internal/registry"
)

// ComputeSpotMoves derives a MetalRow per metal from the two most recent
// observations: absolute change = last - previous, percentage change =
// absolute / previous * 100. Metals with fewer than 2 observations are
// omitted. Output follows the entry list order.
func ComputeSpotMoves(closes map[string][]model.ClosePoint, entries []registry.Entry) []model.MetalRow {
	rows := make([]model.MetalRow, 0, len(entries))
	for _, e := range entries {
		series := closes[e.Symbol]
		if len(series) < 2 {
			continue
		}
		current := series[len(series)-1].Close
		prev := series[len(series)-2].Close
		chg := current - prev
		row := model.MetalRow{Name: e.Name, Spot: current, Change: chg}
		if prev != 0 {
			row.ChangePct = chg / prev * 100
		}
		rows = append(rows, row)
	}
	return rows
}
