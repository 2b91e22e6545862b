package report

import (
	"time"

	"MarketDash/internal/model"
	"MarketDash/internal/registry"
)

// RGB is a 24-bit color used for table styling.
type RGB struct{ R, G, B int }

// Layout constants carried over from the original dashboard design.
var (
	colorHeadline = RGB{0x1F, 0x4E, 0x79} // dark steel blue
	colorBondHead = RGB{0x2E, 0x75, 0xB6}
	colorGoldHead = RGB{0xBF, 0x8F, 0x00}
	colorStripe   = RGB{0xF5, 0xF7, 0xFA}
	colorGoldRow  = RGB{0xFF, 0xF8, 0xE1}
	colorGrid     = RGB{0xD0, 0xD0, 0xD0}
)

const japanYieldNote = "Note: Japan 10-Year yield (~2.10%) sourced from TradingEconomics. " +
	"Yahoo Finance does not provide a reliable JGB ticker."

const disclaimer = "Data source: Yahoo Finance. Returns are price-only approximations. " +
	"Bond yield changes in basis points. This report is auto-generated and not financial advice."

// Cell is one rendered table cell with its display tone.
type Cell struct {
	Text string
	Tone Tone
}

// Table is one titled, styled section of the report.
type Table struct {
	Title      string
	Headers    []string
	Widths     []float64 // column widths in mm
	HeaderFill RGB
	StripeFill RGB
	Rows       [][]Cell
	Note       string // optional small-print note under the table
}

// Document is the fully assembled report, ready for rendering.
type Document struct {
	Title    string
	DateLine string
	TimeLine string
	Tables   []Table
	Footer   string
}

// Assemble arranges the computed row sets into a document: title block,
// one returns table per non-empty asset class, the yield table, the metals
// table, and the disclaimer footer. Empty row sets produce no section.
// Assembly is pure; identical inputs yield identical documents.
func Assemble(equity, crypto, proxies []model.ReturnRow, yields []model.YieldRow, metals []model.MetalRow, now time.Time) *Document {
	doc := &Document{
		Title:    "Daily Market Dashboard",
		DateLine: now.Format("Monday, January 2, 2006"),
		TimeLine: "Generated at " + now.Format("3:04 PM") + " SGT",
		Footer:   disclaimer,
	}

	if len(equity) > 0 {
		doc.Tables = append(doc.Tables, returnsTable("Equity & Sector ETF Returns", equity))
	}
	if len(crypto) > 0 {
		doc.Tables = append(doc.Tables, returnsTable("Cryptocurrency Returns", crypto))
	}
	if len(proxies) > 0 {
		doc.Tables = append(doc.Tables, returnsTable("Gold & Silver ETF Returns", proxies))
	}
	if len(yields) > 0 {
		doc.Tables = append(doc.Tables, yieldTable(yields))
	}
	if len(metals) > 0 {
		doc.Tables = append(doc.Tables, metalTable(metals))
	}
	return doc
}

func returnsTable(title string, rows []model.ReturnRow) Table {
	headers := []string{"Ticker", "Name", "Price"}
	widths := []float64{16, 34, 18}
	for _, w := range registry.Windows {
		headers = append(headers, w.Label)
		widths = append(widths, 16)
	}

	t := Table{
		Title:      title,
		Headers:    headers,
		Widths:     widths,
		HeaderFill: colorHeadline,
		StripeFill: colorStripe,
	}
	for _, r := range rows {
		cells := []Cell{
			{Text: r.Ticker},
			{Text: r.Name},
			{Text: FormatPrice(r.Price)},
		}
		for _, w := range registry.Windows {
			c := r.Changes[w.Label]
			cells = append(cells, Cell{Text: FormatPct(c), Tone: ToneOf(c)})
		}
		t.Rows = append(t.Rows, cells)
	}
	return t
}

func yieldTable(rows []model.YieldRow) Table {
	t := Table{
		Title:      "US Treasury & Japan Bond Yields",
		Headers:    []string{"Maturity", "Yield", "1D (bps)", "1W (bps)", "1M (bps)"},
		Widths:     []float64{34, 26, 26, 26, 26},
		HeaderFill: colorBondHead,
		StripeFill: colorStripe,
		Note:       japanYieldNote,
	}
	for _, r := range rows {
		t.Rows = append(t.Rows, []Cell{
			{Text: r.Maturity},
			{Text: FormatYield(r.Yield)},
			{Text: FormatBps(r.DayBps), Tone: ToneOfValue(r.DayBps)},
			{Text: FormatBps(r.WeekBps), Tone: ToneOfValue(r.WeekBps)},
			{Text: FormatBps(r.MonthBps), Tone: ToneOfValue(r.MonthBps)},
		})
	}
	return t
}

func metalTable(rows []model.MetalRow) Table {
	t := Table{
		Title:      "Precious Metals — 24hr Spot Price Moves",
		Headers:    []string{"Metal", "Spot (USD/oz)", "24hr Chg", "24hr %"},
		Widths:     []float64{30, 38, 30, 30},
		HeaderFill: colorGoldHead,
		StripeFill: colorGoldRow,
	}
	for _, r := range rows {
		t.Rows = append(t.Rows, []Cell{
			{Text: r.Name},
			{Text: FormatPrice(r.Spot)},
			{Text: FormatSigned(r.Change), Tone: ToneOfValue(r.Change)},
			{Text: FormatSignedPct(r.ChangePct), Tone: ToneOfValue(r.ChangePct)},
		})
	}
	return t
}
