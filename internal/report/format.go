package report

import (
	"fmt"
	"strings"

	"MarketDash/internal/model"
)

// Tone categorizes a numeric cell for display emphasis.
type Tone int

const (
	ToneNeutral Tone = iota
	TonePositive
	ToneNegative
)

// Placeholder rendered for unavailable metrics.
const Placeholder = "—" // em dash

// ToneOf maps a change to its display tone. Unavailable changes are neutral;
// zero counts as positive, matching the original report's coloring.
func ToneOf(c model.Change) Tone {
	if !c.Valid {
		return ToneNeutral
	}
	if c.Value >= 0 {
		return TonePositive
	}
	return ToneNegative
}

// ToneOfValue maps a plain signed value to its display tone.
func ToneOfValue(v float64) Tone {
	if v >= 0 {
		return TonePositive
	}
	return ToneNegative
}

// FormatPct renders a fractional change as a signed percentage with two
// decimals ("+1.23%"), or the placeholder when unavailable.
func FormatPct(c model.Change) string {
	if !c.Valid {
		return Placeholder
	}
	return fmt.Sprintf("%+.2f%%", c.Value*100)
}

// FormatPrice renders a price as USD with thousands separators.
func FormatPrice(v float64) string {
	return "$" + addCommas(fmt.Sprintf("%.2f", v))
}

// FormatSigned renders an absolute move with an explicit sign and separators.
func FormatSigned(v float64) string {
	s := addCommas(fmt.Sprintf("%.2f", v))
	if v >= 0 {
		return "+" + s
	}
	return s
}

// FormatSignedPct renders a percentage-point value with an explicit sign.
func FormatSignedPct(v float64) string {
	return fmt.Sprintf("%+.2f%%", v)
}

// FormatYield renders a yield level in percentage points.
func FormatYield(v float64) string {
	return fmt.Sprintf("%.2f%%", v)
}

// FormatBps renders a basis-point move with an explicit sign and no decimals.
func FormatBps(v float64) string {
	return fmt.Sprintf("%+.0f", v)
}

func addCommas(s string) string {
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	integer, frac, hasFrac := strings.Cut(s, ".")
	var b strings.Builder
	for i, c := range integer {
		if i > 0 && (len(integer)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(c)
	}
	out := b.String()
	if hasFrac {
		out += "." + frac
	}
	if neg {
		return "-" + out
	}
	return out
}
