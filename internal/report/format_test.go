package report

import (
	"math"
	"strconv"
	"strings"
	"testing"

	"MarketDash/internal/model"
)

func TestFormatPct(t *testing.T) {
	tests := []struct {
		change model.Change
		want   string
	}{
		{model.Change{Value: 0.0123, Valid: true}, "+1.23%"},
		{model.Change{Value: -0.0045, Valid: true}, "-0.45%"},
		{model.Change{Value: 0, Valid: true}, "+0.00%"},
		{model.Change{Value: 1.5, Valid: true}, "+150.00%"},
		{model.Change{}, Placeholder},
	}
	for _, tt := range tests {
		if got := FormatPct(tt.change); got != tt.want {
			t.Errorf("FormatPct(%+v): expected %q, got %q", tt.change, tt.want, got)
		}
	}
}

func TestFormatPct_RoundTrip(t *testing.T) {
	// Parsing a rendered percentage recovers the fraction to the displayed
	// two-decimal precision.
	for _, v := range []float64{0.122448979, -0.0375, 0.0001, -1.25, 0} {
		s := FormatPct(model.Change{Value: v, Valid: true})
		parsed, err := strconv.ParseFloat(strings.TrimSuffix(strings.TrimPrefix(s, "+"), "%"), 64)
		if err != nil {
			t.Fatalf("parse %q: %v", s, err)
		}
		want := math.Round(v*10000) / 100 // percent, 2 decimals
		if math.Abs(parsed-want) > 1e-9 {
			t.Errorf("round trip %q: expected %.2f, got %.2f", s, want, parsed)
		}
	}
}

func TestToneOf(t *testing.T) {
	tests := []struct {
		change model.Change
		want   Tone
	}{
		{model.Change{Value: 0.05, Valid: true}, TonePositive},
		{model.Change{Value: 0, Valid: true}, TonePositive}, // zero reads as gain
		{model.Change{Value: -0.02, Valid: true}, ToneNegative},
		{model.Change{}, ToneNeutral},
	}
	for _, tt := range tests {
		if got := ToneOf(tt.change); got != tt.want {
			t.Errorf("ToneOf(%+v): expected %v, got %v", tt.change, tt.want, got)
		}
	}
}

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{98.7, "$98.70"},
		{1234.5, "$1,234.50"},
		{2450123.456, "$2,450,123.46"},
	}
	for _, tt := range tests {
		if got := FormatPrice(tt.in); got != tt.want {
			t.Errorf("FormatPrice(%v): expected %q, got %q", tt.in, tt.want, got)
		}
	}
}

func TestFormatSigned(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{40, "+40.00"},
		{-1234.56, "-1,234.56"},
		{0, "+0.00"},
	}
	for _, tt := range tests {
		if got := FormatSigned(tt.in); got != tt.want {
			t.Errorf("FormatSigned(%v): expected %q, got %q", tt.in, tt.want, got)
		}
	}
}

func TestFormatBps(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{2.0000000000000018, "+2"},
		{-15.4, "-15"},
		{0, "+0"},
	}
	for _, tt := range tests {
		if got := FormatBps(tt.in); got != tt.want {
			t.Errorf("FormatBps(%v): expected %q, got %q", tt.in, tt.want, got)
		}
	}
}

func TestFormatYield(t *testing.T) {
	if got := FormatYield(4.252); got != "4.25%" {
		t.Errorf("expected 4.25%%, got %q", got)
	}
}
