package calculator

import (
	"math"
	"testing"

	"MarketDash/internal/collector"
	"MarketDash/internal/model"
	"MarketDash/internal/registry"
)

func TestComputeSpotMoves(t *testing.T) {
	closes := map[string][]model.ClosePoint{
		"GC=F": collector.MockSeries(2400, 2410, 2450),
		"SI=F": collector.MockSeries(30.00, 29.40),
	}
	entries := []registry.Entry{
		{Symbol: "GC=F", Name: "Gold"},
		{Symbol: "SI=F", Name: "Silver"},
	}

	rows := ComputeSpotMoves(closes, entries)
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}

	gold := rows[0]
	if gold.Name != "Gold" {
		t.Errorf("expected Gold first, got %s", gold.Name)
	}
	if math.Abs(gold.Change-40) > 1e-9 {
		t.Errorf("expected +40 gold change, got %.4f", gold.Change)
	}
	if math.Abs(gold.ChangePct-40.0/2410*100) > 1e-9 {
		t.Errorf("unexpected gold pct change %.4f", gold.ChangePct)
	}

	silver := rows[1]
	if silver.Change >= 0 {
		t.Errorf("expected negative silver change, got %.4f", silver.Change)
	}
	if math.Abs(silver.ChangePct-(-0.60/30.00*100)) > 1e-9 {
		t.Errorf("unexpected silver pct change %.4f", silver.ChangePct)
	}
}

func TestComputeSpotMoves_ShortSeriesOmitted(t *testing.T) {
	closes := map[string][]model.ClosePoint{
		"GC=F": collector.MockSeries(2450),
	}
	entries := []registry.Entry{
		{Symbol: "GC=F", Name: "Gold"},
		{Symbol: "SI=F", Name: "Silver"},
	}
	rows := ComputeSpotMoves(closes, entries)
	if len(rows) != 0 {
		t.Fatalf("expected no rows, got %d", len(rows))
	}
}
