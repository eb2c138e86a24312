package calculator

import (
	"math"
	"testing"
	"time"

	"VolScout/internal/model"
)

func pricePoints(closes ...float64) []model.PricePoint {
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	points := make([]model.PricePoint, len(closes))
	for i, c := range closes {
		points[i] = model.PricePoint{Time: base.AddDate(0, 0, i), Close: c}
	}
	return points
}

func TestPercentReturns_Length(t *testing.T) {
	tests := []struct {
		closes []float64
		want   int
	}{
		{nil, 0},
		{[]float64{1.1}, 0},
		{[]float64{1.1, 1.2}, 1},
		{[]float64{1.1, 1.2, 1.15, 1.3}, 3},
	}
	for _, tt := range tests {
		got := PercentReturns(pricePoints(tt.closes...))
		if len(got) != tt.want {
			t.Errorf("closes %v: expected %d returns, got %d", tt.closes, tt.want, len(got))
		}
	}
}

func TestPercentReturns_Values(t *testing.T) {
	returns := PercentReturns(pricePoints(100, 102, 101.49))
	if len(returns) != 2 {
		t.Fatalf("expected 2 returns, got %d", len(returns))
	}
	if math.Abs(returns[0].Pct-2.0) > 1e-9 {
		t.Errorf("expected first return 2.0, got %f", returns[0].Pct)
	}
	if math.Abs(returns[1].Pct-(-0.5)) > 1e-9 {
		t.Errorf("expected second return -0.5, got %f", returns[1].Pct)
	}
}

func TestPercentReturns_ScaleInvariant(t *testing.T) {
	closes := []float64{1.1023, 1.1105, 1.0998, 1.1044, 1.1002}
	doubled := make([]float64, len(closes))
	for i, c := range closes {
		doubled[i] = c * 2
	}

	a := PercentReturns(pricePoints(closes...))
	b := PercentReturns(pricePoints(doubled...))
	if len(a) != len(b) {
		t.Fatalf("length mismatch: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if math.Abs(a[i].Pct-b[i].Pct) > 1e-9 {
			t.Errorf("return %d changed under price doubling: %f vs %f", i, a[i].Pct, b[i].Pct)
		}
	}
}

func TestPercentReturns_ZeroPreviousDropped(t *testing.T) {
	returns := PercentReturns(pricePoints(100, 0, 50))
	if len(returns) != 1 {
		t.Fatalf("expected 1 return (zero previous dropped), got %d", len(returns))
	}
}
