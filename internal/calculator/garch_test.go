package calculator

import (
	"math"
	"testing"
	"time"

	"VolScout/internal/model"
)

func returnSeries(values []float64) *model.ReturnSeries {
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	points := make([]model.ReturnPoint, len(values))
	for i, v := range values {
		points[i] = model.ReturnPoint{Time: base.AddDate(0, 0, i), Pct: v}
	}
	return &model.ReturnSeries{Pair: "TEST", Points: points}
}

func syntheticReturns(n int) []float64 {
	values := make([]float64, n)
	for i := range values {
		values[i] = 0.3 * math.Sin(float64(i)*0.7)
	}
	return values
}

func TestForecast_FallbackBelowThirtyReturns(t *testing.T) {
	values := syntheticReturns(29)
	got, err := DefaultCoefficients.Forecast(returnSeries(values))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := SampleStdDev(values)
	if got != want {
		t.Errorf("fallback forecast must equal sample std-dev exactly: got %v, want %v", got, want)
	}
}

func TestForecast_RecurrenceAtThirtyReturns(t *testing.T) {
	values := syntheticReturns(30)
	got, err := DefaultCoefficients.Forecast(returnSeries(values))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	last := values[len(values)-1]
	want := math.Sqrt(0.05 + 0.1*last*last + 0.85*SampleVariance(values))
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestForecast_KnownVariance(t *testing.T) {
	// 30 returns with mean 0, sample variance exactly 0.36, last return 0.5:
	// 14 pairs of +/-a with 28a^2 = 9.94, then -0.5 and 0.5.
	a := math.Sqrt(0.355)
	values := make([]float64, 0, 30)
	for i := 0; i < 14; i++ {
		values = append(values, a, -a)
	}
	values = append(values, -0.5, 0.5)

	if v := SampleVariance(values); math.Abs(v-0.36) > 1e-12 {
		t.Fatalf("fixture variance drifted: %v", v)
	}

	got, err := DefaultCoefficients.Forecast(returnSeries(values))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := math.Sqrt(0.05 + 0.1*0.25 + 0.85*0.36) // sqrt(0.381) ~ 0.6173
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestCoefficients_Validate(t *testing.T) {
	tests := []struct {
		coeffs  Coefficients
		wantErr bool
	}{
		{Coefficients{0.05, 0.1, 0.85}, false},
		{Coefficients{0, 0, 0}, false},
		{Coefficients{-0.05, 0.1, 0.85}, true},
		{Coefficients{0.05, -0.1, 0.85}, true},
		{Coefficients{0.05, 0.1, -0.85}, true},
	}
	for _, tt := range tests {
		err := tt.coeffs.Validate()
		if (err != nil) != tt.wantErr {
			t.Errorf("%+v: wantErr=%v, got %v", tt.coeffs, tt.wantErr, err)
		}
	}
}

func TestForecast_RejectsNegativeCoefficients(t *testing.T) {
	bad := Coefficients{Omega: -0.05, Alpha: 0.1, Beta: 0.85}
	if _, err := bad.Forecast(returnSeries(syntheticReturns(40))); err == nil {
		t.Error("expected error for negative omega")
	}
}
