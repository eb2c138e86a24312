package model

import "time"

// PricePoint is a single daily closing price.
type PricePoint struct {
	Time  time.Time
	Close float64
}

// PriceSeries holds raw daily closes for one instrument, date-ascending.
type PriceSeries struct {
	Pair      string
	Symbol    string
	Points    []PricePoint
	FetchedAt time.Time
}

// ReturnPoint is a single daily percentage return.
type ReturnPoint struct {
	Time time.Time
	Pct  float64
}

// ReturnSeries holds percentage daily returns derived from a PriceSeries.
// It is one element shorter than its source and immutable once computed.
type ReturnSeries struct {
	Pair   string
	Points []ReturnPoint
}

// Len returns the number of return points.
func (r *ReturnSeries) Len() int { return len(r.Points) }

// Values returns the raw percentage returns in order.
func (r *ReturnSeries) Values() []float64 {
	vals := make([]float64, len(r.Points))
	for i, p := range r.Points {
		vals[i] = p.Pct
	}
	return vals
}

// Last returns the most recent return, or 0 if the series is empty.
func (r *ReturnSeries) Last() float64 {
	if len(r.Points) == 0 {
		return 0
	}
	return r.Points[len(r.Points)-1].Pct
}
