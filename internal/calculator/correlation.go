package calculator

import (
	"math"

	"VolScout/internal/model"
)

// MinCorrelationOverlap is the number of shared dates a correlation needs;
// with this many or fewer the correlation is skipped.
const MinCorrelationOverlap = 10

const dateKeyLayout = "2006-01-02"

// IndexCorrelation computes the Pearson correlation between the absolute
// values of a pair's returns and the raw closes of the volatility index,
// restricted to their common dates. The bool result is false when there are
// too few overlapping dates or either side has no variation.
func IndexCorrelation(returns *model.ReturnSeries, index *model.PriceSeries) (float64, bool) {
	if returns == nil || index == nil {
		return 0, false
	}

	indexByDate := make(map[string]float64, len(index.Points))
	for _, p := range index.Points {
		indexByDate[p.Time.Format(dateKeyLayout)] = p.Close
	}

	var xs, ys []float64
	for _, r := range returns.Points {
		if v, ok := indexByDate[r.Time.Format(dateKeyLayout)]; ok {
			xs = append(xs, math.Abs(r.Pct))
			ys = append(ys, v)
		}
	}
	if len(xs) <= MinCorrelationOverlap {
		return 0, false
	}
	return pearson(xs, ys)
}

// pearson computes the Pearson correlation coefficient of two equal-length
// samples. Returns false when either sample has zero variance.
func pearson(xs, ys []float64) (float64, bool) {
	meanX := Mean(xs)
	meanY := Mean(ys)

	var cov, varX, varY float64
	for i := range xs {
		dx := xs[i] - meanX
		dy := ys[i] - meanY
		cov += dx * dy
		varX += dx * dx
		varY += dy * dy
	}
	if varX == 0 || varY == 0 {
		return 0, false
	}
	return cov / math.Sqrt(varX*varY), true
}
