package calculator

import "VolScout/internal/model"

// PercentReturns converts daily closes into percentage daily returns:
// (p[t] - p[t-1]) / p[t-1] * 100. The first close has no return and entries
// whose previous close is zero are dropped rather than zero-filled, so the
// output is at most one element shorter than the input.
func PercentReturns(points []model.PricePoint) []model.ReturnPoint {
	if len(points) < 2 {
		return nil
	}
	returns := make([]model.ReturnPoint, 0, len(points)-1)
	for i := 1; i < len(points); i++ {
		prev := points[i-1].Close
		if prev == 0 {
			continue
		}
		returns = append(returns, model.ReturnPoint{
			Time: points[i].Time,
			Pct:  (points[i].Close - prev) / prev * 100,
		})
	}
	return returns
}
