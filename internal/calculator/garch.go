package calculator

import (
	"errors"
	"math"

	"VolScout/internal/model"
)

// MinForecastReturns is the number of returns below which the forecast falls
// back to the plain sample standard deviation.
const MinForecastReturns = 30

// Coefficients are the fixed GARCH(1,1) recurrence constants. They are policy,
// not statistics: nothing here is estimated from data.
type Coefficients struct {
	Omega float64 // long-run variance
	Alpha float64 // reaction to shocks
	Beta  float64 // persistence
}

// DefaultCoefficients are the coefficients used for every production run.
var DefaultCoefficients = Coefficients{Omega: 0.05, Alpha: 0.1, Beta: 0.85}

// Validate rejects coefficient sets that could produce a negative variance.
func (c Coefficients) Validate() error {
	if c.Omega < 0 || c.Alpha < 0 || c.Beta < 0 {
		return errors.New("garch coefficients must be non-negative")
	}
	return nil
}

// Forecast produces the one-day-ahead volatility estimate for a return series,
// in the same percentage units as the returns.
//
// With fewer than MinForecastReturns points the sample standard deviation is
// returned as-is (fallback, not an error). Otherwise the one-step recurrence
// applies: variance = omega + alpha*lastReturn^2 + beta*sampleVariance.
func (c Coefficients) Forecast(returns *model.ReturnSeries) (float64, error) {
	if err := c.Validate(); err != nil {
		return 0, err
	}
	values := returns.Values()
	if len(values) < MinForecastReturns {
		return SampleStdDev(values), nil
	}
	lastReturn := returns.Last()
	variance := c.Omega + c.Alpha*lastReturn*lastReturn + c.Beta*SampleVariance(values)
	return math.Sqrt(variance), nil
}
