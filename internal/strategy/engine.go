package strategy

import (
	"VolScout/internal/calculator"
	"VolScout/internal/model"

	"go.uber.org/zap"
)

// MinReturns is the number of usable returns an instrument needs before any
// analysis is attempted.
const MinReturns = 20

// MinIndexPoints is the number of index closes required before the
// correlation step is considered.
const MinIndexPoints = 20

// HighVolThreshold marks a day as high-volatility when |return| exceeds it.
const HighVolThreshold = 1.0

// Thresholds map forecast volatility to a recommendation tier. Both bounds
// are strict: a forecast exactly on a bound falls into the lower tier.
type Thresholds struct {
	Good     float64
	Moderate float64
}

// DefaultThresholds are the fixed policy bounds used for every run.
var DefaultThresholds = Thresholds{Good: 0.7, Moderate: 0.4}

// Engine analyzes one instrument at a time and classifies it into a tier.
type Engine struct {
	Coeffs     calculator.Coefficients
	Thresholds Thresholds
	Log        *zap.Logger
}

// NewEngine creates an Engine from policy constants.
func NewEngine(coeffs calculator.Coefficients, thresholds Thresholds, log *zap.Logger) *Engine {
	return &Engine{Coeffs: coeffs, Thresholds: thresholds, Log: log}
}

// classify maps a forecast volatility to a tier and its reason line.
func (e *Engine) classify(forecastVol float64) (model.Tier, string) {
	switch {
	case forecastVol > e.Thresholds.Good:
		return model.TierGood, "Expected high volatility"
	case forecastVol > e.Thresholds.Moderate:
		return model.TierModerate, "Medium expected volatility"
	default:
		return model.TierLow, "Expected calm market"
	}
}

// AnalyzePair runs the full analysis for one instrument. A nil report means
// the instrument had too few usable returns; the index series is optional and
// only ever contributes an advisory correlation figure.
func (e *Engine) AnalyzePair(series *model.PriceSeries, index *model.PriceSeries) (*model.PairReport, error) {
	returns := &model.ReturnSeries{
		Pair:   series.Pair,
		Points: calculator.PercentReturns(series.Points),
	}
	if returns.Len() < MinReturns {
		e.Log.Warn("not enough data for analysis",
			zap.String("pair", series.Pair), zap.Int("returns", returns.Len()))
		return nil, nil
	}

	values := returns.Values()
	stats := model.PairStats{
		CurrentVol:   calculator.SampleStdDev(values),
		AvgReturn:    calculator.Mean(values),
		HighVolShare: calculator.HighVolShare(values, HighVolThreshold),
	}

	forecastVol, err := e.Coeffs.Forecast(returns)
	if err != nil {
		return nil, err
	}

	report := &model.PairReport{
		Pair:        series.Pair,
		Stats:       stats,
		ForecastVol: forecastVol,
	}

	if index != nil && len(index.Points) > MinIndexPoints {
		if corr, ok := calculator.IndexCorrelation(returns, index); ok {
			report.IndexCorr = &corr
		}
	}

	report.Tier, report.Reason = e.classify(forecastVol)
	return report, nil
}
