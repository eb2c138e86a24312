package model

// Tier is the qualitative trading-day recommendation.
type Tier string

const (
	TierGood     Tier = "GOOD"
	TierModerate Tier = "MODERATE"
	TierLow      Tier = "LOW"
)

// PairReport is the final analysis output for one instrument.
type PairReport struct {
	Pair        string
	Stats       PairStats
	ForecastVol float64  // predicted next-day volatility, percent
	IndexCorr   *float64 // correlation with the volatility index, nil when unavailable
	Tier        Tier
	Reason      string
}
