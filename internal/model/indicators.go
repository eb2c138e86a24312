package model

// PairStats holds the descriptive statistics computed for one pair.
type PairStats struct {
	CurrentVol   float64 // sample std-dev of daily returns, percent
	AvgReturn    float64 // arithmetic mean daily move, percent
	HighVolShare float64 // share of days with |return| > 1%, in percent
}
