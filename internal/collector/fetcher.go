package collector

import (
	"context"

	"VolScout/internal/model"
)

// Fetcher defines the interface for fetching daily closing prices.
type Fetcher interface {
	FetchDailyCloses(ctx context.Context, symbol string, days int) ([]model.PricePoint, error)
	Name() string
}
