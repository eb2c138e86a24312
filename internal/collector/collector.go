package collector

import (
	"context"
	"fmt"
	"time"

	"VolScout/internal/config"
	"VolScout/internal/model"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	Series map[string][]model.PricePoint
	Errs   map[string]error
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchDailyCloses(_ context.Context, symbol string, days int) ([]model.PricePoint, error) {
	if err, ok := m.Errs[symbol]; ok {
		return nil, err
	}
	if pts, ok := m.Series[symbol]; ok {
		return pts, nil
	}
	return GenerateMockCloses(1.1000, days), nil
}

// GenerateMockCloses produces a gently drifting close series for fixtures.
func GenerateMockCloses(basePrice float64, count int) []model.PricePoint {
	points := make([]model.PricePoint, count)
	for i := 0; i < count; i++ {
		points[i] = model.PricePoint{
			Time:  time.Now().UTC().AddDate(0, 0, -(count - i)),
			Close: basePrice * (1 + float64(i-count/2)*0.001),
		}
	}
	return points
}

// Batch is the outcome of one collection pass: the pairs that produced data,
// in catalog order, plus the volatility index series when available.
type Batch struct {
	Pairs []model.PriceSeries
	Index *model.PriceSeries
}

// Collector fetches the full instrument catalog for one analysis run.
type Collector struct {
	Fetcher     Fetcher
	Pairs       []config.Pair
	IndexSymbol string
	Lookback    int
	Concurrency int
	Log         *zap.Logger
}

// NewCollector creates a new Collector.
func NewCollector(fetcher Fetcher, cfg *config.Config, log *zap.Logger) *Collector {
	return &Collector{
		Fetcher:     fetcher,
		Pairs:       cfg.Pairs,
		IndexSymbol: cfg.IndexSymbol,
		Lookback:    cfg.Lookback.Days,
		Concurrency: cfg.Fetch.Concurrency,
		Log:         log,
	}
}

// Collect fetches daily closes for every catalog pair plus the volatility
// index. One attempt per instrument; a failed or empty pair is logged and
// omitted, an index failure only disables correlation downstream. The error
// is non-nil only when no pair returned data at all.
func (c *Collector) Collect(ctx context.Context) (*Batch, error) {
	results := make([]*model.PriceSeries, len(c.Pairs))
	var index *model.PriceSeries

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.Concurrency)

	for i, pair := range c.Pairs {
		i, pair := i, pair
		g.Go(func() error {
			points, err := c.Fetcher.FetchDailyCloses(gctx, pair.Symbol, c.Lookback)
			if err != nil {
				c.Log.Warn("pair fetch failed", zap.String("pair", pair.Name), zap.Error(err))
				return nil
			}
			if len(points) == 0 {
				c.Log.Warn("pair returned no data", zap.String("pair", pair.Name))
				return nil
			}
			results[i] = &model.PriceSeries{
				Pair:      pair.Name,
				Symbol:    pair.Symbol,
				Points:    points,
				FetchedAt: time.Now().UTC(),
			}
			c.Log.Info("pair fetched", zap.String("pair", pair.Name), zap.Int("days", len(points)))
			return nil
		})
	}

	g.Go(func() error {
		points, err := c.Fetcher.FetchDailyCloses(gctx, c.IndexSymbol, c.Lookback)
		if err != nil {
			c.Log.Warn("index fetch failed, correlation disabled",
				zap.String("symbol", c.IndexSymbol), zap.Error(err))
			return nil
		}
		if len(points) == 0 {
			return nil
		}
		index = &model.PriceSeries{
			Pair:      c.IndexSymbol,
			Symbol:    c.IndexSymbol,
			Points:    points,
			FetchedAt: time.Now().UTC(),
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	batch := &Batch{Index: index}
	for _, s := range results {
		if s != nil {
			batch.Pairs = append(batch.Pairs, *s)
		}
	}
	if len(batch.Pairs) == 0 {
		return nil, fmt.Errorf("no instrument returned data")
	}
	return batch, nil
}
