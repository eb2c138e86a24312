package scheduler

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"VolScout/internal/calculator"
	"VolScout/internal/collector"
	"VolScout/internal/config"
	"VolScout/internal/model"
	"VolScout/internal/strategy"

	"go.uber.org/zap"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Pairs = []config.Pair{
		{Name: "EUR/USD", Symbol: "EURUSD=X"},
		{Name: "GBP/USD", Symbol: "GBPUSD=X"},
	}
	cfg.IndexSymbol = "^VIX"
	cfg.Lookback.Days = 90
	cfg.Fetch.Concurrency = 2
	return cfg
}

func testScheduler(fetcher collector.Fetcher, out *bytes.Buffer) *Scheduler {
	log := zap.NewNop()
	col := collector.NewCollector(fetcher, testConfig(), log)
	eng := strategy.NewEngine(calculator.DefaultCoefficients, strategy.DefaultThresholds, log)
	return NewScheduler(context.Background(), col, eng, nil, out, log)
}

// swingPoints builds a close series with alternating +/-2% daily moves, which
// forecasts well above the GOOD threshold.
func swingPoints(n int) []model.PricePoint {
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	points := make([]model.PricePoint, n)
	price := 1.1000
	for i := 0; i < n; i++ {
		points[i] = model.PricePoint{Time: base.AddDate(0, 0, i), Close: price}
		if i%2 == 0 {
			price *= 1.02
		} else {
			price *= 0.98
		}
	}
	return points
}

func TestRunNow_FullReport(t *testing.T) {
	var out bytes.Buffer
	fetcher := &collector.MockFetcher{
		Series: map[string][]model.PricePoint{
			"EURUSD=X": swingPoints(90),
		},
	}
	sched := testScheduler(fetcher, &out)

	if err := sched.RunNow(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	text := out.String()

	if !strings.Contains(text, "Forex Daily Volatility Filter") {
		t.Error("missing header banner")
	}
	if !strings.Contains(text, "EUR/USD") || !strings.Contains(text, "GBP/USD") {
		t.Error("missing per-pair sections")
	}
	if !strings.Contains(text, "SUMMARY: Best pairs for tomorrow") {
		t.Error("missing summary section")
	}
	// The swinging pair forecasts high volatility and must be recommended;
	// the gently drifting mock default must not.
	idx := strings.Index(text, "RECOMMENDED PAIRS")
	if idx < 0 {
		t.Fatalf("expected a recommended section:\n%s", text)
	}
	if !strings.Contains(text[idx:], "EUR/USD") {
		t.Error("expected EUR/USD in the recommended set")
	}
	if strings.Contains(text[idx:], "GBP/USD") {
		t.Error("did not expect GBP/USD in the recommended set")
	}
}

func TestRunNow_TotalFetchFailure(t *testing.T) {
	var out bytes.Buffer
	fetcher := &collector.MockFetcher{
		Errs: map[string]error{
			"EURUSD=X": errors.New("down"),
			"GBPUSD=X": errors.New("down"),
			"^VIX":     errors.New("down"),
		},
	}
	sched := testScheduler(fetcher, &out)

	if err := sched.RunNow(context.Background()); err == nil {
		t.Fatal("expected error when no instrument returns data")
	}
	if out.Len() != 0 {
		t.Error("no report should be produced on total fetch failure")
	}
}

func TestHandleCommand(t *testing.T) {
	var out bytes.Buffer
	sched := testScheduler(&collector.MockFetcher{}, &out)

	if reply := sched.HandleCommand("/pairs"); !strings.Contains(reply, "EUR/USD") {
		t.Errorf("expected pair listing, got %q", reply)
	}
	if reply := sched.HandleCommand("/unknown"); !strings.Contains(reply, "Available commands") {
		t.Errorf("expected help text, got %q", reply)
	}
	if reply := sched.HandleCommand("/run"); reply != "" {
		t.Errorf("expected empty reply for /run, got %q", reply)
	}
	if !strings.Contains(out.String(), "SUMMARY") {
		t.Error("expected /run to produce a report")
	}
}
