package scheduler

import (
	"context"
	"fmt"
	"io"
	"strings"

	"VolScout/internal/collector"
	"VolScout/internal/model"
	"VolScout/internal/notifier"
	"VolScout/internal/strategy"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Scheduler runs the analysis pipeline, either once or on a daily cron.
type Scheduler struct {
	Cron      *cron.Cron
	Collector *collector.Collector
	Engine    *strategy.Engine
	Notifier  *notifier.TelegramNotifier // nil outside daemon mode
	Out       io.Writer
	Ctx       context.Context
	Log       *zap.Logger
}

// NewScheduler creates a new Scheduler.
func NewScheduler(ctx context.Context, col *collector.Collector, eng *strategy.Engine, tn *notifier.TelegramNotifier, out io.Writer, log *zap.Logger) *Scheduler {
	return &Scheduler{
		Cron:      cron.New(cron.WithSeconds()),
		Collector: col,
		Engine:    eng,
		Notifier:  tn,
		Out:       out,
		Ctx:       ctx,
		Log:       log,
	}
}

// RegisterDaily registers the daily analysis task.
func (s *Scheduler) RegisterDaily(dailyCron string) error {
	if _, err := s.Cron.AddFunc(dailyCron, s.dailyTask); err != nil {
		return fmt.Errorf("register daily task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	s.Log.Info("scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	s.Log.Info("scheduler stopped")
}

// RunNow executes one full analysis pass: collect, analyze each pair in
// catalog order, render the report, and emit it. Fails only when no
// instrument returned data at all.
func (s *Scheduler) RunNow(ctx context.Context) error {
	batch, err := s.Collector.Collect(ctx)
	if err != nil {
		return fmt.Errorf("collect: %w", err)
	}

	var b strings.Builder
	b.WriteString(notifier.FormatHeader())

	var reports []model.PairReport
	for i := range batch.Pairs {
		report, err := s.Engine.AnalyzePair(&batch.Pairs[i], batch.Index)
		if err != nil {
			s.Log.Warn("pair analysis failed",
				zap.String("pair", batch.Pairs[i].Pair), zap.Error(err))
			continue
		}
		if report == nil {
			continue // insufficient data, already logged
		}
		b.WriteString(notifier.FormatPairReport(report))
		reports = append(reports, *report)
	}

	b.WriteString(notifier.FormatSummary(reports))
	text := b.String()

	fmt.Fprint(s.Out, text)
	if s.Notifier != nil {
		if err := s.Notifier.SendWithRetry(ctx, text, 3); err != nil {
			s.Log.Error("send report", zap.Error(err))
		}
	}
	return nil
}

func (s *Scheduler) dailyTask() {
	s.Log.Info("running daily analysis")
	if err := s.RunNow(s.Ctx); err != nil {
		s.Log.Error("daily analysis failed", zap.Error(err))
	}
}

// HandleCommand processes a user command and returns a reply.
func (s *Scheduler) HandleCommand(command string) string {
	switch command {
	case "/run":
		s.dailyTask()
		return ""
	case "/pairs":
		var b strings.Builder
		b.WriteString("Watched pairs:\n")
		for _, p := range s.Collector.Pairs {
			b.WriteString(fmt.Sprintf("• %s (%s)\n", p.Name, p.Symbol))
		}
		return b.String()
	default:
		return "Available commands:\n• /run: run the analysis now\n• /pairs: list watched pairs"
	}
}
