package notifier

import (
	"fmt"
	"strings"
	"time"

	"VolScout/internal/model"
)

// FormatHeader renders the run banner.
func FormatHeader() string {
	var b strings.Builder
	b.WriteString(strings.Repeat("=", 70) + "\n")
	b.WriteString(fmt.Sprintf("📱 VolScout: Forex Daily Volatility Filter | %s\n", time.Now().Format("2006-01-02")))
	b.WriteString(strings.Repeat("=", 70) + "\n")
	return b.String()
}

// FormatPairReport renders the per-instrument breakdown.
func FormatPairReport(r *model.PairReport) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("\n%s\n", strings.Repeat("=", 50)))
	b.WriteString(fmt.Sprintf("📈 %s\n", r.Pair))
	b.WriteString(fmt.Sprintf("%s\n", strings.Repeat("=", 50)))

	b.WriteString(fmt.Sprintf("📊 Current volatility: %.3f%%\n", r.Stats.CurrentVol))
	b.WriteString(fmt.Sprintf("📈 Average daily move: %.3f%%\n", r.Stats.AvgReturn))
	b.WriteString(fmt.Sprintf("🔥 High vol days (>1%%): %.1f%%\n", r.Stats.HighVolShare))
	b.WriteString(fmt.Sprintf("🔮 GARCH forecast volatility: %.3f%%\n", r.ForecastVol))
	if r.IndexCorr != nil {
		b.WriteString(fmt.Sprintf("📊 VIX correlation: %.3f\n", *r.IndexCorr))
	}

	var marker string
	switch r.Tier {
	case model.TierGood:
		marker = "✅ GOOD TRADING DAY"
	case model.TierModerate:
		marker = "⚠️ MODERATE DAY"
	default:
		marker = "❌ LOW VOLATILITY DAY"
	}
	b.WriteString(fmt.Sprintf("\n🎯 RECOMMENDATION: %s\n", marker))
	b.WriteString(fmt.Sprintf("📝 Reason: %s\n", r.Reason))

	return b.String()
}

// FormatSummary renders the closing section: the GOOD subset with forecast
// volatility, or an explicit notice when nothing qualifies.
func FormatSummary(reports []model.PairReport) string {
	var b strings.Builder

	b.WriteString("\n" + strings.Repeat("=", 70) + "\n")
	b.WriteString("📋 SUMMARY: Best pairs for tomorrow\n")
	b.WriteString(strings.Repeat("=", 70) + "\n")

	var good []model.PairReport
	for _, r := range reports {
		if r.Tier == model.TierGood {
			good = append(good, r)
		}
	}

	if len(good) > 0 {
		b.WriteString("\n🎯 RECOMMENDED PAIRS (High volatility expected):\n")
		for _, r := range good {
			b.WriteString(fmt.Sprintf("  • %s: Forecast vol = %.3f%%\n", r.Pair, r.ForecastVol))
		}
	} else {
		b.WriteString("\n⚠️ No pairs show high volatility expectations\n")
		b.WriteString("   Consider waiting for better market conditions\n")
	}

	b.WriteString("\n" + strings.Repeat("=", 70) + "\n")
	b.WriteString("📝 NOTES:\n")
	b.WriteString("- Based on GARCH(1,1) volatility forecasting\n")
	b.WriteString("- VIX correlation considered where available\n")
	b.WriteString("- GOOD = Expected daily range > 0.7%\n")
	b.WriteString("- Updates daily, run before trading session\n")
	b.WriteString(strings.Repeat("=", 70) + "\n")

	return b.String()
}
