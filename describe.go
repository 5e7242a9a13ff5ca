package stratcfg

import (
	"fmt"
	"strings"
)

// Describe renders a short human-readable summary of the strategy,
// suitable for listings.
func (d *StrategyDefinition) Describe() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", d.Name)
	if d.Description != "" {
		fmt.Fprintf(&b, "  %s\n", d.Description)
	}
	e := d.Parameters.Entry
	fmt.Fprintf(&b, "  RSI: period %d, bands %g/%g, confirm on %s\n",
		e.RSIPeriod, e.RSIOversold, e.RSIOverbought, e.ConfirmationTimeframe)
	t := d.Parameters.Timeframes
	fmt.Fprintf(&b, "  Timeframes: %s / %s / %s\n", t.Primary, t.Secondary, t.Confirmation)
	r := d.Parameters.RiskManagement
	fmt.Fprintf(&b, "  Risk: %g%% per trade, stop %gx ATR, target %gx ATR, max %d trades/day\n",
		r.PositionSizePct, r.StopLossATRMultiplier, r.TakeProfitATRMultiplier, r.MaxTradesPerDay)
	return b.String()
}

// Describe renders a short human-readable summary of the scenario.
func (sc *TestScenario) Describe() string {
	var b strings.Builder
	name := sc.Name
	if name == "" {
		name = "Test Scenario"
	}
	fmt.Fprintf(&b, "%s\n", name)
	fmt.Fprintf(&b, "  Timeframe: %s\n", sc.Timeframe)
	fmt.Fprintf(&b, "  Market Type: %s\n", sc.MarketType)
	fmt.Fprintf(&b, "  Portfolio Size: $%.0f\n", sc.Portfolio.Size)
	fmt.Fprintf(&b, "  Position Sizing: %s, max risk %g%%, max position %g%%\n",
		sc.Sizing.Type, sc.Sizing.MaxRiskPerTrade, sc.Sizing.MaxPositionSize)

	tp := sc.Trade.TakeProfit
	switch tp.Type {
	case TakeProfitLevels:
		levels := make([]string, len(tp.Values))
		for i, v := range tp.Values {
			levels[i] = fmt.Sprintf("%g%%", v)
		}
		fmt.Fprintf(&b, "  Take Profit: %s\n", strings.Join(levels, ", "))
	default:
		fmt.Fprintf(&b, "  Take Profit: %g%% (%s)\n", tp.Value, tp.Type)
	}

	sl := sc.Trade.StopLoss
	switch sl.Type {
	case StopLossEntry:
		fmt.Fprintf(&b, "  Stop Loss: %g%% (from entry)\n", sl.Value)
	case StopLossATR:
		fmt.Fprintf(&b, "  Stop Loss: %gx ATR\n", sl.Multiplier)
	default:
		fmt.Fprintf(&b, "  Stop Loss: %g (%s)\n", sl.Value, sl.Type)
	}
	return b.String()
}
