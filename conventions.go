package stratcfg

import "fmt"

// Conventions reports advisory findings: settings that are unusual
// but not invalid. Validate never fails on these; the loader logs
// them at Warn.
func (d *StrategyDefinition) Conventions() []Violation {
	var vs []Violation

	r := d.Parameters.RiskManagement
	if r.TakeProfitATRMultiplier < r.StopLossATRMultiplier {
		vs = append(vs, Violation{
			"parameters.risk_management.take_profit_atr_multiplier",
			fmt.Sprintf("conventionally at least the stop-loss multiplier (%g < %g)", r.TakeProfitATRMultiplier, r.StopLossATRMultiplier),
		})
	}

	if sp := d.Parameters.Filters.MaximumSpread; sp >= 1 {
		vs = append(vs, Violation{
			"parameters.filters.maximum_spread",
			fmt.Sprintf("typically below 1 when expressed as a fraction, got %g", sp),
		})
	}

	t := d.Parameters.Timeframes
	if t.Primary.Valid() && t.Secondary.Valid() && !t.Primary.Coarser(t.Secondary) {
		vs = append(vs, Violation{
			"parameters.timeframes.primary",
			fmt.Sprintf("conventionally coarser than secondary (%s vs %s)", t.Primary, t.Secondary),
		})
	}
	if t.Secondary.Valid() && t.Confirmation.Valid() && !t.Secondary.Coarser(t.Confirmation) {
		vs = append(vs, Violation{
			"parameters.timeframes.secondary",
			fmt.Sprintf("conventionally coarser than confirmation (%s vs %s)", t.Secondary, t.Confirmation),
		})
	}
	return vs
}

// Conventions reports sizing bounds that are looser than the
// portfolio's own limits. Consistency between the two blocks is
// conventional, not required.
func (sc *TestScenario) Conventions() []Violation {
	var vs []Violation
	if sc.Sizing.MaxPositionSize > sc.Portfolio.MaxPositionPct {
		vs = append(vs, Violation{
			"position_sizing.max_position_size",
			fmt.Sprintf("exceeds portfolio.max_position_pct (%g > %g)", sc.Sizing.MaxPositionSize, sc.Portfolio.MaxPositionPct),
		})
	}
	if sc.Sizing.MaxRiskPerTrade > sc.Portfolio.RiskPerTradePct {
		vs = append(vs, Violation{
			"position_sizing.max_risk_per_trade",
			fmt.Sprintf("exceeds portfolio.risk_per_trade_pct (%g > %g)", sc.Sizing.MaxRiskPerTrade, sc.Portfolio.RiskPerTradePct),
		})
	}
	return vs
}
