package stratcfg

import "fmt"

// Validate checks every hard invariant of the strategy schema and
// accumulates all violations in field order. It returns nil or a
// *ValidationError; it never mutates the definition.
func (d *StrategyDefinition) Validate() error {
	var vs []Violation

	e := d.Parameters.Entry
	if e.RSIPeriod <= 0 {
		vs = append(vs, Violation{"parameters.entry.rsi_period", "must be a positive integer"})
	}
	if e.RSIOverbought < 0 || e.RSIOverbought > 100 {
		vs = append(vs, Violation{"parameters.entry.rsi_overbought", fmt.Sprintf("must be within [0,100], got %g", e.RSIOverbought)})
	}
	if e.RSIOversold < 0 || e.RSIOversold > 100 {
		vs = append(vs, Violation{"parameters.entry.rsi_oversold", fmt.Sprintf("must be within [0,100], got %g", e.RSIOversold)})
	}
	if e.RSIOversold >= e.RSIOverbought {
		vs = append(vs, Violation{"parameters.entry.rsi_oversold", fmt.Sprintf("must be below rsi_overbought (%g >= %g)", e.RSIOversold, e.RSIOverbought)})
	}
	if !e.ConfirmationTimeframe.Valid() {
		vs = append(vs, Violation{"parameters.entry.confirmation_timeframe", fmt.Sprintf("unrecognized timeframe %q", e.ConfirmationTimeframe)})
	}
	if e.MinVolumeMultiplier <= 0 {
		vs = append(vs, Violation{"parameters.entry.min_volume_multiplier", "must be positive"})
	}

	f := d.Parameters.Filters
	if f.MinimumATR < 0 {
		vs = append(vs, Violation{"parameters.filters.minimum_atr", "cannot be negative"})
	}
	if f.MaximumSpread < 0 {
		vs = append(vs, Violation{"parameters.filters.maximum_spread", "cannot be negative"})
	}

	r := d.Parameters.RiskManagement
	if r.PositionSizePct <= 0 || r.PositionSizePct > 100 {
		vs = append(vs, Violation{"parameters.risk_management.position_size_pct", fmt.Sprintf("must be within (0,100], got %g", r.PositionSizePct)})
	}
	if r.StopLossATRMultiplier <= 0 {
		vs = append(vs, Violation{"parameters.risk_management.stop_loss_atr_multiplier", "must be positive"})
	}
	if r.TakeProfitATRMultiplier <= 0 {
		vs = append(vs, Violation{"parameters.risk_management.take_profit_atr_multiplier", "must be positive"})
	}
	if r.TrailingStopActivation <= 0 {
		vs = append(vs, Violation{"parameters.risk_management.trailing_stop_activation", "must be positive"})
	}
	if r.MaxTradesPerDay <= 0 {
		vs = append(vs, Violation{"parameters.risk_management.max_trades_per_day", "must be a positive integer"})
	}

	t := d.Parameters.Timeframes
	if !t.Primary.Valid() {
		vs = append(vs, Violation{"parameters.timeframes.primary", fmt.Sprintf("unrecognized timeframe %q", t.Primary)})
	}
	if !t.Secondary.Valid() {
		vs = append(vs, Violation{"parameters.timeframes.secondary", fmt.Sprintf("unrecognized timeframe %q", t.Secondary)})
	}
	if !t.Confirmation.Valid() {
		vs = append(vs, Violation{"parameters.timeframes.confirmation", fmt.Sprintf("unrecognized timeframe %q", t.Confirmation)})
	}

	if len(vs) > 0 {
		return &ValidationError{Violations: vs}
	}
	return nil
}

// Validate checks every hard invariant of the scenario schema,
// accumulating all violations in field order.
func (sc *TestScenario) Validate() error {
	var vs []Violation

	if !sc.Timeframe.Valid() {
		vs = append(vs, Violation{"timeframe", fmt.Sprintf("unrecognized timeframe %q", sc.Timeframe)})
	}

	p := sc.Portfolio
	if p.Size <= 0 {
		vs = append(vs, Violation{"portfolio.size", "must be positive"})
	}
	if p.MaxPositionPct < 0 || p.MaxPositionPct > 100 {
		vs = append(vs, Violation{"portfolio.max_position_pct", fmt.Sprintf("must be within [0,100], got %g", p.MaxPositionPct)})
	}
	if p.RiskPerTradePct <= 0 || p.RiskPerTradePct > 100 {
		vs = append(vs, Violation{"portfolio.risk_per_trade_pct", fmt.Sprintf("must be within (0,100], got %g", p.RiskPerTradePct)})
	}

	if sc.Sizing.Type == "" {
		vs = append(vs, Violation{"position_sizing.type", "sizing mode tag is required"})
	}
	if sc.Sizing.MaxPositionSize < 0 || sc.Sizing.MaxPositionSize > 100 {
		vs = append(vs, Violation{"position_sizing.max_position_size", fmt.Sprintf("must be within [0,100], got %g", sc.Sizing.MaxPositionSize)})
	}
	if sc.Sizing.MaxRiskPerTrade < 0 || sc.Sizing.MaxRiskPerTrade > 100 {
		vs = append(vs, Violation{"position_sizing.max_risk_per_trade", fmt.Sprintf("must be within [0,100], got %g", sc.Sizing.MaxRiskPerTrade)})
	}

	vs = append(vs, sc.Trade.TakeProfit.violations()...)
	vs = append(vs, sc.Trade.StopLoss.violations()...)

	if len(vs) > 0 {
		return &ValidationError{Violations: vs}
	}
	return nil
}

func (tp TakeProfit) violations() []Violation {
	var vs []Violation
	if tp.Type == "" {
		vs = append(vs, Violation{"trade.take_profit.type", "type tag is required"})
		return vs
	}
	switch tp.Type {
	case TakeProfitLevels:
		if len(tp.Values) == 0 {
			vs = append(vs, Violation{"trade.take_profit.values", "levels require at least one value"})
		}
		for i, v := range tp.Values {
			if v <= 0 {
				vs = append(vs, Violation{fmt.Sprintf("trade.take_profit.values[%d]", i), "must be positive"})
			}
			if i > 0 && tp.Values[i-1] >= v {
				vs = append(vs, Violation{fmt.Sprintf("trade.take_profit.values[%d]", i), "levels must be strictly ascending"})
			}
		}
	case TakeProfitFixed:
		if tp.Value <= 0 {
			vs = append(vs, Violation{"trade.take_profit.value", "must be positive"})
		}
	default:
		// Open tag set: unknown types only get the generic checks.
		for i, v := range tp.Values {
			if v < 0 {
				vs = append(vs, Violation{fmt.Sprintf("trade.take_profit.values[%d]", i), "cannot be negative"})
			}
		}
		if tp.Value < 0 {
			vs = append(vs, Violation{"trade.take_profit.value", "cannot be negative"})
		}
	}
	return vs
}

func (sl StopLoss) violations() []Violation {
	var vs []Violation
	if sl.Type == "" {
		vs = append(vs, Violation{"trade.stop_loss.type", "type tag is required"})
		return vs
	}
	switch sl.Type {
	case StopLossEntry:
		if sl.Value <= 0 {
			vs = append(vs, Violation{"trade.stop_loss.value", "must be positive"})
		}
	case StopLossATR:
		if sl.Multiplier <= 0 {
			vs = append(vs, Violation{"trade.stop_loss.multiplier", "must be positive"})
		}
		if sl.Value < 0 {
			vs = append(vs, Violation{"trade.stop_loss.value", "cannot be negative"})
		}
	default:
		if sl.Value < 0 {
			vs = append(vs, Violation{"trade.stop_loss.value", "cannot be negative"})
		}
		if sl.Multiplier < 0 {
			vs = append(vs, Violation{"trade.stop_loss.multiplier", "cannot be negative"})
		}
	}
	return vs
}
