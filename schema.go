// Package stratcfg loads, validates, and exposes immutable trading
// strategy configuration documents.
//
// A document is a JSON object whose top-level keys name either a
// StrategyDefinition or a TestScenario. The document carries no
// discriminant, so the caller selects the schema by asking the loaded
// set for Strategy(name) or Scenario(name); there is no automatic
// shape inference.
package stratcfg

import (
	"github.com/evdnx/stratcfg/timeframe"
)

// StrategyDefinition describes the tunable parameters of one trading
// strategy. Instances are plain values; the loader hands out a fresh
// copy on every access, so nothing a caller does can leak back into
// the loaded set.
type StrategyDefinition struct {
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Parameters  Parameters `json:"parameters"`

	// Rules are human-readable documentation only. They are never
	// validated against the parameters.
	Rules []string `json:"rules,omitempty"`
}

// Parameters groups the four parameter blocks of a strategy.
type Parameters struct {
	Entry          EntryParams  `json:"entry"`
	Filters        FilterParams `json:"filters"`
	RiskManagement RiskParams   `json:"risk_management"`
	Timeframes     TimeframeSet `json:"timeframes"`
}

// EntryParams holds the RSI entry trigger settings.
type EntryParams struct {
	RSIPeriod             int                 `json:"rsi_period"`
	RSIOverbought         float64             `json:"rsi_overbought"`
	RSIOversold           float64             `json:"rsi_oversold"`
	ConfirmationTimeframe timeframe.Timeframe `json:"confirmation_timeframe"`
	MinVolumeMultiplier   float64             `json:"min_volume_multiplier"`
}

// FilterParams toggles the entry filters and their thresholds.
type FilterParams struct {
	TrendFilter      bool    `json:"trend_filter"`
	VolumeFilter     bool    `json:"volume_filter"`
	VolatilityFilter bool    `json:"volatility_filter"`
	MinimumATR       float64 `json:"minimum_atr"`
	MaximumSpread    float64 `json:"maximum_spread"`
}

// RiskParams holds position sizing and exit management settings.
// Percentages are expressed as 0-100 values, multipliers in ATR units.
type RiskParams struct {
	PositionSizePct         float64 `json:"position_size_pct"`
	StopLossATRMultiplier   float64 `json:"stop_loss_atr_multiplier"`
	TakeProfitATRMultiplier float64 `json:"take_profit_atr_multiplier"`
	TrailingStop            bool    `json:"trailing_stop"`
	TrailingStopActivation  float64 `json:"trailing_stop_activation"`
	MaxTradesPerDay         int     `json:"max_trades_per_day"`
}

// TimeframeSet names the three bar intervals a strategy watches.
// Primary is conventionally coarser than secondary, which is coarser
// than confirmation.
type TimeframeSet struct {
	Primary      timeframe.Timeframe `json:"primary"`
	Secondary    timeframe.Timeframe `json:"secondary"`
	Confirmation timeframe.Timeframe `json:"confirmation"`
}

// TestScenario describes a backtest/validation setup for a strategy:
// portfolio sizing plus the expected trade levels.
type TestScenario struct {
	Name       string              `json:"name,omitempty"`
	Timeframe  timeframe.Timeframe `json:"timeframe"`
	MarketType string              `json:"market_type"`
	Portfolio  Portfolio           `json:"portfolio"`
	Sizing     PositionSizing      `json:"position_sizing"`

	// Validation is an open bag of named checks and their expected
	// qualitative outcomes ("histogram": "Positive"). Keys and values
	// are free-form strings; nothing here is machine-interpreted.
	Validation map[string]string `json:"validation,omitempty"`

	Trade TradePlan `json:"trade"`
}

// Portfolio describes the account the scenario runs against.
type Portfolio struct {
	Size            float64 `json:"size"`
	MaxPositionPct  float64 `json:"max_position_pct"`
	RiskPerTradePct float64 `json:"risk_per_trade_pct"`
}

// PositionSizing selects a sizing mode and its bounds. The bounds are
// conventionally no looser than the portfolio's own limits.
type PositionSizing struct {
	Type            string  `json:"type"`
	MaxPositionSize float64 `json:"max_position_size"`
	MaxRiskPerTrade float64 `json:"max_risk_per_trade"`
}

// TradePlan pairs the take-profit and stop-loss specifications.
type TradePlan struct {
	TakeProfit TakeProfit `json:"take_profit"`
	StopLoss   StopLoss   `json:"stop_loss"`
}

// Take-profit and stop-loss type tags seen in the wild. The tag sets
// are open; unknown tags pass validation with only generic checks.
const (
	TakeProfitLevels = "levels"      // ordered target values
	TakeProfitFixed  = "fixed"       // single target value
	StopLossEntry    = "entry_price" // percent from entry
	StopLossATR      = "atr"         // ATR multiple
)

// TakeProfit specifies profit targets. Values is used by the "levels"
// type, Value by single-target types such as "fixed".
type TakeProfit struct {
	Type   string    `json:"type"`
	Values []float64 `json:"values,omitempty"`
	Value  float64   `json:"value,omitempty"`
}

// StopLoss specifies the loss exit. Multiplier is used by the "atr"
// type.
type StopLoss struct {
	Type       string  `json:"type"`
	Value      float64 `json:"value"`
	Multiplier float64 `json:"multiplier,omitempty"`
}

// Market type labels the original templates used. The field is an
// open string set; these are merely the labels with defined meaning.
const (
	MarketUptrend   = "Uptrend"
	MarketDowntrend = "Downtrend"
	MarketSideways  = "Sideways"
	MarketAny       = "Any"
)
