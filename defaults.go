package stratcfg

// builtinDoc is the compiled-in document: the strategy and scenario
// templates the original assistant shipped with. It goes through the
// normal Load pipeline so it is validated like any user document.
// Top-level keys share one namespace, so the scenario form of the RSI
// reversal template lives under "rsi_reversal_build" to keep it from
// colliding with the strategy entry.
const builtinDoc = `{
  "rsi_reversal": {
    "name": "RSI Reversal Strategy",
    "description": "Advanced RSI strategy with multi-timeframe confirmation",
    "parameters": {
      "entry": {
        "rsi_period": 14,
        "rsi_overbought": 70,
        "rsi_oversold": 30,
        "confirmation_timeframe": "1h",
        "min_volume_multiplier": 1.5
      },
      "filters": {
        "trend_filter": true,
        "volume_filter": true,
        "volatility_filter": true,
        "minimum_atr": 1.0,
        "maximum_spread": 0.1
      },
      "risk_management": {
        "position_size_pct": 2.0,
        "stop_loss_atr_multiplier": 2.0,
        "take_profit_atr_multiplier": 4.0,
        "trailing_stop": true,
        "trailing_stop_activation": 1.5,
        "max_trades_per_day": 3
      },
      "timeframes": {
        "primary": "1d",
        "secondary": "1h",
        "confirmation": "15m"
      }
    },
    "rules": [
      "1. Entry Rules:",
      "   - Buy when RSI < oversold level (30) on primary timeframe",
      "   - Sell when RSI > overbought level (70) on primary timeframe",
      "   - Confirm with RSI direction on secondary timeframe",
      "2. Filter Rules:",
      "   - Trend must align on higher timeframe",
      "   - Volume must be above average * multiplier",
      "   - ATR must be above minimum threshold",
      "3. Risk Management:",
      "   - Position size: 2% of portfolio",
      "   - Stop loss: 2 * ATR from entry",
      "   - Take profit: 4 * ATR from entry",
      "   - Enable trailing stop after 1.5 * ATR profit"
    ]
  },
  "rsi_reversal_build": {
    "name": "RSI Reversal Strategy",
    "timeframe": "1h",
    "market_type": "Any",
    "portfolio": {
      "size": 100000,
      "max_position_pct": 10,
      "risk_per_trade_pct": 2
    },
    "position_sizing": {
      "type": "risk_based",
      "max_risk_per_trade": 2,
      "max_position_size": 10
    },
    "validation": {
      "rsi_oversold": "30",
      "rsi_overbought": "70",
      "volume": "1.5x_average"
    },
    "trade": {
      "take_profit": {
        "type": "fixed",
        "value": 10
      },
      "stop_loss": {
        "type": "atr",
        "value": 2,
        "multiplier": 2
      }
    }
  },
  "macd_momentum": {
    "name": "MACD Momentum Strategy",
    "timeframe": "4h",
    "market_type": "Uptrend",
    "portfolio": {
      "size": 50000,
      "max_position_pct": 15,
      "risk_per_trade_pct": 1.5
    },
    "position_sizing": {
      "type": "risk_based",
      "max_risk_per_trade": 1.5,
      "max_position_size": 15
    },
    "validation": {
      "macd": "5%_max_portfolio",
      "histogram": "Positive"
    },
    "trade": {
      "take_profit": {
        "type": "levels",
        "values": [8, 12]
      },
      "stop_loss": {
        "type": "entry_price",
        "value": 5
      }
    }
  }
}
`

// Builtin loads the compiled-in templates. Each call yields a fresh
// immutable set, so callers falling back to defaults never share
// state.
func Builtin(opts ...Option) (*ConfigSet, error) {
	return Load([]byte(builtinDoc), opts...)
}

// Portfolio tiers the original build templates offered.
var portfolioTiers = map[string]Portfolio{
	"micro":         {Size: 10_000, MaxPositionPct: 20, RiskPerTradePct: 1},
	"small":         {Size: 50_000, MaxPositionPct: 15, RiskPerTradePct: 1.5},
	"medium":        {Size: 100_000, MaxPositionPct: 10, RiskPerTradePct: 2},
	"large":         {Size: 500_000, MaxPositionPct: 5, RiskPerTradePct: 2},
	"institutional": {Size: 1_000_000, MaxPositionPct: 3, RiskPerTradePct: 2.5},
}

// Tier returns the named portfolio tier ("micro" .. "institutional").
func Tier(name string) (Portfolio, bool) {
	p, ok := portfolioTiers[name]
	return p, ok
}

// TierNames returns the tier names ordered smallest account first.
func TierNames() []string {
	return []string{"micro", "small", "medium", "large", "institutional"}
}
