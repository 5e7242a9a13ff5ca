package stratcfg

import (
	"strings"
	"testing"
)

func TestDescribeStrategy(t *testing.T) {
	def := validStrategy()
	out := def.Describe()
	for _, want := range []string{"RSI Reversal Strategy", "period 14", "bands 30/70", "1d / 1h / 15m", "max 3 trades/day"} {
		if !strings.Contains(out, want) {
			t.Errorf("Describe() missing %q:\n%s", want, out)
		}
	}
}

func TestDescribeScenario(t *testing.T) {
	sc := validScenario()
	out := sc.Describe()
	for _, want := range []string{"MACD Momentum Strategy", "Uptrend", "$50000", "8%, 12%", "5% (from entry)"} {
		if !strings.Contains(out, want) {
			t.Errorf("Describe() missing %q:\n%s", want, out)
		}
	}
}

func TestDescribeScenarioATRStop(t *testing.T) {
	sc := validScenario()
	sc.Trade.TakeProfit = TakeProfit{Type: TakeProfitFixed, Value: 10}
	sc.Trade.StopLoss = StopLoss{Type: StopLossATR, Value: 2, Multiplier: 2}
	out := sc.Describe()
	if !strings.Contains(out, "10% (fixed)") || !strings.Contains(out, "2x ATR") {
		t.Errorf("unexpected summary:\n%s", out)
	}
}
