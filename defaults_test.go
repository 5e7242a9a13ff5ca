package stratcfg

import (
	"reflect"
	"testing"
)

func TestBuiltinLoads(t *testing.T) {
	set, err := Builtin()
	if err != nil {
		t.Fatalf("Builtin failed: %v", err)
	}

	def, err := set.Strategy("rsi_reversal")
	if err != nil {
		t.Fatalf("builtin rsi_reversal invalid: %v", err)
	}
	if def.Parameters.Entry.RSIPeriod != 14 {
		t.Errorf("builtin rsi_period = %d, want 14", def.Parameters.Entry.RSIPeriod)
	}
	if len(def.Conventions()) != 0 {
		t.Errorf("builtin strategy should carry no convention findings: %v", def.Conventions())
	}

	sc, err := set.Scenario("macd_momentum")
	if err != nil {
		t.Fatalf("builtin macd_momentum invalid: %v", err)
	}
	if want := []float64{8, 12}; !reflect.DeepEqual(sc.Trade.TakeProfit.Values, want) {
		t.Errorf("builtin take_profit.values = %v, want %v", sc.Trade.TakeProfit.Values, want)
	}
	if len(sc.Conventions()) != 0 {
		t.Errorf("builtin scenario should carry no convention findings: %v", sc.Conventions())
	}
}

func TestBuiltinRSIReversalBuildTemplate(t *testing.T) {
	set, err := Builtin()
	if err != nil {
		t.Fatalf("Builtin failed: %v", err)
	}

	sc, err := set.Scenario("rsi_reversal_build")
	if err != nil {
		t.Fatalf("builtin rsi_reversal_build invalid: %v", err)
	}
	if sc.Timeframe != "1h" {
		t.Errorf("timeframe = %q, want 1h", sc.Timeframe)
	}
	if sc.MarketType != MarketAny {
		t.Errorf("market_type = %q, want %q", sc.MarketType, MarketAny)
	}
	medium, _ := Tier("medium")
	if sc.Portfolio != medium {
		t.Errorf("portfolio = %+v, want the medium tier %+v", sc.Portfolio, medium)
	}
	if tp := sc.Trade.TakeProfit; tp.Type != TakeProfitFixed || tp.Value != 10 {
		t.Errorf("take_profit = %+v, want fixed 10", tp)
	}
	if sl := sc.Trade.StopLoss; sl.Type != StopLossATR || sl.Multiplier != 2 || sl.Value != 2 {
		t.Errorf("stop_loss = %+v, want atr value 2 multiplier 2", sl)
	}
	if got := sc.Validation["volume"]; got != "1.5x_average" {
		t.Errorf("validation[volume] = %q, want 1.5x_average", got)
	}
	if len(sc.Conventions()) != 0 {
		t.Errorf("builtin scenario should carry no convention findings: %v", sc.Conventions())
	}
}

func TestBuiltinYieldsIndependentSets(t *testing.T) {
	a, err := Builtin()
	if err != nil {
		t.Fatalf("Builtin failed: %v", err)
	}
	b, err := Builtin()
	if err != nil {
		t.Fatalf("Builtin failed: %v", err)
	}
	if a == b {
		t.Fatal("Builtin must return a fresh set per call")
	}
}

func TestTiers(t *testing.T) {
	medium, ok := Tier("medium")
	if !ok {
		t.Fatal("medium tier missing")
	}
	want := Portfolio{Size: 100_000, MaxPositionPct: 10, RiskPerTradePct: 2}
	if medium != want {
		t.Fatalf("medium tier = %+v, want %+v", medium, want)
	}
	if _, ok := Tier("mega"); ok {
		t.Fatal("unknown tier must not resolve")
	}

	names := TierNames()
	if len(names) != 5 || names[0] != "micro" || names[4] != "institutional" {
		t.Fatalf("unexpected tier names: %v", names)
	}
	// Ordered smallest account first.
	for i := 1; i < len(names); i++ {
		prev, _ := Tier(names[i-1])
		cur, _ := Tier(names[i])
		if prev.Size >= cur.Size {
			t.Fatalf("tiers out of order: %s (%g) before %s (%g)", names[i-1], prev.Size, names[i], cur.Size)
		}
	}
}
