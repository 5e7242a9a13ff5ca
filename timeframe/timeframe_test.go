package timeframe

import (
	"testing"
	"time"
)

func TestParseCanonicalizes(t *testing.T) {
	tf, err := Parse("4H")
	if err != nil {
		t.Fatalf("Parse(4H) failed: %v", err)
	}
	if tf != H4 {
		t.Fatalf("expected %q, got %q", H4, tf)
	}
}

func TestParseRejectsUnknownToken(t *testing.T) {
	if _, err := Parse("3x"); err == nil {
		t.Fatal("expected error for unrecognized token '3x'")
	}
}

func TestValid(t *testing.T) {
	cases := []struct {
		in   Timeframe
		want bool
	}{
		{"15m", true},
		{"1h", true},
		{"1D", true},
		{"", false},
		{"3x", false},
		{"60", false},
	}
	for _, c := range cases {
		if got := c.in.Valid(); got != c.want {
			t.Errorf("Valid(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestDuration(t *testing.T) {
	if d := H1.Duration(); d != time.Hour {
		t.Fatalf("H1.Duration() = %v, want 1h", d)
	}
	if d := Timeframe("3x").Duration(); d != 0 {
		t.Fatalf("unrecognized token should have zero duration, got %v", d)
	}
}

func TestCoarser(t *testing.T) {
	if !D1.Coarser(H1) {
		t.Fatal("1d should be coarser than 1h")
	}
	if H1.Coarser(D1) {
		t.Fatal("1h should not be coarser than 1d")
	}
	if H1.Coarser(H1) {
		t.Fatal("a token is not coarser than itself")
	}
	if Timeframe("3x").Coarser(H1) {
		t.Fatal("unrecognized token should never compare coarser")
	}
}

func TestAllSortedFinestFirst(t *testing.T) {
	all := All()
	if len(all) == 0 {
		t.Fatal("All returned no tokens")
	}
	for i := 1; i < len(all); i++ {
		if all[i-1].Duration() >= all[i].Duration() {
			t.Fatalf("All not sorted finest first: %q before %q", all[i-1], all[i])
		}
	}
}
