// Package timeframe defines the candle interval tokens recognized by
// strategy configuration documents ("15m", "1h", "1d", ...).
package timeframe

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// Timeframe is a candle interval token. Tokens are matched
// case-insensitively; the canonical form is lowercase.
type Timeframe string

const (
	M1  Timeframe = "1m"
	M3  Timeframe = "3m"
	M5  Timeframe = "5m"
	M15 Timeframe = "15m"
	M30 Timeframe = "30m"
	H1  Timeframe = "1h"
	H2  Timeframe = "2h"
	H4  Timeframe = "4h"
	H6  Timeframe = "6h"
	H12 Timeframe = "12h"
	D1  Timeframe = "1d"
	W1  Timeframe = "1w"
)

var durations = map[Timeframe]time.Duration{
	M1:  time.Minute,
	M3:  3 * time.Minute,
	M5:  5 * time.Minute,
	M15: 15 * time.Minute,
	M30: 30 * time.Minute,
	H1:  time.Hour,
	H2:  2 * time.Hour,
	H4:  4 * time.Hour,
	H6:  6 * time.Hour,
	H12: 12 * time.Hour,
	D1:  24 * time.Hour,
	W1:  7 * 24 * time.Hour,
}

// Parse returns the canonical Timeframe for s, or an error if the
// token is not part of the recognized set.
func Parse(s string) (Timeframe, error) {
	tf := Timeframe(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := durations[tf]; !ok {
		return "", fmt.Errorf("unrecognized timeframe %q", s)
	}
	return tf, nil
}

// Canonical returns the lowercase form of the token. The result is
// only meaningful when Valid reports true.
func (tf Timeframe) Canonical() Timeframe {
	return Timeframe(strings.ToLower(strings.TrimSpace(string(tf))))
}

// Valid reports whether the token belongs to the recognized set.
func (tf Timeframe) Valid() bool {
	_, ok := durations[tf.Canonical()]
	return ok
}

// Duration returns the bar interval the token denotes, or 0 for an
// unrecognized token.
func (tf Timeframe) Duration() time.Duration {
	return durations[tf.Canonical()]
}

// Coarser reports whether tf covers a longer interval than other.
// Either token being unrecognized yields false.
func (tf Timeframe) Coarser(other Timeframe) bool {
	d, o := tf.Duration(), other.Duration()
	if d == 0 || o == 0 {
		return false
	}
	return d > o
}

// All returns every recognized token, finest first.
func All() []Timeframe {
	out := make([]Timeframe, 0, len(durations))
	for tf := range durations {
		out = append(out, tf)
	}
	sort.Slice(out, func(i, j int) bool { return durations[out[i]] < durations[out[j]] })
	return out
}
