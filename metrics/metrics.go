package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	Loads = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stratcfg_loads_total",
			Help: "Total number of document loads (by outcome).",
		},
		[]string{"outcome"},
	)

	EntryDecodes = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stratcfg_entry_decodes_total",
			Help: "Total number of typed entry decodes (by schema and outcome).",
		},
		[]string{"schema", "outcome"},
	)

	ValidationFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stratcfg_validation_failures_total",
			Help: "Total number of entries rejected by validation (by schema).",
		},
		[]string{"schema"},
	)

	EntriesLoaded = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "stratcfg_entries_loaded",
			Help: "Top-level entries in the most recently loaded document.",
		},
	)
)

func init() {
	prometheus.MustRegister(Loads, EntryDecodes, ValidationFailures, EntriesLoaded)
}
