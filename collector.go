package timemachine

import (
	"github.com/prometheus/client_golang/prometheus"
)

// StatSource is the view of a Machine the collector reads. Any Machine
// instantiation satisfies it.
type StatSource interface {
	Stats() MachineStats
	Len() (forward, reverse int)
}

// Collector exports a machine's counters and log depths as prometheus
// metrics. Collection only reads counters and never seeks, but the machine
// has no internal synchronization, so scrapes must not run concurrently with
// machine operations.
type Collector struct {
	m StatSource

	forwardEntries *prometheus.Desc
	reverseEntries *prometheus.Desc
	applied        *prometheus.Desc
	reverted       *prometheus.Desc
	seeks          *prometheus.Desc
	evicted        *prometheus.Desc
}

func NewCollector(m StatSource) *Collector {
	return &Collector{
		m: m,

		forwardEntries: prometheus.NewDesc(
			"timemachine_forward_log_entries",
			"Number of recorded changes not yet materialized into the state",
			nil, nil,
		),
		reverseEntries: prometheus.NewDesc(
			"timemachine_reverse_log_entries",
			"Number of applied changes retained for undo",
			nil, nil,
		),
		applied: prometheus.NewDesc(
			"timemachine_deltas_applied_total",
			"Total number of forward deltas materialized",
			nil, nil,
		),
		reverted: prometheus.NewDesc(
			"timemachine_deltas_reverted_total",
			"Total number of applied deltas undone",
			nil, nil,
		),
		seeks: prometheus.NewDesc(
			"timemachine_seeks_total",
			"Total number of position seeks performed",
			nil, nil,
		),
		evicted: prometheus.NewDesc(
			"timemachine_history_evicted_total",
			"Total number of reverse log entries discarded by eviction",
			nil, nil,
		),
	}
}

func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.forwardEntries
	ch <- c.reverseEntries
	ch <- c.applied
	ch <- c.reverted
	ch <- c.seeks
	ch <- c.evicted
}

func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	forward, reverse := c.m.Len()
	stats := c.m.Stats()

	ch <- prometheus.MustNewConstMetric(
		c.forwardEntries,
		prometheus.GaugeValue,
		float64(forward),
	)
	ch <- prometheus.MustNewConstMetric(
		c.reverseEntries,
		prometheus.GaugeValue,
		float64(reverse),
	)
	ch <- prometheus.MustNewConstMetric(
		c.applied,
		prometheus.CounterValue,
		float64(stats.Applied),
	)
	ch <- prometheus.MustNewConstMetric(
		c.reverted,
		prometheus.CounterValue,
		float64(stats.Reverted),
	)
	ch <- prometheus.MustNewConstMetric(
		c.seeks,
		prometheus.CounterValue,
		float64(stats.Seeks),
	)
	ch <- prometheus.MustNewConstMetric(
		c.evicted,
		prometheus.CounterValue,
		float64(stats.Evicted),
	)
}
