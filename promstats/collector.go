// Package promstats exposes primemap table statistics as Prometheus gauges.
package promstats

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/homier/primemap"
)

const namespace = "primemap"

// StatsSource is anything reporting table statistics, e.g. primemap.OpenTable.
type StatsSource interface {
	Stats() primemap.Stats
}

type gauge struct {
	desc  *prometheus.Desc
	value func(st primemap.Stats) float64
}

// Collector reads the stats of a single table on every scrape.
type Collector struct {
	src    StatsSource
	gauges []gauge
}

// NewCollector returns a collector labelling every metric with table=`name`.
func NewCollector(name string, src StatsSource) *Collector {
	labels := prometheus.Labels{"table": name}
	newDesc := func(metric, help string) *prometheus.Desc {
		return prometheus.NewDesc(prometheus.BuildFQName(namespace, "", metric), help, nil, labels)
	}

	return &Collector{
		src: src,
		gauges: []gauge{
			{
				desc:  newDesc("size", "Number of live entries"),
				value: func(st primemap.Stats) float64 { return float64(st.Size) },
			},
			{
				desc:  newDesc("capacity", "Number of buckets"),
				value: func(st primemap.Stats) float64 { return float64(st.Capacity) },
			},
			{
				desc:  newDesc("load_factor", "Live entries per bucket"),
				value: func(st primemap.Stats) float64 { return st.Load },
			},
			{
				desc:  newDesc("empty_buckets", "Number of empty buckets"),
				value: func(st primemap.Stats) float64 { return float64(st.EmptyBuckets) },
			},
			{
				desc:  newDesc("tombstones", "Number of tombstoned slots"),
				value: func(st primemap.Stats) float64 { return float64(st.Tombstones) },
			},
			{
				desc:  newDesc("longest_chain", "Length of the longest bucket chain"),
				value: func(st primemap.Stats) float64 { return float64(st.LongestChain) },
			},
		},
	}
}

func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	for _, g := range c.gauges {
		ch <- g.desc
	}
}

func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	st := c.src.Stats()
	for _, g := range c.gauges {
		ch <- prometheus.MustNewConstMetric(g.desc, prometheus.GaugeValue, g.value(st))
	}
}
