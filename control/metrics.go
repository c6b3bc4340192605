// control/metrics.go
// Author: momentics <momentics@gmail.com>
//
// Prometheus collector over registered rings and stream adapters.
// Values are read at scrape time; nothing is updated on the data path.

package control

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/momentics/hioload-ring/api"
	"github.com/momentics/hioload-ring/stream"
)

const (
	metricsNamespace = "hioload"
	metricsSubsystem = "ring"
	ringLabel        = "ring"
)

func newDesc(name, help string) *prometheus.Desc {
	return prometheus.NewDesc(
		prometheus.BuildFQName(metricsNamespace, metricsSubsystem, name),
		help, []string{ringLabel}, nil)
}

// Collector exports ring accounting and stream traffic.
type Collector struct {
	mu      sync.RWMutex
	rings   map[string]api.StatsSource
	streams map[string][]stream.CounterSource

	capacity    *prometheus.Desc
	free        *prometheus.Desc
	full        *prometheus.Desc
	freeLinear  *prometheus.Desc
	fullLinear  *prometheus.Desc
	utilization *prometheus.Desc
	written     *prometheus.Desc
	read        *prometheus.Desc
	shortWrites *prometheus.Desc
	backlog     *prometheus.Desc
}

var _ prometheus.Collector = (*Collector)(nil)

// NewCollector creates an empty collector. Register it once with a
// prometheus.Registerer; rings may be watched before or after.
func NewCollector() *Collector {
	return &Collector{
		rings:   make(map[string]api.StatsSource),
		streams: make(map[string][]stream.CounterSource),

		capacity:    newDesc("capacity_bytes", "Effective ring capacity in bytes"),
		free:        newDesc("free_bytes", "Bytes that can be written"),
		full:        newDesc("full_bytes", "Bytes buffered for reading"),
		freeLinear:  newDesc("free_linear_bytes", "Largest contiguous writable run at head"),
		fullLinear:  newDesc("full_linear_bytes", "Largest contiguous readable run at tail"),
		utilization: newDesc("utilization_ratio", "Buffered bytes relative to usable capacity (0.0 to 1.0)"),
		written:     newDesc("written_bytes_total", "Bytes written through stream adapters"),
		read:        newDesc("read_bytes_total", "Bytes read through stream adapters"),
		shortWrites: newDesc("short_writes_total", "Writes that did not fit entirely"),
		backlog:     newDesc("backlog_bytes", "Bytes parked in a feeder backlog"),
	}
}

// WatchRing exports src under the given ring label.
func (c *Collector) WatchRing(name string, src api.StatsSource) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.rings[name] = src
}

// WatchStream exports stream traffic under the given ring label. Several
// sources may share a label, typically a ring's Writer and its Reader;
// their counters are summed.
func (c *Collector) WatchStream(name string, src stream.CounterSource) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.streams[name] = append(c.streams[name], src)
}

// Forget drops every source registered under name.
func (c *Collector) Forget(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.rings, name)
	delete(c.streams, name)
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	for _, d := range []*prometheus.Desc{
		c.capacity, c.free, c.full, c.freeLinear, c.fullLinear,
		c.utilization, c.written, c.read, c.shortWrites, c.backlog,
	} {
		ch <- d
	}
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for name, src := range c.rings {
		s := src.Stats()
		gauge := func(d *prometheus.Desc, v float64) {
			ch <- prometheus.MustNewConstMetric(d, prometheus.GaugeValue, v, name)
		}
		gauge(c.capacity, float64(s.Capacity))
		gauge(c.free, float64(s.FreeSpace))
		gauge(c.full, float64(s.FullSpace))
		gauge(c.freeLinear, float64(s.FreeLinearSpace))
		gauge(c.fullLinear, float64(s.FullLinearSpace))
		gauge(c.utilization, s.Utilization())
	}
	for name, srcs := range c.streams {
		var n stream.Counters
		for _, src := range srcs {
			s := src.Counters()
			n.Written += s.Written
			n.Read += s.Read
			n.ShortWrites += s.ShortWrites
			n.Backlog += s.Backlog
		}
		counter := func(d *prometheus.Desc, v int64) {
			ch <- prometheus.MustNewConstMetric(d, prometheus.CounterValue, float64(v), name)
		}
		counter(c.written, n.Written)
		counter(c.read, n.Read)
		counter(c.shortWrites, n.ShortWrites)
		ch <- prometheus.MustNewConstMetric(c.backlog, prometheus.GaugeValue, float64(n.Backlog), name)
	}
}
