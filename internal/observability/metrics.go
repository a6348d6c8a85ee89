package observability

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"
	"time"
)

// Metrics tracks materializer health: operation outcomes, optimistic
// concurrency conflicts, retry pressure, and post-commit publish volume.
type Metrics struct {
	materializeOps     *CounterVec
	materializeLatency *HistogramVec
	conflicts          *CounterVec
	retries            *CounterVec
	published          *CounterVec
	publishFailures    *Counter
}

func NewMetrics() *Metrics {
	return &Metrics{
		materializeOps: NewCounterVec("materialize_operations_total",
			"Materialize calls by operation and status.", []string{"op", "status"}),
		materializeLatency: NewHistogramVec("materialize_duration_seconds",
			"Materialize latency by operation.", []string{"op"},
			[]float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5}),
		conflicts: NewCounterVec("materialize_conflicts_total",
			"Optimistic concurrency conflicts by operation.", []string{"op"}),
		retries: NewCounterVec("materialize_retries_total",
			"Retryable failures by operation.", []string{"op"}),
		published: NewCounterVec("integration_events_published_total",
			"Integration events published after commit, by type.", []string{"type"}),
		publishFailures: NewCounter("integration_events_publish_failures_total",
			"Integration events that failed to publish after commit."),
	}
}

func (m *Metrics) ObserveMaterialize(op, status string, dur time.Duration) {
	if m == nil {
		return
	}
	m.materializeOps.Inc(op, status)
	m.materializeLatency.Observe(dur.Seconds(), op)
}

func (m *Metrics) IncConflict(op string) {
	if m == nil {
		return
	}
	m.conflicts.Inc(op)
}

func (m *Metrics) IncRetry(op string) {
	if m == nil {
		return
	}
	m.retries.Inc(op)
}

func (m *Metrics) IncPublished(eventType string) {
	if m == nil {
		return
	}
	m.published.Inc(eventType)
}

func (m *Metrics) IncPublishFailure() {
	if m == nil {
		return
	}
	m.publishFailures.Inc()
}

func (m *Metrics) WritePrometheus(w io.Writer) error {
	if m == nil {
		return nil
	}
	for _, err := range []error{
		m.materializeOps.WritePrometheus(w),
		m.materializeLatency.WritePrometheus(w),
		m.conflicts.WritePrometheus(w),
		m.retries.WritePrometheus(w),
		m.published.WritePrometheus(w),
		m.publishFailures.WritePrometheus(w),
	} {
		if err != nil {
			return err
		}
	}
	return nil
}

// ---- lightweight metric primitives (Prometheus exposition) ----

type Counter struct {
	name string
	help string
	mu   sync.RWMutex
	val  float64
}

func NewCounter(name, help string) *Counter {
	return &Counter{name: name, help: help}
}

func (c *Counter) Inc() {
	if c == nil {
		return
	}
	c.mu.Lock()
	c.val++
	c.mu.Unlock()
}

func (c *Counter) Value() float64 {
	if c == nil {
		return 0
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.val
}

func (c *Counter) WritePrometheus(w io.Writer) error {
	if c == nil {
		return nil
	}
	if _, err := fmt.Fprintf(w, "# HELP %s %s\n# TYPE %s counter\n", c.name, c.help, c.name); err != nil {
		return err
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, err := fmt.Fprintf(w, "%s %f\n", c.name, c.val)
	return err
}

type CounterVec struct {
	name       string
	help       string
	labelNames []string
	mu         sync.RWMutex
	values     map[string]float64
}

func NewCounterVec(name, help string, labels []string) *CounterVec {
	return &CounterVec{name: name, help: help, labelNames: labels, values: map[string]float64{}}
}

func (c *CounterVec) Inc(values ...string) {
	if c == nil {
		return
	}
	lbl := labelString(c.labelNames, values)
	c.mu.Lock()
	c.values[lbl]++
	c.mu.Unlock()
}

func (c *CounterVec) Value(values ...string) float64 {
	if c == nil {
		return 0
	}
	lbl := labelString(c.labelNames, values)
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.values[lbl]
}

func (c *CounterVec) WritePrometheus(w io.Writer) error {
	if c == nil {
		return nil
	}
	if _, err := fmt.Fprintf(w, "# HELP %s %s\n# TYPE %s counter\n", c.name, c.help, c.name); err != nil {
		return err
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	keys := make([]string, 0, len(c.values))
	for k := range c.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if _, err := fmt.Fprintf(w, "%s%s %f\n", c.name, k, c.values[k]); err != nil {
			return err
		}
	}
	return nil
}

type HistogramVec struct {
	name       string
	help       string
	labelNames []string
	buckets    []float64
	mu         sync.RWMutex
	counts     map[string][]uint64
	sums       map[string]float64
	totals     map[string]uint64
}

func NewHistogramVec(name, help string, labels []string, buckets []float64) *HistogramVec {
	return &HistogramVec{
		name:       name,
		help:       help,
		labelNames: labels,
		buckets:    buckets,
		counts:     map[string][]uint64{},
		sums:       map[string]float64{},
		totals:     map[string]uint64{},
	}
}

func (h *HistogramVec) Observe(v float64, values ...string) {
	if h == nil {
		return
	}
	lbl := labelString(h.labelNames, values)
	h.mu.Lock()
	defer h.mu.Unlock()
	counts, ok := h.counts[lbl]
	if !ok {
		counts = make([]uint64, len(h.buckets))
		h.counts[lbl] = counts
	}
	for i, upper := range h.buckets {
		if v <= upper {
			counts[i]++
		}
	}
	h.sums[lbl] += v
	h.totals[lbl]++
}

func (h *HistogramVec) WritePrometheus(w io.Writer) error {
	if h == nil {
		return nil
	}
	if _, err := fmt.Fprintf(w, "# HELP %s %s\n# TYPE %s histogram\n", h.name, h.help, h.name); err != nil {
		return err
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	keys := make([]string, 0, len(h.totals))
	for k := range h.totals {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, lbl := range keys {
		for i, upper := range h.buckets {
			if _, err := fmt.Fprintf(w, "%s_bucket%s %d\n", h.name, withLE(lbl, upper), h.counts[lbl][i]); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "%s_sum%s %f\n", h.name, lbl, h.sums[lbl]); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "%s_count%s %d\n", h.name, lbl, h.totals[lbl]); err != nil {
			return err
		}
	}
	return nil
}

func withLE(lbl string, upper float64) string {
	le := fmt.Sprintf("le=%q", fmt.Sprintf("%g", upper))
	if lbl == "" {
		return "{" + le + "}"
	}
	return strings.TrimSuffix(lbl, "}") + "," + le + "}"
}

func labelString(names, values []string) string {
	if len(names) == 0 {
		return ""
	}
	parts := make([]string, 0, len(names))
	for i, name := range names {
		v := ""
		if i < len(values) {
			v = values[i]
		}
		parts = append(parts, fmt.Sprintf("%s=%q", name, v))
	}
	return "{" + strings.Join(parts, ",") + "}"
}
