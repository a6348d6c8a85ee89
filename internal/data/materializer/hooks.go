package materializer

import (
	"strings"
	"time"

	"github.com/vantagecare/practice-backend/internal/observability"
)

// Hooks captures materializer-level observability events.
type Hooks interface {
	ObserveMaterialize(op, status string, dur time.Duration)
	IncConflict(op string)
	IncRetry(op string)
	IncPublished(eventType string)
	IncPublishFailure()
}

type noopHooks struct{}

func (noopHooks) ObserveMaterialize(string, string, time.Duration) {}
func (noopHooks) IncConflict(string)                               {}
func (noopHooks) IncRetry(string)                                  {}
func (noopHooks) IncPublished(string)                              {}
func (noopHooks) IncPublishFailure()                               {}

type metricsHooks struct {
	metrics *observability.Metrics
}

// NewMetricsHooks creates materializer hooks backed by observability metrics.
func NewMetricsHooks(metrics *observability.Metrics) Hooks {
	if metrics == nil {
		return noopHooks{}
	}
	return &metricsHooks{metrics: metrics}
}

func (h *metricsHooks) ObserveMaterialize(op, status string, dur time.Duration) {
	h.metrics.ObserveMaterialize(strings.TrimSpace(op), strings.TrimSpace(status), dur)
}

func (h *metricsHooks) IncConflict(op string) {
	h.metrics.IncConflict(strings.TrimSpace(op))
}

func (h *metricsHooks) IncRetry(op string) {
	h.metrics.IncRetry(strings.TrimSpace(op))
}

func (h *metricsHooks) IncPublished(eventType string) {
	h.metrics.IncPublished(strings.TrimSpace(eventType))
}

func (h *metricsHooks) IncPublishFailure() {
	h.metrics.IncPublishFailure()
}
