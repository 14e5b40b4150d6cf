package normalization

import (
	"sync"

	"github.com/buildbarn/bb-pathname/pkg/clock"
	"github.com/buildbarn/bb-pathname/pkg/filesystem/path"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	normalizerPrometheusMetrics sync.Once

	normalizerOperationsDurationSeconds = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "buildbarn",
			Subsystem: "pathname",
			Name:      "normalizer_operations_duration_seconds",
			Help:      "Amount of time spent per normalization of a pathname string, in seconds.",
			Buckets:   prometheus.ExponentialBuckets(1e-7, 4, 12),
		},
		[]string{"name"})
	normalizerComponentsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "buildbarn",
			Subsystem: "pathname",
			Name:      "normalizer_components_total",
			Help:      "Number of pathname components observed by normalizers, per kind of component.",
		},
		[]string{"name", "kind"})
	normalizerBytesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "buildbarn",
			Subsystem: "pathname",
			Name:      "normalizer_bytes_total",
			Help:      "Number of bytes of pathname strings consumed and produced by normalizers.",
		},
		[]string{"name", "direction"})
)

func registerNormalizerMetrics() {
	normalizerPrometheusMetrics.Do(func() {
		prometheus.MustRegister(normalizerOperationsDurationSeconds)
		prometheus.MustRegister(normalizerComponentsTotal)
		prometheus.MustRegister(normalizerBytesTotal)
	})
}

type metricsComponentVisitor struct {
	current prometheus.Counter
	parent  prometheus.Counter
	empty   prometheus.Counter
	item    prometheus.Counter
}

// NewMetricsComponentVisitor creates a ComponentVisitor that increments
// a Prometheus counter for every pathname component that is visited,
// labeled with the kind of the component. It can be provided to
// NewTrimmingNormalizer() to count components without parsing pathname
// strings a second time.
func NewMetricsComponentVisitor(name string) path.ComponentVisitor {
	registerNormalizerMetrics()

	return &metricsComponentVisitor{
		current: normalizerComponentsTotal.WithLabelValues(name, path.ComponentKindCurrent.String()),
		parent:  normalizerComponentsTotal.WithLabelValues(name, path.ComponentKindParent.String()),
		empty:   normalizerComponentsTotal.WithLabelValues(name, path.ComponentKindEmpty.String()),
		item:    normalizerComponentsTotal.WithLabelValues(name, path.ComponentKindItem.String()),
	}
}

func (v *metricsComponentVisitor) OnCurrent()         { v.current.Inc() }
func (v *metricsComponentVisitor) OnParent()          { v.parent.Inc() }
func (v *metricsComponentVisitor) OnEmpty()           { v.empty.Inc() }
func (v *metricsComponentVisitor) OnItem(name string) { v.item.Inc() }

type metricsNormalizer struct {
	base  Normalizer
	clock clock.Clock

	durationSeconds prometheus.Observer
	bytesIn         prometheus.Counter
	bytesOut        prometheus.Counter
}

// NewMetricsNormalizer creates a decorator for Normalizer that exposes
// Prometheus metrics on the duration of each call and the sizes of the
// pathname strings that are consumed and produced.
func NewMetricsNormalizer(base Normalizer, clock clock.Clock, name string) Normalizer {
	registerNormalizerMetrics()

	return &metricsNormalizer{
		base:            base,
		clock:           clock,
		durationSeconds: normalizerOperationsDurationSeconds.WithLabelValues(name),
		bytesIn:         normalizerBytesTotal.WithLabelValues(name, "in"),
		bytesOut:        normalizerBytesTotal.WithLabelValues(name, "out"),
	}
}

func (n *metricsNormalizer) Normalize(raw string) string {
	timeStart := n.clock.Now()
	normalized := n.base.Normalize(raw)
	n.durationSeconds.Observe(n.clock.Now().Sub(timeStart).Seconds())

	n.bytesIn.Add(float64(len(raw)))
	n.bytesOut.Add(float64(len(normalized)))
	return normalized
}
