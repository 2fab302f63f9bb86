// Package metrics cpca的prometheus指标
package metrics

import (
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/miajio/cpca/pkg/cpca"
)

// 结果标签
const (
	ResultPCA   = "pca"
	ResultNone  = "none"
	ResultEmpty = "empty"
)

// Metrics 指标集合
type Metrics struct {
	TransformTotal    *prometheus.CounterVec
	TransformDuration prometheus.Histogram
	DictionaryUnits   prometheus.Gauge
}

// New 创建指标并注册到reg; reg为nil时不注册
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		TransformTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "cpca",
				Name:      "transform_total",
				Help:      "Transform calls by result.",
			},
			[]string{"result"}, // pca|none|empty
		),
		TransformDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: "cpca",
				Name:      "transform_duration_seconds",
				Help:      "Latency of one Transform call.",
				Buckets:   []float64{0.00001, 0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05},
			},
		),
		DictionaryUnits: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: "cpca",
				Name:      "dictionary_units",
				Help:      "Administrative units loaded into the extractor.",
			},
		),
	}
	if reg != nil {
		reg.MustRegister(m.TransformTotal, m.TransformDuration, m.DictionaryUnits)
	}
	return m
}

// ObserveTransform 记录一次提取
func (m *Metrics) ObserveTransform(location string, seg cpca.Segmentation, elapsed time.Duration) {
	m.TransformDuration.Observe(elapsed.Seconds())
	m.TransformTotal.WithLabelValues(Result(location, seg)).Inc()
}

// Result 提取结果对应的标签
func Result(location string, seg cpca.Segmentation) string {
	switch {
	case seg.HasPCA():
		return ResultPCA
	case strings.TrimSpace(location) == "":
		return ResultEmpty
	default:
		return ResultNone
	}
}
