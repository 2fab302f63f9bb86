package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/miajio/cpca/pkg/cpca"
)

func TestObserveTransform(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.ObserveTransform("杭州市第十中学", cpca.Segmentation{CityName: "杭州市", Address: "第十中学"}, time.Millisecond)
	m.ObserveTransform("上海路990号", cpca.Segmentation{Address: "上海路990号"}, time.Millisecond)
	m.ObserveTransform("  ", cpca.Segmentation{}, time.Millisecond)
	m.ObserveTransform("", cpca.Segmentation{}, time.Millisecond)
	m.DictionaryUnits.Set(45)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.TransformTotal.WithLabelValues(ResultPCA)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.TransformTotal.WithLabelValues(ResultNone)))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.TransformTotal.WithLabelValues(ResultEmpty)))
	assert.Equal(t, 45.0, testutil.ToFloat64(m.DictionaryUnits))
	n, err := testutil.GatherAndCount(reg, "cpca_transform_total")
	assert.NoError(t, err)
	assert.Equal(t, 3, n)
}
