package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecorder(t *testing.T) {
	r := NewWithRegistry(prometheus.NewRegistry())

	r.RecordFetch("profile", true, 0.1)
	r.RecordFetch("profile", false, 0.2)
	r.RecordFetch("profile", true, 0.1)
	r.RecordCacheSize(42)
	r.RecordScreenOutcome("buffetology", "passed")
	r.RecordError("fetch")

	assert.Equal(t, 2.0, testutil.ToFloat64(r.fetches.WithLabelValues("profile", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.fetches.WithLabelValues("profile", "error")))
	assert.Equal(t, 42.0, testutil.ToFloat64(r.cacheSymbols))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.screened.WithLabelValues("buffetology", "passed")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.errorsTotal.WithLabelValues("fetch")))
}
