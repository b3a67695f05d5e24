package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestOperations_Observe(t *testing.T) {
	reg := prometheus.NewRegistry()
	ops := NewOperations(reg)

	ops.Observe("deposit", "success", 20*time.Millisecond)
	ops.Observe("deposit", "success", 30*time.Millisecond)
	ops.Observe("transfer", "transport", time.Second)

	assert.InDelta(t, 2, testutil.ToFloat64(ops.total.WithLabelValues("deposit", "success")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(ops.total.WithLabelValues("transfer", "transport")), 0)
	assert.Equal(t, 2, testutil.CollectAndCount(ops.duration))
}

func TestOperations_RejectSkipsLatency(t *testing.T) {
	reg := prometheus.NewRegistry()
	ops := NewOperations(reg)

	ops.Reject("transfer", "usage")
	ops.Reject("transfer", "usage")

	assert.InDelta(t, 2, testutil.ToFloat64(ops.total.WithLabelValues("transfer", "usage")), 0)
	assert.Equal(t, 0, testutil.CollectAndCount(ops.duration))
}

func TestOperations_NilIsNoop(t *testing.T) {
	var ops *Operations
	assert.NotPanics(t, func() {
		ops.Observe("deposit", "success", time.Millisecond)
		ops.Reject("transfer", "usage")
	})
}
