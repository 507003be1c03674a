package observability

import (
	"testing"

	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/require"
)

func counterValue(t *testing.T, operation, outcome string) float64 {
	t.Helper()
	metric := &dto.Metric{}
	require.NoError(t, engineRequestCounter.WithLabelValues(operation, outcome).Write(metric))
	return metric.GetCounter().GetValue()
}

func TestRecordEngineRequestCountsByOutcome(t *testing.T) {
	before := counterValue(t, "signup", "conflict")

	RecordEngineRequest("signup", "conflict")
	RecordEngineRequest("signup", "conflict")

	require.Equal(t, before+2, counterValue(t, "signup", "conflict"))
}

func TestRecordEngineRequestAdvancesWatermarkOnSuccess(t *testing.T) {
	RecordEngineRequest("unregister", "success")

	metric := &dto.Metric{}
	require.NoError(t, lastChangeGauge.Write(metric))
	require.Greater(t, metric.GetGauge().GetValue(), float64(0))
}
