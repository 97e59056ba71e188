package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMetrics_Render(t *testing.T) {
	m := Get()
	assert.Same(t, m, Get())

	m.IncPrediction("Diabetic", "High", false)
	m.IncPrediction("Not Diabetic", "Low", true)
	m.IncPredictionError()
	m.IncProbabilityAbsent()
	m.IncReport()

	out := m.Render()

	assert.Contains(t, out, "# TYPE predictor_predictions_total counter")
	assert.Contains(t, out, `predictor_predictions_total{label="Diabetic"}`)
	assert.Contains(t, out, `predictor_predictions_total{label="Not Diabetic"}`)
	assert.Contains(t, out, `predictor_risk_buckets_total{risk="High"}`)
	assert.Contains(t, out, `predictor_risk_buckets_total{risk="Low"}`)
	assert.Contains(t, out, "predictor_overrides_total")
	assert.Contains(t, out, "predictor_prediction_errors_total")
	assert.Contains(t, out, "predictor_probability_absent_total")
	assert.Contains(t, out, "predictor_reports_total")
}
