package model

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeArtifact(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "model.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const logisticArtifact = `{
	"format": "diabetes-classifier/v1",
	"type": "logistic",
	"features": ["Glucose", "BloodPressure", "Insulin", "BMI", "Age"],
	"coefficients": [1.2, 0.3, 0.4, 0.9, 0.5],
	"intercept": -0.8,
	"means": [120.9, 69.1, 79.8, 32.0, 33.2],
	"scales": [32.0, 19.4, 115.2, 7.9, 11.8]
}`

const thresholdArtifact = `{
	"format": "diabetes-classifier/v1",
	"type": "threshold",
	"features": ["Glucose", "BloodPressure", "Insulin", "BMI", "Age"],
	"stumps": [
		{"feature": "Glucose", "cutoff": 140, "weight": 2.0},
		{"feature": "BMI", "cutoff": 30, "weight": 1.0}
	],
	"bias": -1.5
}`

func TestLoad_Logistic(t *testing.T) {
	clf, err := Load(writeArtifact(t, logisticArtifact))
	require.NoError(t, err)

	est, ok := clf.(ProbabilityEstimator)
	require.True(t, ok, "logistic artifact must support probability estimation")

	// High-everything row scores well above the mean profile.
	high := []float64{190, 110, 500, 45, 60}
	p, err := est.PredictProbability(high)
	require.NoError(t, err)
	assert.Greater(t, p, 0.5)

	label, err := clf.Predict(high)
	require.NoError(t, err)
	assert.Equal(t, 1, label)

	// Low-everything row scores below.
	low := []float64{70, 50, 20, 19, 21}
	p, err = est.PredictProbability(low)
	require.NoError(t, err)
	assert.Less(t, p, 0.5)

	label, err = clf.Predict(low)
	require.NoError(t, err)
	assert.Equal(t, 0, label)
}

func TestLoad_LogisticUnstandardized(t *testing.T) {
	// No means/scales: raw features feed the linear term directly.
	clf, err := Load(writeArtifact(t, `{
		"format": "diabetes-classifier/v1",
		"type": "logistic",
		"features": ["Glucose", "BloodPressure", "Insulin", "BMI", "Age"],
		"coefficients": [0, 0, 0, 0, 0],
		"intercept": 2.0
	}`))
	require.NoError(t, err)

	est := clf.(ProbabilityEstimator)
	p, err := est.PredictProbability([]float64{0, 0, 0, 0, 0})
	require.NoError(t, err)
	assert.InDelta(t, 0.8808, p, 0.001)
}

func TestLoad_Threshold(t *testing.T) {
	clf, err := Load(writeArtifact(t, thresholdArtifact))
	require.NoError(t, err)

	_, ok := clf.(ProbabilityEstimator)
	assert.False(t, ok, "threshold artifact must not expose probability estimation")

	label, err := clf.Predict([]float64{180, 90, 300, 35, 45})
	require.NoError(t, err)
	assert.Equal(t, 1, label)

	label, err = clf.Predict([]float64{100, 70, 100, 22, 30})
	require.NoError(t, err)
	assert.Equal(t, 0, label)
}

func TestLoad_Failures(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"corrupt json", `{"format": "diabetes-`},
		{"unknown format", `{"format": "other/v9", "type": "logistic", "features": ["Glucose", "BloodPressure", "Insulin", "BMI", "Age"]}`},
		{"unknown type", `{"format": "diabetes-classifier/v1", "type": "forest", "features": ["Glucose", "BloodPressure", "Insulin", "BMI", "Age"]}`},
		{"wrong feature order", `{"format": "diabetes-classifier/v1", "type": "logistic", "features": ["Age", "BloodPressure", "Insulin", "BMI", "Glucose"], "coefficients": [1, 1, 1, 1, 1]}`},
		{"missing coefficients", `{"format": "diabetes-classifier/v1", "type": "logistic", "features": ["Glucose", "BloodPressure", "Insulin", "BMI", "Age"]}`},
		{"empty stumps", `{"format": "diabetes-classifier/v1", "type": "threshold", "features": ["Glucose", "BloodPressure", "Insulin", "BMI", "Age"]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeArtifact(t, tt.content))
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrModelLoad)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrModelLoad)
}

func TestProbability_Helper(t *testing.T) {
	clf, err := Load(writeArtifact(t, thresholdArtifact))
	require.NoError(t, err)

	_, ok := Probability(clf, []float64{180, 90, 300, 35, 45})
	assert.False(t, ok)

	logistic, err := Load(writeArtifact(t, logisticArtifact))
	require.NoError(t, err)

	p, ok := Probability(logistic, []float64{180, 90, 300, 35, 45})
	assert.True(t, ok)
	assert.GreaterOrEqual(t, p, 0.0)
	assert.LessOrEqual(t, p, 1.0)
}
