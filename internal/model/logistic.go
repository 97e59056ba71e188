package model

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/tauheed-akhtar/diabetes-predictor/pkg/models"
)

// logisticModel is a standardized logistic regression. It supports both
// the discrete predict capability and probability estimation.
type logisticModel struct {
	weights   *mat.VecDense
	intercept float64
	means     []float64
	scales    []float64
	threshold float64
}

func newLogistic(af artifactFile) (*logisticModel, error) {
	n := len(models.FeatureNames)
	if len(af.Coefficients) != n {
		return nil, fmt.Errorf("%w: logistic artifact has %d coefficients, expected %d", ErrModelLoad, len(af.Coefficients), n)
	}
	if len(af.Means) != 0 && len(af.Means) != n {
		return nil, fmt.Errorf("%w: logistic artifact has %d means, expected %d", ErrModelLoad, len(af.Means), n)
	}
	if len(af.Scales) != 0 && len(af.Scales) != n {
		return nil, fmt.Errorf("%w: logistic artifact has %d scales, expected %d", ErrModelLoad, len(af.Scales), n)
	}
	for _, s := range af.Scales {
		if s == 0 {
			return nil, fmt.Errorf("%w: logistic artifact has a zero feature scale", ErrModelLoad)
		}
	}

	threshold := af.Threshold
	if threshold == 0 {
		threshold = 0.5
	}

	return &logisticModel{
		weights:   mat.NewVecDense(n, append([]float64(nil), af.Coefficients...)),
		intercept: af.Intercept,
		means:     af.Means,
		scales:    af.Scales,
		threshold: threshold,
	}, nil
}

func (m *logisticModel) Predict(features []float64) (int, error) {
	p, err := m.PredictProbability(features)
	if err != nil {
		return 0, err
	}
	if p >= m.threshold {
		return 1, nil
	}
	return 0, nil
}

func (m *logisticModel) PredictProbability(features []float64) (float64, error) {
	n := m.weights.Len()
	if len(features) != n {
		return 0, fmt.Errorf("feature row has %d values, expected %d", len(features), n)
	}

	row := make([]float64, n)
	copy(row, features)
	if len(m.means) == n && len(m.scales) == n {
		for i := range row {
			row[i] = (row[i] - m.means[i]) / m.scales[i]
		}
	}

	z := m.intercept + mat.Dot(m.weights, mat.NewVecDense(n, row))
	return sigmoid(z), nil
}

func sigmoid(z float64) float64 {
	return 1.0 / (1.0 + math.Exp(-z))
}
