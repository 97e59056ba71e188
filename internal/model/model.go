// Package model wraps the pre-trained classifier artifact loaded at
// startup. A loaded classifier is read-only and safe for concurrent use.
package model

import "errors"

// ErrModelLoad marks a classifier artifact that is missing, corrupt, or
// of an unrecognized format. Fatal at startup; the process must not serve
// predictions without a model.
var ErrModelLoad = errors.New("model load failed")

// Classifier is the minimal capability every artifact must expose: a
// discrete binary prediction over the fixed 5-feature row
// (Glucose, BloodPressure, Insulin, BMI, Age). 1 is diabetic-positive.
type Classifier interface {
	Predict(features []float64) (int, error)
}

// ProbabilityEstimator is the optional capability of assigning a
// probability to the positive class. Discovered by type assertion, never
// assumed.
type ProbabilityEstimator interface {
	PredictProbability(features []float64) (float64, error)
}

// Probability returns the positive-class probability if the classifier
// supports estimation. Absence or an estimation failure degrades to
// (0, false); probability is an enhancement, never a requirement.
func Probability(c Classifier, features []float64) (float64, bool) {
	est, ok := c.(ProbabilityEstimator)
	if !ok {
		return 0, false
	}
	p, err := est.PredictProbability(features)
	if err != nil {
		return 0, false
	}
	if p < 0 || p > 1 {
		return 0, false
	}
	return p, true
}
