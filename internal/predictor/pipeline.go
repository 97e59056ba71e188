// Package predictor runs the decision pipeline: score the sample, apply
// the clinical-range override, derive the risk bucket.
package predictor

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/tauheed-akhtar/diabetes-predictor/internal/logger"
	"github.com/tauheed-akhtar/diabetes-predictor/internal/model"
	"github.com/tauheed-akhtar/diabetes-predictor/pkg/models"
)

// ErrPrediction marks a failed scoring call. Per-request, no retry; the
// caller must re-submit.
var ErrPrediction = errors.New("prediction failed")

// Pipeline scores patient samples against an injected classifier. It is
// stateless and safe for concurrent use.
type Pipeline struct {
	clf model.Classifier
}

func New(clf model.Classifier) *Pipeline {
	return &Pipeline{clf: clf}
}

// Predict runs one sample through the full decision sequence. Inputs are
// assumed to be within their declared domains; the input-collection layer
// rejects out-of-domain values before they reach here.
func (p *Pipeline) Predict(ctx context.Context, sample models.PatientSample) (*models.PredictionResult, error) {
	features := sample.FeatureVector()

	rawLabel, err := p.clf.Predict(features)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPrediction, err)
	}

	var probability *float64
	if prob, ok := model.Probability(p.clf, features); ok {
		probability = &prob
	}

	result := &models.PredictionResult{
		Label:       models.Label(rawLabel),
		ModelLabel:  models.Label(rawLabel),
		Probability: probability,
		Risk:        RiskBucketFor(probability),
		Timestamp:   time.Now(),
	}

	// The override only ever forces a positive verdict to negative.
	if Healthy(sample) && result.Label == models.LabelDiabetic {
		result.Label = models.LabelNotDiabetic
		result.OverrideApplied = true
		logger.InfoCtxf(ctx, "Clinical override: model verdict %s forced to %s",
			result.ModelLabel, result.Label)
	}

	logger.InfoCtxf(ctx, "Prediction: label=%s model_label=%s risk=%s override=%v",
		result.Label, result.ModelLabel, result.Risk, result.OverrideApplied)

	return result, nil
}

// Healthy reports whether every raw input sits inside its clinical normal
// range. A healthy sample forces the final label to Not Diabetic
// regardless of the model verdict.
func Healthy(s models.PatientSample) bool {
	return s.Glucose >= 70 && s.Glucose <= 120 &&
		s.BloodPressure >= 60 && s.BloodPressure <= 80 &&
		s.Insulin >= 15 && s.Insulin <= 276 &&
		s.BMI >= 18.5 && s.BMI <= 24.9 &&
		s.Age >= 18 && s.Age <= 60
}
