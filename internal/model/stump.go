package model

import (
	"fmt"

	"github.com/tauheed-akhtar/diabetes-predictor/pkg/models"
)

// thresholdVote is a weighted decision-stump ensemble. It only exposes the
// discrete predict capability; no probability estimation.
type thresholdVote struct {
	stumps []stump
	bias   float64
}

type stump struct {
	feature int
	cutoff  float64
	weight  float64
}

func newThresholdVote(af artifactFile) (*thresholdVote, error) {
	if len(af.Stumps) == 0 {
		return nil, fmt.Errorf("%w: threshold artifact has no stumps", ErrModelLoad)
	}

	stumps := make([]stump, 0, len(af.Stumps))
	for _, s := range af.Stumps {
		idx := featureIndex(s.Feature)
		if idx < 0 {
			return nil, fmt.Errorf("%w: threshold artifact references unknown feature %q", ErrModelLoad, s.Feature)
		}
		stumps = append(stumps, stump{feature: idx, cutoff: s.Cutoff, weight: s.Weight})
	}

	return &thresholdVote{stumps: stumps, bias: af.Bias}, nil
}

func (m *thresholdVote) Predict(features []float64) (int, error) {
	if len(features) != len(models.FeatureNames) {
		return 0, fmt.Errorf("feature row has %d values, expected %d", len(features), len(models.FeatureNames))
	}

	score := m.bias
	for _, s := range m.stumps {
		if features[s.feature] >= s.cutoff {
			score += s.weight
		}
	}
	if score >= 0 {
		return 1, nil
	}
	return 0, nil
}
