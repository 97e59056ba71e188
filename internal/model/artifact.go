package model

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/tauheed-akhtar/diabetes-predictor/pkg/models"
)

const artifactFormat = "diabetes-classifier/v1"

// artifactFile is the on-disk JSON layout of a serialized classifier.
type artifactFile struct {
	Format   string   `json:"format"`
	Type     string   `json:"type"`
	Features []string `json:"features"`

	// logistic
	Coefficients []float64 `json:"coefficients,omitempty"`
	Intercept    float64   `json:"intercept,omitempty"`
	Means        []float64 `json:"means,omitempty"`
	Scales       []float64 `json:"scales,omitempty"`
	Threshold    float64   `json:"threshold,omitempty"`

	// threshold vote
	Stumps []stumpSpec `json:"stumps,omitempty"`
	Bias   float64     `json:"bias,omitempty"`
}

type stumpSpec struct {
	Feature string  `json:"feature"`
	Cutoff  float64 `json:"cutoff"`
	Weight  float64 `json:"weight"`
}

// Load deserializes a classifier artifact from disk. Any failure wraps
// ErrModelLoad.
func Load(path string) (Classifier, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %v", ErrModelLoad, path, err)
	}

	var af artifactFile
	if err := json.Unmarshal(raw, &af); err != nil {
		return nil, fmt.Errorf("%w: parsing %s: %v", ErrModelLoad, path, err)
	}

	if af.Format != artifactFormat {
		return nil, fmt.Errorf("%w: unrecognized artifact format %q", ErrModelLoad, af.Format)
	}
	if err := checkFeatures(af.Features); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrModelLoad, err)
	}

	switch af.Type {
	case "logistic":
		return newLogistic(af)
	case "threshold":
		return newThresholdVote(af)
	default:
		return nil, fmt.Errorf("%w: unknown classifier type %q", ErrModelLoad, af.Type)
	}
}

func checkFeatures(features []string) error {
	if len(features) != len(models.FeatureNames) {
		return fmt.Errorf("artifact declares %d features, expected %d", len(features), len(models.FeatureNames))
	}
	for i, name := range models.FeatureNames {
		if features[i] != name {
			return fmt.Errorf("feature %d is %q, expected %q", i, features[i], name)
		}
	}
	return nil
}

func featureIndex(name string) int {
	for i, n := range models.FeatureNames {
		if n == name {
			return i
		}
	}
	return -1
}
