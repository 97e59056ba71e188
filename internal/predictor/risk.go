package predictor

import "github.com/tauheed-akhtar/diabetes-predictor/pkg/models"

// Risk bucket boundaries over the positive-class probability.
const (
	lowRiskCeiling    = 0.34
	mediumRiskCeiling = 0.67
)

// RiskBucketFor maps a probability estimate to a qualitative risk tier.
// A nil probability is Unknown; the function is a pure step function
// otherwise.
func RiskBucketFor(probability *float64) models.RiskBucket {
	if probability == nil {
		return models.RiskUnknown
	}
	switch p := *probability; {
	case p < lowRiskCeiling:
		return models.RiskLow
	case p < mediumRiskCeiling:
		return models.RiskMedium
	default:
		return models.RiskHigh
	}
}
