package models

import "time"

// Label is the binary classifier outcome. 1 denotes diabetic-positive.
type Label int

const (
	LabelNotDiabetic Label = 0
	LabelDiabetic    Label = 1
)

func (l Label) String() string {
	if l == LabelDiabetic {
		return "Diabetic"
	}
	return "Not Diabetic"
}

type RiskBucket string

const (
	RiskLow     RiskBucket = "Low"
	RiskMedium  RiskBucket = "Medium"
	RiskHigh    RiskBucket = "High"
	RiskUnknown RiskBucket = "Unknown"
)

// Color returns the fixed display color for the bucket.
func (r RiskBucket) Color() string {
	switch r {
	case RiskLow:
		return "#2ecc71"
	case RiskMedium:
		return "#f1c40f"
	case RiskHigh:
		return "#e74c3c"
	default:
		return "#bdc3c7"
	}
}

// PredictionResult is the outcome of one pipeline run. Probability is nil
// when the classifier has no probability capability or the estimate failed.
// Risk is derived from the raw probability and can disagree with Label when
// the clinical override fired.
type PredictionResult struct {
	Label           Label      `json:"label"`
	ModelLabel      Label      `json:"model_label"`
	Probability     *float64   `json:"probability,omitempty"`
	Risk            RiskBucket `json:"risk"`
	OverrideApplied bool       `json:"override_applied"`
	Timestamp       time.Time  `json:"timestamp"`
}

// PredictionRecord is one row of the optional audit trail.
type PredictionRecord struct {
	ID              string    `json:"id"`
	CreatedAt       time.Time `json:"created_at"`
	PatientName     string    `json:"patient_name,omitempty"`
	Glucose         int       `json:"glucose"`
	BloodPressure   int       `json:"blood_pressure"`
	Insulin         int       `json:"insulin"`
	BMI             float64   `json:"bmi"`
	Age             int       `json:"age"`
	ModelLabel      int       `json:"model_label"`
	FinalLabel      int       `json:"final_label"`
	Probability     *float64  `json:"probability,omitempty"`
	Risk            string    `json:"risk"`
	OverrideApplied bool      `json:"override_applied"`
	TraceID         string    `json:"trace_id,omitempty"`
}
