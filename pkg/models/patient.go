package models

// Feature order fed to the classifier. The artifact on disk must declare
// the same order or loading fails.
var FeatureNames = []string{"Glucose", "BloodPressure", "Insulin", "BMI", "Age"}

// FieldLimit is the inclusive input domain for one numeric field.
type FieldLimit struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Limits are the accepted input domains, matching the Pima dataset ranges.
// Age is capped at 120 rather than the dataset maximum of 81 so real
// patients outside the training range are still accepted.
var Limits = map[string]FieldLimit{
	"Glucose":       {Min: 0, Max: 199},
	"BloodPressure": {Min: 0, Max: 122},
	"Insulin":       {Min: 0, Max: 846},
	"BMI":           {Min: 0.0, Max: 67.1},
	"Age":           {Min: 21, Max: 120},
}

// Defaults are the pre-filled form values for the UI collaborator.
var Defaults = map[string]float64{
	"Glucose":       117,
	"BloodPressure": 72,
	"Insulin":       30,
	"BMI":           32.0,
	"Age":           29,
}

// PatientSample holds one set of clinical measurements. It exists only for
// the duration of a single prediction request.
type PatientSample struct {
	Name          string  `json:"name,omitempty"`
	Glucose       int     `json:"glucose"`
	BloodPressure int     `json:"blood_pressure"`
	Insulin       int     `json:"insulin"`
	BMI           float64 `json:"bmi"`
	Age           int     `json:"age"`
}

// FeatureVector returns the sample as a row in classifier feature order.
func (s PatientSample) FeatureVector() []float64 {
	return []float64{
		float64(s.Glucose),
		float64(s.BloodPressure),
		float64(s.Insulin),
		s.BMI,
		float64(s.Age),
	}
}

// DisplayName returns the patient name or a generic placeholder.
func (s PatientSample) DisplayName() string {
	if s.Name == "" {
		return "Patient"
	}
	return s.Name
}
