package report

import (
	"fmt"

	"github.com/tauheed-akhtar/diabetes-predictor/pkg/models"
)

const (
	bannerClassOK      = "ok"
	bannerClassWarning = "warning"

	cardColorDiabetic    = "#00ccff"
	cardColorNotDiabetic = "#00ff99"
)

var dietSuggestions = []string{
	"Focus on Low-Glycemic Foods: Choose complex carbohydrates like whole grains, vegetables, and legumes.",
	"Lean Proteins: Include chicken, fish, beans, and tofu in your meals.",
	"Healthy Fats: Incorporate avocados, nuts, and olive oil to help manage blood sugar levels.",
	"Limit Sugary Drinks: Avoid sodas, juices, and other sweetened beverages.",
	"Portion Control: Be mindful of portion sizes to manage calorie intake.",
}

var exerciseSuggestions = []string{
	"Aerobic Exercise: Aim for at least 150 minutes of moderate-intensity activities per week, such as brisk walking, cycling, or swimming.",
	"Strength Training: Incorporate activities like weight lifting or bodyweight exercises at least twice a week to build muscle mass, which helps improve insulin sensitivity.",
	"Consistency is Key: Regular physical activity helps your body use insulin more effectively and can lower blood sugar levels.",
}

// Advice is the conditional recommendation block of a result fragment.
type Advice struct {
	ConsultDoctor bool     `json:"consult_doctor"`
	SpecialistURL string   `json:"specialist_url,omitempty"`
	Diet          []string `json:"diet,omitempty"`
	Exercise      []string `json:"exercise,omitempty"`
	WellnessTip   string   `json:"wellness_tip,omitempty"`
}

// Fragment is the on-screen rendition of one prediction, consumed by the
// UI collaborator.
type Fragment struct {
	Banner      string `json:"banner"`
	BannerClass string `json:"banner_class"`
	CardColor   string `json:"card_color"`

	Name        string `json:"name"`
	Probability string `json:"probability"`
	Risk        string `json:"risk"`
	RiskColor   string `json:"risk_color"`
	Inputs      string `json:"inputs"`

	Advice Advice `json:"advice"`
}

// BuildFragment assembles the result banner, detail panel, and advice
// block for a finished prediction.
func BuildFragment(sample models.PatientSample, result *models.PredictionResult) Fragment {
	f := Fragment{
		Name:        orNA(sample.Name),
		Probability: PercentText(result.Probability),
		Risk:        string(result.Risk),
		RiskColor:   result.Risk.Color(),
		Inputs: fmt.Sprintf("Glucose=%d, BP=%d, Insulin=%d, BMI=%g, Age=%d",
			sample.Glucose, sample.BloodPressure, sample.Insulin, sample.BMI, sample.Age),
	}

	if result.Label == models.LabelDiabetic {
		f.Banner = fmt.Sprintf("⚠️ %s has diabetes", sample.DisplayName())
		f.BannerClass = bannerClassWarning
		f.CardColor = cardColorDiabetic
		f.Advice = Advice{
			ConsultDoctor: true,
			SpecialistURL: "https://www.google.com/search?q=diabetes+doctor+near+me",
			Diet:          dietSuggestions,
			Exercise:      exerciseSuggestions,
		}
	} else {
		f.Banner = fmt.Sprintf("✅ %s has not diabetes", sample.DisplayName())
		f.BannerClass = bannerClassOK
		f.CardColor = cardColorNotDiabetic
		f.Advice = Advice{
			WellnessTip: "Maintain a healthy lifestyle with balanced diet and regular exercise.",
		}
	}

	return f
}
