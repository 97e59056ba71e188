// Package report renders the prediction outcome as a downloadable
// plain-text document and an on-screen result fragment.
package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/tauheed-akhtar/diabetes-predictor/pkg/models"
)

const (
	reportHeader    = "===== Diabetes Prediction Report ====="
	reportSeparator = "──────────────────────────────────────"
	disclaimerLine  = "⚠️ Educational use only — not medical advice."
	authorLine      = "Tauheed Akhtar (UON)"
	projectLine     = "Diabetes Prediction App"

	consultLine    = "Consult with doctor"
	specialistLine = "Contact diabetes specialist: https://www.google.com/search?q=diabetes+doctor+near+me"
	wellnessLine   = "Tip: Maintain a balanced diet and regular exercise routine."
)

// Clock supplies the generation timestamp; injected so report bytes are
// reproducible in tests.
type Clock func() time.Time

// Generator builds text reports. The zero value is not usable; construct
// with NewGenerator.
type Generator struct {
	clock Clock
}

func NewGenerator(clock Clock) *Generator {
	if clock == nil {
		clock = time.Now
	}
	return &Generator{clock: clock}
}

// Text assembles the downloadable report for one prediction. Field order
// is fixed; output is deterministic for a fixed clock.
func (g *Generator) Text(sample models.PatientSample, result *models.PredictionResult) []byte {
	lines := []string{
		reportHeader,
		"Name: " + orNA(sample.Name),
		fmt.Sprintf("Glucose: %d", sample.Glucose),
		fmt.Sprintf("Blood Pressure: %d", sample.BloodPressure),
		fmt.Sprintf("Insulin: %d", sample.Insulin),
		fmt.Sprintf("BMI: %g", sample.BMI),
		fmt.Sprintf("Age: %d", sample.Age),
		"",
		"Prediction: " + result.Label.String(),
		"Risk Level: " + string(result.Risk),
		"Probability: " + PercentText(result.Probability),
		"",
	}

	if result.Label == models.LabelDiabetic {
		lines = append(lines, consultLine, specialistLine)
	} else {
		lines = append(lines, wellnessLine)
	}

	lines = append(lines,
		"",
		disclaimerLine,
		"",
		reportSeparator,
		"Prepared by: "+authorLine,
		"Project: "+projectLine,
		"Generated on: "+g.clock().Format("2006-01-02 15:04"),
	)

	return []byte(strings.Join(lines, "\n"))
}

// Filename derives the download filename from the patient name.
func Filename(name string) string {
	if name == "" {
		name = "patient"
	}
	return name + "_report.txt"
}

// PercentText formats a probability for display; "N/A" when absent.
func PercentText(probability *float64) string {
	if probability == nil {
		return "N/A"
	}
	return fmt.Sprintf("%.2f%%", *probability*100)
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
