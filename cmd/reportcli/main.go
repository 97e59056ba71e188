// reportcli runs a single prediction from the command line and writes the
// plain-text report to a file.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/tauheed-akhtar/diabetes-predictor/internal/model"
	"github.com/tauheed-akhtar/diabetes-predictor/internal/predictor"
	"github.com/tauheed-akhtar/diabetes-predictor/internal/report"
	"github.com/tauheed-akhtar/diabetes-predictor/pkg/models"
	"github.com/tauheed-akhtar/diabetes-predictor/pkg/validation"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	modelPath := flag.String("model", "diabetes_model.json", "path to the classifier artifact")
	name := flag.String("name", "", "patient name (optional)")
	glucose := flag.Int("glucose", int(models.Defaults["Glucose"]), "glucose (mg/dL)")
	bp := flag.Int("bp", int(models.Defaults["BloodPressure"]), "blood pressure (mm Hg)")
	insulin := flag.Int("insulin", int(models.Defaults["Insulin"]), "insulin (mu U/ml)")
	bmi := flag.Float64("bmi", models.Defaults["BMI"], "BMI (kg/m²)")
	age := flag.Int("age", int(models.Defaults["Age"]), "age (years)")
	out := flag.String("out", "", "report output path (defaults to <name>_report.txt)")
	flag.Parse()

	_ = godotenv.Load()

	sample := models.PatientSample{
		Name:          validation.SanitizeName(*name),
		Glucose:       *glucose,
		BloodPressure: *bp,
		Insulin:       *insulin,
		BMI:           *bmi,
		Age:           *age,
	}
	if err := validation.ValidateSample(sample); err != nil {
		return err
	}

	clf, err := model.Load(*modelPath)
	if err != nil {
		return err
	}

	pipeline := predictor.New(clf)
	result, err := pipeline.Predict(context.Background(), sample)
	if err != nil {
		return err
	}

	fragment := report.BuildFragment(sample, result)
	fmt.Println(fragment.Banner)
	fmt.Printf("Estimated Risk: %s [%s]\n", fragment.Probability, fragment.Risk)
	fmt.Printf("Inputs: %s\n", fragment.Inputs)

	outPath := *out
	if outPath == "" {
		outPath = report.Filename(sample.Name)
	}

	body := report.NewGenerator(nil).Text(sample, result)
	if err := os.WriteFile(outPath, body, 0o644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	fmt.Printf("Report written to %s\n", outPath)
	return nil
}
