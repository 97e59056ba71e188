package validation

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/tauheed-akhtar/diabetes-predictor/pkg/models"
)

// ErrInvalidInput indicates the input failed validation
var ErrInvalidInput = errors.New("invalid input")

const maxNameLength = 100

// SanitizeName trims whitespace and strips control characters from a
// patient name.
func SanitizeName(input string) string {
	input = strings.TrimSpace(input)
	input = strings.ReplaceAll(input, "\x00", "")

	var builder strings.Builder
	for _, r := range input {
		if !unicode.IsControl(r) {
			builder.WriteRune(r)
		}
	}

	return builder.String()
}

// ValidateSample checks every numeric field against its declared input
// domain. The name is optional; an overlong name is rejected.
func ValidateSample(s models.PatientSample) error {
	var errs []error

	if len(s.Name) > maxNameLength {
		errs = append(errs, fmt.Errorf("name must not exceed %d characters", maxNameLength))
	}

	checks := []struct {
		field string
		value float64
	}{
		{"Glucose", float64(s.Glucose)},
		{"BloodPressure", float64(s.BloodPressure)},
		{"Insulin", float64(s.Insulin)},
		{"BMI", s.BMI},
		{"Age", float64(s.Age)},
	}

	for _, c := range checks {
		limit := models.Limits[c.field]
		if c.value < limit.Min || c.value > limit.Max {
			errs = append(errs, fmt.Errorf("%s must be between %g and %g, got %g",
				c.field, limit.Min, limit.Max, c.value))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %v", ErrInvalidInput, errors.Join(errs...))
	}

	return nil
}
