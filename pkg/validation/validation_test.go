package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tauheed-akhtar/diabetes-predictor/pkg/models"
)

func validSample() models.PatientSample {
	return models.PatientSample{
		Name:          "Ali",
		Glucose:       117,
		BloodPressure: 72,
		Insulin:       30,
		BMI:           32.0,
		Age:           29,
	}
}

func TestValidateSample_OK(t *testing.T) {
	assert.NoError(t, ValidateSample(validSample()))

	// Empty name is fine.
	s := validSample()
	s.Name = ""
	assert.NoError(t, ValidateSample(s))
}

func TestValidateSample_Boundaries(t *testing.T) {
	s := validSample()
	s.Glucose = 0
	s.BloodPressure = 122
	s.Insulin = 846
	s.BMI = 67.1
	s.Age = 21
	assert.NoError(t, ValidateSample(s))
}

func TestValidateSample_OutOfDomain(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.PatientSample)
		field  string
	}{
		{"glucose too high", func(s *models.PatientSample) { s.Glucose = 200 }, "Glucose"},
		{"glucose negative", func(s *models.PatientSample) { s.Glucose = -1 }, "Glucose"},
		{"bp too high", func(s *models.PatientSample) { s.BloodPressure = 123 }, "BloodPressure"},
		{"insulin too high", func(s *models.PatientSample) { s.Insulin = 847 }, "Insulin"},
		{"bmi too high", func(s *models.PatientSample) { s.BMI = 67.2 }, "BMI"},
		{"age below minimum", func(s *models.PatientSample) { s.Age = 20 }, "Age"},
		{"age above maximum", func(s *models.PatientSample) { s.Age = 121 }, "Age"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := validSample()
			tt.mutate(&s)

			err := ValidateSample(s)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.Contains(t, err.Error(), tt.field)
		})
	}
}

func TestValidateSample_CollectsAllFailures(t *testing.T) {
	s := validSample()
	s.Glucose = 500
	s.Age = 5

	err := ValidateSample(s)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Glucose")
	assert.Contains(t, err.Error(), "Age")
}

func TestValidateSample_NameTooLong(t *testing.T) {
	s := validSample()
	s.Name = strings.Repeat("a", 101)

	err := ValidateSample(s)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestSanitizeName(t *testing.T) {
	assert.Equal(t, "Ali", SanitizeName("  Ali  "))
	assert.Equal(t, "Ali", SanitizeName("A\x00li"))
	assert.Equal(t, "Ali", SanitizeName("A\tl\ni"))
	assert.Equal(t, "", SanitizeName("   "))
}
