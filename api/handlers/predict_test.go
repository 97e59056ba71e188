package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tauheed-akhtar/diabetes-predictor/internal/events"
	"github.com/tauheed-akhtar/diabetes-predictor/internal/model"
	"github.com/tauheed-akhtar/diabetes-predictor/internal/predictor"
	"github.com/tauheed-akhtar/diabetes-predictor/internal/report"
)

// stubClassifier returns a fixed label with an optional probability.
type stubClassifier struct {
	label int
	prob  *float64
	err   error
}

func (s *stubClassifier) Predict(features []float64) (int, error) {
	return s.label, s.err
}

// probClassifier layers probability estimation over stubClassifier.
type probClassifier struct {
	stubClassifier
}

func (s *probClassifier) PredictProbability(features []float64) (float64, error) {
	return *s.prob, nil
}

func fixedClock() time.Time {
	return time.Date(2025, 3, 14, 15, 9, 0, 0, time.UTC)
}

func newTestRouter(t *testing.T, h *PredictHandler) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/predict", h.Predict)
	r.POST("/predict/report", h.Report)
	r.GET("/predict/defaults", h.Defaults)
	return r
}

func newPredictHandler(t *testing.T, clf model.Classifier) *PredictHandler {
	t.Helper()
	bus := events.NewEventBus(16)
	t.Cleanup(bus.Close)
	return NewPredictHandler(
		predictor.New(clf),
		report.NewGenerator(fixedClock),
		events.NewPublisher(bus),
		nil,
	)
}

func predictBody(t *testing.T, overrides map[string]interface{}) *bytes.Reader {
	t.Helper()
	body := map[string]interface{}{
		"name":           "Ali",
		"glucose":        180,
		"blood_pressure": 95,
		"insulin":        300,
		"bmi":            35.0,
		"age":            45,
	}
	for k, v := range overrides {
		if v == nil {
			delete(body, k)
		} else {
			body[k] = v
		}
	}
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	return bytes.NewReader(raw)
}

func TestPredict_OK(t *testing.T) {
	prob := 0.82
	h := newPredictHandler(t, &probClassifier{stubClassifier{label: 1, prob: &prob}})
	r := newTestRouter(t, h)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/predict", predictBody(t, nil))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp PredictResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Diabetic", resp.Result.Label.String())
	require.NotNil(t, resp.Result.Probability)
	assert.Equal(t, 0.82, *resp.Result.Probability)
	assert.Equal(t, "High", string(resp.Result.Risk))
	assert.False(t, resp.Result.OverrideApplied)
	assert.Equal(t, "⚠️ Ali has diabetes", resp.Fragment.Banner)
	assert.Equal(t, "82.00%", resp.Fragment.Probability)
}

func TestPredict_OverrideOnHealthySample(t *testing.T) {
	h := newPredictHandler(t, &stubClassifier{label: 1})
	r := newTestRouter(t, h)

	body := predictBody(t, map[string]interface{}{
		"glucose": 100, "blood_pressure": 70, "insulin": 100, "bmi": 22.0, "age": 35,
	})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/predict", body)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp PredictResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Not Diabetic", resp.Result.Label.String())
	assert.True(t, resp.Result.OverrideApplied)
	assert.Equal(t, "✅ Ali has not diabetes", resp.Fragment.Banner)
}

func TestPredict_MissingField(t *testing.T) {
	h := newPredictHandler(t, &stubClassifier{label: 0})
	r := newTestRouter(t, h)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/predict", predictBody(t, map[string]interface{}{"glucose": nil}))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid request body")
}

func TestPredict_OutOfDomain(t *testing.T) {
	h := newPredictHandler(t, &stubClassifier{label: 0})
	r := newTestRouter(t, h)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/predict", predictBody(t, map[string]interface{}{"glucose": 500}))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Glucose")
}

func TestPredict_MalformedBody(t *testing.T) {
	h := newPredictHandler(t, &stubClassifier{label: 0})
	r := newTestRouter(t, h)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/predict", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPredict_ClassifierFailure(t *testing.T) {
	h := newPredictHandler(t, &stubClassifier{err: errors.New("scoring blew up")})
	r := newTestRouter(t, h)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/predict", predictBody(t, nil))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "prediction failed, please re-submit")
}

func TestReport_Download(t *testing.T) {
	h := newPredictHandler(t, &stubClassifier{label: 1})
	r := newTestRouter(t, h)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/predict/report", predictBody(t, nil))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `attachment; filename="Ali_report.txt"`, w.Header().Get("Content-Disposition"))
	assert.Contains(t, w.Header().Get("Content-Type"), "text/plain")

	body := w.Body.String()
	assert.Contains(t, body, "===== Diabetes Prediction Report =====")
	assert.Contains(t, body, "Name: Ali")
	assert.Contains(t, body, "Prediction: Diabetic")
	assert.Contains(t, body, "Probability: N/A")
	assert.Contains(t, body, "Generated on: 2025-03-14 15:09")
}

func TestReport_AnonymousFilename(t *testing.T) {
	h := newPredictHandler(t, &stubClassifier{label: 0})
	r := newTestRouter(t, h)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/predict/report", predictBody(t, map[string]interface{}{"name": ""}))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `attachment; filename="patient_report.txt"`, w.Header().Get("Content-Disposition"))
	assert.Contains(t, w.Body.String(), "Name: N/A")
}

func TestDefaults(t *testing.T) {
	h := newPredictHandler(t, &stubClassifier{label: 0})
	r := newTestRouter(t, h)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/predict/defaults", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Features []string                  `json:"features"`
		Defaults map[string]float64        `json:"defaults"`
		Limits   map[string]map[string]any `json:"limits"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, []string{"Glucose", "BloodPressure", "Insulin", "BMI", "Age"}, resp.Features)
	assert.Len(t, resp.Defaults, 5)
	assert.Len(t, resp.Limits, 5)
}
