package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/tauheed-akhtar/diabetes-predictor/api"
	"github.com/tauheed-akhtar/diabetes-predictor/internal/events"
	"github.com/tauheed-akhtar/diabetes-predictor/internal/model"
	"github.com/tauheed-akhtar/diabetes-predictor/pkg/config"
)

// The artifact classifies on glucose and BMI alone, so test rows can
// target either verdict deterministically.
const testArtifact = `{
	"format": "diabetes-classifier/v1",
	"type": "logistic",
	"features": ["Glucose", "BloodPressure", "Insulin", "BMI", "Age"],
	"coefficients": [0.08, 0, 0, 0.2, 0],
	"intercept": -16.0
}`

type env struct {
	server *httptest.Server
}

func newEnv(t *testing.T) *env {
	t.Helper()

	path := filepath.Join(t.TempDir(), "model.json")
	require.NoError(t, os.WriteFile(path, []byte(testArtifact), 0o644))

	clf, err := model.Load(path)
	require.NoError(t, err)

	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)

	cfg, err := config.Load("")
	require.NoError(t, err)
	cfg.App.Mode = "test"
	cfg.Auth.OperatorPasswordHash = string(hash)
	cfg.WebSocket.Enabled = false

	bus := events.NewEventBus(cfg.Events.BufferSize)
	t.Cleanup(bus.Close)

	srv := api.NewServer(*cfg, clf, nil, bus)
	ts := httptest.NewServer(srv.Router())
	t.Cleanup(ts.Close)

	return &env{server: ts}
}

func (e *env) postJSON(t *testing.T, path string, body map[string]interface{}) *http.Response {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)

	resp, err := http.Post(e.server.URL+path, "application/json", bytes.NewReader(raw))
	require.NoError(t, err)
	return resp
}

func decode(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func riskyRow() map[string]interface{} {
	return map[string]interface{}{
		"name":           "Sana",
		"glucose":        190,
		"blood_pressure": 95,
		"insulin":        300,
		"bmi":            40.0,
		"age":            45,
	}
}

func healthyRow() map[string]interface{} {
	return map[string]interface{}{
		"name":           "Ali",
		"glucose":        100,
		"blood_pressure": 70,
		"insulin":        100,
		"bmi":            22.0,
		"age":            35,
	}
}

func TestPredictFlow_Diabetic(t *testing.T) {
	e := newEnv(t)

	resp := e.postJSON(t, "/predict", riskyRow())
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out struct {
		Result struct {
			Label           int      `json:"label"`
			Probability     *float64 `json:"probability"`
			Risk            string   `json:"risk"`
			OverrideApplied bool     `json:"override_applied"`
		} `json:"result"`
		Fragment struct {
			Banner    string `json:"banner"`
			CardColor string `json:"card_color"`
		} `json:"fragment"`
	}
	decode(t, resp, &out)

	assert.Equal(t, 1, out.Result.Label)
	require.NotNil(t, out.Result.Probability)
	assert.Equal(t, "High", out.Result.Risk)
	assert.False(t, out.Result.OverrideApplied)
	assert.Equal(t, "⚠️ Sana has diabetes", out.Fragment.Banner)
	assert.Equal(t, "#00ccff", out.Fragment.CardColor)
}

func TestPredictFlow_HealthyRow(t *testing.T) {
	e := newEnv(t)

	resp := e.postJSON(t, "/predict", healthyRow())
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out struct {
		Result struct {
			Label           int    `json:"label"`
			Risk            string `json:"risk"`
			OverrideApplied bool   `json:"override_applied"`
		} `json:"result"`
	}
	decode(t, resp, &out)

	// Low score for this row, so no override was needed.
	assert.Equal(t, 0, out.Result.Label)
	assert.Equal(t, "Low", out.Result.Risk)
	assert.False(t, out.Result.OverrideApplied)
}

func TestPredictFlow_Rejection(t *testing.T) {
	e := newEnv(t)

	row := riskyRow()
	row["glucose"] = 500
	resp := e.postJSON(t, "/predict", row)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestReportDownload(t *testing.T) {
	e := newEnv(t)

	resp := e.postJSON(t, "/predict/report", riskyRow())
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	assert.Equal(t, `attachment; filename="Sana_report.txt"`, resp.Header.Get("Content-Disposition"))
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/plain")

	buf := new(bytes.Buffer)
	_, err := buf.ReadFrom(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "===== Diabetes Prediction Report =====")
	assert.Contains(t, buf.String(), "Prediction: Diabetic")
}

func TestHospitalsEndpoint(t *testing.T) {
	e := newEnv(t)

	resp, err := http.Get(e.server.URL + "/hospitals")
	require.NoError(t, err)

	var out struct {
		Count int `json:"count"`
	}
	decode(t, resp, &out)
	assert.Equal(t, 3, out.Count)
}

func TestHealthAndMetrics(t *testing.T) {
	e := newEnv(t)

	resp, err := http.Get(e.server.URL + "/health")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = http.Get(e.server.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	buf := new(bytes.Buffer)
	_, err = buf.ReadFrom(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "predictor_predictions_total")
}

func TestAuthAndHistory(t *testing.T) {
	e := newEnv(t)

	// History is protected.
	resp, err := http.Get(e.server.URL + "/predictions")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	// Login, then retry with the token. The audit trail is disabled in
	// this environment, so the protected route answers 503.
	resp = e.postJSON(t, "/auth/login", map[string]interface{}{
		"username": "operator",
		"password": "s3cret",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var login struct {
		Token     string    `json:"token"`
		ExpiresAt time.Time `json:"expires_at"`
	}
	decode(t, resp, &login)
	require.NotEmpty(t, login.Token)

	req, err := http.NewRequest(http.MethodGet, e.server.URL+"/predictions", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+login.Token)

	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}

func TestDefaultsEndpoint(t *testing.T) {
	e := newEnv(t)

	resp, err := http.Get(e.server.URL + "/predict/defaults")
	require.NoError(t, err)

	var out struct {
		Features []string           `json:"features"`
		Defaults map[string]float64 `json:"defaults"`
	}
	decode(t, resp, &out)
	assert.Equal(t, []string{"Glucose", "BloodPressure", "Insulin", "BMI", "Age"}, out.Features)
	assert.Equal(t, float64(117), out.Defaults["Glucose"])
}
