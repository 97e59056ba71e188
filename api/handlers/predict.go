package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tauheed-akhtar/diabetes-predictor/api/middleware"
	"github.com/tauheed-akhtar/diabetes-predictor/internal/events"
	"github.com/tauheed-akhtar/diabetes-predictor/internal/logger"
	"github.com/tauheed-akhtar/diabetes-predictor/internal/metrics"
	"github.com/tauheed-akhtar/diabetes-predictor/internal/predictor"
	"github.com/tauheed-akhtar/diabetes-predictor/internal/report"
	"github.com/tauheed-akhtar/diabetes-predictor/pkg/database/queries"
	"github.com/tauheed-akhtar/diabetes-predictor/pkg/models"
	"github.com/tauheed-akhtar/diabetes-predictor/pkg/validation"
)

type PredictHandler struct {
	pipeline  *predictor.Pipeline
	reports   *report.Generator
	publisher *events.Publisher
	audit     *queries.PredictionRepository // nil when the audit trail is disabled
}

func NewPredictHandler(
	pipeline *predictor.Pipeline,
	reports *report.Generator,
	publisher *events.Publisher,
	audit *queries.PredictionRepository,
) *PredictHandler {
	return &PredictHandler{
		pipeline:  pipeline,
		reports:   reports,
		publisher: publisher,
		audit:     audit,
	}
}

// PredictRequest carries one set of patient measurements. Numeric fields
// are pointers so a missing field is distinguishable from a zero value.
type PredictRequest struct {
	Name          string   `json:"name" example:"Jane Doe"`
	Glucose       *int     `json:"glucose" binding:"required" example:"117"`
	BloodPressure *int     `json:"blood_pressure" binding:"required" example:"72"`
	Insulin       *int     `json:"insulin" binding:"required" example:"30"`
	BMI           *float64 `json:"bmi" binding:"required" example:"32.0"`
	Age           *int     `json:"age" binding:"required" example:"29"`
}

func (r PredictRequest) toSample() models.PatientSample {
	return models.PatientSample{
		Name:          validation.SanitizeName(r.Name),
		Glucose:       *r.Glucose,
		BloodPressure: *r.BloodPressure,
		Insulin:       *r.Insulin,
		BMI:           *r.BMI,
		Age:           *r.Age,
	}
}

type PredictResponse struct {
	Result   *models.PredictionResult `json:"result"`
	Fragment report.Fragment          `json:"fragment"`
}

// Predict godoc
// @Summary Run a prediction
// @Description Scores one patient sample and returns the result fragment
// @Tags Prediction
// @Accept json
// @Produce json
// @Param sample body PredictRequest true "Patient measurements"
// @Success 200 {object} PredictResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Prediction failed"
// @Router /predict [post]
func (h *PredictHandler) Predict(c *gin.Context) {
	sample, ok := h.bindSample(c)
	if !ok {
		return
	}

	result, ok := h.runPipeline(c, sample)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, PredictResponse{
		Result:   result,
		Fragment: report.BuildFragment(sample, result),
	})
}

// Report godoc
// @Summary Download a prediction report
// @Description Scores one patient sample and returns the plain-text report
// @Tags Prediction
// @Accept json
// @Produce plain
// @Param sample body PredictRequest true "Patient measurements"
// @Success 200 {string} string "Text report"
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Prediction failed"
// @Router /predict/report [post]
func (h *PredictHandler) Report(c *gin.Context) {
	sample, ok := h.bindSample(c)
	if !ok {
		return
	}

	result, ok := h.runPipeline(c, sample)
	if !ok {
		return
	}

	filename := report.Filename(sample.Name)
	body := h.reports.Text(sample, result)

	metrics.Get().IncReport()
	h.publisher.WithTraceID(middleware.GetTraceID(c)).ReportGenerated(sample, filename)

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "text/plain; charset=utf-8", body)
}

// Defaults godoc
// @Summary Input defaults and limits
// @Description Returns the pre-filled form values and accepted input domains
// @Tags Prediction
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /predict/defaults [get]
func (h *PredictHandler) Defaults(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"features": models.FeatureNames,
		"defaults": models.Defaults,
		"limits":   models.Limits,
	})
}

func (h *PredictHandler) bindSample(c *gin.Context) (models.PatientSample, bool) {
	var req PredictRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return models.PatientSample{}, false
	}

	sample := req.toSample()
	if err := validation.ValidateSample(sample); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return models.PatientSample{}, false
	}

	return sample, true
}

func (h *PredictHandler) runPipeline(c *gin.Context, sample models.PatientSample) (*models.PredictionResult, bool) {
	traceID := middleware.GetTraceID(c)
	ctx := logger.WithTraceID(c.Request.Context(), traceID)

	result, err := h.pipeline.Predict(ctx, sample)
	if err != nil {
		metrics.Get().IncPredictionError()
		h.publisher.WithTraceID(traceID).PredictionFailed(sample, err)

		if errors.Is(err, predictor.ErrPrediction) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "prediction failed, please re-submit"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		}
		return nil, false
	}

	m := metrics.Get()
	m.IncPrediction(result.Label.String(), string(result.Risk), result.OverrideApplied)
	if result.Probability == nil {
		m.IncProbabilityAbsent()
	}

	h.publisher.WithTraceID(traceID).PredictionCompleted(sample, result)
	h.recordAudit(ctx, sample, result, traceID)

	return result, true
}

func (h *PredictHandler) recordAudit(ctx context.Context, sample models.PatientSample, result *models.PredictionResult, traceID string) {
	if h.audit == nil {
		return
	}

	rec := &models.PredictionRecord{
		ID:              models.NewUUID(),
		CreatedAt:       time.Now().UTC(),
		PatientName:     sample.Name,
		Glucose:         sample.Glucose,
		BloodPressure:   sample.BloodPressure,
		Insulin:         sample.Insulin,
		BMI:             sample.BMI,
		Age:             sample.Age,
		ModelLabel:      int(result.ModelLabel),
		FinalLabel:      int(result.Label),
		Probability:     result.Probability,
		Risk:            string(result.Risk),
		OverrideApplied: result.OverrideApplied,
		TraceID:         traceID,
	}

	// Audit failures never fail the request.
	if err := h.audit.Insert(ctx, rec); err != nil {
		logger.ErrorCtxf(ctx, "Failed to record prediction audit entry: %v", err)
	}
}
