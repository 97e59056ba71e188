package events

import (
	"github.com/tauheed-akhtar/diabetes-predictor/pkg/models"
)

type Publisher struct {
	bus     *EventBus
	traceID string
}

func NewPublisher(bus *EventBus) *Publisher {
	return &Publisher{bus: bus}
}

func (p *Publisher) WithTraceID(traceID string) *Publisher {
	return &Publisher{
		bus:     p.bus,
		traceID: traceID,
	}
}

func (p *Publisher) publish(event *models.Event) {
	if p.traceID != "" {
		event.TraceID = p.traceID
	}
	p.bus.Publish(event)
}

func (p *Publisher) PredictionCompleted(sample models.PatientSample, result *models.PredictionResult) {
	event := models.NewEvent(models.EventTypePredictionCompleted, "Prediction completed").
		WithData(map[string]interface{}{
			"name":     sample.DisplayName(),
			"label":    result.Label.String(),
			"risk":     result.Risk,
			"override": result.OverrideApplied,
		})
	if result.Label == models.LabelDiabetic {
		event.WithSeverity(models.SeverityWarning)
	}
	p.publish(event)

	if result.OverrideApplied {
		p.publish(models.NewEvent(models.EventTypeOverrideApplied,
			"Clinical override forced model verdict to Not Diabetic").
			WithData(map[string]interface{}{
				"name":        sample.DisplayName(),
				"model_label": result.ModelLabel.String(),
			}))
	}
}

func (p *Publisher) PredictionFailed(sample models.PatientSample, err error) {
	event := models.NewEvent(models.EventTypePredictionFailed, "Prediction failed").
		WithSeverity(models.SeverityCritical).
		WithData(map[string]interface{}{
			"name":  sample.DisplayName(),
			"error": err.Error(),
		})
	p.publish(event)
}

func (p *Publisher) ReportGenerated(sample models.PatientSample, filename string) {
	event := models.NewEvent(models.EventTypeReportGenerated, "Report generated").
		WithData(map[string]interface{}{
			"name":     sample.DisplayName(),
			"filename": filename,
		})
	p.publish(event)
}
