// Package metrics tracks service counters and serves them in Prometheus
// text exposition format.
package metrics

import (
	"fmt"
	"net/http"
	"sort"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
)

type Metrics struct {
	mu sync.RWMutex

	// Counters
	predictionsTotal  map[string]int64 // final label -> count
	predictionErrors  int64
	overridesTotal    int64
	probabilityAbsent int64
	reportsTotal      int64
	riskBucketsTotal  map[string]int64
}

var (
	instance *Metrics
	once     sync.Once
)

func Get() *Metrics {
	once.Do(func() {
		instance = &Metrics{
			predictionsTotal: make(map[string]int64),
			riskBucketsTotal: make(map[string]int64),
		}
	})
	return instance
}

func (m *Metrics) IncPrediction(label, risk string, override bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.predictionsTotal[label]++
	m.riskBucketsTotal[risk]++
	if override {
		m.overridesTotal++
	}
}

func (m *Metrics) IncPredictionError() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.predictionErrors++
}

func (m *Metrics) IncProbabilityAbsent() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.probabilityAbsent++
}

func (m *Metrics) IncReport() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reportsTotal++
}

// Render produces the Prometheus text exposition of all counters.
func (m *Metrics) Render() string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var b strings.Builder

	b.WriteString("# HELP predictor_predictions_total Predictions served, by final label.\n")
	b.WriteString("# TYPE predictor_predictions_total counter\n")
	for _, label := range sortedKeys(m.predictionsTotal) {
		fmt.Fprintf(&b, "predictor_predictions_total{label=%q} %d\n", label, m.predictionsTotal[label])
	}

	b.WriteString("# HELP predictor_risk_buckets_total Predictions served, by risk bucket.\n")
	b.WriteString("# TYPE predictor_risk_buckets_total counter\n")
	for _, risk := range sortedKeys(m.riskBucketsTotal) {
		fmt.Fprintf(&b, "predictor_risk_buckets_total{risk=%q} %d\n", risk, m.riskBucketsTotal[risk])
	}

	b.WriteString("# HELP predictor_overrides_total Clinical-range overrides applied.\n")
	b.WriteString("# TYPE predictor_overrides_total counter\n")
	fmt.Fprintf(&b, "predictor_overrides_total %d\n", m.overridesTotal)

	b.WriteString("# HELP predictor_prediction_errors_total Failed scoring calls.\n")
	b.WriteString("# TYPE predictor_prediction_errors_total counter\n")
	fmt.Fprintf(&b, "predictor_prediction_errors_total %d\n", m.predictionErrors)

	b.WriteString("# HELP predictor_probability_absent_total Predictions without a probability estimate.\n")
	b.WriteString("# TYPE predictor_probability_absent_total counter\n")
	fmt.Fprintf(&b, "predictor_probability_absent_total %d\n", m.probabilityAbsent)

	b.WriteString("# HELP predictor_reports_total Text reports generated.\n")
	b.WriteString("# TYPE predictor_reports_total counter\n")
	fmt.Fprintf(&b, "predictor_reports_total %d\n", m.reportsTotal)

	return b.String()
}

// Handler serves the metrics endpoint.
func Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Data(http.StatusOK, "text/plain; version=0.0.4; charset=utf-8", []byte(Get().Render()))
	}
}

func sortedKeys(m map[string]int64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
