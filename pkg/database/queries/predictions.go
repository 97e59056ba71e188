package queries

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/tauheed-akhtar/diabetes-predictor/pkg/models"
)

// PredictionRepository records and reads the optional prediction audit
// trail. The core pipeline never depends on it.
type PredictionRepository struct {
	db *sql.DB
}

func NewPredictionRepository(db *sql.DB) *PredictionRepository {
	return &PredictionRepository{db: db}
}

func (r *PredictionRepository) Insert(ctx context.Context, rec *models.PredictionRecord) error {
	query := `
		INSERT INTO predictions (
			id, created_at, patient_name, glucose, blood_pressure, insulin,
			bmi, age, model_label, final_label, probability, risk,
			override_applied, trace_id
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`

	_, err := r.db.ExecContext(ctx, query,
		rec.ID, rec.CreatedAt, nullString(rec.PatientName),
		rec.Glucose, rec.BloodPressure, rec.Insulin, rec.BMI, rec.Age,
		rec.ModelLabel, rec.FinalLabel, nullFloat(rec.Probability),
		rec.Risk, rec.OverrideApplied, nullString(rec.TraceID),
	)
	if err != nil {
		return fmt.Errorf("failed to insert prediction record: %w", err)
	}
	return nil
}

func (r *PredictionRepository) ListRecent(ctx context.Context, limit int) ([]*models.PredictionRecord, error) {
	if limit <= 0 || limit > 500 {
		limit = 50
	}

	query := `
		SELECT id, created_at, patient_name, glucose, blood_pressure, insulin,
		       bmi, age, model_label, final_label, probability, risk,
		       override_applied, trace_id
		FROM predictions
		ORDER BY created_at DESC
		LIMIT $1`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list predictions: %w", err)
	}
	defer rows.Close()

	var records []*models.PredictionRecord
	for rows.Next() {
		rec, err := scanPrediction(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}

// Stats summarizes the audit trail for the operator dashboard.
type Stats struct {
	Total     int64 `json:"total"`
	Diabetic  int64 `json:"diabetic"`
	Overrides int64 `json:"overrides"`
}

func (r *PredictionRepository) GetStats(ctx context.Context) (*Stats, error) {
	query := `
		SELECT COUNT(*),
		       COUNT(*) FILTER (WHERE final_label = 1),
		       COUNT(*) FILTER (WHERE override_applied)
		FROM predictions`

	var stats Stats
	err := r.db.QueryRowContext(ctx, query).Scan(&stats.Total, &stats.Diabetic, &stats.Overrides)
	if err != nil {
		return nil, fmt.Errorf("failed to get prediction stats: %w", err)
	}
	return &stats, nil
}

func scanPrediction(rows *sql.Rows) (*models.PredictionRecord, error) {
	var (
		rec         models.PredictionRecord
		name        sql.NullString
		probability sql.NullFloat64
		traceID     sql.NullString
	)

	err := rows.Scan(
		&rec.ID, &rec.CreatedAt, &name, &rec.Glucose, &rec.BloodPressure,
		&rec.Insulin, &rec.BMI, &rec.Age, &rec.ModelLabel, &rec.FinalLabel,
		&probability, &rec.Risk, &rec.OverrideApplied, &traceID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to scan prediction record: %w", err)
	}

	rec.PatientName = name.String
	rec.TraceID = traceID.String
	if probability.Valid {
		rec.Probability = &probability.Float64
	}

	return &rec, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullFloat(f *float64) sql.NullFloat64 {
	if f == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *f, Valid: true}
}
