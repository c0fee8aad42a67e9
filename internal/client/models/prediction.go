package models

// PredictionResult is what the backend returns for a freshly submitted
// prediction. ConfidenceScore is a percentage in [0,100] and is forwarded
// to the caller exactly as received.
type PredictionResult struct {
	PredictedDisease Disease `json:"predicted_disease"`
	ConfidenceScore  float64 `json:"confidence_score"`
	Notes            string  `json:"notes"`
}

// PredictionRecord is a stored prediction from the user's history.
type PredictionRecord struct {
	ID                 int64     `json:"id"`
	Symptoms           []Symptom `json:"symptoms"`
	PredictedDisease   Disease   `json:"predicted_disease"`
	ConfidenceScore    float64   `json:"confidence_score"`
	AdditionalSymptoms string    `json:"additional_symptoms"`
	Notes              string    `json:"notes"`
	Timestamp          string    `json:"timestamp"`
}

// DashboardSummary aggregates the user's activity for the dashboard view.
type DashboardSummary struct {
	TotalPredictions   int                `json:"total_predictions"`
	TotalHealthRecords int                `json:"total_health_records"`
	RecentPredictions  []PredictionRecord `json:"recent_predictions"`
}
