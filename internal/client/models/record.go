package models

// HealthRecord is a doctor-reviewed follow-up attached to a prediction.
type HealthRecord struct {
	ID           int64            `json:"id"`
	Prediction   PredictionRecord `json:"prediction"`
	DoctorNotes  string           `json:"doctor_notes"`
	Prescription string           `json:"prescription"`
	FollowUpDate string           `json:"follow_up_date"`
	Status       string           `json:"status"`
	CreatedAt    string           `json:"created_at"`
}
