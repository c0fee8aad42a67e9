package models

// Severity classifies how serious a disease is.
type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// Symptom is a catalog entry the user can select on the diagnosis form.
type Symptom struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Disease is a known condition the backend can predict.
type Disease struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Severity    Severity  `json:"severity"`
	Symptoms    []Symptom `json:"symptoms,omitempty"`
}
