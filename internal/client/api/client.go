// Package api is the single point of outbound communication with the
// MediXpert backend. It exposes one typed method per REST endpoint and an
// error contract based on *RequestError; it carries no business logic,
// no caching, and no retry policy.
package api

import (
	"context"

	"github.com/medixpert/medixpert-cli/internal/client/models"
)

// Client defines the backend operations available to the rest of the
// application. The concrete implementation is RESTClient; tests provide
// lightweight fakes.
type Client interface {
	// SetToken replaces the credential attached to future requests.
	// An empty string removes the authorization header entirely.
	// In-flight requests are unaffected.
	SetToken(token string)

	Login(ctx context.Context, username, password string) (*models.LoginResult, error)
	Register(ctx context.Context, reg models.Registration) (*models.User, error)
	HealthCheck(ctx context.Context) error

	ListSymptoms(ctx context.Context) ([]models.Symptom, error)
	ListDiseases(ctx context.Context) ([]models.Disease, error)
	SubmitPrediction(ctx context.Context, symptoms []string, additionalSymptoms, notes string) (*models.PredictionResult, error)
	ListPredictions(ctx context.Context) ([]models.PredictionRecord, error)
	GetDashboard(ctx context.Context) (*models.DashboardSummary, error)
	ListHealthRecords(ctx context.Context) ([]models.HealthRecord, error)
}
