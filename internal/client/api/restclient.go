package api

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"

	"github.com/medixpert/medixpert-cli/internal/client/models"
)

// RESTClient talks JSON over HTTP to the MediXpert backend. It is stateless
// apart from the currently attached session token, which a request middleware
// injects as "Authorization: Bearer <token>" when one is held.
type RESTClient struct {
	http *resty.Client

	mu    sync.RWMutex
	token string
}

// NewRESTClient builds a client bound to baseURL. contentType is sent as both
// Content-Type and Accept on every request.
func NewRESTClient(baseURL, contentType string) *RESTClient {
	c := &RESTClient{}

	c.http = resty.New().
		SetBaseURL(baseURL).
		SetHeader("Content-Type", contentType).
		SetHeader("Accept", contentType)

	c.http.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
		c.mu.RLock()
		token := c.token
		c.mu.RUnlock()

		if token != "" {
			req.SetHeader("Authorization", "Bearer "+token)
		}
		req.SetHeader("X-Request-Id", uuid.NewString())
		return nil
	})

	return c
}

// SetToken replaces the token used for future requests. An empty string
// removes the authorization header. The stored value is forwarded verbatim.
func (c *RESTClient) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

// do issues a single best-effort request and maps the outcome onto the
// RequestError taxonomy. When out is non-nil, a 2xx body is decoded into it.
func (c *RESTClient) do(ctx context.Context, method, path string, body, out any) error {
	req := c.http.R().SetContext(ctx)
	if body != nil {
		req.SetBody(body)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return &RequestError{Kind: KindTransport, Message: "server unreachable", Err: err}
	}
	if resp.IsError() {
		return decodeError(resp.StatusCode(), resp.Body())
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return &RequestError{
			Kind:       KindUnstructured,
			StatusCode: resp.StatusCode(),
			Message:    "malformed response from server",
			Err:        err,
		}
	}
	return nil
}

// decodeError classifies a non-2xx response exactly once. A JSON object with
// a string under a well-known key becomes a structured message error; a JSON
// object whose every value is a list of strings becomes a structured
// field-validation error; anything else is unstructured.
func decodeError(status int, body []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err == nil && len(raw) > 0 {
		for _, key := range []string{"error", "detail", "message"} {
			var msg string
			if v, ok := raw[key]; ok && json.Unmarshal(v, &msg) == nil && msg != "" {
				return &RequestError{Kind: KindStructured, StatusCode: status, Message: msg}
			}
		}

		fields := make(map[string][]string, len(raw))
		for name, v := range raw {
			var msgs []string
			if json.Unmarshal(v, &msgs) != nil || len(msgs) == 0 {
				fields = nil
				break
			}
			fields[name] = msgs
		}
		if len(fields) > 0 {
			return &RequestError{Kind: KindStructured, StatusCode: status, Fields: fields}
		}
	}

	return &RequestError{
		Kind:       KindUnstructured,
		StatusCode: status,
		Message:    fmt.Sprintf("server returned HTTP %d", status),
	}
}

// getList fetches path and accepts either a plain JSON array or a
// DRF-style {count, results} pagination envelope.
func getList[T any](ctx context.Context, c *RESTClient, path string) ([]T, error) {
	var body json.RawMessage
	if err := c.do(ctx, resty.MethodGet, path, nil, &body); err != nil {
		return nil, err
	}

	var plain []T
	if err := json.Unmarshal(body, &plain); err == nil {
		return plain, nil
	}

	var page struct {
		Results []T `json:"results"`
	}
	if err := json.Unmarshal(body, &page); err != nil {
		return nil, &RequestError{Kind: KindUnstructured, Message: "malformed response from server", Err: err}
	}
	return page.Results, nil
}

func (c *RESTClient) Login(ctx context.Context, username, password string) (*models.LoginResult, error) {
	body := map[string]string{"username": username, "password": password}

	var out models.LoginResult
	if err := c.do(ctx, resty.MethodPost, "/login/", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *RESTClient) Register(ctx context.Context, reg models.Registration) (*models.User, error) {
	var out struct {
		Message string      `json:"message"`
		User    models.User `json:"user"`
	}
	if err := c.do(ctx, resty.MethodPost, "/register/", reg, &out); err != nil {
		return nil, err
	}
	return &out.User, nil
}

func (c *RESTClient) HealthCheck(ctx context.Context) error {
	return c.do(ctx, resty.MethodGet, "/health-check/", nil, nil)
}

func (c *RESTClient) ListSymptoms(ctx context.Context) ([]models.Symptom, error) {
	return getList[models.Symptom](ctx, c, "/symptoms/")
}

func (c *RESTClient) ListDiseases(ctx context.Context) ([]models.Disease, error) {
	return getList[models.Disease](ctx, c, "/diseases/")
}

func (c *RESTClient) SubmitPrediction(ctx context.Context, symptoms []string, additionalSymptoms, notes string) (*models.PredictionResult, error) {
	body := map[string]any{
		"symptoms":            symptoms,
		"additional_symptoms": additionalSymptoms,
		"notes":               notes,
	}

	var out struct {
		Prediction models.PredictionResult `json:"prediction"`
	}
	if err := c.do(ctx, resty.MethodPost, "/predict/", body, &out); err != nil {
		return nil, err
	}
	return &out.Prediction, nil
}

func (c *RESTClient) ListPredictions(ctx context.Context) ([]models.PredictionRecord, error) {
	return getList[models.PredictionRecord](ctx, c, "/predictions/")
}

func (c *RESTClient) GetDashboard(ctx context.Context) (*models.DashboardSummary, error) {
	var out models.DashboardSummary
	if err := c.do(ctx, resty.MethodGet, "/dashboard/", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *RESTClient) ListHealthRecords(ctx context.Context) ([]models.HealthRecord, error) {
	return getList[models.HealthRecord](ctx, c, "/health-records/")
}
