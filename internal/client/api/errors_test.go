package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequestError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *RequestError
		want string
	}{
		{
			name: "message wins when present",
			err:  &RequestError{Kind: KindStructured, StatusCode: 401, Message: "Invalid credentials"},
			want: "Invalid credentials",
		},
		{
			name: "field lines, sorted by field",
			err: &RequestError{Kind: KindStructured, Fields: map[string][]string{
				"username": {"already taken"},
				"email":    {"invalid address", "required"},
			}},
			want: "email: invalid address, required\nusername: already taken",
		},
		{
			name: "status fallback",
			err:  &RequestError{Kind: KindUnstructured, StatusCode: 502},
			want: "server returned HTTP 502",
		},
		{
			name: "bare fallback",
			err:  &RequestError{Kind: KindTransport},
			want: "request failed",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestDecodeError_Classification(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		wantKind ErrorKind
		wantMsg  string
	}{
		{
			name:     "error message key",
			status:   401,
			body:     `{"error":"Invalid credentials"}`,
			wantKind: KindStructured,
			wantMsg:  "Invalid credentials",
		},
		{
			name:     "detail message key",
			status:   403,
			body:     `{"detail":"Authentication credentials were not provided."}`,
			wantKind: KindStructured,
			wantMsg:  "Authentication credentials were not provided.",
		},
		{
			name:     "field map",
			status:   400,
			body:     `{"username":["already taken"]}`,
			wantKind: KindStructured,
			wantMsg:  "username: already taken",
		},
		{
			name:     "plain text body",
			status:   500,
			body:     `boom`,
			wantKind: KindUnstructured,
			wantMsg:  "server returned HTTP 500",
		},
		{
			name:     "empty body",
			status:   404,
			body:     ``,
			wantKind: KindUnstructured,
			wantMsg:  "server returned HTTP 404",
		},
		{
			name:     "json object with non-list values",
			status:   400,
			body:     `{"count":3}`,
			wantKind: KindUnstructured,
			wantMsg:  "server returned HTTP 400",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			err := decodeError(tt.status, []byte(tt.body))
			reqErr, ok := err.(*RequestError)
			if !ok {
				t.Fatalf("expected *RequestError, got %T", err)
			}
			assert.Equal(t, tt.wantKind, reqErr.Kind)
			assert.Equal(t, tt.status, reqErr.StatusCode)
			assert.Equal(t, tt.wantMsg, reqErr.Error())
		})
	}
}
