package api

import (
	"fmt"
	"sort"
	"strings"
)

// ErrorKind tags the failure classes a request can produce. The kind is
// decided once, at the access-layer boundary, so callers never re-inspect
// raw response bodies.
type ErrorKind int

const (
	// KindTransport means no response reached the client at all.
	KindTransport ErrorKind = iota
	// KindStructured means the backend returned a machine-readable error
	// body: either a message or a field-validation mapping.
	KindStructured
	// KindUnstructured means a non-2xx response with a plain-text or
	// missing body.
	KindUnstructured
)

// RequestError is the single error type surfaced by the access layer.
// Message is always display-ready; Err retains the underlying cause for
// logging and errors.Is/As matching.
type RequestError struct {
	Kind       ErrorKind
	StatusCode int
	Message    string
	// Fields maps a field name to its validation messages, present only
	// for structured validation failures.
	Fields map[string][]string
	Err    error
}

func (e *RequestError) Error() string {
	if len(e.Fields) > 0 {
		return strings.Join(e.FieldLines(), "\n")
	}
	if e.Message != "" {
		return e.Message
	}
	if e.StatusCode != 0 {
		return fmt.Sprintf("server returned HTTP %d", e.StatusCode)
	}
	return "request failed"
}

func (e *RequestError) Unwrap() error { return e.Err }

// FieldLines flattens the validation mapping into one line per field,
// sorted by field name so the output is stable.
func (e *RequestError) FieldLines() []string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	lines := make([]string, 0, len(names))
	for _, name := range names {
		lines = append(lines, fmt.Sprintf("%s: %s", name, strings.Join(e.Fields[name], ", ")))
	}
	return lines
}
