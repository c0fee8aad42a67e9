// Package cli provides the interactive MediXpert command-line client.
//
// It wires configuration, the local session store, the backend API client,
// and an interactive REPL. A previously saved session is restored before the
// first prompt renders, so a valid session never appears signed-out on
// startup.
//
// Key features:
//   - Register / Login / Logout against the backend
//   - Multi-step symptom selection and diagnosis submission
//   - Prediction history, dashboard statistics, health records
//   - Backend liveness probe (ping)
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
