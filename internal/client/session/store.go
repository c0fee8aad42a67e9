// Package session persists the client's session pair (the opaque backend
// token and the user profile snapshot) across process restarts.
package session

import (
	"context"

	"github.com/medixpert/medixpert-cli/internal/client/models"
)

// Store holds the (token, user) pair durably. The two values are always
// written and cleared together; a store must never durably hold one
// without the other.
//
// Contract:
//   - Save: writes both values in a single update step.
//   - Load: returns the pair only when both entries are present and the
//     user record deserializes. Absence or corruption is "no session"
//     (nil user, empty token, nil error), never a failure.
//   - Clear: removes both entries; clearing an empty store is a no-op.
type Store interface {
	Save(ctx context.Context, token string, user *models.User) error
	Load(ctx context.Context) (string, *models.User, error)
	Clear(ctx context.Context) error
}
