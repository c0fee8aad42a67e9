// Package services contains application services for the MediXpert client.
// This file defines the session controller: boot-time restoration, login,
// registration, logout, and ownership of the current-user value.
package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/medixpert/medixpert-cli/internal/client/api"
	"github.com/medixpert/medixpert-cli/internal/client/models"
	"github.com/medixpert/medixpert-cli/internal/client/session"
	"github.com/medixpert/medixpert-cli/internal/logging"
)

// Generic failure messages shown when the backend gave us nothing
// presentable. Raw transport errors never reach the user.
var (
	ErrLoginFailed        = errors.New("login failed, please check your connection and try again")
	ErrRegistrationFailed = errors.New("registration failed, please try again")
)

// SessionService owns the in-memory session state and is the sole writer of
// the persisted session store. Token and user are always set and cleared
// together; there is no "token present but user unknown" state.
//
// Construct it once at process start and pass it by reference to every
// consumer. Session transitions (login, register, logout) are serialized
// behind a single-flight guard: concurrent calls to the same operation share
// one in-flight result.
type SessionService struct {
	client api.Client
	store  session.Store
	logger logging.Logger

	group singleflight.Group

	mu    sync.RWMutex
	user  *models.User
	token string
	subs  []func(*models.User)
}

func NewSessionService(client api.Client, store session.Store, logger logging.Logger) *SessionService {
	return &SessionService{client: client, store: store, logger: logger}
}

// CurrentUser returns the profile snapshot of the signed-in user, or nil
// when the session is anonymous.
func (s *SessionService) CurrentUser() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

// IsAuthenticated reports whether a session is active.
func (s *SessionService) IsAuthenticated() bool {
	return s.CurrentUser() != nil
}

// OnChange registers fn to be called whenever the current user changes:
// with the new user after a successful login or restore, and with nil
// after logout. Callbacks run synchronously on the transitioning goroutine.
func (s *SessionService) OnChange(fn func(*models.User)) {
	s.mu.Lock()
	s.subs = append(s.subs, fn)
	s.mu.Unlock()
}

func (s *SessionService) setSession(token string, user *models.User) {
	s.mu.Lock()
	s.token = token
	s.user = user
	subs := make([]func(*models.User), len(s.subs))
	copy(subs, s.subs)
	s.mu.Unlock()

	for _, fn := range subs {
		fn(user)
	}
}

// Restore loads a previously persisted session, once, at application boot.
// It must complete before any view renders so a valid session never flashes
// as anonymous. Missing or corrupt stored data leaves the session anonymous.
func (s *SessionService) Restore(ctx context.Context) error {
	token, user, err := s.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load saved session: %w", err)
	}
	if token == "" || user == nil {
		return nil
	}

	s.client.SetToken(token)
	s.setSession(token, user)
	s.logger.Info(ctx, "session restored", "username", user.Username)
	return nil
}

// Login authenticates against the backend. On success the user snapshot is
// kept in memory and, when the response carries a token, the pair is
// persisted and the token attached to the access layer. On failure nothing
// changes and no partial state is stored.
//
// A structured backend error surfaces its message; a transport failure
// surfaces a generic one.
func (s *SessionService) Login(ctx context.Context, username, password string) error {
	_, err, _ := s.group.Do("login", func() (any, error) {
		res, err := s.client.Login(ctx, username, password)
		if err != nil {
			return nil, classify(err, ErrLoginFailed)
		}

		user := res.User
		if res.Token != "" {
			s.client.SetToken(res.Token)
			if err := s.store.Save(ctx, res.Token, &user); err != nil {
				// Partial persistence reads back as "no session" on the
				// next restore; the live session stays usable.
				s.logger.Warn(ctx, "failed to persist session", "error", err)
			}
		}
		s.setSession(res.Token, &user)
		s.logger.Info(ctx, "login successful", "username", user.Username)
		return nil, nil
	})
	return err
}

// Register creates an account. Registration never authenticates: no token
// is issued and the session state is unchanged. Field-validation errors are
// flattened into one human-readable line per field.
func (s *SessionService) Register(ctx context.Context, reg models.Registration) (*models.User, error) {
	v, err, _ := s.group.Do("register", func() (any, error) {
		user, err := s.client.Register(ctx, reg)
		if err != nil {
			return nil, classify(err, ErrRegistrationFailed)
		}
		return user, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*models.User), nil
}

// Logout clears the in-memory user, the access-layer token, and the
// persisted store together, returning the session to anonymous. Logging out
// of an anonymous session is a no-op.
func (s *SessionService) Logout(ctx context.Context) error {
	_, err, _ := s.group.Do("logout", func() (any, error) {
		s.client.SetToken("")
		s.setSession("", nil)

		if err := s.store.Clear(ctx); err != nil {
			return nil, fmt.Errorf("failed to clear saved session: %w", err)
		}
		s.logger.Info(ctx, "logged out")
		return nil, nil
	})
	return err
}

// classify converts an access-layer error into a display-ready one:
// structured backend errors keep their message (or field lines), everything
// else collapses to the generic fallback.
func classify(err error, fallback error) error {
	var reqErr *api.RequestError
	if errors.As(err, &reqErr) && reqErr.Kind == api.KindStructured {
		return errors.New(reqErr.Error())
	}
	return fallback
}
