package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/medixpert/medixpert-cli/internal/client/models"
	"github.com/medixpert/medixpert-cli/internal/dbx"
)

const (
	keyToken = "token"
	keyUser  = "user"
)

// SQLiteStore keeps the session pair in a local sqlite key/value table.
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

func get(ctx context.Context, db dbx.DBTX, key string) ([]byte, error) {
	var value []byte
	err := db.QueryRowContext(ctx, `SELECT value FROM session WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session[%s]: %w", key, err)
	}
	return value, nil
}

func set(ctx context.Context, db dbx.DBTX, key string, value []byte) error {
	_, err := db.ExecContext(ctx, `
		INSERT INTO session (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to set session[%s]: %w", key, err)
	}
	return nil
}

// Save writes token and user in one transaction so the store can never
// durably observe one half of the pair without the other.
func (s *SQLiteStore) Save(ctx context.Context, token string, user *models.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to encode user: %w", err)
	}

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := set(ctx, tx, keyToken, []byte(token)); err != nil {
			return err
		}
		return set(ctx, tx, keyUser, data)
	})
}

// Load returns the stored pair, or "no session" when either entry is
// missing or the user record does not deserialize. Corruption must not
// fail application startup.
func (s *SQLiteStore) Load(ctx context.Context) (string, *models.User, error) {
	token, err := get(ctx, s.db, keyToken)
	if err != nil {
		return "", nil, err
	}
	data, err := get(ctx, s.db, keyUser)
	if err != nil {
		return "", nil, err
	}

	if len(token) == 0 || len(data) == 0 {
		return "", nil, nil
	}

	var user models.User
	if err := json.Unmarshal(data, &user); err != nil {
		return "", nil, nil
	}
	return string(token), &user, nil
}

// Clear removes both entries. Clearing an already-empty store is a no-op.
func (s *SQLiteStore) Clear(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM session`)
	if err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}
