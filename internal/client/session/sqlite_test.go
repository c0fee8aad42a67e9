package session

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/medixpert/medixpert-cli/internal/client/models"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", "file:sessionstore?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE IF NOT EXISTS session (
  key   TEXT PRIMARY KEY,
  value BLOB NOT NULL
);
`)
	require.NoError(t, err)
	_, err = db.Exec(`DELETE FROM session`)
	require.NoError(t, err)
	return db
}

func insertRaw(t *testing.T, db *sql.DB, k string, v []byte) {
	t.Helper()
	_, err := db.Exec(`INSERT INTO session(key,value) VALUES(?,?)`, k, v)
	require.NoError(t, err)
}

func TestSQLiteStore_SaveLoadRoundTrip(t *testing.T) {
	db := setupDB(t)
	store := NewSQLiteStore(db)
	ctx := context.Background()

	user := &models.User{ID: 7, Username: "alice", Email: "alice@example.org"}
	require.NoError(t, store.Save(ctx, "abc123", user))

	token, got, err := store.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, "abc123", token)
	require.Equal(t, user, got)
}

func TestSQLiteStore_SaveOverwritesPrevious(t *testing.T) {
	db := setupDB(t)
	store := NewSQLiteStore(db)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "old", &models.User{Username: "alice"}))
	require.NoError(t, store.Save(ctx, "new", &models.User{Username: "bob"}))

	token, user, err := store.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, "new", token)
	require.Equal(t, "bob", user.Username)
}

func TestSQLiteStore_LoadAfterClearIsNoSession(t *testing.T) {
	db := setupDB(t)
	store := NewSQLiteStore(db)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "abc123", &models.User{Username: "alice"}))
	require.NoError(t, store.Clear(ctx))

	token, user, err := store.Load(ctx)
	require.NoError(t, err)
	require.Empty(t, token)
	require.Nil(t, user)
}

func TestSQLiteStore_ClearIsIdempotent(t *testing.T) {
	db := setupDB(t)
	store := NewSQLiteStore(db)
	ctx := context.Background()

	require.NoError(t, store.Clear(ctx))
	require.NoError(t, store.Clear(ctx))
}

func TestSQLiteStore_CorruptUserIsNoSession(t *testing.T) {
	db := setupDB(t)
	store := NewSQLiteStore(db)
	ctx := context.Background()

	insertRaw(t, db, "token", []byte("abc123"))
	insertRaw(t, db, "user", []byte(`{not valid json`))

	token, user, err := store.Load(ctx)
	require.NoError(t, err, "corrupt stored data must not fail startup")
	require.Empty(t, token)
	require.Nil(t, user)
}

func TestSQLiteStore_TokenWithoutUserIsNoSession(t *testing.T) {
	db := setupDB(t)
	store := NewSQLiteStore(db)
	ctx := context.Background()

	insertRaw(t, db, "token", []byte("abc123"))

	token, user, err := store.Load(ctx)
	require.NoError(t, err)
	require.Empty(t, token)
	require.Nil(t, user)
}

func TestInitDatabase_MigratesAndStores(t *testing.T) {
	ctx := context.Background()

	db, err := InitDatabase(ctx, "file:sessioninit?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	store := NewSQLiteStore(db)
	require.NoError(t, store.Save(ctx, "tok", &models.User{Username: "alice"}))

	token, user, err := store.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, "tok", token)
	require.Equal(t, "alice", user.Username)
}
