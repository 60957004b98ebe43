package storage

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := NewSQLiteStore(filepath.Join(t.TempDir(), "podly.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSQLiteStore_Credentials(t *testing.T) {
	store := newTestStore(t)

	value, err := store.GetCredential("auth_token")
	require.NoError(t, err)
	assert.Empty(t, value, "absent key reads as empty, not as an error")

	require.NoError(t, store.SetCredential("auth_token", "tok-1"))
	value, err = store.GetCredential("auth_token")
	require.NoError(t, err)
	assert.Equal(t, "tok-1", value)

	require.NoError(t, store.SetCredential("auth_token", "tok-2"))
	value, err = store.GetCredential("auth_token")
	require.NoError(t, err)
	assert.Equal(t, "tok-2", value, "set replaces the previous value")

	require.NoError(t, store.DeleteCredential("auth_token"))
	value, err = store.GetCredential("auth_token")
	require.NoError(t, err)
	assert.Empty(t, value)

	assert.NoError(t, store.DeleteCredential("auth_token"), "double delete is harmless")
}

func TestSQLiteStore_BookingSnapshots(t *testing.T) {
	store := newTestStore(t)

	snap, err := store.GetBookingSnapshot("u1")
	require.NoError(t, err)
	assert.Nil(t, snap, "no snapshot cached yet")

	require.NoError(t, store.SaveBookingSnapshot("u1", `[{"id":"b1"}]`))
	snap, err = store.GetBookingSnapshot("u1")
	require.NoError(t, err)
	require.NotNil(t, snap)
	assert.Equal(t, `[{"id":"b1"}]`, snap.Payload)
	assert.WithinDuration(t, time.Now(), snap.FetchedAt, 5*time.Second)

	// Each user gets their own snapshot; saving again replaces it.
	require.NoError(t, store.SaveBookingSnapshot("u1", `[]`))
	snap, err = store.GetBookingSnapshot("u1")
	require.NoError(t, err)
	assert.Equal(t, `[]`, snap.Payload)

	other, err := store.GetBookingSnapshot("u2")
	require.NoError(t, err)
	assert.Nil(t, other)
}

func TestSQLiteStore_SurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "podly.db")

	store, err := NewSQLiteStore(path)
	require.NoError(t, err)
	require.NoError(t, store.SetCredential("auth_token", "tok-1"))
	require.NoError(t, store.Close())

	reopened, err := NewSQLiteStore(path)
	require.NoError(t, err)
	defer reopened.Close()

	value, err := reopened.GetCredential("auth_token")
	require.NoError(t, err)
	assert.Equal(t, "tok-1", value, "credentials persist across process restarts")
}
