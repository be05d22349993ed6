package database

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlotRepo_GetMissing(t *testing.T) {
	repo := NewSlotRepo(setupTestDB(t))

	value, found, err := repo.Get(context.Background(), "scheduleEvents")
	require.NoError(t, err)
	assert.False(t, found)
	assert.Empty(t, value)
}

func TestSlotRepo_SetOverwrites(t *testing.T) {
	ctx := context.Background()
	repo := NewSlotRepo(setupTestDB(t))

	require.NoError(t, repo.Set(ctx, "scheduleEvents", `[{"id":"1"}]`))
	require.NoError(t, repo.Set(ctx, "scheduleEvents", `[]`))

	value, found, err := repo.Get(ctx, "scheduleEvents")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `[]`, value)

	var count int
	require.NoError(t, repo.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM slots`))
	assert.Equal(t, 1, count)
}

func TestSlotRepo_SlotsAreIndependent(t *testing.T) {
	ctx := context.Background()
	repo := NewSlotRepo(setupTestDB(t))

	require.NoError(t, repo.Set(ctx, "a", "1"))
	require.NoError(t, repo.Set(ctx, "b", "2"))
	require.NoError(t, repo.Delete(ctx, "a"))

	_, found, err := repo.Get(ctx, "a")
	require.NoError(t, err)
	assert.False(t, found)

	value, found, err := repo.Get(ctx, "b")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "2", value)

	// Deleting again is not an error
	assert.NoError(t, repo.Delete(ctx, "a"))
}

func TestSlotRepo_EmptyName(t *testing.T) {
	ctx := context.Background()
	repo := NewSlotRepo(setupTestDB(t))

	_, _, err := repo.Get(ctx, " ")
	assert.ErrorIs(t, err, ErrEmptySlotName)
	assert.ErrorIs(t, repo.Set(ctx, "", "x"), ErrEmptySlotName)
	assert.ErrorIs(t, repo.Delete(ctx, ""), ErrEmptySlotName)
}

// TestInitDB_PersistsAcrossRestart verifies a slot written in one session is
// read back after reopening the file
func TestInitDB_PersistsAcrossRestart(t *testing.T) {
	ctx := context.Background()
	dir := filepath.Join(t.TempDir(), "data")

	db, err := InitDB(ctx, dir)
	require.NoError(t, err)
	require.NoError(t, NewSlotRepo(db).Set(ctx, "scheduleEvents", "snapshot"))
	require.NoError(t, db.Close())

	_, err = os.Stat(filepath.Join(dir, DefaultFileName))
	require.NoError(t, err)

	db, err = InitDB(ctx, dir)
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	value, found, err := NewSlotRepo(db).Get(ctx, "scheduleEvents")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "snapshot", value)
}

func TestMemorySlots(t *testing.T) {
	ctx := context.Background()
	m := NewMemorySlots()

	_, found, err := m.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, m.Set(ctx, "k", "v"))
	value, found, _ := m.Get(ctx, "k")
	assert.True(t, found)
	assert.Equal(t, "v", value)

	require.NoError(t, m.Delete(ctx, "k"))
	_, found, _ = m.Get(ctx, "k")
	assert.False(t, found)
	assert.ErrorIs(t, m.Set(ctx, "", "v"), ErrEmptySlotName)
}
