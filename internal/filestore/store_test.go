package filestore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rotaduty/slack-duty-bot/internal/domain"
	"github.com/rotaduty/slack-duty-bot/internal/domain/entity"
)

func setupTestStore(t *testing.T) (store *Store, queuePath, currentPath string) {
	t.Helper()

	dir := t.TempDir()
	queuePath = filepath.Join(dir, "queue.txt")
	currentPath = filepath.Join(dir, "current.txt")

	return New(queuePath, currentPath), queuePath, currentPath
}

func TestStore_ReadQueue(t *testing.T) {
	store, queuePath, _ := setupTestStore(t)

	err := os.WriteFile(queuePath, []byte("U1, Kai\n\n  Irshad  \n\nMinh\n"), 0o644)
	require.NoError(t, err)

	queue, err := store.ReadQueue()
	require.NoError(t, err)

	require.Len(t, queue, 3)
	assert.Equal(t, "U1, Kai", queue[0].String())
	assert.Equal(t, "Irshad", queue[1].String())
	assert.Equal(t, "Minh", queue[2].String())
}

func TestStore_ReadQueue_missingFile(t *testing.T) {
	store, _, _ := setupTestStore(t)

	queue, err := store.ReadQueue()
	require.NoError(t, err)
	assert.Empty(t, queue)
}

func TestStore_ReadQueue_unreadable(t *testing.T) {
	dir := t.TempDir()

	// a directory at the queue path fails with something other than
	// "does not exist"
	store := New(dir, filepath.Join(dir, "current.txt"))

	_, err := store.ReadQueue()
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrStorageUnavailable)
}

func TestStore_ReadCurrent(t *testing.T) {
	store, _, currentPath := setupTestStore(t)

	err := os.WriteFile(currentPath, []byte("  U1, Kai \n"), 0o644)
	require.NoError(t, err)

	current, err := store.ReadCurrent()
	require.NoError(t, err)
	assert.Equal(t, "U1, Kai", current.String())
}

func TestStore_ReadCurrent_missingFile(t *testing.T) {
	store, _, _ := setupTestStore(t)

	_, err := store.ReadCurrent()
	assert.ErrorIs(t, err, domain.ErrCurrentNotFound)
}

func TestStore_ReadCurrent_blankFile(t *testing.T) {
	store, _, currentPath := setupTestStore(t)

	err := os.WriteFile(currentPath, []byte("   \n"), 0o644)
	require.NoError(t, err)

	_, err = store.ReadCurrent()
	assert.ErrorIs(t, err, domain.ErrCurrentNotFound)
}

func TestStore_ReadCurrent_unreadable(t *testing.T) {
	dir := t.TempDir()
	store := New(filepath.Join(dir, "queue.txt"), dir)

	_, err := store.ReadCurrent()
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrStorageUnavailable)
}

func TestStore_WriteCurrent(t *testing.T) {
	store, _, currentPath := setupTestStore(t)

	err := store.WriteCurrent(entity.ParseParticipant("U1, Kai"))
	require.NoError(t, err)

	data, err := os.ReadFile(currentPath)
	require.NoError(t, err)
	assert.Equal(t, "U1, Kai\n", string(data))

	// overwrite replaces the previous value
	err = store.WriteCurrent(entity.ParseParticipant("Irshad"))
	require.NoError(t, err)

	current, err := store.ReadCurrent()
	require.NoError(t, err)
	assert.Equal(t, "Irshad", current.String())
}

func TestStore_WriteCurrent_leavesNoTempFiles(t *testing.T) {
	store, _, currentPath := setupTestStore(t)

	err := store.WriteCurrent(entity.ParseParticipant("Minh"))
	require.NoError(t, err)

	entries, err := os.ReadDir(filepath.Dir(currentPath))
	require.NoError(t, err)

	require.Len(t, entries, 1)
	assert.Equal(t, filepath.Base(currentPath), entries[0].Name())
}

func TestStore_WriteCurrent_roundTrip(t *testing.T) {
	store, _, _ := setupTestStore(t)

	for _, line := range []string{"U1, Kai", "Irshad"} {
		p := entity.ParseParticipant(line)

		require.NoError(t, store.WriteCurrent(p))

		got, err := store.ReadCurrent()
		require.NoError(t, err)
		assert.Equal(t, p, got)
	}
}
