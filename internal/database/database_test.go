package database

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	db, err := New(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)

	assert.NotNil(t, db.DB())
	require.NoError(t, db.Close())
}

func TestNew_unwritablePath(t *testing.T) {
	// sqlite cannot create a database inside a directory that does not
	// exist; New must surface the error without leaking the handle
	db, err := New(filepath.Join(t.TempDir(), "missing", "history.db"))

	require.Error(t, err)
	assert.Nil(t, db)
}
