package migrations

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFS_ContainsGooseMigrations(t *testing.T) {
	files, err := fs.Glob(FS, "*.sql")
	require.NoError(t, err)
	require.Len(t, files, 4)

	for _, name := range files {
		data, err := fs.ReadFile(FS, name)
		require.NoError(t, err)
		assert.Contains(t, string(data), "-- +goose Up", name)
		assert.Contains(t, string(data), "-- +goose Down", name)
	}
}

func TestFS_BookingsActiveSlotIndex(t *testing.T) {
	data, err := fs.ReadFile(FS, "00004_create_bookings.sql")
	require.NoError(t, err)
	sql := string(data)
	assert.True(t, strings.Contains(sql, "CREATE UNIQUE INDEX"))
	assert.Contains(t, sql, "WHERE status IN ('pending', 'confirmed')")
}
