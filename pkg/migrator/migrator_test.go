package migrator

import (
	"context"
	"testing"
	"testing/fstest"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrator_UnknownCommand(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	m, err := New(db, fstest.MapFS{}, ".", nil)
	require.NoError(t, err)

	err = m.Run(context.Background(), "sideways")
	assert.ErrorIs(t, err, ErrUnknownCommand)
}
