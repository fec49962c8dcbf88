package dbmetrics

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AgendaService/pkg/metrics"
)

func TestDB_RecordsQueryMetrics(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	reg := prometheus.NewRegistry()
	m := metrics.NewWithRegisterer(reg, "test")
	db := Wrap(sqlDB, m)
	ctx := context.Background()

	mock.ExpectExec("UPDATE bookings").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM users").WillReturnError(errors.New("boom"))

	_, err = db.ExecContext(ctx, "UPDATE bookings SET status = $1", "cancelled")
	require.NoError(t, err)

	_, err = db.ExecContext(ctx, "DELETE FROM users WHERE id = $1", "u1")
	require.Error(t, err)

	require.NoError(t, mock.ExpectationsWereMet())

	families, err := reg.Gather()
	require.NoError(t, err)

	errorsByOp := map[string]float64{}
	durations := 0
	for _, family := range families {
		switch family.GetName() {
		case "db_query_errors_total":
			for _, metric := range family.GetMetric() {
				for _, l := range metric.GetLabel() {
					if l.GetName() == "operation" {
						errorsByOp[l.GetValue()] = metric.GetCounter().GetValue()
					}
				}
			}
		case "db_query_duration_seconds":
			durations = len(family.GetMetric())
		}
	}

	assert.Equal(t, map[string]float64{"delete": 1}, errorsByOp)
	assert.Equal(t, 2, durations)
}

func TestDB_WithoutMetrics(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	db := Wrap(sqlDB, nil)

	mock.ExpectExec("UPDATE bookings").WillReturnResult(sqlmock.NewResult(0, 1))
	_, err = db.ExecContext(context.Background(), "UPDATE bookings SET status = $1", "pending")
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetExecutor(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	db := Wrap(sqlDB, nil)
	ctx := context.Background()

	assert.False(t, IsInTransaction(ctx))
	assert.Same(t, db, GetExecutor(ctx, db))

	mock.ExpectBegin()
	tx, err := db.BeginTx(ctx, nil)
	require.NoError(t, err)

	txCtx := WithTx(ctx, tx)
	assert.True(t, IsInTransaction(txCtx))
	assert.Same(t, tx, GetExecutor(txCtx, db))

	mock.ExpectRollback()
	require.NoError(t, tx.Rollback())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestOperation(t *testing.T) {
	assert.Equal(t, "select", operation("SELECT id FROM bookings"))
	assert.Equal(t, "insert", operation("  INSERT INTO bookings (id) VALUES ($1)"))
	assert.Equal(t, "unknown", operation(""))
}
