package booking

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	"github.com/m04kA/SMC-AgendaService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AgendaService/pkg/types"
)

const (
	professionalID = "7c9e6679-7425-40de-944b-e07fc1f90ae7"
	userID         = "9b2f1c4e-3a5d-4f6e-8a7b-1c2d3e4f5a6b"
	serviceID      = "1f0e2d3c-4b5a-4968-8776-a5b4c3d2e1f0"
	bookingID      = "3d6f0a4e-2b1c-4d5e-9f8a-7b6c5d4e3f2a"
)

func newMock(t *testing.T) (*Repository, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	return NewRepository(db), mock, func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		db.Close()
	}
}

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse(domain.DateFormat, s)
	require.NoError(t, err)
	return d
}

func TestRepository_Create(t *testing.T) {
	repo, mock, done := newMock(t)
	defer done()

	date := mustDate(t, "2030-06-03")
	createdAt := time.Date(2030, 6, 1, 12, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta(
		"INSERT INTO bookings (id,booking_date,start_time,status,professional_id,user_id,service_id) VALUES ($1,$2,$3,$4,$5,$6,$7) RETURNING created_at")).
		WithArgs(sqlmock.AnyArg(), date, "09:00", "confirmed", professionalID, userID, serviceID).
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(createdAt))

	created, err := repo.Create(context.Background(), &domain.Booking{
		Date:           date,
		Time:           "09:00",
		Status:         domain.StatusConfirmed,
		ProfessionalID: professionalID,
		UserID:         userID,
		ServiceID:      serviceID,
	})
	require.NoError(t, err)
	assert.Len(t, created.ID, 36)
	assert.Equal(t, createdAt, created.CreatedAt)
}

func TestRepository_Create_Errors(t *testing.T) {
	tests := []struct {
		name    string
		dbErr   error
		wantErr error
	}{
		{"unique violation", &pq.Error{Code: "23505", Constraint: "bookings_active_slot_idx"}, ErrSlotTaken},
		{"foreign key violation", &pq.Error{Code: "23503"}, ErrReferenceNotFound},
		{"other", errors.New("connection reset"), ErrExecQuery},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, done := newMock(t)
			defer done()

			mock.ExpectQuery("INSERT INTO bookings").WillReturnError(tt.dbErr)

			_, err := repo.Create(context.Background(), &domain.Booking{
				Date:           mustDate(t, "2030-06-03"),
				Time:           "09:00",
				Status:         domain.StatusPending,
				ProfessionalID: professionalID,
				UserID:         userID,
				ServiceID:      serviceID,
			})
			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, tt.dbErr)
		})
	}
}

func TestRepository_GetByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		repo, mock, done := newMock(t)
		defer done()

		date := mustDate(t, "2030-06-03")
		mock.ExpectQuery(regexp.QuoteMeta("FROM bookings WHERE id = $1")).
			WithArgs(bookingID).
			WillReturnRows(sqlmock.NewRows(bookingColumns).
				AddRow(bookingID, date, "09:00:00", "pending", professionalID, userID, serviceID, time.Now()))

		b, err := repo.GetByID(context.Background(), bookingID)
		require.NoError(t, err)
		assert.Equal(t, types.TimeString("09:00"), b.Time)
		assert.Equal(t, domain.StatusPending, b.Status)
		assert.Equal(t, date, b.Date)
	})

	t.Run("not found", func(t *testing.T) {
		repo, mock, done := newMock(t)
		defer done()

		mock.ExpectQuery("FROM bookings").WillReturnRows(sqlmock.NewRows(bookingColumns))

		_, err := repo.GetByID(context.Background(), bookingID)
		assert.ErrorIs(t, err, ErrBookingNotFound)
	})
}

func TestRepository_List_WithFilter(t *testing.T) {
	repo, mock, done := newMock(t)
	defer done()

	date := mustDate(t, "2030-06-03")
	status := domain.StatusConfirmed
	pid := professionalID

	mock.ExpectQuery(regexp.QuoteMeta(
		"FROM bookings WHERE professional_id = $1 AND booking_date = $2 AND status = $3 ORDER BY booking_date ASC, start_time ASC, created_at ASC")).
		WithArgs(professionalID, date, "confirmed").
		WillReturnRows(sqlmock.NewRows(bookingColumns).
			AddRow(bookingID, date, "09:00:00", "confirmed", professionalID, userID, serviceID, time.Now()))

	bookings, err := repo.List(context.Background(), domain.BookingsFilter{
		ProfessionalID: &pid,
		Date:           &date,
		Status:         &status,
	})
	require.NoError(t, err)
	require.Len(t, bookings, 1)
	assert.Equal(t, bookingID, bookings[0].ID)
}

func TestRepository_List_Empty(t *testing.T) {
	repo, mock, done := newMock(t)
	defer done()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, booking_date, start_time, status, professional_id, user_id, service_id, created_at FROM bookings ORDER BY")).
		WillReturnRows(sqlmock.NewRows(bookingColumns))

	bookings, err := repo.List(context.Background(), domain.BookingsFilter{})
	require.NoError(t, err)
	assert.NotNil(t, bookings)
	assert.Empty(t, bookings)
}

func TestRepository_ListDetailedByUser(t *testing.T) {
	repo, mock, done := newMock(t)
	defer done()

	mock.ExpectQuery(regexp.QuoteMeta(
		"FROM bookings b JOIN professionals p ON p.id = b.professional_id JOIN services s ON s.id = b.service_id WHERE b.user_id = $1")).
		WithArgs(userID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "booking_date", "start_time", "status", "professional_id", "user_id", "service_id", "created_at", "name", "name"}).
			AddRow(bookingID, mustDate(t, "2030-06-03"), "10:00:00", "cancelled", professionalID, userID, serviceID, time.Now(), "Ana", "Corte"))

	result, err := repo.ListDetailedByUser(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, "Ana", result[0].ProfessionalName)
	assert.Equal(t, "Corte", result[0].ServiceName)
	assert.Equal(t, domain.StatusCancelled, result[0].Status)
}

func TestRepository_ExistsBindingAtSlot(t *testing.T) {
	date := mustDate(t, "2030-06-03")
	query := "SELECT id FROM bookings WHERE booking_date = $1 AND professional_id = $2 AND start_time = $3 AND status IN ($4,$5) LIMIT 1"

	t.Run("free slot", func(t *testing.T) {
		repo, mock, done := newMock(t)
		defer done()

		mock.ExpectQuery("^" + regexp.QuoteMeta(query) + "$").
			WithArgs(date, professionalID, "09:00", "pending", "confirmed").
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		exists, err := repo.ExistsBindingAtSlot(context.Background(), professionalID, date, "09:00")
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("taken slot locks row inside transaction", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectQuery(regexp.QuoteMeta(query + " FOR UPDATE")).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(bookingID))
		mock.ExpectRollback()

		wrapped := dbmetrics.Wrap(db, nil)
		tx, err := wrapped.BeginTx(context.Background(), nil)
		require.NoError(t, err)

		repo := NewRepository(wrapped)
		exists, err := repo.ExistsBindingAtSlot(dbmetrics.WithTx(context.Background(), tx), professionalID, date, "09:00")
		require.NoError(t, err)
		assert.True(t, exists)

		require.NoError(t, tx.Rollback())
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_BookedTimes(t *testing.T) {
	repo, mock, done := newMock(t)
	defer done()

	date := mustDate(t, "2030-06-03")
	mock.ExpectQuery(regexp.QuoteMeta("SELECT start_time FROM bookings WHERE booking_date = $1 AND professional_id = $2 AND status IN ($3,$4) ORDER BY start_time ASC")).
		WithArgs(date, professionalID, "pending", "confirmed").
		WillReturnRows(sqlmock.NewRows([]string{"start_time"}).AddRow("09:00:00").AddRow("11:30:00"))

	times, err := repo.BookedTimes(context.Background(), professionalID, date)
	require.NoError(t, err)
	assert.Equal(t, []types.TimeString{"09:00", "11:30"}, times)
}

func TestRepository_UpdateStatus(t *testing.T) {
	t.Run("updated", func(t *testing.T) {
		repo, mock, done := newMock(t)
		defer done()

		mock.ExpectExec(regexp.QuoteMeta("UPDATE bookings SET status = $1 WHERE id = $2")).
			WithArgs("cancelled", bookingID).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.UpdateStatus(context.Background(), bookingID, domain.StatusCancelled))
	})

	t.Run("not found", func(t *testing.T) {
		repo, mock, done := newMock(t)
		defer done()

		mock.ExpectExec("UPDATE bookings").WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.UpdateStatus(context.Background(), bookingID, domain.StatusCancelled)
		assert.ErrorIs(t, err, ErrBookingNotFound)
	})

	t.Run("reactivation over a taken slot", func(t *testing.T) {
		repo, mock, done := newMock(t)
		defer done()

		mock.ExpectExec("UPDATE bookings").WillReturnError(&pq.Error{Code: "23505"})

		err := repo.UpdateStatus(context.Background(), bookingID, domain.StatusConfirmed)
		assert.ErrorIs(t, err, ErrSlotTaken)
	})
}
