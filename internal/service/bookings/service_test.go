package bookings

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-AgendaService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-AgendaService/internal/service/bookings/models"
	"github.com/m04kA/SMC-AgendaService/pkg/logger"
)

const (
	bookingID      = "3d6f0a4e-2b1c-4d5e-9f8a-7b6c5d4e3f2a"
	ownerID        = "9b2f1c4e-3a5d-4f6e-8a7b-1c2d3e4f5a6b"
	strangerID     = "5e4d3c2b-1a09-4f8e-b7d6-c5b4a3928170"
	professionalID = "7c9e6679-7425-40de-944b-e07fc1f90ae7"
	serviceID      = "1f0e2d3c-4b5a-4968-8776-a5b4c3d2e1f0"
)

type fakeRepo struct {
	bookings  map[string]*domain.Booking
	filter    domain.BookingsFilter
	updateErr error
	listErr   error
	updates   int
}

func (f *fakeRepo) GetByID(_ context.Context, id string) (*domain.Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	copied := *b
	return &copied, nil
}

func (f *fakeRepo) List(_ context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	f.filter = filter
	if f.listErr != nil {
		return nil, f.listErr
	}
	result := make([]*domain.Booking, 0, len(f.bookings))
	for _, b := range f.bookings {
		result = append(result, b)
	}
	return result, nil
}

func (f *fakeRepo) ListDetailedByUser(_ context.Context, userID string) ([]*domain.BookingDetails, error) {
	result := make([]*domain.BookingDetails, 0)
	for _, b := range f.bookings {
		if b.UserID == userID {
			result = append(result, &domain.BookingDetails{Booking: *b, ProfessionalName: "Alice", ServiceName: "Corte"})
		}
	}
	return result, nil
}

func (f *fakeRepo) UpdateStatus(_ context.Context, id string, status domain.BookingStatus) error {
	f.updates++
	if f.updateErr != nil {
		return f.updateErr
	}
	b, ok := f.bookings[id]
	if !ok {
		return bookingRepo.ErrBookingNotFound
	}
	b.Status = status
	return nil
}

func sampleBooking() *domain.Booking {
	return &domain.Booking{
		ID:             bookingID,
		Date:           time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC),
		Time:           "09:00",
		Status:         domain.StatusConfirmed,
		ProfessionalID: professionalID,
		UserID:         ownerID,
		ServiceID:      serviceID,
		CreatedAt:      time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func newService() (*Service, *fakeRepo) {
	repo := &fakeRepo{bookings: map[string]*domain.Booking{bookingID: sampleBooking()}}
	return NewService(repo, logger.NewNop()), repo
}

func TestUpdateStatus_ChangesOnlyStatus(t *testing.T) {
	svc, repo := newService()
	before := *repo.bookings[bookingID]

	require.NoError(t, svc.UpdateStatus(context.Background(), bookingID, "cancelado", domain.AdminStatuses))

	after := *repo.bookings[bookingID]
	assert.Equal(t, domain.StatusCancelled, after.Status)

	after.Status = before.Status
	assert.Equal(t, before, after)
}

func TestUpdateStatus_Vocabularies(t *testing.T) {
	tests := []struct {
		name       string
		word       string
		vocabulary domain.StatusVocabulary
		want       domain.BookingStatus
		wantErr    error
	}{
		{"legacy approved", "approved", domain.LegacyStatuses, domain.StatusConfirmed, nil},
		{"legacy canceled", "canceled", domain.LegacyStatuses, domain.StatusCancelled, nil},
		{"legacy rejects marcado", "marcado", domain.LegacyStatuses, "", ErrInvalidStatus},
		{"admin marcado", "marcado", domain.AdminStatuses, domain.StatusConfirmed, nil},
		{"admin rejects approved", "approved", domain.AdminStatuses, "", ErrInvalidStatus},
		{"legacy word must match exactly", "APPROVED ", domain.LegacyStatuses, "", ErrInvalidStatus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newService()
			repo.bookings[bookingID].Status = domain.StatusPending

			err := svc.UpdateStatus(context.Background(), bookingID, tt.word, tt.vocabulary)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Zero(t, repo.updates)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, repo.bookings[bookingID].Status)
		})
	}
}

func TestUpdateStatus_Errors(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		svc, _ := newService()
		err := svc.UpdateStatus(context.Background(), "17", "approved", domain.LegacyStatuses)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("not found", func(t *testing.T) {
		svc, _ := newService()
		err := svc.UpdateStatus(context.Background(), strangerID, "approved", domain.LegacyStatuses)
		assert.ErrorIs(t, err, ErrBookingNotFound)
	})

	t.Run("reactivation over taken slot", func(t *testing.T) {
		svc, repo := newService()
		repo.updateErr = fmt.Errorf("%w: UpdateStatus: %w", bookingRepo.ErrSlotTaken, &pq.Error{Code: "23505"})
		err := svc.UpdateStatus(context.Background(), bookingID, "approved", domain.LegacyStatuses)
		assert.ErrorIs(t, err, ErrSlotTaken)
	})

	t.Run("deadline", func(t *testing.T) {
		svc, repo := newService()
		repo.updateErr = fmt.Errorf("%w: %w", bookingRepo.ErrExecQuery, context.DeadlineExceeded)
		err := svc.UpdateStatus(context.Background(), bookingID, "approved", domain.LegacyStatuses)
		assert.ErrorIs(t, err, ErrTimeout)
	})

	t.Run("query cancelled by postgres", func(t *testing.T) {
		svc, repo := newService()
		repo.updateErr = fmt.Errorf("%w: %w", bookingRepo.ErrExecQuery, &pq.Error{Code: "57014"})
		err := svc.UpdateStatus(context.Background(), bookingID, "approved", domain.LegacyStatuses)
		assert.ErrorIs(t, err, ErrTimeout)
	})
}

func TestCancelOwn(t *testing.T) {
	t.Run("owner cancels", func(t *testing.T) {
		svc, repo := newService()
		require.NoError(t, svc.CancelOwn(context.Background(), ownerID, bookingID))
		assert.Equal(t, domain.StatusCancelled, repo.bookings[bookingID].Status)
	})

	t.Run("stranger is denied", func(t *testing.T) {
		svc, repo := newService()
		err := svc.CancelOwn(context.Background(), strangerID, bookingID)
		assert.ErrorIs(t, err, ErrAccessDenied)
		assert.Equal(t, domain.StatusConfirmed, repo.bookings[bookingID].Status)
	})

	t.Run("missing booking", func(t *testing.T) {
		svc, _ := newService()
		err := svc.CancelOwn(context.Background(), ownerID, strangerID)
		assert.ErrorIs(t, err, ErrBookingNotFound)
	})
}

func TestList(t *testing.T) {
	t.Run("filters are parsed", func(t *testing.T) {
		svc, repo := newService()

		result, err := svc.List(context.Background(), &models.ListBookingsRequest{
			ProfessionalID: professionalID,
			Date:           "2024-06-03",
			Status:         "confirmed",
		})
		require.NoError(t, err)
		require.Len(t, result, 1)
		assert.Equal(t, "2024-06-03", result[0].Date)
		assert.Equal(t, "09:00", result[0].Time)

		require.NotNil(t, repo.filter.ProfessionalID)
		assert.Equal(t, professionalID, *repo.filter.ProfessionalID)
		require.NotNil(t, repo.filter.Status)
		assert.Equal(t, domain.StatusConfirmed, *repo.filter.Status)
		assert.Nil(t, repo.filter.UserID)
	})

	t.Run("invalid filters", func(t *testing.T) {
		svc, _ := newService()

		_, err := svc.List(context.Background(), &models.ListBookingsRequest{Date: "June"})
		assert.ErrorIs(t, err, ErrInvalidInput)

		_, err = svc.List(context.Background(), &models.ListBookingsRequest{Status: "marcado"})
		assert.ErrorIs(t, err, ErrInvalidStatus)

		_, err = svc.List(context.Background(), &models.ListBookingsRequest{UserID: "me"})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("storage error", func(t *testing.T) {
		svc, repo := newService()
		repo.listErr = errors.New("boom")

		_, err := svc.List(context.Background(), &models.ListBookingsRequest{})
		assert.ErrorIs(t, err, ErrInternal)
	})
}

func TestListByUser(t *testing.T) {
	svc, _ := newService()

	result, err := svc.ListByUser(context.Background(), ownerID)
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, "Alice", result[0].ProfessionalName)
	assert.Equal(t, "Corte", result[0].ServiceName)
	assert.Equal(t, bookingID, result[0].ID)
}
