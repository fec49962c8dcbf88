package create_booking

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-AgendaService/internal/infra/storage/booking"
	professionalRepo "github.com/m04kA/SMC-AgendaService/internal/infra/storage/professional"
	serviceRepo "github.com/m04kA/SMC-AgendaService/internal/infra/storage/service"
	userRepo "github.com/m04kA/SMC-AgendaService/internal/infra/storage/user"
	"github.com/m04kA/SMC-AgendaService/pkg/logger"
	"github.com/m04kA/SMC-AgendaService/pkg/txmanager"
	"github.com/m04kA/SMC-AgendaService/pkg/types"
)

const (
	aliceID   = "7c9e6679-7425-40de-944b-e07fc1f90ae7"
	bobID     = "8d0f7780-8536-41ef-a55c-f18fd2fa1bf8"
	userID    = "9b2f1c4e-3a5d-4f6e-8a7b-1c2d3e4f5a6b"
	serviceID = "1f0e2d3c-4b5a-4968-8776-a5b4c3d2e1f0"
	unknownID = "0a1b2c3d-4e5f-4a6b-8c7d-9e0f1a2b3c4d"
)

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

// memoryBookings хранилище с уникальностью активного слота, как частичный индекс в Postgres
type memoryBookings struct {
	mu          sync.Mutex
	bookings    []*domain.Booking
	checkCalls  int
	createErr   error
	existsErr   error
	beforeWrite func()
}

func slotKey(professionalID string, date time.Time, t types.TimeString) string {
	return fmt.Sprintf("%s/%s/%s", professionalID, date.Format(domain.DateFormat), t)
}

func (m *memoryBookings) ExistsBindingAtSlot(_ context.Context, professionalID string, date time.Time, t types.TimeString) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.checkCalls++
	if m.existsErr != nil {
		return false, m.existsErr
	}
	key := slotKey(professionalID, date, t)
	for _, b := range m.bookings {
		if b.IsBinding() && slotKey(b.ProfessionalID, b.Date, b.Time) == key {
			return true, nil
		}
	}
	return false, nil
}

func (m *memoryBookings) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	if m.beforeWrite != nil {
		m.beforeWrite()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.createErr != nil {
		return nil, m.createErr
	}
	key := slotKey(booking.ProfessionalID, booking.Date, booking.Time)
	for _, b := range m.bookings {
		if b.IsBinding() && slotKey(b.ProfessionalID, b.Date, b.Time) == key {
			return nil, fmt.Errorf("%w: Create: %w", bookingRepo.ErrSlotTaken, &pq.Error{Code: "23505"})
		}
	}
	booking.ID = fmt.Sprintf("booking-%d", len(m.bookings)+1)
	booking.CreatedAt = time.Now()
	m.bookings = append(m.bookings, booking)
	return booking, nil
}

type fakeProfessionals map[string]*domain.Professional

func (f fakeProfessionals) GetByID(_ context.Context, id string) (*domain.Professional, error) {
	if p, ok := f[id]; ok {
		return p, nil
	}
	return nil, professionalRepo.ErrProfessionalNotFound
}

type fakeUsers map[string]*domain.User

func (f fakeUsers) GetByID(_ context.Context, id string) (*domain.User, error) {
	if u, ok := f[id]; ok {
		return u, nil
	}
	return nil, userRepo.ErrUserNotFound
}

type fakeServices struct {
	services map[string]*domain.Service
	err      error
}

func (f *fakeServices) GetByID(_ context.Context, id string) (*domain.Service, error) {
	if f.err != nil {
		return nil, f.err
	}
	if s, ok := f.services[id]; ok {
		return s, nil
	}
	return nil, serviceRepo.ErrServiceNotFound
}

type passthroughTx struct {
	err error
}

func (p *passthroughTx) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	if err := fn(ctx); err != nil {
		return err
	}
	return p.err
}

type fixture struct {
	uc       *UseCase
	bookings *memoryBookings
	services *fakeServices
	tx       *passthroughTx
}

func newFixture() *fixture {
	bookings := &memoryBookings{}
	services := &fakeServices{services: map[string]*domain.Service{
		serviceID: {ID: serviceID, Name: "Corte", Price: 50, ProfessionalIDs: []string{aliceID}},
	}}
	tx := &passthroughTx{}
	professionals := fakeProfessionals{
		aliceID: {ID: aliceID, Name: "Alice", Availability: domain.WeeklyAvailability{"monday": {"09:00", "10:00"}}},
		bobID:   {ID: bobID, Name: "Bob", Availability: domain.WeeklyAvailability{"monday": {"09:00"}}},
	}
	users := fakeUsers{userID: {ID: userID, Role: domain.RoleUser}}

	uc := NewUseCase(bookings, professionals, users, services, tx, logger.NewNop()).
		WithTimeProvider(fixedClock{now: time.Date(2024, 6, 1, 15, 0, 0, 0, time.UTC)})

	return &fixture{uc: uc, bookings: bookings, services: services, tx: tx}
}

func validRequest() *Request {
	return &Request{
		Date:           "2024-06-03",
		Time:           "09:00",
		ProfessionalID: aliceID,
		UserID:         userID,
		ServiceID:      serviceID,
		Status:         "confirmed",
	}
}

func TestExecute_Success(t *testing.T) {
	f := newFixture()

	resp, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, domain.StatusConfirmed, resp.Status)
	assert.Equal(t, types.TimeString("09:00"), resp.Time)
	assert.Len(t, f.bookings.bookings, 1)
}

func TestExecute_LegacyStatusIsTranslated(t *testing.T) {
	f := newFixture()
	req := validRequest()
	req.Status = "marcado"

	resp, err := f.uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusConfirmed, resp.Status)
}

func TestExecute_SecondBookingForSameSlotConflicts(t *testing.T) {
	f := newFixture()

	_, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	_, err = f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotTaken)
	assert.Len(t, f.bookings.bookings, 1)
}

func TestExecute_PendingBookingAlsoHoldsSlot(t *testing.T) {
	f := newFixture()
	req := validRequest()
	req.Status = "pending"

	_, err := f.uc.Execute(context.Background(), req)
	require.NoError(t, err)

	_, err = f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotTaken)
}

func TestExecute_CancelledBookingFreesSlot(t *testing.T) {
	f := newFixture()
	f.bookings.bookings = append(f.bookings.bookings, &domain.Booking{
		ID:             "old",
		Date:           time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC),
		Time:           "09:00",
		Status:         domain.StatusCancelled,
		ProfessionalID: aliceID,
	})

	_, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
}

func TestExecute_TimeOutsideAvailabilityRejectedBeforeConflictCheck(t *testing.T) {
	f := newFixture()
	req := validRequest()
	req.Date = "2024-06-04" // вторник, у Alice нет расписания

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrTimeNotAvailable)
	assert.Zero(t, f.bookings.checkCalls)
}

func TestExecute_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(r *Request)
		wantErr error
	}{
		{"empty date", func(r *Request) { r.Date = "" }, ErrInvalidInput},
		{"bad date format", func(r *Request) { r.Date = "03-06-2024" }, ErrInvalidInput},
		{"bad time format", func(r *Request) { r.Time = "9:00" }, ErrInvalidInput},
		{"professional id not uuid", func(r *Request) { r.ProfessionalID = "alice" }, ErrInvalidInput},
		{"empty user", func(r *Request) { r.UserID = " " }, ErrInvalidInput},
		{"unknown status word", func(r *Request) { r.Status = "approvedish" }, ErrInvalidInput},
		{"cancelled on create", func(r *Request) { r.Status = "cancelled" }, ErrInvalidInput},
		{"date in past", func(r *Request) { r.Date = "2024-05-27" }, ErrDateInPast},
		{"unknown professional", func(r *Request) { r.ProfessionalID = unknownID }, ErrProfessionalNotFound},
		{"unknown user", func(r *Request) { r.UserID = unknownID }, ErrUserNotFound},
		{"unknown service", func(r *Request) { r.ServiceID = unknownID }, ErrServiceNotFound},
		{"service not performed", func(r *Request) { r.ProfessionalID = bobID }, ErrServiceNotPerformed},
		{"time not configured", func(r *Request) { r.Time = "11:00" }, ErrTimeNotAvailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			req := validRequest()
			tt.mutate(req)

			_, err := f.uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, f.bookings.bookings)
		})
	}
}

func TestExecute_TodayIsAllowed(t *testing.T) {
	f := newFixture()
	f.uc.WithTimeProvider(fixedClock{now: time.Date(2024, 6, 3, 23, 0, 0, 0, time.UTC)})

	_, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
}

func TestExecute_StorageErrors(t *testing.T) {
	t.Run("deadline exceeded", func(t *testing.T) {
		f := newFixture()
		f.services.err = fmt.Errorf("query: %w", context.DeadlineExceeded)

		_, err := f.uc.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrTimeout)
	})

	t.Run("query cancelled by postgres", func(t *testing.T) {
		f := newFixture()
		f.bookings.createErr = fmt.Errorf("%w: Create - execute insert: %w",
			bookingRepo.ErrExecQuery, &pq.Error{Code: "57014", Message: "canceling statement due to user request"})

		_, err := f.uc.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrTimeout)
	})

	t.Run("insert failure", func(t *testing.T) {
		f := newFixture()
		f.bookings.createErr = errors.New("disk full")

		_, err := f.uc.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrInternal)
	})

	t.Run("conflict check failure", func(t *testing.T) {
		f := newFixture()
		f.bookings.existsErr = errors.New("connection reset")

		_, err := f.uc.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrInternal)
	})

	t.Run("serialization failure on commit", func(t *testing.T) {
		f := newFixture()
		f.tx.err = fmt.Errorf("%w: %w", txmanager.ErrSerializationFailure, &pq.Error{Code: "40001"})

		_, err := f.uc.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrSlotTaken)
	})
}

func TestExecute_ConcurrentCreatesOneWins(t *testing.T) {
	f := newFixture()

	// Оба запроса проходят проверку конфликта до того, как кто-то из них вставит строку
	var checked sync.WaitGroup
	checked.Add(2)
	f.bookings.beforeWrite = func() {
		checked.Done()
		checked.Wait()
	}

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = f.uc.Execute(context.Background(), validRequest())
		}(i)
	}
	wg.Wait()

	succeeded, conflicted := 0, 0
	for _, err := range errs {
		switch {
		case err == nil:
			succeeded++
		case errors.Is(err, ErrSlotTaken):
			conflicted++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	assert.Equal(t, 1, succeeded)
	assert.Equal(t, 1, conflicted)
	assert.Len(t, f.bookings.bookings, 1)
}
