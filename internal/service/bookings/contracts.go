package bookings

import (
	"context"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
	ListDetailedByUser(ctx context.Context, userID string) ([]*domain.BookingDetails, error)
	UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
