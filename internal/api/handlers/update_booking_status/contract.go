package update_booking_status

import (
	"context"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
)

type BookingService interface {
	UpdateStatus(ctx context.Context, bookingID string, word string, vocabulary domain.StatusVocabulary) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
