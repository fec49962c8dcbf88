package get_user_bookings

import (
	"context"

	"github.com/m04kA/SMC-AgendaService/internal/service/bookings/models"
)

type BookingService interface {
	ListByUser(ctx context.Context, userID string) ([]*models.UserBookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
