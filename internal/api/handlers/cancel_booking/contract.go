package cancel_booking

import "context"

type BookingService interface {
	CancelOwn(ctx context.Context, userID string, bookingID string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
