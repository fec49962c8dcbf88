package bookings

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("bookings.service: booking not found")

	// ErrAccessDenied возвращается, когда пользователь отменяет чужое бронирование
	ErrAccessDenied = errors.New("bookings.service: access denied")

	// ErrInvalidStatus возвращается для слова статуса вне словаря точки вызова
	ErrInvalidStatus = errors.New("bookings.service: invalid booking status")

	// ErrSlotTaken возвращается при возврате бронирования в активный статус, когда слот уже занят
	ErrSlotTaken = errors.New("bookings.service: slot already booked")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("bookings.service: invalid input data")

	// ErrTimeout возвращается, когда истек дедлайн запроса
	ErrTimeout = errors.New("bookings.service: deadline exceeded")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("bookings.service: internal error")
)
