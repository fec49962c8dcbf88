package create_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrDateInPast возвращается, когда дата бронирования раньше сегодняшней
	ErrDateInPast = errors.New("create_booking: booking date is in the past")

	// ErrProfessionalNotFound возвращается, когда специалист не найден
	ErrProfessionalNotFound = errors.New("create_booking: professional not found")

	// ErrUserNotFound возвращается, когда пользователь не найден
	ErrUserNotFound = errors.New("create_booking: user not found")

	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("create_booking: service not found")

	// ErrServiceNotPerformed возвращается, когда специалист не оказывает выбранную услугу
	ErrServiceNotPerformed = errors.New("create_booking: service is not performed by this professional")

	// ErrTimeNotAvailable возвращается, когда время не входит в расписание специалиста на эту дату
	ErrTimeNotAvailable = errors.New("create_booking: time is not in professional availability")

	// ErrSlotTaken возвращается, когда слот уже занят активным бронированием
	ErrSlotTaken = errors.New("create_booking: slot already booked")

	// ErrTimeout возвращается, когда истек дедлайн запроса
	ErrTimeout = errors.New("create_booking: deadline exceeded")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
