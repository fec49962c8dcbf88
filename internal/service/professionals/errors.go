package professionals

import "errors"

var (
	// ErrProfessionalNotFound возвращается, когда специалист не найден
	ErrProfessionalNotFound = errors.New("professionals.service: professional not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("professionals.service: invalid input data")

	// ErrInvalidAvailability возвращается для расписания с неизвестным днем недели или временем не в формате HH:MM
	ErrInvalidAvailability = errors.New("professionals.service: invalid availability")

	// ErrTimeout возвращается, когда истек дедлайн запроса
	ErrTimeout = errors.New("professionals.service: deadline exceeded")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("professionals.service: internal error")
)
