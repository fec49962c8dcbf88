package services

import "errors"

var (
	// ErrProfessionalNotFound возвращается, когда один из специалистов услуги не найден
	ErrProfessionalNotFound = errors.New("services.service: professional not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("services.service: invalid input data")

	// ErrTimeout возвращается, когда истек дедлайн запроса
	ErrTimeout = errors.New("services.service: deadline exceeded")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("services.service: internal error")
)
