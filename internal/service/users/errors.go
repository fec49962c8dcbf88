package users

import "errors"

var (
	// ErrUserNotFound возвращается, когда пользователь не найден
	ErrUserNotFound = errors.New("users.service: user not found")

	// ErrEmailTaken возвращается, когда email уже зарегистрирован
	ErrEmailTaken = errors.New("users.service: email already registered")

	// ErrAdminRoleRequired возвращается, когда роль admin назначает не администратор
	ErrAdminRoleRequired = errors.New("users.service: only an admin can create an admin")

	// ErrInvalidCredentials возвращается при неверной паре email/пароль
	ErrInvalidCredentials = errors.New("users.service: invalid credentials")

	// ErrUserHasBookings возвращается при удалении пользователя с бронированиями
	ErrUserHasBookings = errors.New("users.service: user has bookings")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("users.service: invalid input data")

	// ErrTimeout возвращается, когда истек дедлайн запроса
	ErrTimeout = errors.New("users.service: deadline exceeded")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("users.service: internal error")
)
