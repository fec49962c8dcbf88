package auth

import "errors"

var (
	// ErrInvalidToken возвращается для поддельного, просроченного или нераспознанного токена
	ErrInvalidToken = errors.New("auth: invalid token")

	// ErrSignToken возвращается при ошибке подписи токена
	ErrSignToken = errors.New("auth: failed to sign token")
)
