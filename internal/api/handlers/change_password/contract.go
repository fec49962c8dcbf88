package change_password

import "context"

type UserService interface {
	ChangePassword(ctx context.Context, userID string, password string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
