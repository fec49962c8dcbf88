package update_user_role

import "context"

type UserService interface {
	UpdateRole(ctx context.Context, userID string, role string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
