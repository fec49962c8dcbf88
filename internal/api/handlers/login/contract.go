package login

import (
	"context"

	"github.com/m04kA/SMC-AgendaService/internal/service/users/models"
)

type UserService interface {
	Login(ctx context.Context, email string, password string) (*models.LoginResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
