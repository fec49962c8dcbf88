package list_professionals

import (
	"context"

	"github.com/m04kA/SMC-AgendaService/internal/service/professionals/models"
)

type ProfessionalService interface {
	List(ctx context.Context, serviceID string) ([]*models.ProfessionalResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
