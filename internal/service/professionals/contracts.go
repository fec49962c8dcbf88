package professionals

import (
	"context"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
)

// ProfessionalRepository интерфейс репозитория специалистов
type ProfessionalRepository interface {
	Create(ctx context.Context, p *domain.Professional) (*domain.Professional, error)
	List(ctx context.Context, serviceID *string) ([]*domain.Professional, error)
	UpdateAvailability(ctx context.Context, id string, availability domain.WeeklyAvailability) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
