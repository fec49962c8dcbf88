package update_availability

import "context"

type ProfessionalService interface {
	UpdateAvailability(ctx context.Context, professionalID string, raw map[string][]string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
