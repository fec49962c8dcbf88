package create_booking

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	"github.com/m04kA/SMC-AgendaService/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) (*validated, error) {
	fields := []struct {
		name  string
		value string
	}{
		{"date", req.Date},
		{"time", req.Time},
		{"professionalId", req.ProfessionalID},
		{"userId", req.UserID},
		{"serviceId", req.ServiceID},
		{"status", req.Status},
	}
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			return nil, fmt.Errorf("%w: %s is required", ErrInvalidInput, f.name)
		}
	}

	for _, id := range []struct {
		name  string
		value string
	}{
		{"professionalId", req.ProfessionalID},
		{"userId", req.UserID},
		{"serviceId", req.ServiceID},
	} {
		if _, err := uuid.Parse(id.value); err != nil {
			return nil, fmt.Errorf("%w: %s must be a UUID", ErrInvalidInput, id.name)
		}
	}

	date, err := time.Parse(domain.DateFormat, req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: date must be in YYYY-MM-DD format", ErrInvalidInput)
	}

	startTime, err := types.NewTimeStringFromString(req.Time)
	if err != nil {
		return nil, fmt.Errorf("%w: time must be in HH:MM format", ErrInvalidInput)
	}

	status, ok := domain.CreateStatuses.Resolve(req.Status)
	if !ok {
		return nil, fmt.Errorf("%w: status must be one of %s", ErrInvalidInput,
			strings.Join(domain.CreateStatuses.Words(), ", "))
	}

	return &validated{date: date, time: startTime, status: status}, nil
}

// isDateInPast проверяет, что дата раньше сегодняшнего дня по часам now
func isDateInPast(date time.Time, now time.Time) bool {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	return day.Before(today)
}
