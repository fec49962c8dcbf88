package get_available_slots

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
)

// validateRequest валидирует входные данные запроса и возвращает дату
func validateRequest(req *Request) (time.Time, error) {
	if strings.TrimSpace(req.ProfessionalID) == "" {
		return time.Time{}, fmt.Errorf("%w: professionalId is required", ErrInvalidInput)
	}
	if _, err := uuid.Parse(req.ProfessionalID); err != nil {
		return time.Time{}, fmt.Errorf("%w: professionalId must be a UUID", ErrInvalidInput)
	}

	date, err := time.Parse(domain.DateFormat, req.Date)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date must be in YYYY-MM-DD format", ErrInvalidInput)
	}

	return date, nil
}
