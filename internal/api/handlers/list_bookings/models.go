package list_bookings

import (
	"net/url"
	"strings"

	"github.com/m04kA/SMC-AgendaService/internal/service/bookings/models"
)

// ToServiceRequest формирует фильтры из query параметров
func ToServiceRequest(query url.Values) *models.ListBookingsRequest {
	return &models.ListBookingsRequest{
		ProfessionalID: strings.TrimSpace(query.Get("professionalId")),
		UserID:         strings.TrimSpace(query.Get("userId")),
		Date:           strings.TrimSpace(query.Get("date")),
		Status:         strings.TrimSpace(query.Get("status")),
	}
}
