package create_service

import (
	"strings"

	"github.com/m04kA/SMC-AgendaService/internal/service/services/models"
)

// CreateServiceRequest HTTP request model
// professionalId оставлен для старых клиентов, professionalIds позволяет указать нескольких специалистов
type CreateServiceRequest struct {
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	Price           float64  `json:"price"`
	ProfessionalID  string   `json:"professionalId"`
	ProfessionalIDs []string `json:"professionalIds"`
}

// professionalIDs объединяет оба поля
func (r *CreateServiceRequest) professionalIDs() []string {
	ids := make([]string, 0, len(r.ProfessionalIDs)+1)
	if id := strings.TrimSpace(r.ProfessionalID); id != "" {
		ids = append(ids, id)
	}
	for _, id := range r.ProfessionalIDs {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}

// HasAllFields проверяет обязательные поля
func (r *CreateServiceRequest) HasAllFields() bool {
	return strings.TrimSpace(r.Name) != "" &&
		strings.TrimSpace(r.Description) != "" &&
		r.Price != 0 &&
		len(r.professionalIDs()) > 0
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CreateServiceRequest) ToServiceRequest() *models.CreateServiceRequest {
	return &models.CreateServiceRequest{
		Name:            r.Name,
		Description:     r.Description,
		Price:           r.Price,
		ProfessionalIDs: r.professionalIDs(),
	}
}
