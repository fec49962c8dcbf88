package create_professional

import (
	"strings"

	"github.com/m04kA/SMC-AgendaService/internal/service/professionals/models"
)

// CreateProfessionalRequest HTTP request model
// schedule принимается как синоним availability
type CreateProfessionalRequest struct {
	Name           string              `json:"name"`
	Specialization string              `json:"specialization"`
	Availability   map[string][]string `json:"availability"`
	Schedule       map[string][]string `json:"schedule"`
}

func (r *CreateProfessionalRequest) availability() map[string][]string {
	if len(r.Availability) > 0 {
		return r.Availability
	}
	return r.Schedule
}

// HasAllFields проверяет обязательные поля
func (r *CreateProfessionalRequest) HasAllFields() bool {
	return strings.TrimSpace(r.Name) != "" &&
		strings.TrimSpace(r.Specialization) != "" &&
		len(r.availability()) > 0
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CreateProfessionalRequest) ToServiceRequest() *models.CreateProfessionalRequest {
	return &models.CreateProfessionalRequest{
		Name:           r.Name,
		Specialization: r.Specialization,
		Availability:   r.availability(),
	}
}
