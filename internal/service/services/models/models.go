package models

import "github.com/m04kA/SMC-AgendaService/internal/domain"

// CreateServiceRequest запрос на создание услуги
type CreateServiceRequest struct {
	Name            string
	Description     string
	Price           float64
	ProfessionalIDs []string
}

// ServiceResponse ответ с данными услуги
type ServiceResponse struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	Price           float64  `json:"price"`
	ProfessionalIDs []string `json:"professionalIds"`
}

// FromDomainService конвертирует domain.Service в ответ
func FromDomainService(s *domain.Service) *ServiceResponse {
	ids := s.ProfessionalIDs
	if ids == nil {
		ids = []string{}
	}
	return &ServiceResponse{
		ID:              s.ID,
		Name:            s.Name,
		Description:     s.Description,
		Price:           s.Price,
		ProfessionalIDs: ids,
	}
}

// FromDomainServiceList конвертирует список услуг
func FromDomainServiceList(list []*domain.Service) []*ServiceResponse {
	result := make([]*ServiceResponse, 0, len(list))
	for _, s := range list {
		result = append(result, FromDomainService(s))
	}
	return result
}
