package models

import "github.com/m04kA/SMC-AgendaService/internal/domain"

// CreateProfessionalRequest запрос на создание специалиста
type CreateProfessionalRequest struct {
	Name           string
	Specialization string
	Availability   map[string][]string // день недели -> ["HH:MM", ...]
}

// ProfessionalResponse ответ с данными специалиста
type ProfessionalResponse struct {
	ID             string              `json:"id"`
	Name           string              `json:"name"`
	Specialization string              `json:"specialization"`
	Availability   map[string][]string `json:"availability"`
}

// FromDomainProfessional конвертирует domain.Professional в ответ
func FromDomainProfessional(p *domain.Professional) *ProfessionalResponse {
	return &ProfessionalResponse{
		ID:             p.ID,
		Name:           p.Name,
		Specialization: p.Specialization,
		Availability:   p.Availability.Strings(),
	}
}

// FromDomainProfessionalList конвертирует список специалистов
func FromDomainProfessionalList(list []*domain.Professional) []*ProfessionalResponse {
	result := make([]*ProfessionalResponse, 0, len(list))
	for _, p := range list {
		result = append(result, FromDomainProfessional(p))
	}
	return result
}
