package create_user

import (
	"strings"

	"github.com/m04kA/SMC-AgendaService/internal/service/users/models"
)

// CreateUserRequest HTTP request model
type CreateUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// HasAllFields проверяет обязательные поля
func (r *CreateUserRequest) HasAllFields() bool {
	return strings.TrimSpace(r.Name) != "" &&
		strings.TrimSpace(r.Email) != "" &&
		r.Password != "" &&
		strings.TrimSpace(r.Role) != ""
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CreateUserRequest) ToServiceRequest() *models.CreateUserRequest {
	return &models.CreateUserRequest{
		Name:     r.Name,
		Email:    r.Email,
		Password: r.Password,
		Role:     r.Role,
	}
}
