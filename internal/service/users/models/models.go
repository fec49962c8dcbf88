package models

import (
	"time"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
)

// CreateUserRequest запрос на регистрацию пользователя
type CreateUserRequest struct {
	Name     string
	Email    string
	Password string
	Role     string

	// CallerRole роль того, кто создает пользователя, пустая для анонимной регистрации
	CallerRole domain.Role
}

// UserResponse публичные данные пользователя, без хеша пароля
type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// LoginResponse токен и данные вошедшего пользователя
type LoginResponse struct {
	Token string        `json:"token"`
	User  *UserResponse `json:"user"`
}

// FromDomainUser конвертирует domain.User в ответ
func FromDomainUser(u *domain.User) *UserResponse {
	return &UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt,
	}
}

// FromDomainUserList конвертирует список пользователей
func FromDomainUserList(list []*domain.User) []*UserResponse {
	result := make([]*UserResponse, 0, len(list))
	for _, u := range list {
		result = append(result, FromDomainUser(u))
	}
	return result
}
