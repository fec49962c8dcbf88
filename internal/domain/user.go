package domain

import (
	"strings"
	"time"
)

// Role роль пользователя
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// ParseRole проверяет значение роли (пустая строка = user)
func ParseRole(s string) (Role, bool) {
	switch role := Role(strings.ToLower(strings.TrimSpace(s))); role {
	case "":
		return RoleUser, true
	case RoleUser, RoleAdmin:
		return role, true
	default:
		return "", false
	}
}

// User represents an account of the booking system
type User struct {
	ID           string
	Email        string
	Name         string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
}

// IsAdmin returns true if the user has the admin role
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
