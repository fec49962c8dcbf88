package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/m04kA/SMC-AgendaService/internal/api/handlers"
	"github.com/m04kA/SMC-AgendaService/internal/domain"
	"github.com/m04kA/SMC-AgendaService/internal/infra/auth"
	"github.com/m04kA/SMC-AgendaService/internal/service/users"
)

const (
	msgMissingToken = "Token de acesso obrigatório."
	msgInvalidToken = "Token inválido."
	msgAdminOnly    = "Acesso restrito a administradores."
)

type contextKey string

const (
	userIDKey contextKey = "user_id"
	roleKey   contextKey = "role"
)

// TokenParser проверяет токен доступа
type TokenParser interface {
	Parse(token string) (*auth.Claims, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RoleChecker возвращает актуальную роль пользователя
type RoleChecker interface {
	CurrentRole(ctx context.Context, userID string) (domain.Role, error)
}

// Auth проверяет заголовок Authorization: Bearer <token> и кладет ID пользователя и роль в контекст
func Auth(parser TokenParser, logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Header.Get("Authorization") == "" {
				logger.Warn("%s %s - Missing bearer token", r.Method, r.URL.Path)
				handlers.RespondUnauthorized(w, msgMissingToken)
				return
			}
			authenticate(parser, logger, next, w, r)
		})
	}
}

// OptionalAuth пропускает запросы без заголовка Authorization,
// а переданный токен проверяет так же, как Auth
func OptionalAuth(parser TokenParser, logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Header.Get("Authorization") == "" {
				next.ServeHTTP(w, r)
				return
			}
			authenticate(parser, logger, next, w, r)
		})
	}
}

func authenticate(parser TokenParser, logger Logger, next http.Handler, w http.ResponseWriter, r *http.Request) {
	header := r.Header.Get("Authorization")
	token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	if token == "" || token == header {
		logger.Warn("%s %s - Missing bearer token", r.Method, r.URL.Path)
		handlers.RespondUnauthorized(w, msgMissingToken)
		return
	}

	claims, err := parser.Parse(token)
	if err != nil {
		logger.Warn("%s %s - Invalid token: %v", r.Method, r.URL.Path, err)
		handlers.RespondUnauthorized(w, msgInvalidToken)
		return
	}

	next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), claims.Subject, claims.Role)))
}

// RequireAdmin пропускает только администраторов, ставится после Auth
// Роль берется из хранилища, а не из токена: пониженный или удаленный администратор теряет доступ сразу
func RequireAdmin(roles RoleChecker, logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, ok := GetUserID(r.Context())
			if !ok {
				handlers.RespondUnauthorized(w, msgMissingToken)
				return
			}

			role, err := roles.CurrentRole(r.Context(), userID)
			if err != nil {
				switch {
				case errors.Is(err, users.ErrUserNotFound):
					logger.Warn("%s %s - Token of unknown user: user_id=%s", r.Method, r.URL.Path, userID)
					handlers.RespondUnauthorized(w, msgInvalidToken)
				case errors.Is(err, users.ErrTimeout):
					logger.Error("%s %s - Deadline exceeded while checking role: %v", r.Method, r.URL.Path, err)
					handlers.RespondTimeout(w)
				default:
					logger.Error("%s %s - Failed to check role: user_id=%s, error=%v", r.Method, r.URL.Path, userID, err)
					handlers.RespondInternalError(w)
				}
				return
			}

			if role != domain.RoleAdmin {
				logger.Warn("%s %s - Admin role required: user_id=%s, role=%s", r.Method, r.URL.Path, userID, role)
				handlers.RespondForbidden(w, msgAdminOnly)
				return
			}
			next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), userID, role)))
		})
	}
}

// GetUserID возвращает ID пользователя из контекста
func GetUserID(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(userIDKey).(string)
	return userID, ok && userID != ""
}

// GetRole возвращает роль пользователя из контекста
func GetRole(ctx context.Context) (domain.Role, bool) {
	role, ok := ctx.Value(roleKey).(domain.Role)
	return role, ok
}

// WithUser кладет пользователя в контекст
func WithUser(ctx context.Context, userID string, role domain.Role) context.Context {
	ctx = context.WithValue(ctx, userIDKey, userID)
	return context.WithValue(ctx, roleKey, role)
}
