package users

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	userRepo "github.com/m04kA/SMC-AgendaService/internal/infra/storage/user"
	"github.com/m04kA/SMC-AgendaService/internal/service/users/models"
	"github.com/m04kA/SMC-AgendaService/pkg/pgerrors"
)

// maxPasswordLength ограничение bcrypt на длину входа в байтах
const maxPasswordLength = 72

// Service сервис пользователей
type Service struct {
	userRepo   UserRepository
	tokens     TokenIssuer
	logger     Logger
	bcryptCost int
}

// NewService создает новый экземпляр сервиса пользователей
func NewService(userRepo UserRepository, tokens TokenIssuer, logger Logger) *Service {
	return &Service{
		userRepo:   userRepo,
		tokens:     tokens,
		logger:     logger,
		bcryptCost: bcrypt.DefaultCost,
	}
}

// WithBcryptCost устанавливает стоимость хеширования (для тестов)
func (s *Service) WithBcryptCost(cost int) *Service {
	s.bcryptCost = cost
	return s
}

// Create регистрирует пользователя, возвращает ID
// Роль admin может назначить только администратор (req.CallerRole)
func (s *Service) Create(ctx context.Context, req *models.CreateUserRequest) (string, error) {
	s.logger.Info("Create: email=%q, role=%q, caller_role=%q", req.Email, req.Role, req.CallerRole)
	return s.create(ctx, req, req.CallerRole == domain.RoleAdmin)
}

// CreateAdmin создает администратора в обход проверки вызывающего
// Вызывается только из CLI, где оператор имеет доступ к базе
func (s *Service) CreateAdmin(ctx context.Context, name string, email string, password string) (string, error) {
	s.logger.Info("CreateAdmin: email=%q", email)
	return s.create(ctx, &models.CreateUserRequest{
		Name:     name,
		Email:    email,
		Password: password,
		Role:     string(domain.RoleAdmin),
	}, true)
}

func (s *Service) create(ctx context.Context, req *models.CreateUserRequest, mayGrantAdmin bool) (string, error) {

	name := strings.TrimSpace(req.Name)
	if name == "" || len(name) > domain.MaxNameLength {
		s.logger.Warn("Create: invalid name")
		return "", fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	email, err := normalizeEmail(req.Email)
	if err != nil {
		s.logger.Warn("Create: invalid email %q", req.Email)
		return "", err
	}

	if err := validatePassword(req.Password); err != nil {
		s.logger.Warn("Create: invalid password")
		return "", err
	}

	role, ok := domain.ParseRole(req.Role)
	if !ok {
		s.logger.Warn("Create: unknown role %q", req.Role)
		return "", fmt.Errorf("%w: role must be user or admin", ErrInvalidInput)
	}
	if role == domain.RoleAdmin && !mayGrantAdmin {
		s.logger.Warn("Create: admin role requested by caller_role=%q", req.CallerRole)
		return "", ErrAdminRoleRequired
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.bcryptCost)
	if err != nil {
		s.logger.Error("Create: failed to hash password: %v", err)
		return "", fmt.Errorf("%w: Create - hash password: %w", ErrInternal, err)
	}

	created, err := s.userRepo.Create(ctx, &domain.User{
		Email:        email,
		Name:         name,
		PasswordHash: string(hash),
		Role:         role,
	})
	if err != nil {
		if errors.Is(err, userRepo.ErrEmailTaken) {
			s.logger.Warn("Create: email %q already registered", email)
			return "", ErrEmailTaken
		}
		s.logger.Error("Create: repository error: %v", err)
		return "", wrapStorage("Create", err)
	}

	s.logger.Info("Create: successfully created user id=%s", created.ID)
	return created.ID, nil
}

// Login проверяет пароль и выпускает токен
func (s *Service) Login(ctx context.Context, email string, password string) (*models.LoginResponse, error) {
	s.logger.Info("Login: email=%q", email)

	user, err := s.userRepo.GetByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("Login: unknown email %q", email)
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("Login: repository error: %v", err)
		return nil, wrapStorage("Login", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		s.logger.Warn("Login: wrong password for user id=%s", user.ID)
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID, user.Role)
	if err != nil {
		s.logger.Error("Login: failed to issue token for user id=%s: %v", user.ID, err)
		return nil, fmt.Errorf("%w: Login - issue token: %w", ErrInternal, err)
	}

	s.logger.Info("Login: user id=%s logged in", user.ID)
	return &models.LoginResponse{Token: token, User: models.FromDomainUser(user)}, nil
}

// CurrentRole возвращает актуальную роль пользователя из хранилища
func (s *Service) CurrentRole(ctx context.Context, userID string) (domain.Role, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("CurrentRole: user=%s not found", userID)
			return "", ErrUserNotFound
		}
		s.logger.Error("CurrentRole: repository error for user=%s: %v", userID, err)
		return "", wrapStorage("CurrentRole", err)
	}
	return user.Role, nil
}

// ChangePassword заменяет пароль пользователя
func (s *Service) ChangePassword(ctx context.Context, userID string, password string) error {
	s.logger.Info("ChangePassword: user=%s", userID)

	if err := validatePassword(password); err != nil {
		s.logger.Warn("ChangePassword: invalid password for user=%s", userID)
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		s.logger.Error("ChangePassword: failed to hash password: %v", err)
		return fmt.Errorf("%w: ChangePassword - hash password: %w", ErrInternal, err)
	}

	if err := s.userRepo.UpdatePassword(ctx, userID, string(hash)); err != nil {
		return s.mapWriteError("ChangePassword", userID, err)
	}

	s.logger.Info("ChangePassword: password updated for user=%s", userID)
	return nil
}

// List возвращает всех пользователей
func (s *Service) List(ctx context.Context) ([]*models.UserResponse, error) {
	s.logger.Info("List: fetching users")

	list, err := s.userRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, wrapStorage("List", err)
	}

	s.logger.Info("List: successfully fetched %d users", len(list))
	return models.FromDomainUserList(list), nil
}

// UpdateRole назначает роль пользователю
func (s *Service) UpdateRole(ctx context.Context, userID string, rawRole string) error {
	s.logger.Info("UpdateRole: user=%s, role=%q", userID, rawRole)

	if _, err := uuid.Parse(userID); err != nil {
		return fmt.Errorf("%w: userId must be a UUID", ErrInvalidInput)
	}
	if strings.TrimSpace(rawRole) == "" {
		return fmt.Errorf("%w: role is required", ErrInvalidInput)
	}
	role, ok := domain.ParseRole(rawRole)
	if !ok {
		s.logger.Warn("UpdateRole: unknown role %q", rawRole)
		return fmt.Errorf("%w: role must be user or admin", ErrInvalidInput)
	}

	if err := s.userRepo.UpdateRole(ctx, userID, role); err != nil {
		return s.mapWriteError("UpdateRole", userID, err)
	}

	s.logger.Info("UpdateRole: user=%s is now %s", userID, role)
	return nil
}

// Delete удаляет пользователя без бронирований
func (s *Service) Delete(ctx context.Context, userID string) error {
	s.logger.Info("Delete: user=%s", userID)

	if _, err := uuid.Parse(userID); err != nil {
		return fmt.Errorf("%w: userId must be a UUID", ErrInvalidInput)
	}

	if err := s.userRepo.Delete(ctx, userID); err != nil {
		if errors.Is(err, userRepo.ErrUserHasBookings) {
			s.logger.Warn("Delete: user=%s still has bookings", userID)
			return ErrUserHasBookings
		}
		return s.mapWriteError("Delete", userID, err)
	}

	s.logger.Info("Delete: user=%s deleted", userID)
	return nil
}

func (s *Service) mapWriteError(op string, userID string, err error) error {
	if errors.Is(err, userRepo.ErrUserNotFound) {
		s.logger.Warn("%s: user=%s not found", op, userID)
		return ErrUserNotFound
	}
	s.logger.Error("%s: repository error for user=%s: %v", op, userID, err)
	return wrapStorage(op, err)
}

func normalizeEmail(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", fmt.Errorf("%w: email is required", ErrInvalidInput)
	}
	addr, err := mail.ParseAddress(trimmed)
	if err != nil || addr.Address != trimmed {
		return "", fmt.Errorf("%w: email is invalid", ErrInvalidInput)
	}
	return trimmed, nil
}

func validatePassword(password string) error {
	if len(password) < domain.MinPasswordLength {
		return fmt.Errorf("%w: password must have at least %d characters", ErrInvalidInput, domain.MinPasswordLength)
	}
	if len(password) > maxPasswordLength {
		return fmt.Errorf("%w: password must have at most %d bytes", ErrInvalidInput, maxPasswordLength)
	}
	return nil
}

func wrapStorage(op string, err error) error {
	if pgerrors.IsTimeout(err) {
		return fmt.Errorf("%w: %s: %w", ErrTimeout, op, err)
	}
	return fmt.Errorf("%w: %s - repository error: %w", ErrInternal, op, err)
}
