package professionals

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	professionalRepo "github.com/m04kA/SMC-AgendaService/internal/infra/storage/professional"
	"github.com/m04kA/SMC-AgendaService/internal/service/professionals/models"
	"github.com/m04kA/SMC-AgendaService/pkg/pgerrors"
	"github.com/m04kA/SMC-AgendaService/pkg/ptr"
)

// Service сервис специалистов
type Service struct {
	professionalRepo ProfessionalRepository
	logger           Logger
}

// NewService создает новый экземпляр сервиса специалистов
func NewService(professionalRepo ProfessionalRepository, logger Logger) *Service {
	return &Service{
		professionalRepo: professionalRepo,
		logger:           logger,
	}
}

// Create создает специалиста с нормализованным расписанием и возвращает его ID
func (s *Service) Create(ctx context.Context, req *models.CreateProfessionalRequest) (string, error) {
	s.logger.Info("Create: name=%q, specialization=%q, days=%d", req.Name, req.Specialization, len(req.Availability))

	name := strings.TrimSpace(req.Name)
	if name == "" {
		s.logger.Warn("Create: empty name")
		return "", fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if len(name) > domain.MaxNameLength || len(req.Specialization) > domain.MaxSpecializationLength {
		s.logger.Warn("Create: name or specialization too long")
		return "", fmt.Errorf("%w: name or specialization too long", ErrInvalidInput)
	}

	availability, err := domain.NormalizeAvailability(req.Availability)
	if err != nil {
		s.logger.Warn("Create: invalid availability: %v", err)
		return "", fmt.Errorf("%w: %w", ErrInvalidAvailability, err)
	}

	created, err := s.professionalRepo.Create(ctx, &domain.Professional{
		Name:           name,
		Specialization: strings.TrimSpace(req.Specialization),
		Availability:   availability,
	})
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return "", wrapStorage("Create", err)
	}

	s.logger.Info("Create: successfully created professional id=%s", created.ID)
	return created.ID, nil
}

// List возвращает специалистов, при заданном serviceID только оказывающих услугу
func (s *Service) List(ctx context.Context, serviceID string) ([]*models.ProfessionalResponse, error) {
	s.logger.Info("List: service=%q", serviceID)

	var filter *string
	if serviceID != "" {
		if _, err := uuid.Parse(serviceID); err != nil {
			s.logger.Warn("List: invalid service id=%q", serviceID)
			return nil, fmt.Errorf("%w: serviceId must be a UUID", ErrInvalidInput)
		}
		filter = ptr.Ptr(serviceID)
	}

	list, err := s.professionalRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, wrapStorage("List", err)
	}

	s.logger.Info("List: successfully fetched %d professionals", len(list))
	return models.FromDomainProfessionalList(list), nil
}

// UpdateAvailability заменяет расписание специалиста
func (s *Service) UpdateAvailability(ctx context.Context, professionalID string, raw map[string][]string) error {
	s.logger.Info("UpdateAvailability: professional=%s, days=%d", professionalID, len(raw))

	if _, err := uuid.Parse(professionalID); err != nil {
		s.logger.Warn("UpdateAvailability: invalid professional id=%q", professionalID)
		return fmt.Errorf("%w: professionalId must be a UUID", ErrInvalidInput)
	}

	availability, err := domain.NormalizeAvailability(raw)
	if err != nil {
		s.logger.Warn("UpdateAvailability: invalid availability: %v", err)
		return fmt.Errorf("%w: %w", ErrInvalidAvailability, err)
	}

	if err := s.professionalRepo.UpdateAvailability(ctx, professionalID, availability); err != nil {
		if errors.Is(err, professionalRepo.ErrProfessionalNotFound) {
			s.logger.Warn("UpdateAvailability: professional id=%s not found", professionalID)
			return ErrProfessionalNotFound
		}
		s.logger.Error("UpdateAvailability: repository error: %v", err)
		return wrapStorage("UpdateAvailability", err)
	}

	s.logger.Info("UpdateAvailability: successfully updated professional id=%s", professionalID)
	return nil
}

func wrapStorage(op string, err error) error {
	if pgerrors.IsTimeout(err) {
		return fmt.Errorf("%w: %s: %w", ErrTimeout, op, err)
	}
	return fmt.Errorf("%w: %s - repository error: %w", ErrInternal, op, err)
}
