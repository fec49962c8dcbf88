package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	professionalRepo "github.com/m04kA/SMC-AgendaService/internal/infra/storage/professional"
	serviceRepo "github.com/m04kA/SMC-AgendaService/internal/infra/storage/service"
	"github.com/m04kA/SMC-AgendaService/internal/service/services/models"
	"github.com/m04kA/SMC-AgendaService/pkg/pgerrors"
)

// maxPrice верхняя граница NUMERIC(10,2)
const maxPrice = 99999999.99

// Service сервис услуг
type Service struct {
	serviceRepo      ServiceRepository
	professionalRepo ProfessionalRepository
	txManager        TransactionManager
	logger           Logger
}

// NewService создает новый экземпляр сервиса услуг
func NewService(
	serviceRepo ServiceRepository,
	professionalRepo ProfessionalRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		serviceRepo:      serviceRepo,
		professionalRepo: professionalRepo,
		txManager:        txManager,
		logger:           logger,
	}
}

// Create создает услугу и связывает её со специалистами, возвращает ID
func (s *Service) Create(ctx context.Context, req *models.CreateServiceRequest) (string, error) {
	s.logger.Info("Create: name=%q, price=%.2f, professionals=%v", req.Name, req.Price, req.ProfessionalIDs)

	service, err := validateCreate(req)
	if err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return "", err
	}

	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		for _, id := range service.ProfessionalIDs {
			if _, err := s.professionalRepo.GetByID(txCtx, id); err != nil {
				if errors.Is(err, professionalRepo.ErrProfessionalNotFound) {
					s.logger.Warn("Create: professional id=%s not found", id)
					return fmt.Errorf("%w: %s", ErrProfessionalNotFound, id)
				}
				s.logger.Error("Create: failed to get professional id=%s: %v", id, err)
				return wrapStorage("Create", err)
			}
		}

		if _, err := s.serviceRepo.Create(txCtx, service); err != nil {
			if errors.Is(err, serviceRepo.ErrProfessionalNotFound) {
				s.logger.Warn("Create: professional removed concurrently: %v", err)
				return fmt.Errorf("%w: %w", ErrProfessionalNotFound, err)
			}
			s.logger.Error("Create: repository error: %v", err)
			return wrapStorage("Create", err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrProfessionalNotFound) || errors.Is(err, ErrTimeout) || errors.Is(err, ErrInternal) {
			return "", err
		}
		s.logger.Error("Create: transaction failed: %v", err)
		return "", wrapStorage("Create", err)
	}

	s.logger.Info("Create: successfully created service id=%s", service.ID)
	return service.ID, nil
}

// List возвращает все услуги
func (s *Service) List(ctx context.Context) ([]*models.ServiceResponse, error) {
	s.logger.Info("List: fetching services")

	list, err := s.serviceRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, wrapStorage("List", err)
	}

	s.logger.Info("List: successfully fetched %d services", len(list))
	return models.FromDomainServiceList(list), nil
}

func validateCreate(req *models.CreateServiceRequest) (*domain.Service, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if len(name) > domain.MaxNameLength {
		return nil, fmt.Errorf("%w: name is too long", ErrInvalidInput)
	}
	if len(req.Description) > domain.MaxDescriptionLength {
		return nil, fmt.Errorf("%w: description is too long", ErrInvalidInput)
	}
	if math.IsNaN(req.Price) || req.Price <= 0 || req.Price > maxPrice {
		return nil, fmt.Errorf("%w: price must be positive", ErrInvalidInput)
	}

	ids := make([]string, 0, len(req.ProfessionalIDs))
	seen := make(map[string]struct{}, len(req.ProfessionalIDs))
	for _, raw := range req.ProfessionalIDs {
		id, err := uuid.Parse(strings.TrimSpace(raw))
		if err != nil {
			return nil, fmt.Errorf("%w: professionalId %q must be a UUID", ErrInvalidInput, raw)
		}
		key := id.String()
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		ids = append(ids, key)
	}

	return &domain.Service{
		Name:            name,
		Description:     strings.TrimSpace(req.Description),
		Price:           math.Round(req.Price*100) / 100,
		ProfessionalIDs: ids,
	}, nil
}

func wrapStorage(op string, err error) error {
	if pgerrors.IsTimeout(err) {
		return fmt.Errorf("%w: %s: %w", ErrTimeout, op, err)
	}
	return fmt.Errorf("%w: %s - repository error: %w", ErrInternal, op, err)
}
