package get_available_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	professionalRepo "github.com/m04kA/SMC-AgendaService/internal/infra/storage/professional"
	"github.com/m04kA/SMC-AgendaService/pkg/pgerrors"
	"github.com/m04kA/SMC-AgendaService/pkg/types"
)

// UseCase use case получения слотов специалиста на дату
type UseCase struct {
	professionalRepo ProfessionalRepository
	bookingRepo      BookingRepository
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	professionalRepo ProfessionalRepository,
	bookingRepo BookingRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		professionalRepo: professionalRepo,
		bookingRepo:      bookingRepo,
		logger:           logger,
	}
}

// Resolve возвращает слоты расписания специалиста на день недели даты
// Только чтение: повторный вызов с теми же аргументами дает тот же результат
func (uc *UseCase) Resolve(ctx context.Context, professionalID string, date time.Time) ([]types.TimeString, error) {
	if _, err := uuid.Parse(professionalID); err != nil {
		return nil, fmt.Errorf("%w: professionalId must be a UUID", ErrInvalidInput)
	}

	professional, err := uc.getProfessional(ctx, professionalID)
	if err != nil {
		return nil, err
	}
	return professional.Availability.SlotsFor(date), nil
}

// Execute возвращает слоты с признаком занятости
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: professional=%s, date=%s", req.ProfessionalID, req.Date)

	// 1. Валидация входных данных
	date, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Слоты расписания на день недели
	slots, err := uc.Resolve(ctx, req.ProfessionalID, date)
	if err != nil {
		return nil, err
	}

	response := &Response{
		ProfessionalID: req.ProfessionalID,
		Date:           date,
		Weekday:        domain.WeekdayName(date),
		Slots:          make([]domain.AvailableSlot, 0, len(slots)),
	}

	if len(slots) == 0 {
		uc.logger.Info("GetAvailableSlots: no availability on %s for professional=%s", response.Weekday, req.ProfessionalID)
		return response, nil
	}

	// 3. Отмечаем слоты, занятые активными бронированиями
	booked, err := uc.bookingRepo.BookedTimes(ctx, req.ProfessionalID, date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get booked times: %v", err)
		return nil, wrapStorage("failed to get booked times", err)
	}

	taken := make(map[types.TimeString]struct{}, len(booked))
	for _, t := range booked {
		taken[t] = struct{}{}
	}

	free := 0
	for _, slot := range slots {
		_, isTaken := taken[slot]
		if !isTaken {
			free++
		}
		response.Slots = append(response.Slots, domain.AvailableSlot{StartTime: slot, Available: !isTaken})
	}

	uc.logger.Info("GetAvailableSlots: %d slots, %d free", len(slots), free)
	return response, nil
}

func (uc *UseCase) getProfessional(ctx context.Context, professionalID string) (*domain.Professional, error) {
	professional, err := uc.professionalRepo.GetByID(ctx, professionalID)
	if err != nil {
		if errors.Is(err, professionalRepo.ErrProfessionalNotFound) {
			uc.logger.Warn("GetAvailableSlots: professional id=%s not found", professionalID)
			return nil, ErrProfessionalNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get professional id=%s: %v", professionalID, err)
		return nil, wrapStorage("failed to get professional", err)
	}
	return professional, nil
}

func wrapStorage(step string, err error) error {
	if pgerrors.IsTimeout(err) {
		return fmt.Errorf("%w: %s: %w", ErrTimeout, step, err)
	}
	return fmt.Errorf("%w: %s: %w", ErrInternal, step, err)
}
