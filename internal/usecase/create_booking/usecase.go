package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-AgendaService/internal/infra/storage/booking"
	professionalRepo "github.com/m04kA/SMC-AgendaService/internal/infra/storage/professional"
	serviceRepo "github.com/m04kA/SMC-AgendaService/internal/infra/storage/service"
	userRepo "github.com/m04kA/SMC-AgendaService/internal/infra/storage/user"
	"github.com/m04kA/SMC-AgendaService/pkg/pgerrors"
	"github.com/m04kA/SMC-AgendaService/pkg/txmanager"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo      BookingRepository
	professionalRepo ProfessionalRepository
	userRepo         UserRepository
	serviceRepo      ServiceRepository
	txManager        TransactionManager
	timeProvider     TimeProvider
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	professionalRepo ProfessionalRepository,
	userRepo UserRepository,
	serviceRepo ServiceRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:      bookingRepo,
		professionalRepo: professionalRepo,
		userRepo:         userRepo,
		serviceRepo:      serviceRepo,
		txManager:        txManager,
		timeProvider:     &RealTimeProvider{},
		logger:           logger,
	}
}

// WithTimeProvider подменяет часы (для тестов)
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute выполняет use case создания бронирования
// Проверка конфликта и вставка выполняются в одной сериализуемой транзакции,
// частичный уникальный индекс по активным бронированиям страхует от гонки
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: professional=%s, user=%s, service=%s, date=%s, time=%s, status=%s",
		req.ProfessionalID, req.UserID, req.ServiceID, req.Date, req.Time, req.Status)

	// 1. Валидация входных данных
	in, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Дата не в прошлом
	if isDateInPast(in.date, uc.timeProvider.Now()) {
		uc.logger.Warn("CreateBooking: date %s is in the past", req.Date)
		return nil, ErrDateInPast
	}

	// 3. Специалист
	professional, err := uc.professionalRepo.GetByID(ctx, req.ProfessionalID)
	if err != nil {
		if errors.Is(err, professionalRepo.ErrProfessionalNotFound) {
			uc.logger.Warn("CreateBooking: professional id=%s not found", req.ProfessionalID)
			return nil, ErrProfessionalNotFound
		}
		uc.logger.Error("CreateBooking: failed to get professional id=%s: %v", req.ProfessionalID, err)
		return nil, wrapStorage("failed to get professional", err)
	}

	// 4. Пользователь
	if _, err := uc.userRepo.GetByID(ctx, req.UserID); err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			uc.logger.Warn("CreateBooking: user id=%s not found", req.UserID)
			return nil, ErrUserNotFound
		}
		uc.logger.Error("CreateBooking: failed to get user id=%s: %v", req.UserID, err)
		return nil, wrapStorage("failed to get user", err)
	}

	// 5. Услуга и её связь со специалистом
	service, err := uc.serviceRepo.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			uc.logger.Warn("CreateBooking: service id=%s not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateBooking: failed to get service id=%s: %v", req.ServiceID, err)
		return nil, wrapStorage("failed to get service", err)
	}

	if !service.PerformedBy(professional.ID) {
		uc.logger.Warn("CreateBooking: service id=%s is not performed by professional id=%s",
			req.ServiceID, req.ProfessionalID)
		return nil, ErrServiceNotPerformed
	}

	// 6. Время входит в расписание специалиста на этот день недели
	if !professional.Availability.Contains(in.date, in.time) {
		uc.logger.Warn("CreateBooking: time %s is not available on %s for professional id=%s",
			in.time, domain.WeekdayName(in.date), req.ProfessionalID)
		return nil, ErrTimeNotAvailable
	}

	var result *domain.Booking

	// 7. Проверка конфликта и вставка в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		taken, err := uc.bookingRepo.ExistsBindingAtSlot(txCtx, req.ProfessionalID, in.date, in.time)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to check slot: %v", err)
			return wrapStorage("failed to check slot", err)
		}
		if taken {
			uc.logger.Warn("CreateBooking: slot %s %s already booked for professional id=%s",
				req.Date, in.time, req.ProfessionalID)
			return ErrSlotTaken
		}

		created, err := uc.bookingRepo.Create(txCtx, &domain.Booking{
			Date:           in.date,
			Time:           in.time,
			Status:         in.status,
			ProfessionalID: req.ProfessionalID,
			UserID:         req.UserID,
			ServiceID:      req.ServiceID,
		})
		if err != nil {
			if errors.Is(err, bookingRepo.ErrSlotTaken) {
				uc.logger.Warn("CreateBooking: slot taken by concurrent booking: %v", err)
				return fmt.Errorf("%w: %w", ErrSlotTaken, err)
			}
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return wrapStorage("failed to create booking", err)
		}

		result = created
		return nil
	})

	if err != nil {
		if errors.Is(err, txmanager.ErrSerializationFailure) {
			uc.logger.Warn("CreateBooking: serialization failure, slot taken concurrently: %v", err)
			return nil, fmt.Errorf("%w: %w", ErrSlotTaken, err)
		}
		if isKnown(err) {
			return nil, err
		}
		uc.logger.Error("CreateBooking: transaction failed: %v", err)
		return nil, wrapStorage("transaction failed", err)
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%s", result.ID)

	return &Response{
		ID:             result.ID,
		Date:           result.Date,
		Time:           result.Time,
		Status:         result.Status,
		ProfessionalID: result.ProfessionalID,
		UserID:         result.UserID,
		ServiceID:      result.ServiceID,
		CreatedAt:      result.CreatedAt,
	}, nil
}

// isKnown проверяет, что ошибка уже переведена в ошибку usecase
func isKnown(err error) bool {
	return errors.Is(err, ErrSlotTaken) || errors.Is(err, ErrTimeout) || errors.Is(err, ErrInternal)
}

func wrapStorage(step string, err error) error {
	if pgerrors.IsTimeout(err) {
		return fmt.Errorf("%w: %s: %w", ErrTimeout, step, err)
	}
	return fmt.Errorf("%w: %s: %w", ErrInternal, step, err)
}
