package bookings

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-AgendaService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-AgendaService/internal/service/bookings/models"
	"github.com/m04kA/SMC-AgendaService/pkg/pgerrors"
	"github.com/m04kA/SMC-AgendaService/pkg/ptr"
)

// Service сервис для работы с бронированиями
type Service struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// List возвращает бронирования по фильтрам
func (s *Service) List(ctx context.Context, req *models.ListBookingsRequest) ([]*models.BookingResponse, error) {
	s.logger.Info("List: professional=%q, user=%q, date=%q, status=%q",
		req.ProfessionalID, req.UserID, req.Date, req.Status)

	filter, err := toDomainFilter(req)
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, err
	}

	bookings, err := s.bookingRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, wrapStorage("List", err)
	}

	s.logger.Info("List: successfully fetched %d bookings", len(bookings))
	return models.FromDomainBookingList(bookings), nil
}

// ListByUser возвращает историю бронирований пользователя с названиями услуг и именами специалистов
func (s *Service) ListByUser(ctx context.Context, userID string) ([]*models.UserBookingResponse, error) {
	s.logger.Info("ListByUser: user=%s", userID)

	details, err := s.bookingRepo.ListDetailedByUser(ctx, userID)
	if err != nil {
		s.logger.Error("ListByUser: repository error for user=%s: %v", userID, err)
		return nil, wrapStorage("ListByUser", err)
	}

	s.logger.Info("ListByUser: successfully fetched %d bookings for user=%s", len(details), userID)
	return models.FromDomainBookingDetails(details), nil
}

// UpdateStatus перезаписывает статус бронирования словом из словаря вызывающей стороны
// Меняется только status, переходы между статусами не ограничиваются
func (s *Service) UpdateStatus(ctx context.Context, bookingID string, word string, vocabulary domain.StatusVocabulary) error {
	s.logger.Info("UpdateStatus: booking=%s, status=%q", bookingID, word)

	if _, err := uuid.Parse(bookingID); err != nil {
		s.logger.Warn("UpdateStatus: invalid booking id=%q", bookingID)
		return fmt.Errorf("%w: bookingId must be a UUID", ErrInvalidInput)
	}

	status, ok := vocabulary.Resolve(word)
	if !ok {
		s.logger.Warn("UpdateStatus: status %q is not accepted here", word)
		return fmt.Errorf("%w: status must be one of %s", ErrInvalidStatus, strings.Join(vocabulary.Words(), ", "))
	}

	if err := s.bookingRepo.UpdateStatus(ctx, bookingID, status); err != nil {
		switch {
		case errors.Is(err, bookingRepo.ErrBookingNotFound):
			s.logger.Warn("UpdateStatus: booking id=%s not found", bookingID)
			return ErrBookingNotFound
		case errors.Is(err, bookingRepo.ErrSlotTaken):
			s.logger.Warn("UpdateStatus: slot of booking id=%s is already taken", bookingID)
			return fmt.Errorf("%w: %w", ErrSlotTaken, err)
		}
		s.logger.Error("UpdateStatus: repository error for booking id=%s: %v", bookingID, err)
		return wrapStorage("UpdateStatus", err)
	}

	s.logger.Info("UpdateStatus: booking id=%s is now %s", bookingID, status)
	return nil
}

// CancelOwn отменяет бронирование пользователя
// Пользователь может отменить только своё бронирование
func (s *Service) CancelOwn(ctx context.Context, userID string, bookingID string) error {
	s.logger.Info("CancelOwn: booking=%s, user=%s", bookingID, userID)

	if _, err := uuid.Parse(bookingID); err != nil {
		s.logger.Warn("CancelOwn: invalid booking id=%q", bookingID)
		return fmt.Errorf("%w: bookingId must be a UUID", ErrInvalidInput)
	}

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("CancelOwn: booking id=%s not found", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("CancelOwn: repository error for booking id=%s: %v", bookingID, err)
		return wrapStorage("CancelOwn", err)
	}

	if booking.UserID != userID {
		s.logger.Warn("CancelOwn: access denied for user=%s to booking id=%s", userID, bookingID)
		return ErrAccessDenied
	}

	return s.UpdateStatus(ctx, bookingID, string(domain.StatusCancelled), domain.UserStatuses)
}

func toDomainFilter(req *models.ListBookingsRequest) (domain.BookingsFilter, error) {
	var filter domain.BookingsFilter

	if req.ProfessionalID != "" {
		if _, err := uuid.Parse(req.ProfessionalID); err != nil {
			return filter, fmt.Errorf("%w: professionalId must be a UUID", ErrInvalidInput)
		}
		filter.ProfessionalID = ptr.Ptr(req.ProfessionalID)
	}
	if req.UserID != "" {
		if _, err := uuid.Parse(req.UserID); err != nil {
			return filter, fmt.Errorf("%w: userId must be a UUID", ErrInvalidInput)
		}
		filter.UserID = ptr.Ptr(req.UserID)
	}
	if req.Date != "" {
		date, err := time.Parse(domain.DateFormat, req.Date)
		if err != nil {
			return filter, fmt.Errorf("%w: date must be in YYYY-MM-DD format", ErrInvalidInput)
		}
		filter.Date = ptr.Ptr(date)
	}
	if req.Status != "" {
		status, ok := domain.ParseBookingStatus(req.Status)
		if !ok {
			return filter, fmt.Errorf("%w: unknown status %q", ErrInvalidStatus, req.Status)
		}
		filter.Status = ptr.Ptr(status)
	}

	return filter, nil
}

func wrapStorage(op string, err error) error {
	if pgerrors.IsTimeout(err) {
		return fmt.Errorf("%w: %s: %w", ErrTimeout, op, err)
	}
	return fmt.Errorf("%w: %s - repository error: %w", ErrInternal, op, err)
}
