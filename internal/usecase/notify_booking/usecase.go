package notify_booking

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"github.com/repairbooker/booking-service/internal/infra/storage/booking"
	"github.com/repairbooker/booking-service/internal/integrations/notifier"
)

// UseCase use case для отправки подтверждения бронирования на почту
type UseCase struct {
	bookingRepo BookingRepository
	notifier    NotifierClient
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookingRepo BookingRepository, notifierClient NotifierClient, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		notifier:    notifierClient,
		logger:      logger,
	}
}

// Execute выполняет use case отправки подтверждения
// Письмо отправляется до привязки адреса: если диспетчер недоступен,
// адрес не сохраняется и запрос можно безопасно повторить
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("NotifyBooking: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("NotifyBooking: booking=%s", req.BookingID)

	// 2. Проверяем, что бронирование существует
	bk, err := uc.bookingRepo.GetByID(ctx, req.BookingID)
	if err != nil {
		if errors.Is(err, booking.ErrBookingNotFound) {
			return nil, fmt.Errorf("%w: id=%s", ErrBookingNotFound, req.BookingID)
		}
		uc.logger.Error("NotifyBooking: failed to get booking: %v", err)
		return nil, fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
	}

	// 3. Отправляем письмо через сервис уведомлений
	if _, err := uc.notifier.Send(ctx, req.Email, bk.ID); err != nil {
		if errors.Is(err, notifier.ErrDispatchFailed) || errors.Is(err, notifier.ErrInvalidResponse) {
			uc.logger.Warn("NotifyBooking: dispatch failed for booking=%s: %v", bk.ID, err)
			return nil, fmt.Errorf("%w: %v", ErrDispatchFailed, err)
		}
		uc.logger.Error("NotifyBooking: notifier error: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	// 4. Привязываем адрес к бронированию
	// Письмо уже ушло, поэтому ошибка привязки не отменяет результат
	if err := uc.bookingRepo.AttachEmail(ctx, bk.ID, req.Email); err != nil {
		uc.logger.Error("NotifyBooking: failed to attach email to booking=%s: %v", bk.ID, err)
	}

	uc.logger.Info("NotifyBooking: confirmation sent for booking=%s", bk.ID)

	return &Response{
		BookingID: bk.ID,
		Email:     req.Email,
		Sent:      true,
	}, nil
}

// validateRequest проверяет корректность входных данных
func validateRequest(req *Request) error {
	if req == nil {
		return fmt.Errorf("%w: request is nil", ErrInvalidInput)
	}

	if req.BookingID == "" {
		return fmt.Errorf("%w: booking id is required", ErrInvalidInput)
	}

	email := strings.TrimSpace(req.Email)
	if email == "" {
		return fmt.Errorf("%w: email is required", ErrInvalidEmail)
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidEmail, req.Email)
	}

	return nil
}
