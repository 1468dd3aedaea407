package notify_booking

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/repairbooker/booking-service/internal/api/handlers"
	notifyBooking "github.com/repairbooker/booking-service/internal/usecase/notify_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidBookingID   = "некорректный ID бронирования"
	msgInvalidEmail       = "некорректный адрес электронной почты"
	msgNotFound           = "бронирование не найдено"
	msgDispatchFailed     = "не удалось отправить письмо с подтверждением"
)

type Handler struct {
	useCase NotifyBookingUseCase
	logger  Logger
}

func NewHandler(useCase NotifyBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/{bookingId}/notify
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем bookingId из URL
	vars := mux.Vars(r)
	bookingID := vars["bookingId"]

	if _, err := uuid.Parse(bookingID); err != nil {
		h.logger.Warn("POST /bookings/{id}/notify - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	var req NotifyBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/{id}/notify - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), &notifyBooking.Request{
		BookingID: bookingID,
		Email:     req.Email,
	})
	if err != nil {
		switch {
		case errors.Is(err, notifyBooking.ErrBookingNotFound):
			h.logger.Warn("POST /bookings/{id}/notify - Booking not found: booking_id=%s", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, notifyBooking.ErrInvalidEmail):
			h.logger.Warn("POST /bookings/{id}/notify - Invalid email: booking_id=%s", bookingID)
			handlers.RespondBadRequest(w, msgInvalidEmail)

		case errors.Is(err, notifyBooking.ErrDispatchFailed):
			h.logger.Warn("POST /bookings/{id}/notify - Dispatch failed: booking_id=%s, error=%v", bookingID, err)
			handlers.RespondError(w, http.StatusBadGateway, msgDispatchFailed)

		default:
			h.logger.Error("POST /bookings/{id}/notify - Failed to notify: booking_id=%s, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/{id}/notify - Confirmation sent: booking_id=%s", bookingID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
