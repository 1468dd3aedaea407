package create_booking

import (
	"errors"
	"net/http"

	"github.com/repairbooker/booking-service/internal/api/handlers"
	"github.com/repairbooker/booking-service/internal/domain"
	createBooking "github.com/repairbooker/booking-service/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgInvalidDate         = "некорректный формат даты бронирования, ожидается YYYY-MM-DD"
	msgSlotTaken           = "выбранный временной слот уже занят"
	msgPricingUnavailable  = "цена для выбранной модели и типа ремонта недоступна"
	msgInvalidBookingDate  = "некорректная дата бронирования"
	msgIncompleteSelection = "заявка заполнена не полностью"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты и времени)
	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		// Обработка ошибок use case
		switch {
		case errors.Is(err, createBooking.ErrSlotTaken):
			h.logger.Warn("POST /bookings - Slot taken: date=%s time=%s", req.BookingDate, req.StartTime)
			handlers.RespondError(w, http.StatusConflict, msgSlotTaken)

		case errors.Is(err, createBooking.ErrPricingUnavailable):
			h.logger.Warn("POST /bookings - Pricing unavailable: model=%s repair=%s", req.PhoneModel, req.RepairType)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgPricingUnavailable)

		case errors.Is(err, createBooking.ErrInvalidDate):
			h.logger.Warn("POST /bookings - Invalid booking date: date=%s time=%s", req.BookingDate, req.StartTime)
			handlers.RespondBadRequest(w, msgInvalidBookingDate)

		case isSelectionError(err):
			h.logger.Warn("POST /bookings - Incomplete selection: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgIncompleteSelection)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: model=%s, error=%v", req.PhoneModel, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%s, slot=%s %s",
		result.ID, req.BookingDate, req.StartTime)
	handlers.RespondJSON(w, http.StatusCreated, response)
}

// isSelectionError проверяет, что ошибка относится к незаполненному
// или некорректному шагу мастера
func isSelectionError(err error) bool {
	selectionErrors := []error{
		domain.ErrPhoneModelNotSet,
		domain.ErrUnknownPhoneModel,
		domain.ErrRepairTypeNotSet,
		domain.ErrUnknownRepairType,
		domain.ErrScreenColorNotSet,
		domain.ErrUnknownScreenColor,
		domain.ErrDateNotSet,
		domain.ErrDeliveryTypeNotSet,
		domain.ErrUnknownDeliveryType,
		domain.ErrPickUpAddressIncomplete,
		domain.ErrStepNotReady,
	}
	for _, target := range selectionErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
