package check_delivery

import (
	"errors"
	"net/http"

	"github.com/repairbooker/booking-service/internal/api/handlers"
	checkDelivery "github.com/repairbooker/booking-service/internal/usecase/check_delivery"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "нужны координаты либо идентификатор клиента"
)

type Handler struct {
	useCase CheckDeliveryUseCase
	logger  Logger
}

func NewHandler(useCase CheckDeliveryUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/delivery/check
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CheckDeliveryRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /delivery/check - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, checkDelivery.ErrInvalidInput):
			h.logger.Warn("POST /delivery/check - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /delivery/check - Failed to check delivery: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /delivery/check - Eligibility checked: eligible=%t, reason=%q",
		result.Eligible, result.Reason)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
