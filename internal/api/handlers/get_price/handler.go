package get_price

import (
	"errors"
	"net/http"

	"github.com/repairbooker/booking-service/internal/api/handlers"
	calculatePrice "github.com/repairbooker/booking-service/internal/usecase/calculate_price"
)

const (
	msgMissingPhoneModel  = "модель телефона обязательна"
	msgMissingRepairType  = "тип ремонта обязателен"
	msgInvalidInput       = "некорректные параметры запроса"
	msgPricingUnavailable = "цена для выбранной модели и типа ремонта недоступна"
)

type Handler struct {
	useCase CalculatePriceUseCase
	logger  Logger
}

func NewHandler(useCase CalculatePriceUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/price
// Query params: phoneModel (required), repairType (required), deliveryType (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	phoneModel := query.Get("phoneModel")
	if phoneModel == "" {
		h.logger.Warn("GET /price - Missing phone model")
		handlers.RespondBadRequest(w, msgMissingPhoneModel)
		return
	}

	repairType := query.Get("repairType")
	if repairType == "" {
		h.logger.Warn("GET /price - Missing repair type")
		handlers.RespondBadRequest(w, msgMissingRepairType)
		return
	}

	useCaseReq := ToUseCaseRequest(phoneModel, repairType, query.Get("deliveryType"))

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, calculatePrice.ErrPricingUnavailable):
			h.logger.Warn("GET /price - Pricing unavailable: model=%s repair=%s", phoneModel, repairType)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgPricingUnavailable)

		case errors.Is(err, calculatePrice.ErrInvalidInput):
			h.logger.Warn("GET /price - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /price - Failed to calculate price: model=%s repair=%s, error=%v",
				phoneModel, repairType, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /price - Price calculated: model=%s repair=%s total=%.2f",
		phoneModel, repairType, result.TotalPrice)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
