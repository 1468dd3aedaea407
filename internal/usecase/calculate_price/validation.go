package calculate_price

import (
	"fmt"

	"github.com/repairbooker/booking-service/internal/domain"
)

// validateRequest проверяет корректность входных данных
// Цвет экрана на цену не влияет и здесь не требуется
func validateRequest(req *Request) error {
	if req == nil {
		return fmt.Errorf("%w: request is nil", ErrInvalidInput)
	}

	if req.PhoneModel == "" {
		return fmt.Errorf("%w: phone model is required", ErrInvalidInput)
	}
	if !domain.IsKnownPhoneModel(req.PhoneModel) {
		return fmt.Errorf("%w: unknown phone model %q", ErrInvalidInput, req.PhoneModel)
	}

	if req.RepairType == "" {
		return fmt.Errorf("%w: repair type is required", ErrInvalidInput)
	}
	if !req.RepairType.IsValid() {
		return fmt.Errorf("%w: unknown repair type %q", ErrInvalidInput, req.RepairType)
	}

	if req.DeliveryType != "" && !req.DeliveryType.IsValid() {
		return fmt.Errorf("%w: unknown delivery type %q", ErrInvalidInput, req.DeliveryType)
	}

	return nil
}
