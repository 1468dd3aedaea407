package get_price

import (
	"github.com/repairbooker/booking-service/internal/domain"
	calculatePrice "github.com/repairbooker/booking-service/internal/usecase/calculate_price"
)

// PriceResponse HTTP response model
type PriceResponse struct {
	BasePrice    float64 `json:"basePrice"`
	PickUpCharge float64 `json:"pickUpCharge"`
	TotalPrice   float64 `json:"totalPrice"`
}

// ToUseCaseRequest создает запрос use case из query параметров
// Способ доставки опционален: без него итог равен базовой цене
func ToUseCaseRequest(phoneModel, repairType, deliveryType string) *calculatePrice.Request {
	return &calculatePrice.Request{
		PhoneModel:   phoneModel,
		RepairType:   domain.RepairType(repairType),
		DeliveryType: domain.DeliveryType(deliveryType),
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *calculatePrice.Response) *PriceResponse {
	return &PriceResponse{
		BasePrice:    resp.BasePrice,
		PickUpCharge: resp.PickUpCharge,
		TotalPrice:   resp.TotalPrice,
	}
}
