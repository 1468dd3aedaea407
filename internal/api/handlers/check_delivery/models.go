package check_delivery

import (
	checkDelivery "github.com/repairbooker/booking-service/internal/usecase/check_delivery"
)

// CheckDeliveryRequest HTTP request model
// Координаты опциональны: без них позиция запрашивается у сервиса
// геолокации по идентификатору клиента
type CheckDeliveryRequest struct {
	Lat      *float64 `json:"lat,omitempty"`
	Lon      *float64 `json:"lon,omitempty"`
	ClientID string   `json:"clientId,omitempty"`
}

// DeliveryEligibilityResponse HTTP response model
type DeliveryEligibilityResponse struct {
	Eligible   bool    `json:"eligible"`
	Reason     string  `json:"reason,omitempty"`
	DistanceKm float64 `json:"distanceKm,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CheckDeliveryRequest) ToUseCaseRequest() *checkDelivery.Request {
	return &checkDelivery.Request{
		Lat:      r.Lat,
		Lon:      r.Lon,
		ClientID: r.ClientID,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *checkDelivery.Response) *DeliveryEligibilityResponse {
	return &DeliveryEligibilityResponse{
		Eligible:   resp.Eligible,
		Reason:     resp.Reason,
		DistanceKm: resp.DistanceKm,
	}
}
