package calculate_price

import "github.com/repairbooker/booking-service/internal/domain"

// PricingConfig настройки ценообразования
type PricingConfig struct {
	PickUpCharge float64
}

// Request запрос на расчет стоимости ремонта
type Request struct {
	PhoneModel   string
	RepairType   domain.RepairType
	DeliveryType domain.DeliveryType
}

// Response ответ с расчетом стоимости
type Response struct {
	BasePrice    float64
	PickUpCharge float64
	TotalPrice   float64
}
