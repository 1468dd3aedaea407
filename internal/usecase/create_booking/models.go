package create_booking

import (
	"time"

	"github.com/repairbooker/booking-service/internal/domain"
	"github.com/repairbooker/booking-service/pkg/types"
)

// PricingConfig настройки ценообразования
type PricingConfig struct {
	PickUpCharge float64
}

// Request запрос на создание бронирования
type Request struct {
	PhoneModel    string
	RepairType    domain.RepairType
	ScreenColor   *domain.ScreenColor
	Date          time.Time
	StartTime     types.TimeString
	DeliveryType  domain.DeliveryType
	PickUpAddress *domain.Address
}

// Response ответ с созданным бронированием
type Response struct {
	ID            string
	PhoneModel    string
	RepairType    domain.RepairType
	ScreenColor   *domain.ScreenColor
	StartsAt      time.Time
	DeliveryType  domain.DeliveryType
	PickUpAddress *domain.Address
	Price         float64
	CreatedAt     time.Time
}
