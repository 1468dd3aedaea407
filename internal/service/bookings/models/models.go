package models

import (
	"time"

	"github.com/repairbooker/booking-service/internal/domain"
)

// Response модели

// AddressResponse адрес забора устройства
type AddressResponse struct {
	Street   string `json:"street"`
	Postcode string `json:"postcode"`
	City     string `json:"city"`
}

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID           string  `json:"id"`
	PhoneModel   string  `json:"phoneModel"`
	RepairType   string  `json:"repairType"`
	ScreenColor  *string `json:"screenColor,omitempty"`
	BookingDate  string  `json:"bookingDate"` // "2025-10-15"
	StartTime    string  `json:"startTime"`   // "10:00"
	DeliveryType string  `json:"deliveryType"`
	Price        float64 `json:"price"`

	PickUpAddress *AddressResponse `json:"pickUpAddress,omitempty"`
	Email         *string          `json:"email,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:           b.ID,
		PhoneModel:   b.PhoneModel,
		RepairType:   string(b.RepairType),
		BookingDate:  b.StartsAt.Format(domain.DateFormat),
		StartTime:    b.StartsAt.Format(domain.TimeFormat),
		DeliveryType: string(b.DeliveryType),
		Price:        b.Price,
		Email:        b.Email,
		CreatedAt:    b.CreatedAt,
		UpdatedAt:    b.UpdatedAt,
	}

	if b.ScreenColor != nil {
		color := string(*b.ScreenColor)
		resp.ScreenColor = &color
	}

	if b.PickUpAddress != nil {
		resp.PickUpAddress = &AddressResponse{
			Street:   b.PickUpAddress.Street,
			Postcode: b.PickUpAddress.Postcode,
			City:     b.PickUpAddress.City,
		}
	}

	return resp
}
