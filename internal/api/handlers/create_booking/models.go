package create_booking

import (
	"time"

	"github.com/repairbooker/booking-service/internal/domain"
	createBooking "github.com/repairbooker/booking-service/internal/usecase/create_booking"
	"github.com/repairbooker/booking-service/pkg/types"
)

// AddressPayload адрес забора устройства в HTTP моделях
type AddressPayload struct {
	Street   string `json:"street"`
	Postcode string `json:"postcode"`
	City     string `json:"city"`
}

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	PhoneModel    string          `json:"phoneModel"`
	RepairType    string          `json:"repairType"`
	ScreenColor   *string         `json:"screenColor,omitempty"`
	BookingDate   string          `json:"bookingDate"` // "2025-10-15"
	StartTime     string          `json:"startTime"`   // "10:00"
	DeliveryType  string          `json:"deliveryType"`
	PickUpAddress *AddressPayload `json:"pickUpAddress,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID            string          `json:"id"`
	PhoneModel    string          `json:"phoneModel"`
	RepairType    string          `json:"repairType"`
	ScreenColor   *string         `json:"screenColor,omitempty"`
	BookingDate   string          `json:"bookingDate"`
	StartTime     string          `json:"startTime"`
	DeliveryType  string          `json:"deliveryType"`
	PickUpAddress *AddressPayload `json:"pickUpAddress,omitempty"`
	Price         float64         `json:"price"`
	CreatedAt     string          `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	// Парсим дату
	bookingDate, err := time.Parse(domain.DateFormat, r.BookingDate)
	if err != nil {
		return nil, err
	}

	// Парсим время
	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	req := &createBooking.Request{
		PhoneModel:   r.PhoneModel,
		RepairType:   domain.RepairType(r.RepairType),
		Date:         bookingDate,
		StartTime:    startTime,
		DeliveryType: domain.DeliveryType(r.DeliveryType),
	}

	if r.ScreenColor != nil {
		color := domain.ScreenColor(*r.ScreenColor)
		req.ScreenColor = &color
	}

	if r.PickUpAddress != nil {
		req.PickUpAddress = &domain.Address{
			Street:   r.PickUpAddress.Street,
			Postcode: r.PickUpAddress.Postcode,
			City:     r.PickUpAddress.City,
		}
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	httpResp := &BookingResponse{
		ID:           resp.ID,
		PhoneModel:   resp.PhoneModel,
		RepairType:   string(resp.RepairType),
		BookingDate:  resp.StartsAt.Format(domain.DateFormat),
		StartTime:    resp.StartsAt.Format(domain.TimeFormat),
		DeliveryType: string(resp.DeliveryType),
		Price:        resp.Price,
		CreatedAt:    resp.CreatedAt.Format(time.RFC3339),
	}

	if resp.ScreenColor != nil {
		color := string(*resp.ScreenColor)
		httpResp.ScreenColor = &color
	}

	if resp.PickUpAddress != nil {
		httpResp.PickUpAddress = &AddressPayload{
			Street:   resp.PickUpAddress.Street,
			Postcode: resp.PickUpAddress.Postcode,
			City:     resp.PickUpAddress.City,
		}
	}

	return httpResp
}
