package notify_booking

import (
	notifyBooking "github.com/repairbooker/booking-service/internal/usecase/notify_booking"
)

// NotifyBookingRequest HTTP request model
type NotifyBookingRequest struct {
	Email string `json:"email"`
}

// NotifyBookingResponse HTTP response model
type NotifyBookingResponse struct {
	BookingID string `json:"bookingId"`
	Email     string `json:"email"`
	Sent      bool   `json:"sent"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *notifyBooking.Response) *NotifyBookingResponse {
	return &NotifyBookingResponse{
		BookingID: resp.BookingID,
		Email:     resp.Email,
		Sent:      resp.Sent,
	}
}
