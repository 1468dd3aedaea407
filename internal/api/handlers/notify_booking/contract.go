package notify_booking

import (
	"context"

	notifyBooking "github.com/repairbooker/booking-service/internal/usecase/notify_booking"
)

type NotifyBookingUseCase interface {
	Execute(ctx context.Context, req *notifyBooking.Request) (*notifyBooking.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
