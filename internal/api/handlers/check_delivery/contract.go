package check_delivery

import (
	"context"

	checkDelivery "github.com/repairbooker/booking-service/internal/usecase/check_delivery"
)

type CheckDeliveryUseCase interface {
	Execute(ctx context.Context, req *checkDelivery.Request) (*checkDelivery.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
