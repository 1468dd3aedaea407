package check_delivery

import (
	"context"

	"github.com/repairbooker/booking-service/internal/integrations/geolocation"
)

// GeolocationClient интерфейс клиента сервиса геолокации
type GeolocationClient interface {
	Locate(ctx context.Context, clientID string) (*geolocation.Position, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Debug(format string, args ...interface{})
	Info(format string, args ...interface{})
	Warn(format string, args ...interface{})
	Error(format string, args ...interface{})
}
