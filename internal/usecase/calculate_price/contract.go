package calculate_price

import (
	"context"

	"github.com/repairbooker/booking-service/internal/domain"
)

// PricingRepository интерфейс репозитория прайс-листа
type PricingRepository interface {
	GetPrice(ctx context.Context, phoneModel string, repairType domain.RepairType) (float64, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Debug(format string, args ...interface{})
	Info(format string, args ...interface{})
	Warn(format string, args ...interface{})
	Error(format string, args ...interface{})
}
