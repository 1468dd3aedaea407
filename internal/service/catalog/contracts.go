package catalog

import (
	"context"

	"github.com/repairbooker/booking-service/internal/domain"
)

// PricingRepository интерфейс репозитория прайс-листа
type PricingRepository interface {
	ListPriced(ctx context.Context) (domain.PricingTable, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
