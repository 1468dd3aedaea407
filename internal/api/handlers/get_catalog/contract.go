package get_catalog

import (
	"context"

	"github.com/repairbooker/booking-service/internal/service/catalog"
)

type CatalogService interface {
	GetCatalog(ctx context.Context) (*catalog.CatalogResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
