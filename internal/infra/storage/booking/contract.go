package booking

import (
	"github.com/repairbooker/booking-service/pkg/dbmetrics"
)

// Переиспользуем интерфейс исполнителя запросов из dbmetrics
// Поддерживает *sql.DB и *dbmetrics.DB
type DBExecutor = dbmetrics.DBExecutor
