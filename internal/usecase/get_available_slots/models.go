package get_available_slots

import (
	"time"

	"github.com/repairbooker/booking-service/pkg/types"
)

// SlotsConfig конфигурация рабочих часов для генерации слотов
type SlotsConfig struct {
	StartHour   int // час открытия (0-23)
	EndHour     int // час закрытия (0-23)
	StepMinutes int // шаг между слотами в минутах
}

// Request модель запроса на получение слотов дня
type Request struct {
	Date time.Time // Календарный день (без времени)
}

// Response модель ответа со слотами дня
type Response struct {
	Date  time.Time // День, на который запрашивались слоты
	Slots []Slot    // Все слоты дня с признаком доступности
}

// Slot модель временного слота
type Slot struct {
	StartTime types.TimeString // Время начала слота (например, "10:00")
	Available bool             // Свободен ли слот
}
