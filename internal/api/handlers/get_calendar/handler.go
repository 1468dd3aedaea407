package get_calendar

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/repairbooker/booking-service/internal/api/handlers"
	getCalendar "github.com/repairbooker/booking-service/internal/usecase/get_calendar"
)

const (
	msgInvalidYear  = "некорректный год"
	msgInvalidMonth = "некорректный месяц"
	msgPastMonth    = "месяц уже прошел"
	msgInvalidInput = "год и месяц указываются вместе"
)

type Handler struct {
	useCase GetCalendarUseCase
	logger  Logger
}

func NewHandler(useCase GetCalendarUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/calendar
// Query params: year, month (опциональны, по умолчанию текущий месяц)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	var year, month int

	if yearStr := query.Get("year"); yearStr != "" {
		parsed, err := strconv.Atoi(yearStr)
		if err != nil {
			h.logger.Warn("GET /calendar - Invalid year: %v", err)
			handlers.RespondBadRequest(w, msgInvalidYear)
			return
		}
		year = parsed
	}

	if monthStr := query.Get("month"); monthStr != "" {
		parsed, err := strconv.Atoi(monthStr)
		if err != nil {
			h.logger.Warn("GET /calendar - Invalid month: %v", err)
			handlers.RespondBadRequest(w, msgInvalidMonth)
			return
		}
		month = parsed
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), &getCalendar.Request{
		Year:  year,
		Month: time.Month(month),
	})
	if err != nil {
		switch {
		case errors.Is(err, getCalendar.ErrPastMonth):
			h.logger.Warn("GET /calendar - Past month: year=%d, month=%d", year, month)
			handlers.RespondBadRequest(w, msgPastMonth)

		case errors.Is(err, getCalendar.ErrInvalidInput):
			h.logger.Warn("GET /calendar - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /calendar - Failed to build month page: year=%d, month=%d, error=%v", year, month, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /calendar - Month page built: year=%d, month=%d", result.Year, result.Month)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
