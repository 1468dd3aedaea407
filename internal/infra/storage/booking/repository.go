package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/repairbooker/booking-service/internal/domain"
	"github.com/repairbooker/booking-service/pkg/dbmetrics"
	"github.com/repairbooker/booking-service/pkg/psqlbuilder"
)

// uniqueViolation код ошибки PostgreSQL для нарушения уникального ограничения
const uniqueViolation = pq.ErrorCode("23505")

var bookingColumns = []string{
	"id",
	"phone_model",
	"repair_type",
	"screen_color",
	"starts_at",
	"delivery_type",
	"pickup_street",
	"pickup_postcode",
	"pickup_city",
	"price",
	"email",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование
// Если в контексте передана активная транзакция, использует её.
//
// Колонка starts_at несет уникальное ограничение: даже если проверка
// занятости слота прошла вне транзакции, конкурирующая вставка на то же
// время будет отклонена БД и вернется ErrSlotTaken.
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	var street, postcode, city *string
	if booking.PickUpAddress != nil {
		street = &booking.PickUpAddress.Street
		postcode = &booking.PickUpAddress.Postcode
		city = &booking.PickUpAddress.City
	}

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"id",
			"phone_model",
			"repair_type",
			"screen_color",
			"starts_at",
			"delivery_type",
			"pickup_street",
			"pickup_postcode",
			"pickup_city",
			"price",
		).
		Values(
			booking.ID,
			booking.PhoneModel,
			booking.RepairType,
			booking.ScreenColor,
			booking.StartsAt,
			booking.DeliveryType,
			street,
			postcode,
			city,
			booking.Price,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return nil, ErrSlotTaken
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return booking, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	return booking, nil
}

// GetByDay получает все бронирования на указанный календарный день
// Используется фильтром доступности для пометки занятых слотов
func (r *Repository) GetByDay(ctx context.Context, day time.Time) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.GtOrEq{"starts_at": dayStart}).
		Where(squirrel.Lt{"starts_at": dayEnd}).
		OrderBy("starts_at ASC")

	// Внутри транзакции блокируем строки дня - защита пути создания
	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDay - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDay - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// ExistsAtTime проверяет, есть ли бронирование ровно на указанное время
// Сравнение строгое, по нормализованному до минуты значению starts_at.
// Внутри транзакции строка блокируется (FOR UPDATE)
func (r *Repository) ExistsAtTime(ctx context.Context, startsAt time.Time) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select("id").
		From("bookings").
		Where(squirrel.Eq{"starts_at": domain.NormalizeStartsAt(startsAt)})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: ExistsAtTime - build select query: %v", ErrBuildQuery, err)
	}

	var id string
	err = executor.QueryRowContext(ctx, query, args...).Scan(&id)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: ExistsAtTime - scan row: %v", ErrScanRow, err)
	}

	return true, nil
}

// AttachEmail прикрепляет email к бронированию после отправки уведомления
// Единственная разрешенная мутация записи после создания
func (r *Repository) AttachEmail(ctx context.Context, id string, email string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("email", email).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: AttachEmail - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: AttachEmail - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: AttachEmail - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanBooking сканирует одну строку в доменную модель
func scanBooking(row rowScanner) (*domain.Booking, error) {
	var booking domain.Booking
	var screenColor, street, postcode, city, email sql.NullString
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&booking.ID,
		&booking.PhoneModel,
		&booking.RepairType,
		&screenColor,
		&booking.StartsAt,
		&booking.DeliveryType,
		&street,
		&postcode,
		&city,
		&booking.Price,
		&email,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if screenColor.Valid {
		color := domain.ScreenColor(screenColor.String)
		booking.ScreenColor = &color
	}
	if street.Valid || postcode.Valid || city.Valid {
		booking.PickUpAddress = &domain.Address{
			Street:   street.String,
			Postcode: postcode.String,
			City:     city.String,
		}
	}
	if email.Valid {
		booking.Email = &email.String
	}
	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return &booking, nil
}

// scanBookings сканирует результаты запроса в слайс бронирований
func scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}
