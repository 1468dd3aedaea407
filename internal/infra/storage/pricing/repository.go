package pricing

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/repairbooker/booking-service/internal/domain"
	"github.com/repairbooker/booking-service/pkg/dbmetrics"
	"github.com/repairbooker/booking-service/pkg/psqlbuilder"
)

// Repository репозиторий таблицы цен ремонта
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория цен
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetPrice возвращает базовую цену ремонта для модели
// Отсутствие строки означает, что ремонт не выполняется (ErrPriceNotFound) -
// это не то же самое, что нулевая цена
func (r *Repository) GetPrice(ctx context.Context, model string, repairType domain.RepairType) (float64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("price").
		From("repair_prices").
		Where(squirrel.Eq{
			"phone_model": model,
			"repair_type": repairType,
		}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: GetPrice - build select query: %v", ErrBuildQuery, err)
	}

	var price float64
	err = executor.QueryRowContext(ctx, query, args...).Scan(&price)
	if err == sql.ErrNoRows {
		return 0, ErrPriceNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("%w: GetPrice - scan price: %v", ErrScanRow, err)
	}

	return price, nil
}

// ListPriced возвращает всю таблицу цен в виде доменной модели
// Используется каталогом для пометки недоступных ремонтов
func (r *Repository) ListPriced(ctx context.Context) (domain.PricingTable, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("phone_model", "repair_type", "price").
		From("repair_prices").
		OrderBy("phone_model ASC, repair_type ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListPriced - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListPriced - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	table := make(domain.PricingTable)
	for rows.Next() {
		var model string
		var repairType domain.RepairType
		var price float64

		if err := rows.Scan(&model, &repairType, &price); err != nil {
			return nil, fmt.Errorf("%w: ListPriced - scan row: %v", ErrScanRow, err)
		}

		if table[model] == nil {
			table[model] = make(map[domain.RepairType]float64)
		}
		table[model][repairType] = price
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListPriced - rows error: %v", ErrScanRow, err)
	}

	return table, nil
}
