package availability

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/Am1ne12/JobConnect/internal/domain"
	"github.com/Am1ne12/JobConnect/pkg/dbmetrics"
	"github.com/Am1ne12/JobConnect/pkg/pgerr"
	"github.com/Am1ne12/JobConnect/pkg/psqlbuilder"
)

// Repository репозиторий недельного расписания компании (company_availabilities)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория расписания
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListByCompany возвращает все строки расписания компании, упорядоченные по дню недели
func (r *Repository) ListByCompany(ctx context.Context, companyID int64) ([]*domain.WeeklyAvailability, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"company_id",
		"day_of_week",
		"start_time",
		"end_time",
		"is_active",
		"created_at",
		"updated_at",
	).
		From("company_availabilities").
		Where(squirrel.Eq{"company_id": companyID}).
		OrderBy("day_of_week ASC", "updated_at DESC", "id DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByCompany - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByCompany - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]*domain.WeeklyAvailability, 0)
	for rows.Next() {
		var a domain.WeeklyAvailability
		var dayOfWeek int
		var createdAt, updatedAt sql.NullTime

		if err := rows.Scan(
			&a.ID,
			&a.CompanyID,
			&dayOfWeek,
			&a.StartTime,
			&a.EndTime,
			&a.IsActive,
			&createdAt,
			&updatedAt,
		); err != nil {
			return nil, fmt.Errorf("%w: ListByCompany - scan row: %w", ErrScanRow, err)
		}

		a.DayOfWeek = time.Weekday(dayOfWeek)
		a.CreatedAt = createdAt.Time
		a.UpdatedAt = updatedAt.Time
		result = append(result, &a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByCompany - rows error: %w", ErrScanRow, err)
	}

	return result, nil
}

// CountByCompany количество строк расписания компании (включая неактивные)
func (r *Repository) CountByCompany(ctx context.Context, companyID int64) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("company_availabilities").
		Where(squirrel.Eq{"company_id": companyID}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: CountByCompany - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountByCompany - scan count: %w", ErrScanRow, err)
	}

	return count, nil
}

// ReplaceForCompany удаляет всё расписание компании и вставляет новое.
// Вызывать внутри транзакции, иначе читатели увидят пустое расписание
func (r *Repository) ReplaceForCompany(ctx context.Context, companyID int64, items []*domain.WeeklyAvailability) ([]*domain.WeeklyAvailability, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	deleteQuery, deleteArgs, err := psqlbuilder.Delete("company_availabilities").
		Where(squirrel.Eq{"company_id": companyID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ReplaceForCompany - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		return nil, fmt.Errorf("%w: ReplaceForCompany - execute delete: %w", ErrExecQuery, err)
	}

	for _, item := range items {
		item.CompanyID = companyID

		query, args, err := psqlbuilder.Insert("company_availabilities").
			Columns(
				"company_id",
				"day_of_week",
				"start_time",
				"end_time",
				"is_active",
			).
			Values(
				item.CompanyID,
				int(item.DayOfWeek),
				item.StartTime,
				item.EndTime,
				item.IsActive,
			).
			Suffix("RETURNING id, created_at, updated_at").
			ToSql()
		if err != nil {
			return nil, fmt.Errorf("%w: ReplaceForCompany - build insert query: %v", ErrBuildQuery, err)
		}

		var createdAt, updatedAt sql.NullTime
		if err := executor.QueryRowContext(ctx, query, args...).Scan(&item.ID, &createdAt, &updatedAt); err != nil {
			if _, ok := pgerr.IsUniqueViolation(err); ok {
				return nil, fmt.Errorf("%w: %v", ErrDuplicateWeekday, err)
			}
			return nil, fmt.Errorf("%w: ReplaceForCompany - execute insert: %w", ErrExecQuery, err)
		}

		item.CreatedAt = createdAt.Time
		item.UpdatedAt = updatedAt.Time
	}

	return items, nil
}
