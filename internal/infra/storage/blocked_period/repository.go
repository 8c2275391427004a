package blocked_period

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/Am1ne12/JobConnect/internal/domain"
	"github.com/Am1ne12/JobConnect/pkg/dbmetrics"
	"github.com/Am1ne12/JobConnect/pkg/psqlbuilder"
)

var blockedPeriodColumns = []string{
	"id",
	"company_id",
	"start_time",
	"end_time",
	"reason",
	"created_at",
}

// Repository репозиторий периодов недоступности компании (company_unavailabilities)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает период недоступности
func (r *Repository) Create(ctx context.Context, period *domain.BlockedPeriod) (*domain.BlockedPeriod, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("company_unavailabilities").
		Columns("company_id", "start_time", "end_time", "reason").
		Values(period.CompanyID, period.StartTime, period.EndTime, period.Reason).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&period.ID, &createdAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}
	period.CreatedAt = createdAt.Time

	return period, nil
}

// GetByID получает период по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.BlockedPeriod, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(blockedPeriodColumns...).
		From("company_unavailabilities").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	period, err := scanBlockedPeriod(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBlockedPeriodNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan blocked period: %w", ErrScanRow, err)
	}

	return period, nil
}

// ListByCompany периоды компании, пересекающие [from, to). nil границы не ограничивают выборку
func (r *Repository) ListByCompany(ctx context.Context, companyID int64, from, to *time.Time) ([]*domain.BlockedPeriod, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(blockedPeriodColumns...).
		From("company_unavailabilities").
		Where(squirrel.Eq{"company_id": companyID})

	if to != nil {
		selectBuilder = selectBuilder.Where(squirrel.Lt{"start_time": *to})
	}
	if from != nil {
		selectBuilder = selectBuilder.Where(squirrel.Gt{"end_time": *from})
	}

	query, args, err := selectBuilder.OrderBy("start_time ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByCompany - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByCompany - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	periods := make([]*domain.BlockedPeriod, 0)
	for rows.Next() {
		period, err := scanBlockedPeriod(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListByCompany - scan row: %w", ErrScanRow, err)
		}
		periods = append(periods, period)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByCompany - rows error: %w", ErrScanRow, err)
	}

	return periods, nil
}

// Delete удаляет период
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("company_unavailabilities").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %w", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBlockedPeriodNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBlockedPeriod(row rowScanner) (*domain.BlockedPeriod, error) {
	var period domain.BlockedPeriod
	var reason sql.NullString
	var createdAt sql.NullTime

	if err := row.Scan(
		&period.ID,
		&period.CompanyID,
		&period.StartTime,
		&period.EndTime,
		&reason,
		&createdAt,
	); err != nil {
		return nil, err
	}

	if reason.Valid {
		period.Reason = &reason.String
	}
	period.CreatedAt = createdAt.Time

	return &period, nil
}
