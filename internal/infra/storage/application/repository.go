package application

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/Am1ne12/JobConnect/internal/domain"
	"github.com/Am1ne12/JobConnect/pkg/dbmetrics"
	"github.com/Am1ne12/JobConnect/pkg/psqlbuilder"
)

// Repository читает отклики платформы. Пишет только статус
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория откликов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает отклик вместе с компанией вакансии и user_id обеих сторон
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Application, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"a.id",
		"a.job_posting_id",
		"jp.company_id",
		"a.candidate_profile_id",
		"p.user_id",
		"c.user_id",
		"a.status",
	).
		From("applications a").
		Join("job_postings jp ON jp.id = a.job_posting_id").
		Join("companies c ON c.id = jp.company_id").
		Join("candidate_profiles p ON p.id = a.candidate_profile_id").
		Where(squirrel.Eq{"a.id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var app domain.Application
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&app.ID,
		&app.JobPostingID,
		&app.CompanyID,
		&app.CandidateProfileID,
		&app.CandidateUserID,
		&app.CompanyUserID,
		&app.Status,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrApplicationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan application: %w", ErrScanRow, err)
	}

	return &app, nil
}

// UpdateStatus обновляет статус отклика
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.ApplicationStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("applications").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %w", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrApplicationNotFound
	}

	return nil
}
