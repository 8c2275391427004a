package profile

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

// Repository читает профили компаний и кандидатов (только чтение)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория профилей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetCompanyByID получает компанию по ID
func (r *Repository) GetCompanyByID(ctx context.Context, id int64) (*domain.Company, error) {
	return r.getCompany(ctx, "GetCompanyByID", squirrel.Eq{"id": id})
}

// GetCompanyByUserID получает компанию пользователя
func (r *Repository) GetCompanyByUserID(ctx context.Context, userID int64) (*domain.Company, error) {
	return r.getCompany(ctx, "GetCompanyByUserID", squirrel.Eq{"user_id": userID})
}

func (r *Repository) getCompany(ctx context.Context, op string, where squirrel.Eq) (*domain.Company, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "user_id", "name").
		From("companies").
		Where(where).
		Limit(1).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	var company domain.Company
	err = executor.QueryRowContext(ctx, query, args...).Scan(&company.ID, &company.UserID, &company.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrCompanyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan company: %w", ErrScanRow, op, err)
	}

	return &company, nil
}

// GetCandidateByUserID получает профиль кандидата пользователя
func (r *Repository) GetCandidateByUserID(ctx context.Context, userID int64) (*domain.CandidateProfile, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "user_id").
		From("candidate_profiles").
		Where(squirrel.Eq{"user_id": userID}).
		Limit(1).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetCandidateByUserID - build select query: %v", ErrBuildQuery, err)
	}

	var profile domain.CandidateProfile
	err = executor.QueryRowContext(ctx, query, args...).Scan(&profile.ID, &profile.UserID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrCandidateNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetCandidateByUserID - scan profile: %w", ErrScanRow, err)
	}

	return &profile, nil
}
