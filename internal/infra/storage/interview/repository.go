package interview

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/Am1ne12/JobConnect/internal/domain"
	"github.com/Am1ne12/JobConnect/pkg/dbmetrics"
	"github.com/Am1ne12/JobConnect/pkg/pgerr"
	"github.com/Am1ne12/JobConnect/pkg/psqlbuilder"
)

const (
	constraintCompanySlotActive = "ux_interviews_company_slot_active"
	constraintRoomID            = "ux_interviews_room_id"
)

// Колонки собеседования + user_id сторон для проверки доступа и уведомлений
var interviewColumns = []string{
	"i.id",
	"i.application_id",
	"i.company_id",
	"i.candidate_profile_id",
	"i.scheduled_at",
	"i.ends_at",
	"i.status",
	"i.room_id",
	"i.cancellation_reason",
	"i.rescheduled_from_id",
	"i.cancelled_at",
	"c.user_id",
	"p.user_id",
	"i.created_at",
	"i.updated_at",
}

// Repository репозиторий для работы с собеседованиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория собеседований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

func (r *Repository) baseSelect() squirrel.SelectBuilder {
	return psqlbuilder.Select(interviewColumns...).
		From("interviews i").
		Join("companies c ON c.id = i.company_id").
		Join("candidate_profiles p ON p.id = i.candidate_profile_id")
}

// LockCompany берёт транзакционную advisory блокировку по компании.
// Сериализует проверку свободного слота и вставку между конкурентными бронированиями
func (r *Repository) LockCompany(ctx context.Context, companyID int64) error {
	if !dbmetrics.IsInTransaction(ctx) {
		return ErrNotInTransaction
	}
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if _, err := executor.ExecContext(ctx, "SELECT pg_advisory_xact_lock($1)", companyID); err != nil {
		return classify(fmt.Errorf("%w: LockCompany - execute: %w", ErrExecQuery, err), err)
	}
	return nil
}

// Create создает собеседование.
// Нарушение уникальности слота -> ErrSlotTaken, room_id -> ErrDuplicateRoomID
func (r *Repository) Create(ctx context.Context, interview *domain.Interview) (*domain.Interview, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("interviews").
		Columns(
			"application_id",
			"company_id",
			"candidate_profile_id",
			"scheduled_at",
			"ends_at",
			"status",
			"room_id",
			"rescheduled_from_id",
		).
		Values(
			interview.ApplicationID,
			interview.CompanyID,
			interview.CandidateProfileID,
			interview.ScheduledAt,
			interview.EndsAt,
			interview.Status,
			interview.RoomID,
			interview.RescheduledFromID,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&interview.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, classify(fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err), err)
	}

	interview.CreatedAt = createdAt.Time
	interview.UpdatedAt = updatedAt.Time

	return interview, nil
}

// GetByID получает собеседование по ID.
// Внутри транзакции строка блокируется (FOR UPDATE OF i)
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Interview, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := r.baseSelect().Where(squirrel.Eq{"i.id": id})
	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE OF i")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	interview, err := scanInterview(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrInterviewNotFound
	}
	if err != nil {
		return nil, classify(fmt.Errorf("%w: GetByID - scan interview: %w", ErrScanRow, err), err)
	}

	return interview, nil
}

// ListActiveInRange возвращает собеседования компании, занимающие слоты и пересекающие [from, to)
func (r *Repository) ListActiveInRange(ctx context.Context, companyID int64, from, to time.Time) ([]*domain.Interview, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := r.baseSelect().
		Where(squirrel.Eq{"i.company_id": companyID}).
		Where(squirrel.NotEq{"i.status": inactiveStatuses()}).
		Where(squirrel.Lt{"i.scheduled_at": to}).
		Where(squirrel.Gt{"i.ends_at": from}).
		OrderBy("i.scheduled_at ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListActiveInRange - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, classify(fmt.Errorf("%w: ListActiveInRange - execute query: %w", ErrExecQuery, err), err)
	}
	defer rows.Close()

	return scanInterviews(rows)
}

// List получает собеседования компании или кандидата.
// Без IncludeInactive отменённые и перенесённые исключаются
func (r *Repository) List(ctx context.Context, filter domain.InterviewsFilter) ([]*domain.Interview, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := r.baseSelect()

	if filter.CompanyID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"i.company_id": *filter.CompanyID})
	}
	if filter.CandidateProfileID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"i.candidate_profile_id": *filter.CandidateProfileID})
	}
	if filter.From != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"i.scheduled_at": *filter.From})
	}
	if filter.To != nil {
		selectBuilder = selectBuilder.Where(squirrel.Lt{"i.scheduled_at": *filter.To})
	}
	if !filter.IncludeInactive {
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"i.status": inactiveStatuses()})
	}

	query, args, err := selectBuilder.OrderBy("i.scheduled_at ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanInterviews(rows)
}

// UpdateStatus переводит собеседование из expected в next.
// Если статус уже другой, возвращает ErrConcurrentUpdate
func (r *Repository) UpdateStatus(ctx context.Context, id int64, expected, next domain.InterviewStatus) error {
	return r.update(ctx, "UpdateStatus", id, expected, map[string]interface{}{
		"status":     next,
		"updated_at": squirrel.Expr("NOW()"),
	})
}

// Cancel мягкая отмена: строка остается, заполняются причина и время отмены
func (r *Repository) Cancel(ctx context.Context, id int64, expected domain.InterviewStatus, reason string, cancelledAt time.Time) error {
	return r.update(ctx, "Cancel", id, expected, map[string]interface{}{
		"status":              domain.InterviewStatusCancelled,
		"cancellation_reason": reason,
		"cancelled_at":        cancelledAt,
		"updated_at":          squirrel.Expr("NOW()"),
	})
}

// MarkRescheduled помечает собеседование перенесённым. Слот освобождается
func (r *Repository) MarkRescheduled(ctx context.Context, id int64, expected domain.InterviewStatus, reason string) error {
	return r.update(ctx, "MarkRescheduled", id, expected, map[string]interface{}{
		"status":              domain.InterviewStatusRescheduled,
		"cancellation_reason": reason,
		"updated_at":          squirrel.Expr("NOW()"),
	})
}

func (r *Repository) update(ctx context.Context, op string, id int64, expected domain.InterviewStatus, set map[string]interface{}) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("interviews").
		SetMap(set).
		Where(squirrel.Eq{"id": id, "status": expected}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: %s - build update query: %v", ErrBuildQuery, op, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return classify(fmt.Errorf("%w: %s - execute update: %w", ErrExecQuery, op, err), err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %w", ErrExecQuery, op, err)
	}

	if rowsAffected == 0 {
		return ErrConcurrentUpdate
	}

	return nil
}

// classify переводит ошибки postgres в sentinel ошибки репозитория.
// wrapped уже содержит контекст операции, cause исходная ошибка драйвера
func classify(wrapped, cause error) error {
	if constraint, ok := pgerr.IsUniqueViolation(cause); ok {
		switch constraint {
		case constraintCompanySlotActive:
			return fmt.Errorf("%w: %w", ErrSlotTaken, cause)
		case constraintRoomID:
			return fmt.Errorf("%w: %w", ErrDuplicateRoomID, cause)
		}
	}
	if pgerr.IsRetryable(cause) {
		return fmt.Errorf("%w: %w", ErrConcurrentUpdate, cause)
	}
	return wrapped
}

func inactiveStatuses() []string {
	statuses := make([]string, len(domain.InactiveInterviewStatuses))
	for i, s := range domain.InactiveInterviewStatuses {
		statuses[i] = string(s)
	}
	return statuses
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanInterview(row rowScanner) (*domain.Interview, error) {
	var interview domain.Interview
	var createdAt, updatedAt sql.NullTime
	var cancellationReason sql.NullString
	var rescheduledFromID sql.NullInt64
	var cancelledAt sql.NullTime

	err := row.Scan(
		&interview.ID,
		&interview.ApplicationID,
		&interview.CompanyID,
		&interview.CandidateProfileID,
		&interview.ScheduledAt,
		&interview.EndsAt,
		&interview.Status,
		&interview.RoomID,
		&cancellationReason,
		&rescheduledFromID,
		&cancelledAt,
		&interview.CompanyUserID,
		&interview.CandidateUserID,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if cancellationReason.Valid {
		interview.CancellationReason = &cancellationReason.String
	}
	if rescheduledFromID.Valid {
		interview.RescheduledFromID = &rescheduledFromID.Int64
	}
	if cancelledAt.Valid {
		interview.CancelledAt = &cancelledAt.Time
	}
	interview.CreatedAt = createdAt.Time
	interview.UpdatedAt = updatedAt.Time

	return &interview, nil
}

// scanInterviews сканирует результаты запроса в слайс собеседований
func scanInterviews(rows *sql.Rows) ([]*domain.Interview, error) {
	interviews := make([]*domain.Interview, 0)

	for rows.Next() {
		interview, err := scanInterview(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanInterviews - scan row: %w", ErrScanRow, err)
		}
		interviews = append(interviews, interview)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanInterviews - rows error: %w", ErrScanRow, err)
	}

	return interviews, nil
}
