package interviews

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Am1ne12/JobConnect/internal/domain"
	interviewRepo "github.com/Am1ne12/JobConnect/internal/infra/storage/interview"
	profileRepo "github.com/Am1ne12/JobConnect/internal/infra/storage/profile"
	"github.com/Am1ne12/JobConnect/internal/service/interviews/models"
	"github.com/Am1ne12/JobConnect/pkg/ptr"
)

// Service сервис чтения собеседований и переходов статусов (подключение, завершение)
type Service struct {
	interviewRepo InterviewRepository
	profileRepo   ProfileRepository
	dispatcher    EventDispatcher
	joinWindow    time.Duration
	timeProvider  TimeProvider
	logger        Logger
}

// NewService создает новый экземпляр сервиса собеседований
func NewService(
	interviewRepo InterviewRepository,
	profileRepo ProfileRepository,
	dispatcher EventDispatcher,
	joinWindow time.Duration,
	logger Logger,
) *Service {
	return &Service{
		interviewRepo: interviewRepo,
		profileRepo:   profileRepo,
		dispatcher:    dispatcher,
		joinWindow:    joinWindow,
		timeProvider:  &RealTimeProvider{},
		logger:        logger,
	}
}

// GetByID получает собеседование по ID
// Доступно только сторонам собеседования (компания и кандидат)
func (s *Service) GetByID(ctx context.Context, id int64, userID int64) (*models.InterviewResponse, error) {
	s.logger.Info("GetByID: fetching interview id=%d for user=%d", id, userID)

	interview, err := s.getForParty(ctx, "GetByID", id, userID)
	if err != nil {
		return nil, err
	}

	return models.FromDomainInterview(interview), nil
}

// List собеседования компании или кандидата в зависимости от роли
func (s *Service) List(ctx context.Context, req *models.ListInterviewsRequest) (*models.InterviewListResponse, error) {
	s.logger.Info("List: fetching interviews for user=%d, role=%s, includeInactive=%t",
		req.UserID, req.Role, req.IncludeInactive)

	filter := domain.InterviewsFilter{IncludeInactive: req.IncludeInactive}

	switch req.Role {
	case domain.RoleCompany:
		company, err := s.profileRepo.GetCompanyByUserID(ctx, req.UserID)
		if err != nil {
			return nil, s.profileError("List", req.UserID, err)
		}
		filter.CompanyID = ptr.Ptr(company.ID)
	case domain.RoleCandidate:
		profile, err := s.profileRepo.GetCandidateByUserID(ctx, req.UserID)
		if err != nil {
			return nil, s.profileError("List", req.UserID, err)
		}
		filter.CandidateProfileID = ptr.Ptr(profile.ID)
	default:
		s.logger.Warn("List: invalid role=%q for user=%d", req.Role, req.UserID)
		return nil, ErrInvalidRole
	}

	interviews, err := s.interviewRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d interviews for user=%d", len(interviews), req.UserID)
	return models.FromDomainInterviewList(interviews), nil
}

// Join подключение к видеокомнате.
// Окно открывается за joinWindow до начала и закрывается в момент окончания.
// Кандидат переводит Scheduled в InWaitingRoom, компания переводит Scheduled/InWaitingRoom в InProgress
func (s *Service) Join(ctx context.Context, id int64, userID int64) (*models.JoinResponse, error) {
	s.logger.Info("Join: user=%d joining interview id=%d", userID, id)

	// 1. Собеседование и права доступа
	interview, err := s.getForParty(ctx, "Join", id, userID)
	if err != nil {
		return nil, err
	}

	// 2. Собеседование должно быть активным
	if !interview.OccupiesSlot() || interview.Status == domain.InterviewStatusCompleted {
		s.logger.Warn("Join: interview id=%d is not active, status=%s", id, interview.Status)
		return nil, ErrInterviewNotActive
	}

	// 3. Окно подключения
	now := s.timeProvider.Now()
	if now.Before(interview.ScheduledAt.Add(-s.joinWindow)) {
		s.logger.Warn("Join: too early to join interview id=%d (starts at %s)", id, interview.ScheduledAt.Format(time.RFC3339))
		return nil, ErrTooEarlyToJoin
	}
	if now.After(interview.EndsAt) {
		s.logger.Warn("Join: interview id=%d is over", id)
		return nil, ErrInterviewOver
	}

	// 4. Переход статуса в зависимости от стороны
	role := domain.RoleCandidate
	if userID == interview.CompanyUserID {
		role = domain.RoleCompany
	}

	var next domain.InterviewStatus
	switch {
	case role == domain.RoleCandidate && interview.Status == domain.InterviewStatusScheduled:
		next = domain.InterviewStatusInWaitingRoom
	case role == domain.RoleCompany && interview.Status.CanTransitionTo(domain.InterviewStatusInProgress):
		next = domain.InterviewStatusInProgress
	}

	if next != "" {
		interview, err = s.transition(ctx, "Join", interview, next)
		if err != nil {
			return nil, err
		}
	}

	s.logger.Info("Join: user=%d joined interview id=%d as %s, status=%s", userID, id, role, interview.Status)
	return &models.JoinResponse{
		InterviewID: interview.ID,
		RoomID:      interview.RoomID,
		Status:      string(interview.Status),
		Role:        string(role),
		ScheduledAt: interview.ScheduledAt,
		EndsAt:      interview.EndsAt,
	}, nil
}

// Complete завершение собеседования. Только компания
func (s *Service) Complete(ctx context.Context, id int64, userID int64) (*models.InterviewResponse, error) {
	s.logger.Info("Complete: completing interview id=%d by user=%d", id, userID)

	interview, err := s.getForParty(ctx, "Complete", id, userID)
	if err != nil {
		return nil, err
	}

	if userID != interview.CompanyUserID {
		s.logger.Warn("Complete: user=%d is not the company of interview id=%d", userID, id)
		return nil, ErrAccessDenied
	}

	if !interview.Status.CanTransitionTo(domain.InterviewStatusCompleted) {
		s.logger.Warn("Complete: interview id=%d cannot be completed, status=%s", id, interview.Status)
		return nil, ErrInvalidTransition
	}

	interview, err = s.transition(ctx, "Complete", interview, domain.InterviewStatusCompleted)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Complete: interview id=%d completed", id)
	return models.FromDomainInterview(interview), nil
}

// transition меняет статус с проверкой текущего и публикует InterviewStatusChanged.
// Если статус успели изменить, возвращается свежая версия без перехода
func (s *Service) transition(ctx context.Context, op string, interview *domain.Interview, next domain.InterviewStatus) (*domain.Interview, error) {
	err := s.interviewRepo.UpdateStatus(ctx, interview.ID, interview.Status, next)
	if errors.Is(err, interviewRepo.ErrConcurrentUpdate) {
		s.logger.Warn("%s: interview id=%d was modified concurrently, reloading", op, interview.ID)
		fresh, getErr := s.interviewRepo.GetByID(ctx, interview.ID)
		if getErr != nil {
			s.logger.Error("%s: failed to reload interview id=%d: %v", op, interview.ID, getErr)
			return nil, fmt.Errorf("%w: %s - reload: %v", ErrInternal, op, getErr)
		}
		if fresh.Status != next {
			return nil, ErrInvalidTransition
		}
		return fresh, nil
	}
	if err != nil {
		s.logger.Error("%s: failed to update status of interview id=%d: %v", op, interview.ID, err)
		return nil, fmt.Errorf("%w: %s - update status: %v", ErrInternal, op, err)
	}

	updated := *interview
	updated.Status = next

	s.dispatcher.Dispatch(domain.Event{
		Type:             domain.EventInterviewStatusChanged,
		CompanyID:        updated.CompanyID,
		InterviewID:      updated.ID,
		RecipientUserIDs: []int64{updated.CompanyUserID, updated.CandidateUserID},
		Status:           next,
		OccurredAt:       s.timeProvider.Now(),
	})

	return &updated, nil
}

func (s *Service) getForParty(ctx context.Context, op string, id int64, userID int64) (*domain.Interview, error) {
	interview, err := s.interviewRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, interviewRepo.ErrInterviewNotFound) {
			s.logger.Warn("%s: interview id=%d not found", op, id)
			return nil, ErrInterviewNotFound
		}
		s.logger.Error("%s: repository error for interview id=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}

	if !interview.IsParty(userID) {
		s.logger.Warn("%s: access denied for user=%d to interview id=%d", op, userID, id)
		return nil, ErrAccessDenied
	}

	return interview, nil
}

func (s *Service) profileError(op string, userID int64, err error) error {
	if errors.Is(err, profileRepo.ErrCompanyNotFound) || errors.Is(err, profileRepo.ErrCandidateNotFound) {
		s.logger.Warn("%s: profile for user=%d not found", op, userID)
		return ErrProfileNotFound
	}
	s.logger.Error("%s: failed to get profile for user=%d: %v", op, userID, err)
	return fmt.Errorf("%w: %s - get profile: %v", ErrInternal, op, err)
}
