// Package memstore in-memory реализация репозиториев и менеджера транзакций для тестов.
// Возвращает те же sentinel ошибки, что и postgres репозитории
package memstore

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/Am1ne12/JobConnect/internal/domain"
	applicationRepo "github.com/Am1ne12/JobConnect/internal/infra/storage/application"
	availabilityRepo "github.com/Am1ne12/JobConnect/internal/infra/storage/availability"
	blockedPeriodRepo "github.com/Am1ne12/JobConnect/internal/infra/storage/blocked_period"
	interviewRepo "github.com/Am1ne12/JobConnect/internal/infra/storage/interview"
	profileRepo "github.com/Am1ne12/JobConnect/internal/infra/storage/profile"
)

// Store общее состояние всех in-memory репозиториев
type Store struct {
	mu   sync.Mutex
	txMu sync.Mutex

	nextID int64
	now    func() time.Time

	availabilities []*domain.WeeklyAvailability
	blocked        map[int64]*domain.BlockedPeriod
	interviews     map[int64]*domain.Interview
	applications   map[int64]*domain.Application
	companies      map[int64]*domain.Company
	candidates     map[int64]*domain.CandidateProfile
}

// New создает пустое хранилище
func New() *Store {
	return &Store{
		now:          time.Now,
		blocked:      make(map[int64]*domain.BlockedPeriod),
		interviews:   make(map[int64]*domain.Interview),
		applications: make(map[int64]*domain.Application),
		companies:    make(map[int64]*domain.Company),
		candidates:   make(map[int64]*domain.CandidateProfile),
	}
}

func (s *Store) id() int64 {
	s.nextID++
	return s.nextID
}

// AddCompany регистрирует компанию
func (s *Store) AddCompany(c domain.Company) *domain.Company {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.companies[c.ID] = &c
	return &c
}

// AddCandidate регистрирует профиль кандидата
func (s *Store) AddCandidate(p domain.CandidateProfile) *domain.CandidateProfile {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.candidates[p.ID] = &p
	return &p
}

// AddApplication регистрирует отклик; user_id сторон берутся из профилей
func (s *Store) AddApplication(a domain.Application) *domain.Application {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c, ok := s.companies[a.CompanyID]; ok {
		a.CompanyUserID = c.UserID
	}
	if p, ok := s.candidates[a.CandidateProfileID]; ok {
		a.CandidateUserID = p.UserID
	}
	s.applications[a.ID] = &a
	return &a
}

// SetWeekday добавляет строку расписания как есть (без замены остальных)
func (s *Store) SetWeekday(companyID int64, day time.Weekday, start, end string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	s.availabilities = append(s.availabilities, &domain.WeeklyAvailability{
		ID:        s.id(),
		CompanyID: companyID,
		DayOfWeek: day,
		StartTime: typesTime(start),
		EndTime:   typesTime(end),
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	})
}

// PutInterview кладёт собеседование напрямую, минуя проверки
func (s *Store) PutInterview(i domain.Interview) *domain.Interview {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i.ID == 0 {
		i.ID = s.id()
	}
	s.fillParties(&i)
	s.interviews[i.ID] = &i
	cp := i
	return &cp
}

// Interview возвращает копию собеседования
func (s *Store) Interview(id int64) (domain.Interview, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i, ok := s.interviews[id]
	if !ok {
		return domain.Interview{}, false
	}
	return *i, true
}

// Interviews копии всех собеседований, отсортированные по id
func (s *Store) Interviews() []domain.Interview {
	s.mu.Lock()
	defer s.mu.Unlock()
	result := make([]domain.Interview, 0, len(s.interviews))
	for _, i := range s.interviews {
		result = append(result, *i)
	}
	sort.Slice(result, func(a, b int) bool { return result[a].ID < result[b].ID })
	return result
}

// ApplicationStatus текущий статус отклика
func (s *Store) ApplicationStatus(id int64) domain.ApplicationStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	if a, ok := s.applications[id]; ok {
		return a.Status
	}
	return ""
}

func (s *Store) fillParties(i *domain.Interview) {
	if c, ok := s.companies[i.CompanyID]; ok {
		i.CompanyUserID = c.UserID
	}
	if p, ok := s.candidates[i.CandidateProfileID]; ok {
		i.CandidateUserID = p.UserID
	}
}

// Repositories

func (s *Store) Availability() *AvailabilityRepo   { return &AvailabilityRepo{s: s} }
func (s *Store) BlockedPeriods() *BlockedPeriodRepo { return &BlockedPeriodRepo{s: s} }
func (s *Store) InterviewRepo() *InterviewRepo     { return &InterviewRepo{s: s} }
func (s *Store) Applications() *ApplicationRepo    { return &ApplicationRepo{s: s} }
func (s *Store) Profiles() *ProfileRepo            { return &ProfileRepo{s: s} }
func (s *Store) TxManager() *TxManager             { return &TxManager{s: s} }

// AvailabilityRepo in-memory company_availabilities
type AvailabilityRepo struct{ s *Store }

func (r *AvailabilityRepo) ListByCompany(_ context.Context, companyID int64) ([]*domain.WeeklyAvailability, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	result := make([]*domain.WeeklyAvailability, 0)
	for _, a := range r.s.availabilities {
		if a.CompanyID == companyID {
			cp := *a
			result = append(result, &cp)
		}
	}
	sort.SliceStable(result, func(i, j int) bool { return result[i].DayOfWeek < result[j].DayOfWeek })
	return result, nil
}

func (r *AvailabilityRepo) CountByCompany(_ context.Context, companyID int64) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	count := 0
	for _, a := range r.s.availabilities {
		if a.CompanyID == companyID {
			count++
		}
	}
	return count, nil
}

func (r *AvailabilityRepo) ReplaceForCompany(_ context.Context, companyID int64, items []*domain.WeeklyAvailability) ([]*domain.WeeklyAvailability, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	seen := make(map[time.Weekday]bool, len(items))
	for _, item := range items {
		if seen[item.DayOfWeek] {
			return nil, availabilityRepo.ErrDuplicateWeekday
		}
		seen[item.DayOfWeek] = true
	}

	kept := r.s.availabilities[:0]
	for _, a := range r.s.availabilities {
		if a.CompanyID != companyID {
			kept = append(kept, a)
		}
	}
	r.s.availabilities = kept

	now := r.s.now()
	for _, item := range items {
		item.ID = r.s.id()
		item.CompanyID = companyID
		item.CreatedAt = now
		item.UpdatedAt = now
		cp := *item
		r.s.availabilities = append(r.s.availabilities, &cp)
	}
	return items, nil
}

// BlockedPeriodRepo in-memory company_unavailabilities
type BlockedPeriodRepo struct{ s *Store }

func (r *BlockedPeriodRepo) Create(_ context.Context, period *domain.BlockedPeriod) (*domain.BlockedPeriod, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	period.ID = r.s.id()
	period.CreatedAt = r.s.now()
	cp := *period
	r.s.blocked[period.ID] = &cp
	return period, nil
}

func (r *BlockedPeriodRepo) GetByID(_ context.Context, id int64) (*domain.BlockedPeriod, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.blocked[id]
	if !ok {
		return nil, blockedPeriodRepo.ErrBlockedPeriodNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *BlockedPeriodRepo) ListByCompany(_ context.Context, companyID int64, from, to *time.Time) ([]*domain.BlockedPeriod, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	result := make([]*domain.BlockedPeriod, 0)
	for _, p := range r.s.blocked {
		if p.CompanyID != companyID {
			continue
		}
		if to != nil && !p.StartTime.Before(*to) {
			continue
		}
		if from != nil && !p.EndTime.After(*from) {
			continue
		}
		cp := *p
		result = append(result, &cp)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].StartTime.Before(result[j].StartTime) })
	return result, nil
}

func (r *BlockedPeriodRepo) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.blocked[id]; !ok {
		return blockedPeriodRepo.ErrBlockedPeriodNotFound
	}
	delete(r.s.blocked, id)
	return nil
}

// InterviewRepo in-memory interviews с эмуляцией уникальных индексов
type InterviewRepo struct{ s *Store }

func (r *InterviewRepo) LockCompany(ctx context.Context, _ int64) error {
	if !inTx(ctx) {
		return interviewRepo.ErrNotInTransaction
	}
	return nil
}

func (r *InterviewRepo) Create(_ context.Context, interview *domain.Interview) (*domain.Interview, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, existing := range r.s.interviews {
		if existing.RoomID == interview.RoomID {
			return nil, interviewRepo.ErrDuplicateRoomID
		}
		if interview.OccupiesSlot() && existing.OccupiesSlot() &&
			existing.CompanyID == interview.CompanyID && existing.ScheduledAt.Equal(interview.ScheduledAt) {
			return nil, interviewRepo.ErrSlotTaken
		}
	}

	now := r.s.now()
	interview.ID = r.s.id()
	interview.CreatedAt = now
	interview.UpdatedAt = now
	cp := *interview
	r.s.fillParties(&cp)
	r.s.interviews[cp.ID] = &cp
	return interview, nil
}

func (r *InterviewRepo) GetByID(_ context.Context, id int64) (*domain.Interview, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	i, ok := r.s.interviews[id]
	if !ok {
		return nil, interviewRepo.ErrInterviewNotFound
	}
	cp := *i
	return &cp, nil
}

func (r *InterviewRepo) ListActiveInRange(_ context.Context, companyID int64, from, to time.Time) ([]*domain.Interview, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	result := make([]*domain.Interview, 0)
	for _, i := range r.s.interviews {
		if i.CompanyID == companyID && i.OccupiesSlot() && i.ScheduledAt.Before(to) && i.EndsAt.After(from) {
			cp := *i
			result = append(result, &cp)
		}
	}
	sortInterviews(result)
	return result, nil
}

func (r *InterviewRepo) List(_ context.Context, filter domain.InterviewsFilter) ([]*domain.Interview, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	result := make([]*domain.Interview, 0)
	for _, i := range r.s.interviews {
		if filter.CompanyID != nil && i.CompanyID != *filter.CompanyID {
			continue
		}
		if filter.CandidateProfileID != nil && i.CandidateProfileID != *filter.CandidateProfileID {
			continue
		}
		if filter.From != nil && i.ScheduledAt.Before(*filter.From) {
			continue
		}
		if filter.To != nil && !i.ScheduledAt.Before(*filter.To) {
			continue
		}
		if !filter.IncludeInactive && !i.OccupiesSlot() {
			continue
		}
		cp := *i
		result = append(result, &cp)
	}
	sortInterviews(result)
	return result, nil
}

func (r *InterviewRepo) UpdateStatus(_ context.Context, id int64, expected, next domain.InterviewStatus) error {
	return r.update(id, expected, func(i *domain.Interview) {
		i.Status = next
	})
}

func (r *InterviewRepo) Cancel(_ context.Context, id int64, expected domain.InterviewStatus, reason string, cancelledAt time.Time) error {
	return r.update(id, expected, func(i *domain.Interview) {
		i.Status = domain.InterviewStatusCancelled
		i.CancellationReason = &reason
		i.CancelledAt = &cancelledAt
	})
}

func (r *InterviewRepo) MarkRescheduled(_ context.Context, id int64, expected domain.InterviewStatus, reason string) error {
	return r.update(id, expected, func(i *domain.Interview) {
		i.Status = domain.InterviewStatusRescheduled
		i.CancellationReason = &reason
	})
}

func (r *InterviewRepo) update(id int64, expected domain.InterviewStatus, apply func(i *domain.Interview)) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	i, ok := r.s.interviews[id]
	if !ok || i.Status != expected {
		return interviewRepo.ErrConcurrentUpdate
	}
	apply(i)
	i.UpdatedAt = r.s.now()
	return nil
}

func sortInterviews(list []*domain.Interview) {
	sort.Slice(list, func(a, b int) bool {
		if list[a].ScheduledAt.Equal(list[b].ScheduledAt) {
			return list[a].ID < list[b].ID
		}
		return list[a].ScheduledAt.Before(list[b].ScheduledAt)
	})
}

// ApplicationRepo in-memory applications
type ApplicationRepo struct{ s *Store }

func (r *ApplicationRepo) GetByID(_ context.Context, id int64) (*domain.Application, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	a, ok := r.s.applications[id]
	if !ok {
		return nil, applicationRepo.ErrApplicationNotFound
	}
	cp := *a
	return &cp, nil
}

func (r *ApplicationRepo) UpdateStatus(_ context.Context, id int64, status domain.ApplicationStatus) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	a, ok := r.s.applications[id]
	if !ok {
		return applicationRepo.ErrApplicationNotFound
	}
	a.Status = status
	return nil
}

// ProfileRepo in-memory companies / candidate_profiles
type ProfileRepo struct{ s *Store }

func (r *ProfileRepo) GetCompanyByID(_ context.Context, id int64) (*domain.Company, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c, ok := r.s.companies[id]
	if !ok {
		return nil, profileRepo.ErrCompanyNotFound
	}
	cp := *c
	return &cp, nil
}

func (r *ProfileRepo) GetCompanyByUserID(_ context.Context, userID int64) (*domain.Company, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, c := range r.s.companies {
		if c.UserID == userID {
			cp := *c
			return &cp, nil
		}
	}
	return nil, profileRepo.ErrCompanyNotFound
}

func (r *ProfileRepo) GetCandidateByUserID(_ context.Context, userID int64) (*domain.CandidateProfile, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, p := range r.s.candidates {
		if p.UserID == userID {
			cp := *p
			return &cp, nil
		}
	}
	return nil, profileRepo.ErrCandidateNotFound
}
