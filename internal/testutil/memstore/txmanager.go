package memstore

import (
	"context"
	"time"

	"github.com/Am1ne12/JobConnect/internal/domain"
	"github.com/Am1ne12/JobConnect/pkg/types"
)

type txKey struct{}

func inTx(ctx context.Context) bool {
	v, _ := ctx.Value(txKey{}).(bool)
	return v
}

// TxManager выполняет транзакции строго по одной.
// При ошибке состояние хранилища откатывается к снимку на начало транзакции
type TxManager struct{ s *Store }

func (m *TxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, fn)
}

func (m *TxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, fn)
}

func (m *TxManager) run(ctx context.Context, fn func(ctx context.Context) error) error {
	if inTx(ctx) {
		return fn(ctx)
	}

	m.s.txMu.Lock()
	defer m.s.txMu.Unlock()

	snap := m.s.snapshot()
	if err := fn(context.WithValue(ctx, txKey{}, true)); err != nil {
		m.s.restore(snap)
		return err
	}
	return nil
}

type snapshot struct {
	availabilities []*domain.WeeklyAvailability
	blocked        map[int64]*domain.BlockedPeriod
	interviews     map[int64]*domain.Interview
	appStatuses    map[int64]domain.ApplicationStatus
}

func (s *Store) snapshot() snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := snapshot{
		availabilities: make([]*domain.WeeklyAvailability, 0, len(s.availabilities)),
		blocked:        make(map[int64]*domain.BlockedPeriod, len(s.blocked)),
		interviews:     make(map[int64]*domain.Interview, len(s.interviews)),
		appStatuses:    make(map[int64]domain.ApplicationStatus, len(s.applications)),
	}
	for _, a := range s.availabilities {
		cp := *a
		snap.availabilities = append(snap.availabilities, &cp)
	}
	for id, p := range s.blocked {
		cp := *p
		snap.blocked[id] = &cp
	}
	for id, i := range s.interviews {
		cp := *i
		snap.interviews[id] = &cp
	}
	for id, a := range s.applications {
		snap.appStatuses[id] = a.Status
	}
	return snap
}

func (s *Store) restore(snap snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.availabilities = snap.availabilities
	s.blocked = snap.blocked
	s.interviews = snap.interviews
	for id, status := range snap.appStatuses {
		if a, ok := s.applications[id]; ok {
			a.Status = status
		}
	}
}

// SetNow подменяет часы хранилища (created_at / updated_at)
func (s *Store) SetNow(now func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
}

func typesTime(s string) types.TimeString {
	return types.MustTimeString(s)
}
