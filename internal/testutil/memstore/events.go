package memstore

import (
	"sync"

	"github.com/Am1ne12/JobConnect/internal/domain"
)

// EventRecorder запоминает опубликованные события
type EventRecorder struct {
	mu     sync.Mutex
	events []domain.Event
}

func (r *EventRecorder) Dispatch(event domain.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
}

// Events копия опубликованных событий
func (r *EventRecorder) Events() []domain.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]domain.Event(nil), r.events...)
}

// Types типы опубликованных событий по порядку
func (r *EventRecorder) Types() []domain.EventType {
	r.mu.Lock()
	defer r.mu.Unlock()
	types := make([]domain.EventType, len(r.events))
	for i, e := range r.events {
		types[i] = e.Type
	}
	return types
}
