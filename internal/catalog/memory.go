// Package catalog holds the in-memory activity catalog.
package catalog

import (
	"context"
	"sync"

	"example.com/enrollment/internal/domain"
)

// Store keeps the full activity catalog in memory for the lifetime of the
// process. A single catalog-wide lock serialises participant mutations so
// the membership guard and the mutation happen as one atomic step; contention
// is negligible at this catalog size.
type Store struct {
	mu         sync.RWMutex
	activities map[string]*domain.Activity
}

// NewStore constructs a Store populated from the provided seed.
func NewStore(seed []domain.Activity) *Store {
	s := &Store{}
	s.Reset(seed)
	return s
}

// Reset replaces the catalog contents with the seed set. Intended for test
// isolation; not part of the production store interface.
func (s *Store) Reset(seed []domain.Activity) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.activities = make(map[string]*domain.Activity, len(seed))
	for _, activity := range seed {
		copied := activity
		copied.Participants = append([]string(nil), activity.Participants...)
		s.activities[copied.Name] = &copied
	}
}

// List returns a copy of the full catalog keyed by activity name.
func (s *Store) List(ctx context.Context) (map[string]domain.Activity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]domain.Activity, len(s.activities))
	for name, activity := range s.activities {
		copied := *activity
		copied.Participants = append([]string(nil), activity.Participants...)
		out[name] = copied
	}
	return out, nil
}

// Get returns a copy of the named activity, or ErrActivityNotFound.
func (s *Store) Get(ctx context.Context, name string) (*domain.Activity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	activity, ok := s.activities[name]
	if !ok {
		return nil, domain.ErrActivityNotFound
	}
	copied := *activity
	copied.Participants = append([]string(nil), activity.Participants...)
	return &copied, nil
}

// AddParticipant appends the student to the activity's participant list.
// Returns ErrActivityNotFound for an unknown activity and ErrAlreadySignedUp
// when the student is already listed; the catalog is unchanged on failure.
func (s *Store) AddParticipant(ctx context.Context, name, student string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	activity, ok := s.activities[name]
	if !ok {
		return domain.ErrActivityNotFound
	}
	if activity.HasParticipant(student) {
		return domain.ErrAlreadySignedUp
	}
	activity.Participants = append(activity.Participants, student)
	return nil
}

// RemoveParticipant removes the student from the activity's participant list.
// Returns ErrActivityNotFound for an unknown activity and ErrNotRegistered
// when the student is absent; the catalog is unchanged on failure.
func (s *Store) RemoveParticipant(ctx context.Context, name, student string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	activity, ok := s.activities[name]
	if !ok {
		return domain.ErrActivityNotFound
	}
	for i, p := range activity.Participants {
		if p == student {
			activity.Participants = append(activity.Participants[:i], activity.Participants[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotRegistered
}
