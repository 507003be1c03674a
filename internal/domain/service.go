// Package domain defines the business logic for the enrollment service.
package domain

import (
	"context"
	"fmt"
	"time"
)

// CatalogStore captures the catalog operations the engine needs. The
// participant mutations perform lookup, membership guard, and mutate as a
// single atomic unit with respect to other calls on the same activity.
type CatalogStore interface {
	List(ctx context.Context) (map[string]Activity, error)
	Get(ctx context.Context, name string) (*Activity, error)
	AddParticipant(ctx context.Context, name, student string) error
	RemoveParticipant(ctx context.Context, name, student string) error
}

// ChangePublisher receives a notification after each successful enrollment
// change. Implementations must not block the caller's request path.
type ChangePublisher interface {
	PublishEnrollmentChanged(activity, student, action string, occurredAt time.Time)
}

// Confirmation is the success payload for signup and unregister.
type Confirmation struct {
	Activity string
	Student  string
	Message  string
}

// Service orchestrates enrollment transitions against the catalog store.
type Service struct {
	store     CatalogStore
	publisher ChangePublisher
}

// NewService constructs a Service. publisher may be nil to disable event
// notifications.
func NewService(store CatalogStore, publisher ChangePublisher) *Service {
	return &Service{store: store, publisher: publisher}
}

// ListActivities returns the full catalog view. Pure read, never fails in
// the in-memory implementation.
func (s *Service) ListActivities(ctx context.Context) (map[string]Activity, error) {
	return s.store.List(ctx)
}

// Signup adds the student to the activity's participant list. Fails with
// ErrActivityNotFound for an unknown activity and ErrAlreadySignedUp for a
// duplicate; both leave the catalog untouched. Not idempotent.
func (s *Service) Signup(ctx context.Context, activity, student string) (*Confirmation, error) {
	if err := s.store.AddParticipant(ctx, activity, student); err != nil {
		return nil, err
	}
	s.notify(activity, student, "signed_up")
	return &Confirmation{
		Activity: activity,
		Student:  student,
		Message:  fmt.Sprintf("Signed up %s for %s", student, activity),
	}, nil
}

// Unregister removes the student from the activity's participant list.
// Fails with ErrActivityNotFound for an unknown activity and
// ErrNotRegistered when the student is absent; both leave the catalog
// untouched. Symmetric to Signup, not idempotent.
func (s *Service) Unregister(ctx context.Context, activity, student string) (*Confirmation, error) {
	if err := s.store.RemoveParticipant(ctx, activity, student); err != nil {
		return nil, err
	}
	s.notify(activity, student, "removed")
	return &Confirmation{
		Activity: activity,
		Student:  student,
		Message:  fmt.Sprintf("Removed %s from %s", student, activity),
	}, nil
}

func (s *Service) notify(activity, student, action string) {
	if s.publisher == nil {
		return
	}
	s.publisher.PublishEnrollmentChanged(activity, student, action, time.Now().UTC())
}
