package domain

import "errors"

var (
	// ErrActivityNotFound is returned when the named activity is not in the catalog.
	ErrActivityNotFound = errors.New("activity not found")
	// ErrAlreadySignedUp indicates the student is already in the participant list.
	ErrAlreadySignedUp = errors.New("student is already signed up")
	// ErrNotRegistered indicates the student is not in the participant list.
	ErrNotRegistered = errors.New("student is not registered for this activity")
)

// Activity is an extracurricular offering in the catalog. Name is the lookup
// key and unique across the catalog. MaxParticipants is advisory; no code
// path rejects a signup for capacity.
type Activity struct {
	Name            string
	Description     string
	Schedule        string
	MaxParticipants int
	Participants    []string
}

// HasParticipant reports whether the student is in the participant list.
// Comparison is exact and case-sensitive.
func (a Activity) HasParticipant(student string) bool {
	for _, p := range a.Participants {
		if p == student {
			return true
		}
	}
	return false
}
