package profile

import "time"

// EventKind identifies which operation changed the profile.
type EventKind string

const (
	EventCreated         EventKind = "created"
	EventAnswerSubmitted EventKind = "answer_submitted"
	EventPurchased       EventKind = "purchased"
	EventEquipped        EventKind = "equipped"
	EventUnequipped      EventKind = "unequipped"
	EventIdentityChanged EventKind = "identity_changed"
	EventPrivacyChanged  EventKind = "privacy_changed"
)

// Event is published after every successful profile mutation.
type Event struct {
	Kind      EventKind
	ProfileID string
	// Unlocked lists achievement ids unlocked by this mutation, in unlock order.
	Unlocked []string
	// Snapshot is the profile state right after the mutation.
	Snapshot  UserProfile
	Timestamp time.Time
}

// Subscriber receives profile change events. Subscribers run synchronously
// after the mutation lock has been released.
type Subscriber func(Event)
