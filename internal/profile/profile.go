package profile

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// HandlePrefix is the marker every handle starts with.
const HandlePrefix = "@"

// DefaultAvatarSymbol is used when the user has not picked an image.
const DefaultAvatarSymbol = "person.circle"

// Avatar references either a picked image blob or a symbolic default.
type Avatar struct {
	Image  []byte `json:"image,omitempty"`
	Symbol string `json:"symbol,omitempty"`
}

// IsImage reports whether the avatar carries a picked image.
func (a Avatar) IsImage() bool {
	return len(a.Image) > 0
}

// Privacy flags gate what other viewers see. The engine stores them only.
type Privacy struct {
	HideAchievements bool `json:"hide_achievements"`
	HideFriends      bool `json:"hide_friends"`
	HideStats        bool `json:"hide_stats"`
}

// UserProfile is the durable per-user record of identity, currency,
// progress, social links and cosmetics.
type UserProfile struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Handle    string `json:"handle"`
	Avatar    Avatar `json:"avatar"`

	Stars         int    `json:"stars"`
	RatingPoints  int    `json:"rating_points"`
	Streak        int    `json:"streak"`
	LastActiveDay string `json:"last_active_day,omitempty"` // YYYY-MM-DD

	CompletedTaskIDs   IDSet `json:"completed_task_ids"`
	CompletedLessonIDs IDSet `json:"completed_lesson_ids"`

	FriendIDs               IDSet `json:"friend_ids"`
	PendingOutgoingRequests IDSet `json:"pending_outgoing_requests"`
	IncomingFriendRequests  IDSet `json:"incoming_friend_requests"`

	UnlockedAchievementIDs IDSet `json:"unlocked_achievement_ids"`

	Inventory           IDSet `json:"inventory"`
	EquippedAccessories IDSet `json:"equipped_accessories"`

	Privacy Privacy `json:"privacy"`

	CreatedAt time.Time `json:"created_at"`
}

// New creates a profile with a fresh id and a default avatar.
func New(firstName, lastName, handle string) *UserProfile {
	return &UserProfile{
		ID:        uuid.New().String(),
		FirstName: strings.TrimSpace(firstName),
		LastName:  strings.TrimSpace(lastName),
		Handle:    NormalizeHandle(handle),
		Avatar:    Avatar{Symbol: DefaultAvatarSymbol},
		CreatedAt: time.Now().UTC(),
	}
}

// NormalizeHandle trims whitespace and enforces the handle prefix.
// An empty handle stays empty.
func NormalizeHandle(h string) string {
	h = strings.TrimSpace(h)
	h = strings.TrimLeft(h, HandlePrefix)
	if h == "" {
		return ""
	}
	return HandlePrefix + h
}

// SameHandle compares handles case-insensitively after normalization.
func SameHandle(a, b string) bool {
	return strings.EqualFold(NormalizeHandle(a), NormalizeHandle(b))
}

// DisplayName joins the name parts.
func (p *UserProfile) DisplayName() string {
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}

// SetHandle assigns a normalized handle.
func (p *UserProfile) SetHandle(h string) {
	p.Handle = NormalizeHandle(h)
}

// Clone returns a deep copy safe to hand to other goroutines.
func (p *UserProfile) Clone() UserProfile {
	c := *p
	if p.Avatar.Image != nil {
		c.Avatar.Image = append([]byte(nil), p.Avatar.Image...)
	}
	c.CompletedTaskIDs = p.CompletedTaskIDs.Clone()
	c.CompletedLessonIDs = p.CompletedLessonIDs.Clone()
	c.FriendIDs = p.FriendIDs.Clone()
	c.PendingOutgoingRequests = p.PendingOutgoingRequests.Clone()
	c.IncomingFriendRequests = p.IncomingFriendRequests.Clone()
	c.UnlockedAchievementIDs = p.UnlockedAchievementIDs.Clone()
	c.Inventory = p.Inventory.Clone()
	c.EquippedAccessories = p.EquippedAccessories.Clone()
	return c
}

// TouchStreak records activity at now. Activity on the day after the last
// active day extends the streak, a gap restarts it at 1, and repeated
// activity on the same day leaves it unchanged.
func (p *UserProfile) TouchStreak(now time.Time) {
	today := now.Format(time.DateOnly)
	if p.LastActiveDay == today {
		return
	}
	yesterday := now.AddDate(0, 0, -1).Format(time.DateOnly)
	if p.LastActiveDay == yesterday {
		p.Streak++
	} else {
		p.Streak = 1
	}
	p.LastActiveDay = today
}
