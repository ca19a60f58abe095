package achievements

import "github.com/abhisek/starquest/internal/profile"

// ID identifies an achievement. Logic keys off the ID, never the display name.
type ID string

const (
	FirstSteps    ID = "first-steps"
	FirstLesson   ID = "first-lesson"
	Scholar       ID = "scholar"
	StarCollector ID = "star-collector"
	RisingStar    ID = "rising-star"
	StreakThree   ID = "streak-3"
	Fashionista   ID = "fashionista"
	Sociable      ID = "sociable"
)

// Predicate decides whether a profile qualifies. It must not mutate p.
type Predicate func(p *profile.UserProfile) bool

// Achievement is a named, predicate-gated one-time unlock.
type Achievement struct {
	ID          ID
	Name        string
	Description string
	Icon        string
	Predicate   Predicate
}

// Status pairs an achievement with whether a profile has unlocked it.
type Status struct {
	Achievement
	Unlocked bool
}

// DefaultTable returns the built-in achievements in unlock order.
func DefaultTable() []Achievement {
	return []Achievement{
		{
			ID:          FirstSteps,
			Name:        "Начало пути",
			Description: "Complete 5 tasks",
			Icon:        "🚀",
			Predicate:   func(p *profile.UserProfile) bool { return p.CompletedTaskIDs.Len() >= 5 },
		},
		{
			ID:          FirstLesson,
			Name:        "Первый урок",
			Description: "Finish a whole lesson",
			Icon:        "📘",
			Predicate:   func(p *profile.UserProfile) bool { return p.CompletedLessonIDs.Len() >= 1 },
		},
		{
			ID:          Scholar,
			Name:        "Знаток",
			Description: "Finish 3 lessons",
			Icon:        "🎓",
			Predicate:   func(p *profile.UserProfile) bool { return p.CompletedLessonIDs.Len() >= 3 },
		},
		{
			ID:          StarCollector,
			Name:        "Звездочёт",
			Description: "Hold 100 stars at once",
			Icon:        "⭐",
			Predicate:   func(p *profile.UserProfile) bool { return p.Stars >= 100 },
		},
		{
			ID:          RisingStar,
			Name:        "Восходящая звезда",
			Description: "Earn 100 rating points",
			Icon:        "📈",
			Predicate:   func(p *profile.UserProfile) bool { return p.RatingPoints >= 100 },
		},
		{
			ID:          StreakThree,
			Name:        "Три дня подряд",
			Description: "Practice 3 days in a row",
			Icon:        "🔥",
			Predicate:   func(p *profile.UserProfile) bool { return p.Streak >= 3 },
		},
		{
			ID:          Fashionista,
			Name:        "Модник",
			Description: "Buy your first accessory",
			Icon:        "🎩",
			Predicate:   func(p *profile.UserProfile) bool { return p.Inventory.Len() >= 1 },
		},
		{
			ID:          Sociable,
			Name:        "Душа компании",
			Description: "Have 3 friends",
			Icon:        "🤝",
			Predicate:   func(p *profile.UserProfile) bool { return p.FriendIDs.Len() >= 3 },
		},
	}
}
