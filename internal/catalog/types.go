package catalog

// Task is a single exercise inside a lesson.
type Task struct {
	ID          string   `json:"id"`
	Category    string   `json:"category"`
	Prompt      string   `json:"prompt"`
	Options     []string `json:"options,omitempty"` // empty means free-form
	Answer      string   `json:"answer"`
	Explanation string   `json:"explanation,omitempty"`
	Stars       int      `json:"stars"`
	Rating      int      `json:"rating"`
}

// IsFreeForm reports whether the task has no fixed answer options.
func (t Task) IsFreeForm() bool {
	return len(t.Options) == 0
}

// Lesson is an ordered group of tasks.
type Lesson struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Tasks []Task `json:"tasks"`
}

// TotalStars is the sum of stars over all tasks.
func (l Lesson) TotalStars() int {
	total := 0
	for _, t := range l.Tasks {
		total += t.Stars
	}
	return total
}

// TotalRating is the sum of rating points over all tasks.
func (l Lesson) TotalRating() int {
	total := 0
	for _, t := range l.Tasks {
		total += t.Rating
	}
	return total
}

// TaskIDs returns the ids of every task in catalog order.
func (l Lesson) TaskIDs() []string {
	ids := make([]string, len(l.Tasks))
	for i, t := range l.Tasks {
		ids[i] = t.ID
	}
	return ids
}

// document is the on-disk catalog layout.
type document struct {
	Version string   `json:"version"`
	Lessons []Lesson `json:"lessons"`
}
