package session

// Summary holds the data shown when a session ends.
type Summary struct {
	LessonID  string
	Total     int
	Answered  int
	Correct   int
	Accuracy  float64
	Completed bool // cursor reached the end of the run
}

// Summarize builds a Summary from the current session state.
func Summarize(s *Session) Summary {
	var accuracy float64
	if s.answered > 0 {
		accuracy = float64(s.correctCount) / float64(s.answered)
	}
	return Summary{
		LessonID:  s.lessonID,
		Total:     len(s.tasks),
		Answered:  s.answered,
		Correct:   s.correctCount,
		Accuracy:  accuracy,
		Completed: s.Done(),
	}
}
