package catalog

import (
	"fmt"
	"slices"
	"strings"

	"golang.org/x/mod/semver"
)

// SupportedMajor is the catalog format major version this build reads.
const SupportedMajor = "v1"

// checkVersion accepts any valid semver whose major version is supported.
func checkVersion(v string) error {
	if !semver.IsValid(v) {
		return fmt.Errorf("invalid catalog version %q", v)
	}
	if major := semver.Major(v); major != SupportedMajor {
		return fmt.Errorf("unsupported catalog version %s (want %s.x)", v, SupportedMajor)
	}
	return nil
}

// validateLessons performs structural checks the schema cannot express.
// Returns a combined error describing all problems found, or nil if valid.
func validateLessons(lessons []Lesson) error {
	var errs []string

	lessonIDs := make(map[string]bool, len(lessons))
	taskIDs := make(map[string]string)

	for _, l := range lessons {
		if l.ID == "" {
			errs = append(errs, "lesson with empty ID")
		}
		if lessonIDs[l.ID] {
			errs = append(errs, fmt.Sprintf("duplicate lesson ID: %q", l.ID))
		}
		lessonIDs[l.ID] = true

		for _, t := range l.Tasks {
			if t.ID == "" {
				errs = append(errs, fmt.Sprintf("lesson %q has a task with empty ID", l.ID))
				continue
			}
			if owner, dup := taskIDs[t.ID]; dup {
				errs = append(errs, fmt.Sprintf("duplicate task ID %q in lessons %q and %q", t.ID, owner, l.ID))
			}
			taskIDs[t.ID] = l.ID

			if t.Stars < 0 {
				errs = append(errs, fmt.Sprintf("task %q: stars must be >= 0, got %d", t.ID, t.Stars))
			}
			if t.Rating < 0 {
				errs = append(errs, fmt.Sprintf("task %q: rating must be >= 0, got %d", t.ID, t.Rating))
			}
			if !t.IsFreeForm() && !slices.Contains(t.Options, t.Answer) {
				errs = append(errs, fmt.Sprintf("task %q: answer %q is not one of its options", t.ID, t.Answer))
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("catalog validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
