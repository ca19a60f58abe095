package catalog

import (
	"math"
	"slices"
	"sort"
	"strconv"
	"strings"
)

// Catalog is an immutable, indexed set of lessons. The zero value is an
// empty catalog on which every lookup reports not-found.
type Catalog struct {
	version string
	lessons []Lesson // numeric-aware order
	byID    map[string]int
	tasks   map[string]taskRef
}

type taskRef struct {
	lesson int
	task   int
}

// New builds a catalog from lessons, which must already be validated.
func New(version string, lessons []Lesson) *Catalog {
	c := &Catalog{
		version: version,
		lessons: cloneLessons(lessons),
		byID:    make(map[string]int, len(lessons)),
		tasks:   make(map[string]taskRef),
	}

	sort.SliceStable(c.lessons, func(i, j int) bool {
		return orderKey(c.lessons[i].ID) < orderKey(c.lessons[j].ID)
	})

	for i, l := range c.lessons {
		c.byID[l.ID] = i
		for j, t := range l.Tasks {
			c.tasks[t.ID] = taskRef{lesson: i, task: j}
		}
	}
	return c
}

// Empty returns a catalog with no lessons.
func Empty() *Catalog {
	return New("", nil)
}

// orderKey interprets a lesson id as a number. Non-numeric ids, including
// "nan" and "inf", sort as 0.
func orderKey(id string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(id), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// Version returns the declared catalog format version.
func (c *Catalog) Version() string { return c.version }

// Len returns the number of lessons.
func (c *Catalog) Len() int { return len(c.lessons) }

// All returns every lesson in numeric-aware id order.
func (c *Catalog) All() []Lesson {
	return cloneLessons(c.lessons)
}

// Lesson returns a lesson by id.
func (c *Catalog) Lesson(id string) (Lesson, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Lesson{}, false
	}
	return cloneLesson(c.lessons[i]), true
}

// Task returns a task by id.
func (c *Catalog) Task(id string) (Task, bool) {
	ref, ok := c.tasks[id]
	if !ok {
		return Task{}, false
	}
	t := c.lessons[ref.lesson].Tasks[ref.task]
	t.Options = slices.Clone(t.Options)
	return t, true
}

// LessonForTask returns the lesson that owns taskID.
func (c *Catalog) LessonForTask(taskID string) (Lesson, bool) {
	ref, ok := c.tasks[taskID]
	if !ok {
		return Lesson{}, false
	}
	return cloneLesson(c.lessons[ref.lesson]), true
}

func cloneLessons(ls []Lesson) []Lesson {
	if ls == nil {
		return nil
	}
	out := make([]Lesson, len(ls))
	for i, l := range ls {
		out[i] = cloneLesson(l)
	}
	return out
}

func cloneLesson(l Lesson) Lesson {
	tasks := make([]Task, len(l.Tasks))
	for i, t := range l.Tasks {
		t.Options = slices.Clone(t.Options)
		tasks[i] = t
	}
	l.Tasks = tasks
	return l
}
