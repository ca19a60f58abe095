// Package metrics counts engine activity with Prometheus collectors.
package metrics

import (
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

// Answer results.
const (
	ResultCorrect   = "correct"
	ResultIncorrect = "incorrect"
	ResultRepeat    = "repeat" // correct, but the task was already completed
)

// Metrics groups the engine counters. A nil *Metrics is valid and records
// nothing.
type Metrics struct {
	answers      *prometheus.CounterVec
	stars        prometheus.Counter
	rating       prometheus.Counter
	lessons      prometheus.Counter
	purchases    *prometheus.CounterVec
	rejections   *prometheus.CounterVec
	achievements *prometheus.CounterVec
	saveFailures prometheus.Counter
}

// New creates the counters and registers them with reg. A nil reg leaves
// them unregistered.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		answers: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "starquest_answers_total",
				Help: "Total number of submitted answers",
			},
			[]string{"result"},
		),
		stars: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "starquest_stars_awarded_total",
			Help: "Stars credited for first-time correct answers",
		}),
		rating: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "starquest_rating_awarded_total",
			Help: "Rating points credited for first-time correct answers",
		}),
		lessons: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "starquest_lessons_completed_total",
			Help: "Lessons completed",
		}),
		purchases: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "starquest_purchases_total",
				Help: "Accessories bought",
			},
			[]string{"category"},
		),
		rejections: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "starquest_economy_rejections_total",
				Help: "Shop operations refused because of the profile state",
			},
			[]string{"operation"},
		),
		achievements: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "starquest_achievements_unlocked_total",
				Help: "Achievements unlocked",
			},
			[]string{"achievement"},
		),
		saveFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "starquest_profile_save_failures_total",
			Help: "Profile snapshots the repository failed to store",
		}),
	}
	if reg != nil {
		reg.MustRegister(
			m.answers, m.stars, m.rating, m.lessons,
			m.purchases, m.rejections, m.achievements, m.saveFailures,
		)
	}
	return m
}

// Answer records one submission and the rewards it produced.
func (m *Metrics) Answer(correct, awarded bool, stars, rating int) {
	if m == nil {
		return
	}
	switch {
	case !correct:
		m.answers.WithLabelValues(ResultIncorrect).Inc()
	case !awarded:
		m.answers.WithLabelValues(ResultRepeat).Inc()
	default:
		m.answers.WithLabelValues(ResultCorrect).Inc()
		m.stars.Add(float64(stars))
		m.rating.Add(float64(rating))
	}
}

// LessonCompleted records a newly completed lesson.
func (m *Metrics) LessonCompleted() {
	if m == nil {
		return
	}
	m.lessons.Inc()
}

// Purchase records a successful purchase.
func (m *Metrics) Purchase(category string) {
	if m == nil {
		return
	}
	m.purchases.WithLabelValues(category).Inc()
}

// Rejected records a refused purchase, equip or unequip.
func (m *Metrics) Rejected(operation string) {
	if m == nil {
		return
	}
	m.rejections.WithLabelValues(operation).Inc()
}

// Unlocked records achievement unlocks.
func (m *Metrics) Unlocked(ids ...string) {
	if m == nil {
		return
	}
	for _, id := range ids {
		m.achievements.WithLabelValues(id).Inc()
	}
}

// SaveFailed records a failed profile save.
func (m *Metrics) SaveFailed() {
	if m == nil {
		return
	}
	m.saveFailures.Inc()
}

// Dump writes every family gathered from g in the Prometheus text format.
func Dump(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
	}
	return nil
}
