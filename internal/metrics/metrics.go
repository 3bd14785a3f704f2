// Package metrics exposes prometheus collectors for the chore engine.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "chores"

// Metrics groups the engine collectors. A nil *Metrics records nothing.
type Metrics struct {
	rotations          *prometheus.CounterVec
	assignmentsCreated prometheus.Counter
	rotationSkips      *prometheus.CounterVec
	lateMarked         prometheus.Counter
	progressUpdates    *prometheus.CounterVec
	ratings            *prometheus.CounterVec
}

// New creates the collectors and registers them on reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		rotations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rotations_total",
			Help:      "Rotation runs by outcome.",
		}, []string{"outcome"}),
		assignmentsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "assignments_created_total",
			Help:      "Assignments created by rotation.",
		}),
		rotationSkips: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rotation_skips_total",
			Help:      "Chores left out of a rotation by reason.",
		}, []string{"reason"}),
		lateMarked: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "late_marked_total",
			Help:      "Assignments flagged late.",
		}),
		progressUpdates: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "progress_updates_total",
			Help:      "Sub-task progress updates by kind.",
		}, []string{"kind"}),
		ratings: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ratings_total",
			Help:      "Stored ratings by kind.",
		}, []string{"kind"}),
	}
	reg.MustRegister(m.rotations, m.assignmentsCreated, m.rotationSkips, m.lateMarked, m.progressUpdates, m.ratings)
	return m
}

// Rotation records a rotation run.
func (m *Metrics) Rotation(err error, created int, skipReasons []string) {
	if m == nil {
		return
	}
	if err != nil {
		m.rotations.WithLabelValues("failure").Inc()
		return
	}
	m.rotations.WithLabelValues("success").Inc()
	m.assignmentsCreated.Add(float64(created))
	for _, r := range skipReasons {
		m.rotationSkips.WithLabelValues(r).Inc()
	}
}

// LateMarked records newly flagged assignments.
func (m *Metrics) LateMarked(n int64) {
	if m == nil {
		return
	}
	m.lateMarked.Add(float64(n))
}

// Progress records a sub-task update of the given kind.
func (m *Metrics) Progress(kind string) {
	if m == nil {
		return
	}
	m.progressUpdates.WithLabelValues(kind).Inc()
}

// Rating records a stored rating; created distinguishes inserts from overwrites.
func (m *Metrics) Rating(created bool) {
	if m == nil {
		return
	}
	kind := "updated"
	if created {
		kind = "created"
	}
	m.ratings.WithLabelValues(kind).Inc()
}
