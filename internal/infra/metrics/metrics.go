// Package metrics provides Prometheus metrics for EcoTrack — counters and
// gauges for practice toggles, quiz activity, footprint calculations,
// achievements, and persistence health.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// ─── Practices ──────────────────────────────────────────────────────────────

// PracticeToggles tracks toggle operations by resulting state.
var PracticeToggles = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "ecotrack",
	Name:      "practice_toggles_total",
	Help:      "Total practice toggle operations by resulting state.",
}, []string{"state"})

// ActivePractices tracks the number of currently active practices.
var ActivePractices = promauto.NewGauge(prometheus.GaugeOpts{
	Namespace: "ecotrack",
	Name:      "active_practices",
	Help:      "Number of currently active sustainability practices.",
})

// CO2ReducedKg tracks the current daily CO2 reduction total.
var CO2ReducedKg = promauto.NewGauge(prometheus.GaugeOpts{
	Namespace: "ecotrack",
	Name:      "co2_reduced_kg",
	Help:      "Current total daily CO2 reduction from active practices (kg).",
})

// EngagementPoints tracks the current engagement-point balance.
var EngagementPoints = promauto.NewGauge(prometheus.GaugeOpts{
	Namespace: "ecotrack",
	Name:      "engagement_points",
	Help:      "Current engagement-point balance.",
})

// ─── Quiz ───────────────────────────────────────────────────────────────────

// QuizAnswers tracks answered questions by correctness.
var QuizAnswers = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "ecotrack",
	Name:      "quiz_answers_total",
	Help:      "Total quiz answers by result.",
}, []string{"result"})

// QuizCompleted tracks finished quiz passes.
var QuizCompleted = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "ecotrack",
	Name:      "quiz_completed_total",
	Help:      "Total completed quiz passes.",
})

// ─── Footprint ──────────────────────────────────────────────────────────────

// FootprintCalculations tracks calculator submissions by result band.
var FootprintCalculations = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "ecotrack",
	Name:      "footprint_calculations_total",
	Help:      "Total footprint calculations by result band.",
}, []string{"band"})

// ─── Achievements ───────────────────────────────────────────────────────────

// AchievementsUnlocked tracks badge unlocks by id.
var AchievementsUnlocked = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "ecotrack",
	Name:      "achievements_unlocked_total",
	Help:      "Total achievement unlocks.",
}, []string{"id"})

// ─── Persistence ────────────────────────────────────────────────────────────

// SaveFailures tracks failed progress writes.
var SaveFailures = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "ecotrack",
	Name:      "save_failures_total",
	Help:      "Total failed progress-record writes.",
})
