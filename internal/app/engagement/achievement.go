// Package engagement implements the EcoTrack achievement system.
// Four fixed badges, each with a stat-based predicate checked against a
// UserProgress snapshot. Unlocks are sticky: once recorded, a badge stays
// unlocked even if the qualifying metric later regresses.
package engagement

import (
	"fmt"

	"github.com/ecotrack-app/ecotrack/internal/domain"
	"github.com/ecotrack-app/ecotrack/internal/infra/catalog"
)

// Engine is the stateless achievement evaluator.
type Engine struct {
	definitions []domain.AchievementDef
	catalogSize int
}

// NewEngine creates an engine with all badge definitions and the current
// practice-catalog size (for the all-practices rule).
func NewEngine() *Engine {
	return &Engine{
		definitions: AllAchievements(),
		catalogSize: catalog.PracticeCount(),
	}
}

// Evaluate checks every badge against the progress snapshot. Newly satisfied
// badges are appended to progress.Achievements (the sticky unlock record) and
// returned in rule order. Already-unlocked badges are skipped, so repeated
// evaluation is idempotent.
func (e *Engine) Evaluate(p *domain.UserProgress) []domain.AchievementDef {
	stats := e.stats(p)

	var newlyUnlocked []domain.AchievementDef
	for _, def := range e.definitions {
		if p.HasAchievement(def.ID) {
			continue
		}
		if def.Predicate != nil && def.Predicate(stats) {
			p.Achievements = append(p.Achievements, def.ID)
			newlyUnlocked = append(newlyUnlocked, def)
		}
	}
	return newlyUnlocked
}

// Definitions returns all badge definitions (for display).
func (e *Engine) Definitions() []domain.AchievementDef {
	return e.definitions
}

// RequirementText renders the live progress line shown on a locked badge
// card, e.g. "4/6 practices active".
func (e *Engine) RequirementText(id domain.AchievementID, p *domain.UserProgress) string {
	stats := e.stats(p)
	switch id {
	case domain.AchSustainabilityChampion:
		return fmt.Sprintf("%d/%d practices active", stats.ActivePractices, stats.CatalogSize)
	case domain.AchClimateScholar:
		if stats.EvaluationScore == nil {
			return "evaluation pending"
		}
		return fmt.Sprintf("%d%% scored", *stats.EvaluationScore)
	case domain.AchCarbonGuardian:
		return fmt.Sprintf("%.1f kg CO₂ avoided", stats.TotalCO2Reduced)
	case domain.AchEcoAdvocate:
		return fmt.Sprintf("%d engagement points", stats.TotalEngagementPoints)
	default:
		return ""
	}
}

func (e *Engine) stats(p *domain.UserProgress) domain.ProgressStats {
	return domain.ProgressStats{
		ActivePractices:       len(p.CompletedPracticeIDs),
		CatalogSize:           e.catalogSize,
		EvaluationScore:       p.EvaluationScore,
		TotalCO2Reduced:       p.TotalCO2Reduced,
		TotalEngagementPoints: p.TotalEngagementPoints,
	}
}

// ─── Achievement Definitions ────────────────────────────────────────────────
// Rule order matters: unlocks are reported in this order.

// AllAchievements returns the full badge catalog.
func AllAchievements() []domain.AchievementDef {
	return []domain.AchievementDef{
		{
			ID:          domain.AchSustainabilityChampion,
			Title:       "Sustainability Champion",
			Description: "Adopt every sustainable practice consistently",
			Icon:        "🏆",
			Predicate: func(s domain.ProgressStats) bool {
				return s.ActivePractices == s.CatalogSize
			},
		},
		{
			ID:          domain.AchClimateScholar,
			Title:       "Climate Scholar",
			Description: "Show exceptional understanding in the knowledge evaluation",
			Icon:        "🧠",
			Predicate: func(s domain.ProgressStats) bool {
				return s.EvaluationScore != nil && *s.EvaluationScore >= 90
			},
		},
		{
			ID:          domain.AchCarbonGuardian,
			Title:       "Carbon Guardian",
			Description: "Avoid more than 100 kg of CO₂ through sustainable practices",
			Icon:        "🌱",
			Predicate: func(s domain.ProgressStats) bool {
				return s.TotalCO2Reduced >= 100
			},
		},
		{
			ID:          domain.AchEcoAdvocate,
			Title:       "Eco Advocate",
			Description: "Keep engagement high and consistent over time",
			Icon:        "⭐",
			Predicate: func(s domain.ProgressStats) bool {
				return s.TotalEngagementPoints >= 500
			},
		},
	}
}
