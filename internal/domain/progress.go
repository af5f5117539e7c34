// Package domain defines the EcoTrack data model.
// UserProgress is the single persisted entity; everything else is either
// static catalog data or ephemeral per-operation state.
package domain

import "time"

// UserProgress is the user's persistent progress record.
// JSON field names match the on-disk record format, version 1.x.
type UserProgress struct {
	CompletedPracticeIDs  []string        `json:"completedHabits"`
	StreakDays            int             `json:"streakDays"`
	TotalCO2Reduced       float64         `json:"totalCO2Reduced"`
	EvaluationScore       *int            `json:"evaluationScore"`
	Achievements          []AchievementID `json:"achievements"`
	TotalEngagementPoints int             `json:"totalEngagementPoints"`
	CompletedEvaluations  int             `json:"completedEvaluations"`
	LastActiveDate        string          `json:"lastActiveDate,omitempty"`
	LastSaved             string          `json:"lastSaved,omitempty"`
	Version               string          `json:"version,omitempty"`
}

// DefaultProgress returns a fully-defaulted record for first launch.
func DefaultProgress() UserProgress {
	return UserProgress{
		CompletedPracticeIDs: []string{},
		Achievements:         []AchievementID{},
	}
}

// HasPractice reports whether the practice is currently active.
func (p *UserProgress) HasPractice(id string) bool {
	for _, got := range p.CompletedPracticeIDs {
		if got == id {
			return true
		}
	}
	return false
}

// HasAchievement reports whether the achievement has been unlocked.
func (p *UserProgress) HasAchievement(id AchievementID) bool {
	for _, got := range p.Achievements {
		if got == id {
			return true
		}
	}
	return false
}

// TouchActive stamps the last-activity timestamp.
func (p *UserProgress) TouchActive(now time.Time) {
	p.LastActiveDate = now.Format(time.RFC3339)
}

// QuizSession is the ephemeral state of one quiz pass. It is created by
// StartQuiz, discarded on completion, and never persisted — only its final
// score is folded into UserProgress.
type QuizSession struct {
	ID            string `json:"id"`
	QuestionIndex int    `json:"question_index"`
	CorrectCount  int    `json:"correct_count"`
}
