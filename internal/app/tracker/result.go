package tracker

import (
	"fmt"

	"github.com/ecotrack-app/ecotrack/internal/domain"
)

// ToggleResult reports the outcome of a practice toggle.
type ToggleResult struct {
	PracticeID      string                  `json:"practice_id"`
	Title           string                  `json:"title"`
	Completed       bool                    `json:"completed"`
	CO2Delta        float64                 `json:"co2_delta"`
	PointsDelta     int                     `json:"points_delta"`
	ActivePractices int                     `json:"active_practices"`
	NewAchievements []domain.AchievementDef `json:"new_achievements"`
}

// QuestionView is one quiz question as presented to the user. It carries
// no answer key: the correct index is only revealed by answering.
type QuestionView struct {
	SessionID  string   `json:"session_id"`
	QuestionID string   `json:"question_id"`
	Index      int      `json:"index"`
	Total      int      `json:"total"`
	Question   string   `json:"question"`
	Options    []string `json:"options"`
}

// AnswerResult is the graded outcome of one answer.
type AnswerResult struct {
	SessionID     string `json:"session_id"`
	QuestionIndex int    `json:"question_index"`
	Correct       bool   `json:"correct"`
	CorrectIndex  int    `json:"correct_index"`
	Explanation   string `json:"explanation"`
	PointsDelta   int    `json:"points_delta"`
}

// AdvanceResult is either the next question or, on the final advance, the
// completed evaluation.
type AdvanceResult struct {
	Completed bool          `json:"completed"`
	Next      *QuestionView `json:"next,omitempty"`
	Final     *QuizFinal    `json:"final,omitempty"`
}

// QuizFinal summarizes a finished evaluation pass.
type QuizFinal struct {
	ScorePercent         int                     `json:"score_percent"`
	CorrectCount         int                     `json:"correct_count"`
	QuestionCount        int                     `json:"question_count"`
	CompletedEvaluations int                     `json:"completed_evaluations"`
	Analysis             string                  `json:"analysis"`
	Recommendation       string                  `json:"recommendation"`
	NewAchievements      []domain.AchievementDef `json:"new_achievements"`
}

// AchievementStatus pairs a badge definition with the user's standing on it.
type AchievementStatus struct {
	Def         domain.AchievementDef `json:"def"`
	Unlocked    bool                  `json:"unlocked"`
	Requirement string                `json:"requirement"`
}

// Summary is the dashboard snapshot of the whole record.
type Summary struct {
	Progress        domain.UserProgress `json:"progress"`
	ActivePractices int                 `json:"active_practices"`
	CatalogSize     int                 `json:"catalog_size"`
	AdoptionPct     float64             `json:"adoption_pct"`
	AdoptionMessage string              `json:"adoption_message"`
	Achievements    []AchievementStatus `json:"achievements"`
}

// adoptionMessage renders the tiered habit-adoption line for the dashboard.
func adoptionMessage(active, total int, pct float64) string {
	switch {
	case pct == 100:
		return fmt.Sprintf("Full implementation: all %d sustainable practices active", total)
	case pct >= 75:
		return fmt.Sprintf("Advanced adoption: %d/%d sustainable practices", active, total)
	case pct >= 50:
		return fmt.Sprintf("Solid progress: %d/%d sustainable practices", active, total)
	case pct >= 25:
		return fmt.Sprintf("Early development: %d/%d sustainable practices", active, total)
	default:
		return fmt.Sprintf("Just getting started: %d/%d sustainable practices", active, total)
	}
}

// feedbackFor maps a final evaluation score onto the analysis and
// recommendation pair shown with the result.
func feedbackFor(scorePercent int) (analysis, recommendation string) {
	switch {
	case scorePercent >= 90:
		return "Exceptional understanding of climate science and sustainability.",
			"Consider leadership roles in environmental initiatives and community education."
	case scorePercent >= 75:
		return "Solid understanding with a few areas left to deepen.",
			"Explore the scientific literature on the concepts you missed; IPCC summary reports are a good next step."
	case scorePercent >= 60:
		return "Adequate foundations that would benefit from structured strengthening.",
			"Set aside weekly time with an introductory climate-science resource and retake the evaluation."
	default:
		return "Significant opportunity to build baseline climate knowledge.",
			"Start with beginner-friendly material on climate fundamentals, then retake the evaluation to track improvement."
	}
}
