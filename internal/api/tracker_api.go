package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ecotrack-app/ecotrack/internal/app/footprint"
	"github.com/ecotrack-app/ecotrack/internal/app/tracker"
	"github.com/ecotrack-app/ecotrack/internal/domain"
	"github.com/ecotrack-app/ecotrack/internal/infra/catalog"
)

// ─── Tracker API (/api/*) ────────────────────────────────────────────────────
// A save failure never fails the request: the mutation has been applied
// in memory, so the handler responds with the result and persisted=false.

// --- /api/practices (catalog with active flags) ---

func (s *Server) handleListPractices(w http.ResponseWriter, r *http.Request) {
	sum := s.session.Progress()

	type practiceView struct {
		ID           string  `json:"id"`
		Title        string  `json:"title"`
		Description  string  `json:"description"`
		Impact       string  `json:"impact"`
		Category     string  `json:"category"`
		Difficulty   string  `json:"difficulty"`
		CO2Reduction float64 `json:"co2_reduction"`
		Completed    bool    `json:"completed"`
	}

	out := make([]practiceView, len(catalog.Practices))
	for i, pr := range catalog.Practices {
		out[i] = practiceView{
			ID:           pr.ID,
			Title:        pr.Title,
			Description:  pr.Description,
			Impact:       pr.Impact,
			Category:     pr.Category,
			Difficulty:   pr.Difficulty,
			CO2Reduction: pr.CO2Reduction,
			Completed:    sum.Progress.HasPractice(pr.ID),
		}
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"practices": out,
	})
}

// --- /api/practices/{id}/toggle ---

func (s *Server) handleTogglePractice(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	res, err := s.session.TogglePractice(id)
	if errors.Is(err, domain.ErrUnknownPractice) {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, struct {
		*tracker.ToggleResult
		Persisted bool `json:"persisted"`
	}{res, err == nil})
}

// --- /api/quiz/start ---

func (s *Server) handleStartQuiz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.session.StartQuiz())
}

// --- /api/quiz/answer ---

type answerRequest struct {
	SelectedIndex int `json:"selected_index"`
}

func (s *Server) handleAnswerQuiz(w http.ResponseWriter, r *http.Request) {
	var req answerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	res, err := s.session.AnswerCurrentQuestion(req.SelectedIndex)
	if errors.Is(err, domain.ErrNoActiveQuiz) || errors.Is(err, domain.ErrQuizComplete) {
		writeError(w, http.StatusConflict, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, struct {
		*tracker.AnswerResult
		Persisted bool `json:"persisted"`
	}{res, err == nil})
}

// --- /api/quiz/advance ---

func (s *Server) handleAdvanceQuiz(w http.ResponseWriter, r *http.Request) {
	res, err := s.session.AdvanceQuiz()
	if errors.Is(err, domain.ErrNoActiveQuiz) {
		writeError(w, http.StatusConflict, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, struct {
		*tracker.AdvanceResult
		Persisted bool `json:"persisted"`
	}{res, err == nil})
}

// --- /api/footprint ---

func (s *Server) handleFootprint(w http.ResponseWriter, r *http.Request) {
	var in footprint.Input
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, s.session.SubmitFootprintCalculation(in))
}

// --- /api/progress ---

func (s *Server) handleProgress(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.session.Progress())
}

// --- /api/achievements ---

func (s *Server) handleAchievements(w http.ResponseWriter, r *http.Request) {
	sum := s.session.Progress()
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"achievements": sum.Achievements,
	})
}

// --- /api/streak ---

type streakRequest struct {
	Days int `json:"days"`
}

func (s *Server) handleSetStreak(w http.ResponseWriter, r *http.Request) {
	var req streakRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	err := s.session.SetStreakDays(req.Days)
	if err != nil && !errors.Is(err, domain.ErrPersistenceWrite) {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"streak_days": req.Days,
		"persisted":   err == nil,
	})
}
