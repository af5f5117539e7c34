// Package tracker implements the user session: the single orchestrator
// through which every user action flows. Each operation mutates the
// in-memory progress record, runs achievement evaluation, persists, and
// returns a result object for the presentation layer to render.
package tracker

import (
	"fmt"
	"log"
	"math"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ecotrack-app/ecotrack/internal/app/engagement"
	"github.com/ecotrack-app/ecotrack/internal/app/footprint"
	"github.com/ecotrack-app/ecotrack/internal/app/progress"
	"github.com/ecotrack-app/ecotrack/internal/domain"
	"github.com/ecotrack-app/ecotrack/internal/infra/catalog"
	"github.com/ecotrack-app/ecotrack/internal/infra/metrics"
)

// Session owns the in-memory UserProgress record for the lifetime of the
// process. The in-memory copy is authoritative: a failed save never
// discards or rolls back state. Operations are serialized by a mutex since
// the HTTP surface can deliver them concurrently.
type Session struct {
	mu       sync.Mutex
	store    *progress.Store
	engine   *engagement.Engine
	progress domain.UserProgress
	quiz     *domain.QuizSession
}

// NewSession loads the persisted record, normalizes it against the practice
// catalog, and returns a ready session.
func NewSession(store *progress.Store) *Session {
	s := &Session{
		store:    store,
		engine:   engagement.NewEngine(),
		progress: store.Load(),
	}
	s.normalize()
	s.syncGauges()
	return s
}

// normalize enforces the record invariants against the catalog: unknown or
// duplicate practice ids are dropped and the CO₂ total is recomputed as the
// sum over the active set, so stored drift can never survive a restart.
func (s *Session) normalize() {
	seen := map[string]bool{}
	kept := make([]string, 0, len(s.progress.CompletedPracticeIDs))
	total := 0.0
	for _, id := range s.progress.CompletedPracticeIDs {
		pr := catalog.LookupPractice(id)
		if pr == nil || seen[id] {
			log.Printf("[tracker] dropping stale practice id %q from record", id)
			continue
		}
		seen[id] = true
		kept = append(kept, id)
		total += pr.CO2Reduction
	}
	s.progress.CompletedPracticeIDs = kept
	s.progress.TotalCO2Reduced = total

	if s.progress.EvaluationScore != nil {
		if v := *s.progress.EvaluationScore; v < 0 || v > 100 {
			log.Printf("[tracker] dropping out-of-range evaluation score %d", v)
			s.progress.EvaluationScore = nil
		}
	}
}

// Progress returns a snapshot summary of the current record. The copy is
// detached: callers cannot mutate session state through it.
func (s *Session) Progress() Summary {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.summary()
}

// TogglePractice activates or deactivates a practice. Toggling is its own
// inverse: applying it twice returns the record to its exact prior state.
// Returns ErrUnknownPractice for an id missing from the catalog. On a
// persistence write failure the returned result is still valid and the
// in-memory mutation stands; the error reports the failed save.
func (s *Session) TogglePractice(id string) (*ToggleResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	pr := catalog.LookupPractice(id)
	if pr == nil {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownPractice, id)
	}

	res := &ToggleResult{
		PracticeID: pr.ID,
		Title:      pr.Title,
	}

	if s.progress.HasPractice(id) {
		s.removePractice(id)
		res.Completed = false
		res.CO2Delta = -pr.CO2Reduction
		res.PointsDelta = -catalog.EngagementPerPractice
		metrics.PracticeToggles.WithLabelValues("deactivated").Inc()
	} else {
		s.progress.CompletedPracticeIDs = append(s.progress.CompletedPracticeIDs, id)
		res.Completed = true
		res.CO2Delta = pr.CO2Reduction
		res.PointsDelta = catalog.EngagementPerPractice
		metrics.PracticeToggles.WithLabelValues("activated").Inc()
	}
	s.progress.TotalCO2Reduced += res.CO2Delta
	s.progress.TotalEngagementPoints += res.PointsDelta
	s.progress.TouchActive(time.Now())

	res.NewAchievements = s.evaluateAchievements()
	res.ActivePractices = len(s.progress.CompletedPracticeIDs)
	s.syncGauges()

	return res, s.persist()
}

// StartQuiz resets the ephemeral quiz session and returns the first
// question. Any in-flight pass is discarded.
func (s *Session) StartQuiz() *QuestionView {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.quiz = &domain.QuizSession{ID: uuid.NewString()}
	return s.questionView(0)
}

// AnswerCurrentQuestion grades the selected option against the current
// question. A correct answer scores one point and 30 engagement points; an
// incorrect one changes neither. Both outcomes reveal the correct index and
// explanation. The question pointer does not advance — that is the caller's
// move via AdvanceQuiz.
func (s *Session) AnswerCurrentQuestion(selectedIndex int) (*AnswerResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.quiz == nil {
		return nil, domain.ErrNoActiveQuiz
	}
	if s.quiz.QuestionIndex >= catalog.QuestionCount() {
		return nil, domain.ErrQuizComplete
	}

	q := catalog.Questions[s.quiz.QuestionIndex]
	res := &AnswerResult{
		SessionID:     s.quiz.ID,
		QuestionIndex: s.quiz.QuestionIndex,
		Correct:       selectedIndex == q.Correct,
		CorrectIndex:  q.Correct,
		Explanation:   q.Explanation,
	}

	if res.Correct {
		s.quiz.CorrectCount++
		s.progress.TotalEngagementPoints += catalog.EngagementPerCorrectAnswer
		res.PointsDelta = catalog.EngagementPerCorrectAnswer
		metrics.QuizAnswers.WithLabelValues("correct").Inc()
	} else {
		metrics.QuizAnswers.WithLabelValues("incorrect").Inc()
	}
	s.progress.TouchActive(time.Now())
	s.syncGauges()

	return res, s.persist()
}

// AdvanceQuiz moves the question pointer forward. Mid-quiz it returns the
// next question; past the last question it finalizes the pass — storing the
// percentage score, bumping the evaluation counter, evaluating achievements,
// and discarding the ephemeral session.
func (s *Session) AdvanceQuiz() (*AdvanceResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.quiz == nil {
		return nil, domain.ErrNoActiveQuiz
	}

	s.quiz.QuestionIndex++
	if s.quiz.QuestionIndex < catalog.QuestionCount() {
		return &AdvanceResult{Next: s.questionView(s.quiz.QuestionIndex)}, nil
	}

	total := catalog.QuestionCount()
	pct := int(math.Round(float64(s.quiz.CorrectCount) / float64(total) * 100))
	s.progress.EvaluationScore = &pct
	s.progress.CompletedEvaluations++
	s.progress.TouchActive(time.Now())

	analysis, recommendation := feedbackFor(pct)
	final := &QuizFinal{
		ScorePercent:         pct,
		CorrectCount:         s.quiz.CorrectCount,
		QuestionCount:        total,
		CompletedEvaluations: s.progress.CompletedEvaluations,
		Analysis:             analysis,
		Recommendation:       recommendation,
	}
	final.NewAchievements = s.evaluateAchievements()
	s.quiz = nil

	metrics.QuizCompleted.Inc()
	s.syncGauges()

	return &AdvanceResult{Completed: true, Final: final}, s.persist()
}

// SubmitFootprintCalculation runs the emission model. Footprint results are
// display-only: they never mutate the progress record.
func (s *Session) SubmitFootprintCalculation(in footprint.Input) footprint.Result {
	res := footprint.Compute(in)
	metrics.FootprintCalculations.WithLabelValues(string(res.Band)).Inc()
	return res
}

// SetStreakDays stores an externally maintained streak value verbatim.
func (s *Session) SetStreakDays(days int) error {
	if days < 0 {
		return fmt.Errorf("streak days cannot be negative: %d", days)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.progress.StreakDays = days
	s.progress.TouchActive(time.Now())
	return s.persist()
}

// ─── internals ──────────────────────────────────────────────────────────────

func (s *Session) removePractice(id string) {
	for i, got := range s.progress.CompletedPracticeIDs {
		if got == id {
			s.progress.CompletedPracticeIDs = append(
				s.progress.CompletedPracticeIDs[:i],
				s.progress.CompletedPracticeIDs[i+1:]...,
			)
			return
		}
	}
}

func (s *Session) evaluateAchievements() []domain.AchievementDef {
	newly := s.engine.Evaluate(&s.progress)
	for _, def := range newly {
		metrics.AchievementsUnlocked.WithLabelValues(string(def.ID)).Inc()
	}
	return newly
}

// persist writes the record through the store. A failure is logged and
// surfaced, but the in-memory record stays authoritative.
func (s *Session) persist() error {
	if err := s.store.Save(&s.progress); err != nil {
		metrics.SaveFailures.Inc()
		log.Printf("[tracker] save progress: %v", err)
		return err
	}
	return nil
}

func (s *Session) syncGauges() {
	metrics.ActivePractices.Set(float64(len(s.progress.CompletedPracticeIDs)))
	metrics.CO2ReducedKg.Set(s.progress.TotalCO2Reduced)
	metrics.EngagementPoints.Set(float64(s.progress.TotalEngagementPoints))
}

func (s *Session) questionView(index int) *QuestionView {
	q := catalog.Questions[index]
	opts := make([]string, len(q.Options))
	copy(opts, q.Options)
	return &QuestionView{
		SessionID:  s.quiz.ID,
		QuestionID: q.ID,
		Index:      index,
		Total:      catalog.QuestionCount(),
		Question:   q.Question,
		Options:    opts,
	}
}

func (s *Session) summary() Summary {
	p := s.progress
	p.CompletedPracticeIDs = append([]string(nil), s.progress.CompletedPracticeIDs...)
	p.Achievements = append([]domain.AchievementID(nil), s.progress.Achievements...)
	if s.progress.EvaluationScore != nil {
		v := *s.progress.EvaluationScore
		p.EvaluationScore = &v
	}

	active := len(p.CompletedPracticeIDs)
	totalCount := catalog.PracticeCount()
	pct := float64(active) / float64(totalCount) * 100

	sum := Summary{
		Progress:        p,
		ActivePractices: active,
		CatalogSize:     totalCount,
		AdoptionPct:     pct,
		AdoptionMessage: adoptionMessage(active, totalCount, pct),
	}
	for _, def := range s.engine.Definitions() {
		sum.Achievements = append(sum.Achievements, AchievementStatus{
			Def:         def,
			Unlocked:    s.progress.HasAchievement(def.ID),
			Requirement: s.engine.RequirementText(def.ID, &s.progress),
		})
	}
	return sum
}
