package tracker_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/ecotrack-app/ecotrack/internal/app/progress"
	"github.com/ecotrack-app/ecotrack/internal/app/tracker"
	"github.com/ecotrack-app/ecotrack/internal/domain"
	"github.com/ecotrack-app/ecotrack/internal/infra/catalog"
)

type memKV struct {
	data    map[string]string
	failSet bool
}

func newMemKV() *memKV {
	return &memKV{data: map[string]string{}}
}

func (m *memKV) GetState(key string) (string, error) { return m.data[key], nil }

func (m *memKV) SetState(key, value string) error {
	if m.failSet {
		return errors.New("disk full")
	}
	m.data[key] = value
	return nil
}

func newTestSession(t *testing.T) (*tracker.Session, *memKV) {
	t.Helper()
	kv := newMemKV()
	return tracker.NewSession(progress.NewStore(kv)), kv
}

func TestTogglePractice_IsItsOwnInverse(t *testing.T) {
	s, _ := newTestSession(t)

	on, err := s.TogglePractice("efficient-mobility")
	if err != nil {
		t.Fatalf("toggle on: %v", err)
	}
	if !on.Completed || on.CO2Delta != 2.8 || on.PointsDelta != 20 {
		t.Fatalf("unexpected activation result: %+v", on)
	}

	off, err := s.TogglePractice("efficient-mobility")
	if err != nil {
		t.Fatalf("toggle off: %v", err)
	}
	if off.Completed || off.CO2Delta != -2.8 || off.PointsDelta != -20 {
		t.Fatalf("unexpected deactivation result: %+v", off)
	}

	sum := s.Progress()
	if sum.ActivePractices != 0 {
		t.Errorf("expected no active practices, got %d", sum.ActivePractices)
	}
	if sum.Progress.TotalCO2Reduced != 0 || sum.Progress.TotalEngagementPoints != 0 {
		t.Errorf("double toggle must restore totals, got %+v", sum.Progress)
	}
}

func TestTogglePractice_TotalTracksActiveSet(t *testing.T) {
	s, _ := newTestSession(t)

	var want float64
	for _, pr := range catalog.Practices[:3] {
		if _, err := s.TogglePractice(pr.ID); err != nil {
			t.Fatalf("toggle %s: %v", pr.ID, err)
		}
		want += pr.CO2Reduction
	}

	sum := s.Progress()
	if sum.Progress.TotalCO2Reduced != want {
		t.Errorf("total: want %v, got %v", want, sum.Progress.TotalCO2Reduced)
	}
	if sum.Progress.TotalEngagementPoints != 60 {
		t.Errorf("points: want 60, got %d", sum.Progress.TotalEngagementPoints)
	}
}

func TestTogglePractice_UnknownID(t *testing.T) {
	s, _ := newTestSession(t)

	if _, err := s.TogglePractice("cold-fusion"); !errors.Is(err, domain.ErrUnknownPractice) {
		t.Fatalf("want ErrUnknownPractice, got %v", err)
	}
	if sum := s.Progress(); sum.Progress.TotalEngagementPoints != 0 {
		t.Error("failed toggle must not mutate the record")
	}
}

func TestTogglePractice_FullCatalogUnlocksChampion(t *testing.T) {
	s, _ := newTestSession(t)

	var last *tracker.ToggleResult
	for _, pr := range catalog.Practices {
		res, err := s.TogglePractice(pr.ID)
		if err != nil {
			t.Fatalf("toggle %s: %v", pr.ID, err)
		}
		last = res
	}

	if len(last.NewAchievements) != 1 || last.NewAchievements[0].ID != domain.AchSustainabilityChampion {
		t.Fatalf("expected sustainability-champion on the final toggle, got %+v", last.NewAchievements)
	}
}

func TestQuiz_PerfectPass(t *testing.T) {
	s, _ := newTestSession(t)

	view := s.StartQuiz()
	if view.Index != 0 || view.Total != catalog.QuestionCount() {
		t.Fatalf("unexpected first question view: %+v", view)
	}

	var final *tracker.QuizFinal
	for i := 0; i < catalog.QuestionCount(); i++ {
		ans, err := s.AnswerCurrentQuestion(catalog.Questions[i].Correct)
		if err != nil {
			t.Fatalf("answer %d: %v", i, err)
		}
		if !ans.Correct || ans.PointsDelta != 30 {
			t.Fatalf("expected correct answer worth 30 points, got %+v", ans)
		}
		adv, err := s.AdvanceQuiz()
		if err != nil {
			t.Fatalf("advance %d: %v", i, err)
		}
		if adv.Completed {
			final = adv.Final
		}
	}

	if final == nil {
		t.Fatal("quiz never completed")
	}
	if final.ScorePercent != 100 || final.CorrectCount != catalog.QuestionCount() {
		t.Fatalf("unexpected final: %+v", final)
	}
	found := false
	for _, def := range final.NewAchievements {
		if def.ID == domain.AchClimateScholar {
			found = true
		}
	}
	if !found {
		t.Error("a perfect score must unlock climate-scholar")
	}

	sum := s.Progress()
	if sum.Progress.EvaluationScore == nil || *sum.Progress.EvaluationScore != 100 {
		t.Errorf("stored score: want 100, got %v", sum.Progress.EvaluationScore)
	}
	if sum.Progress.CompletedEvaluations != 1 {
		t.Errorf("completed evaluations: want 1, got %d", sum.Progress.CompletedEvaluations)
	}
	if sum.Progress.TotalEngagementPoints != 30*catalog.QuestionCount() {
		t.Errorf("points: want %d, got %d", 30*catalog.QuestionCount(), sum.Progress.TotalEngagementPoints)
	}
}

func TestQuiz_PartialScoreRoundsToPercent(t *testing.T) {
	s, _ := newTestSession(t)

	s.StartQuiz()
	for i := 0; i < catalog.QuestionCount(); i++ {
		selected := catalog.Questions[i].Correct
		if i == 0 {
			selected = (selected + 1) % len(catalog.Questions[i].Options)
		}
		ans, err := s.AnswerCurrentQuestion(selected)
		if err != nil {
			t.Fatalf("answer %d: %v", i, err)
		}
		if i == 0 {
			if ans.Correct || ans.PointsDelta != 0 {
				t.Fatalf("expected incorrect answer worth nothing, got %+v", ans)
			}
			if ans.CorrectIndex != catalog.Questions[0].Correct {
				t.Error("an incorrect answer must still reveal the correct index")
			}
			if ans.Explanation == "" {
				t.Error("an incorrect answer must still carry the explanation")
			}
		}
		if _, err := s.AdvanceQuiz(); err != nil {
			t.Fatalf("advance %d: %v", i, err)
		}
	}

	sum := s.Progress()
	if sum.Progress.EvaluationScore == nil || *sum.Progress.EvaluationScore != 80 {
		t.Errorf("4/5 correct: want 80%%, got %v", sum.Progress.EvaluationScore)
	}
}

func TestQuiz_NoActiveSession(t *testing.T) {
	s, _ := newTestSession(t)

	if _, err := s.AnswerCurrentQuestion(0); !errors.Is(err, domain.ErrNoActiveQuiz) {
		t.Errorf("answer without session: want ErrNoActiveQuiz, got %v", err)
	}
	if _, err := s.AdvanceQuiz(); !errors.Is(err, domain.ErrNoActiveQuiz) {
		t.Errorf("advance without session: want ErrNoActiveQuiz, got %v", err)
	}
}

func TestQuiz_CompletionDiscardsSession(t *testing.T) {
	s, _ := newTestSession(t)

	s.StartQuiz()
	for i := 0; i < catalog.QuestionCount(); i++ {
		if _, err := s.AnswerCurrentQuestion(0); err != nil {
			t.Fatalf("answer %d: %v", i, err)
		}
		if _, err := s.AdvanceQuiz(); err != nil {
			t.Fatalf("advance %d: %v", i, err)
		}
	}

	if _, err := s.AdvanceQuiz(); !errors.Is(err, domain.ErrNoActiveQuiz) {
		t.Errorf("advance after completion: want ErrNoActiveQuiz, got %v", err)
	}
}

func TestQuiz_RestartResetsThePass(t *testing.T) {
	s, _ := newTestSession(t)

	s.StartQuiz()
	if _, err := s.AnswerCurrentQuestion(catalog.Questions[0].Correct); err != nil {
		t.Fatalf("answer: %v", err)
	}

	view := s.StartQuiz()
	if view.Index != 0 {
		t.Fatalf("restart must return to question 0, got %d", view.Index)
	}

	// The restarted pass scores from zero; earlier engagement points stay.
	for i := 0; i < catalog.QuestionCount(); i++ {
		wrong := (catalog.Questions[i].Correct + 1) % len(catalog.Questions[i].Options)
		if _, err := s.AnswerCurrentQuestion(wrong); err != nil {
			t.Fatalf("answer %d: %v", i, err)
		}
		if _, err := s.AdvanceQuiz(); err != nil {
			t.Fatalf("advance %d: %v", i, err)
		}
	}

	sum := s.Progress()
	if sum.Progress.EvaluationScore == nil || *sum.Progress.EvaluationScore != 0 {
		t.Errorf("all-wrong pass: want 0%%, got %v", sum.Progress.EvaluationScore)
	}
	if sum.Progress.TotalEngagementPoints != 30 {
		t.Errorf("points from the first pass must survive a restart, got %d", sum.Progress.TotalEngagementPoints)
	}
}

func TestSaveFailure_MutationStands(t *testing.T) {
	s, kv := newTestSession(t)
	kv.failSet = true

	res, err := s.TogglePractice("water-stewardship")
	if !errors.Is(err, domain.ErrPersistenceWrite) {
		t.Fatalf("want ErrPersistenceWrite, got %v", err)
	}
	if res == nil || !res.Completed {
		t.Fatalf("result must still describe the applied toggle, got %+v", res)
	}

	// The in-memory record keeps the mutation.
	sum := s.Progress()
	if sum.ActivePractices != 1 || sum.Progress.TotalEngagementPoints != 20 {
		t.Errorf("in-memory record must keep the toggle, got %+v", sum.Progress)
	}
}

func TestNewSession_NormalizesStoredRecord(t *testing.T) {
	kv := newMemKV()
	kv.data[progress.StateKey] = `{
		"completedHabits": ["efficient-mobility", "teleportation", "efficient-mobility", "water-stewardship"],
		"totalCO2Reduced": 999.9,
		"totalEngagementPoints": 40
	}`

	s := tracker.NewSession(progress.NewStore(kv))
	sum := s.Progress()

	if sum.ActivePractices != 2 {
		t.Fatalf("unknown and duplicate ids must be dropped, got %d active", sum.ActivePractices)
	}
	if want := 2.8 + 1.1; sum.Progress.TotalCO2Reduced != want {
		t.Errorf("total must be recomputed from the active set: want %v, got %v",
			want, sum.Progress.TotalCO2Reduced)
	}
	if sum.Progress.TotalEngagementPoints != 40 {
		t.Errorf("engagement points are kept verbatim, got %d", sum.Progress.TotalEngagementPoints)
	}
}

func TestPersistenceAcrossSessions(t *testing.T) {
	kv := newMemKV()

	s1 := tracker.NewSession(progress.NewStore(kv))
	if _, err := s1.TogglePractice("plant-forward-nutrition"); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if err := s1.SetStreakDays(7); err != nil {
		t.Fatalf("set streak: %v", err)
	}

	s2 := tracker.NewSession(progress.NewStore(kv))
	sum := s2.Progress()
	if !sum.Progress.HasPractice("plant-forward-nutrition") {
		t.Error("practice must survive a session restart")
	}
	if sum.Progress.StreakDays != 7 {
		t.Errorf("streak: want 7, got %d", sum.Progress.StreakDays)
	}
	if sum.Progress.Version == "" || sum.Progress.LastSaved == "" {
		t.Error("saved record must carry version and timestamp stamps")
	}
}

func TestSetStreakDays_RejectsNegative(t *testing.T) {
	s, _ := newTestSession(t)

	if err := s.SetStreakDays(-1); err == nil {
		t.Fatal("expected an error for a negative streak")
	}
}

func TestProgress_AdoptionMessageTiers(t *testing.T) {
	s, _ := newTestSession(t)

	if got := s.Progress().AdoptionMessage; got != "Just getting started: 0/6 sustainable practices" {
		t.Errorf("empty record: unexpected message %q", got)
	}

	for _, pr := range catalog.Practices[:3] {
		if _, err := s.TogglePractice(pr.ID); err != nil {
			t.Fatalf("toggle %s: %v", pr.ID, err)
		}
	}
	if got := s.Progress().AdoptionMessage; got != "Solid progress: 3/6 sustainable practices" {
		t.Errorf("3/6 record: unexpected message %q", got)
	}

	for _, pr := range catalog.Practices[3:] {
		if _, err := s.TogglePractice(pr.ID); err != nil {
			t.Fatalf("toggle %s: %v", pr.ID, err)
		}
	}
	want := fmt.Sprintf("Full implementation: all %d sustainable practices active", catalog.PracticeCount())
	if got := s.Progress().AdoptionMessage; got != want {
		t.Errorf("full record: unexpected message %q", got)
	}
}

func TestAchievementStatuses_InSummary(t *testing.T) {
	s, _ := newTestSession(t)
	if _, err := s.TogglePractice("efficient-mobility"); err != nil {
		t.Fatalf("toggle: %v", err)
	}

	sum := s.Progress()
	if len(sum.Achievements) != 4 {
		t.Fatalf("expected 4 badge statuses, got %d", len(sum.Achievements))
	}
	for _, st := range sum.Achievements {
		if st.Unlocked {
			t.Errorf("badge %s must not be unlocked yet", st.Def.ID)
		}
		if st.Requirement == "" {
			t.Errorf("badge %s is missing its requirement line", st.Def.ID)
		}
	}
}
