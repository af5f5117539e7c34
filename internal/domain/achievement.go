package domain

// AchievementID identifies one of the fixed badge definitions.
// The set is closed — switches over it should be exhaustive.
type AchievementID string

const (
	AchSustainabilityChampion AchievementID = "sustainability-champion"
	AchClimateScholar         AchievementID = "climate-scholar"
	AchCarbonGuardian         AchievementID = "carbon-guardian"
	AchEcoAdvocate            AchievementID = "eco-advocate"
)

// ProgressStats is a snapshot of user state fed to achievement predicates.
type ProgressStats struct {
	ActivePractices       int
	CatalogSize           int
	EvaluationScore       *int
	TotalCO2Reduced       float64
	TotalEngagementPoints int
}

// AchievementDef defines a single achievement's unlock requirement plus the
// display text the presentation layer renders.
type AchievementDef struct {
	ID          AchievementID            `json:"id"`
	Title       string                   `json:"title"`
	Description string                   `json:"description"`
	Icon        string                   `json:"icon"`
	Predicate   func(ProgressStats) bool `json:"-"`
}
