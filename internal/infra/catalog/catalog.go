// Package catalog provides the static registries of sustainability practices
// and quiz questions. This is EcoTrack's reference data — it maps practice
// ids like "efficient-mobility" to their daily CO₂-reduction values, and
// quiz ids to their options and correct answers.
package catalog

// EngagementPerPractice is the engagement-point delta applied when a
// practice is activated (and subtracted when it is deactivated).
const EngagementPerPractice = 20

// EngagementPerCorrectAnswer is the engagement-point delta for a correct
// quiz answer. Incorrect answers award nothing.
const EngagementPerCorrectAnswer = 30

// Practice describes a single sustainability habit.
type Practice struct {
	ID              string  // Unique key (e.g. "efficient-mobility")
	Title           string  // Display name
	Description     string  // What adopting the practice means
	CO2Reduction    float64 // kg CO₂ avoided per day while active
	Impact          string  // Short impact line for cards
	ScientificBasis string  // Source context for the reduction value
	Category        string  // transport, energy, water, waste, consumption, nutrition
	Difficulty      string  // easy, medium, hard
	WeeklyGoal      int     // Suggested activations per week
}

// Practices is the built-in list of sustainability practices.
// Reduction values are daily kg CO₂ figures from IPCC/EPA-derived estimates.
var Practices = []Practice{
	{
		ID:              "efficient-mobility",
		Title:           "Efficient Mobility",
		Description:     "Prefer public transport, cycling, or walking for urban trips under 5 km",
		CO2Reduction:    2.8,
		Impact:          "Avoids 2.8 kg CO₂ per day",
		ScientificBasis: "Every kilometre avoided in a combustion vehicle saves 0.21 kg CO₂. Transport accounts for 29% of global emissions.",
		Category:        "transport",
		Difficulty:      "medium",
		WeeklyGoal:      3,
	},
	{
		ID:              "energy-optimization",
		Title:           "Energy Optimization",
		Description:     "LED lighting, programmable thermostat, and unplugging standby devices",
		CO2Reduction:    1.9,
		Impact:          "Cuts 1.9 kg CO₂ per day",
		ScientificBasis: "Household energy efficiency can cut 20-30% of electricity use without sacrificing comfort.",
		Category:        "energy",
		Difficulty:      "easy",
		WeeklyGoal:      7,
	},
	{
		ID:              "water-stewardship",
		Title:           "Water Stewardship",
		Description:     "Efficient showers, fixing leaks, and reusing greywater where possible",
		CO2Reduction:    1.1,
		Impact:          "Saves 1.1 kg CO₂ per day",
		ScientificBasis: "Treating and heating water costs 0.004 kg CO₂ per litre; every litre saved compounds.",
		Category:        "water",
		Difficulty:      "easy",
		WeeklyGoal:      7,
	},
	{
		ID:              "circular-consumption",
		Title:           "Circular Consumption",
		Description:     "Recycling separation, composting organics, and minimal-packaging products",
		CO2Reduction:    1.5,
		Impact:          "Avoids 1.5 kg CO₂ per day",
		ScientificBasis: "Recycling 1 kg of plastic avoids 2 kg CO₂. Composting cuts landfill methane by 70%.",
		Category:        "waste",
		Difficulty:      "medium",
		WeeklyGoal:      5,
	},
	{
		ID:              "mindful-purchasing",
		Title:           "Mindful Purchasing",
		Description:     "Local products, reusable containers, planned shopping, durable goods",
		CO2Reduction:    1.3,
		Impact:          "Cuts 1.3 kg CO₂ per day",
		ScientificBasis: "Local products cut 85% of transport emissions. Durable goods reduce replacement frequency.",
		Category:        "consumption",
		Difficulty:      "medium",
		WeeklyGoal:      4,
	},
	{
		ID:              "plant-forward-nutrition",
		Title:           "Plant-Forward Nutrition",
		Description:     "3-4 plant-protein meals per week and minimal food waste",
		CO2Reduction:    3.7,
		Impact:          "Avoids 3.7 kg CO₂ per day",
		ScientificBasis: "Animal protein needs ~10x the resources of plant protein. Skipping meat 3 days/week cuts food footprint ~40%.",
		Category:        "nutrition",
		Difficulty:      "hard",
		WeeklyGoal:      3,
	},
}

// LookupPractice finds a practice by id. Returns nil if not found.
func LookupPractice(id string) *Practice {
	for i := range Practices {
		if Practices[i].ID == id {
			return &Practices[i]
		}
	}
	return nil
}

// PracticeCount returns the catalog size. The "all practices active"
// achievement rule compares against this.
func PracticeCount() int {
	return len(Practices)
}
