package catalog

// QuizQuestion describes one educational quiz question. Options are ordered;
// Correct is the 0-based index of the right option.
type QuizQuestion struct {
	ID          string
	Question    string
	Options     []string
	Correct     int
	Explanation string
	Difficulty  string // basic, intermediate, advanced
	Category    string
}

// Questions is the built-in quiz. Questions progress from recall to analysis.
var Questions = []QuizQuestion{
	{
		ID:       "co2-concentration",
		Question: "What is the current atmospheric CO₂ concentration compared to pre-industrial levels (1850)?",
		Options: []string{
			"25% higher (350 ppm today)",
			"47% higher (421 ppm today)",
			"68% higher (470 ppm today)",
			"95% higher (550 ppm today)",
		},
		Correct:     1,
		Explanation: "Concentration has risen from 280 ppm (1850) to 421 ppm (2023), a 47% increase. The rise is accelerating: the last 20 years added more CO₂ than the previous 80, driven mainly by fossil fuels and deforestation.",
		Difficulty:  "basic",
		Category:    "science",
	},
	{
		ID:       "emission-reduction-target",
		Question: "Per the IPCC, what global emissions reduction is needed by 2030 to limit warming to 1.5°C?",
		Options: []string{
			"25% (vs 2010 levels)",
			"35% (vs 2010 levels)",
			"45% (vs 2010 levels)",
			"65% (vs 2010 levels)",
		},
		Correct:     2,
		Explanation: "The IPCC sets 45% reduction by 2030 (2010 baseline) for the 1.5°C pathway. That requires unprecedented transformation of energy, transport, agriculture, and industry. Every additional tenth of a degree amplifies climate risk exponentially.",
		Difficulty:  "intermediate",
		Category:    "policy",
	},
	{
		ID:       "carbon-offset-trees",
		Question: "How many mature trees must be planted to offset one person's average annual footprint (4.8 t CO₂)?",
		Options: []string{
			"22-25 trees",
			"55-65 trees",
			"120-140 trees",
			"220-250 trees",
		},
		Correct:     3,
		Explanation: "At ~22 kg CO₂ absorbed per tree per year, offsetting 4.8 tonnes takes ~218 trees. Reduction beats offsetting: avoiding 1 tonne of CO₂ outweighs planting 45 trees, and it is immediate rather than decades of tree growth.",
		Difficulty:  "advanced",
		Category:    "solutions",
	},
	{
		ID:       "sector-emissions",
		Question: "Which economic sector produces the largest share of global greenhouse-gas emissions?",
		Options: []string{
			"Agriculture and land use (24%)",
			"Transport (16%)",
			"Electricity and heat generation (25%)",
			"Industry and processes (21%)",
		},
		Correct:     2,
		Explanation: "Electricity and heat generation accounts for 25% of global emissions, though it varies sharply by country: under 10% with a renewable grid, over 40% in coal-dependent economies. Transport's 16% spans road, air, and shipping.",
		Difficulty:  "intermediate",
		Category:    "data",
	},
	{
		ID:       "protein-footprint",
		Question: "Per gram of protein, how much larger is the carbon footprint of beef versus legumes?",
		Options: []string{
			"2-3 times larger for beef",
			"5-7 times larger for beef",
			"10-15 times larger for beef",
			"20-25 times larger for beef",
		},
		Correct:     3,
		Explanation: "Beef protein generates ~20-25x more CO₂ than legumes per gram of protein, counting ruminant methane, feed fertilizers, deforestation, and processing. Legumes also fix atmospheric nitrogen, reducing synthetic fertilizer demand.",
		Difficulty:  "advanced",
		Category:    "lifestyle",
	},
}

// LookupQuestion finds a question by id. Returns nil if not found.
func LookupQuestion(id string) *QuizQuestion {
	for i := range Questions {
		if Questions[i].ID == id {
			return &Questions[i]
		}
	}
	return nil
}

// QuestionCount returns the number of quiz questions.
func QuestionCount() int {
	return len(Questions)
}
