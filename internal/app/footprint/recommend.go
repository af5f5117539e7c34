package footprint

import "sort"

// Category names one slice of the breakdown (plus the leadership fallback).
type Category string

const (
	CategoryTransport   Category = "transport"
	CategoryAviation    Category = "aviation"
	CategoryElectricity Category = "electricity"
	CategoryNutrition   Category = "nutrition"
	CategoryWaste       Category = "waste"
	CategoryLeadership  Category = "leadership"
)

// Recommendation is one ranked reduction strategy. PotentialKg is the
// estimated annual reduction; it is zero for the leadership fallback, whose
// impact is qualitative.
type Recommendation struct {
	Category    Category `json:"category"`
	Title       string   `json:"title"`
	Action      string   `json:"action"`
	PotentialKg float64  `json:"potential_kg"`
	Priority    int      `json:"priority"`
}

// Impact thresholds as fractions of the total footprint.
const (
	highImpactShare   = 0.15
	mediumImpactShare = 0.08
)

// Category-specific reduction fractions applied to the breakdown value.
const (
	transportReduction   = 0.6
	aviationReduction    = 0.4
	electricityReduction = 0.5
	nutritionReduction   = 0.4
	wasteReduction       = 0.8
)

// recommend produces the priority-ordered strategy list. Ties keep category
// insertion order (transport, aviation, electricity, nutrition, waste). If no
// category crosses its threshold, a single leadership recommendation is
// returned instead.
func recommend(b Breakdown, habit RecyclingHabit, total float64) []Recommendation {
	high := total * highImpactShare
	medium := total * mediumImpactShare

	var recs []Recommendation

	if b.Transport > high {
		recs = append(recs, Recommendation{
			Category:    CategoryTransport,
			Title:       "Transport (high impact)",
			Action:      "Shift to electric or hybrid mobility, optimize routes, work remotely 2-3 days a week",
			PotentialKg: b.Transport * transportReduction,
			Priority:    1,
		})
	}
	if b.Aviation > medium {
		recs = append(recs, Recommendation{
			Category:    CategoryAviation,
			Title:       "Aviation (significant impact)",
			Action:      "Consolidate annual trips, prefer ground transport under 800 km, certified offsets for unavoidable flights",
			PotentialKg: b.Aviation * aviationReduction,
			Priority:    2,
		})
	}
	if b.Electricity > medium {
		recs = append(recs, Recommendation{
			Category:    CategoryElectricity,
			Title:       "Home energy (optimizable)",
			Action:      "Switch to a renewable provider, heat pump, thermal insulation, efficient appliances",
			PotentialKg: b.Electricity * electricityReduction,
			Priority:    3,
		})
	}
	if b.Nutrition > high {
		recs = append(recs, Recommendation{
			Category:    CategoryNutrition,
			Title:       "Nutrition (high potential)",
			Action:      "Halve red meat, more plant protein, minimize food waste, local and seasonal products",
			PotentialKg: b.Nutrition * nutritionReduction,
			Priority:    1,
		})
	}
	if habit == RecyclingRarely || habit == RecyclingNever {
		recs = append(recs, Recommendation{
			Category:    CategoryWaste,
			Title:       "Waste management (opportunity)",
			Action:      "Full separation system, home composting, less packaging, circular economy",
			PotentialKg: b.Waste * wasteReduction,
			Priority:    3,
		})
	}

	// An already-efficient profile gets a leadership push instead.
	if len(recs) == 0 {
		return []Recommendation{{
			Category: CategoryLeadership,
			Title:    "Environmental leadership",
			Action:   "Mentor others on sustainable practices, influence organizational policy, invest in clean technology",
			Priority: 1,
		}}
	}

	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].Priority < recs[j].Priority
	})
	return recs
}
