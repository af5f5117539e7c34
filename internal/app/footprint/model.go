// Package footprint implements the carbon-footprint estimator: a pure
// function from lifestyle inputs to an annualized CO₂-equivalent total with
// a per-category breakdown, a contextual band, and ranked recommendations.
// Emission factors follow IPCC/EPA 2023 methodologies.
package footprint

import "math"

// TransportMode selects the per-km emission coefficient.
type TransportMode string

const (
	TransportGasoline TransportMode = "gasoline"
	TransportDiesel   TransportMode = "diesel"
	TransportHybrid   TransportMode = "hybrid"
	TransportElectric TransportMode = "electric"
)

// RecyclingHabit selects the fixed annual waste addend.
type RecyclingHabit string

const (
	RecyclingAlways    RecyclingHabit = "always"
	RecyclingSometimes RecyclingHabit = "sometimes"
	RecyclingRarely    RecyclingHabit = "rarely"
	RecyclingNever     RecyclingHabit = "never"
)

// Band classifies a total against the global benchmarks
// (2030 target 2300 kg, world average 4800 kg, developed-country 8000+ kg).
type Band string

const (
	BandOnTarget     Band = "on_target"
	BandBelowAverage Band = "below_average"
	BandAverage      Band = "average"
	BandHigh         Band = "high"
)

// Emission factors (kg CO₂ per unit).
var transportFactor = map[TransportMode]float64{
	TransportGasoline: 0.21, // per km
	TransportDiesel:   0.27,
	TransportHybrid:   0.12,
	TransportElectric: 0.05, // includes average grid generation
}

var recyclingAddend = map[RecyclingHabit]float64{
	RecyclingAlways:    0, // kg CO₂ per year
	RecyclingSometimes: 120,
	RecyclingRarely:    240,
	RecyclingNever:     360,
}

const (
	flightFactor      = 270   // kg per average round-trip domestic flight
	electricityFactor = 0.42  // kg per kWh, global grid mix
	gasFactor         = 2.0   // kg per m³ natural gas
	waterFactor       = 0.001 // kg per litre (treatment and heating)
	meatFactor        = 6.8   // kg per meal containing meat
	localFoodRelief   = 0.30  // fraction of meat emissions avoidable via local sourcing
)

// Band thresholds (kg CO₂ per year).
const (
	bandTargetMax  = 2300
	bandAverageMin = 4800
	bandHighMin    = 8000
)

// Input holds the lifestyle answers. Zero values mean "not provided" and
// compute as zero emissions for that category.
type Input struct {
	CarKmPerWeek     float64        `json:"car_km_per_week"`
	Transport        TransportMode  `json:"transport"`
	FlightsPerYear   float64        `json:"flights_per_year"`
	ElectricityKWh   float64        `json:"electricity_kwh_per_month"`
	GasM3            float64        `json:"gas_m3_per_month"`
	WaterLitres      float64        `json:"water_litres_per_day"`
	MeatMealsPerWeek float64        `json:"meat_meals_per_week"`
	LocalFoodPct     float64        `json:"local_food_pct"`
	Recycling        RecyclingHabit `json:"recycling"`
}

// Breakdown is the per-category decomposition of the annual total.
type Breakdown struct {
	Transport   float64 `json:"transport"`
	Aviation    float64 `json:"aviation"`
	Electricity float64 `json:"electricity"`
	Gas         float64 `json:"gas"`
	Water       float64 `json:"water"`
	Nutrition   float64 `json:"nutrition"`
	Waste       float64 `json:"waste"`
}

// Warning reports an input that was clamped or substituted during
// validation. The computation proceeds with the corrected value.
type Warning struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Result is the full estimator output.
type Result struct {
	TotalKg         float64          `json:"total_kg"`
	Breakdown       Breakdown        `json:"breakdown"`
	Band            Band             `json:"band"`
	Analysis        string           `json:"analysis"`
	UrgencyLevel    string           `json:"urgency_level"`
	Warnings        []Warning        `json:"warnings,omitempty"`
	Recommendations []Recommendation `json:"recommendations"`
}

// Compute derives the annual footprint estimate. It is deterministic and
// side-effect free: identical inputs yield bit-identical outputs. Out-of-range
// values are clamped, not rejected, and reported as warnings.
func Compute(in Input) Result {
	var warnings []Warning

	carKm := clamp(in.CarKmPerWeek, 0, 2000, "car_km_per_week", &warnings)
	flights := clamp(in.FlightsPerYear, 0, 50, "flights_per_year", &warnings)
	kwh := clamp(in.ElectricityKWh, 0, 2000, "electricity_kwh_per_month", &warnings)
	gasM3 := clamp(in.GasM3, 0, math.MaxFloat64, "gas_m3_per_month", &warnings)
	waterL := clamp(in.WaterLitres, 0, math.MaxFloat64, "water_litres_per_day", &warnings)
	meat := clamp(in.MeatMealsPerWeek, 0, 21, "meat_meals_per_week", &warnings)
	localFood := clamp(in.LocalFoodPct, 0, 100, "local_food_pct", &warnings)

	mode := in.Transport
	if _, ok := transportFactor[mode]; !ok {
		warnings = append(warnings, Warning{
			Field:   "transport",
			Message: "unrecognized transport mode, assuming gasoline",
		})
		mode = TransportGasoline
	}
	habit := in.Recycling
	if _, ok := recyclingAddend[habit]; !ok {
		warnings = append(warnings, Warning{
			Field:   "recycling",
			Message: "unrecognized recycling habit, assuming always",
		})
		habit = RecyclingAlways
	}

	meatGross := meat * 52 * meatFactor
	b := Breakdown{
		Transport:   carKm * 52 * transportFactor[mode],
		Aviation:    flights * flightFactor,
		Electricity: kwh * 12 * electricityFactor,
		Gas:         gasM3 * 12 * gasFactor,
		Water:       waterL * 365 * waterFactor,
		Nutrition:   meatGross - (localFood/100)*meatGross*localFoodRelief,
		Waste:       recyclingAddend[habit],
	}

	total := b.Transport + b.Aviation + b.Electricity + b.Gas + b.Water +
		b.Nutrition + b.Waste

	band, analysis, urgency := classify(total)

	return Result{
		TotalKg:         total,
		Breakdown:       b,
		Band:            band,
		Analysis:        analysis,
		UrgencyLevel:    urgency,
		Warnings:        warnings,
		Recommendations: recommend(b, habit, total),
	}
}

// classify maps a total onto the fixed benchmark bands.
func classify(total float64) (Band, string, string) {
	switch {
	case total < bandTargetMax:
		return BandOnTarget,
			"Excellent: aligned with global climate targets for 2030",
			"Maintenance"
	case total < bandAverageMin:
		return BandBelowAverage,
			"Good: below the world average, with room to optimize",
			"Optimization"
	case total < bandHighMin:
		return BandAverage,
			"Average: near developed-country levels, reduction needed",
			"Active reduction"
	default:
		return BandHigh,
			"High: significantly above climate targets, transformation needed",
			"Urgent transformation"
	}
}

// clamp coerces NaN to zero and pins v to [min, max], recording a warning
// on every correction.
func clamp(v, min, max float64, field string, warnings *[]Warning) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		*warnings = append(*warnings, Warning{Field: field, Message: "non-numeric value treated as 0"})
		return 0
	}
	if v < min {
		*warnings = append(*warnings, Warning{Field: field, Message: "value below expected range, clamped"})
		return min
	}
	if v > max {
		*warnings = append(*warnings, Warning{Field: field, Message: "value above expected range, clamped"})
		return max
	}
	return v
}
