// Package targets implements the nutrition target calculator used by
// the setup wizard: Mifflin-St Jeor BMR, activity-scaled TDEE,
// goal-adjusted daily calories, and gram-level macro splits. Pure
// functions, no I/O.
package targets

import "math"

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

type ActivityLevel string

const (
	ActivitySedentary  ActivityLevel = "sedentary"
	ActivityLight      ActivityLevel = "light"
	ActivityModerate   ActivityLevel = "moderate"
	ActivityActive     ActivityLevel = "active"
	ActivityVeryActive ActivityLevel = "very_active"
)

// activityMultipliers is the single source of truth for valid activity
// levels; it doubles as input validation.
var activityMultipliers = map[ActivityLevel]float64{
	ActivitySedentary:  1.2,
	ActivityLight:      1.375,
	ActivityModerate:   1.55,
	ActivityActive:     1.725,
	ActivityVeryActive: 1.9,
}

type GoalType string

const (
	GoalLose     GoalType = "lose"
	GoalMaintain GoalType = "maintain"
	GoalGain     GoalType = "gain"
)

// BodyMetrics is the calculator's read-only input.
type BodyMetrics struct {
	Age      int           `json:"age"`
	Gender   Gender        `json:"gender"`
	HeightCM float64       `json:"height_cm"`
	WeightKG float64       `json:"weight_kg"`
	Activity ActivityLevel `json:"activity_level"`
}

type WeightGoal struct {
	Type         GoalType `json:"goal_type"`
	WeeklyRateKG float64  `json:"weekly_rate_kg"`
}

// MacroSplit holds percentage inputs; they are intended to sum to 100
// but the calculator normalizes (see NormalizeSplit).
type MacroSplit struct {
	ProteinPct float64 `json:"protein_pct"`
	CarbsPct   float64 `json:"carbs_pct"`
	FatPct     float64 `json:"fat_pct"`
}

// Targets is the calculator output. Incomplete is set instead of an
// error when required body metrics are missing or non-positive; all
// numeric fields are zero in that case.
type Targets struct {
	BMR          int  `json:"bmr"`
	TDEE         int  `json:"tdee"`
	GoalCalories int  `json:"goal_calories"`
	ProteinG     int  `json:"protein_g"`
	CarbsG       int  `json:"carbs_g"`
	FatG         int  `json:"fat_g"`
	Incomplete   bool `json:"incomplete_input,omitempty"`
}

const (
	// kcal of energy per kg of body weight change. The metric constant
	// is used throughout; the 3500 kcal/lb variant is intentionally not
	// implemented (inputs are metric end to end).
	kcalPerKG = 7700

	minDailyCalories = 1200

	kcalPerGramProtein = 4
	kcalPerGramCarbs   = 4
	kcalPerGramFat     = 9
)

// Compute derives BMR, TDEE, goal calories, and macro grams from body
// metrics, a weight goal, and a macro split. Deterministic, never
// panics; bad metrics yield a zeroed result with Incomplete set.
func Compute(m BodyMetrics, g WeightGoal, s MacroSplit) Targets {
	mult, ok := activityMultipliers[m.Activity]
	if m.Age <= 0 || m.HeightCM <= 0 || m.WeightKG <= 0 || !ok {
		return Targets{Incomplete: true}
	}

	bmr := int(math.Round(bmrFor(m)))
	tdee := int(math.Round(float64(bmr) * mult))

	goalCal := tdee
	daily := g.WeeklyRateKG * kcalPerKG / 7
	switch g.Type {
	case GoalLose:
		goalCal = int(math.Round(float64(tdee) - daily))
		if goalCal < minDailyCalories {
			goalCal = minDailyCalories
		}
	case GoalGain:
		goalCal = int(math.Round(float64(tdee) + daily))
	}

	p, c, f := NormalizeSplit(s.ProteinPct, s.CarbsPct, s.FatPct)

	return Targets{
		BMR:          bmr,
		TDEE:         tdee,
		GoalCalories: goalCal,
		ProteinG:     macroGrams(goalCal, p, kcalPerGramProtein),
		CarbsG:       macroGrams(goalCal, c, kcalPerGramCarbs),
		FatG:         macroGrams(goalCal, f, kcalPerGramFat),
	}
}

// bmrFor computes the Mifflin-St Jeor basal metabolic rate. The base
// term is identical for all genders; only the constant differs, and
// "other" averages the male and female constants.
func bmrFor(m BodyMetrics) float64 {
	base := 10*m.WeightKG + 6.25*m.HeightCM - 5*float64(m.Age)
	switch m.Gender {
	case GenderMale:
		return base + 5
	case GenderFemale:
		return base - 161
	default:
		return base + (5-161)/2.0
	}
}

// NormalizeSplit scales a macro percentage triple to sum to 100,
// falling back to 30/40/30 when all three are zero. Returns integer
// percentages that sum to 100 within rounding (±1).
func NormalizeSplit(proteinPct, carbsPct, fatPct float64) (int, int, int) {
	if proteinPct < 0 {
		proteinPct = 0
	}
	if carbsPct < 0 {
		carbsPct = 0
	}
	if fatPct < 0 {
		fatPct = 0
	}

	sum := proteinPct + carbsPct + fatPct
	if sum == 0 {
		return 30, 40, 30
	}

	return int(math.Round(proteinPct / sum * 100)),
		int(math.Round(carbsPct / sum * 100)),
		int(math.Round(fatPct / sum * 100))
}

// macroGrams converts a percentage of the daily calorie target into
// grams at the given energy density.
func macroGrams(goalCalories, pct, kcalPerGram int) int {
	return int(math.Round(float64(goalCalories) * float64(pct) / 100 / float64(kcalPerGram)))
}

// BMI computes body mass index from height in centimeters and weight
// in kilograms; returns 0 for non-positive input.
func BMI(heightCM, weightKG float64) float64 {
	if heightCM <= 0 || weightKG <= 0 {
		return 0
	}
	h := heightCM / 100
	return math.Round(weightKG/(h*h)*10) / 10
}

// BMICategory maps a BMI value to its display category.
func BMICategory(bmi float64) string {
	switch {
	case bmi <= 0:
		return ""
	case bmi < 18.5:
		return "Underweight"
	case bmi < 25:
		return "Normal weight"
	case bmi < 30:
		return "Overweight"
	default:
		return "Obese"
	}
}
