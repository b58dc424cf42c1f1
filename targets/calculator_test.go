package targets

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func baseMetrics() BodyMetrics {
	return BodyMetrics{
		Age:      25,
		Gender:   GenderMale,
		HeightCM: 180,
		WeightKG: 80,
		Activity: ActivityModerate,
	}
}

func TestBMRFormulaExactness(t *testing.T) {
	m := baseMetrics()

	res := Compute(m, WeightGoal{Type: GoalMaintain}, MacroSplit{})
	// 10*80 + 6.25*180 - 5*25 + 5
	assert.Equal(t, 1805, res.BMR)

	m.Gender = GenderFemale
	res = Compute(m, WeightGoal{Type: GoalMaintain}, MacroSplit{})
	assert.Equal(t, 1639, res.BMR)

	m.Gender = GenderOther
	res = Compute(m, WeightGoal{Type: GoalMaintain}, MacroSplit{})
	// Average of the male and female constants.
	assert.Equal(t, 1722, res.BMR)
}

func TestTDEEMultiplier(t *testing.T) {
	res := Compute(baseMetrics(), WeightGoal{Type: GoalMaintain}, MacroSplit{})

	// 1805 * 1.55 = 2797.75, rounded up.
	assert.Equal(t, 2798, res.TDEE)
	assert.Equal(t, res.TDEE, res.GoalCalories)
}

func TestGoalCalorieAdjustment(t *testing.T) {
	lose := Compute(baseMetrics(), WeightGoal{Type: GoalLose, WeeklyRateKG: 0.5}, MacroSplit{})
	// 0.5 kg/week * 7700 / 7 = 550 kcal/day deficit.
	assert.Equal(t, 2248, lose.GoalCalories)

	gain := Compute(baseMetrics(), WeightGoal{Type: GoalGain, WeeklyRateKG: 0.5}, MacroSplit{})
	assert.Equal(t, 3348, gain.GoalCalories)
}

func TestGoalCaloriesFloor(t *testing.T) {
	m := BodyMetrics{
		Age:      60,
		Gender:   GenderFemale,
		HeightCM: 150,
		WeightKG: 45,
		Activity: ActivitySedentary,
	}

	res := Compute(m, WeightGoal{Type: GoalLose, WeeklyRateKG: 1}, MacroSplit{})

	assert.Equal(t, 1200, res.GoalCalories)
}

func TestIncompleteInput(t *testing.T) {
	cases := []BodyMetrics{
		{Gender: GenderMale, HeightCM: 180, WeightKG: 80, Activity: ActivityModerate},           // no age
		{Age: 25, Gender: GenderMale, WeightKG: 80, Activity: ActivityModerate},                 // no height
		{Age: 25, Gender: GenderMale, HeightCM: 180, Activity: ActivityModerate},                // no weight
		{Age: 25, Gender: GenderMale, HeightCM: 180, WeightKG: 80, Activity: "couch"},           // bad activity
		{Age: -3, Gender: GenderFemale, HeightCM: 160, WeightKG: 55, Activity: ActivityLight},   // negative age
		{Age: 25, Gender: GenderMale, HeightCM: -180, WeightKG: 80, Activity: ActivityModerate}, // negative height
	}

	for _, m := range cases {
		res := Compute(m, WeightGoal{Type: GoalMaintain}, MacroSplit{})
		assert.True(t, res.Incomplete)
		assert.Zero(t, res.BMR)
		assert.Zero(t, res.TDEE)
		assert.Zero(t, res.GoalCalories)
	}
}

func TestNormalizeSplit(t *testing.T) {
	p, c, f := NormalizeSplit(30, 40, 30)
	assert.Equal(t, [3]int{30, 40, 30}, [3]int{p, c, f})

	// All-zero input falls back to the default split.
	p, c, f = NormalizeSplit(0, 0, 0)
	assert.Equal(t, [3]int{30, 40, 30}, [3]int{p, c, f})

	// Inputs not summing to 100 scale proportionally.
	p, c, f = NormalizeSplit(60, 80, 60)
	assert.Equal(t, [3]int{30, 40, 30}, [3]int{p, c, f})

	// Normalized triple sums to 100 within rounding.
	p, c, f = NormalizeSplit(1, 1, 1)
	assert.InDelta(t, 100, p+c+f, 1)

	// Negative components are clamped before normalizing.
	p, c, f = NormalizeSplit(-10, 50, 50)
	assert.Equal(t, [3]int{0, 50, 50}, [3]int{p, c, f})
}

func TestMacroGramsFromSplit(t *testing.T) {
	res := Compute(baseMetrics(), WeightGoal{Type: GoalMaintain}, MacroSplit{
		ProteinPct: 30,
		CarbsPct:   40,
		FatPct:     30,
	})

	// 2798 kcal at 30/40/30 with 4/4/9 kcal per gram.
	assert.Equal(t, 210, res.ProteinG)
	assert.Equal(t, 280, res.CarbsG)
	assert.Equal(t, 93, res.FatG)
}

func TestBMI(t *testing.T) {
	assert.InDelta(t, 24.7, BMI(180, 80), 0.01)
	assert.Zero(t, BMI(0, 80))
	assert.Zero(t, BMI(180, 0))

	assert.Equal(t, "Underweight", BMICategory(18.4))
	assert.Equal(t, "Normal weight", BMICategory(18.5))
	assert.Equal(t, "Overweight", BMICategory(25))
	assert.Equal(t, "Obese", BMICategory(30))
	assert.Equal(t, "", BMICategory(0))
}
