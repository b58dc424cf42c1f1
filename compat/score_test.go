package compat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNeutralDefaultWhenNoPreferences(t *testing.T) {
	food := Food{Name: "cheeseburger", Categories: []string{"meat", "dairy"}}

	res := Score(food, Profile{})

	assert.Equal(t, 75, res.Score)
	assert.True(t, res.IsSafe)
	assert.Equal(t, []string{"No dietary restrictions set"}, res.Benefits)
	assert.Empty(t, res.Warnings)
}

func TestAllergenMatchIsFatal(t *testing.T) {
	food := Food{
		Name:         "peanut butter cookie",
		Nutrition:    Nutrition{Protein: 20},
		Restrictions: []string{"vegetarian", "high-protein"},
		Allergens:    []string{"peanuts"},
	}
	profile := Profile{
		Restrictions: []string{"vegetarian", "high-protein"},
		Allergens:    []string{"peanut"},
		Strictness:   StrictnessFlexible,
	}

	res := Score(food, profile)

	assert.Equal(t, 0, res.Score)
	assert.False(t, res.IsSafe)
	assert.Contains(t, res.Warnings, "Contains peanut")
	// No restriction or goal evaluation after an allergen hit.
	assert.Empty(t, res.Benefits)
}

func TestAllergenMatchesFoodCategory(t *testing.T) {
	food := Food{Name: "trail mix", Categories: []string{"nuts", "snack"}}
	profile := Profile{Allergens: []string{"nut"}}

	res := Score(food, profile)

	assert.Equal(t, 0, res.Score)
	assert.False(t, res.IsSafe)
	assert.Equal(t, []string{"Contains nut"}, res.Warnings)
}

func TestStrictRestrictionMismatchZeroesScore(t *testing.T) {
	food := Food{Name: "sourdough bread", Restrictions: []string{"wheat"}}
	profile := Profile{
		Restrictions: []string{"gluten-free"},
		Strictness:   StrictnessStrict,
	}

	res := Score(food, profile)

	assert.Equal(t, 0, res.Score)
	assert.False(t, res.IsSafe)
	assert.Contains(t, res.Warnings, "Not gluten-free (strict mode)")
}

func TestRestrictionMismatchPenaltyByStrictness(t *testing.T) {
	food := Food{Name: "grilled chicken", Categories: []string{"meat", "chicken"}}

	moderate := Score(food, Profile{
		Restrictions: []string{"vegetarian"},
		Strictness:   StrictnessModerate,
	})
	assert.Equal(t, 60, moderate.Score)
	assert.Contains(t, moderate.Warnings, "Not vegetarian")

	flexible := Score(food, Profile{
		Restrictions: []string{"vegetarian"},
		Strictness:   StrictnessFlexible,
	})
	assert.Equal(t, 80, flexible.Score)
}

func TestVeganNaturallyCompatibleFruit(t *testing.T) {
	food := Food{Name: "apple", Categories: []string{"fruit"}}
	profile := Profile{
		Restrictions: []string{"vegan"},
		Strictness:   StrictnessModerate,
	}

	res := Score(food, profile)

	assert.GreaterOrEqual(t, res.Score, 75)
	assert.True(t, res.IsSafe)
	assert.Contains(t, res.Benefits, "Vegan")
	assert.Empty(t, res.Warnings)
}

func TestVeganNaturalCompatibilityByNameKeyword(t *testing.T) {
	food := Food{Name: "steamed broccoli florets"}
	res := Score(food, Profile{Restrictions: []string{"vegan"}, Strictness: StrictnessStrict})

	assert.Contains(t, res.Benefits, "Vegan")
	assert.Empty(t, res.Warnings)
}

func TestVeganNaturalCompatibilityWhenAttributesEmpty(t *testing.T) {
	food := Food{Name: "mystery smoothie"}
	res := Score(food, Profile{Restrictions: []string{"vegetarian"}, Strictness: StrictnessModerate})

	assert.Contains(t, res.Benefits, "Vegetarian")
}

func TestPescatarianExceptionForSeafood(t *testing.T) {
	food := Food{Name: "salmon fillet", Categories: []string{"fish"}}
	profile := Profile{
		Restrictions: []string{"pescatarian"},
		Strictness:   StrictnessModerate,
	}

	res := Score(food, profile)

	assert.Contains(t, res.Benefits, "Pescatarian")
	assert.Empty(t, res.Warnings)
}

func TestUnverifiedStatusOnlyUnderStrict(t *testing.T) {
	food := Food{Name: "protein bar", Categories: []string{"processed", "snack"}}

	strict := Score(food, Profile{Restrictions: []string{"keto"}, Strictness: StrictnessStrict})
	assert.Equal(t, 90, strict.Score)
	assert.Contains(t, strict.Warnings, "Unverified keto status")

	moderate := Score(food, Profile{Restrictions: []string{"keto"}, Strictness: StrictnessModerate})
	assert.Equal(t, 100, moderate.Score)
	assert.Empty(t, moderate.Warnings)
}

func TestBasicFoodsExemptFromUnverifiedPenalty(t *testing.T) {
	food := Food{Name: "plain yogurt", Categories: []string{"dairy"}}
	res := Score(food, Profile{Restrictions: []string{"keto"}, Strictness: StrictnessStrict})

	assert.Equal(t, 100, res.Score)
	assert.Empty(t, res.Warnings)
}

func TestCrossLabelBonusAndClampAt100(t *testing.T) {
	food := Food{
		Name:         "tofu",
		Restrictions: []string{"vegan", "gluten-free", "organic"},
	}
	profile := Profile{
		Restrictions: []string{"vegan"},
		Strictness:   StrictnessModerate,
	}

	res := Score(food, profile)

	// 100 + 2x3 cross-label bonus clamps back to 100.
	assert.Equal(t, 100, res.Score)
	assert.Contains(t, res.Benefits, "Vegan")
	assert.Contains(t, res.Benefits, "+ gluten-free")
	assert.Contains(t, res.Benefits, "+ organic")
	assert.NotContains(t, res.Benefits, "+ vegan")
}

func TestScoreClampedAtZeroUnderStackedGoalPenalties(t *testing.T) {
	food := Food{
		Name:      "frosted pastry",
		Nutrition: Nutrition{Protein: 0, Carbs: 50, Sugar: 30, Fiber: 0},
	}
	profile := Profile{
		Restrictions: []string{"high-protein", "low-carb", "low-sugar", "high-fiber"},
		Strictness:   StrictnessStrict,
	}

	res := Score(food, profile)

	assert.Equal(t, 0, res.Score)
	assert.False(t, res.IsSafe)
	assert.Contains(t, res.Warnings, "Low protein: 0g (need ≥15g)")
	assert.Contains(t, res.Warnings, "High carb: 50g (want ≤15g)")
	assert.Contains(t, res.Warnings, "High sugar: 30g (want ≤5g)")
	assert.Contains(t, res.Warnings, "Low fiber: 0g (need ≥5g)")
}

func TestGoalPenaltyScalingByStrictness(t *testing.T) {
	food := Food{Name: "white rice", Nutrition: Nutrition{Protein: 3}}

	flexible := Score(food, Profile{Restrictions: []string{"high-protein"}, Strictness: StrictnessFlexible})
	assert.Equal(t, 60, flexible.Score)
	assert.Empty(t, flexible.Warnings)

	moderate := Score(food, Profile{Restrictions: []string{"high-protein"}, Strictness: StrictnessModerate})
	// 40 x 1.2 = 48, capped at 40.
	assert.Equal(t, 60, moderate.Score)

	strict := Score(food, Profile{Restrictions: []string{"high-protein"}, Strictness: StrictnessStrict})
	// 40 x 1.5 = 60, capped at 50.
	assert.Equal(t, 50, strict.Score)
	assert.Contains(t, strict.Warnings, "Low protein: 3g (need ≥15g)")
}

func TestGoalBenefitsWhenPenaltyIsZero(t *testing.T) {
	food := Food{
		Name:      "grilled salmon",
		Nutrition: Nutrition{Protein: 22, Carbs: 0, Sugar: 0, Fiber: 0, Sodium: 90},
		Categories: []string{
			"fish",
		},
	}
	profile := Profile{
		Restrictions: []string{"high-protein", "low-carb", "heart-healthy", "anti-inflammatory"},
		Strictness:   StrictnessModerate,
	}

	res := Score(food, profile)

	assert.Equal(t, 100, res.Score)
	assert.Contains(t, res.Benefits, "High protein content")
	assert.Contains(t, res.Benefits, "Very low carb")
	assert.Contains(t, res.Benefits, "Low sodium")
	assert.Contains(t, res.Benefits, "Anti-inflammatory food group")
}

func TestWholeFoodsGoalPenalizesProcessedCategories(t *testing.T) {
	food := Food{Name: "instant noodles", Categories: []string{"ultra-processed"}}
	res := Score(food, Profile{Restrictions: []string{"whole-foods"}, Strictness: StrictnessFlexible})

	// Ambiguity penalty does not apply (flexible); only the goal penalty of 40.
	assert.Equal(t, 60, res.Score)
}

func TestScoreAlwaysWithinBounds(t *testing.T) {
	foods := []Food{
		{},
		{Name: "everything bagel", Restrictions: []string{"vegan", "organic", "kosher", "halal", "non-gmo", "fair-trade"}},
		{Name: "lard", Categories: []string{"meat", "pork", "processed"}, Nutrition: Nutrition{Sugar: 99, Carbs: 99}},
	}
	profiles := []Profile{
		{},
		{Restrictions: []string{"vegan", "low-sugar", "low-carb"}, Strictness: StrictnessStrict},
		{Restrictions: []string{"keto"}, Allergens: []string{"pork"}, Strictness: StrictnessFlexible},
	}

	for _, f := range foods {
		for _, p := range profiles {
			res := Score(f, p)
			assert.GreaterOrEqual(t, res.Score, 0)
			assert.LessOrEqual(t, res.Score, 100)
			assert.Equal(t, res.Score > 0, res.IsSafe)
		}
	}
}
