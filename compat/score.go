// Package compat implements the diet compatibility scorer: given one
// food item and a user's dietary profile it produces a 0-100
// suitability score, a safety flag, and human-readable benefit and
// warning annotations. Pure functions, no I/O.
package compat

import "strings"

// Nutrition holds a food's numbers per its declared serving.
// Sodium is in milligrams, everything else in grams or kcal.
type Nutrition struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Fiber    float64 `json:"fiber"`
	Sugar    float64 `json:"sugar"`
	Sodium   float64 `json:"sodium"`
}

// Food is the scorer's read-only input. Tag lists are free-form
// lowercase labels and may be empty.
type Food struct {
	Name         string    `json:"name"`
	Nutrition    Nutrition `json:"nutrition"`
	Restrictions []string  `json:"dietary_restrictions"`
	Allergens    []string  `json:"allergens"`
	Categories   []string  `json:"food_categories"`
}

// Strictness controls penalty magnitude and whether a mismatch is fatal.
type Strictness string

const (
	StrictnessFlexible Strictness = "flexible"
	StrictnessModerate Strictness = "moderate"
	StrictnessStrict   Strictness = "strict"
)

// Profile is a user's dietary profile. Restriction order does not
// affect the final score but does affect annotation order.
type Profile struct {
	Restrictions []string   `json:"dietary_restrictions"`
	Allergens    []string   `json:"allergens"`
	Strictness   Strictness `json:"strictness_level"`
}

// Result is recomputed on every call; it has no identity and is never
// persisted by this package.
type Result struct {
	Score    int      `json:"score"`
	IsSafe   bool     `json:"is_safe"`
	Warnings []string `json:"warnings"`
	Benefits []string `json:"benefits"`
}

const neutralScore = 75

// Score evaluates how well a food fits a dietary profile. It never
// returns an error: missing nutrition and attribute fields are treated
// as zero/empty.
func Score(food Food, profile Profile) Result {
	res := Result{
		Score:    100,
		Warnings: []string{},
		Benefits: []string{},
	}

	// Nothing configured: neutral result, don't penalize the food.
	if len(profile.Restrictions) == 0 && len(profile.Allergens) == 0 {
		res.Score = neutralScore
		res.IsSafe = true
		res.Benefits = append(res.Benefits, "No dietary restrictions set")
		return res
	}

	// Allergen check. Any hit is fatal and skips all further scoring.
	for _, allergen := range profile.Allergens {
		if anyTagMatch(food.Allergens, allergen) || anyTagMatch(food.Categories, allergen) {
			res.Score = 0
			res.Warnings = append(res.Warnings, "Contains "+strings.ToLower(strings.TrimSpace(allergen)))
		}
	}
	if res.Score == 0 {
		res.IsSafe = false
		return res
	}

	res.scoreRestrictions(food, profile)

	if res.Score > 0 {
		res.scoreCrossLabels(food, profile)
	}
	if res.Score > 0 {
		res.scoreGoals(food, profile)
	}

	if res.Score < 0 {
		res.Score = 0
	}
	if res.Score > 100 {
		res.Score = 100
	}
	res.IsSafe = res.Score > 0
	return res
}

// scoreRestrictions walks the user's restrictions against the
// incompatibility table. Nutrient-style goals (high-protein, ...) are
// handled by scoreGoals, not here.
func (res *Result) scoreRestrictions(food Food, profile Profile) {
	for _, raw := range profile.Restrictions {
		if res.Score <= 0 {
			// A strict mismatch already zeroed the score; further
			// restriction checks add nothing.
			break
		}

		r := strings.ToLower(strings.TrimSpace(raw))
		if r == "" {
			continue
		}
		if _, isGoal := goalRules[r]; isGoal {
			continue
		}

		incompatible := hasIncompatibleTag(r, food)
		compatible := anyTagMatch(food.Restrictions, r)
		natural := naturallyCompatible(r, food)
		pescatarian := strings.Contains(r, "pescatarian") && hasSeafoodTag(food)

		switch {
		case incompatible && !natural:
			switch profile.Strictness {
			case StrictnessStrict:
				res.Score = 0
				res.Warnings = append(res.Warnings, "Not "+r+" (strict mode)")
			case StrictnessFlexible:
				res.Score -= 20
				res.Warnings = append(res.Warnings, "Not "+r)
			default:
				res.Score -= 40
				res.Warnings = append(res.Warnings, "Not "+r)
			}
		case compatible || pescatarian || natural:
			res.Benefits = append(res.Benefits, capitalize(r))
		default:
			// Ambiguous: only strict mode penalizes, and staples are exempt.
			if profile.Strictness == StrictnessStrict && !isBasicFood(food) {
				res.Score -= 10
				res.Warnings = append(res.Warnings, "Unverified "+r+" status")
			}
		}
	}
}

// scoreCrossLabels rewards labels the food declares beyond what the
// user asked for: +3 each.
func (res *Result) scoreCrossLabels(food Food, profile Profile) {
	for _, tag := range food.Restrictions {
		requested := false
		for _, r := range profile.Restrictions {
			if tagMatch(tag, r) {
				requested = true
				break
			}
		}
		if !requested {
			res.Score += 3
			res.Benefits = append(res.Benefits, "+ "+strings.ToLower(strings.TrimSpace(tag)))
		}
	}
}

// scoreGoals evaluates nutrient-style goals from the user's restriction
// list against the goal rule table, scaling penalties by strictness.
func (res *Result) scoreGoals(food Food, profile Profile) {
	for _, raw := range profile.Restrictions {
		r := strings.ToLower(strings.TrimSpace(raw))
		rule, ok := goalRules[r]
		if !ok {
			continue
		}

		penalty := rule.penalty(food)
		if penalty > 0 {
			res.Score -= scalePenalty(penalty, profile.Strictness)
			if profile.Strictness == StrictnessStrict && rule.warning != nil {
				res.Warnings = append(res.Warnings, rule.warning(food))
			}
			continue
		}
		if rule.benefits != nil {
			res.Benefits = append(res.Benefits, rule.benefits(food)...)
		}
	}
}
