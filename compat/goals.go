package compat

import (
	"fmt"
	"strconv"
)

// goalRule evaluates one nutrient-style goal ("high-protein",
// "low-carb", ...) against a food's numbers and tags. penalty returns
// the raw (unscaled) deduction; benefits are appended only when the raw
// penalty is zero; warning is emitted only under strict strictness and
// only for goals with an explicit numeric message.
type goalRule struct {
	penalty  func(f Food) int
	benefits func(f Food) []string
	warning  func(f Food) string
}

var goalRules = map[string]goalRule{
	"high-protein": {
		penalty: func(f Food) int {
			switch p := f.Nutrition.Protein; {
			case p < 5:
				return 40
			case p < 10:
				return 30
			case p < 15:
				return 20
			default:
				return 0
			}
		},
		benefits: func(f Food) []string {
			if f.Nutrition.Protein >= 15 {
				return []string{"High protein content"}
			}
			return nil
		},
		warning: func(f Food) string {
			return fmt.Sprintf("Low protein: %sg (need ≥15g)", grams(f.Nutrition.Protein))
		},
	},
	"low-carb": {
		penalty: func(f Food) int {
			switch c := f.Nutrition.Carbs; {
			case c > 30:
				return 40
			case c > 20:
				return 25
			case c > 15:
				return 15
			default:
				return 0
			}
		},
		benefits: func(f Food) []string {
			switch c := f.Nutrition.Carbs; {
			case c <= 10:
				return []string{"Very low carb"}
			case c <= 15:
				return []string{"Low carb friendly"}
			default:
				return nil
			}
		},
		warning: func(f Food) string {
			return fmt.Sprintf("High carb: %sg (want ≤15g)", grams(f.Nutrition.Carbs))
		},
	},
	"low-sugar": {
		penalty: func(f Food) int {
			switch s := f.Nutrition.Sugar; {
			case s > 20:
				return 50
			case s > 10:
				return 35
			case s > 5:
				return 20
			default:
				return 0
			}
		},
		benefits: func(f Food) []string {
			switch s := f.Nutrition.Sugar; {
			case s <= 2:
				return []string{"Very low sugar"}
			case s <= 5:
				return []string{"Low sugar"}
			default:
				return nil
			}
		},
		warning: func(f Food) string {
			return fmt.Sprintf("High sugar: %sg (want ≤5g)", grams(f.Nutrition.Sugar))
		},
	},
	"high-fiber": {
		penalty: func(f Food) int {
			switch fb := f.Nutrition.Fiber; {
			case fb < 1:
				return 25
			case fb < 3:
				return 15
			case fb < 5:
				return 10
			default:
				return 0
			}
		},
		benefits: func(f Food) []string {
			switch fb := f.Nutrition.Fiber; {
			case fb >= 8:
				return []string{"Excellent fiber source"}
			case fb >= 5:
				return []string{"Good fiber content"}
			default:
				return nil
			}
		},
		warning: func(f Food) string {
			return fmt.Sprintf("Low fiber: %sg (need ≥5g)", grams(f.Nutrition.Fiber))
		},
	},
	"whole-foods": {
		penalty: func(f Food) int {
			if anyTagMatch(f.Restrictions, "whole-foods") {
				return 0
			}
			switch {
			case anyTagMatch(f.Categories, "ultra-processed"):
				return 40
			case anyTagMatch(f.Categories, "processed"):
				return 25
			default:
				return 0
			}
		},
		benefits: func(f Food) []string {
			if anyTagMatch(f.Restrictions, "whole-foods") || anyTagMatch(f.Categories, "whole") {
				return []string{"Whole, unprocessed food"}
			}
			for _, cat := range basicCategories {
				if anyTagMatch(f.Categories, cat) {
					return []string{"Whole, unprocessed food"}
				}
			}
			return nil
		},
	},
	"heart-healthy": {
		penalty: func(f Food) int {
			if anyTagMatch(f.Restrictions, "heart-healthy") {
				return 0
			}
			switch na := f.Nutrition.Sodium; {
			case na > 600:
				return 30
			case na > 400:
				return 15
			case anyTagMatch(f.Categories, "fried"):
				return 20
			default:
				return 0
			}
		},
		benefits: func(f Food) []string {
			var out []string
			if anyTagMatch(f.Restrictions, "heart-healthy") {
				out = append(out, "Heart healthy")
			}
			if f.Nutrition.Sodium <= 140 {
				out = append(out, "Low sodium")
			}
			if f.Nutrition.Fiber >= 5 {
				out = append(out, "Heart-healthy fiber")
			}
			return out
		},
	},
	"anti-inflammatory": {
		penalty: func(f Food) int {
			if anyTagMatch(f.Restrictions, "anti-inflammatory") {
				return 0
			}
			switch {
			case anyTagMatch(f.Categories, "ultra-processed"):
				return 30
			case anyTagMatch(f.Categories, "fried"):
				return 20
			case anyTagMatch(f.Categories, "processed"):
				return 20
			case f.Nutrition.Sugar > 15:
				return 15
			default:
				return 0
			}
		},
		benefits: func(f Food) []string {
			if anyTagMatch(f.Restrictions, "anti-inflammatory") {
				return []string{"Anti-inflammatory"}
			}
			for _, cat := range []string{"fish", "seafood", "berry", "leafy", "nut", "seed", "spice"} {
				if anyTagMatch(f.Categories, cat) {
					return []string{"Anti-inflammatory food group"}
				}
			}
			return nil
		},
	},
}

// scalePenalty scales a raw goal penalty by strictness, with caps.
func scalePenalty(p int, s Strictness) int {
	switch s {
	case StrictnessStrict:
		p = int(float64(p) * 1.5)
		if p > 50 {
			p = 50
		}
	case StrictnessModerate:
		p = int(float64(p) * 1.2)
		if p > 40 {
			p = 40
		}
	}
	return p
}

// grams formats a gram value without trailing zeros (7, 7.5, 0.4).
func grams(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
