package compat

import "strings"

// incompatibleTags maps a dietary restriction to the food tags that
// disqualify it. Matching is case-insensitive substring containment in
// both directions (see tagMatch); the lists are deliberately ad hoc and
// pinned by tests rather than normalized.
var incompatibleTags = map[string][]string{
	"vegetarian": {
		"meat", "beef", "pork", "chicken", "turkey", "lamb",
		"fish", "seafood", "shellfish", "gelatin",
	},
	"vegan": {
		"meat", "beef", "pork", "chicken", "turkey", "lamb",
		"fish", "seafood", "shellfish", "gelatin",
		"dairy", "milk", "cheese", "butter", "cream", "yogurt",
		"egg", "honey",
	},
	"pescatarian": {
		"meat", "beef", "pork", "chicken", "turkey", "lamb",
	},
	"gluten-free": {"gluten", "wheat", "barley", "rye", "malt"},
	"dairy-free": {
		"dairy", "milk", "cheese", "butter", "cream", "yogurt",
		"whey", "casein",
	},
	"nut-free": {
		"nut", "peanut", "almond", "cashew", "walnut", "pecan",
		"pistachio", "hazelnut",
	},
	"keto":   {"sugar", "grain", "wheat", "rice", "pasta", "bread", "potato"},
	"paleo":  {"grain", "wheat", "rice", "dairy", "legume", "soy", "processed"},
	"kosher": {"pork", "shellfish"},
	"halal":  {"pork", "alcohol"},
}

// plantCategories are food categories treated as naturally vegan.
var plantCategories = []string{
	"fruit", "vegetable", "grain", "nut", "seed", "legume", "herb", "spice",
}

// vegetarianCategories extends plantCategories for the vegetarian check.
var vegetarianCategories = []string{"dairy", "egg"}

// plantKeywords are common plant-food name fragments. A food whose name
// contains one of these counts as naturally vegan even without labels.
var plantKeywords = []string{
	"apple", "banana", "orange", "berry", "grape", "mango", "melon",
	"peach", "pear", "broccoli", "carrot", "spinach", "kale", "lettuce",
	"tomato", "cucumber", "pepper", "onion", "garlic", "potato",
	"rice", "oat", "quinoa", "lentil", "bean", "chickpea", "pea",
	"tofu", "tempeh", "almond", "walnut", "cashew", "avocado",
}

// basicCategories mark foods exempt from the strict-mode
// "unverified status" penalty.
var basicCategories = []string{
	"fruit", "vegetable", "grain", "legume", "nut", "dairy",
}

// seafoodTags trigger the pescatarian exception.
var seafoodTags = []string{"fish", "seafood", "shellfish"}

// hasSeafoodTag reports whether the food is tagged as fish or seafood.
func hasSeafoodTag(f Food) bool {
	for _, tag := range seafoodTags {
		if anyTagMatch(f.Restrictions, tag) || anyTagMatch(f.Categories, tag) {
			return true
		}
	}
	return false
}

// tagMatch reports whether two tags match: case-insensitive substring
// containment, tested in both directions.
func tagMatch(a, b string) bool {
	a = strings.ToLower(strings.TrimSpace(a))
	b = strings.ToLower(strings.TrimSpace(b))
	if a == "" || b == "" {
		return false
	}
	return strings.Contains(a, b) || strings.Contains(b, a)
}

// anyTagMatch reports whether term matches any tag in tags.
func anyTagMatch(tags []string, term string) bool {
	for _, t := range tags {
		if tagMatch(t, term) {
			return true
		}
	}
	return false
}

// hasIncompatibleTag reports whether the food carries any tag that
// disqualifies the given restriction.
func hasIncompatibleTag(restriction string, f Food) bool {
	disqualifiers, ok := incompatibleTags[restriction]
	if !ok {
		return false
	}
	for _, d := range disqualifiers {
		if anyTagMatch(f.Restrictions, d) || anyTagMatch(f.Categories, d) {
			return true
		}
	}
	return false
}

// naturallyCompatible applies the vegan/vegetarian heuristics: a food
// with plant categories, a plant-food name, or no attributes at all
// counts as compatible without an explicit label.
func naturallyCompatible(restriction string, f Food) bool {
	if restriction != "vegan" && restriction != "vegetarian" {
		return false
	}

	allowed := plantCategories
	if restriction == "vegetarian" {
		allowed = append(append([]string{}, plantCategories...), vegetarianCategories...)
	}
	for _, cat := range allowed {
		if anyTagMatch(f.Categories, cat) {
			return true
		}
	}

	name := strings.ToLower(f.Name)
	for _, kw := range plantKeywords {
		if strings.Contains(name, kw) {
			return true
		}
	}

	// No attributes at all: give the food the benefit of the doubt.
	return len(f.Restrictions) == 0 && len(f.Allergens) == 0 && len(f.Categories) == 0
}

// isBasicFood reports whether a food is a staple (whole-food category,
// or at least not flagged processed); basic foods skip the strict-mode
// ambiguity penalty.
func isBasicFood(f Food) bool {
	for _, cat := range basicCategories {
		if anyTagMatch(f.Categories, cat) {
			return true
		}
	}
	return !anyTagMatch(f.Categories, "processed")
}

// capitalize upper-cases the first letter for benefit display.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
