package services

import (
	"github.com/GoldenRodger5/nutrivize-sub004/compat"
	"github.com/GoldenRodger5/nutrivize-sub004/database"
	"github.com/GoldenRodger5/nutrivize-sub004/logger"
	"github.com/GoldenRodger5/nutrivize-sub004/models"
	"github.com/GoldenRodger5/nutrivize-sub004/targets"
)

// CompatFood converts a catalog food into the scorer's input shape.
func CompatFood(f models.FoodItem) compat.Food {
	return compat.Food{
		Name: f.Name,
		Nutrition: compat.Nutrition{
			Calories: f.Calories,
			Protein:  f.Protein,
			Carbs:    f.Carbs,
			Fat:      f.Fat,
			Fiber:    f.Fiber,
			Sugar:    f.Sugar,
			Sodium:   f.Sodium,
		},
		Restrictions: models.DecodeTags(f.DietaryRestrictions),
		Allergens:    models.DecodeTags(f.Allergens),
		Categories:   models.DecodeTags(f.FoodCategories),
	}
}

// CompatProfile converts a stored user profile into the scorer's input shape.
func CompatProfile(p models.UserProfile) compat.Profile {
	strictness := compat.Strictness(p.StrictnessLevel)
	if strictness == "" {
		strictness = compat.StrictnessModerate
	}
	return compat.Profile{
		Restrictions: models.DecodeTags(p.DietaryRestrictions),
		Allergens:    models.DecodeTags(p.Allergens),
		Strictness:   strictness,
	}
}

// ProfileMetrics converts a stored user profile into the calculator's inputs.
func ProfileMetrics(p models.UserProfile) (targets.BodyMetrics, targets.WeightGoal, targets.MacroSplit) {
	return targets.BodyMetrics{
			Age:      p.Age,
			Gender:   targets.Gender(p.Gender),
			HeightCM: p.HeightCM,
			WeightKG: p.WeightKG,
			Activity: targets.ActivityLevel(p.ActivityLevel),
		},
		targets.WeightGoal{
			Type:         targets.GoalType(p.GoalType),
			WeeklyRateKG: p.WeeklyRateKG,
		},
		targets.MacroSplit{
			ProteinPct: p.ProteinPct,
			CarbsPct:   p.CarbsPct,
			FatPct:     p.FatPct,
		}
}

// ScoreFoodForUser scores a food against a user's stored dietary
// profile. A user without a profile gets the no-preference result.
func ScoreFoodForUser(food models.FoodItem, userID uint) compat.Result {
	var profile models.UserProfile
	if err := database.DB.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return compat.Score(CompatFood(food), compat.Profile{})
	}
	return compat.Score(CompatFood(food), CompatProfile(profile))
}

// RecomputeFavorites refreshes the cached compatibility scores on a
// user's favorites; called after the dietary profile changes.
func RecomputeFavorites(userID uint) {
	var profile models.UserProfile
	if err := database.DB.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return
	}
	cp := CompatProfile(profile)

	var favorites []models.FavoriteFood
	if err := database.DB.Preload("FoodItem").Where("user_id = ?", userID).Find(&favorites).Error; err != nil {
		logger.Error("Failed to load favorites for rescoring", "user_id", userID, "error", err)
		return
	}

	for _, fav := range favorites {
		res := compat.Score(CompatFood(fav.FoodItem), cp)
		updates := map[string]any{
			"score":   res.Score,
			"rating":  compat.Rating(res.Score, res.IsSafe),
			"is_safe": res.IsSafe,
		}
		if err := database.DB.Model(&models.FavoriteFood{}).Where("id = ?", fav.ID).Updates(updates).Error; err != nil {
			logger.Error("Failed to update favorite score", "favorite_id", fav.ID, "error", err)
		}
	}

	logger.Info("Favorites rescored", "user_id", userID, "count", len(favorites))
}
