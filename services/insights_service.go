package services

import (
	"time"

	"github.com/GoldenRodger5/nutrivize-sub004/compat"
	"github.com/GoldenRodger5/nutrivize-sub004/database"
	"github.com/GoldenRodger5/nutrivize-sub004/models"
	"github.com/GoldenRodger5/nutrivize-sub004/targets"
)

// FoodScore pairs a logged food with its compatibility evaluation for
// the insights dashboard.
type FoodScore struct {
	FoodItemID uint     `json:"food_item_id"`
	Name       string   `json:"name"`
	Score      int      `json:"score"`
	Rating     string   `json:"rating"`
	IsSafe     bool     `json:"is_safe"`
	Warnings   []string `json:"warnings"`
}

// DailySummary is the insights payload for one day of logging.
type DailySummary struct {
	Date string `json:"date"`

	TotalCalories float64 `json:"total_calories"`
	TotalProtein  float64 `json:"total_protein"`
	TotalCarbs    float64 `json:"total_carbs"`
	TotalFat      float64 `json:"total_fat"`

	Targets           targets.Targets `json:"targets"`
	CaloriesRemaining float64         `json:"calories_remaining"`

	LogCount     int                `json:"log_count"`
	MealCalories map[string]float64 `json:"meal_calories"`

	// Logged foods scoring below 50 against the user's profile.
	LowCompatibility []FoodScore `json:"low_compatibility"`
}

// BuildDailySummary aggregates one day of a user's food logs and
// compares them to the profile-derived nutrition targets.
func BuildDailySummary(userID uint, day time.Time) (*DailySummary, error) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	end := start.AddDate(0, 0, 1)

	var logs []models.FoodLog
	if err := database.DB.Preload("FoodItem").
		Where("user_id = ? AND consumed_at >= ? AND consumed_at < ?", userID, start, end).
		Order("consumed_at asc").
		Find(&logs).Error; err != nil {
		return nil, err
	}

	summary := &DailySummary{
		Date:             start.Format("2006-01-02"),
		LogCount:         len(logs),
		MealCalories:     map[string]float64{},
		LowCompatibility: []FoodScore{},
	}

	for _, l := range logs {
		summary.TotalCalories += l.Calories
		summary.TotalProtein += l.Protein
		summary.TotalCarbs += l.Carbs
		summary.TotalFat += l.Fat
		summary.MealCalories[l.MealType] += l.Calories
	}

	var profile models.UserProfile
	if err := database.DB.Where("user_id = ?", userID).First(&profile).Error; err == nil {
		metrics, goal, split := ProfileMetrics(profile)
		summary.Targets = targets.Compute(metrics, goal, split)
		if !summary.Targets.Incomplete {
			summary.CaloriesRemaining = float64(summary.Targets.GoalCalories) - summary.TotalCalories
		}

		cp := CompatProfile(profile)
		seen := map[uint]bool{}
		for _, l := range logs {
			if seen[l.FoodItemID] {
				continue
			}
			seen[l.FoodItemID] = true

			res := compat.Score(CompatFood(l.FoodItem), cp)
			if res.Score < 50 {
				summary.LowCompatibility = append(summary.LowCompatibility, FoodScore{
					FoodItemID: l.FoodItemID,
					Name:       l.FoodItem.Name,
					Score:      res.Score,
					Rating:     compat.Rating(res.Score, res.IsSafe),
					IsSafe:     res.IsSafe,
					Warnings:   res.Warnings,
				})
			}
		}
	} else {
		summary.Targets = targets.Targets{Incomplete: true}
	}

	return summary, nil
}
