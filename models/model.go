package models

import (
	"encoding/json"
	"time"

	"gorm.io/gorm"
)

// User represents an authenticated Nutrivize user.
type User struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Email     string         `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Name      string         `gorm:"size:255" json:"name"`
	Password  string         `gorm:"size:255;not null" json:"-"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Profile   *UserProfile   `json:"profile,omitempty"`
	FoodLogs  []FoodLog      `json:"food_logs,omitempty"`
	Favorites []FavoriteFood `json:"favorites,omitempty"`
}

// UserProfile holds everything the setup wizard and the scorer need:
// body metrics, the weight goal, the macro split, and the dietary
// profile. Tag lists are stored as JSON-encoded strings.
type UserProfile struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"not null;uniqueIndex" json:"user_id"`

	// Body metrics
	Age           int     `gorm:"default:0" json:"age"`
	Gender        string  `gorm:"size:20" json:"gender"` // male, female, other
	HeightCM      float64 `gorm:"default:0" json:"height_cm"`
	WeightKG      float64 `gorm:"default:0" json:"weight_kg"`
	ActivityLevel string  `gorm:"size:20" json:"activity_level"`

	// Weight goal
	GoalType     string  `gorm:"size:20;default:'maintain'" json:"goal_type"` // lose, maintain, gain
	WeeklyRateKG float64 `gorm:"default:0" json:"weekly_rate_kg"`

	// Macro split (percentages; normalized on use)
	ProteinPct float64 `gorm:"default:30" json:"protein_pct"`
	CarbsPct   float64 `gorm:"default:40" json:"carbs_pct"`
	FatPct     float64 `gorm:"default:30" json:"fat_pct"`

	// Persisted wizard output
	GoalCalories int `gorm:"default:0" json:"goal_calories"`

	// Dietary profile (JSON-encoded string lists)
	DietaryRestrictions string `gorm:"type:text" json:"-"`
	Allergens           string `gorm:"type:text" json:"-"`
	StrictnessLevel     string `gorm:"size:20;default:'moderate'" json:"strictness_level"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FoodItem represents a food in the catalog with per-serving nutrition
// and free-form dietary attribute tags.
type FoodItem struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Name      string         `gorm:"size:255;uniqueIndex;not null" json:"name"`
	Brand     string         `gorm:"size:255" json:"brand"`
	Serving   string         `gorm:"size:100" json:"serving"` // display only, e.g. "1 cup"
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Nutrition per declared serving; sodium in mg.
	Calories float64 `gorm:"default:0" json:"calories"`
	Protein  float64 `gorm:"default:0" json:"protein"`
	Carbs    float64 `gorm:"default:0" json:"carbs"`
	Fat      float64 `gorm:"default:0" json:"fat"`
	Fiber    float64 `gorm:"default:0" json:"fiber"`
	Sugar    float64 `gorm:"default:0" json:"sugar"`
	Sodium   float64 `gorm:"default:0" json:"sodium"`

	// Dietary attributes (JSON-encoded string lists)
	DietaryRestrictions string `gorm:"type:text" json:"-"`
	Allergens           string `gorm:"type:text" json:"-"`
	FoodCategories      string `gorm:"type:text" json:"-"`

	NutritionVerified bool `gorm:"default:false" json:"nutrition_verified"`
}

// FoodLog is one logged serving of a food, with nutrition denormalized
// at log time so later catalog edits don't rewrite history.
type FoodLog struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserID     uint      `gorm:"not null;index" json:"user_id"`
	FoodItemID uint      `gorm:"not null;index" json:"food_item_id"`
	MealType   string    `gorm:"size:20;not null" json:"meal_type"` // breakfast, lunch, dinner, snack
	Servings   float64   `gorm:"default:1" json:"servings"`
	ConsumedAt time.Time `json:"consumed_at"`
	CreatedAt  time.Time `json:"created_at"`

	Calories float64 `gorm:"default:0" json:"calories"`
	Protein  float64 `gorm:"default:0" json:"protein"`
	Carbs    float64 `gorm:"default:0" json:"carbs"`
	Fat      float64 `gorm:"default:0" json:"fat"`

	FoodItem FoodItem `gorm:"foreignKey:FoodItemID" json:"food_item,omitempty"`
}

// FavoriteFood caches the compatibility score of a favorited food; the
// cache is recomputed whenever the user's dietary profile changes.
type FavoriteFood struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserID     uint      `gorm:"not null;uniqueIndex:idx_user_food" json:"user_id"`
	FoodItemID uint      `gorm:"not null;uniqueIndex:idx_user_food" json:"food_item_id"`
	Score      int       `gorm:"default:0" json:"score"`
	Rating     string    `gorm:"size:30" json:"rating"`
	IsSafe     bool      `gorm:"default:true" json:"is_safe"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	FoodItem FoodItem `gorm:"foreignKey:FoodItemID" json:"food_item,omitempty"`
}

// DecodeTags decodes a JSON-encoded string list column; bad or empty
// data yields an empty list rather than an error.
func DecodeTags(raw string) []string {
	if raw == "" {
		return []string{}
	}
	var tags []string
	if err := json.Unmarshal([]byte(raw), &tags); err != nil {
		return []string{}
	}
	return tags
}

// EncodeTags encodes a string list for storage in a text column.
func EncodeTags(tags []string) string {
	if len(tags) == 0 {
		return "[]"
	}
	data, err := json.Marshal(tags)
	if err != nil {
		return "[]"
	}
	return string(data)
}
