package controllers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/GoldenRodger5/nutrivize-sub004/database"
	"github.com/GoldenRodger5/nutrivize-sub004/logger"
	"github.com/GoldenRodger5/nutrivize-sub004/models"
	"github.com/GoldenRodger5/nutrivize-sub004/services"
)

type LogFoodRequest struct {
	FoodItemID uint    `json:"food_item_id"`
	MealType   string  `json:"meal_type"`
	Servings   float64 `json:"servings"`
	ConsumedAt string  `json:"consumed_at,omitempty"` // RFC 3339; defaults to now
}

var validMealTypes = map[string]bool{
	"breakfast": true,
	"lunch":     true,
	"dinner":    true,
	"snack":     true,
}

// CreateLog records a food log entry, denormalizing the food's
// nutrition scaled by servings.
func CreateLog(w http.ResponseWriter, r *http.Request) {
	userID, err := getUserID(r)
	if err != nil {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req LogFoodRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if !validMealTypes[req.MealType] {
		respondError(w, http.StatusBadRequest, "meal_type must be breakfast, lunch, dinner or snack")
		return
	}
	if req.Servings <= 0 {
		req.Servings = 1
	}

	var food models.FoodItem
	if err := database.DB.First(&food, req.FoodItemID).Error; err != nil {
		respondError(w, http.StatusNotFound, "Food not found")
		return
	}

	consumedAt := time.Now()
	if req.ConsumedAt != "" {
		t, err := time.Parse(time.RFC3339, req.ConsumedAt)
		if err != nil {
			respondError(w, http.StatusBadRequest, "consumed_at must be RFC 3339")
			return
		}
		consumedAt = t
	}

	entry := models.FoodLog{
		UserID:     userID,
		FoodItemID: food.ID,
		MealType:   req.MealType,
		Servings:   req.Servings,
		ConsumedAt: consumedAt,
		Calories:   food.Calories * req.Servings,
		Protein:    food.Protein * req.Servings,
		Carbs:      food.Carbs * req.Servings,
		Fat:        food.Fat * req.Servings,
	}

	if err := database.DB.Create(&entry).Error; err != nil {
		logger.Error("Failed to create food log", "user_id", userID, "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to log food")
		return
	}

	logger.Info("Food logged", "user_id", userID, "food_item_id", food.ID, "meal", req.MealType)
	respondJSON(w, http.StatusCreated, entry)
}

// ListLogs returns the caller's logs for one day (?date=YYYY-MM-DD,
// default today).
func ListLogs(w http.ResponseWriter, r *http.Request) {
	userID, err := getUserID(r)
	if err != nil {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	day, err := parseDateParam(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "date must be YYYY-MM-DD")
		return
	}
	start := day
	end := start.AddDate(0, 0, 1)

	var logs []models.FoodLog
	if err := database.DB.Preload("FoodItem").
		Where("user_id = ? AND consumed_at >= ? AND consumed_at < ?", userID, start, end).
		Order("consumed_at asc").
		Find(&logs).Error; err != nil {
		logger.Error("Failed to fetch food logs", "user_id", userID, "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to fetch logs")
		return
	}

	respondJSON(w, http.StatusOK, logs)
}

// DeleteLog removes one of the caller's log entries.
func DeleteLog(w http.ResponseWriter, r *http.Request) {
	userID, err := getUserID(r)
	if err != nil {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	logID, err := strconv.ParseUint(chi.URLParam(r, "log_id"), 10, 32)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid log ID")
		return
	}

	result := database.DB.Where("id = ? AND user_id = ?", logID, userID).Delete(&models.FoodLog{})
	if result.Error != nil {
		logger.Error("Failed to delete food log", "log_id", logID, "error", result.Error)
		respondError(w, http.StatusInternalServerError, "Failed to delete log")
		return
	}
	if result.RowsAffected == 0 {
		respondError(w, http.StatusNotFound, "Log not found")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "Log deleted"})
}

// DailySummary returns the insights payload for one day of logging.
func DailySummary(w http.ResponseWriter, r *http.Request) {
	userID, err := getUserID(r)
	if err != nil {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	day, err := parseDateParam(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "date must be YYYY-MM-DD")
		return
	}

	summary, err := services.BuildDailySummary(userID, day)
	if err != nil {
		logger.Error("Failed to build daily summary", "user_id", userID, "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to build summary")
		return
	}

	respondJSON(w, http.StatusOK, summary)
}

func parseDateParam(r *http.Request) (time.Time, error) {
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		now := time.Now()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()), nil
	}
	return time.Parse("2006-01-02", dateStr)
}
