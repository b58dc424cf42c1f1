package controllers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/GoldenRodger5/nutrivize-sub004/compat"
	"github.com/GoldenRodger5/nutrivize-sub004/database"
	"github.com/GoldenRodger5/nutrivize-sub004/logger"
	"github.com/GoldenRodger5/nutrivize-sub004/models"
	"github.com/GoldenRodger5/nutrivize-sub004/services"
)

type AddFavoriteRequest struct {
	FoodItemID uint `json:"food_item_id"`
}

// ListFavorites returns the caller's favorites with cached
// compatibility scores.
func ListFavorites(w http.ResponseWriter, r *http.Request) {
	userID, err := getUserID(r)
	if err != nil {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var favorites []models.FavoriteFood
	if err := database.DB.Preload("FoodItem").Where("user_id = ?", userID).Find(&favorites).Error; err != nil {
		logger.Error("Failed to fetch favorites", "user_id", userID, "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to fetch favorites")
		return
	}

	respondJSON(w, http.StatusOK, favorites)
}

// AddFavorite favorites a food and caches its score against the
// caller's current profile.
func AddFavorite(w http.ResponseWriter, r *http.Request) {
	userID, err := getUserID(r)
	if err != nil {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req AddFavoriteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	var food models.FoodItem
	if err := database.DB.First(&food, req.FoodItemID).Error; err != nil {
		respondError(w, http.StatusNotFound, "Food not found")
		return
	}

	res := services.ScoreFoodForUser(food, userID)
	favorite := models.FavoriteFood{
		UserID:     userID,
		FoodItemID: food.ID,
		Score:      res.Score,
		Rating:     compat.Rating(res.Score, res.IsSafe),
		IsSafe:     res.IsSafe,
	}

	if err := database.DB.Create(&favorite).Error; err != nil {
		respondError(w, http.StatusConflict, "Already favorited")
		return
	}

	logger.Info("Favorite added", "user_id", userID, "food_item_id", food.ID, "score", res.Score)
	favorite.FoodItem = food
	respondJSON(w, http.StatusCreated, favorite)
}

// RemoveFavorite unfavorites a food.
func RemoveFavorite(w http.ResponseWriter, r *http.Request) {
	userID, err := getUserID(r)
	if err != nil {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	foodID, err := strconv.ParseUint(chi.URLParam(r, "food_id"), 10, 32)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid food ID")
		return
	}

	result := database.DB.Where("user_id = ? AND food_item_id = ?", userID, foodID).Delete(&models.FavoriteFood{})
	if result.Error != nil {
		logger.Error("Failed to remove favorite", "user_id", userID, "food_id", foodID, "error", result.Error)
		respondError(w, http.StatusInternalServerError, "Failed to remove favorite")
		return
	}
	if result.RowsAffected == 0 {
		respondError(w, http.StatusNotFound, "Favorite not found")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "Favorite removed"})
}
