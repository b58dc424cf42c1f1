package controllers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/GoldenRodger5/nutrivize-sub004/compat"
	"github.com/GoldenRodger5/nutrivize-sub004/database"
	"github.com/GoldenRodger5/nutrivize-sub004/jobs"
	"github.com/GoldenRodger5/nutrivize-sub004/logger"
	"github.com/GoldenRodger5/nutrivize-sub004/models"
	"github.com/GoldenRodger5/nutrivize-sub004/services"
)

type FoodRequest struct {
	Name    string `json:"name"`
	Brand   string `json:"brand"`
	Serving string `json:"serving"`

	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Fiber    float64 `json:"fiber"`
	Sugar    float64 `json:"sugar"`
	Sodium   float64 `json:"sodium"`

	DietaryRestrictions []string `json:"dietary_restrictions"`
	Allergens           []string `json:"allergens"`
	FoodCategories      []string `json:"food_categories"`
}

type FoodResponse struct {
	models.FoodItem
	DietaryRestrictions []string `json:"dietary_restrictions"`
	Allergens           []string `json:"allergens"`
	FoodCategories      []string `json:"food_categories"`
}

type ScoredFoodResponse struct {
	Food   FoodResponse  `json:"food"`
	Result compat.Result `json:"result"`
	Rating string        `json:"rating"`
	Color  string        `json:"color"`
}

// ListFoods returns the catalog, optionally filtered by a name search.
func ListFoods(w http.ResponseWriter, r *http.Request) {
	var foods []models.FoodItem
	q := database.DB.Order("name asc")
	if search := r.URL.Query().Get("q"); search != "" {
		q = q.Where("name ILIKE ?", "%"+search+"%")
	}
	if err := q.Limit(100).Find(&foods).Error; err != nil {
		logger.Error("Failed to fetch foods", "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to fetch foods")
		return
	}

	out := make([]FoodResponse, 0, len(foods))
	for _, f := range foods {
		out = append(out, foodResponse(f))
	}
	respondJSON(w, http.StatusOK, out)
}

// CreateFood adds a food to the catalog. Foods without verified
// nutrition are queued for background enrichment.
func CreateFood(w http.ResponseWriter, r *http.Request) {
	if _, err := getUserID(r); err != nil {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req FoodRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Name == "" {
		respondError(w, http.StatusBadRequest, "Name is required")
		return
	}

	food := models.FoodItem{
		Name:                req.Name,
		Brand:               req.Brand,
		Serving:             req.Serving,
		Calories:            req.Calories,
		Protein:             req.Protein,
		Carbs:               req.Carbs,
		Fat:                 req.Fat,
		Fiber:               req.Fiber,
		Sugar:               req.Sugar,
		Sodium:              req.Sodium,
		DietaryRestrictions: models.EncodeTags(req.DietaryRestrictions),
		Allergens:           models.EncodeTags(req.Allergens),
		FoodCategories:      models.EncodeTags(req.FoodCategories),
		NutritionVerified:   req.Calories > 0,
	}

	if err := database.DB.Create(&food).Error; err != nil {
		logger.Error("Failed to create food", "name", req.Name, "error", err)
		respondError(w, http.StatusConflict, "Food already exists")
		return
	}

	if !food.NutritionVerified {
		jobs.GetWorker().Enqueue(food.ID)
	}

	logger.Info("Food created", "food_id", food.ID, "name", food.Name)
	respondJSON(w, http.StatusCreated, foodResponse(food))
}

// GetFood returns one food by ID.
func GetFood(w http.ResponseWriter, r *http.Request) {
	food, ok := foodFromURL(w, r)
	if !ok {
		return
	}
	respondJSON(w, http.StatusOK, foodResponse(food))
}

// DeleteFood soft-deletes a food from the catalog.
func DeleteFood(w http.ResponseWriter, r *http.Request) {
	if _, err := getUserID(r); err != nil {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	foodID, err := strconv.ParseUint(chi.URLParam(r, "food_id"), 10, 32)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid food ID")
		return
	}

	result := database.DB.Delete(&models.FoodItem{}, foodID)
	if result.Error != nil {
		logger.Error("Failed to delete food", "food_id", foodID, "error", result.Error)
		respondError(w, http.StatusInternalServerError, "Failed to delete food")
		return
	}
	if result.RowsAffected == 0 {
		respondError(w, http.StatusNotFound, "Food not found")
		return
	}

	logger.Info("Food deleted", "food_id", foodID)
	respondJSON(w, http.StatusOK, map[string]string{"message": "Food deleted"})
}

// ScoreFood scores a catalog food against the caller's dietary profile.
func ScoreFood(w http.ResponseWriter, r *http.Request) {
	userID, err := getUserID(r)
	if err != nil {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	food, ok := foodFromURL(w, r)
	if !ok {
		return
	}

	res := services.ScoreFoodForUser(food, userID)
	respondJSON(w, http.StatusOK, ScoredFoodResponse{
		Food:   foodResponse(food),
		Result: res,
		Rating: compat.Rating(res.Score, res.IsSafe),
		Color:  compat.ScoreColor(res.Score, res.IsSafe),
	})
}

func foodFromURL(w http.ResponseWriter, r *http.Request) (models.FoodItem, bool) {
	var food models.FoodItem

	foodID, err := strconv.ParseUint(chi.URLParam(r, "food_id"), 10, 32)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid food ID")
		return food, false
	}

	if err := database.DB.First(&food, foodID).Error; err != nil {
		respondError(w, http.StatusNotFound, "Food not found")
		return food, false
	}
	return food, true
}

func foodResponse(f models.FoodItem) FoodResponse {
	return FoodResponse{
		FoodItem:            f,
		DietaryRestrictions: models.DecodeTags(f.DietaryRestrictions),
		Allergens:           models.DecodeTags(f.Allergens),
		FoodCategories:      models.DecodeTags(f.FoodCategories),
	}
}
