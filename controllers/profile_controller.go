package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/GoldenRodger5/nutrivize-sub004/database"
	"github.com/GoldenRodger5/nutrivize-sub004/logger"
	"github.com/GoldenRodger5/nutrivize-sub004/models"
	"github.com/GoldenRodger5/nutrivize-sub004/services"
)

type ProfileRequest struct {
	Age           int     `json:"age"`
	Gender        string  `json:"gender"`
	HeightCM      float64 `json:"height_cm"`
	WeightKG      float64 `json:"weight_kg"`
	ActivityLevel string  `json:"activity_level"`

	GoalType     string  `json:"goal_type"`
	WeeklyRateKG float64 `json:"weekly_rate_kg"`

	ProteinPct float64 `json:"protein_pct"`
	CarbsPct   float64 `json:"carbs_pct"`
	FatPct     float64 `json:"fat_pct"`

	DietaryRestrictions []string `json:"dietary_restrictions"`
	Allergens           []string `json:"allergens"`
	StrictnessLevel     string   `json:"strictness_level"`
}

type ProfileResponse struct {
	models.UserProfile
	DietaryRestrictions []string `json:"dietary_restrictions"`
	Allergens           []string `json:"allergens"`
}

// GetProfile returns the caller's profile; a user who has not run the
// setup wizard yet gets an empty profile rather than a 404.
func GetProfile(w http.ResponseWriter, r *http.Request) {
	userID, err := getUserID(r)
	if err != nil {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var profile models.UserProfile
	if err := database.DB.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		respondJSON(w, http.StatusOK, ProfileResponse{
			DietaryRestrictions: []string{},
			Allergens:           []string{},
		})
		return
	}

	respondJSON(w, http.StatusOK, profileResponse(profile))
}

// UpdateProfile creates or updates the caller's profile. Changed
// dietary preferences invalidate cached favorite scores, so those are
// recomputed in the background.
func UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, err := getUserID(r)
	if err != nil {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req ProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	var profile models.UserProfile
	database.DB.Where("user_id = ?", userID).First(&profile)
	profile.UserID = userID

	profile.Age = req.Age
	profile.Gender = req.Gender
	profile.HeightCM = req.HeightCM
	profile.WeightKG = req.WeightKG
	profile.ActivityLevel = req.ActivityLevel
	profile.GoalType = req.GoalType
	profile.WeeklyRateKG = req.WeeklyRateKG
	profile.ProteinPct = req.ProteinPct
	profile.CarbsPct = req.CarbsPct
	profile.FatPct = req.FatPct
	profile.DietaryRestrictions = models.EncodeTags(req.DietaryRestrictions)
	profile.Allergens = models.EncodeTags(req.Allergens)
	if req.StrictnessLevel != "" {
		profile.StrictnessLevel = req.StrictnessLevel
	}

	if err := database.DB.Save(&profile).Error; err != nil {
		logger.Error("Failed to save profile", "user_id", userID, "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to save profile")
		return
	}

	logger.Info("Profile updated", "user_id", userID)

	// Cached favorite scores are stale now.
	go services.RecomputeFavorites(userID)

	respondJSON(w, http.StatusOK, profileResponse(profile))
}

func profileResponse(profile models.UserProfile) ProfileResponse {
	return ProfileResponse{
		UserProfile:         profile,
		DietaryRestrictions: models.DecodeTags(profile.DietaryRestrictions),
		Allergens:           models.DecodeTags(profile.Allergens),
	}
}
