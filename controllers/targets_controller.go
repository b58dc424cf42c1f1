package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/GoldenRodger5/nutrivize-sub004/database"
	"github.com/GoldenRodger5/nutrivize-sub004/logger"
	"github.com/GoldenRodger5/nutrivize-sub004/models"
	"github.com/GoldenRodger5/nutrivize-sub004/targets"
)

type TargetsRequest struct {
	Metrics targets.BodyMetrics `json:"metrics"`
	Goal    targets.WeightGoal  `json:"goal"`
	Macros  targets.MacroSplit  `json:"macros"`
}

type TargetsResponse struct {
	Targets     targets.Targets `json:"targets"`
	BMI         float64         `json:"bmi"`
	BMICategory string          `json:"bmi_category"`
}

// PreviewTargets runs the setup-wizard calculation without persisting
// anything; the client calls this on every slider change.
func PreviewTargets(w http.ResponseWriter, r *http.Request) {
	var req TargetsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	respondJSON(w, http.StatusOK, buildTargetsResponse(req))
}

// SaveTargets runs the calculation and persists the wizard inputs and
// the resulting calorie target onto the caller's profile.
func SaveTargets(w http.ResponseWriter, r *http.Request) {
	userID, err := getUserID(r)
	if err != nil {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req TargetsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	resp := buildTargetsResponse(req)
	if resp.Targets.Incomplete {
		respondError(w, http.StatusBadRequest, "Incomplete body metrics")
		return
	}

	var profile models.UserProfile
	database.DB.Where("user_id = ?", userID).First(&profile)
	profile.UserID = userID

	profile.Age = req.Metrics.Age
	profile.Gender = string(req.Metrics.Gender)
	profile.HeightCM = req.Metrics.HeightCM
	profile.WeightKG = req.Metrics.WeightKG
	profile.ActivityLevel = string(req.Metrics.Activity)
	profile.GoalType = string(req.Goal.Type)
	profile.WeeklyRateKG = req.Goal.WeeklyRateKG
	profile.ProteinPct = req.Macros.ProteinPct
	profile.CarbsPct = req.Macros.CarbsPct
	profile.FatPct = req.Macros.FatPct
	profile.GoalCalories = resp.Targets.GoalCalories

	if err := database.DB.Save(&profile).Error; err != nil {
		logger.Error("Failed to save targets", "user_id", userID, "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to save targets")
		return
	}

	logger.Info("Targets saved", "user_id", userID, "goal_calories", profile.GoalCalories)
	respondJSON(w, http.StatusOK, resp)
}

func buildTargetsResponse(req TargetsRequest) TargetsResponse {
	bmi := targets.BMI(req.Metrics.HeightCM, req.Metrics.WeightKG)
	return TargetsResponse{
		Targets:     targets.Compute(req.Metrics, req.Goal, req.Macros),
		BMI:         bmi,
		BMICategory: targets.BMICategory(bmi),
	}
}
