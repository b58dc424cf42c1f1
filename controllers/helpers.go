package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/GoldenRodger5/nutrivize-sub004/middleware"
)

func getUserID(r *http.Request) (uint, error) {
	id, ok := middleware.UserID(r)
	if !ok || id == 0 {
		return 0, http.ErrNoCookie
	}
	return id, nil
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, map[string]string{"error": msg})
}
