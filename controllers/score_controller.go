package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/GoldenRodger5/nutrivize-sub004/compat"
)

type AdhocScoreRequest struct {
	Food    compat.Food    `json:"food"`
	Profile compat.Profile `json:"profile"`
}

type AdhocScoreResponse struct {
	Result compat.Result `json:"result"`
	Rating string        `json:"rating"`
	Color  string        `json:"color"`
}

// ScoreAdhoc scores an inline food/profile pair without touching the
// catalog; the client uses this for detail-panel previews.
func ScoreAdhoc(w http.ResponseWriter, r *http.Request) {
	var req AdhocScoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	res := compat.Score(req.Food, req.Profile)
	respondJSON(w, http.StatusOK, AdhocScoreResponse{
		Result: res,
		Rating: compat.Rating(res.Score, res.IsSafe),
		Color:  compat.ScoreColor(res.Score, res.IsSafe),
	})
}
