package controllers

import (
	"encoding/json"
	"net/http"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/GoldenRodger5/nutrivize-sub004/config"
	"github.com/GoldenRodger5/nutrivize-sub004/database"
	"github.com/GoldenRodger5/nutrivize-sub004/logger"
	"github.com/GoldenRodger5/nutrivize-sub004/models"
	"github.com/GoldenRodger5/nutrivize-sub004/util"
)

type RegisterRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthResponse struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

// Register creates a user with a bcrypt password hash and returns a JWT.
func Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Email == "" || len(req.Password) < 8 {
		respondError(w, http.StatusBadRequest, "Email and a password of at least 8 characters are required")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("Failed to hash password", "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to create user")
		return
	}

	user := models.User{
		Email:    req.Email,
		Name:     req.Name,
		Password: string(hash),
	}
	if err := database.DB.Create(&user).Error; err != nil {
		logger.Error("Failed to create user", "email", req.Email, "error", err)
		respondError(w, http.StatusConflict, "Email already registered")
		return
	}

	token, err := issueToken(user)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to issue token")
		return
	}

	logger.Info("User registered", "user_id", user.ID, "email", user.Email)
	respondJSON(w, http.StatusCreated, AuthResponse{Token: token, User: user})
}

// Login verifies credentials and returns a JWT.
func Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	var user models.User
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if err := database.DB.Where("email = ?", email).First(&user).Error; err != nil {
		respondError(w, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		respondError(w, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	token, err := issueToken(user)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to issue token")
		return
	}

	logger.Info("User logged in", "user_id", user.ID)
	respondJSON(w, http.StatusOK, AuthResponse{Token: token, User: user})
}

func issueToken(user models.User) (string, error) {
	secret := []byte(config.GetEnv("JWT_SECRET", "dev-secret"))
	token, err := util.GenerateJWT(user.ID, user.Email, secret)
	if err != nil {
		logger.Error("Failed to generate JWT", "user_id", user.ID, "error", err)
	}
	return token, err
}
