package controllers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"spark_server/models"
	"spark_server/services"

	"github.com/gorilla/mux"
)

// UserProfileController handles requests related to user profiles
type UserProfileController struct {
	UserProfileService *services.UserProfileService
}

// NewUserProfileController creates a new instance of UserProfileController
func NewUserProfileController(userProfileService *services.UserProfileService) *UserProfileController {
	return &UserProfileController{UserProfileService: userProfileService}
}

// CreateProfile handles creating a new profile record
func (c *UserProfileController) CreateProfile(w http.ResponseWriter, r *http.Request) {
	var record models.ProfileRecord
	if err := json.NewDecoder(r.Body).Decode(&record); err != nil {
		log.Printf("Failed to decode request body: %v", err)
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	created, err := c.UserProfileService.CreateProfile(r.Context(), record)
	if err != nil {
		log.Printf("Failed to create profile: %v", err)
		http.Error(w, "Failed to create profile", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"message": "Profile created successfully",
		"profile": created,
	})
}

// GetProfile handles fetching a profile with resolved image slots
func (c *UserProfileController) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	view, err := c.UserProfileService.GetProfileView(r.Context(), userID)
	if err != nil {
		if errors.Is(err, services.ErrItemNotFound) {
			http.Error(w, "Profile not found", http.StatusNotFound)
			return
		}
		log.Printf("Failed to fetch profile %s: %v", userID, err)
		http.Error(w, "Failed to fetch profile", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(view)
}
