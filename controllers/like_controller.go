package controllers

import (
	"encoding/json"
	"log"
	"net/http"

	"spark_server/services"
)

// LikeController handles like mutations
type LikeController struct {
	LikeService *services.LikeService
}

// NewLikeController creates a new instance of LikeController
func NewLikeController(likeService *services.LikeService) *LikeController {
	return &LikeController{LikeService: likeService}
}

// RecordLike inserts a like for a (liker, liked) pair. A repeat submission
// for a pair already on record answers 200 with outcome "already_liked";
// only genuine failures produce an error status.
func (c *LikeController) RecordLike(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		LikerUserID string `json:"likerUserId"`
		LikedUserID string `json:"likedUserId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if payload.LikerUserID == "" || payload.LikedUserID == "" {
		http.Error(w, "Missing required fields", http.StatusBadRequest)
		return
	}
	if payload.LikerUserID == payload.LikedUserID {
		http.Error(w, "Cannot like yourself", http.StatusBadRequest)
		return
	}

	outcome, err := c.LikeService.Record(r.Context(), payload.LikerUserID, payload.LikedUserID)
	if err != nil {
		log.Printf("Failed to record like: %v", err)
		http.Error(w, "Failed to record like", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"outcome": string(outcome)})
}
