package controllers

import (
	"encoding/json"
	"log"
	"net/http"

	"spark_server/services"

	"github.com/gorilla/mux"
)

// FeedController handles requests for the browsable candidate feed
type FeedController struct {
	FeedService *services.FeedService
}

// NewFeedController creates a new instance of FeedController
func NewFeedController(feedService *services.FeedService) *FeedController {
	return &FeedController{FeedService: feedService}
}

// GetFeed returns the candidate batch for the requesting viewer. The batch
// excludes the viewer and incomplete profiles and carries no ordering or
// freshness guarantee; a refresh may resurface candidates seen before.
func (c *FeedController) GetFeed(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]
	if userID == "" {
		http.Error(w, "Missing userId", http.StatusBadRequest)
		return
	}

	candidates, err := c.FeedService.Load(r.Context(), userID)
	if err != nil {
		log.Printf("Failed to load feed for %s: %v", userID, err)
		http.Error(w, "Failed to load feed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"candidates": candidates,
		"count":      len(candidates),
	})
}
