package controllers

import (
	"encoding/json"
	"log"
	"net/http"

	"spark_server/services"
)

// S3Controller hands out presigned URLs so clients can upload profile
// pictures directly. Compression/transcoding happens in the client picker
// before upload; the server only mints the URL.
type S3Controller struct {
	Resolver *services.S3ImageResolver
}

// NewS3Controller creates a new instance of S3Controller
func NewS3Controller(resolver *services.S3ImageResolver) *S3Controller {
	return &S3Controller{Resolver: resolver}
}

// GenerateUploadURL generates a presigned URL for uploading a profile picture
func (c *S3Controller) GenerateUploadURL(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		FileName string `json:"fileName"`
		FileType string `json:"fileType"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if payload.FileName == "" || payload.FileType == "" {
		http.Error(w, "Missing required fields", http.StatusBadRequest)
		return
	}

	url, key, err := c.Resolver.GenerateUploadURL(r.Context(), payload.FileName, payload.FileType)
	if err != nil {
		log.Printf("Failed to generate upload URL: %v", err)
		http.Error(w, "Failed to generate upload URL", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"url": url, "key": key})
}
