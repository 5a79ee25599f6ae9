package routes

import (
	"spark_server/controllers"
	"spark_server/services"

	"github.com/gorilla/mux"
)

// RegisterS3Routes sets up routes for S3-related operations under /api/s3
func RegisterS3Routes(r *mux.Router, resolver *services.S3ImageResolver) {
	controller := controllers.NewS3Controller(resolver)

	s3Router := r.PathPrefix("/api/s3").Subrouter()
	s3Router.HandleFunc("/upload-url", controller.GenerateUploadURL).Methods("POST")
}
