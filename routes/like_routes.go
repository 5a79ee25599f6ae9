package routes

import (
	"spark_server/controllers"
	"spark_server/services"

	"github.com/gorilla/mux"
)

// RegisterLikeRoutes sets up routes for like mutations under /api/likes
func RegisterLikeRoutes(r *mux.Router, likeService *services.LikeService) {
	controller := controllers.NewLikeController(likeService)

	likeRouter := r.PathPrefix("/api/likes").Subrouter()
	likeRouter.HandleFunc("", controller.RecordLike).Methods("POST")
}
