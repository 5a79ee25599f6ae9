package main

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"spark_server/config"
	"spark_server/routes"
	"spark_server/services"
	"spark_server/socket"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

func main() {
	cfg, err := config.LoadConfig("")
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize AWS clients
	log.Println("Initializing DynamoDB client...")
	dynamoClient := services.InitializeDynamoDBClient(cfg.AWS.Region)
	dynamoService := &services.DynamoService{Client: dynamoClient}
	log.Println("DynamoDB client initialized.")

	s3Client := services.InitializeS3Client(cfg.AWS.Region)
	resolver := services.NewS3ImageResolver(
		s3Client,
		cfg.AWS.S3Bucket,
		time.Duration(cfg.AWS.ReadURLTTLMinutes)*time.Minute,
		time.Duration(cfg.AWS.UploadURLTTLMinutes)*time.Minute,
	)

	// Socket server carrying like acknowledgments
	socketServer := socket.NewServer()
	go func() {
		if err := socketServer.Serve(); err != nil {
			log.Fatalf("Socket server error: %v", err)
		}
	}()
	defer socketServer.Close()

	// Initialize Services
	feedService := &services.FeedService{
		Store:     dynamoService,
		Resolver:  resolver,
		BatchSize: cfg.Feed.BatchSize,
	}
	likeService := &services.LikeService{
		Store: dynamoService,
		Acks:  &socket.Hub{Server: socketServer},
	}
	userProfileService := &services.UserProfileService{
		Dynamo:   dynamoService,
		Resolver: resolver,
	}

	// Initialize the router
	r := mux.NewRouter()

	// Register a welcome route
	r.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintln(w, "Welcome to Spark")
	}).Methods("GET")

	// Register a health check endpoint
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		response := map[string]string{"status": "healthy"}
		json.NewEncoder(w).Encode(response)
	}).Methods("GET")

	r.Handle("/socket.io/", socketServer)

	// Register routes
	routes.RegisterFeedRoutes(r, feedService)
	routes.RegisterLikeRoutes(r, likeService)
	routes.RegisterUserProfileRoutes(r, userProfileService)
	routes.RegisterS3Routes(r, resolver)

	// Add CORS middleware
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.Server.CORS.AllowedOrigins,
		AllowedMethods:   cfg.Server.CORS.AllowedMethods,
		AllowedHeaders:   cfg.Server.CORS.AllowedHeaders,
		AllowCredentials: cfg.Server.CORS.AllowCredentials,
	}).Handler(r)

	// Start the HTTP server
	log.Printf("Starting server on port %s...\n", cfg.Server.Port)
	log.Fatal(http.ListenAndServe(":"+cfg.Server.Port, corsHandler))
}
