package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/edunotice/edunotice-backend/internal/db"
	"github.com/edunotice/edunotice-backend/internal/handlers"
	"github.com/edunotice/edunotice-backend/internal/services"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Warning: Error loading .env: %s", err)
	}

	// Connect to MongoDB
	uri := os.Getenv("MONGOURI")
	if uri == "" {
		log.Fatal("MONGOURI environment variable not set")
	}
	client, err := db.Connect(context.Background(), uri)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := client.Disconnect(ctx); err != nil {
			log.Printf("Error disconnecting from MongoDB: %v", err)
		}
	}()
	log.Println("Successfully connected to MongoDB")

	database := client.Database("edunotice")

	// Initialize services and handlers
	teacherService := services.NewTeacherService(db.NewTeacherCollection(database))
	teacherHandler := handlers.NewTeacherHandler(teacherService)

	announcementService := services.NewAnnouncementService(db.NewAnnouncementCollection(database), teacherService)
	announcementHandler := handlers.NewAnnouncementHandler(announcementService)

	// Set up router
	router := mux.NewRouter()
	router.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	}).Methods("GET", "HEAD")

	router.HandleFunc("/announcements", announcementHandler.GetAnnouncements).Methods("GET")
	router.HandleFunc("/announcements/add", announcementHandler.AddAnnouncement).Methods("POST")
	router.HandleFunc("/announcements/update/{announcementID}", announcementHandler.UpdateAnnouncement).Methods("PUT")
	router.HandleFunc("/announcements/delete/{announcementID}", announcementHandler.DeleteAnnouncement).Methods("DELETE")

	router.HandleFunc("/teachers", teacherHandler.CreateTeacher).Methods("POST")
	router.HandleFunc("/teachers", teacherHandler.GetTeachers).Methods("GET")
	router.HandleFunc("/login", teacherHandler.Login).Methods("POST")

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	server := &http.Server{
		Addr:         "0.0.0.0:" + port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	log.Printf("Server running on port %s", port)
	log.Fatal(server.ListenAndServe())
}
