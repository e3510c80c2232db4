package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/kdimtricp/mindmirror/internal/analysis"
	"github.com/kdimtricp/mindmirror/internal/api"
	"github.com/kdimtricp/mindmirror/internal/database"
	"github.com/kdimtricp/mindmirror/internal/emotion"
	"github.com/kdimtricp/mindmirror/internal/storage"
)

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Fatal("Failed to load .env:", err)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	maxUploadSize := os.Getenv("MAX_UPLOAD_SIZE")
	if maxUploadSize == "" {
		maxUploadSize = "16777216"
	}
	maxSize, err := strconv.ParseInt(maxUploadSize, 10, 64)
	if err != nil {
		log.Fatal("Invalid MAX_UPLOAD_SIZE:", err)
	}

	sessionsDir := os.Getenv("SESSIONS_DIR")
	if sessionsDir == "" {
		sessionsDir = "./sessions"
	}

	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "./mindmirror.db"
	}

	sessionStore, err := storage.NewLocalSessionStore(sessionsDir)
	if err != nil {
		log.Fatal("Failed to initialize session store:", err)
	}

	db, err := database.NewDB(database.Config{Path: dbPath})
	if err != nil {
		log.Fatal("Failed to initialize database:", err)
	}
	defer db.Close()

	historyRepo := database.NewAnalysisHistoryRepo(db)

	// The classifier variant is decided once here; it never changes per request.
	var classifier emotion.Classifier
	modelAvailable := false

	if apiURL := os.Getenv("EMOTION_API_URL"); apiURL != "" {
		remote := emotion.NewRemoteClassifier(apiURL)

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		err := remote.Ping(ctx)
		cancel()

		if err != nil {
			log.Printf("Warning: emotion model service unavailable: %v", err)
		} else {
			classifier = remote
			modelAvailable = true
			log.Printf("Emotion model service enabled: %s", apiURL)
		}
	} else {
		log.Printf("EMOTION_API_URL not set")
	}

	if classifier == nil {
		var seed int64
		if seedStr := os.Getenv("SYNTHETIC_SEED"); seedStr != "" {
			seed, err = strconv.ParseInt(seedStr, 10, 64)
			if err != nil {
				log.Fatal("Invalid SYNTHETIC_SEED:", err)
			}
		}
		classifier = emotion.NewSyntheticClassifier(seed)
		log.Printf("Using synthetic emotion scores (model service not available)")
	}

	service := analysis.NewService(sessionStore, classifier, historyRepo, modelAvailable)

	app := &api.App{
		Service:        service,
		History:        historyRepo,
		MaxUploadSize:  maxSize,
		ModelAvailable: modelAvailable,
	}

	router := api.NewRouter(app)

	log.Printf("Server starting on port %s", port)
	log.Printf("Sessions directory: %s", sessionsDir)
	log.Printf("Database path: %s", dbPath)
	log.Printf("Max upload size: %d bytes", maxSize)
	log.Printf("Model available: %v", modelAvailable)

	if err := http.ListenAndServe(":"+port, router); err != nil {
		log.Fatal(err)
	}
}
