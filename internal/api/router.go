package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func NewRouter(app *App) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/api/health", app.HealthHandler)
	r.Post("/api/create-session", app.CreateSessionHandler)
	r.Post("/api/upload-frames", app.UploadFramesHandler)
	r.Post("/api/analyze-emotions", app.AnalyzeEmotionsHandler)
	r.Post("/api/get-recommendations", app.RecommendationsHandler)
	r.Get("/api/history", app.HistoryHandler)

	return r
}
