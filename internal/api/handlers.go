package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/kdimtricp/mindmirror/internal/analysis"
	"github.com/kdimtricp/mindmirror/internal/database"
	"github.com/kdimtricp/mindmirror/internal/emotion"
	"github.com/kdimtricp/mindmirror/internal/mindage"
	"github.com/kdimtricp/mindmirror/internal/storage"
)

type App struct {
	Service        *analysis.Service
	History        *database.AnalysisHistoryRepo
	MaxUploadSize  int64
	ModelAvailable bool
}

func (app *App) HealthHandler(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]any{
		"status":          "healthy",
		"message":         "Emotion Detection API is running",
		"model_available": app.ModelAvailable,
		"timestamp":       time.Now().Format(time.RFC3339),
	})
}

func (app *App) CreateSessionHandler(w http.ResponseWriter, r *http.Request) {
	session, err := app.Service.CreateSession()
	if err != nil {
		log.Printf("Session creation error: %v", err)
		app.fail(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"success":    true,
		"session_id": session.ID,
		"message":    "Session created successfully",
	})
}

func (app *App) UploadFramesHandler(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, app.MaxUploadSize)

	var req struct {
		SessionID string                `json:"session_id"`
		Frames    []analysis.FrameInput `json:"frames"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		app.fail(w, http.StatusBadRequest, "No data received")
		return
	}

	if req.SessionID == "" || len(req.Frames) == 0 {
		app.fail(w, http.StatusBadRequest, "Missing session_id or frames")
		return
	}

	saved, err := app.Service.IngestFrames(req.SessionID, req.Frames)
	if err != nil {
		if errors.Is(err, storage.ErrSessionNotFound) {
			app.fail(w, http.StatusNotFound, "Session not found")
			return
		}
		log.Printf("Frame upload error: %v", err)
		app.fail(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"success":      true,
		"message":      fmt.Sprintf("Successfully saved %d frames", saved),
		"frames_saved": saved,
	})
}

func (app *App) AnalyzeEmotionsHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		SessionID string `json:"session_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		app.fail(w, http.StatusBadRequest, "No data received")
		return
	}

	if req.SessionID == "" {
		app.fail(w, http.StatusBadRequest, "Missing session_id")
		return
	}

	result, err := app.Service.AnalyzeSession(r.Context(), req.SessionID)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrSessionNotFound):
			app.fail(w, http.StatusNotFound, "Session not found")
		case errors.Is(err, analysis.ErrNoFrames):
			app.fail(w, http.StatusBadRequest, "No frames found")
		default:
			log.Printf("Emotion analysis error: %v", err)
			app.fail(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"success":             true,
		"session_id":          req.SessionID,
		"results":             result.Results,
		"average_emotions":    result.AverageEmotions,
		"dominant_emotion":    result.DominantEmotion,
		"total_frames":        result.TotalFrames,
		"successful_analyses": result.SuccessfulAnalyses,
		"model_used":          app.ModelAvailable,
	})
}

func (app *App) RecommendationsHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		DominantEmotion string         `json:"dominant_emotion"`
		Emotions        emotion.Scores `json:"emotions"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		app.fail(w, http.StatusBadRequest, "No data received")
		return
	}

	if req.DominantEmotion == "" {
		req.DominantEmotion = "neutral"
	}

	assessment := mindage.Assess(req.Emotions, req.DominantEmotion)
	recommendations := mindage.Recommendations(req.DominantEmotion, assessment)

	respondJSON(w, http.StatusOK, map[string]any{
		"success":          true,
		"dominant_emotion": req.DominantEmotion,
		"recommendations":  recommendations,
		"mind_age_analysis": map[string]any{
			"estimated_mind_age":     assessment.MindAge,
			"age_range":              assessment.AgeRange(),
			"personality_type":       assessment.PersonalityType,
			"emotional_intelligence": assessment.EmotionalIntelligence,
			"ei_description":         assessment.EIDescription,
			"maturity_score":         assessment.MaturityScore,
			"interpretation":         assessment.Interpretation(),
		},
		"general_tip": mindage.GeneralTip,
	})
}

func (app *App) HistoryHandler(w http.ResponseWriter, r *http.Request) {
	limit := 20
	if v := r.URL.Query().Get("limit"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed < 1 {
			app.fail(w, http.StatusBadRequest, "Invalid limit")
			return
		}
		limit = parsed
	}

	records, err := app.History.ListRecent(r.Context(), limit)
	if err != nil {
		log.Printf("History query error: %v", err)
		app.fail(w, http.StatusInternalServerError, err.Error())
		return
	}

	analyses := make([]map[string]any, 0, len(records))
	for _, record := range records {
		analyses = append(analyses, map[string]any{
			"session_id":          record.SessionID,
			"dominant_emotion":    record.DominantEmotion,
			"average_emotions":    record.AverageEmotions,
			"total_frames":        record.TotalFrames,
			"successful_analyses": record.SuccessfulAnalyses,
			"model_used":          record.ModelUsed,
			"analyzed_at":         record.AnalyzedAt.Format(time.RFC3339),
		})
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"success":  true,
		"analyses": analyses,
	})
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("Error encoding response: %v", err)
	}
}

func (app *App) fail(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]any{
		"success": false,
		"error":   message,
	})
}
