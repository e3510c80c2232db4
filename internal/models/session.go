package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/kdimtricp/mindmirror/internal/emotion"
)

// Session status values. Transitions are monotonic:
// created -> frames_uploaded -> analyzed.
const (
	StatusCreated        = "created"
	StatusFramesUploaded = "frames_uploaded"
	StatusAnalyzed       = "analyzed"
)

// Session is the JSON document persisted per capture session. It accumulates
// state as the session moves through upload and analysis.
type Session struct {
	ID              string          `json:"session_id"`
	CreatedAt       time.Time       `json:"created_at"`
	Status          string          `json:"status"`
	FramesCount     int             `json:"frames_count"`
	ModelAvailable  bool            `json:"model_available"`
	Frames          []FrameRecord   `json:"frames,omitempty"`
	UploadedAt      *time.Time      `json:"uploaded_at,omitempty"`
	AnalysisResults []FrameAnalysis `json:"analysis_results,omitempty"`
	AverageEmotions emotion.Scores  `json:"average_emotions,omitempty"`
	DominantEmotion string          `json:"dominant_emotion,omitempty"`
	AnalyzedAt      *time.Time      `json:"analyzed_at,omitempty"`
}

// FrameRecord describes one stored frame image. The timestamp is the
// client-supplied capture time, echoed back verbatim.
type FrameRecord struct {
	FrameID   int    `json:"frame_id"`
	Filename  string `json:"filename"`
	Timestamp string `json:"timestamp"`
}

// FrameAnalysis is the classification result for one frame. Failed analyses
// keep an all-zero emotion map so aggregation stays total.
type FrameAnalysis struct {
	FrameID         int            `json:"frame"`
	Timestamp       string         `json:"timestamp"`
	Filename        string         `json:"filename"`
	Emotions        emotion.Scores `json:"emotions"`
	DominantEmotion string         `json:"dominant_emotion"`
	Success         bool           `json:"success"`
	Error           string         `json:"error,omitempty"`
}

func NewSession(modelAvailable bool) *Session {
	return &Session{
		ID:             uuid.New().String(),
		CreatedAt:      time.Now(),
		Status:         StatusCreated,
		ModelAvailable: modelAvailable,
	}
}
