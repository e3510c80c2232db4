package analysis

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image/jpeg"
	"log"
	"strings"
	"time"

	"github.com/kdimtricp/mindmirror/internal/database"
	"github.com/kdimtricp/mindmirror/internal/emotion"
	"github.com/kdimtricp/mindmirror/internal/models"
	"github.com/kdimtricp/mindmirror/internal/storage"
)

// ErrNoFrames reports an analysis request against a session that has no
// uploaded frames.
var ErrNoFrames = errors.New("no frames found")

const frameJPEGQuality = 90

// Service runs the capture pipeline: session creation, frame ingestion,
// per-frame classification and aggregation. All dependencies are injected at
// construction and read-only afterwards.
type Service struct {
	store          storage.SessionStore
	classifier     emotion.Classifier
	history        *database.AnalysisHistoryRepo
	modelAvailable bool
}

func NewService(store storage.SessionStore, classifier emotion.Classifier, history *database.AnalysisHistoryRepo, modelAvailable bool) *Service {
	return &Service{
		store:          store,
		classifier:     classifier,
		history:        history,
		modelAvailable: modelAvailable,
	}
}

// FrameInput is one client-submitted frame: a base64 or data-URL image plus
// the capture timestamp string.
type FrameInput struct {
	ImageData string `json:"imageData"`
	Timestamp string `json:"timestamp"`
}

// Result is the outcome of analyzing every frame in a session.
type Result struct {
	Results            []models.FrameAnalysis
	AverageEmotions    emotion.Scores
	DominantEmotion    string
	TotalFrames        int
	SuccessfulAnalyses int
}

func (s *Service) CreateSession() (*models.Session, error) {
	session := models.NewSession(s.modelAvailable)

	if err := s.store.Create(session); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	log.Printf("Created session: %s", session.ID)
	return session, nil
}

// IngestFrames decodes and persists the submitted frames. Frames that fail to
// decode are logged and skipped; the session's frames field is replaced
// wholesale with the ones that saved.
func (s *Service) IngestFrames(sessionID string, inputs []FrameInput) (int, error) {
	unlock := s.store.Lock(sessionID)
	defer unlock()

	session, err := s.store.Load(sessionID)
	if err != nil {
		return 0, err
	}

	saved := []models.FrameRecord{}
	for i, input := range inputs {
		frameID := i + 1

		img, err := emotion.DecodeBase64Image(input.ImageData)
		if err != nil {
			log.Printf("Error saving frame %d: %v", frameID, err)
			continue
		}

		var buf bytes.Buffer
		if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: frameJPEGQuality}); err != nil {
			log.Printf("Error saving frame %d: %v", frameID, err)
			continue
		}

		filename := frameFilename(frameID, input.Timestamp)
		if err := s.store.SaveFrame(sessionID, filename, buf.Bytes()); err != nil {
			log.Printf("Error saving frame %d: %v", frameID, err)
			continue
		}

		saved = append(saved, models.FrameRecord{
			FrameID:   frameID,
			Filename:  filename,
			Timestamp: input.Timestamp,
		})
		log.Printf("Saved frame %d: %s", frameID, filename)
	}

	now := time.Now()
	session.Frames = saved
	session.FramesCount = len(saved)
	session.Status = models.StatusFramesUploaded
	session.UploadedAt = &now

	if err := s.store.Save(session); err != nil {
		return 0, fmt.Errorf("failed to update session: %w", err)
	}

	return len(saved), nil
}

// AnalyzeSession classifies every stored frame in upload order, averages the
// successful results per label and persists everything back into the session
// document. Per-frame failures degrade that frame to all-zero scores; only a
// missing session or an empty frame list aborts.
func (s *Service) AnalyzeSession(ctx context.Context, sessionID string) (*Result, error) {
	unlock := s.store.Lock(sessionID)
	defer unlock()

	session, err := s.store.Load(sessionID)
	if err != nil {
		return nil, err
	}

	if len(session.Frames) == 0 {
		return nil, ErrNoFrames
	}

	log.Printf("Starting emotion analysis for %d frames", len(session.Frames))

	results := make([]models.FrameAnalysis, 0, len(session.Frames))
	for _, frame := range session.Frames {
		results = append(results, s.analyzeFrame(ctx, sessionID, frame))
	}

	successful := 0
	for _, r := range results {
		if r.Success {
			successful++
		}
	}

	averages := emotion.ZeroScores()
	dominant := "neutral"
	if successful > 0 {
		for _, label := range emotion.Labels {
			var total float64
			for _, r := range results {
				if r.Success {
					total += r.Emotions[label]
				}
			}
			averages[label] = emotion.Round2(total / float64(successful))
		}
		dominant = emotion.Dominant(averages)
	}

	now := time.Now()
	session.Status = models.StatusAnalyzed
	session.AnalysisResults = results
	session.AverageEmotions = averages
	session.DominantEmotion = dominant
	session.AnalyzedAt = &now

	if err := s.store.Save(session); err != nil {
		return nil, fmt.Errorf("failed to update session: %w", err)
	}

	if s.history != nil {
		record := &database.AnalysisRecord{
			SessionID:          sessionID,
			DominantEmotion:    dominant,
			AverageEmotions:    averages,
			TotalFrames:        len(session.Frames),
			SuccessfulAnalyses: successful,
			ModelUsed:          s.modelAvailable,
			AnalyzedAt:         now,
		}
		if err := s.history.Insert(ctx, record); err != nil {
			log.Printf("Error recording analysis history: %v", err)
		}
	}

	return &Result{
		Results:            results,
		AverageEmotions:    averages,
		DominantEmotion:    dominant,
		TotalFrames:        len(session.Frames),
		SuccessfulAnalyses: successful,
	}, nil
}

func (s *Service) analyzeFrame(ctx context.Context, sessionID string, frame models.FrameRecord) models.FrameAnalysis {
	result := models.FrameAnalysis{
		FrameID:         frame.FrameID,
		Timestamp:       frame.Timestamp,
		Filename:        frame.Filename,
		Emotions:        emotion.ZeroScores(),
		DominantEmotion: "neutral",
	}

	data, err := s.store.ReadFrame(sessionID, frame.Filename)
	if err != nil {
		log.Printf("Error analyzing frame %d: %v", frame.FrameID, err)
		result.Error = err.Error()
		return result
	}

	img, err := emotion.DecodeImage(data)
	if err != nil {
		log.Printf("Error analyzing frame %d: %v", frame.FrameID, err)
		result.Error = err.Error()
		return result
	}

	scores, err := s.classifier.Classify(ctx, img)
	if err != nil {
		log.Printf("Error analyzing frame %d: %v", frame.FrameID, err)
		result.Error = err.Error()
		return result
	}

	result.Emotions = scores
	result.DominantEmotion = emotion.Dominant(scores)
	result.Success = true
	log.Printf("Analyzed frame %d", frame.FrameID)
	return result
}

var timestampSanitizer = strings.NewReplacer(":", "-", ".", "-", "/", "-", "\\", "-")

func frameFilename(frameID int, timestamp string) string {
	return fmt.Sprintf("frame_%02d_%s.jpg", frameID, timestampSanitizer.Replace(timestamp))
}
