package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/kdimtricp/mindmirror/internal/emotion"
)

// AnalysisRecord is one completed analyze-emotions run.
type AnalysisRecord struct {
	ID                 string
	SessionID          string
	DominantEmotion    string
	AverageEmotions    emotion.Scores
	TotalFrames        int
	SuccessfulAnalyses int
	ModelUsed          bool
	AnalyzedAt         time.Time
}

type AnalysisHistoryRepo struct {
	db *DB
}

func NewAnalysisHistoryRepo(db *DB) *AnalysisHistoryRepo {
	return &AnalysisHistoryRepo{db: db}
}

func (r *AnalysisHistoryRepo) Insert(ctx context.Context, record *AnalysisRecord) error {
	record.ID = uuid.New().String()

	if record.AverageEmotions == nil {
		record.AverageEmotions = emotion.ZeroScores()
	}

	emotionsJSON, err := json.Marshal(record.AverageEmotions)
	if err != nil {
		return fmt.Errorf("failed to marshal average emotions: %w", err)
	}

	query := `
		INSERT INTO analysis_history (
			id, session_id, dominant_emotion, average_emotions,
			total_frames, successful_analyses, model_used, analyzed_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	_, err = r.db.conn.ExecContext(ctx, query,
		record.ID,
		record.SessionID,
		record.DominantEmotion,
		string(emotionsJSON),
		record.TotalFrames,
		record.SuccessfulAnalyses,
		record.ModelUsed,
		record.AnalyzedAt,
	)
	return err
}

func (r *AnalysisHistoryRepo) ListRecent(ctx context.Context, limit int) ([]*AnalysisRecord, error) {
	query := `
		SELECT id, session_id, dominant_emotion, average_emotions,
			   total_frames, successful_analyses, model_used, analyzed_at
		FROM analysis_history
		ORDER BY analyzed_at DESC
		LIMIT ?`

	rows, err := r.db.conn.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query analysis history: %w", err)
	}
	defer rows.Close()

	var records []*AnalysisRecord
	for rows.Next() {
		record, err := scanRecord(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan analysis record: %w", err)
		}
		records = append(records, record)
	}

	return records, rows.Err()
}

// GetBySessionID returns the most recent record for the session, or nil when
// the session was never analyzed.
func (r *AnalysisHistoryRepo) GetBySessionID(ctx context.Context, sessionID string) (*AnalysisRecord, error) {
	query := `
		SELECT id, session_id, dominant_emotion, average_emotions,
			   total_frames, successful_analyses, model_used, analyzed_at
		FROM analysis_history
		WHERE session_id = ?
		ORDER BY analyzed_at DESC
		LIMIT 1`

	row := r.db.conn.QueryRowContext(ctx, query, sessionID)
	record, err := scanRecord(row.Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return record, nil
}

func scanRecord(scan func(dest ...any) error) (*AnalysisRecord, error) {
	record := &AnalysisRecord{}
	var emotionsJSON string

	err := scan(
		&record.ID,
		&record.SessionID,
		&record.DominantEmotion,
		&emotionsJSON,
		&record.TotalFrames,
		&record.SuccessfulAnalyses,
		&record.ModelUsed,
		&record.AnalyzedAt,
	)
	if err != nil {
		return nil, err
	}

	if emotionsJSON != "" {
		if err := json.Unmarshal([]byte(emotionsJSON), &record.AverageEmotions); err != nil {
			record.AverageEmotions = emotion.ZeroScores()
		}
	}

	return record, nil
}
