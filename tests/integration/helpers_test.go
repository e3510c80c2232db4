package integration

import (
	"bytes"
	"database/sql"
	"encoding/base64"
	"encoding/json"
	"image"
	"image/color"
	"image/jpeg"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/kdimtricp/mindmirror/internal/analysis"
	"github.com/kdimtricp/mindmirror/internal/api"
	"github.com/kdimtricp/mindmirror/internal/database"
	"github.com/kdimtricp/mindmirror/internal/emotion"
	"github.com/kdimtricp/mindmirror/internal/storage"
)

type TestServer struct {
	Server  *httptest.Server
	App     *api.App
	DB      *database.DB
	History *database.AnalysisHistoryRepo
	Store   *storage.LocalSessionStore
	TempDir string
}

func setupTestServer(t *testing.T) *TestServer {
	tempDir, err := os.MkdirTemp("", "mindmirror_test_*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}

	sessionsDir := filepath.Join(tempDir, "sessions")
	store, err := storage.NewLocalSessionStore(sessionsDir)
	if err != nil {
		os.RemoveAll(tempDir)
		t.Fatalf("Failed to create session store: %v", err)
	}

	dbPath := filepath.Join(tempDir, "test.db")
	db, err := database.NewDB(database.Config{Path: dbPath})
	if err != nil {
		os.RemoveAll(tempDir)
		t.Fatalf("Failed to create database: %v", err)
	}

	history := database.NewAnalysisHistoryRepo(db)

	// Fixed seed keeps the synthetic classifier deterministic across runs.
	classifier := emotion.NewSyntheticClassifier(1234)
	service := analysis.NewService(store, classifier, history, false)

	app := &api.App{
		Service:       service,
		History:       history,
		MaxUploadSize: 16 * 1024 * 1024,
	}

	router := api.NewRouter(app)
	server := httptest.NewServer(router)

	return &TestServer{
		Server:  server,
		App:     app,
		DB:      db,
		History: history,
		Store:   store,
		TempDir: tempDir,
	}
}

func (ts *TestServer) Cleanup() {
	ts.Server.Close()
	ts.DB.Close()
	os.RemoveAll(ts.TempDir)
}

func jpegDataURL(t *testing.T, level uint8) string {
	t.Helper()

	img := image.NewGray(image.Rect(0, 0, 16, 16))
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			img.SetGray(x, y, color.Gray{Y: level})
		}
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, nil); err != nil {
		t.Fatalf("Failed to encode test frame: %v", err)
	}
	return "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(buf.Bytes())
}

func postJSON(t *testing.T, url string, payload any) (*http.Response, map[string]any) {
	t.Helper()

	data, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("Failed to marshal payload: %v", err)
	}

	resp, err := http.Post(url, "application/json", bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Failed to perform request: %v", err)
	}
	defer resp.Body.Close()

	var body map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	return resp, body
}

func createTestSession(t *testing.T, server string) string {
	t.Helper()

	resp, body := postJSON(t, server+"/api/create-session", map[string]any{})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Session creation failed: %d", resp.StatusCode)
	}
	id, _ := body["session_id"].(string)
	if id == "" {
		t.Fatal("No session_id in response")
	}
	return id
}

func countHistoryRecords(db *sql.DB) (int, error) {
	var count int
	err := db.QueryRow("SELECT COUNT(*) FROM analysis_history").Scan(&count)
	return count, err
}
