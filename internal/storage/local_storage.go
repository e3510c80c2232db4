package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/kdimtricp/mindmirror/internal/models"
)

const sessionDocName = "session.json"

// LocalSessionStore keeps one directory per session under basePath, holding
// the session.json document and the frame image files.
type LocalSessionStore struct {
	basePath string

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewLocalSessionStore(basePath string) (*LocalSessionStore, error) {
	if err := os.MkdirAll(basePath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create sessions directory: %w", err)
	}
	return &LocalSessionStore{
		basePath: basePath,
		locks:    make(map[string]*sync.Mutex),
	}, nil
}

func (s *LocalSessionStore) Create(session *models.Session) error {
	dir, err := s.sessionDir(session.ID)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create session directory: %w", err)
	}

	return s.writeDoc(dir, session)
}

func (s *LocalSessionStore) Load(id string) (*models.Session, error) {
	dir, err := s.sessionDir(id)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(filepath.Join(dir, sessionDocName))
	if os.IsNotExist(err) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read session document: %w", err)
	}

	var session models.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("failed to decode session document: %w", err)
	}

	return &session, nil
}

func (s *LocalSessionStore) Save(session *models.Session) error {
	dir, err := s.sessionDir(session.ID)
	if err != nil {
		return err
	}

	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return ErrSessionNotFound
	}

	return s.writeDoc(dir, session)
}

// writeDoc replaces the session document atomically via temp file + rename.
func (s *LocalSessionStore) writeDoc(dir string, session *models.Session) error {
	tmp, err := os.CreateTemp(dir, "session-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp document: %w", err)
	}

	encoder := json.NewEncoder(tmp)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(session); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to encode session document: %w", err)
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to close temp document: %w", err)
	}

	if err := os.Rename(tmp.Name(), filepath.Join(dir, sessionDocName)); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to replace session document: %w", err)
	}

	return nil
}

func (s *LocalSessionStore) SaveFrame(sessionID, filename string, data []byte) error {
	path, err := s.framePath(sessionID, filename)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to save frame: %w", err)
	}

	return nil
}

func (s *LocalSessionStore) ReadFrame(sessionID, filename string) ([]byte, error) {
	path, err := s.framePath(sessionID, filename)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read frame: %w", err)
	}

	return data, nil
}

func (s *LocalSessionStore) Delete(sessionID string) error {
	dir, err := s.sessionDir(sessionID)
	if err != nil {
		return err
	}

	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return ErrSessionNotFound
	}

	if err := os.RemoveAll(dir); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	return nil
}

func (s *LocalSessionStore) Lock(sessionID string) func() {
	s.mu.Lock()
	lock, ok := s.locks[sessionID]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[sessionID] = lock
	}
	s.mu.Unlock()

	lock.Lock()
	return lock.Unlock
}

func (s *LocalSessionStore) sessionDir(id string) (string, error) {
	if id == "" || id != filepath.Clean(id) || strings.ContainsAny(id, `/\`) || strings.Contains(id, "..") {
		return "", fmt.Errorf("invalid session id")
	}
	return filepath.Join(s.basePath, id), nil
}

func (s *LocalSessionStore) framePath(sessionID, filename string) (string, error) {
	dir, err := s.sessionDir(sessionID)
	if err != nil {
		return "", err
	}

	if filename == "" || filename != filepath.Clean(filename) || strings.ContainsAny(filename, `/\`) || strings.Contains(filename, "..") {
		return "", fmt.Errorf("invalid frame filename")
	}

	return filepath.Join(dir, filename), nil
}
