package storage

import (
	"errors"

	"github.com/kdimtricp/mindmirror/internal/models"
)

// ErrSessionNotFound reports an unknown or deleted session id.
var ErrSessionNotFound = errors.New("session not found")

// SessionStore persists session documents and their frame images.
type SessionStore interface {
	// Create makes the session's storage area and writes its initial document.
	Create(session *models.Session) error
	// Load returns ErrSessionNotFound when no document exists for the id.
	Load(id string) (*models.Session, error)
	// Save overwrites the session document. Readers never observe a partial write.
	Save(session *models.Session) error
	SaveFrame(sessionID, filename string, data []byte) error
	ReadFrame(sessionID, filename string) ([]byte, error)
	// Delete removes the session document and every stored frame.
	Delete(sessionID string) error
	// Lock serializes read-modify-write cycles on one session. The returned
	// function releases the lock.
	Lock(sessionID string) func()
}
