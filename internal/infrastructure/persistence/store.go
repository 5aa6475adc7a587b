package persistence

import (
	"context"
	"os"
	"path/filepath"
	"sync"

	"github.com/hjumpers/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// Store owns the document. View runs a read-only closure against the current
// document; Update runs a read-modify-write closure and persists the result.
// Update calls are serialized, so two simultaneous order creations cannot
// lose each other's write (the flat-file lost-update anomaly).
type Store interface {
	View(ctx context.Context, fn func(doc *Document) error) error
	Update(ctx context.Context, fn func(doc *Document) error) error
}

// FileStore is a Store backed by a single pretty-printed JSON file
type FileStore struct {
	path string
	log  *zap.Logger
	mu   sync.Mutex
}

// NewFileStore creates a file-backed store at the given path
func NewFileStore(path string, log *zap.Logger) *FileStore {
	return &FileStore{
		path: path,
		log:  log.Named("store"),
	}
}

// Path returns the path of the backing file
func (s *FileStore) Path() string {
	return s.path
}

// load reads and parses the document, failing soft: a missing file or
// malformed JSON degrades to the empty document shape rather than an error.
func (s *FileStore) load() *Document {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.log.Error("Error reading database", zap.String("path", s.path), zap.Error(err))
		}
		return NewDocument()
	}
	doc, err := decodeDocument(data, s.log)
	if err != nil {
		s.log.Error("Error parsing database", zap.String("path", s.path), zap.Error(err))
		return NewDocument()
	}
	return doc
}

// save serializes the whole document and writes it back, creating the
// containing directory if absent
func (s *FileStore) save(doc *Document) error {
	data, err := encodeDocument(doc)
	if err != nil {
		s.log.Error("Error encoding database", zap.Error(err))
		return shared.ErrPersistence
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		s.log.Error("Error creating database directory", zap.Error(err))
		return shared.ErrPersistence
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		s.log.Error("Error writing database", zap.String("path", s.path), zap.Error(err))
		return shared.ErrPersistence
	}
	return nil
}

// View implements Store
func (s *FileStore) View(ctx context.Context, fn func(doc *Document) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	doc := s.load()
	s.mu.Unlock()
	return fn(doc)
}

// Update implements Store. The closure's mutation only becomes durable when
// the write succeeds; on a write failure the error is surfaced and the
// in-memory changes are discarded with the document.
func (s *FileStore) Update(ctx context.Context, fn func(doc *Document) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := s.load()
	if err := fn(doc); err != nil {
		return err
	}
	return s.save(doc)
}
