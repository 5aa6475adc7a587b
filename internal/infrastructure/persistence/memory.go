package persistence

import (
	"context"
	"sync"

	"github.com/hjumpers/backend/internal/domain/shared"
)

// MemoryStore is an in-memory Store for tests and for wiring services without
// touching disk. It keeps the same serialization guarantees as FileStore.
type MemoryStore struct {
	mu       sync.Mutex
	doc      *Document
	failSave bool
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{doc: NewDocument()}
}

// FailNextSaves makes every subsequent Update report a persistence failure
// without applying the mutation, mimicking a broken disk
func (s *MemoryStore) FailNextSaves(fail bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failSave = fail
}

// Seed replaces the stored document
func (s *MemoryStore) Seed(doc *Document) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc = doc
}

// Snapshot returns a deep copy of the stored document
func (s *MemoryStore) Snapshot() *Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyDocument(s.doc)
}

// View implements Store
func (s *MemoryStore) View(ctx context.Context, fn func(doc *Document) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	doc := copyDocument(s.doc)
	s.mu.Unlock()
	return fn(doc)
}

// Update implements Store
func (s *MemoryStore) Update(ctx context.Context, fn func(doc *Document) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := copyDocument(s.doc)
	if err := fn(doc); err != nil {
		return err
	}
	if s.failSave {
		return shared.ErrPersistence
	}
	s.doc = doc
	return nil
}

func copyDocument(doc *Document) *Document {
	out := NewDocument()
	out.Products = append(out.Products, doc.Products...)
	out.Orders = append(out.Orders, doc.Orders...)
	out.Customers = append(out.Customers, doc.Customers...)
	out.Settings = doc.Settings
	return out
}
