package store

import (
	"context"
	"sync"

	"github.com/BruksfildServices01/barbershop-booking/internal/models"
)

// MemoryStore guarda o snapshot em memória. Usado nos testes.
type MemoryStore struct {
	mu    sync.Mutex
	db    *models.Database
	Saves int // quantas vezes Save foi chamado
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Load(_ context.Context) (*models.Database, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return nil, ErrNotFound
	}
	return s.db.Clone(), nil
}

func (s *MemoryStore) Save(_ context.Context, db *models.Database) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.db = db.Clone()
	s.Saves++
	return nil
}
