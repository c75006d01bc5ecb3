package storage

import (
	"context"
	"sync"

	"github.com/healthdesk/carebot/internal/models"
)

type MemoryStorage struct {
	mu      sync.RWMutex
	queries map[int64][]*models.Query
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		queries: make(map[int64][]*models.Query),
	}
}

func (s *MemoryStorage) SaveQuery(ctx context.Context, query *models.Query) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := *query
	s.queries[query.ChatID] = append(s.queries[query.ChatID], &stored)
	return nil
}

// GetRecentQueries returns up to limit queries for the chat, newest
// first.
func (s *MemoryStorage) GetRecentQueries(ctx context.Context, chatID int64, limit int) ([]*models.Query, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stored := s.queries[chatID]
	if limit <= 0 || limit > len(stored) {
		limit = len(stored)
	}

	result := make([]*models.Query, 0, limit)
	for i := len(stored) - 1; i >= len(stored)-limit; i-- {
		copied := *stored[i]
		result = append(result, &copied)
	}
	return result, nil
}

func (s *MemoryStorage) Close() error {
	// Nothing to close for in-memory storage
	return nil
}
