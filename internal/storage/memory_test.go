package storage

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/healthdesk/carebot/internal/models"
)

func newQuery(chatID int64, input string) *models.Query {
	return &models.Query{
		ID:        fmt.Sprintf("id-%s", input),
		ChatID:    chatID,
		Input:     input,
		Intent:    models.IntentGeneral,
		Reply:     "reply to " + input,
		CreatedAt: time.Now(),
	}
}

func TestMemoryStorage_SaveAndGetRecent(t *testing.T) {
	s := NewMemoryStorage()
	ctx := context.Background()

	for i := 1; i <= 3; i++ {
		require.NoError(t, s.SaveQuery(ctx, newQuery(1, fmt.Sprintf("q%d", i))))
	}
	require.NoError(t, s.SaveQuery(ctx, newQuery(2, "other chat")))

	queries, err := s.GetRecentQueries(ctx, 1, 10)
	require.NoError(t, err)
	require.Len(t, queries, 3)

	// Newest first
	assert.Equal(t, "q3", queries[0].Input)
	assert.Equal(t, "q2", queries[1].Input)
	assert.Equal(t, "q1", queries[2].Input)
}

func TestMemoryStorage_GetRecentLimit(t *testing.T) {
	s := NewMemoryStorage()
	ctx := context.Background()

	for i := 1; i <= 5; i++ {
		require.NoError(t, s.SaveQuery(ctx, newQuery(7, fmt.Sprintf("q%d", i))))
	}

	queries, err := s.GetRecentQueries(ctx, 7, 2)
	require.NoError(t, err)
	require.Len(t, queries, 2)
	assert.Equal(t, "q5", queries[0].Input)
	assert.Equal(t, "q4", queries[1].Input)
}

func TestMemoryStorage_UnknownChat(t *testing.T) {
	s := NewMemoryStorage()

	queries, err := s.GetRecentQueries(context.Background(), 99, 5)
	require.NoError(t, err)
	assert.Empty(t, queries)
}

func TestMemoryStorage_SaveCopiesQuery(t *testing.T) {
	s := NewMemoryStorage()
	ctx := context.Background()

	q := newQuery(1, "original")
	require.NoError(t, s.SaveQuery(ctx, q))
	q.Input = "mutated after save"

	queries, err := s.GetRecentQueries(ctx, 1, 1)
	require.NoError(t, err)
	require.Len(t, queries, 1)
	assert.Equal(t, "original", queries[0].Input)
}
