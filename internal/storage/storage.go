package storage

import (
	"context"

	"github.com/healthdesk/carebot/internal/models"
)

// Storage records routed queries for the /history command. The router
// itself never reads from it.
type Storage interface {
	SaveQuery(ctx context.Context, query *models.Query) error
	GetRecentQueries(ctx context.Context, chatID int64, limit int) ([]*models.Query, error)
	Close() error
}
