package storage

import (
	"context"
	"database/sql"
	"embed"
	"fmt"

	_ "github.com/lib/pq"

	"github.com/healthdesk/carebot/internal/models"
)

//go:embed migrations.sql
var migrations embed.FS

type DatabaseConfig struct {
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
	UseInMemory bool
}

type PostgresStorage struct {
	db *sql.DB
}

func NewPostgresStorage(config DatabaseConfig) (*PostgresStorage, error) {
	connStr := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		config.Host, config.Port, config.User, config.Password, config.DBName, config.SSLMode)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("error opening database: %v", err)
	}

	// Test the connection
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("error connecting to the database: %v", err)
	}

	storage := &PostgresStorage{db: db}

	if err := storage.initializeSchema(); err != nil {
		return nil, fmt.Errorf("error initializing database schema: %v", err)
	}

	return storage, nil
}

func (s *PostgresStorage) initializeSchema() error {
	migrationSQL, err := migrations.ReadFile("migrations.sql")
	if err != nil {
		return fmt.Errorf("error reading migrations file: %v", err)
	}

	if _, err := s.db.Exec(string(migrationSQL)); err != nil {
		return fmt.Errorf("error executing migrations: %v", err)
	}

	return nil
}

func (s *PostgresStorage) SaveQuery(ctx context.Context, query *models.Query) error {
	const stmt = `
		INSERT INTO queries (id, chat_id, input, intent, term, reply, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := s.db.ExecContext(ctx, stmt,
		query.ID,
		query.ChatID,
		query.Input,
		string(query.Intent),
		query.Term,
		query.Reply,
		query.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("error saving query: %v", err)
	}

	return nil
}

func (s *PostgresStorage) GetRecentQueries(ctx context.Context, chatID int64, limit int) ([]*models.Query, error) {
	const stmt = `
		SELECT id, chat_id, input, intent, term, reply, created_at
		FROM queries
		WHERE chat_id = $1
		ORDER BY created_at DESC
		LIMIT $2`

	rows, err := s.db.QueryContext(ctx, stmt, chatID, limit)
	if err != nil {
		return nil, fmt.Errorf("error querying recent queries: %v", err)
	}
	defer rows.Close()

	var queries []*models.Query
	for rows.Next() {
		query := &models.Query{}
		var intent string
		err := rows.Scan(
			&query.ID,
			&query.ChatID,
			&query.Input,
			&intent,
			&query.Term,
			&query.Reply,
			&query.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning query: %v", err)
		}
		query.Intent = models.Intent(intent)
		queries = append(queries, query)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating queries: %v", err)
	}

	return queries, nil
}

func (s *PostgresStorage) Close() error {
	return s.db.Close()
}
