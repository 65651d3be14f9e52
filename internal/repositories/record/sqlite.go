package record

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/KirkDiggler/roulette/internal/models"

	_ "modernc.org/sqlite"
)

const recordSchema = `
CREATE TABLE IF NOT EXISTS game_records (
	id         TEXT PRIMARY KEY,
	winner     TEXT NOT NULL,
	rounds     INTEGER NOT NULL,
	created_at INTEGER NOT NULL,
	entries    TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS game_records_created_at ON game_records (created_at);
`

// SQLiteConfig holds configuration for the SQLite record repository
type SQLiteConfig struct {
	// Path is the database file
	Path string
}

// sqliteRepository implements the Repository interface using SQLite
type sqliteRepository struct {
	db *sql.DB
}

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

// NewSQLite opens the database and creates the schema if needed
func NewSQLite(cfg *SQLiteConfig) (*sqliteRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if strings.TrimSpace(cfg.Path) == "" {
		return nil, errors.New("sqlite path cannot be empty")
	}

	dsn := filepath.Clean(cfg.Path) + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if _, err := db.Exec(recordSchema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return &sqliteRepository{db: db}, nil
}

// Close closes the SQLite handle
func (r *sqliteRepository) Close() error {
	if r == nil || r.db == nil {
		return nil
	}
	return r.db.Close()
}

// SaveRecord inserts or replaces a record
func (r *sqliteRepository) SaveRecord(ctx context.Context, input *SaveRecordInput) (*SaveRecordOutput, error) {
	if err := validateRecord(input); err != nil {
		return nil, err
	}
	rec := input.Record

	entriesJSON, err := json.Marshal(rec.Entries)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal entries: %w", err)
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO game_records (id, winner, rounds, created_at, entries) VALUES (?, ?, ?, ?, ?)`,
		rec.ID, rec.Winner, rec.Rounds, toMillis(rec.CreatedAt), string(entriesJSON),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to save record: %w", err)
	}

	return &SaveRecordOutput{Location: "game_records/" + rec.ID}, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (*models.Record, error) {
	var (
		rec       models.Record
		createdAt int64
		entries   string
	)
	if err := row.Scan(&rec.ID, &rec.Winner, &rec.Rounds, &createdAt, &entries); err != nil {
		return nil, err
	}
	rec.CreatedAt = fromMillis(createdAt)
	if err := json.Unmarshal([]byte(entries), &rec.Entries); err != nil {
		return nil, fmt.Errorf("failed to unmarshal entries: %w", err)
	}
	return &rec, nil
}

// GetRecord retrieves a record by ID
func (r *sqliteRepository) GetRecord(ctx context.Context, input *GetRecordInput) (*models.Record, error) {
	if input == nil || input.RecordID == "" {
		return nil, errors.New("input and record ID cannot be empty")
	}

	row := r.db.QueryRowContext(ctx,
		`SELECT id, winner, rounds, created_at, entries FROM game_records WHERE id = ?`,
		input.RecordID,
	)
	rec, err := scanRecord(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRecordNotFound
		}
		return nil, fmt.Errorf("failed to get record: %w", err)
	}
	return rec, nil
}

// ListRecords retrieves records newest first
func (r *sqliteRepository) ListRecords(ctx context.Context, input *ListRecordsInput) (*ListRecordsOutput, error) {
	limit := -1
	if input != nil && input.Limit > 0 {
		limit = input.Limit
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT id, winner, rounds, created_at, entries FROM game_records ORDER BY created_at DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list records: %w", err)
	}
	defer rows.Close()

	records := []*models.Record{}
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list records: %w", err)
	}

	return &ListRecordsOutput{Records: records}, nil
}
