package record

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/KirkDiggler/roulette/internal/models"
)

const metaSuffix = ".json"

// FileConfig holds configuration for the file record store
type FileConfig struct {
	// Dir is where records are written. It is created if missing.
	Dir string
}

// fileRepository writes each record twice: the flat text transcript for
// people and a JSON copy for reading it back.
type fileRepository struct {
	dir string
}

// NewFile creates a file-backed record repository
func NewFile(cfg *FileConfig) (*fileRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if strings.TrimSpace(cfg.Dir) == "" {
		return nil, errors.New("record directory cannot be empty")
	}

	dir := filepath.Clean(cfg.Dir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create record directory: %w", err)
	}

	return &fileRepository{dir: dir}, nil
}

func (r *fileRepository) metaPath(id string) string {
	return filepath.Join(r.dir, id+metaSuffix)
}

// SaveRecord writes the transcript and its JSON copy
func (r *fileRepository) SaveRecord(ctx context.Context, input *SaveRecordInput) (*SaveRecordOutput, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := validateRecord(input); err != nil {
		return nil, err
	}
	rec := input.Record

	recordJSON, err := json.Marshal(rec)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal record: %w", err)
	}
	if err := os.WriteFile(r.metaPath(rec.ID), recordJSON, 0o644); err != nil {
		return nil, fmt.Errorf("failed to write record: %w", err)
	}

	textPath := filepath.Join(r.dir, rec.FileName())
	if err := os.WriteFile(textPath, []byte(rec.Format()), 0o644); err != nil {
		return nil, fmt.Errorf("failed to write transcript: %w", err)
	}

	return &SaveRecordOutput{Location: textPath}, nil
}

// GetRecord reads a record back from its JSON copy
func (r *fileRepository) GetRecord(ctx context.Context, input *GetRecordInput) (*models.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if input == nil || input.RecordID == "" {
		return nil, errors.New("input and record ID cannot be empty")
	}
	if strings.ContainsAny(input.RecordID, `/\`) {
		return nil, ErrRecordNotFound
	}

	return r.readRecord(r.metaPath(input.RecordID))
}

func (r *fileRepository) readRecord(path string) (*models.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrRecordNotFound
		}
		return nil, fmt.Errorf("failed to read record: %w", err)
	}

	var rec models.Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("failed to unmarshal record: %w", err)
	}
	return &rec, nil
}

// ListRecords returns saved records, newest first
func (r *fileRepository) ListRecords(ctx context.Context, input *ListRecordsInput) (*ListRecordsOutput, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	paths, err := filepath.Glob(filepath.Join(r.dir, "*"+metaSuffix))
	if err != nil {
		return nil, fmt.Errorf("failed to list records: %w", err)
	}

	records := make([]*models.Record, 0, len(paths))
	for _, path := range paths {
		rec, err := r.readRecord(path)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].CreatedAt.After(records[j].CreatedAt)
	})
	if input != nil && input.Limit > 0 && len(records) > input.Limit {
		records = records[:input.Limit]
	}

	return &ListRecordsOutput{Records: records}, nil
}
