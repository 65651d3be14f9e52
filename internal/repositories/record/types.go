package record

import (
	"errors"

	"github.com/KirkDiggler/roulette/internal/models"
)

// ErrRecordNotFound is returned when a record is not found
var ErrRecordNotFound = errors.New("record not found")

// Store kinds accepted by configuration
const (
	StoreFile   = "file"
	StoreRedis  = "redis"
	StoreSQLite = "sqlite"
)

type SaveRecordInput struct {
	Record *models.Record
}

type SaveRecordOutput struct {
	// Location is where the record ended up: a path, a key or a row id
	Location string
}

type GetRecordInput struct {
	RecordID string
}

type ListRecordsInput struct {
	// Limit caps the number of records returned. Zero means no limit.
	Limit int
}

type ListRecordsOutput struct {
	Records []*models.Record
}

func validateRecord(input *SaveRecordInput) error {
	if input == nil || input.Record == nil {
		return errors.New("input and record cannot be nil")
	}
	if input.Record.ID == "" {
		return errors.New("record ID cannot be empty")
	}
	return nil
}
