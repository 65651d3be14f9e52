package record

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/roulette/internal/repositories/record Repository

import (
	"context"

	"github.com/KirkDiggler/roulette/internal/models"
)

// Repository defines the interface for game record persistence
type Repository interface {
	// SaveRecord persists a finished game's transcript
	SaveRecord(ctx context.Context, input *SaveRecordInput) (*SaveRecordOutput, error)

	// GetRecord retrieves a record by ID
	GetRecord(ctx context.Context, input *GetRecordInput) (*models.Record, error)

	// ListRecords retrieves saved records, newest first
	ListRecords(ctx context.Context, input *ListRecordsInput) (*ListRecordsOutput, error)
}
