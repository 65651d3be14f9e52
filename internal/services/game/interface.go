package game

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/roulette/internal/services/game Service

// Service defines the interface for game operations
type Service interface {
	// PlayGame runs a game from the first round to the last survivor and
	// saves its transcript
	PlayGame(ctx context.Context, input *PlayGameInput) (*PlayGameOutput, error)

	// GetRecord returns a saved game
	GetRecord(ctx context.Context, input *GetRecordInput) (*GetRecordOutput, error)

	// ListRecords returns saved games, newest first
	ListRecords(ctx context.Context, input *ListRecordsInput) (*ListRecordsOutput, error)
}
