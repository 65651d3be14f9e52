// Package transcript records the ordered log of a game and saves it as a
// game record.
package transcript

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/KirkDiggler/roulette/internal/common/clock"
	"github.com/KirkDiggler/roulette/internal/common/uuid"
	"github.com/KirkDiggler/roulette/internal/models"
	recordRepo "github.com/KirkDiggler/roulette/internal/repositories/record"
)

var (
	ErrNilConfig     = errors.New("config cannot be nil")
	ErrNilClock      = errors.New("clock cannot be nil")
	ErrNoRepository  = errors.New("no record repository configured")
	ErrNilUUIDSource = errors.New("UUID generator cannot be nil")
)

// Config holds configuration for a transcript
type Config struct {
	Clock         clock.Clock
	UUIDGenerator uuid.UUID

	// RecordRepo is where Save writes. Optional; without it Save fails.
	RecordRepo recordRepo.Repository

	// Logger mirrors every entry as it is recorded. Optional.
	Logger *zap.Logger
}

// Transcript keeps game events in emission order
type Transcript struct {
	clock      clock.Clock
	uuid       uuid.UUID
	recordRepo recordRepo.Repository
	logger     *zap.Logger

	entries []*models.RecordEntry
	winner  string
	rounds  int
}

// New creates an empty transcript
func New(cfg *Config) (*Transcript, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}
	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDSource
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Transcript{
		clock:      cfg.Clock,
		uuid:       cfg.UUIDGenerator,
		recordRepo: cfg.RecordRepo,
		logger:     logger,
	}, nil
}

func (t *Transcript) add(level models.EntryLevel, message string) {
	t.entries = append(t.entries, &models.RecordEntry{
		Time:    t.clock.Now(),
		Level:   level,
		Message: message,
	})

	fields := []zap.Field{zap.String("level", string(level))}
	if level == models.LevelWarning {
		t.logger.Warn(message, fields...)
		return
	}
	t.logger.Info(message, fields...)
}

// Info records general information
func (t *Transcript) Info(message string) {
	t.add(models.LevelInfo, message)
}

// Action records something the crupier or a player did
func (t *Transcript) Action(message string) {
	t.add(models.LevelAction, message)
}

// Warning records a harmless irregularity
func (t *Transcript) Warning(message string) {
	t.add(models.LevelWarning, message)
}

// Danger records the build-up to a trigger pull
func (t *Transcript) Danger(message string) {
	t.add(models.LevelDanger, message)
}

// Result records the outcome of a trigger pull
func (t *Transcript) Result(message string) {
	t.add(models.LevelResult, message)
}

// Player records an event attributed to a player
func (t *Transcript) Player(name, message string) {
	t.add(models.PlayerLevel(name), message)
}

// Round records the start of round n
func (t *Transcript) Round(n int) {
	t.rounds = n
	t.add(models.LevelRound, fmt.Sprintf("========== Round %d ==========", n))
}

// GameOver records the end of the game. An empty winner means nobody
// survived.
func (t *Transcript) GameOver(winner string) {
	t.winner = winner
	if winner == "" {
		t.add(models.LevelGameOver, "No survivors!")
		return
	}
	t.add(models.LevelGameOver, "Winner: "+winner)
}

// Entries returns a copy of the recorded entries
func (t *Transcript) Entries() []*models.RecordEntry {
	entries := make([]*models.RecordEntry, len(t.entries))
	for i, e := range t.entries {
		entry := *e
		entries[i] = &entry
	}
	return entries
}

// Clear drops every entry
func (t *Transcript) Clear() {
	t.entries = nil
	t.winner = ""
	t.rounds = 0
}

// Record builds the game record for the current entries
func (t *Transcript) Record() *models.Record {
	return &models.Record{
		ID:        t.uuid.NewUUID(),
		Winner:    t.winner,
		Rounds:    t.rounds,
		CreatedAt: t.clock.Now(),
		Entries:   t.Entries(),
	}
}

// Save persists the transcript as a new record
func (t *Transcript) Save(ctx context.Context) (*models.Record, string, error) {
	if t.recordRepo == nil {
		return nil, "", ErrNoRepository
	}

	rec := t.Record()
	out, err := t.recordRepo.SaveRecord(ctx, &recordRepo.SaveRecordInput{
		Record: rec,
	})
	if err != nil {
		return nil, "", fmt.Errorf("failed to save transcript: %w", err)
	}

	return rec, out.Location, nil
}
