package game

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/KirkDiggler/roulette/internal/common/clock"
	"github.com/KirkDiggler/roulette/internal/common/uuid"
	"github.com/KirkDiggler/roulette/internal/random"
	recordRepo "github.com/KirkDiggler/roulette/internal/repositories/record"
	"github.com/KirkDiggler/roulette/internal/revolver"
	"github.com/KirkDiggler/roulette/internal/services/messaging"
	"github.com/KirkDiggler/roulette/internal/services/transcript"
	"github.com/KirkDiggler/roulette/internal/table"
)

// service implements the Service interface
type service struct {
	recordRepo recordRepo.Repository
	random     random.Source
	clock      clock.Clock
	uuid       uuid.UUID
	messages   messaging.Service
	logger     *zap.Logger

	spinMin int
	spinMax int
}

// New creates a new game service
func New(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.RecordRepo == nil {
		return nil, ErrNilRecordRepo
	}
	if cfg.Random == nil {
		return nil, ErrNilRandom
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}
	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &service{
		recordRepo: cfg.RecordRepo,
		random:     cfg.Random,
		clock:      cfg.Clock,
		uuid:       cfg.UUIDGenerator,
		messages:   cfg.Messages,
		logger:     logger,
		spinMin:    cfg.SpinMin,
		spinMax:    cfg.SpinMax,
	}, nil
}

// PlayGame runs a full game and saves its transcript
func (s *service) PlayGame(ctx context.Context, input *PlayGameInput) (*PlayGameOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	mode := input.Mode
	if mode == "" {
		mode = ModeInteractive
	}

	chooser := input.Chooser
	if chooser == nil {
		if mode != ModeAutomatic {
			return nil, ErrNilChooser
		}
		var err error
		chooser, err = NewRandomChooser(s.random)
		if err != nil {
			return nil, err
		}
	}

	nameOne := strings.TrimSpace(input.PlayerOneName)
	if nameOne == "" {
		nameOne = DefaultPlayerOneName
	}
	nameTwo := strings.TrimSpace(input.PlayerTwoName)
	if nameTwo == "" {
		nameTwo = DefaultPlayerTwoName
	}

	lives := input.Lives
	if lives <= 0 {
		lives = DefaultLives
	}

	bullets := input.BulletsPerRound
	if bullets == 0 {
		bullets = DefaultBulletsPerRound
	}
	bullets = ClampBullets(bullets)

	r, err := revolver.New(&revolver.Config{
		Random:  s.random,
		Logger:  s.logger,
		SpinMin: s.spinMin,
		SpinMax: s.spinMax,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create revolver: %w", err)
	}

	crupier, err := table.NewCrupier(r)
	if err != nil {
		return nil, fmt.Errorf("failed to create crupier: %w", err)
	}

	playerOne, err := table.NewPlayer(nameOne, lives, crupier.Custody())
	if err != nil {
		return nil, fmt.Errorf("failed to seat %s: %w", nameOne, err)
	}
	playerTwo, err := table.NewPlayer(nameTwo, lives, crupier.Custody())
	if err != nil {
		return nil, fmt.Errorf("failed to seat %s: %w", nameTwo, err)
	}

	log, err := transcript.New(&transcript.Config{
		Clock:         s.clock,
		UUIDGenerator: s.uuid,
		RecordRepo:    s.recordRepo,
		Logger:        s.logger,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create transcript: %w", err)
	}

	engine, err := NewEngine(&EngineConfig{
		Crupier:         crupier,
		PlayerOne:       playerOne,
		PlayerTwo:       playerTwo,
		BulletsPerRound: bullets,
		Chooser:         chooser,
		Presenter:       input.Presenter,
		Audio:           input.Audio,
		Transcript:      log,
		Messages:        s.messages,
		Logger:          s.logger,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create engine: %w", err)
	}

	if mode == ModeAutomatic {
		log.Info("=== AUTOMATIC MODE ===")
	}
	log.Info(fmt.Sprintf("%s vs %s", nameOne, nameTwo))
	log.Info(fmt.Sprintf("Lives: %d | Bullets: %d", lives, bullets))

	s.logger.Info("game started",
		zap.String("mode", string(mode)),
		zap.String("player_one", nameOne),
		zap.String("player_two", nameTwo),
		zap.Int("lives", lives),
		zap.Int("bullets", bullets),
	)

	outcome, err := engine.Run(ctx)
	if err != nil {
		return nil, err
	}

	output := &PlayGameOutput{
		Winner: outcome.Winner,
		Rounds: outcome.Rounds,
		Turns:  outcome.Turns,
	}

	// A finished game stands even when its record cannot be written.
	rec, location, err := log.Save(ctx)
	if err != nil {
		s.logger.Warn("failed to save game record", zap.Error(err))
		output.SaveError = err
	} else {
		output.RecordID = rec.ID
		output.RecordLocation = location
		log.Info(fmt.Sprintf("Game record saved to: %s", location))
	}
	output.Entries = log.Entries()

	return output, nil
}

// GetRecord returns a saved game
func (s *service) GetRecord(ctx context.Context, input *GetRecordInput) (*GetRecordOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}
	if input.RecordID == "" {
		return nil, errors.New("record ID cannot be empty")
	}

	rec, err := s.recordRepo.GetRecord(ctx, &recordRepo.GetRecordInput{
		RecordID: input.RecordID,
	})
	if err != nil {
		if errors.Is(err, recordRepo.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, fmt.Errorf("failed to get record: %w", err)
	}

	return &GetRecordOutput{Record: rec}, nil
}

// ListRecords returns saved games, newest first
func (s *service) ListRecords(ctx context.Context, input *ListRecordsInput) (*ListRecordsOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}
	if input.Limit < 0 {
		return nil, errors.New("limit cannot be negative")
	}

	out, err := s.recordRepo.ListRecords(ctx, &recordRepo.ListRecordsInput{
		Limit: input.Limit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list records: %w", err)
	}

	return &ListRecordsOutput{Records: out.Records}, nil
}
