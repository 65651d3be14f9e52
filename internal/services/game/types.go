package game

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/KirkDiggler/roulette/internal/audio"
	"github.com/KirkDiggler/roulette/internal/common/clock"
	"github.com/KirkDiggler/roulette/internal/common/uuid"
	"github.com/KirkDiggler/roulette/internal/models"
	"github.com/KirkDiggler/roulette/internal/random"
	recordRepo "github.com/KirkDiggler/roulette/internal/repositories/record"
	"github.com/KirkDiggler/roulette/internal/revolver"
	"github.com/KirkDiggler/roulette/internal/services/messaging"
	"github.com/KirkDiggler/roulette/internal/table"
)

const (
	// DefaultLives is how many hits a player survives when none is configured
	DefaultLives = 3

	// DefaultBulletsPerRound is how many bullets the crupier loads per round
	DefaultBulletsPerRound = 1

	// MinBulletsPerRound and MaxBulletsPerRound bound the crupier's load
	MinBulletsPerRound = 1
	MaxBulletsPerRound = revolver.Chambers

	// DefaultPlayerOneName and DefaultPlayerTwoName are used for blank names
	DefaultPlayerOneName = "Player 1"
	DefaultPlayerTwoName = "Player 2"
)

// State is where the engine sits between calls
type State string

const (
	// StateAwaitingRoundSetup means the crupier must load and spin before
	// the next turn
	StateAwaitingRoundSetup State = "awaiting_round_setup"

	// StateInRound means the drum still holds at least one live round
	StateInRound State = "in_round"

	// StateGameOver is final. Nothing moves the engine out of it.
	StateGameOver State = "game_over"
)

// Target is who the shooter points the revolver at
type Target int

const (
	TargetSelf Target = iota
	TargetOpponent
)

func (t Target) String() string {
	switch t {
	case TargetSelf:
		return "self"
	case TargetOpponent:
		return "opponent"
	default:
		return "unknown"
	}
}

// Valid reports whether t is one of the defined targets
func (t Target) Valid() bool {
	return t == TargetSelf || t == TargetOpponent
}

// Mode selects how targets are chosen
type Mode string

const (
	// ModeInteractive asks a person for every target
	ModeInteractive Mode = "interactive"

	// ModeAutomatic picks every target at random
	ModeAutomatic Mode = "automatic"
)

// ParseTarget reads a target as typed on a command line
func ParseTarget(s string) (Target, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "self", "s", "1":
		return TargetSelf, nil
	case "opponent", "other", "o", "2":
		return TargetOpponent, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidTarget, s)
	}
}

// ParseMode reads a mode name. An empty string gives an empty mode, which
// callers treat as "ask".
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return "", nil
	case "interactive", "i":
		return ModeInteractive, nil
	case "automatic", "auto", "a":
		return ModeAutomatic, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidMode, s)
	}
}

// ClampBullets bounds a requested bullets-per-round count to what the drum
// can hold
func ClampBullets(n int) int {
	if n < MinBulletsPerRound {
		return MinBulletsPerRound
	}
	if n > MaxBulletsPerRound {
		return MaxBulletsPerRound
	}
	return n
}

// EngineConfig holds everything a single game needs
type EngineConfig struct {
	Crupier *table.Crupier

	// PlayerOne shoots first
	PlayerOne *table.Player
	PlayerTwo *table.Player

	// BulletsPerRound is clamped to [1, 6]. Zero means the default.
	BulletsPerRound int

	Chooser TargetChooser

	// Optional collaborators
	Presenter  Presenter
	Audio      audio.Player
	Transcript Transcript
	Messages   messaging.Service
	Logger     *zap.Logger
}

// TurnContext is what a chooser sees when asked for a target
type TurnContext struct {
	Round    int
	Shooter  string
	Opponent string
	Status   *Status
}

// TurnResult describes one played (or skipped) turn
type TurnResult struct {
	Round   int
	Shooter string

	// Skipped is true when the current player was already dead
	Skipped bool

	Target     Target
	TargetName string
	Shot       revolver.Shot

	// Eliminated is true when the shot took the target's last life
	Eliminated bool

	// RoundOver is true when the shot emptied the drum of live rounds
	RoundOver bool

	GameOver bool
	Winner   string

	// Message is optional flavor text for the shot
	Message string
}

// PlayerStatus is a player's standing at a point in the game
type PlayerStatus struct {
	Name     string
	Lives    int
	MaxLives int
	Alive    bool
}

// Status is a read-only view of the engine
type Status struct {
	Round   int
	Turns   int
	State   State
	Current string
	Players []PlayerStatus

	// Drum is only filled in while the crupier holds the revolver
	Drum    revolver.Snapshot
	HasDrum bool

	Winner string
}

// Outcome is the result of a finished game
type Outcome struct {
	// Winner is empty when nobody survived
	Winner string
	Rounds int
	Turns  int
}

// Config holds configuration for the game service
type Config struct {
	// Dependencies
	RecordRepo    recordRepo.Repository
	Random        random.Source
	Clock         clock.Clock
	UUIDGenerator uuid.UUID

	// Optional
	Messages messaging.Service
	Logger   *zap.Logger

	// SpinMin and SpinMax bound the crupier's free spin. Zero means the
	// revolver defaults.
	SpinMin int
	SpinMax int
}

// PlayGameInput contains parameters for playing a full game
type PlayGameInput struct {
	PlayerOneName string
	PlayerTwoName string

	// Lives per player. Zero means DefaultLives.
	Lives int

	BulletsPerRound int
	Mode            Mode

	// Chooser is required in interactive mode. Automatic mode picks at
	// random when it is nil.
	Chooser TargetChooser

	Presenter Presenter
	Audio     audio.Player
}

// PlayGameOutput contains the result of a finished game
type PlayGameOutput struct {
	Winner string
	Rounds int
	Turns  int

	RecordID       string
	RecordLocation string

	// SaveError is set when the finished game could not be stored
	SaveError error

	Entries []*models.RecordEntry
}

// GetRecordInput contains parameters for fetching a saved game
type GetRecordInput struct {
	RecordID string
}

// GetRecordOutput contains a saved game
type GetRecordOutput struct {
	Record *models.Record
}

// ListRecordsInput contains parameters for listing saved games
type ListRecordsInput struct {
	// Limit caps the result. Zero lists everything.
	Limit int
}

// ListRecordsOutput contains saved games, newest first
type ListRecordsOutput struct {
	Records []*models.Record
}
