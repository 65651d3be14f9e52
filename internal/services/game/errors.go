package game

// GameError is a custom error type for game-related errors
type GameError string

// Error implements the error interface
func (e GameError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrGameOver          GameError = "game is over"
	ErrRoundInProgress   GameError = "round already in progress"
	ErrRoundNotReady     GameError = "round has not been set up"
	ErrCrupierNotHolding GameError = "crupier must hold the revolver between turns"
	ErrInvalidTarget     GameError = "invalid target"
	ErrInvalidMode       GameError = "invalid mode"
	ErrPlayerNotSeated   GameError = "player does not share the crupier's revolver"
	ErrSamePlayer        GameError = "players must be distinct"
	ErrRecordNotFound    GameError = "record not found"
	ErrNilConfig         GameError = "config cannot be nil"
	ErrNilCrupier        GameError = "crupier cannot be nil"
	ErrNilPlayer         GameError = "player cannot be nil"
	ErrNilChooser        GameError = "target chooser cannot be nil"
	ErrNilRecordRepo     GameError = "record repository cannot be nil"
	ErrNilRandom         GameError = "random source cannot be nil"
	ErrNilClock          GameError = "clock cannot be nil"
	ErrNilUUIDGenerator  GameError = "UUID generator cannot be nil"
)
