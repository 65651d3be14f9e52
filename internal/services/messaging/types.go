package messaging

import (
	"github.com/KirkDiggler/roulette/internal/random"
)

// MessageTone represents the tone of a message
type MessageTone string

const (
	// ToneNeutral is a neutral tone
	ToneNeutral MessageTone = "neutral"

	// ToneGrim is a dark, dramatic tone
	ToneGrim MessageTone = "grim"

	// ToneRelieved is used when a pull comes up empty
	ToneRelieved MessageTone = "relieved"
)

// ServiceConfig holds configuration for the messaging service
type ServiceConfig struct {
	// Random picks among the candidate lines. Optional.
	Random random.Source
}

// GetShotMessageInput contains parameters for a shot message
type GetShotMessageInput struct {
	// ShooterName is the player holding the revolver
	ShooterName string

	// TargetName is the player the revolver was pointed at
	TargetName string

	// SelfInflicted is true when the shooter aimed at themself
	SelfInflicted bool

	// Fired is true when a live bullet went off
	Fired bool

	// SpentCasing is true when the pin hit an already fired chamber
	SpentCasing bool

	// Eliminated is true when the shot took the target's last life
	Eliminated bool
}

// GetShotMessageOutput contains the shot message
type GetShotMessageOutput struct {
	Message string
	Tone    MessageTone
}

// GetRoundMessageInput contains parameters for a round message
type GetRoundMessageInput struct {
	Round   int
	Bullets int
}

// GetRoundMessageOutput contains the round message
type GetRoundMessageOutput struct {
	Message string
}

// GetGameOverMessageInput contains parameters for a game over message
type GetGameOverMessageInput struct {
	// WinnerName is empty when nobody survived
	WinnerName string
	Rounds     int
}

// GetGameOverMessageOutput contains the game over message
type GetGameOverMessageOutput struct {
	Message string
	Tone    MessageTone
}
