package messaging

import (
	"context"
	"errors"
	"fmt"

	"github.com/KirkDiggler/roulette/internal/random"
)

// service implements the Service interface
type service struct {
	// Random number generator for selecting random messages
	rand random.Source
}

// NewService creates a new messaging service
func NewService(config *ServiceConfig) (Service, error) {
	var src random.Source
	if config != nil {
		src = config.Random
	}
	if src == nil {
		src = random.New(nil)
	}

	return &service{
		rand: src,
	}, nil
}

func (s *service) pick(messages []string) string {
	return messages[s.rand.Intn(len(messages))]
}

// GetShotMessage returns a line of commentary for a trigger pull
func (s *service) GetShotMessage(ctx context.Context, input *GetShotMessageInput) (*GetShotMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	var messages []string
	tone := ToneRelieved

	switch {
	case input.Fired && input.Eliminated:
		tone = ToneGrim
		messages = []string{
			fmt.Sprintf("%s won't be playing the next round.", input.TargetName),
			fmt.Sprintf("That was the last of %s's luck.", input.TargetName),
			fmt.Sprintf("The smoke clears. %s does not get up.", input.TargetName),
		}
	case input.Fired && input.SelfInflicted:
		tone = ToneGrim
		messages = []string{
			fmt.Sprintf("%s bet against the drum and lost.", input.ShooterName),
			fmt.Sprintf("Bold move, %s. Painful, but bold.", input.ShooterName),
			"Nobody can say they didn't have nerve.",
		}
	case input.Fired:
		tone = ToneGrim
		messages = []string{
			fmt.Sprintf("%s didn't hesitate. %s felt that one.", input.ShooterName, input.TargetName),
			fmt.Sprintf("Straight at %s. The drum agreed.", input.TargetName),
			fmt.Sprintf("%s will remember who pulled that trigger.", input.TargetName),
		}
	case input.SpentCasing:
		messages = []string{
			"Just a spent casing. The pin finds nothing to strike.",
			"That chamber already had its moment.",
			"An empty shell clicks where a bullet used to be.",
		}
	case input.SelfInflicted:
		messages = []string{
			fmt.Sprintf("%s breathes again.", input.ShooterName),
			fmt.Sprintf("Not today for %s.", input.ShooterName),
			"The drum turns, the hammer falls, nothing happens.",
		}
	default:
		messages = []string{
			fmt.Sprintf("%s flinches anyway.", input.TargetName),
			fmt.Sprintf("Lucky %s. That could have gone differently.", input.TargetName),
			fmt.Sprintf("%s glares across the table at %s.", input.TargetName, input.ShooterName),
		}
	}

	return &GetShotMessageOutput{
		Message: s.pick(messages),
		Tone:    tone,
	}, nil
}

// GetRoundMessage returns a line announcing a freshly loaded drum
func (s *service) GetRoundMessage(ctx context.Context, input *GetRoundMessageInput) (*GetRoundMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	var messages []string
	switch {
	case input.Bullets >= 6:
		messages = []string{
			"Six chambers, six bullets. Somebody is going to get hurt.",
			"A full drum. No one is clicking their way out of this one.",
		}
	case input.Bullets == 1:
		messages = []string{
			"One bullet, six chambers. The classic odds.",
			"A single round goes in. The Crupier doesn't look at anyone.",
		}
	default:
		messages = []string{
			fmt.Sprintf("%d bullets go into the drum. The odds just got worse.", input.Bullets),
			fmt.Sprintf("The Crupier slides in %d rounds and spins without a word.", input.Bullets),
		}
	}

	if input.Round > 1 {
		messages = append(messages, fmt.Sprintf("Round %d. The drum is hungry again.", input.Round))
	}

	return &GetRoundMessageOutput{
		Message: s.pick(messages),
	}, nil
}

// GetGameOverMessage returns the closing line of a game
func (s *service) GetGameOverMessage(ctx context.Context, input *GetGameOverMessageInput) (*GetGameOverMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if input.WinnerName == "" {
		return &GetGameOverMessageOutput{
			Message: s.pick([]string{
				"No survivors. The Crupier holsters the revolver.",
				"The table is empty. Nobody walks away from this one.",
			}),
			Tone: ToneGrim,
		}, nil
	}

	return &GetGameOverMessageOutput{
		Message: s.pick([]string{
			fmt.Sprintf("%s walks away after %d round(s).", input.WinnerName, input.Rounds),
			fmt.Sprintf("Last one standing: %s.", input.WinnerName),
			fmt.Sprintf("%s pushes back from the table. It's over.", input.WinnerName),
		}),
		Tone: ToneNeutral,
	}, nil
}
