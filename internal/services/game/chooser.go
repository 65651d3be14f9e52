package game

import (
	"context"

	"github.com/KirkDiggler/roulette/internal/random"
)

// TargetChooser decides who the current shooter aims at
type TargetChooser interface {
	Choose(ctx context.Context, turn *TurnContext) (Target, error)
}

// RandomChooser aims at self or opponent with equal odds
type RandomChooser struct {
	random random.Source
}

// NewRandomChooser creates a chooser drawing from src
func NewRandomChooser(src random.Source) (*RandomChooser, error) {
	if src == nil {
		return nil, ErrNilRandom
	}

	return &RandomChooser{random: src}, nil
}

// Choose implements TargetChooser
func (c *RandomChooser) Choose(_ context.Context, _ *TurnContext) (Target, error) {
	if c.random.Intn(2) == 0 {
		return TargetSelf, nil
	}
	return TargetOpponent, nil
}

// FixedChooser replays a scripted list of targets, starting over once the
// list runs out
type FixedChooser struct {
	targets []Target
	next    int
}

// NewFixedChooser creates a chooser that plays targets in order
func NewFixedChooser(targets ...Target) (*FixedChooser, error) {
	if len(targets) == 0 {
		return nil, ErrInvalidTarget
	}
	for _, t := range targets {
		if !t.Valid() {
			return nil, ErrInvalidTarget
		}
	}

	return &FixedChooser{targets: append([]Target(nil), targets...)}, nil
}

// Choose implements TargetChooser
func (c *FixedChooser) Choose(_ context.Context, _ *TurnContext) (Target, error) {
	t := c.targets[c.next%len(c.targets)]
	c.next++
	return t, nil
}
