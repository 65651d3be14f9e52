package cli

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/KirkDiggler/roulette/internal/common/clock"
	"github.com/KirkDiggler/roulette/internal/revolver"
	"github.com/KirkDiggler/roulette/internal/services/game"
)

// DefaultFrameDelay paces the spin animation
const DefaultFrameDelay = 80 * time.Millisecond

// Presenter draws the table on a terminal
type Presenter struct {
	out   io.Writer
	clock clock.Clock
	delay time.Duration
	clear bool
}

// PresenterConfig holds configuration for the terminal presenter
type PresenterConfig struct {
	Out   io.Writer
	Clock clock.Clock

	// FrameDelay is the base pause between animation frames. Zero means
	// DefaultFrameDelay.
	FrameDelay time.Duration

	// ClearScreen redraws every frame from the top of the terminal
	ClearScreen bool
}

// NewPresenter creates a terminal presenter
func NewPresenter(cfg *PresenterConfig) (*Presenter, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.Out == nil {
		return nil, errors.New("output cannot be nil")
	}
	if cfg.Clock == nil {
		return nil, errors.New("clock cannot be nil")
	}

	delay := cfg.FrameDelay
	if delay <= 0 {
		delay = DefaultFrameDelay
	}

	return &Presenter{
		out:   cfg.Out,
		clock: cfg.Clock,
		delay: delay,
		clear: cfg.ClearScreen,
	}, nil
}

var _ game.Presenter = (*Presenter)(nil)

func (p *Presenter) frame(header string, drum revolver.Snapshot) {
	if p.clear {
		fmt.Fprint(p.out, clearScreen)
	}
	if header != "" {
		fmt.Fprintln(p.out, header)
	}
	fmt.Fprintln(p.out, renderDrum(drum))
}

func (p *Presenter) pause(factor float64) {
	p.clock.Sleep(time.Duration(float64(p.delay) * factor))
}

// RenderStatus implements game.Presenter
func (p *Presenter) RenderStatus(status *game.Status) {
	fmt.Fprint(p.out, renderStatus(status))
}

// RenderDrum implements game.Presenter
func (p *Presenter) RenderDrum(drum revolver.Snapshot) {
	p.frame("", drum)
}

// RenderSpin implements game.Presenter. The spin slows down over its last
// twenty frames.
func (p *Presenter) RenderSpin(before revolver.Snapshot, steps int) {
	p.pause(4)

	drum := before
	for step := 0; step < steps; step++ {
		p.frame("Spinning...", drum)
		drum.Active = (drum.Active + 1) % revolver.Chambers

		switch {
		case step > steps-10:
			p.pause(2)
		case step > steps-20:
			p.pause(1.5)
		default:
			p.pause(1)
		}
	}

	p.frame("", drum)
}

// RenderShot implements game.Presenter
func (p *Presenter) RenderShot(before, after revolver.Snapshot, shot revolver.Shot) {
	p.frame("Pulling trigger...", before)
	p.pause(4)

	rotated := before
	rotated.Active = after.Active
	p.frame("*click*", rotated)
	p.pause(2.5)

	if p.clear {
		fmt.Fprint(p.out, clearScreen)
	}
	fmt.Fprint(p.out, revolverArt+"\n")
	p.pause(6)

	p.frame(renderShotResult(shot), after)
	p.pause(4)
}
