// Package audio emits fire-and-forget sound cues for game events.
package audio

import (
	"io"

	"go.uber.org/zap"
)

// Cue names a sound effect
type Cue string

const (
	CueCock       Cue = "cock"
	CueSpin       Cue = "spin"
	CueGunshot    Cue = "gunshot"
	CueDryFire    Cue = "dryfire"
	CueShellsDrop Cue = "shells-drop"
	CueHolster    Cue = "holster"
)

// Player plays cues. Play must not block and must not fail the caller.
type Player interface {
	Play(cue Cue)
}

// Nop plays nothing
type Nop struct{}

// Play implements Player
func (Nop) Play(Cue) {}

// Logger reports each cue on a zap logger at debug level
type Logger struct {
	logger *zap.Logger
}

// NewLogger creates a cue logger
func NewLogger(logger *zap.Logger) *Logger {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Logger{logger: logger}
}

// Play implements Player
func (l *Logger) Play(cue Cue) {
	l.logger.Debug("sound cue", zap.String("cue", string(cue)))
}

// Bell rings the terminal bell on a gunshot, the one cue a plain terminal
// can render.
type Bell struct {
	out io.Writer
}

// NewBell creates a bell writing to out
func NewBell(out io.Writer) *Bell {
	return &Bell{out: out}
}

// Play implements Player
func (b *Bell) Play(cue Cue) {
	if b.out == nil || cue != CueGunshot {
		return
	}
	_, _ = b.out.Write([]byte{'\a'})
}

// Multi fans a cue out to several players
type Multi []Player

// Play implements Player
func (m Multi) Play(cue Cue) {
	for _, p := range m {
		if p != nil {
			p.Play(cue)
		}
	}
}
