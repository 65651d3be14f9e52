package revolver

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/KirkDiggler/roulette/internal/random"
)

const (
	// Chambers is the fixed size of the drum
	Chambers = 6

	// DefaultSpinMin is the default lower bound of a free spin
	DefaultSpinMin = 10

	// DefaultSpinMax is the default upper bound of a free spin
	DefaultSpinMax = 100
)

// Config holds configuration for a revolver
type Config struct {
	// Random drives bullet placement and free spins
	Random random.Source

	// Logger receives overload warnings. Optional.
	Logger *zap.Logger

	// SpinMin and SpinMax bound the steps of a free spin, inclusive.
	// Zero values fall back to the defaults.
	SpinMin int
	SpinMax int
}

// Revolver is a six chamber drum with one chamber aligned to the firing pin.
// The drum only ever turns one way, one chamber per Rotate.
type Revolver struct {
	chambers [Chambers]Chamber
	active   int

	random  random.Source
	logger  *zap.Logger
	spinMin int
	spinMax int
}

// New creates an empty revolver aligned on chamber 0
func New(cfg *Config) (*Revolver, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.Random == nil {
		return nil, ErrNilRandom
	}

	spinMin, spinMax := cfg.SpinMin, cfg.SpinMax
	if spinMin == 0 && spinMax == 0 {
		spinMin, spinMax = DefaultSpinMin, DefaultSpinMax
	}
	if spinMin < 0 || spinMin > spinMax {
		return nil, fmt.Errorf("%w: got [%d, %d]", ErrInvalidSpinRange, spinMin, spinMax)
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Revolver{
		random:  cfg.Random,
		logger:  logger,
		spinMin: spinMin,
		spinMax: spinMax,
	}, nil
}

func validPosition(position int) error {
	if position < 0 || position >= Chambers {
		return fmt.Errorf("%w: %d", ErrInvalidPosition, position)
	}
	return nil
}

// Active returns the chamber aligned with the firing pin
func (r *Revolver) Active() int {
	return r.active
}

// Chamber returns the state of the chamber at position
func (r *Revolver) Chamber(position int) (Chamber, error) {
	if err := validPosition(position); err != nil {
		return ChamberEmpty, err
	}
	return r.chambers[position], nil
}

// Snapshot returns a copy of the drum state
func (r *Revolver) Snapshot() Snapshot {
	return Snapshot{
		Chambers: r.chambers,
		Active:   r.active,
	}
}

// Restore replaces the drum state with s
func (r *Revolver) Restore(s Snapshot) error {
	if err := validPosition(s.Active); err != nil {
		return err
	}
	for i, c := range s.Chambers {
		if !c.Valid() {
			return fmt.Errorf("invalid state %d in chamber %d", c, i)
		}
	}

	r.chambers = s.Chambers
	r.active = s.Active
	return nil
}

// EmptyChambers returns the positions of empty chambers in ascending order
func (r *Revolver) EmptyChambers() []int {
	empty := make([]int, 0, Chambers)
	for i, c := range r.chambers {
		if c == ChamberEmpty {
			empty = append(empty, i)
		}
	}
	return empty
}

// LiveCount returns the number of live bullets in the drum
func (r *Revolver) LiveCount() int {
	return r.Snapshot().LiveCount()
}

// Exhausted reports whether no chamber holds a live bullet
func (r *Revolver) Exhausted() bool {
	return r.LiveCount() == 0
}

// LoadBullet loads a bullet into an empty chamber. Live and fired chambers
// are both occupied.
func (r *Revolver) LoadBullet(position int) error {
	if err := validPosition(position); err != nil {
		return err
	}
	if r.chambers[position] != ChamberEmpty {
		return fmt.Errorf("load chamber %d: %w", position, ErrChamberOccupied)
	}

	r.chambers[position] = ChamberLive
	return nil
}

// LoadBulletsAt loads the given chambers. Nothing is loaded unless every
// position is valid, empty and listed once.
func (r *Revolver) LoadBulletsAt(positions ...int) error {
	seen := make(map[int]bool, len(positions))
	for _, p := range positions {
		if err := validPosition(p); err != nil {
			return err
		}
		if r.chambers[p] != ChamberEmpty || seen[p] {
			return fmt.Errorf("load chamber %d: %w", p, ErrChamberOccupied)
		}
		seen[p] = true
	}

	for _, p := range positions {
		r.chambers[p] = ChamberLive
	}
	return nil
}

// clampCount limits a bullet request to the empty chambers, warning when
// the request had to be cut down.
func (r *Revolver) clampCount(requested int, empty []int) int {
	if requested < 0 {
		return 0
	}
	if requested > len(empty) {
		r.logger.Warn("cannot load more bullets than empty chambers",
			zap.Int("requested", requested),
			zap.Int("loading", len(empty)),
		)
		return len(empty)
	}
	return requested
}

// LoadBulletsInOrder fills the lowest empty chambers first and returns the
// positions it loaded.
func (r *Revolver) LoadBulletsInOrder(count int) []int {
	empty := r.EmptyChambers()
	count = r.clampCount(count, empty)

	loaded := empty[:count]
	for _, p := range loaded {
		r.chambers[p] = ChamberLive
	}
	return loaded
}

// LoadBulletsRandomly loads count empty chambers chosen uniformly without
// replacement and returns the positions it loaded.
func (r *Revolver) LoadBulletsRandomly(count int) []int {
	empty := r.EmptyChambers()
	count = r.clampCount(count, empty)

	loaded := random.Sample(r.random, empty, count)
	for _, p := range loaded {
		r.chambers[p] = ChamberLive
	}
	return loaded
}

// UnloadChamber empties one chamber whatever it holds
func (r *Revolver) UnloadChamber(position int) error {
	if err := validPosition(position); err != nil {
		return err
	}
	r.chambers[position] = ChamberEmpty
	return nil
}

// UnloadChambers empties the given chambers
func (r *Revolver) UnloadChambers(positions ...int) error {
	for _, p := range positions {
		if err := validPosition(p); err != nil {
			return err
		}
	}
	for _, p := range positions {
		r.chambers[p] = ChamberEmpty
	}
	return nil
}

// UnloadFired ejects spent casings, leaving live rounds in place, and
// returns the positions it cleared.
func (r *Revolver) UnloadFired() []int {
	cleared := []int{}
	for i, c := range r.chambers {
		if c == ChamberFired {
			r.chambers[i] = ChamberEmpty
			cleared = append(cleared, i)
		}
	}
	return cleared
}

// UnloadAll empties the whole drum. The alignment is kept.
func (r *Revolver) UnloadAll() {
	r.chambers = [Chambers]Chamber{}
}

// SpeedReload dumps the drum and loads all six chambers
func (r *Revolver) SpeedReload() {
	r.UnloadAll()
	for i := range r.chambers {
		r.chambers[i] = ChamberLive
	}
}

// Rotate advances the drum by one chamber
func (r *Revolver) Rotate() {
	r.active = (r.active + 1) % Chambers
}

// FreeSpin rotates the drum a random number of steps and returns how many
// steps it took. Chamber contents are untouched.
func (r *Revolver) FreeSpin() int {
	steps := random.Between(r.random, r.spinMin, r.spinMax)
	for i := 0; i < steps; i++ {
		r.Rotate()
	}
	return steps
}

// PullTrigger rotates once, then fires whatever is under the pin. The
// chamber aligned before the pull is never the one tested.
func (r *Revolver) PullTrigger() Shot {
	r.Rotate()

	shot := Shot{
		Position: r.active,
		Chamber:  r.chambers[r.active],
	}
	if shot.Chamber == ChamberLive {
		r.chambers[r.active] = ChamberFired
		shot.Fired = true
	}
	return shot
}
