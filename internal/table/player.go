package table

import (
	"fmt"

	"github.com/KirkDiggler/roulette/internal/revolver"
)

// Player sits at the table and holds the revolver only during their turn
type Player struct {
	name    string
	lives   int
	custody *Custody
}

// NewPlayer seats a player at the table whose revolver is tracked by custody
func NewPlayer(name string, lives int, custody *Custody) (*Player, error) {
	if custody == nil {
		return nil, ErrNilCustody
	}

	return &Player{
		name:    name,
		lives:   lives,
		custody: custody,
	}, nil
}

// HolderName implements Holder
func (p *Player) HolderName() string {
	return p.name
}

// Name returns the player's name
func (p *Player) Name() string {
	return p.name
}

// Lives returns the remaining lives. It can go below zero.
func (p *Player) Lives() int {
	return p.lives
}

// IsAlive reports whether the player has lives left
func (p *Player) IsAlive() bool {
	return p.lives > 0
}

// TakeDamage removes one life
func (p *Player) TakeDamage() {
	p.lives--
}

// Eliminate takes every remaining life
func (p *Player) Eliminate() {
	p.lives = 0
}

// SeatedAt reports whether the player shares c's revolver
func (p *Player) SeatedAt(c *Crupier) bool {
	return c != nil && p.custody == c.custody
}

// HeldRevolver returns the revolver if the player is holding it
func (p *Player) HeldRevolver() (*revolver.Revolver, bool) {
	r, err := p.custody.RevolverFor(p)
	return r, err == nil
}

func (p *Player) pull() (revolver.Shot, error) {
	r, ok := p.HeldRevolver()
	if !ok {
		return revolver.Shot{}, fmt.Errorf("%s: %w (%w)", p.name, ErrNoRevolverHeld, ErrNotHeld)
	}
	return r.PullTrigger(), nil
}

// FireAtSelf pulls the trigger on themself
func (p *Player) FireAtSelf() (revolver.Shot, error) {
	shot, err := p.pull()
	if err != nil {
		return shot, err
	}
	if shot.Fired {
		p.TakeDamage()
	}
	return shot, nil
}

// FireAtOpponent pulls the trigger on target
func (p *Player) FireAtOpponent(target *Player) (revolver.Shot, error) {
	if target == nil {
		return revolver.Shot{}, ErrNilHolder
	}

	shot, err := p.pull()
	if err != nil {
		return shot, err
	}
	if shot.Fired {
		target.TakeDamage()
	}
	return shot, nil
}

// ReturnRevolverToCrupier hands the revolver back to the dealer
func (p *Player) ReturnRevolverToCrupier(c *Crupier) error {
	return p.custody.Transfer(p, c)
}
