package table

import (
	"github.com/KirkDiggler/roulette/internal/revolver"
)

// CrupierName is how the dealer appears in transcripts
const CrupierName = "Crupier"

// Crupier is the neutral dealer. It loads and spins the drum between rounds
// and keeps the revolver whenever no player is taking a turn.
type Crupier struct {
	custody *Custody
}

// RoundSetup describes how the crupier prepared a round
type RoundSetup struct {
	// Loaded lists the chambers that received a bullet
	Loaded []int

	// Steps is how far the drum was spun
	Steps int
}

// NewCrupier hands r to a new crupier, who holds it from the start
func NewCrupier(r *revolver.Revolver) (*Crupier, error) {
	if r == nil {
		return nil, ErrNilRevolver
	}

	c := &Crupier{}
	c.custody = newCustody(r, c)
	return c, nil
}

// HolderName implements Holder
func (c *Crupier) HolderName() string {
	return CrupierName
}

// Custody returns the ownership slot shared with the players
func (c *Crupier) Custody() *Custody {
	return c.custody
}

// HoldsRevolver reports whether the crupier has the revolver
func (c *Crupier) HoldsRevolver() bool {
	return c.custody.Holds(c)
}

// Revolver returns the revolver while the crupier holds it
func (c *Crupier) Revolver() (*revolver.Revolver, error) {
	return c.custody.RevolverFor(c)
}

// GiveRevolverTo hands the revolver to h
func (c *Crupier) GiveRevolverTo(h Holder) error {
	return c.custody.Transfer(c, h)
}

// TakeRevolverFrom takes the revolver back from h
func (c *Crupier) TakeRevolverFrom(h Holder) error {
	return c.custody.Transfer(h, c)
}

// DumpAndLoadSingleBullet clears the drum and loads chamber 0
func (c *Crupier) DumpAndLoadSingleBullet() error {
	r, err := c.Revolver()
	if err != nil {
		return err
	}

	r.UnloadAll()
	return r.LoadBullet(0)
}

// DumpAndLoadBulletsRandomly clears the drum and loads count random chambers
func (c *Crupier) DumpAndLoadBulletsRandomly(count int) ([]int, error) {
	r, err := c.Revolver()
	if err != nil {
		return nil, err
	}

	r.UnloadAll()
	return r.LoadBulletsRandomly(count), nil
}

// PrepareRound clears the drum, loads bullets at random and spins it
func (c *Crupier) PrepareRound(bullets int) (*RoundSetup, error) {
	loaded, err := c.DumpAndLoadBulletsRandomly(bullets)
	if err != nil {
		return nil, err
	}

	r, err := c.Revolver()
	if err != nil {
		return nil, err
	}

	return &RoundSetup{
		Loaded: loaded,
		Steps:  r.FreeSpin(),
	}, nil
}
