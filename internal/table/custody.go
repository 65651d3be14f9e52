package table

import (
	"fmt"

	"github.com/KirkDiggler/roulette/internal/revolver"
)

// Holder is a party that can hold the revolver
type Holder interface {
	HolderName() string
}

// Custody records who currently owns the one shared revolver. There is
// always exactly one holder; ownership only moves through Transfer.
type Custody struct {
	revolver *revolver.Revolver
	holder   Holder
}

func newCustody(r *revolver.Revolver, initial Holder) *Custody {
	return &Custody{
		revolver: r,
		holder:   initial,
	}
}

// Holder returns the current holder
func (c *Custody) Holder() Holder {
	return c.holder
}

// Holds reports whether h currently holds the revolver
func (c *Custody) Holds(h Holder) bool {
	return h != nil && c.holder == h
}

// Transfer moves the revolver from one party to another in one step
func (c *Custody) Transfer(from, to Holder) error {
	if from == nil || to == nil {
		return ErrNilHolder
	}
	if !c.Holds(from) {
		return fmt.Errorf("transfer from %s: %w", from.HolderName(), ErrNotHeld)
	}

	c.holder = to
	return nil
}

// RevolverFor returns the revolver if h holds it
func (c *Custody) RevolverFor(h Holder) (*revolver.Revolver, error) {
	if !c.Holds(h) {
		name := "<nil>"
		if h != nil {
			name = h.HolderName()
		}
		return nil, fmt.Errorf("%s: %w", name, ErrNotHeld)
	}
	return c.revolver, nil
}
