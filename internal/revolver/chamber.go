package revolver

// Chamber is the state of one chamber of the drum. Fired and Empty are
// distinct: a spent casing stays in the drum until it is unloaded.
type Chamber int

const (
	// ChamberEmpty holds nothing
	ChamberEmpty Chamber = iota

	// ChamberLive holds an unfired bullet
	ChamberLive

	// ChamberFired holds a spent casing
	ChamberFired
)

func (c Chamber) String() string {
	switch c {
	case ChamberEmpty:
		return "empty"
	case ChamberLive:
		return "live"
	case ChamberFired:
		return "fired"
	default:
		return "unknown"
	}
}

// Valid reports whether c is one of the three chamber states
func (c Chamber) Valid() bool {
	return c == ChamberEmpty || c == ChamberLive || c == ChamberFired
}

// Snapshot is a value copy of the drum and its alignment
type Snapshot struct {
	Chambers [Chambers]Chamber
	Active   int
}

// LiveCount returns the number of live bullets in the snapshot
func (s Snapshot) LiveCount() int {
	n := 0
	for _, c := range s.Chambers {
		if c == ChamberLive {
			n++
		}
	}
	return n
}

// Exhausted reports whether no chamber holds a live bullet
func (s Snapshot) Exhausted() bool {
	return s.LiveCount() == 0
}

// Shot is the outcome of one trigger pull
type Shot struct {
	// Position is the chamber that was tested, after the pre-fire rotation
	Position int

	// Chamber is what the pin found there before the pull resolved
	Chamber Chamber

	// Fired is true only when a live bullet was discharged
	Fired bool
}
