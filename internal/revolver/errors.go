package revolver

// Error is a revolver contract violation
type Error string

// Error implements the error interface
func (e Error) Error() string {
	return string(e)
}

// Define errors
const (
	ErrChamberOccupied  Error = "chamber already has a bullet"
	ErrInvalidPosition  Error = "chamber position out of range"
	ErrNilConfig        Error = "config cannot be nil"
	ErrNilRandom        Error = "random source cannot be nil"
	ErrInvalidSpinRange Error = "free spin range must satisfy 0 <= min <= max"
)
