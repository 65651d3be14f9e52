package table

// Error is a hand-off protocol violation
type Error string

// Error implements the error interface
func (e Error) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNotHeld        Error = "revolver is not held by this party"
	ErrNoRevolverHeld Error = "player fired without holding the revolver"
	ErrNilHolder      Error = "holder cannot be nil"
	ErrNilRevolver    Error = "revolver cannot be nil"
	ErrNilCustody     Error = "custody cannot be nil"
)
