package sheet

import "errors"

// Construction errors. New and SetBounds wrap these with the offending values.
var (
	ErrNegativeMinHeight    = errors.New("min height must be >= 0")
	ErrMaxBelowMin          = errors.New("max height must be >= min height")
	ErrInitialOutOfRange    = errors.New("initial height must be within [min, max]")
	ErrNonPositiveVelocity  = errors.New("default velocity must be > 0")
	ErrNonPositiveWidth     = errors.New("width must be > 0")
	ErrInvalidSpring        = errors.New("spring needs mass > 0, stiffness > 0 and damping >= 0")
	ErrNonPositiveFPS       = errors.New("fps must be > 0")
	ErrControllerMissing    = errors.New("shared ownership requires a controller")
	ErrControllerNotAllowed = errors.New("internal ownership cannot take a caller controller")
)
