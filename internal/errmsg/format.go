// Package errmsg provides consistent error formatting for user-facing messages.
package errmsg

import (
	"errors"
	"fmt"

	"github.com/llehouerou/sheet/internal/sheet"
)

// Op represents an operation that can fail.
type Op string

const (
	OpConfigLoad  Op = "load configuration"
	OpSheetCreate Op = "create sheet"
	OpSheetResize Op = "resize sheet"
	OpLogOpen     Op = "open debug log"
	OpRun         Op = "run"
)

// Format creates a user-friendly error message.
func Format(op Op, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Failed to %s: %v", op, err)
}

// Hint returns a config hint for errors that come from invalid sheet
// settings, or an empty string.
func Hint(err error) string {
	switch {
	case errors.Is(err, sheet.ErrNegativeMinHeight),
		errors.Is(err, sheet.ErrMaxBelowMin),
		errors.Is(err, sheet.ErrInitialOutOfRange):
		return "check min_height, max_height and initial_height in [sheet]"
	case errors.Is(err, sheet.ErrInvalidSpring),
		errors.Is(err, sheet.ErrNonPositiveVelocity),
		errors.Is(err, sheet.ErrNonPositiveFPS):
		return "check the [physics] section"
	default:
		return ""
	}
}
