package booking

import "errors"

// All booking errors are user-correctable input problems. The TUI
// matches them with errors.Is and renders them inline; nothing here is
// fatal to the process.
var (
	ErrUnknownMovie        = errors.New("movie not found in catalog")
	ErrUnknownSeat         = errors.New("seat not found in seat map")
	ErrSelectionLimit      = errors.New("maximum seats per booking reached")
	ErrEmptySelection      = errors.New("no seats selected")
	ErrIncompleteSelection = errors.New("movie and showtime must be selected first")
	ErrValidationFailed    = errors.New("required fields missing or invalid")
	ErrNotFound            = errors.New("booking not found")
	ErrInvalidTransition   = errors.New("booking is already cancelled")
	ErrNotSignedIn         = errors.New("sign in to complete a booking")
	ErrInvalidState        = errors.New("action not valid in current step")
)
