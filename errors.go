package cubesim

import "errors"

// Sentinel errors for the cubesim package.
var (
	// Construction and parsing errors
	ErrInvalidMove     = errors.New("cubesim: invalid move")
	ErrInvalidNotation = errors.New("cubesim: invalid move notation")

	// State errors
	ErrInvalidState    = errors.New("cubesim: invalid cube state")
	ErrInvalidFacelets = errors.New("cubesim: invalid facelet string")
)
