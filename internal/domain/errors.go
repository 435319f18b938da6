package domain

import "errors"

// Input errors: the move token or actor was bad. State is never touched.
var (
	ErrMalformedToken   = errors.New("move token must be SOURCE_COLOR_LINE")
	ErrInvalidSource    = errors.New("source is not the center or a factory index")
	ErrInvalidColor     = errors.New("unknown tile color")
	ErrInvalidLine      = errors.New("pattern line index out of range")
	ErrNotCurrentPlayer = errors.New("not the acting player's turn")
)

// Rule-violation errors: the move was well-formed but illegal for the
// current board. State is never touched.
var (
	ErrColorNotInPile      = errors.New("chosen pile holds no tile of that color")
	ErrLineColorConflict   = errors.New("pattern line already holds a different color")
	ErrWallAlreadyHasColor = errors.New("wall row already has that color placed")
	ErrLineOverflow        = errors.New("picked tiles exceed the pattern line's free space")
)

// Setup errors: match creation or a round redeal failed.
var (
	ErrInvalidPlayerCount = errors.New("player count must be 2, 3 or 4")
	ErrBagExhausted       = errors.New("bag and discard pile cannot fill the factories")
	ErrMatchFinished      = errors.New("match is already finished")
)
