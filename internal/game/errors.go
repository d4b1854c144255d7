package game

import "errors"

var (
	ErrWorldFileMissing = errors.New("world file missing")
	ErrMalformedWorld   = errors.New("malformed world data")

	ErrItemNotFound = errors.New("item not found")
	ErrNoExit       = errors.New("no exit in that direction")
	ErrUnknownRoom  = errors.New("unknown room")
	ErrGameOver     = errors.New("game is over")
	ErrForcedLoop   = errors.New("forced exits form a loop")
)
