package simulation

import "errors"

var (
	ErrInvalidConfig        = errors.New("invalid simulation configuration")
	ErrInvalidArena         = errors.New("arena must have positive width and height")
	ErrInvalidModifier      = errors.New("speed modifier must not be negative")
	ErrRunnerAlreadyRunning = errors.New("runner is already running")
)
