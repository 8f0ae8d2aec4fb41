package game

import "errors"

// Configuration and contract violations. Wall, self and win outcomes are not
// errors; they are reported through Status and Reason.
var (
	ErrInvalidGrid      = errors.New("grid dimensions must be positive")
	ErrInitialLength    = errors.New("initial length does not fit the grid")
	ErrEmptySnake       = errors.New("snake has no cells")
	ErrOverlap          = errors.New("snake cells overlap")
	ErrOutOfBounds      = errors.New("snake cell outside the grid")
	ErrFoodOnSnake      = errors.New("food placed on the snake")
	ErrUnknownDirection = errors.New("unknown direction")
)
