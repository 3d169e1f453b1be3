package verlet

import "errors"

var (
	ErrInvalidTemplate = errors.New("verlet: invalid template")
	ErrNoPoints        = errors.New("verlet: template has no points")
)
