package experiment

import "errors"

var (
	// ErrInvalidConfig indicates a Config field outside its valid range.
	ErrInvalidConfig = errors.New("experiment: invalid configuration")

	// ErrUnknownPreset indicates Preset received an unrecognized name.
	ErrUnknownPreset = errors.New("experiment: unknown preset")
)
