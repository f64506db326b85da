package keycode

import "errors"

var (
	// ErrConflictingRemap is returned when Caps Lock is asked to be both
	// Option and Command.
	ErrConflictingRemap = errors.New("caps lock cannot be reassigned to both option and command")

	// ErrUnmappedRemapTarget is returned when a remap names a target key
	// that has no protocol code.
	ErrUnmappedRemapTarget = errors.New("remap target has no keycode")

	ErrUnknownKey = errors.New("unknown key name")
)
