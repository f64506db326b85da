package serkey

import "errors"

var (
	// ErrQuit is returned by a Source when the user asked to stop.
	ErrQuit = errors.New("quit")

	ErrNoPort       = errors.New("serial port path required")
	ErrUnknownInput = errors.New("unknown input source")
)
