package window

import "errors"

// ErrUnavailable is returned by Run in builds without cgo.
var ErrUnavailable = errors.New("window input requires cgo (build with CGO_ENABLED=1) or use -input evdev|replay")
