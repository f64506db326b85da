package encoder

// LatchState tracks the Mac Plus Caps Lock key, which locks mechanically:
// the Mac sees one key-down when it locks and one key-up when it unlocks,
// while the host reports a press and a release for every touch.
type LatchState uint8

const (
	// Unlocked is the initial state.
	Unlocked LatchState = iota
	// LockedAwaitingRelease follows the locking press. The matching
	// release is swallowed.
	LockedAwaitingRelease
	// LockedIdle is locked with the key physically up. The next press is
	// swallowed and its release unlocks.
	LockedIdle
)

func (s LatchState) String() string {
	switch s {
	case Unlocked:
		return "unlocked"
	case LockedAwaitingRelease:
		return "locked_awaiting_release"
	case LockedIdle:
		return "locked_idle"
	}
	return "invalid"
}

// Locked reports whether the remote Caps Lock is down.
func (s LatchState) Locked() bool {
	return s != Unlocked
}
