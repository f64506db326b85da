package encoder

import (
	"os"

	"github.com/macplus/serkey/internal/keycode"
	"github.com/rs/zerolog"
)

var defaultLogger = zerolog.New(os.Stderr).With().Str("subsystem", "encoder").Logger()

// Options configures Caps Lock handling.
type Options struct {
	// CapsKey is the key that latches. Defaults to keycode.KeyCapsLock.
	CapsKey keycode.Key
	// CapsReassigned turns the latch off; CapsKey then encodes like any
	// other key.
	CapsReassigned bool
}

// Encoder turns key transitions into Mac Plus keyboard bytes. It is not
// safe for concurrent use.
type Encoder struct {
	table *keycode.Table
	opts  Options
	log   *zerolog.Logger
	latch LatchState

	onCapsLockChange *func(locked bool)
}

func New(table *keycode.Table, opts Options, logger *zerolog.Logger) *Encoder {
	if logger == nil {
		l := defaultLogger
		logger = &l
	}
	if opts.CapsKey == keycode.KeyUnknown {
		opts.CapsKey = keycode.KeyCapsLock
	}
	return &Encoder{
		table: table,
		opts:  opts,
		log:   logger,
		latch: Unlocked,
	}
}

// SetOnCapsLockChange registers f to be called whenever the remote Caps
// Lock engages or disengages.
func (e *Encoder) SetOnCapsLockChange(f func(locked bool)) {
	e.onCapsLockChange = &f
}

func (e *Encoder) State() LatchState {
	return e.latch
}

func (e *Encoder) Locked() bool {
	return e.latch.Locked()
}

// Encode returns the byte to send for ev. ok is false when nothing should
// be sent: the key has no Mac equivalent or the Caps Lock latch swallowed
// the transition.
func (e *Encoder) Encode(ev keycode.Event) (b byte, ok bool) {
	if ev.Key == e.opts.CapsKey && !e.opts.CapsReassigned {
		return e.encodeCapsLock(ev.Release)
	}
	return e.encodePlain(ev)
}

func (e *Encoder) encodePlain(ev keycode.Event) (byte, bool) {
	code, ok := e.table.Lookup(ev.Key)
	if !ok {
		e.log.Trace().Stringer("key", ev.Key).Msg("no keycode, dropping")
		return 0, false
	}
	return code.Byte(ev.Release), true
}

func (e *Encoder) encodeCapsLock(release bool) (byte, bool) {
	code, ok := e.table.Lookup(e.opts.CapsKey)
	if !ok {
		return 0, false
	}

	if !release {
		if e.latch != Unlocked {
			// second touch: unlock happens on its release
			return 0, false
		}
		e.setLatch(LockedAwaitingRelease)
		return code.Byte(false), true
	}

	switch e.latch {
	case LockedAwaitingRelease:
		e.setLatch(LockedIdle)
		return 0, false
	case LockedIdle:
		e.setLatch(Unlocked)
		return code.Byte(true), true
	default:
		e.log.Warn().Stringer("key", e.opts.CapsKey).Msg("caps lock released while unlocked, ignoring")
		return 0, false
	}
}

func (e *Encoder) setLatch(s LatchState) {
	wasLocked := e.latch.Locked()
	e.log.Trace().Stringer("from", e.latch).Stringer("to", s).Msg("caps lock latch")
	e.latch = s
	if s.Locked() != wasLocked && e.onCapsLockChange != nil {
		(*e.onCapsLockChange)(s.Locked())
	}
}
