package keycode

// CapsRemap selects what the host Caps Lock key sends.
type CapsRemap int

const (
	CapsRemapNone CapsRemap = iota
	CapsRemapOption
	CapsRemapCommand
)

func (c CapsRemap) String() string {
	switch c {
	case CapsRemapOption:
		return "option"
	case CapsRemapCommand:
		return "command"
	default:
		return "none"
	}
}

// ParseCapsRemap turns the two command line switches into a CapsRemap.
// Only one of them may be set.
func ParseCapsRemap(option, command bool) (CapsRemap, error) {
	switch {
	case option && command:
		return CapsRemapNone, ErrConflictingRemap
	case option:
		return CapsRemapOption, nil
	case command:
		return CapsRemapCommand, nil
	}
	return CapsRemapNone, nil
}

// Remap returns the table override for c, or nil for CapsRemapNone.
func (c CapsRemap) Remap() *Remap {
	switch c {
	case CapsRemapOption:
		return &Remap{Source: KeyCapsLock, Target: KeyLeftCtrl}
	case CapsRemapCommand:
		return &Remap{Source: KeyCapsLock, Target: KeyLeftAlt}
	}
	return nil
}

// Reassigned reports whether Caps Lock behaves as an ordinary key.
func (c CapsRemap) Reassigned() bool {
	return c != CapsRemapNone
}

// BuildCaps builds the table for the given Caps Lock switches. Conflicting
// switches fail before any table exists.
func BuildCaps(option, command bool) (*Table, CapsRemap, error) {
	remap, err := ParseCapsRemap(option, command)
	if err != nil {
		return nil, CapsRemapNone, err
	}
	var remaps []Remap
	if r := remap.Remap(); r != nil {
		remaps = append(remaps, *r)
	}
	t, err := Build(remaps...)
	if err != nil {
		return nil, CapsRemapNone, err
	}
	return t, remap, nil
}
