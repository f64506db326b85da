package keycode

import (
	"fmt"
	"sort"
)

// Code is a Macintosh Plus keyboard transition code without the release
// bit. Valid codes are 0x00-0x7F.
type Code uint8

// ReleaseBit is set on the transmitted byte for a key-up transition.
const ReleaseBit byte = 0x80

// Byte returns the byte sent on the wire for a press or release of c.
func (c Code) Byte(release bool) byte {
	b := byte(c) &^ ReleaseBit
	if release {
		b |= ReleaseBit
	}
	return b
}

// Keypad navigation codes. The serial bridge recognises these and runs the
// keypad exchange with the Mac on our behalf.
const (
	CodeKeypadLeft  Code = 0x7f
	CodeKeypadRight Code = 0x7e
	CodeKeypadUp    Code = 0x7d
	CodeKeypadDown  Code = 0x7c
)

const (
	CodeShift    Code = 0x71
	CodeCapsLock Code = 0x73
	CodeOption   Code = 0x75
	CodeCommand  Code = 0x6f
	CodeEnter    Code = 0x69
)

// Data from Inside Macintosh Volumes III & IV.
var baseCodes = []struct {
	key  Key
	code Code
}{
	// home row
	{KeyA, 0x01},
	{KeyS, 0x03},
	{KeyD, 0x05},
	{KeyF, 0x07},
	{KeyG, 0x0b},
	{KeyH, 0x09},
	{KeyJ, 0x4d},
	{KeyK, 0x51},
	{KeyL, 0x4b},
	{KeySemicolon, 0x53},
	{KeyQuote, 0x4f},

	// top row
	{KeyQ, 0x19},
	{KeyW, 0x1b},
	{KeyE, 0x1d},
	{KeyR, 0x1f},
	{KeyT, 0x23},
	{KeyY, 0x21},
	{KeyU, 0x41},
	{KeyI, 0x45},
	{KeyO, 0x3f},
	{KeyP, 0x47},
	{KeyLeftBracket, 0x43},
	{KeyRightBracket, 0x3d},
	{KeyBackslash, 0x55},

	// bottom row
	{KeyZ, 0x0d},
	{KeyX, 0x0f},
	{KeyC, 0x11},
	{KeyV, 0x13},
	{KeyB, 0x17},
	{KeyN, 0x5b},
	{KeyM, 0x5d},
	{KeyComma, 0x57},
	{KeyPeriod, 0x5f},
	{KeySlash, 0x59},

	// number row
	{KeyBackquote, 0x65},
	{Key1, 0x25},
	{Key2, 0x27},
	{Key3, 0x29},
	{Key4, 0x2b},
	{Key5, 0x2f},
	{Key6, 0x2d},
	{Key7, 0x35},
	{Key8, 0x39},
	{Key9, 0x33},
	{Key0, 0x3b},
	{KeyMinus, 0x37},
	{KeyEquals, 0x31},

	// shifted number row, same codes as unshifted
	{KeyExclaim, 0x25},
	{KeyAt, 0x27},
	{KeyHash, 0x29},
	{KeyDollar, 0x2b},
	{KeyPercent, 0x2f},
	{KeyCaret, 0x2d},
	{KeyAmpersand, 0x35},
	{KeyAsterisk, 0x39},
	{KeyLeftParen, 0x33},
	{KeyRightParen, 0x3b},

	{KeySpace, 0x63},
	{KeyBackspace, 0x67},
	{KeyTab, 0x61},
	{KeyReturn, 0x49},

	{KeyLeftShift, CodeShift},
	{KeyRightShift, CodeShift},
	{KeyCapsLock, CodeCapsLock},
	{KeyLeftCtrl, CodeOption},
	{KeyRightCtrl, CodeOption},
	{KeyLeftAlt, CodeCommand},
	{KeyRightAlt, CodeCommand},

	{KeyLeft, CodeKeypadLeft},
	{KeyRight, CodeKeypadRight},
	{KeyUp, CodeKeypadUp},
	{KeyDown, CodeKeypadDown},

	// MPW and friends want Enter; not every keyboard has a keypad.
	{KeyDelete, CodeEnter},
	{KeyKPEnter, CodeEnter},
}

// Remap makes Source transmit whatever Target transmits.
type Remap struct {
	Source Key
	Target Key
}

func (r Remap) String() string {
	return r.Source.String() + "->" + r.Target.String()
}

// Table maps keys to protocol codes. It is immutable once built.
type Table struct {
	codes map[Key]Code
}

// Build returns the base table with remaps applied in order. Each remap
// overwrites the source entry with the target's current entry.
func Build(remaps ...Remap) (*Table, error) {
	t := &Table{codes: make(map[Key]Code, len(baseCodes))}
	for _, e := range baseCodes {
		t.codes[e.key] = e.code
	}
	for _, r := range remaps {
		code, ok := t.codes[r.Target]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnmappedRemapTarget, r)
		}
		t.codes[r.Source] = code
	}
	return t, nil
}

// Lookup returns the code for k. Keys the Mac has no equivalent for report
// false.
func (t *Table) Lookup(k Key) (Code, bool) {
	c, ok := t.codes[k]
	return c, ok
}

func (t *Table) Len() int {
	return len(t.codes)
}

// Keys returns the mapped keys in ascending order.
func (t *Table) Keys() []Key {
	keys := make([]Key, 0, len(t.codes))
	for k := range t.codes {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// Equal reports whether both tables map the same keys to the same codes.
func (t *Table) Equal(o *Table) bool {
	if len(t.codes) != len(o.codes) {
		return false
	}
	for k, c := range t.codes {
		if oc, ok := o.codes[k]; !ok || oc != c {
			return false
		}
	}
	return true
}
