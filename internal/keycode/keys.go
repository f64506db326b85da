package keycode

import (
	"fmt"
	"strings"
)

// Key identifies one host keyboard key independently of any protocol code.
// Input sources translate their native identities (ebiten keys, Linux
// KEY_* codes, script names) into Key.
type Key uint16

const (
	KeyUnknown Key = iota

	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ

	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9

	KeyBackquote
	KeyMinus
	KeyEquals
	KeyLeftBracket
	KeyRightBracket
	KeyBackslash
	KeySemicolon
	KeyQuote
	KeyComma
	KeyPeriod
	KeySlash

	// Shifted digit row. Hosts that report symbols rather than physical
	// keys deliver these; the receiving Mac applies shift itself.
	KeyExclaim
	KeyAt
	KeyHash
	KeyDollar
	KeyPercent
	KeyCaret
	KeyAmpersand
	KeyAsterisk
	KeyLeftParen
	KeyRightParen

	KeySpace
	KeyBackspace
	KeyTab
	KeyReturn
	KeyDelete
	KeyKPEnter

	KeyLeftShift
	KeyRightShift
	KeyCapsLock
	KeyLeftCtrl
	KeyRightCtrl
	KeyLeftAlt
	KeyRightAlt
	KeyLeftMeta
	KeyRightMeta

	KeyLeft
	KeyRight
	KeyUp
	KeyDown

	KeyEscape
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyInsert
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12

	keyCount
)

var keyNames = [keyCount]string{
	KeyUnknown: "unknown",

	KeyA: "a", KeyB: "b", KeyC: "c", KeyD: "d", KeyE: "e", KeyF: "f",
	KeyG: "g", KeyH: "h", KeyI: "i", KeyJ: "j", KeyK: "k", KeyL: "l",
	KeyM: "m", KeyN: "n", KeyO: "o", KeyP: "p", KeyQ: "q", KeyR: "r",
	KeyS: "s", KeyT: "t", KeyU: "u", KeyV: "v", KeyW: "w", KeyX: "x",
	KeyY: "y", KeyZ: "z",

	Key0: "0", Key1: "1", Key2: "2", Key3: "3", Key4: "4",
	Key5: "5", Key6: "6", Key7: "7", Key8: "8", Key9: "9",

	KeyBackquote:    "backquote",
	KeyMinus:        "minus",
	KeyEquals:       "equals",
	KeyLeftBracket:  "leftbracket",
	KeyRightBracket: "rightbracket",
	KeyBackslash:    "backslash",
	KeySemicolon:    "semicolon",
	KeyQuote:        "quote",
	KeyComma:        "comma",
	KeyPeriod:       "period",
	KeySlash:        "slash",

	KeyExclaim:    "exclaim",
	KeyAt:         "at",
	KeyHash:       "hash",
	KeyDollar:     "dollar",
	KeyPercent:    "percent",
	KeyCaret:      "caret",
	KeyAmpersand:  "ampersand",
	KeyAsterisk:   "asterisk",
	KeyLeftParen:  "leftparen",
	KeyRightParen: "rightparen",

	KeySpace:     "space",
	KeyBackspace: "backspace",
	KeyTab:       "tab",
	KeyReturn:    "return",
	KeyDelete:    "delete",
	KeyKPEnter:   "kp_enter",

	KeyLeftShift:  "lshift",
	KeyRightShift: "rshift",
	KeyCapsLock:   "capslock",
	KeyLeftCtrl:   "lctrl",
	KeyRightCtrl:  "rctrl",
	KeyLeftAlt:    "lalt",
	KeyRightAlt:   "ralt",
	KeyLeftMeta:   "lmeta",
	KeyRightMeta:  "rmeta",

	KeyLeft:  "left",
	KeyRight: "right",
	KeyUp:    "up",
	KeyDown:  "down",

	KeyEscape:   "escape",
	KeyHome:     "home",
	KeyEnd:      "end",
	KeyPageUp:   "pageup",
	KeyPageDown: "pagedown",
	KeyInsert:   "insert",
	KeyF1:       "f1",
	KeyF2:       "f2",
	KeyF3:       "f3",
	KeyF4:       "f4",
	KeyF5:       "f5",
	KeyF6:       "f6",
	KeyF7:       "f7",
	KeyF8:       "f8",
	KeyF9:       "f9",
	KeyF10:      "f10",
	KeyF11:      "f11",
	KeyF12:      "f12",
}

var keysByName = func() map[string]Key {
	m := make(map[string]Key, keyCount)
	for k := Key(1); k < keyCount; k++ {
		m[keyNames[k]] = k
	}
	return m
}()

func (k Key) String() string {
	if k < keyCount {
		return keyNames[k]
	}
	return fmt.Sprintf("key(%d)", uint16(k))
}

// ParseKey returns the Key with the given name. Names are case-insensitive.
func ParseKey(name string) (Key, error) {
	if k, ok := keysByName[strings.ToLower(strings.TrimSpace(name))]; ok {
		return k, nil
	}
	return KeyUnknown, fmt.Errorf("%w: %q", ErrUnknownKey, name)
}

// AllKeys returns every known key except KeyUnknown, in declaration order.
func AllKeys() []Key {
	keys := make([]Key, 0, keyCount-1)
	for k := Key(1); k < keyCount; k++ {
		keys = append(keys, k)
	}
	return keys
}

// Event is one key transition reported by an input source.
type Event struct {
	Key     Key
	Release bool
}

// Press returns the press transition for k.
func Press(k Key) Event { return Event{Key: k} }

// Release returns the release transition for k.
func Release(k Key) Event { return Event{Key: k, Release: true} }

func (e Event) String() string {
	if e.Release {
		return "up " + e.Key.String()
	}
	return "down " + e.Key.String()
}
