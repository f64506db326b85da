package kbdev

import (
	evdev "github.com/holoplot/go-evdev"
	"github.com/macplus/serkey/internal/keycode"
)

// Linux input key codes to keycode.Key. Not a complete mapping; codes
// missing here are ignored by the device reader.
var linuxToKey = map[evdev.EvCode]keycode.Key{
	// A-Z
	evdev.KEY_A: keycode.KeyA, evdev.KEY_B: keycode.KeyB, evdev.KEY_C: keycode.KeyC,
	evdev.KEY_D: keycode.KeyD, evdev.KEY_E: keycode.KeyE, evdev.KEY_F: keycode.KeyF,
	evdev.KEY_G: keycode.KeyG, evdev.KEY_H: keycode.KeyH, evdev.KEY_I: keycode.KeyI,
	evdev.KEY_J: keycode.KeyJ, evdev.KEY_K: keycode.KeyK, evdev.KEY_L: keycode.KeyL,
	evdev.KEY_M: keycode.KeyM, evdev.KEY_N: keycode.KeyN, evdev.KEY_O: keycode.KeyO,
	evdev.KEY_P: keycode.KeyP, evdev.KEY_Q: keycode.KeyQ, evdev.KEY_R: keycode.KeyR,
	evdev.KEY_S: keycode.KeyS, evdev.KEY_T: keycode.KeyT, evdev.KEY_U: keycode.KeyU,
	evdev.KEY_V: keycode.KeyV, evdev.KEY_W: keycode.KeyW, evdev.KEY_X: keycode.KeyX,
	evdev.KEY_Y: keycode.KeyY, evdev.KEY_Z: keycode.KeyZ,

	// 1-0
	evdev.KEY_1: keycode.Key1, evdev.KEY_2: keycode.Key2, evdev.KEY_3: keycode.Key3,
	evdev.KEY_4: keycode.Key4, evdev.KEY_5: keycode.Key5, evdev.KEY_6: keycode.Key6,
	evdev.KEY_7: keycode.Key7, evdev.KEY_8: keycode.Key8, evdev.KEY_9: keycode.Key9,
	evdev.KEY_0: keycode.Key0,

	evdev.KEY_GRAVE:      keycode.KeyBackquote,
	evdev.KEY_MINUS:      keycode.KeyMinus,
	evdev.KEY_EQUAL:      keycode.KeyEquals,
	evdev.KEY_LEFTBRACE:  keycode.KeyLeftBracket,
	evdev.KEY_RIGHTBRACE: keycode.KeyRightBracket,
	evdev.KEY_BACKSLASH:  keycode.KeyBackslash,
	evdev.KEY_SEMICOLON:  keycode.KeySemicolon,
	evdev.KEY_APOSTROPHE: keycode.KeyQuote,
	evdev.KEY_COMMA:      keycode.KeyComma,
	evdev.KEY_DOT:        keycode.KeyPeriod,
	evdev.KEY_SLASH:      keycode.KeySlash,

	evdev.KEY_SPACE:     keycode.KeySpace,
	evdev.KEY_BACKSPACE: keycode.KeyBackspace,
	evdev.KEY_TAB:       keycode.KeyTab,
	evdev.KEY_ENTER:     keycode.KeyReturn,
	evdev.KEY_DELETE:    keycode.KeyDelete,
	evdev.KEY_KPENTER:   keycode.KeyKPEnter,

	// modifiers
	evdev.KEY_LEFTSHIFT:  keycode.KeyLeftShift,
	evdev.KEY_RIGHTSHIFT: keycode.KeyRightShift,
	evdev.KEY_CAPSLOCK:   keycode.KeyCapsLock,
	evdev.KEY_LEFTCTRL:   keycode.KeyLeftCtrl,
	evdev.KEY_RIGHTCTRL:  keycode.KeyRightCtrl,
	evdev.KEY_LEFTALT:    keycode.KeyLeftAlt,
	evdev.KEY_RIGHTALT:   keycode.KeyRightAlt,
	evdev.KEY_LEFTMETA:   keycode.KeyLeftMeta,
	evdev.KEY_RIGHTMETA:  keycode.KeyRightMeta,

	// arrows
	evdev.KEY_LEFT:  keycode.KeyLeft,
	evdev.KEY_RIGHT: keycode.KeyRight,
	evdev.KEY_UP:    keycode.KeyUp,
	evdev.KEY_DOWN:  keycode.KeyDown,

	evdev.KEY_ESC:      keycode.KeyEscape,
	evdev.KEY_HOME:     keycode.KeyHome,
	evdev.KEY_END:      keycode.KeyEnd,
	evdev.KEY_PAGEUP:   keycode.KeyPageUp,
	evdev.KEY_PAGEDOWN: keycode.KeyPageDown,
	evdev.KEY_INSERT:   keycode.KeyInsert,
	evdev.KEY_F1:       keycode.KeyF1,
	evdev.KEY_F2:       keycode.KeyF2,
	evdev.KEY_F3:       keycode.KeyF3,
	evdev.KEY_F4:       keycode.KeyF4,
	evdev.KEY_F5:       keycode.KeyF5,
	evdev.KEY_F6:       keycode.KeyF6,
	evdev.KEY_F7:       keycode.KeyF7,
	evdev.KEY_F8:       keycode.KeyF8,
	evdev.KEY_F9:       keycode.KeyF9,
	evdev.KEY_F10:      keycode.KeyF10,
	evdev.KEY_F11:      keycode.KeyF11,
	evdev.KEY_F12:      keycode.KeyF12,
}

// evdev key event values
const (
	valueRelease = 0
	valuePress   = 1
	valueRepeat  = 2
)

// Translate converts one input event into a key transition. Non-key
// events, autorepeat and unknown codes report false.
func Translate(ev *evdev.InputEvent) (keycode.Event, bool) {
	if ev.Type != evdev.EV_KEY {
		return keycode.Event{}, false
	}
	key, ok := linuxToKey[ev.Code]
	if !ok {
		return keycode.Event{}, false
	}
	switch ev.Value {
	case valuePress:
		return keycode.Press(key), true
	case valueRelease:
		return keycode.Release(key), true
	}
	return keycode.Event{}, false
}
