//go:build cgo

package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/macplus/serkey/internal/keycode"
)

// ebitenToKey covers every physical key the Mac Plus keyboard has an
// equivalent for, plus a few that are reported and then dropped by the
// table. Keys missing here never reach the encoder.
var ebitenToKey = map[ebiten.Key]keycode.Key{
	ebiten.KeyA: keycode.KeyA, ebiten.KeyB: keycode.KeyB, ebiten.KeyC: keycode.KeyC,
	ebiten.KeyD: keycode.KeyD, ebiten.KeyE: keycode.KeyE, ebiten.KeyF: keycode.KeyF,
	ebiten.KeyG: keycode.KeyG, ebiten.KeyH: keycode.KeyH, ebiten.KeyI: keycode.KeyI,
	ebiten.KeyJ: keycode.KeyJ, ebiten.KeyK: keycode.KeyK, ebiten.KeyL: keycode.KeyL,
	ebiten.KeyM: keycode.KeyM, ebiten.KeyN: keycode.KeyN, ebiten.KeyO: keycode.KeyO,
	ebiten.KeyP: keycode.KeyP, ebiten.KeyQ: keycode.KeyQ, ebiten.KeyR: keycode.KeyR,
	ebiten.KeyS: keycode.KeyS, ebiten.KeyT: keycode.KeyT, ebiten.KeyU: keycode.KeyU,
	ebiten.KeyV: keycode.KeyV, ebiten.KeyW: keycode.KeyW, ebiten.KeyX: keycode.KeyX,
	ebiten.KeyY: keycode.KeyY, ebiten.KeyZ: keycode.KeyZ,

	ebiten.KeyDigit0: keycode.Key0, ebiten.KeyDigit1: keycode.Key1,
	ebiten.KeyDigit2: keycode.Key2, ebiten.KeyDigit3: keycode.Key3,
	ebiten.KeyDigit4: keycode.Key4, ebiten.KeyDigit5: keycode.Key5,
	ebiten.KeyDigit6: keycode.Key6, ebiten.KeyDigit7: keycode.Key7,
	ebiten.KeyDigit8: keycode.Key8, ebiten.KeyDigit9: keycode.Key9,

	ebiten.KeyBackquote:    keycode.KeyBackquote,
	ebiten.KeyMinus:        keycode.KeyMinus,
	ebiten.KeyEqual:        keycode.KeyEquals,
	ebiten.KeyBracketLeft:  keycode.KeyLeftBracket,
	ebiten.KeyBracketRight: keycode.KeyRightBracket,
	ebiten.KeyBackslash:    keycode.KeyBackslash,
	ebiten.KeySemicolon:    keycode.KeySemicolon,
	ebiten.KeyQuote:        keycode.KeyQuote,
	ebiten.KeyComma:        keycode.KeyComma,
	ebiten.KeyPeriod:       keycode.KeyPeriod,
	ebiten.KeySlash:        keycode.KeySlash,

	ebiten.KeySpace:       keycode.KeySpace,
	ebiten.KeyBackspace:   keycode.KeyBackspace,
	ebiten.KeyTab:         keycode.KeyTab,
	ebiten.KeyEnter:       keycode.KeyReturn,
	ebiten.KeyDelete:      keycode.KeyDelete,
	ebiten.KeyNumpadEnter: keycode.KeyKPEnter,

	ebiten.KeyShiftLeft:    keycode.KeyLeftShift,
	ebiten.KeyShiftRight:   keycode.KeyRightShift,
	ebiten.KeyCapsLock:     keycode.KeyCapsLock,
	ebiten.KeyControlLeft:  keycode.KeyLeftCtrl,
	ebiten.KeyControlRight: keycode.KeyRightCtrl,
	ebiten.KeyAltLeft:      keycode.KeyLeftAlt,
	ebiten.KeyAltRight:     keycode.KeyRightAlt,
	ebiten.KeyMetaLeft:     keycode.KeyLeftMeta,
	ebiten.KeyMetaRight:    keycode.KeyRightMeta,

	ebiten.KeyArrowLeft:  keycode.KeyLeft,
	ebiten.KeyArrowRight: keycode.KeyRight,
	ebiten.KeyArrowUp:    keycode.KeyUp,
	ebiten.KeyArrowDown:  keycode.KeyDown,

	ebiten.KeyEscape:   keycode.KeyEscape,
	ebiten.KeyHome:     keycode.KeyHome,
	ebiten.KeyEnd:      keycode.KeyEnd,
	ebiten.KeyPageUp:   keycode.KeyPageUp,
	ebiten.KeyPageDown: keycode.KeyPageDown,
	ebiten.KeyInsert:   keycode.KeyInsert,
	ebiten.KeyF1:       keycode.KeyF1,
	ebiten.KeyF2:       keycode.KeyF2,
	ebiten.KeyF3:       keycode.KeyF3,
	ebiten.KeyF4:       keycode.KeyF4,
	ebiten.KeyF5:       keycode.KeyF5,
	ebiten.KeyF6:       keycode.KeyF6,
	ebiten.KeyF7:       keycode.KeyF7,
	ebiten.KeyF8:       keycode.KeyF8,
	ebiten.KeyF9:       keycode.KeyF9,
	ebiten.KeyF10:      keycode.KeyF10,
	ebiten.KeyF11:      keycode.KeyF11,
	ebiten.KeyF12:      keycode.KeyF12,
}

// TranslateKey returns the keycode.Key for an ebiten key.
func TranslateKey(k ebiten.Key) (keycode.Key, bool) {
	key, ok := ebitenToKey[k]
	return key, ok
}
