//go:build cgo

package window

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/macplus/serkey/internal/keycode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEveryTableKeyIsReachable(t *testing.T) {
	tbl, err := keycode.Build()
	require.NoError(t, err)

	reachable := make(map[keycode.Key]bool, len(ebitenToKey))
	for _, k := range ebitenToKey {
		reachable[k] = true
	}

	// Symbol keys only come from hosts that report shifted characters.
	symbols := map[keycode.Key]bool{
		keycode.KeyExclaim: true, keycode.KeyAt: true, keycode.KeyHash: true,
		keycode.KeyDollar: true, keycode.KeyPercent: true, keycode.KeyCaret: true,
		keycode.KeyAmpersand: true, keycode.KeyAsterisk: true,
		keycode.KeyLeftParen: true, keycode.KeyRightParen: true,
	}
	for _, k := range tbl.Keys() {
		if symbols[k] {
			continue
		}
		assert.True(t, reachable[k], k.String())
	}
}

func TestTranslateKey(t *testing.T) {
	k, ok := TranslateKey(ebiten.KeyCapsLock)
	require.True(t, ok)
	assert.Equal(t, keycode.KeyCapsLock, k)

	k, ok = TranslateKey(ebiten.KeyNumpadEnter)
	require.True(t, ok)
	assert.Equal(t, keycode.KeyKPEnter, k)

	_, ok = TranslateKey(ebiten.KeyPrintScreen)
	assert.False(t, ok)
}
