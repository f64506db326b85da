package replay

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/macplus/serkey/internal/keycode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLine(t *testing.T) {
	cases := []struct {
		line string
		want Command
	}{
		{"", Command{}},
		{"   # just a comment", Command{}},
		{"down capslock", Command{Events: []keycode.Event{keycode.Press(keycode.KeyCapsLock)}}},
		{"UP a b  # trailing", Command{Events: []keycode.Event{
			keycode.Release(keycode.KeyA), keycode.Release(keycode.KeyB),
		}}},
		{"tap left", Command{Events: []keycode.Event{
			keycode.Press(keycode.KeyLeft), keycode.Release(keycode.KeyLeft),
		}}},
		{"wait 250ms", Command{Wait: 250 * time.Millisecond}},
	}
	for _, c := range cases {
		got, err := ParseLine(c.line)
		require.NoError(t, err, c.line)
		assert.Equal(t, c.want, got, c.line)
	}
}

func TestParseLineErrors(t *testing.T) {
	for _, line := range []string{
		"down",
		"down hyper",
		"wait soon",
		"wait -1s",
		"jump a",
		"type é",
	} {
		_, err := ParseLine(line)
		assert.Error(t, err, line)
	}

	_, err := ParseLine("tap hyper")
	assert.ErrorIs(t, err, keycode.ErrUnknownKey)
}

func TestTypeText(t *testing.T) {
	cmd, err := ParseLine("type Hi!")
	require.NoError(t, err)
	assert.Equal(t, []keycode.Event{
		keycode.Press(keycode.KeyLeftShift),
		keycode.Press(keycode.KeyH), keycode.Release(keycode.KeyH),
		keycode.Release(keycode.KeyLeftShift),
		keycode.Press(keycode.KeyI), keycode.Release(keycode.KeyI),
		keycode.Press(keycode.KeyLeftShift),
		keycode.Press(keycode.Key1), keycode.Release(keycode.Key1),
		keycode.Release(keycode.KeyLeftShift),
	}, cmd.Events)
}

func TestTypeKeepsHash(t *testing.T) {
	cmd, err := ParseLine("type #")
	require.NoError(t, err)
	assert.Equal(t, []keycode.Event{
		keycode.Press(keycode.KeyLeftShift),
		keycode.Press(keycode.Key3), keycode.Release(keycode.Key3),
		keycode.Release(keycode.KeyLeftShift),
	}, cmd.Events)
}

func TestHashRuleIgnoresVerbCase(t *testing.T) {
	cases := []struct {
		lower, upper string
	}{
		{"type a # x", "TYPE a # x"},
		{"type #", "Type #"},
		{"tap a # x", "TAP a # x"},
		{"down lshift # hold", "Down lshift # hold"},
	}
	for _, c := range cases {
		lower, err := ParseLine(c.lower)
		require.NoError(t, err, c.lower)
		upper, err := ParseLine(c.upper)
		require.NoError(t, err, c.upper)
		assert.Equal(t, lower, upper, c.upper)
	}

	cmd, err := ParseLine("TYPE a # x")
	require.NoError(t, err)
	typed, err := ParseLine("type a # x")
	require.NoError(t, err)
	assert.Len(t, cmd.Events, len(typed.Events))
	assert.Greater(t, len(cmd.Events), 2, "text after # is typed")

	cmd, err = ParseLine("TAP a # x")
	require.NoError(t, err)
	assert.Equal(t, []keycode.Event{keycode.Press(keycode.KeyA), keycode.Release(keycode.KeyA)}, cmd.Events)
}

func TestReaderPoll(t *testing.T) {
	script := `
# lock, type, unlock
down capslock
up capslock
wait 10ms

tap a
`
	r := NewReader(strings.NewReader(script))
	var waited []time.Duration
	r.wait = func(_ context.Context, d time.Duration) error {
		waited = append(waited, d)
		return nil
	}

	ctx := context.Background()
	batch, err := r.Poll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []keycode.Event{keycode.Press(keycode.KeyCapsLock)}, batch)

	batch, err = r.Poll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []keycode.Event{keycode.Release(keycode.KeyCapsLock)}, batch)

	batch, err = r.Poll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []keycode.Event{keycode.Press(keycode.KeyA), keycode.Release(keycode.KeyA)}, batch)
	assert.Equal(t, []time.Duration{10 * time.Millisecond}, waited)

	_, err = r.Poll(ctx)
	assert.ErrorIs(t, err, io.EOF)
}

func TestReaderReportsLineNumber(t *testing.T) {
	r := NewReader(strings.NewReader("tap a\n\nfrobnicate\n"))
	_, err := r.Poll(context.Background())
	require.NoError(t, err)
	_, err = r.Poll(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 3")
}

func TestReaderWaitCancelled(t *testing.T) {
	r := NewReader(strings.NewReader("wait 1h\ntap a\n"))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := r.Poll(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
