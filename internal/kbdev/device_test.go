package kbdev

import (
	"context"
	"errors"
	"io"
	"testing"

	evdev "github.com/holoplot/go-evdev"
	"github.com/macplus/serkey/internal/keycode"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeReader struct {
	events []evdev.InputEvent
	closed bool
}

func (f *fakeReader) ReadOne() (*evdev.InputEvent, error) {
	if len(f.events) == 0 {
		return nil, io.EOF
	}
	ev := f.events[0]
	f.events = f.events[1:]
	return &ev, nil
}

func (f *fakeReader) Close() error {
	f.closed = true
	return nil
}

func key(code evdev.EvCode, value int32) evdev.InputEvent {
	return evdev.InputEvent{Type: evdev.EV_KEY, Code: code, Value: value}
}

func syn() evdev.InputEvent {
	return evdev.InputEvent{Type: evdev.EV_SYN, Code: evdev.SYN_REPORT}
}

func TestTranslate(t *testing.T) {
	cases := []struct {
		ev   evdev.InputEvent
		want keycode.Event
		ok   bool
	}{
		{key(evdev.KEY_A, 1), keycode.Press(keycode.KeyA), true},
		{key(evdev.KEY_A, 0), keycode.Release(keycode.KeyA), true},
		{key(evdev.KEY_A, 2), keycode.Event{}, false},
		{key(evdev.KEY_CAPSLOCK, 1), keycode.Press(keycode.KeyCapsLock), true},
		{key(evdev.KEY_KPENTER, 0), keycode.Release(keycode.KeyKPEnter), true},
		{key(evdev.KEY_VOLUMEUP, 1), keycode.Event{}, false},
		{syn(), keycode.Event{}, false},
	}
	for _, c := range cases {
		ev := c.ev
		got, ok := Translate(&ev)
		assert.Equal(t, c.ok, ok)
		assert.Equal(t, c.want, got)
	}
}

func TestPollBatchesUntilSynReport(t *testing.T) {
	r := &fakeReader{events: []evdev.InputEvent{
		{Type: evdev.EV_MSC, Code: evdev.MSC_SCAN, Value: 0x70004},
		key(evdev.KEY_LEFTSHIFT, 1),
		key(evdev.KEY_A, 1),
		syn(),
		syn(),
		key(evdev.KEY_A, 2),
		syn(),
		key(evdev.KEY_A, 0),
		syn(),
	}}
	l := zerolog.Nop()
	d := newDevice("/dev/input/test", r, &l)

	batch, err := d.Poll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []keycode.Event{
		keycode.Press(keycode.KeyLeftShift),
		keycode.Press(keycode.KeyA),
	}, batch)

	batch, err = d.Poll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []keycode.Event{keycode.Release(keycode.KeyA)}, batch)

	_, err = d.Poll(context.Background())
	assert.True(t, errors.Is(err, io.EOF))
}

func TestPollCancelled(t *testing.T) {
	r := &fakeReader{}
	l := zerolog.Nop()
	d := newDevice("/dev/input/test", r, &l)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := d.Poll(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestEveryTableKeyHasLinuxCode(t *testing.T) {
	tbl, err := keycode.Build()
	require.NoError(t, err)
	reachable := map[keycode.Key]bool{}
	for _, k := range linuxToKey {
		reachable[k] = true
	}
	for _, k := range tbl.Keys() {
		if k >= keycode.KeyExclaim && k <= keycode.KeyRightParen {
			continue
		}
		assert.True(t, reachable[k], k.String())
	}
}

func TestPollDiscardsDroppedReport(t *testing.T) {
	cases := []struct {
		name   string
		events []evdev.InputEvent
		want   [][]keycode.Event
	}{
		{
			name: "partial report before drop discarded",
			events: []evdev.InputEvent{
				key(evdev.KEY_A, 1),
				{Type: evdev.EV_SYN, Code: evdev.SYN_DROPPED},
				key(evdev.KEY_B, 1),
				syn(),
				key(evdev.KEY_C, 1),
				syn(),
			},
			want: [][]keycode.Event{{keycode.Press(keycode.KeyC)}},
		},
		{
			name: "reports after drop kept",
			events: []evdev.InputEvent{
				{Type: evdev.EV_SYN, Code: evdev.SYN_DROPPED},
				syn(),
				key(evdev.KEY_A, 0),
				syn(),
				key(evdev.KEY_B, 0),
				syn(),
			},
			want: [][]keycode.Event{
				{keycode.Release(keycode.KeyA)},
				{keycode.Release(keycode.KeyB)},
			},
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			l := zerolog.Nop()
			d := newDevice("/dev/input/test", &fakeReader{events: c.events}, &l)
			var got [][]keycode.Event
			for {
				batch, err := d.Poll(context.Background())
				if err != nil {
					require.ErrorIs(t, err, io.EOF)
					break
				}
				got = append(got, batch)
			}
			assert.Equal(t, c.want, got)
		})
	}
}

func TestPollDrainsQueuedReports(t *testing.T) {
	var events []evdev.InputEvent
	for i := 0; i < 50; i++ {
		events = append(events, key(evdev.KEY_A, 1), syn(), key(evdev.KEY_A, 0), syn())
	}
	l := zerolog.Nop()
	d := newDevice("/dev/input/test", &fakeReader{events: events}, &l)
	assert.True(t, d.Blocking())

	n := 0
	for {
		batch, err := d.Poll(context.Background())
		if err != nil {
			require.ErrorIs(t, err, io.EOF)
			break
		}
		require.Len(t, batch, 1)
		n++
	}
	assert.Equal(t, 100, n)
}
