// Package replay feeds key transitions from a text script, so a Mac can be
// driven from a bench without a keyboard attached to the host.
//
// One command per line. Verbs are case-insensitive. '#' starts a comment
// except on type lines, where everything after the verb is text:
//
//	down capslock         press keys
//	up capslock           release keys
//	tap a b c             press then release each key
//	type Hello, world     tap the keys that produce the text, shifting as needed
//	wait 250ms            pause before the next line
package replay

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"time"
	"unicode"

	"github.com/macplus/serkey/internal/keycode"
)

// Reader yields one script line's transitions per Poll.
type Reader struct {
	sc   *bufio.Scanner
	line int
	wait func(ctx context.Context, d time.Duration) error
}

func NewReader(r io.Reader) *Reader {
	return &Reader{sc: bufio.NewScanner(r), wait: sleep}
}

func sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// Poll returns the transitions of the next non-empty line. io.EOF marks
// the end of the script.
func (r *Reader) Poll(ctx context.Context) ([]keycode.Event, error) {
	for r.sc.Scan() {
		r.line++
		cmd, err := ParseLine(r.sc.Text())
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", r.line, err)
		}
		if cmd.Wait > 0 {
			if err := r.wait(ctx, cmd.Wait); err != nil {
				return nil, err
			}
		}
		if len(cmd.Events) > 0 {
			return cmd.Events, nil
		}
	}
	if err := r.sc.Err(); err != nil {
		return nil, err
	}
	return nil, io.EOF
}

// Command is one parsed script line.
type Command struct {
	Events []keycode.Event
	Wait   time.Duration
}

// ParseLine parses a single script line. Blank lines and comments yield
// an empty Command.
func ParseLine(line string) (Command, error) {
	verb, rest, _ := strings.Cut(strings.TrimSpace(line), " ")
	verb = strings.ToLower(verb)
	if verb != "type" {
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		verb, rest, _ = strings.Cut(strings.TrimSpace(line), " ")
		verb = strings.ToLower(verb)
	}
	switch verb {
	case "":
		return Command{}, nil
	case "down", "up":
		keys, err := parseKeys(rest)
		if err != nil {
			return Command{}, err
		}
		events := make([]keycode.Event, 0, len(keys))
		for _, k := range keys {
			events = append(events, keycode.Event{Key: k, Release: verb == "up"})
		}
		return Command{Events: events}, nil
	case "tap":
		keys, err := parseKeys(rest)
		if err != nil {
			return Command{}, err
		}
		events := make([]keycode.Event, 0, 2*len(keys))
		for _, k := range keys {
			events = append(events, keycode.Press(k), keycode.Release(k))
		}
		return Command{Events: events}, nil
	case "type":
		events, err := typeText(rest)
		return Command{Events: events}, err
	case "wait":
		d, err := time.ParseDuration(strings.TrimSpace(rest))
		if err != nil {
			return Command{}, err
		}
		if d < 0 {
			return Command{}, fmt.Errorf("negative wait %s", d)
		}
		return Command{Wait: d}, nil
	}
	return Command{}, fmt.Errorf("unknown command %q", verb)
}

func parseKeys(s string) ([]keycode.Key, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return nil, fmt.Errorf("missing key names")
	}
	keys := make([]keycode.Key, 0, len(fields))
	for _, f := range fields {
		k, err := keycode.ParseKey(f)
		if err != nil {
			return nil, err
		}
		keys = append(keys, k)
	}
	return keys, nil
}

// US layout: unshifted and shifted characters per physical key.
var runeKeys = map[rune]keycode.Key{
	'`': keycode.KeyBackquote, '-': keycode.KeyMinus, '=': keycode.KeyEquals,
	'[': keycode.KeyLeftBracket, ']': keycode.KeyRightBracket, '\\': keycode.KeyBackslash,
	';': keycode.KeySemicolon, '\'': keycode.KeyQuote, ',': keycode.KeyComma,
	'.': keycode.KeyPeriod, '/': keycode.KeySlash, ' ': keycode.KeySpace,
	'\t': keycode.KeyTab,
}

var shiftedRuneKeys = map[rune]keycode.Key{
	'~': keycode.KeyBackquote, '_': keycode.KeyMinus, '+': keycode.KeyEquals,
	'{': keycode.KeyLeftBracket, '}': keycode.KeyRightBracket, '|': keycode.KeyBackslash,
	':': keycode.KeySemicolon, '"': keycode.KeyQuote, '<': keycode.KeyComma,
	'>': keycode.KeyPeriod, '?': keycode.KeySlash,
	'!': keycode.Key1, '@': keycode.Key2, '#': keycode.Key3, '$': keycode.Key4,
	'%': keycode.Key5, '^': keycode.Key6, '&': keycode.Key7, '*': keycode.Key8,
	'(': keycode.Key9, ')': keycode.Key0,
}

func typeText(text string) ([]keycode.Event, error) {
	var events []keycode.Event
	for _, r := range text {
		key, shifted, ok := runeKey(r)
		if !ok {
			return nil, fmt.Errorf("cannot type %q", r)
		}
		if shifted {
			events = append(events, keycode.Press(keycode.KeyLeftShift))
		}
		events = append(events, keycode.Press(key), keycode.Release(key))
		if shifted {
			events = append(events, keycode.Release(keycode.KeyLeftShift))
		}
	}
	return events, nil
}

func runeKey(r rune) (keycode.Key, bool, bool) {
	switch {
	case r >= 'a' && r <= 'z':
		return keycode.KeyA + keycode.Key(r-'a'), false, true
	case r >= 'A' && r <= 'Z':
		return keycode.KeyA + keycode.Key(unicode.ToLower(r)-'a'), true, true
	case r >= '0' && r <= '9':
		return keycode.Key0 + keycode.Key(r-'0'), false, true
	}
	if k, ok := runeKeys[r]; ok {
		return k, false, true
	}
	if k, ok := shiftedRuneKeys[r]; ok {
		return k, true, true
	}
	return keycode.KeyUnknown, false, false
}
