//go:build cgo

package window

import (
	"context"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/macplus/serkey/internal/keycode"
	"github.com/rs/zerolog"
)

var defaultLogger = zerolog.New(os.Stderr).With().Str("subsystem", "window").Logger()

const (
	defaultWidth  = 487
	defaultHeight = 237
)

// Config controls the input window.
type Config struct {
	Title  string
	Width  int
	Height int
	// TPS is how often keyboard state is sampled. Defaults to 60.
	TPS int
	// Legend is drawn in the window body.
	Legend string
}

// Handler receives every translated key transition in the order it was
// observed. A non-nil error closes the window and is returned from Run.
type Handler func(ev keycode.Event) error

// Run opens the window and forwards keyboard transitions to handle until
// the window is closed, ctx is cancelled or handle fails. It must be called
// from the main goroutine.
func Run(ctx context.Context, cfg Config, handle Handler, logger *zerolog.Logger) error {
	if logger == nil {
		l := defaultLogger
		logger = &l
	}
	if cfg.Width <= 0 {
		cfg.Width = defaultWidth
	}
	if cfg.Height <= 0 {
		cfg.Height = defaultHeight
	}
	if cfg.TPS <= 0 {
		cfg.TPS = 60
	}

	g := &game{ctx: ctx, cfg: cfg, handle: handle, log: logger}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetRunnableOnUnfocused(true)

	err := ebiten.RunGame(g)
	if err == ebiten.Termination {
		return nil
	}
	return err
}

// SetCaption replaces the window title. Call it from the Handler so it
// runs on the game goroutine.
func SetCaption(title string) {
	ebiten.SetWindowTitle(title)
}

type game struct {
	ctx    context.Context
	cfg    Config
	handle Handler
	log    *zerolog.Logger

	pressed  []ebiten.Key
	released []ebiten.Key
	events   []keycode.Event
}

func (g *game) Update() error {
	if g.ctx.Err() != nil {
		return ebiten.Termination
	}
	g.released = inpututil.AppendJustReleasedKeys(g.released[:0])
	g.pressed = inpututil.AppendJustPressedKeys(g.pressed[:0])
	return g.dispatch(g.released, g.pressed)
}

// dispatch forwards one tick's transitions to the handler, stopping at the
// first error.
func (g *game) dispatch(released, pressed []ebiten.Key) error {
	g.events = appendTransitions(g.events[:0], released, pressed, g.log)
	for _, ev := range g.events {
		if err := g.handle(ev); err != nil {
			return fmt.Errorf("handle %s: %w", ev, err)
		}
	}
	return nil
}

// appendTransitions appends the key transitions of one tick to dst.
// Releases come first: a key let go this tick went down in an earlier one.
// Keys without a translation are skipped.
func appendTransitions(dst []keycode.Event, released, pressed []ebiten.Key, log *zerolog.Logger) []keycode.Event {
	add := func(k ebiten.Key, release bool) {
		key, ok := TranslateKey(k)
		if !ok {
			log.Trace().Str("ebiten_key", k.String()).Msg("untranslated key")
			return
		}
		dst = append(dst, keycode.Event{Key: key, Release: release})
	}
	for _, k := range released {
		add(k, true)
	}
	for _, k := range pressed {
		add(k, false)
	}
	return dst
}

func (g *game) Draw(screen *ebiten.Image) {
	ebitenutil.DebugPrint(screen, g.cfg.Legend)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}
