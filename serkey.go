// Package serkey turns host keyboard input into the byte stream a Mac Plus
// keyboard bridge expects on its serial port.
package serkey

import (
	"context"
	"io"

	"github.com/macplus/serkey/internal/encoder"
	"github.com/macplus/serkey/internal/keycode"
	"github.com/macplus/serkey/internal/utils"
	"github.com/macplus/serkey/internal/window"
)

const windowLegend = `Keys are forwarded to the Mac while this window has focus.

Ctrl = Option    Alt = Command    Delete = Enter
Arrows are sent as keypad codes.`

// Run validates cfg, opens the serial port and input, and forwards key
// transitions until ctx is cancelled or the input quits.
func Run(ctx context.Context, cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := SetLogLevel(cfg.LogLevel); err != nil {
		return err
	}

	table, remap, err := keycode.BuildCaps(cfg.CapsIsOption, cfg.CapsIsCommand)
	if err != nil {
		return err
	}
	if remap.Reassigned() {
		rootLogger.Info().Stringer("target", remap).Msgf("Caps Lock has been reassigned to %s", remap)
	}

	port, err := openSerialPort(cfg.PortPath, cfg.BaudRate)
	if err != nil {
		return err
	}
	defer port.Close()

	return run(ctx, cfg, table, remap, port)
}

func run(ctx context.Context, cfg Config, table *keycode.Table, remap keycode.CapsRemap, out io.Writer) error {
	enc := encoder.New(table, encoder.Options{CapsReassigned: remap.Reassigned()}, &encoderLogger)
	sess := NewSession(enc, out, cfg.IdleDelay)

	status := newStatusNotifier(cfg.PortPath)
	enc.SetOnCapsLockChange(status.capsLockChanged)
	utils.SetProcTitle(procTitle(cfg.PortPath, false))

	if cfg.MetricsAddr != "" {
		go serveMetrics(ctx, cfg.MetricsAddr)
	}

	if cfg.Input == InputWindow {
		inputLogger.Info().Msg("Initializing window input")
		status.caption = window.SetCaption
		return window.Run(ctx, window.Config{
			Title:  capsLockCaption(false),
			Legend: windowLegend,
		}, sess.Handle, &inputLogger)
	}

	src, err := openInputSource(cfg)
	if err != nil {
		return err
	}
	defer src.Close()
	return sess.Run(ctx, src)
}
