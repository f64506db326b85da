// Package kbdev reads key transitions straight from a Linux evdev keyboard,
// for running without a desktop session.
package kbdev

import (
	"context"
	"fmt"
	"os"

	evdev "github.com/holoplot/go-evdev"
	"github.com/macplus/serkey/internal/keycode"
	"github.com/rs/zerolog"
)

var defaultLogger = zerolog.New(os.Stderr).With().Str("subsystem", "kbdev").Logger()

// eventReader is the part of *evdev.InputDevice the reader needs.
type eventReader interface {
	ReadOne() (*evdev.InputEvent, error)
	Close() error
}

// Device is an open evdev keyboard.
type Device struct {
	path string
	dev  eventReader
	log  *zerolog.Logger
}

// Open opens the evdev node at path. With grab set the keyboard is taken
// exclusively so typing does not also reach the local desktop.
func Open(path string, grab bool, logger *zerolog.Logger) (*Device, error) {
	if logger == nil {
		l := defaultLogger
		logger = &l
	}
	dev, err := evdev.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w. Check the path and read permission on the device", path, err)
	}
	if name, err := dev.Name(); err == nil {
		logger.Info().Str("path", path).Str("name", name).Msg("opened input device")
	}
	if grab {
		if err := dev.Grab(); err != nil {
			_ = dev.Close()
			return nil, fmt.Errorf("grab %s: %w", path, err)
		}
	}
	return &Device{path: path, dev: dev, log: logger}, nil
}

func newDevice(path string, r eventReader, logger *zerolog.Logger) *Device {
	return &Device{path: path, dev: r, log: logger}
}

// Poll blocks until the device reports a SYN_REPORT and returns the key
// transitions of that report in order. Cancelling ctx closes the device to
// unblock the read.
//
// After SYN_DROPPED the kernel's buffer overflowed: everything up to and
// including the next SYN_REPORT is discarded.
func (d *Device) Poll(ctx context.Context) ([]keycode.Event, error) {
	stop := context.AfterFunc(ctx, func() { _ = d.dev.Close() })
	defer stop()

	var batch []keycode.Event
	dropping := false
	for {
		ev, err := d.dev.ReadOne()
		if err != nil {
			if ctx.Err() != nil {
				return batch, ctx.Err()
			}
			return batch, fmt.Errorf("read %s: %w", d.path, err)
		}
		if ev.Type == evdev.EV_SYN {
			switch ev.Code {
			case evdev.SYN_DROPPED:
				d.log.Warn().Str("path", d.path).Int("discarded", len(batch)).
					Msg("input events dropped by the kernel, keys may be stuck on the Mac")
				batch = batch[:0]
				dropping = true
			case evdev.SYN_REPORT:
				if dropping {
					dropping = false
					continue
				}
				if len(batch) > 0 {
					return batch, nil
				}
			}
			continue
		}
		if dropping {
			continue
		}
		if kev, ok := Translate(ev); ok {
			batch = append(batch, kev)
		} else if ev.Type == evdev.EV_KEY && ev.Value != valueRepeat {
			d.log.Trace().Uint16("code", uint16(ev.Code)).Msg("untranslated key code")
		}
	}
}

// Blocking reports that Poll waits for input itself, so callers need no
// idle delay between polls.
func (d *Device) Blocking() bool {
	return true
}

func (d *Device) Close() error {
	return d.dev.Close()
}
