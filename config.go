package serkey

import (
	"errors"
	"fmt"
	"time"

	"github.com/macplus/serkey/internal/keycode"
	"github.com/rs/zerolog"
)

const (
	InputWindow = "window"
	InputEvdev  = "evdev"
	InputReplay = "replay"
)

const (
	defaultBaudRate  = 230400
	defaultIdleDelay = 100 * time.Millisecond
	defaultLogLevel  = "info"
)

type Config struct {
	// PortPath is the serial device the Mac keyboard bridge is attached to.
	PortPath string

	CapsIsOption  bool
	CapsIsCommand bool

	Input  string
	Device string
	Grab   bool
	Script string

	IdleDelay   time.Duration
	BaudRate    int
	LogLevel    string
	MetricsAddr string
}

func DefaultConfig() Config {
	return Config{
		Input:     InputWindow,
		IdleDelay: defaultIdleDelay,
		BaudRate:  defaultBaudRate,
		LogLevel:  defaultLogLevel,
	}
}

func (c *Config) normalize() {
	if c.Input == "" {
		c.Input = InputWindow
	}
	if c.BaudRate == 0 {
		c.BaudRate = defaultBaudRate
	}
	if c.LogLevel == "" {
		c.LogLevel = defaultLogLevel
	}
}

// Validate normalizes c and reports the first configuration error.
func (c *Config) Validate() error {
	c.normalize()
	if c.PortPath == "" {
		return ErrNoPort
	}
	if _, err := keycode.ParseCapsRemap(c.CapsIsOption, c.CapsIsCommand); err != nil {
		return err
	}
	switch c.Input {
	case InputWindow:
	case InputEvdev:
		if c.Device == "" {
			return errors.New("-device required with -input evdev")
		}
	case InputReplay:
		if c.Script == "" {
			return errors.New("-script required with -input replay")
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownInput, c.Input)
	}
	if c.IdleDelay < 0 {
		return errors.New("idle delay must be >= 0")
	}
	if c.BaudRate < 0 {
		return errors.New("baud rate must be >= 0, 0 selects 230400")
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	return nil
}
