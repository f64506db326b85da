package serkey

import (
	"testing"
	"time"

	"github.com/macplus/serkey/internal/keycode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
		err    error
		ok     bool
	}{
		{"defaults with port", func(c *Config) {}, nil, true},
		{"no port", func(c *Config) { c.PortPath = "" }, ErrNoPort, false},
		{"both remaps", func(c *Config) { c.CapsIsOption, c.CapsIsCommand = true, true }, keycode.ErrConflictingRemap, false},
		{"option remap", func(c *Config) { c.CapsIsOption = true }, nil, true},
		{"unknown input", func(c *Config) { c.Input = "midi" }, ErrUnknownInput, false},
		{"evdev without device", func(c *Config) { c.Input = InputEvdev }, nil, false},
		{"evdev with device", func(c *Config) { c.Input, c.Device = InputEvdev, "/dev/input/event0" }, nil, true},
		{"replay without script", func(c *Config) { c.Input = InputReplay }, nil, false},
		{"negative idle", func(c *Config) { c.IdleDelay = -time.Second }, nil, false},
		{"bad log level", func(c *Config) { c.LogLevel = "loud" }, nil, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.PortPath = "/dev/ttyUSB0"
			c.mutate(&cfg)
			err := cfg.Validate()
			if c.ok {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			if c.err != nil {
				assert.ErrorIs(t, err, c.err)
			}
		})
	}
}

func TestConfigNormalize(t *testing.T) {
	cfg := Config{PortPath: "/dev/ttyUSB0"}
	require.NoError(t, cfg.Validate())
	assert.Equal(t, InputWindow, cfg.Input)
	assert.Equal(t, 230400, cfg.BaudRate)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestConfigBaudRate(t *testing.T) {
	cases := []struct {
		baud int
		want int
		msg  string
	}{
		{0, 230400, ""},
		{9600, 9600, ""},
		{-1, 0, "baud rate must be >= 0"},
	}
	for _, c := range cases {
		cfg := DefaultConfig()
		cfg.PortPath = "/dev/ttyUSB0"
		cfg.BaudRate = c.baud
		err := cfg.Validate()
		if c.msg != "" {
			require.Error(t, err)
			assert.Contains(t, err.Error(), c.msg)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, c.want, cfg.BaudRate)
	}
}

func TestSerialMode(t *testing.T) {
	m := serialMode(0)
	assert.Equal(t, 230400, m.BaudRate)
	assert.Equal(t, 8, m.DataBits)

	m = serialMode(9600)
	assert.Equal(t, 9600, m.BaudRate)
	assert.Equal(t, 230400, defaultMode.BaudRate)
}
