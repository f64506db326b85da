//go:build !cgo

package window

import (
	"context"

	"github.com/macplus/serkey/internal/keycode"
	"github.com/rs/zerolog"
)

type Config struct {
	Title  string
	Width  int
	Height int
	TPS    int
	Legend string
}

type Handler func(ev keycode.Event) error

func Run(_ context.Context, _ Config, _ Handler, _ *zerolog.Logger) error {
	return ErrUnavailable
}

func SetCaption(string) {}
