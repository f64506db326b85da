package serkey

import (
	"fmt"
	"io"
	"os"

	"github.com/macplus/serkey/internal/kbdev"
	"github.com/macplus/serkey/internal/replay"
)

// inputSource is a Source that holds an OS resource.
type inputSource interface {
	Source
	io.Closer
}

type replaySource struct {
	*replay.Reader
	f *os.File
}

func (r *replaySource) Close() error {
	if r.f == os.Stdin {
		return nil
	}
	return r.f.Close()
}

// openInputSource opens the polled input backends. The window backend
// drives the session itself and is not a Source.
func openInputSource(cfg Config) (inputSource, error) {
	switch cfg.Input {
	case InputEvdev:
		inputLogger.Info().Str("device", cfg.Device).Bool("grab", cfg.Grab).Msg("Initializing evdev input")
		dev, err := kbdev.Open(cfg.Device, cfg.Grab, &inputLogger)
		if err != nil {
			return nil, err
		}
		return dev, nil
	case InputReplay:
		inputLogger.Info().Str("script", cfg.Script).Msg("Initializing replay input")
		if cfg.Script == "-" {
			return &replaySource{Reader: replay.NewReader(os.Stdin), f: os.Stdin}, nil
		}
		f, err := os.Open(cfg.Script)
		if err != nil {
			return nil, fmt.Errorf("open script: %w", err)
		}
		return &replaySource{Reader: replay.NewReader(f), f: f}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownInput, cfg.Input)
}
