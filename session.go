package serkey

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/macplus/serkey/internal/encoder"
	"github.com/macplus/serkey/internal/keycode"
	"github.com/rs/xid"
	"github.com/rs/zerolog"
)

// Source yields key transitions in the order the host observed them.
// Poll blocks until at least one transition is available. ErrQuit or
// io.EOF end the session normally.
type Source interface {
	Poll(ctx context.Context) ([]keycode.Event, error)
}

// blockingSource is implemented by sources whose Poll already waits for
// input. The idle delay is skipped for them so queued frames drain at the
// rate they arrive.
type blockingSource interface {
	Blocking() bool
}

// Session owns one encoder and one transport. Every method must be called
// from the same goroutine.
type Session struct {
	id   xid.ID
	enc  *encoder.Encoder
	out  io.Writer
	idle time.Duration
	log  zerolog.Logger
	buf  [1]byte
}

func NewSession(enc *encoder.Encoder, out io.Writer, idle time.Duration) *Session {
	id := xid.New()
	return &Session{
		id:   id,
		enc:  enc,
		out:  out,
		idle: idle,
		log:  sessionLogger.With().Str("session", id.String()).Logger(),
	}
}

func (s *Session) ID() string {
	return s.id.String()
}

// Handle encodes ev and writes the resulting byte, if any. A write error is
// fatal to the session: the protocol has no acknowledgement to retry on.
func (s *Session) Handle(ev keycode.Event) error {
	b, ok := s.enc.Encode(ev)
	if !ok {
		keyEventsTotal.WithLabelValues("dropped").Inc()
		return nil
	}
	s.buf[0] = b
	if _, err := s.out.Write(s.buf[:]); err != nil {
		keyEventsTotal.WithLabelValues("failed").Inc()
		return fmt.Errorf("write serial: %w", err)
	}
	keyEventsTotal.WithLabelValues("sent").Inc()
	bytesWrittenTotal.Inc()
	s.log.Trace().Stringer("event", ev).Hex("byte", s.buf[:]).Msg("sent")
	return nil
}

// Run polls src and handles each transition until ctx is cancelled, the
// source quits, or an error occurs. A cancelled context or quit returns nil.
func (s *Session) Run(ctx context.Context, src Source) error {
	idle := s.idle
	if b, ok := src.(blockingSource); ok && b.Blocking() {
		idle = 0
	}
	s.log.Info().Dur("idle", idle).Msg("Session started")
	defer s.log.Info().Msg("Session ended")

	for {
		if ctx.Err() != nil {
			return nil
		}
		events, err := src.Poll(ctx)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, ErrQuit) || errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("poll input: %w", err)
		}
		for _, ev := range events {
			if ctx.Err() != nil {
				return nil
			}
			if err := s.Handle(ev); err != nil {
				return err
			}
		}

		if idle <= 0 {
			continue
		}
		select {
		case <-ctx.Done():
			return nil
		case <-time.After(idle):
		}
	}
}
