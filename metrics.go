package serkey

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	keyEventsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "serkey",
			Name:      "key_events_total",
			Help:      "Key transitions received from the input source, by outcome",
		},
		[]string{"result"},
	)
	bytesWrittenTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "serkey",
			Name:      "serial_bytes_written_total",
			Help:      "Keycode bytes written to the serial port",
		},
	)
	capsLockLocked = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "serkey",
			Name:      "caps_lock_locked",
			Help:      "1 while the Mac's Caps Lock is latched down",
		},
	)

	metricsRegistered sync.Once
)

func registerMetrics() {
	metricsRegistered.Do(func() {
		prometheus.MustRegister(keyEventsTotal, bytesWrittenTotal, capsLockLocked)
	})
}

// serveMetrics exposes /metrics on addr until ctx is done.
func serveMetrics(ctx context.Context, addr string) {
	registerMetrics()

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	metricsLogger.Info().Str("addr", addr).Msg("Serving metrics")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		metricsLogger.Warn().Err(err).Msg("Metrics server stopped")
	}
}
