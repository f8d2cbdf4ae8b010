// Package metrics exposes prometheus collectors for the engine bridge.
package metrics

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/bnema/osrview/internal/logging"
)

const namespace = "osrview"

var (
	metricFramesPainted = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "frames_painted_total",
		Help:      "Frames delivered by the engine, by backend (bitmap or texture).",
	}, []string{"backend"})
	metricDirtyRects = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "dirty_rects_patched_total",
		Help:      "Dirty rectangles patched into an existing bitmap.",
	})
	metricEventsDropped = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "events_dropped_total",
		Help:      "Engine events dropped because the receiving side was closed.",
	}, []string{"channel"})
	metricPumps = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "message_loop_pumps_total",
		Help:      "Calls into the engine message loop.",
	})
	metricLiveBrowsers = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "browsers_live",
		Help:      "Browsers currently registered (pending and active).",
	})
	metricLaunchFailures = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "launch_failures_total",
		Help:      "Create-browser requests rejected by the engine.",
	})
	metricCloseTimeouts = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "close_timeouts_total",
		Help:      "Browsers evicted because before-close never arrived.",
	})
)

// RecordFrame counts one delivered frame.
func RecordFrame(backend string) {
	metricFramesPainted.WithLabelValues(backend).Inc()
}

// RecordDirtyRects counts patched dirty rectangles.
func RecordDirtyRects(count int) {
	if count > 0 {
		metricDirtyRects.Add(float64(count))
	}
}

// RecordDroppedEvent counts an event lost to a closed channel.
func RecordDroppedEvent(channel string) {
	metricEventsDropped.WithLabelValues(channel).Inc()
}

// RecordPump counts one message loop pump.
func RecordPump() {
	metricPumps.Inc()
}

// SetLiveBrowsers updates the live browser gauge.
func SetLiveBrowsers(count int) {
	metricLiveBrowsers.Set(float64(count))
}

func RecordLaunchFailure() {
	metricLaunchFailures.Inc()
}

func RecordCloseTimeout() {
	metricCloseTimeouts.Inc()
}

// Handler returns the HTTP handler serving the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}

// Serve exposes /metrics on addr until ctx is canceled.
func Serve(ctx context.Context, addr string) error {
	log := logging.FromContext(ctx)

	mux := http.NewServeMux()
	mux.Handle("/metrics", Handler())
	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", addr).Msg("metrics endpoint listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown metrics server: %w", err)
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("metrics server: %w", err)
	}
}
