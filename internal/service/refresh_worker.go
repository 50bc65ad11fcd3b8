package service

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Reloader is the part of DashboardService the refresh worker drives
type Reloader interface {
	Reload(ctx context.Context) error
}

// RefreshWorker periodically reloads the customer collection
type RefreshWorker struct {
	reloader Reloader
	logger   zerolog.Logger
	interval time.Duration
	stopCh   chan struct{}
	doneCh   chan struct{}
	stopOnce sync.Once
	mu       sync.Mutex
	running  bool
	runs     int
	failures int
}

// RefreshWorkerConfig holds configuration for the refresh worker
type RefreshWorkerConfig struct {
	Interval time.Duration // How often to reload; zero disables the worker
}

// NewRefreshWorker creates a new refresh worker
func NewRefreshWorker(reloader Reloader, logger zerolog.Logger, config RefreshWorkerConfig) *RefreshWorker {
	return &RefreshWorker{
		reloader: reloader,
		logger:   logger.With().Str("component", "refresh_worker").Logger(),
		interval: config.Interval,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

// Enabled reports whether an interval was configured
func (w *RefreshWorker) Enabled() bool {
	return w.interval > 0
}

// Start begins the background refresh. It is a no-op when disabled or
// already running.
func (w *RefreshWorker) Start(ctx context.Context) {
	if !w.Enabled() {
		w.logger.Info().Msg("Refresh worker disabled")
		return
	}

	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return
	}
	w.running = true
	w.mu.Unlock()

	w.logger.Info().Dur("interval", w.interval).Msg("Starting refresh worker")

	go w.run(ctx)
}

// Stop gracefully stops the refresh worker
func (w *RefreshWorker) Stop() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return
	}
	w.mu.Unlock()

	w.logger.Info().Msg("Stopping refresh worker")
	w.stopOnce.Do(func() { close(w.stopCh) })
	<-w.doneCh
	w.logger.Info().Msg("Refresh worker stopped")
}

// run is the main loop for the refresh worker
func (w *RefreshWorker) run(ctx context.Context) {
	defer close(w.doneCh)
	defer func() {
		w.mu.Lock()
		w.running = false
		w.mu.Unlock()
	}()

	// Run immediately on startup
	w.refresh(ctx)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stopCh:
			return
		case <-ticker.C:
			w.refresh(ctx)
		}
	}
}

func (w *RefreshWorker) refresh(ctx context.Context) {
	startTime := time.Now()
	err := w.reloader.Reload(ctx)

	w.mu.Lock()
	w.runs++
	if err != nil {
		w.failures++
	}
	w.mu.Unlock()

	if err != nil {
		w.logger.Error().Err(err).Msg("Scheduled reload failed")
		return
	}
	w.logger.Debug().Dur("elapsed", time.Since(startTime)).Msg("Scheduled reload completed")
}

// IsRunning returns whether the worker is currently running
func (w *RefreshWorker) IsRunning() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.running
}

// Runs returns how many reloads were attempted and how many failed
func (w *RefreshWorker) Runs() (total, failed int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.runs, w.failures
}
