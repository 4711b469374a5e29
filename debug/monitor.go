// Package debug provides runtime monitoring and diagnostics.
package debug

import (
	"context"
	"log/slog"
	"os"
	"runtime"
	"time"

	"github.com/drake/gridui/internal/board"
)

// Enabled returns true if debug mode is active (GRIDUI_DEBUG=1).
func Enabled() bool {
	return os.Getenv("GRIDUI_DEBUG") == "1"
}

// Logger returns a debug-level text logger on stderr when debug mode is
// enabled, and a logger that discards everything otherwise.
func Logger() *slog.Logger {
	if !Enabled() {
		return slog.New(slog.DiscardHandler)
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// StatsFunc returns a snapshot of the board being monitored.
type StatsFunc func() []board.Stats

// Monitor periodically logs board statistics when debug mode is enabled.
type Monitor struct {
	stats    StatsFunc
	interval time.Duration
	ctx      context.Context
	logger   *slog.Logger
}

// NewMonitor creates a new monitor reading stats from fn.
// If debug mode is not enabled, returns nil.
func NewMonitor(ctx context.Context, fn StatsFunc, logger *slog.Logger) *Monitor {
	if !Enabled() {
		return nil
	}
	return newMonitor(ctx, fn, logger, 5*time.Second)
}

func newMonitor(ctx context.Context, fn StatsFunc, logger *slog.Logger, interval time.Duration) *Monitor {
	if logger == nil {
		logger = Logger()
	}
	return &Monitor{
		stats:    fn,
		interval: interval,
		ctx:      ctx,
		logger:   logger,
	}
}

// Start begins the monitoring loop in a goroutine.
func (m *Monitor) Start() {
	if m == nil {
		return
	}
	go m.run()
}

func (m *Monitor) run() {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	m.logger.Debug("monitor started")

	for {
		select {
		case <-m.ctx.Done():
			m.logger.Debug("monitor stopped")
			return
		case <-ticker.C:
			m.logStats()
		}
	}
}

func (m *Monitor) logStats() {
	m.logger.Debug("runtime", "goroutines", runtime.NumGoroutine())
	for _, s := range m.stats() {
		m.logger.Debug("panel",
			"name", s.Name,
			"bounds", s.Bounds,
			"divider", s.Divider,
			"minus", s.MinusUsed,
			"minusFree", s.MinusFree,
			"plus", s.PlusUsed,
			"plusFree", s.PlusFree,
			"fed", s.Fed,
			"dropped", s.Dropped,
		)
	}
}
