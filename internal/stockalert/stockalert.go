package stockalert

import (
	"context"
	"fmt"
	"time"

	"github.com/jekabolt/retail-stats/internal/dependency"
)

// Config holds configuration for the stock alert worker.
type Config struct {
	WorkerInterval time.Duration `mapstructure:"worker_interval"`
	Threshold      int           `mapstructure:"threshold"`
	Limit          int           `mapstructure:"limit"`
}

// DefaultConfig returns default configuration values.
func DefaultConfig() Config {
	return Config{
		WorkerInterval: time.Hour,
		Threshold:      5,
		Limit:          10,
	}
}

// Worker periodically evaluates the low-stock report and emails an alert
// when any product is at or under the threshold.
type Worker struct {
	svc    dependency.Statistics
	mailer dependency.Mailer
	c      *Config
	ctx    context.Context
	stop   context.CancelFunc
}

// New creates a new stock alert worker.
func New(c *Config, svc dependency.Statistics, mailer dependency.Mailer) *Worker {
	if c == nil {
		dc := DefaultConfig()
		c = &dc
	}
	if c.WorkerInterval == 0 {
		c.WorkerInterval = time.Hour
	}
	return &Worker{
		svc:    svc,
		mailer: mailer,
		c:      c,
	}
}

// Start starts the worker.
func (w *Worker) Start(ctx context.Context) error {
	if w.ctx != nil && w.stop != nil {
		return fmt.Errorf("stock alert worker already started")
	}
	w.ctx, w.stop = context.WithCancel(ctx)
	go w.worker(w.ctx)
	return nil
}

// Stop stops the worker gracefully.
func (w *Worker) Stop() error {
	if w.stop == nil {
		return fmt.Errorf("stock alert worker already stopped or not started")
	}
	w.stop()
	w.stop = nil
	return nil
}
