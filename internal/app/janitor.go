package app

import (
	"context"
	"time"

	"github.com/Velasco-A/Sistema-de-tutorias-UGR-mediante-Telegram/internal/controller/state"
	"go.uber.org/zap"
)

const (
	sessionMaxAge   = 30 * time.Minute
	cleanupInterval = 10 * time.Minute
)

// Janitor runs background maintenance tasks.
type Janitor struct {
	stateManager *state.Manager
	logger       *zap.Logger
	stopChan     chan struct{}
}

func NewJanitor(stateManager *state.Manager, logger *zap.Logger) *Janitor {
	return &Janitor{
		stateManager: stateManager,
		logger:       logger,
		stopChan:     make(chan struct{}),
	}
}

// Start launches the background tasks.
func (j *Janitor) Start(ctx context.Context) {
	j.logger.Info("Starting background janitor")
	go j.runSessionCleanupTask(ctx)
}

// Stop halts the background tasks.
func (j *Janitor) Stop() {
	j.logger.Info("Stopping background janitor")
	close(j.stopChan)
}

// runSessionCleanupTask periodically drops abandoned dialog sessions so
// a user who walked away mid-edit is not stuck in a stale state.
func (j *Janitor) runSessionCleanupTask(ctx context.Context) {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			removed := j.stateManager.CleanupStale(sessionMaxAge)
			if removed > 0 {
				j.logger.Info("Stale dialog sessions removed",
					zap.Int("count", removed))
			}
		case <-j.stopChan:
			j.logger.Info("Session cleanup task stopped")
			return
		case <-ctx.Done():
			j.logger.Info("Session cleanup task cancelled")
			return
		}
	}
}
