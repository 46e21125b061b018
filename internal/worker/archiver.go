package worker

import (
	"context"
	"time"

	"github.com/evanlesnar/billetterie/internal/logger"
	"go.uber.org/zap"
)

type EventService interface {
	// ArchiveExpired archives every event dated in the past
	ArchiveExpired(ctx context.Context) (int, error)
}

// Archiver periodically retires events whose date has passed
type Archiver struct {
	svc      EventService
	interval time.Duration
}

// NewArchiver creates new archiver
func NewArchiver(svc EventService, interval time.Duration) *Archiver {
	return &Archiver{
		svc:      svc,
		interval: interval,
	}
}

// Run archives expired events once at start and then on every tick until
// ctx is cancelled. The job body is idempotent, overlapping runs are safe.
func (a *Archiver) Run(ctx context.Context) {
	a.archive(ctx)

	ticker := time.NewTicker(a.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Log.Debug("archiver is done")
			return
		case <-ticker.C:
			a.archive(ctx)
		}
	}
}

func (a *Archiver) archive(ctx context.Context) {
	archived, err := a.svc.ArchiveExpired(ctx)
	if err != nil {
		logger.Log.Error("archive expired events", zap.Error(err))
		return
	}
	if archived > 0 {
		logger.Log.Info("event archiving finished", zap.Int("archived", archived))
	}
}
