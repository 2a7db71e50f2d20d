package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/store"
)

// ActivityRetentionWorker deletes activity log entries older than the
// retention period. It purges once on start and then every interval.
type ActivityRetentionWorker struct {
	repo      store.ActivityRepository
	retention time.Duration
	interval  time.Duration
	now       func() time.Time

	logger *logger.Logger
}

func NewActivityRetentionWorker(repo store.ActivityRepository, retention, interval time.Duration, logger *logger.Logger) *ActivityRetentionWorker {
	return &ActivityRetentionWorker{
		repo:      repo,
		retention: retention,
		interval:  interval,
		now:       time.Now,
		logger:    logger,
	}
}

func (w *ActivityRetentionWorker) Run(ctx context.Context) {
	w.logger.Info().Dur("retention", w.retention).Dur("interval", w.interval).Msg("activity retention worker started")

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.purge(ctx)
	for {
		select {
		case <-ctx.Done():
			w.logger.Info().Msg("activity retention worker stopped")
			return
		case <-ticker.C:
			w.purge(ctx)
		}
	}
}

func (w *ActivityRetentionWorker) purge(ctx context.Context) {
	cutoff := w.now().Add(-w.retention)

	deleted, err := w.repo.PurgeActivityBefore(ctx, cutoff)
	if err != nil {
		w.logger.Err(err).Str("func", "*ActivityRetentionWorker.purge").Time("cutoff", cutoff).Msg("error purging activity logs")
		return
	}

	w.logger.Debug().Int64("deleted", deleted).Time("cutoff", cutoff).Msg("activity logs purged")
}
