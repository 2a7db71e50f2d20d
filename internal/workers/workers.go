package workers

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/store"
)

type Workers struct {
	workers []Worker
}

// NewWorkers builds the background jobs enabled by cfg. A zero retention or
// interval disables the activity purge.
func NewWorkers(storages *store.Storages, cfg config.Workers, logger *logger.Logger) *Workers {
	w := &Workers{}
	if cfg.ActivityRetention > 0 && cfg.ActivityPurgeInterval > 0 {
		w.workers = append(w.workers,
			NewActivityRetentionWorker(storages.ActivityRepository, cfg.ActivityRetention, cfg.ActivityPurgeInterval, logger))
	}
	return w
}

// Run starts every worker in its own goroutine and waits for all of them
// to return.
func (w *Workers) Run(ctx context.Context) {
	var wg sync.WaitGroup
	for _, worker := range w.workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			worker.Run(ctx)
		}()
	}
	wg.Wait()
}
