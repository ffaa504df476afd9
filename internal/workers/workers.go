package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/field-sync/internal/logger"
	"github.com/MKhiriev/field-sync/internal/service"
)

type Workers struct {
	workers []Worker
}

func NewWorkers(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

// Run starts every worker in its own goroutine and waits for all of them to
// return after ctx is cancelled.
func (w *Workers) Run(ctx context.Context) {
	var wg sync.WaitGroup
	for _, worker := range w.workers {
		wg.Add(1)
		go func(worker Worker) {
			defer wg.Done()
			worker.Run(ctx)
		}(worker)
	}
	wg.Wait()
}

// syncJobWorker adapts service.ClientSyncJob to Worker.
type syncJobWorker struct {
	job      service.ClientSyncJob
	interval time.Duration
}

func NewSyncJobWorker(job service.ClientSyncJob, interval time.Duration) Worker {
	return &syncJobWorker{job: job, interval: interval}
}

func (s *syncJobWorker) Run(ctx context.Context) {
	logger.FromContext(ctx).Info().Dur("interval", s.interval).Msg("sync job started")

	s.job.Start(ctx, s.interval)
	// the first pass drains what was queued while the client was not running
	s.job.Trigger()

	<-ctx.Done()
	s.job.Stop()
}
