package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/field-sync/internal/logger"
)

const defaultSyncInterval = 5 * time.Minute

type clientSyncJob struct {
	retryService RetryService

	mu      sync.Mutex
	cancel  context.CancelFunc
	wg      sync.WaitGroup
	trigger chan struct{}
}

// NewClientSyncJob creates a clientSyncJob that drains the queue on a ticker
// and on Trigger. The job is idle until Start is called.
func NewClientSyncJob(retryService RetryService) ClientSyncJob {
	return &clientSyncJob{
		retryService: retryService,
		trigger:      make(chan struct{}, 1),
	}
}

// Start implements ClientSyncJob. Each pass first repairs missing queue entries
// and then runs SyncAll. If interval is zero or negative it defaults to 5
// minutes. The goroutine exits when ctx is cancelled or Stop is called.
func (j *clientSyncJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = defaultSyncInterval
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.runPass(jobCtx)
			case <-j.trigger:
				j.runPass(jobCtx)
			}
		}
	}()
}

func (j *clientSyncJob) runPass(ctx context.Context) {
	log := logger.FromContext(ctx)

	if _, err := j.retryService.RequeuePending(ctx); err != nil {
		log.Err(err).Str("func", "clientSyncJob.runPass").Msg("requeue of pending forms failed")
	}
	if _, err := j.retryService.SyncAll(ctx); err != nil {
		log.Err(err).Str("func", "clientSyncJob.runPass").Msg("sync pass finished with errors")
	}
}

// Trigger implements ClientSyncJob.
func (j *clientSyncJob) Trigger() {
	select {
	case j.trigger <- struct{}{}:
	default:
	}
}

// Stop implements ClientSyncJob. Safe to call when the job is not running.
func (j *clientSyncJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
