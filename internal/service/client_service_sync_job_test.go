package service

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/field-sync/models"
)

// spyRetryService counts worker passes.
type spyRetryService struct {
	requeues atomic.Int64
	passes   atomic.Int64
	err      error
}

func (s *spyRetryService) SyncPendingForms(context.Context, models.FormType) (models.SyncReport, error) {
	return models.SyncReport{}, nil
}

func (s *spyRetryService) SyncAll(context.Context) ([]models.SyncReport, error) {
	s.passes.Add(1)
	return nil, s.err
}

func (s *spyRetryService) Retry(context.Context, string) (models.SaveResult, error) {
	return models.SaveResult{}, nil
}

func (s *spyRetryService) RequeuePending(context.Context) (int, error) {
	s.requeues.Add(1)
	return 0, s.err
}

func (s *spyRetryService) QueueDepth(context.Context) (map[string]int, error) {
	return map[string]int{}, nil
}

func (s *spyRetryService) QueueEntries(context.Context) ([]models.SyncQueueEntry, error) {
	return nil, nil
}

func TestClientSyncJob_Start_RunsOnTicker(t *testing.T) {
	spy := &spyRetryService{}
	job := NewClientSyncJob(spy)

	job.Start(context.Background(), 10*time.Millisecond)
	assert.Eventually(t, func() bool { return spy.passes.Load() >= 3 }, time.Second, 5*time.Millisecond)
	job.Stop()

	assert.Equal(t, spy.passes.Load(), spy.requeues.Load(), "every pass repairs the queue first")
}

func TestClientSyncJob_Trigger(t *testing.T) {
	spy := &spyRetryService{}
	job := NewClientSyncJob(spy)

	job.Start(context.Background(), time.Hour)
	defer job.Stop()

	job.Trigger()
	assert.Eventually(t, func() bool { return spy.passes.Load() == 1 }, time.Second, 5*time.Millisecond)
}

func TestClientSyncJob_Trigger_DoesNotBlockWhenIdle(t *testing.T) {
	job := NewClientSyncJob(&spyRetryService{})

	done := make(chan struct{})
	go func() {
		job.Trigger()
		job.Trigger()
		job.Trigger()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Trigger blocked")
	}
}

func TestClientSyncJob_Stop_StopsGoroutine(t *testing.T) {
	spy := &spyRetryService{}
	job := NewClientSyncJob(spy)

	job.Start(context.Background(), 5*time.Millisecond)
	require.Eventually(t, func() bool { return spy.passes.Load() >= 1 }, time.Second, time.Millisecond)
	job.Stop()

	after := spy.passes.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, after, spy.passes.Load())
}

func TestClientSyncJob_Stop_Idempotent(t *testing.T) {
	job := NewClientSyncJob(&spyRetryService{})
	job.Stop()
	job.Start(context.Background(), time.Hour)
	job.Stop()
	job.Stop()
}

func TestClientSyncJob_ContextCancelStops(t *testing.T) {
	spy := &spyRetryService{}
	job := NewClientSyncJob(spy)
	ctx, cancel := context.WithCancel(context.Background())

	job.Start(ctx, 5*time.Millisecond)
	require.Eventually(t, func() bool { return spy.passes.Load() >= 1 }, time.Second, time.Millisecond)
	cancel()
	job.Stop()

	after := spy.passes.Load()
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, after, spy.passes.Load())
}

func TestClientSyncJob_ErrorsDoNotStopJob(t *testing.T) {
	spy := &spyRetryService{err: errors.New("queue locked")}
	job := NewClientSyncJob(spy)

	job.Start(context.Background(), 5*time.Millisecond)
	assert.Eventually(t, func() bool { return spy.passes.Load() >= 2 }, time.Second, time.Millisecond)
	job.Stop()
}

func TestClientSyncJob_StartRestarts(t *testing.T) {
	spy := &spyRetryService{}
	job := NewClientSyncJob(spy)

	job.Start(context.Background(), time.Hour)
	job.Start(context.Background(), 5*time.Millisecond)
	defer job.Stop()

	assert.Eventually(t, func() bool { return spy.passes.Load() >= 1 }, time.Second, time.Millisecond)
}
