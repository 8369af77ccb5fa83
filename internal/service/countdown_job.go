package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-wallet-lock/internal/config"
)

type countdownJob struct {
	coordinator Coordinator

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewCountdownJob creates a countdownJob that calls coordinator.Tick on a
// ticker. The job is idle until Start is called.
func NewCountdownJob(coordinator Coordinator) CountdownJob {
	return &countdownJob{coordinator: coordinator}
}

// Start implements CountdownJob. It stops any previously running job, then
// launches a goroutine that calls Tick every interval. A non-positive
// interval falls back to [config.DefaultPollInterval]. The goroutine exits
// when ctx is cancelled or Stop is called.
func (j *countdownJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = config.DefaultPollInterval
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
				_, _ = j.coordinator.Tick(jobCtx)
			}
		}
	}()
}

// Stop implements CountdownJob. It cancels the goroutine's context and blocks
// until the goroutine has exited. Safe to call when the job is not running.
func (j *countdownJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
