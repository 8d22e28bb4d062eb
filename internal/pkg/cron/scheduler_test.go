package cron

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSchedulerRunsJobOnStart(t *testing.T) {
	s := NewScheduler()

	var runs atomic.Int32
	s.AddJob("count_runs", time.Hour, func(ctx context.Context) error {
		runs.Add(1)
		return nil
	})

	s.Start()
	defer s.Stop()

	require.Eventually(t, func() bool { return runs.Load() >= 1 }, time.Second, 10*time.Millisecond)
}

func TestSchedulerStopCancelsJobContext(t *testing.T) {
	s := NewScheduler()

	done := make(chan struct{})
	s.AddJob("watch_cancel", time.Hour, func(ctx context.Context) error {
		go func() {
			<-ctx.Done()
			close(done)
		}()
		return nil
	})

	s.Start()
	s.Stop()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("job context was not canceled on stop")
	}
}
