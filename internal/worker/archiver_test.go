package worker

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeEventService struct {
	calls atomic.Int64
}

func (s *fakeEventService) ArchiveExpired(context.Context) (int, error) {
	s.calls.Add(1)
	return 0, nil
}

func TestArchiver_Run(t *testing.T) {
	svc := &fakeEventService{}
	archiver := NewArchiver(svc, 10*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		defer close(done)
		archiver.Run(ctx)
	}()

	// one run at start plus at least one tick
	assert.Eventually(t, func() bool {
		return svc.calls.Load() >= 2
	}, time.Second, 5*time.Millisecond)

	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("archiver did not stop after context cancellation")
	}
}
