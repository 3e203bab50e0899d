package scheduler

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchedule_Fires(t *testing.T) {
	s := New()
	defer s.Stop()

	var ran atomic.Bool
	h := s.Schedule(10*time.Millisecond, func() { ran.Store(true) })

	select {
	case <-h.Done():
	case <-time.After(time.Second):
		t.Fatal("callback did not run")
	}
	assert.True(t, ran.Load())
	assert.True(t, h.Fired())
	assert.False(t, h.Cancel(), "cancel after firing prevents nothing")
	assert.Eventually(t, func() bool { return s.Pending() == 0 }, time.Second, 5*time.Millisecond)
}

func TestHandle_CancelPreventsRun(t *testing.T) {
	s := New()
	defer s.Stop()

	var ran atomic.Bool
	h := s.Schedule(50*time.Millisecond, func() { ran.Store(true) })
	assert.True(t, h.Cancel())
	assert.False(t, h.Cancel())

	<-h.Done()
	time.Sleep(80 * time.Millisecond)
	assert.False(t, ran.Load())
	assert.False(t, h.Fired())
}

func TestStop_CancelsOutstanding(t *testing.T) {
	s := New()

	var count atomic.Int32
	for i := 0; i < 5; i++ {
		s.Schedule(time.Hour, func() { count.Add(1) })
	}
	require.Equal(t, 5, s.Pending())

	s.Stop()
	assert.Equal(t, 0, s.Pending())
	assert.Equal(t, int32(0), count.Load())

	h := s.Schedule(time.Millisecond, func() { count.Add(1) })
	<-h.Done()
	assert.False(t, h.Fired())
}

func TestSleep(t *testing.T) {
	s := New()
	defer s.Stop()

	require.NoError(t, s.Sleep(context.Background(), 5*time.Millisecond))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	err := s.Sleep(ctx, time.Hour)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
