package timer

import (
	"sync"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/require"
)

const owner int64 = 4242

type completionLog struct {
	mu    sync.Mutex
	fired []Timer
}

func (c *completionLog) record(t Timer) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fired = append(c.fired, t)
}

func (c *completionLog) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.fired)
}

func newEngine() (*Engine, *clock.Mock, *completionLog) {
	mock := clock.NewMock()
	eng := NewEngine(mock)
	cl := &completionLog{}
	eng.OnComplete(cl.record)
	return eng, mock, cl
}

func TestStartValidDurations(t *testing.T) {
	for _, minutes := range []int{1, 25, 240} {
		eng, _, _ := newEngine()
		tm, err := eng.Start(owner, minutes, KindStudy)
		require.NoError(t, err, "minutes=%d", minutes)
		require.Equal(t, minutes, tm.Minutes)
		require.Equal(t, KindStudy, tm.Kind)
		require.Equal(t, tm.StartedAt.Add(time.Duration(minutes)*time.Minute), tm.EndsAt)
	}
}

func TestStartInvalidDurations(t *testing.T) {
	eng, _, _ := newEngine()
	for _, minutes := range []int{0, -1, 241, 500} {
		_, err := eng.Start(owner, minutes, KindBreak)
		require.ErrorIs(t, err, ErrInvalidDuration, "minutes=%d", minutes)
		_, _, statusErr := eng.Status(owner)
		require.ErrorIs(t, statusErr, ErrNoTimer, "no timer should exist after rejected start")
	}
}

func TestStartSecondTimerRejected(t *testing.T) {
	eng, mock, _ := newEngine()
	first, err := eng.Start(owner, 25, KindStudy)
	require.NoError(t, err)

	mock.Add(5 * time.Minute)
	_, err = eng.Start(owner, 10, KindBreak)
	require.ErrorIs(t, err, ErrAlreadyActive)

	cur, _, err := eng.Status(owner)
	require.NoError(t, err)
	require.Equal(t, first.ID, cur.ID)
	require.Equal(t, first.EndsAt, cur.EndsAt, "original end time must be unchanged")
}

func TestStatusDecreases(t *testing.T) {
	eng, mock, _ := newEngine()
	_, err := eng.Start(owner, 10, KindStudy)
	require.NoError(t, err)

	_, r1, err := eng.Status(owner)
	require.NoError(t, err)
	mock.Add(3 * time.Minute)
	_, r2, err := eng.Status(owner)
	require.NoError(t, err)
	require.Less(t, r2, r1)
	require.Equal(t, 7*time.Minute, r2)
}

func TestStatusWithoutTimer(t *testing.T) {
	eng, _, _ := newEngine()
	_, _, err := eng.Status(owner)
	require.ErrorIs(t, err, ErrNoTimer)
}

func TestStopPreventsCompletion(t *testing.T) {
	eng, mock, cl := newEngine()
	_, err := eng.Start(owner, 25, KindStudy)
	require.NoError(t, err)

	// Stop just before the scheduled fire time.
	mock.Add(24*time.Minute + 59*time.Second)
	_, err = eng.Stop(owner)
	require.NoError(t, err)

	mock.Add(time.Hour)
	require.Zero(t, cl.count(), "completion must never fire after stop")
	_, _, statusErr := eng.Status(owner)
	require.ErrorIs(t, statusErr, ErrNoTimer)
}

func TestStopWithoutTimer(t *testing.T) {
	eng, _, _ := newEngine()
	_, err := eng.Stop(owner)
	require.ErrorIs(t, err, ErrNoTimer)
}

func TestCompletionFiresOnce(t *testing.T) {
	eng, mock, cl := newEngine()
	tm, err := eng.Start(owner, 25, KindStudy)
	require.NoError(t, err)

	mock.Add(25 * time.Minute)
	require.Eventually(t, func() bool { return cl.count() == 1 }, time.Second, time.Millisecond)
	cl.mu.Lock()
	fired := cl.fired[0]
	cl.mu.Unlock()
	require.Equal(t, tm.ID, fired.ID)

	// Record is gone; a new timer may start.
	_, _, statusErr := eng.Status(owner)
	require.ErrorIs(t, statusErr, ErrNoTimer)
	_, err = eng.Start(owner, 5, KindBreak)
	require.NoError(t, err)

	mock.Add(time.Hour)
	require.Eventually(t, func() bool { return cl.count() == 2 }, time.Second, time.Millisecond)
}

func TestStaleCompletionIgnoredAfterRestart(t *testing.T) {
	eng, mock, cl := newEngine()
	_, err := eng.Start(owner, 10, KindStudy)
	require.NoError(t, err)
	_, err = eng.Stop(owner)
	require.NoError(t, err)

	// A fresh timer for the same owner; the old identity must not complete it.
	fresh, err := eng.Start(owner, 30, KindStudy)
	require.NoError(t, err)
	mock.Add(10 * time.Minute)
	require.Zero(t, cl.count())

	mock.Add(20 * time.Minute)
	require.Eventually(t, func() bool { return cl.count() == 1 }, time.Second, time.Millisecond)
	cl.mu.Lock()
	defer cl.mu.Unlock()
	require.Equal(t, fresh.ID, cl.fired[0].ID)
}
