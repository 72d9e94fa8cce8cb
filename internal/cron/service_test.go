package cron

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type fakeLock struct {
	acquired   bool
	acquireErr error
	releases   int
}

func (f *fakeLock) Acquire(context.Context) (bool, error) {
	return f.acquired, f.acquireErr
}

func (f *fakeLock) Release(context.Context) error {
	f.releases++
	return nil
}

type countingJob struct {
	name string
	runs int
	err  error
}

func (j *countingJob) Name() string { return j.name }

func (j *countingJob) Run(context.Context) error {
	j.runs++
	return j.err
}

func TestRunCycle_RunsEveryJobAndReleasesLock(t *testing.T) {
	lock := &fakeLock{acquired: true}
	first := &countingJob{name: "first"}
	second := &countingJob{name: "second", err: errors.New("boom")}
	third := &countingJob{name: "third"}

	svc, err := NewService(ServiceParams{
		Logger:   newTestLogger(),
		Registry: NewRegistry(first, second, third),
		Lock:     lock,
	})
	require.NoError(t, err)

	require.NoError(t, svc.runCycle(context.Background()))
	require.Equal(t, 1, first.runs)
	require.Equal(t, 1, second.runs, "a failing job must not stop the cycle")
	require.Equal(t, 1, third.runs)
	require.Equal(t, 1, lock.releases)
}

func TestRunCycle_SkipsWhenLockHeldElsewhere(t *testing.T) {
	lock := &fakeLock{acquired: false}
	job := &countingJob{name: "only"}

	svc, err := NewService(ServiceParams{
		Logger:   newTestLogger(),
		Registry: NewRegistry(job),
		Lock:     lock,
	})
	require.NoError(t, err)

	require.NoError(t, svc.runCycle(context.Background()))
	require.Equal(t, 0, job.runs)
	require.Equal(t, 0, lock.releases)
}

func TestRun_StopsOnContextCancel(t *testing.T) {
	svc, err := NewService(ServiceParams{
		Logger:   newTestLogger(),
		Lock:     &fakeLock{acquired: true},
		Interval: time.Hour,
	})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- svc.Run(ctx) }()
	cancel()

	select {
	case runErr := <-done:
		require.ErrorIs(t, runErr, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not stop after cancel")
	}
}

func TestNewService_Defaults(t *testing.T) {
	svc, err := NewService(ServiceParams{Logger: newTestLogger(), Lock: &fakeLock{}})
	require.NoError(t, err)
	require.Equal(t, defaultInterval, svc.interval)
	require.NotNil(t, svc.registry)

	_, err = NewService(ServiceParams{Logger: newTestLogger()})
	require.Error(t, err)
}
