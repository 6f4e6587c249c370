package worker

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"todo-api/internal/infra/adapter/persistence/memory"
	"todo-api/internal/observability/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
}

func TestStatsJob_UpdatesGauge(t *testing.T) {
	store := memory.NewTodoStore()
	m := metrics.New(prometheus.NewRegistry())
	job := StatsJob{Store: store, Gauge: m, Logger: discardLogger()}

	require.NoError(t, job.Run(context.Background()))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.TodosTotal))

	store.Create("a", false)
	store.Create("b", true)
	require.NoError(t, job.Run(context.Background()))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.TodosTotal))

	store.Delete("1")
	require.NoError(t, job.Run(context.Background()))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.TodosTotal))
}

func TestStatsJob_CancelledContext(t *testing.T) {
	m := metrics.New(prometheus.NewRegistry())
	m.SetTodosTotal(9)
	job := StatsJob{Store: memory.NewTodoStore(), Gauge: m}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, job.Run(ctx), context.Canceled)
	assert.Equal(t, 9.0, testutil.ToFloat64(m.TodosTotal), "gauge untouched")
}

func TestScheduler_RunsJobsAndStops(t *testing.T) {
	wm := NewWorkerMetrics(prometheus.NewRegistry())
	s := NewScheduler(discardLogger(), wm, nil)

	var runs atomic.Int32
	require.NoError(t, s.Add("tick", "@every 1s", JobFunc(func(ctx context.Context) error {
		runs.Add(1)
		return nil
	})))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	assert.Eventually(t, func() bool { return runs.Load() >= 2 }, 5*time.Second, 50*time.Millisecond,
		"job should run once at start and again on schedule")

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("scheduler did not stop")
	}

	assert.GreaterOrEqual(t, testutil.ToFloat64(wm.CronJobRunsTotal.WithLabelValues("tick", "success")), 2.0)
	assert.Positive(t, testutil.ToFloat64(wm.CronJobLastSuccessTimestamp.WithLabelValues("tick")))
}

func TestScheduler_RecordsFailures(t *testing.T) {
	wm := NewWorkerMetrics(prometheus.NewRegistry())
	var logs bytes.Buffer
	s := NewScheduler(slog.New(slog.NewJSONHandler(&logs, nil)), wm, nil)

	require.NoError(t, s.Add("broken", "@hourly", JobFunc(func(ctx context.Context) error {
		return errors.New("count unavailable")
	})))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.NoError(t, s.Run(ctx))

	assert.Equal(t, 1.0, testutil.ToFloat64(wm.CronJobRunsTotal.WithLabelValues("broken", "failure")))
	assert.Contains(t, logs.String(), "count unavailable")
}

func TestScheduler_InvalidSchedule(t *testing.T) {
	s := NewScheduler(discardLogger(), nil, time.UTC)

	err := s.Add("bad", "not a schedule", JobFunc(func(context.Context) error { return nil }))

	assert.ErrorContains(t, err, "add job bad")
}

func TestScheduler_NilMetrics(t *testing.T) {
	s := NewScheduler(discardLogger(), nil, nil)
	var ran atomic.Bool
	require.NoError(t, s.Add("once", "@hourly", JobFunc(func(context.Context) error {
		ran.Store(true)
		return nil
	})))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.NoError(t, s.Run(ctx))
	assert.True(t, ran.Load())
}

func TestScheduler_JobContextEndsWithRun(t *testing.T) {
	s := NewScheduler(discardLogger(), nil, nil)

	seen := make(chan context.Context, 1)
	require.NoError(t, s.Add("capture", "@hourly", JobFunc(func(ctx context.Context) error {
		seen <- ctx
		return nil
	})))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	jobCtx := <-seen
	assert.NoError(t, jobCtx.Err(), "job context is live while the scheduler runs")

	cancel()
	require.NoError(t, <-done)
	assert.ErrorIs(t, jobCtx.Err(), context.Canceled, "job context must not outlive Run")
}

func TestScheduler_NeverRunHoldsNoResources(t *testing.T) {
	s := NewScheduler(discardLogger(), nil, nil)

	err := s.Add("bad", "every now and then", JobFunc(func(context.Context) error { return nil }))
	require.Error(t, err)

	assert.Nil(t, s.jobCtx, "no job context exists until Run")
}
