// Package worker runs periodic background jobs on a cron schedule.
package worker

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// Job is a unit of periodic work.
type Job interface {
	Run(ctx context.Context) error
}

// JobFunc adapts a function to Job.
type JobFunc func(ctx context.Context) error

// Run calls f.
func (f JobFunc) Run(ctx context.Context) error { return f(ctx) }

type namedJob struct {
	name string
	job  Job
}

// Scheduler runs registered jobs on their cron schedules until its context
// is cancelled. Overlapping runs of the same job are skipped and a panicking
// job is logged instead of crashing the process.
type Scheduler struct {
	cron    *cron.Cron
	logger  *slog.Logger
	metrics *WorkerMetrics
	jobs    []namedJob

	// jobCtx is owned by Run: set before any job executes and cancelled
	// before Run returns.
	jobCtx context.Context
}

// NewScheduler creates a scheduler using loc for schedule evaluation.
// A nil loc means UTC. metrics may be nil.
func NewScheduler(logger *slog.Logger, metrics *WorkerMetrics, loc *time.Location) *Scheduler {
	if loc == nil {
		loc = time.UTC
	}
	cl := cronLogger{logger: logger}

	return &Scheduler{
		cron: cron.New(
			cron.WithLocation(loc),
			cron.WithLogger(cl),
			cron.WithChain(cron.Recover(cl), cron.SkipIfStillRunning(cl)),
		),
		logger:  logger,
		metrics: metrics,
	}
}

// Add registers job under name with the given schedule.
func (s *Scheduler) Add(name, schedule string, job Job) error {
	_, err := s.cron.AddFunc(schedule, func() { s.execute(name, job) })
	if err != nil {
		return fmt.Errorf("add job %s: %w", name, err)
	}
	s.jobs = append(s.jobs, namedJob{name: name, job: job})
	s.logger.Info("job scheduled", slog.String("job", name), slog.String("schedule", schedule))
	return nil
}

// Run executes every job once, starts the schedule and blocks until ctx is
// cancelled. It then stops the schedule and waits for running jobs to finish.
func (s *Scheduler) Run(ctx context.Context) error {
	jobCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	s.jobCtx = jobCtx

	for _, nj := range s.jobs {
		s.execute(nj.name, nj.job)
	}

	s.cron.Start()
	s.logger.Info("scheduler started", slog.Int("jobs", len(s.jobs)))

	<-ctx.Done()

	cancel()
	<-s.cron.Stop().Done()
	s.logger.Info("scheduler stopped")
	return nil
}

// execute runs one job and records its outcome.
func (s *Scheduler) execute(name string, job Job) {
	start := time.Now()
	err := job.Run(s.jobCtx)
	duration := time.Since(start)

	if s.metrics != nil {
		s.metrics.RecordJobDuration(name, duration.Seconds())
	}

	if err != nil {
		s.logger.Error("job failed",
			slog.String("job", name),
			slog.Duration("duration", duration),
			slog.Any("error", err))
		if s.metrics != nil {
			s.metrics.RecordJobRun(name, "failure")
		}
		return
	}

	s.logger.Debug("job completed",
		slog.String("job", name),
		slog.Duration("duration", duration))
	if s.metrics != nil {
		s.metrics.RecordJobRun(name, "success")
		s.metrics.RecordLastSuccess(name)
	}
}

// cronLogger routes robfig/cron's internal logging to slog.
type cronLogger struct {
	logger *slog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Debug("cron: "+msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.logger.Error("cron: "+msg, append(keysAndValues, slog.Any("error", err))...)
}
