package worker

import (
	"context"
	"log/slog"
)

// StatsJobName identifies the stats job in logs and metrics.
const StatsJobName = "todo_stats"

// Counter reports how many items are stored.
type Counter interface {
	Count() int
}

// GaugeSetter receives the latest count.
type GaugeSetter interface {
	SetTodosTotal(count int)
}

// StatsJob publishes the number of stored todos to a gauge.
type StatsJob struct {
	Store  Counter
	Gauge  GaugeSetter
	Logger *slog.Logger
}

// Run reads the current count and updates the gauge.
func (j StatsJob) Run(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	count := j.Store.Count()
	j.Gauge.SetTodosTotal(count)
	if j.Logger != nil {
		j.Logger.Debug("todo stats updated", slog.Int("todos_total", count))
	}
	return nil
}
