package roadmap

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/abhinav-rk/studyloop/internal/activity"
	"github.com/abhinav-rk/studyloop/internal/metrics"
)

// DefaultPollInterval is the watcher's tick period.
const DefaultPollInterval = time.Second

// EventSource is the watcher's view of the append-only event log.
// Reads carry no ordering guarantee; consumers sort by timestamp.
type EventSource interface {
	Events(ctx context.Context) ([]activity.Event, error)
	Append(ctx context.Context, e activity.Event) error
}

// Store is the watcher's view of the persisted roadmap document.
type Store interface {
	Roadmap(ctx context.Context) (*Roadmap, error)
	SaveRoadmap(ctx context.Context, r *Roadmap) error
}

// Watcher polls the event log against the current task's success
// criteria and completes tasks as the learner earns them. Each tick is a
// short, independent unit of work; there is no state between ticks
// beyond what the store holds.
type Watcher struct {
	events   EventSource
	store    Store
	interval time.Duration

	stopOnce sync.Once
	stop     chan struct{}

	// OnComplete, when set, is called after a task completes. The watch
	// dashboard uses it; nil is fine.
	OnComplete func(Task)
}

// NewWatcher creates a watcher. A non-positive interval falls back to
// DefaultPollInterval.
func NewWatcher(events EventSource, store Store, interval time.Duration) *Watcher {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	return &Watcher{
		events:   events,
		store:    store,
		interval: interval,
		stop:     make(chan struct{}),
	}
}

// Run polls until the context is cancelled or Stop is called. Tick
// errors are returned immediately; a healthy watcher only stops on
// teardown.
func (w *Watcher) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-w.stop:
			return nil
		case <-ticker.C:
			if _, err := w.Tick(ctx); err != nil {
				return fmt.Errorf("watcher tick: %w", err)
			}
		}
	}
}

// Stop terminates Run. Safe to call more than once.
func (w *Watcher) Stop() {
	w.stopOnce.Do(func() { close(w.stop) })
}

// Tick performs one poll: find the current task, evaluate its criteria
// against events after assignment, and complete it if satisfied. Returns
// the completed task, or nil when nothing changed.
func (w *Watcher) Tick(ctx context.Context) (*Task, error) {
	rm, err := w.store.Roadmap(ctx)
	if err != nil {
		return nil, fmt.Errorf("read roadmap: %w", err)
	}
	cur := rm.Current()
	if cur == nil {
		return nil, nil
	}

	events, err := w.events.Events(ctx)
	if err != nil {
		return nil, fmt.Errorf("read events: %w", err)
	}
	activity.SortByTimestamp(events)

	if !Satisfied(cur.Criteria, activity.After(events, cur.AssignedAt)) {
		return nil, nil
	}

	return w.complete(ctx, cur.ID, events)
}

// complete marks a task completed with its growth signal, persists the
// roadmap, and emits a completion event back into the log. The roadmap
// is re-read and the status re-checked immediately before the write so a
// concurrent simulate cannot double-complete the same task.
func (w *Watcher) complete(ctx context.Context, taskID string, events []activity.Event) (*Task, error) {
	rm, err := w.store.Roadmap(ctx)
	if err != nil {
		return nil, fmt.Errorf("re-read roadmap: %w", err)
	}
	task := rm.Find(taskID)
	if task == nil || task.Status == StatusCompleted {
		return nil, nil
	}

	now := time.Now()
	after := metrics.Compute(events, rm.Stats(now))

	task.Status = StatusCompleted
	task.CompletedAt = &now
	task.Signal = GrowthSignal(task.Before.Metrics, after)
	task.After = after

	if err := w.store.SaveRoadmap(ctx, rm); err != nil {
		return nil, fmt.Errorf("save roadmap: %w", err)
	}

	completion := activity.Event{
		EventID:   uuid.NewString(),
		Type:      activity.TypeTaskCompleted,
		Mode:      activity.ModeSolo,
		Source:    "watcher",
		Timestamp: now.UnixMilli(),
		Metadata: map[string]any{
			"task_id": task.ID,
			"signal":  string(task.Signal),
		},
	}
	if err := w.events.Append(ctx, completion); err != nil {
		return nil, fmt.Errorf("append completion event: %w", err)
	}

	if w.OnComplete != nil {
		w.OnComplete(*task)
	}
	return task, nil
}
