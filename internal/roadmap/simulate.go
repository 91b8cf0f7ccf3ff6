package roadmap

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/abhinav-rk/studyloop/internal/activity"
)

// Simulate synthesizes a plausible event sequence satisfying the current
// task's criteria, appends it to the log, and runs one watcher tick to
// apply the normal completion logic. It exists to make the feedback loop
// demonstrable without waiting for real usage; it is a debug affordance,
// not a production path.
func Simulate(ctx context.Context, w *Watcher) (*Task, error) {
	rm, err := w.store.Roadmap(ctx)
	if err != nil {
		return nil, fmt.Errorf("read roadmap: %w", err)
	}
	cur := rm.Current()
	if cur == nil {
		return nil, fmt.Errorf("no pending task to simulate")
	}
	if cur.Criteria.Empty() {
		return nil, fmt.Errorf("task %q has no success criteria; it cannot auto-complete", cur.ID)
	}

	for _, e := range synthesize(cur) {
		if err := w.events.Append(ctx, e); err != nil {
			return nil, fmt.Errorf("append simulated event: %w", err)
		}
	}

	task, err := w.Tick(ctx)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, fmt.Errorf("simulated events did not satisfy criteria for task %q", cur.ID)
	}
	return task, nil
}

// synthesize builds one synthetic session that satisfies every present
// criterion of the task.
func synthesize(task *Task) []activity.Event {
	c := task.Criteria

	durationMin := 10.0
	if c.MinDuration > 0 {
		durationMin = c.MinDuration + 2
	}
	if c.MaxDuration > 0 && durationMin > c.MaxDuration {
		durationMin = c.MaxDuration - 1
	}
	if durationMin < activity.MinSessionMinutes+1 {
		durationMin = activity.MinSessionMinutes + 1
	}

	mode := activity.ModeSolo
	if c.RequireMode != "" {
		mode = c.RequireMode
	}

	sessionID := "sim-" + uuid.NewString()
	start := time.Now().UnixMilli()
	end := start + int64(durationMin*60000)

	emit := func(t activity.Type, ts int64) activity.Event {
		return activity.Event{
			EventID:   uuid.NewString(),
			SessionID: sessionID,
			Type:      t,
			Mode:      mode,
			Source:    "simulate",
			Timestamp: ts,
			Metadata:  map[string]any{"task_id": task.ID},
		}
	}

	events := []activity.Event{emit(activity.TypeSessionJoined, start)}

	// Required events spaced through the middle of the session.
	mid := start + (end-start)/2
	for i, t := range c.RequiredEvents {
		events = append(events, emit(t, mid+int64(i)*1000))
	}

	// Top up interactions with chat messages.
	interactions := 0
	for _, e := range events {
		if e.IsInteraction() {
			interactions++
		}
	}
	for i := interactions; i < c.MinInteractions; i++ {
		events = append(events, emit(activity.TypeChatMessage, mid+int64(len(events))*1000))
	}

	events = append(events, emit(activity.TypeSessionLeft, end))
	return events
}
