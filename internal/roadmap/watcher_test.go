package roadmap

import (
	"context"
	"testing"
	"time"

	"github.com/abhinav-rk/studyloop/internal/actions"
	"github.com/abhinav-rk/studyloop/internal/activity"
)

type memEvents struct {
	events []activity.Event
}

func (m *memEvents) Events(_ context.Context) ([]activity.Event, error) {
	return append([]activity.Event(nil), m.events...), nil
}

func (m *memEvents) Append(_ context.Context, e activity.Event) error {
	m.events = append(m.events, e)
	return nil
}

type memStore struct {
	rm *Roadmap
}

func (m *memStore) Roadmap(_ context.Context) (*Roadmap, error)     { return m.rm, nil }
func (m *memStore) SaveRoadmap(_ context.Context, r *Roadmap) error { m.rm = r; return nil }

func pendingTask(assignedAt int64) Task {
	return Task{
		ID:         "sd-short-sprint",
		Title:      "Focused sprint",
		Status:     StatusPending,
		Criteria:   actions.SuccessCriteria{MinDuration: 15, MaxDuration: 30},
		AssignedAt: assignedAt,
	}
}

func TestNewWatcherIntervalFallback(t *testing.T) {
	w := NewWatcher(&memEvents{}, &memStore{}, 0)
	if w.interval != DefaultPollInterval {
		t.Errorf("interval = %v, want %v", w.interval, DefaultPollInterval)
	}
	w = NewWatcher(&memEvents{}, &memStore{}, 5*time.Second)
	if w.interval != 5*time.Second {
		t.Errorf("interval = %v, want 5s", w.interval)
	}
}

func TestTickNoPendingTask(t *testing.T) {
	store := &memStore{rm: &Roadmap{Tasks: []Task{
		{ID: "a", Status: StatusCompleted},
	}}}
	w := NewWatcher(&memEvents{}, store, 0)

	task, err := w.Tick(context.Background())
	if err != nil {
		t.Fatalf("tick: %v", err)
	}
	if task != nil {
		t.Errorf("tick on a complete roadmap returned %v", task)
	}
}

func TestTickCriteriaUnmet(t *testing.T) {
	assigned := criteriaBase
	store := &memStore{rm: &Roadmap{Tasks: []Task{pendingTask(assigned)}}}

	// A qualifying session, but entirely before assignment. Prior
	// activity must never complete a freshly assigned task.
	events := &memEvents{events: session("old", -120, 20)}
	w := NewWatcher(events, store, 0)

	task, err := w.Tick(context.Background())
	if err != nil {
		t.Fatalf("tick: %v", err)
	}
	if task != nil {
		t.Errorf("tick completed a task from pre-assignment events: %v", task)
	}
	if store.rm.Tasks[0].Status != StatusPending {
		t.Error("task should remain pending")
	}
	if len(events.events) != 2 {
		t.Errorf("no completion event should be appended, have %d events", len(events.events))
	}
}

func TestTickCompletesTask(t *testing.T) {
	assigned := criteriaBase
	store := &memStore{rm: &Roadmap{Tasks: []Task{pendingTask(assigned)}}}
	events := &memEvents{events: session("s1", 10, 20)}

	var notified []Task
	w := NewWatcher(events, store, 0)
	w.OnComplete = func(task Task) { notified = append(notified, task) }

	task, err := w.Tick(context.Background())
	if err != nil {
		t.Fatalf("tick: %v", err)
	}
	if task == nil {
		t.Fatal("tick should have completed the task")
	}
	if task.Status != StatusCompleted {
		t.Errorf("status = %s, want completed", task.Status)
	}
	if task.CompletedAt == nil {
		t.Error("CompletedAt not set")
	}
	if task.Signal == "" {
		t.Error("signal not set")
	}
	// No before-metrics on the snapshot, so the comparison is neutral.
	if task.Signal != SignalNeutral {
		t.Errorf("signal = %s, want neutral without a before snapshot", task.Signal)
	}
	if task.After == nil {
		t.Error("after-metrics not captured")
	}

	// Persisted state matches.
	if store.rm.Tasks[0].Status != StatusCompleted {
		t.Error("completion not persisted")
	}

	// A completion event lands back in the log.
	last := events.events[len(events.events)-1]
	if last.Type != activity.TypeTaskCompleted {
		t.Errorf("last event type = %s, want %s", last.Type, activity.TypeTaskCompleted)
	}
	if last.Source != "watcher" {
		t.Errorf("completion source = %q, want watcher", last.Source)
	}
	if last.Metadata["task_id"] != task.ID {
		t.Errorf("completion metadata task_id = %v, want %s", last.Metadata["task_id"], task.ID)
	}
	if last.Metadata["signal"] != string(task.Signal) {
		t.Errorf("completion metadata signal = %v", last.Metadata["signal"])
	}

	if len(notified) != 1 || notified[0].ID != task.ID {
		t.Errorf("OnComplete notified %v, want one call for %s", notified, task.ID)
	}
}

// racyStore reproduces a simulate run finishing between the watcher's
// first read and its completion write: the second read sees the task
// already completed.
type racyStore struct {
	reads int
	saves int
}

func (s *racyStore) Roadmap(_ context.Context) (*Roadmap, error) {
	s.reads++
	task := pendingTask(criteriaBase)
	if s.reads > 1 {
		task.Status = StatusCompleted
	}
	return &Roadmap{Tasks: []Task{task}}, nil
}

func (s *racyStore) SaveRoadmap(_ context.Context, _ *Roadmap) error {
	s.saves++
	return nil
}

func TestTickDoubleCompleteGuard(t *testing.T) {
	events := &memEvents{events: session("s1", 10, 20)}
	store := &racyStore{}
	w := NewWatcher(events, store, 0)
	w.OnComplete = func(Task) { t.Error("OnComplete fired for an already-completed task") }

	task, err := w.Tick(context.Background())
	if err != nil {
		t.Fatalf("tick: %v", err)
	}
	if task != nil {
		t.Errorf("tick returned %v, want nil when the task was completed elsewhere", task)
	}
	if store.saves != 0 {
		t.Errorf("roadmap written %d times, want 0", store.saves)
	}
	if len(events.events) != 2 {
		t.Error("no completion event should be appended")
	}
}

func TestRunStops(t *testing.T) {
	store := &memStore{rm: &Roadmap{}}
	w := NewWatcher(&memEvents{}, store, time.Millisecond)

	done := make(chan error, 1)
	go func() { done <- w.Run(context.Background()) }()

	time.Sleep(10 * time.Millisecond)
	w.Stop()
	w.Stop() // idempotent

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("run returned %v after Stop, want nil", err)
		}
	case <-time.After(time.Second):
		t.Fatal("run did not return after Stop")
	}
}

func TestRunHonorsContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	w := NewWatcher(&memEvents{}, &memStore{rm: &Roadmap{}}, time.Millisecond)

	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()
	cancel()

	select {
	case err := <-done:
		if err != context.Canceled {
			t.Errorf("run returned %v, want context.Canceled", err)
		}
	case <-time.After(time.Second):
		t.Fatal("run did not return after cancel")
	}
}
