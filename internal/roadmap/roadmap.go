// Package roadmap owns the task lifecycle: generation from decisions,
// success-criteria evaluation against the live event log, and the polling
// watcher that closes the feedback loop.
package roadmap

import (
	"time"

	"github.com/abhinav-rk/studyloop/internal/actions"
	"github.com/abhinav-rk/studyloop/internal/learnstate"
	"github.com/abhinav-rk/studyloop/internal/metrics"
)

// Status is a task's lifecycle state. The only transition is
// pending -> completed; unmet criteria leave a task pending forever.
type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
)

// Signal classifies the behavioral change attributed to a completed task.
type Signal string

const (
	SignalSuccess Signal = "success"
	SignalFail    Signal = "fail"
	SignalNeutral Signal = "neutral"
)

// abandonAfter is how long a pending task may sit before it counts as
// abandoned in the execution metrics.
const abandonAfter = 7 * 24 * time.Hour

// StateSnapshot captures learning state and metrics at assignment time,
// the "before" half of the growth comparison.
type StateSnapshot struct {
	State   learnstate.State `json:"state"`
	Metrics *metrics.Bundle  `json:"metrics"`
}

// Task is one persisted roadmap entry.
type Task struct {
	ID          string                  `json:"id"`
	Kind        actions.Kind            `json:"type"`
	Title       string                  `json:"title"`
	Description string                  `json:"description,omitempty"`
	Duration    int                     `json:"duration,omitempty"` // minutes
	Status      Status                  `json:"status"`
	Reason      string                  `json:"reason"`
	Intent      string                  `json:"intent"`
	Before      StateSnapshot           `json:"learning_state_before"`
	Criteria    actions.SuccessCriteria `json:"success_criteria"`
	AssignedAt  int64                   `json:"assigned_at"` // Unix ms
	CompletedAt *time.Time              `json:"completed_at,omitempty"`
	Signal      Signal                  `json:"signal,omitempty"`
	After       *metrics.Bundle         `json:"metrics_after,omitempty"`
}

// Roadmap is an ordered sequence of tasks. Array order is the schedule:
// the current task is the first one not yet completed.
type Roadmap struct {
	GeneratedAt time.Time `json:"generated_at"`
	Tasks       []Task    `json:"tasks"`
}

// Current returns the first non-completed task, or nil when the roadmap
// is fully complete.
func (r *Roadmap) Current() *Task {
	if r == nil {
		return nil
	}
	for i := range r.Tasks {
		if r.Tasks[i].Status != StatusCompleted {
			return &r.Tasks[i]
		}
	}
	return nil
}

// Find returns the task with the given id, or nil.
func (r *Roadmap) Find(id string) *Task {
	if r == nil {
		return nil
	}
	for i := range r.Tasks {
		if r.Tasks[i].ID == id {
			return &r.Tasks[i]
		}
	}
	return nil
}

// Stats summarizes task execution for the metrics engine.
func (r *Roadmap) Stats(now time.Time) *metrics.TaskStats {
	if r == nil || len(r.Tasks) == 0 {
		return nil
	}
	s := &metrics.TaskStats{Total: len(r.Tasks)}
	for _, t := range r.Tasks {
		switch {
		case t.Status == StatusCompleted:
			s.Completed++
		case now.Sub(time.UnixMilli(t.AssignedAt)) > abandonAfter:
			s.Abandoned++
		}
	}
	return s
}

// Generate builds a fresh roadmap: classify, decide, select actions
// against the dedup history, and snapshot the before-state into every
// task. It returns the roadmap and the updated action history.
func Generate(bundle *metrics.Bundle, history []string, now time.Time) (*Roadmap, []string) {
	state := learnstate.Classify(bundle)
	decisions := learnstate.Decide(state)
	selected, updated := actions.Select(decisions, history)

	snapshot := StateSnapshot{State: state, Metrics: bundle}
	rm := &Roadmap{GeneratedAt: now}
	for _, a := range selected {
		rm.Tasks = append(rm.Tasks, Task{
			ID:          a.ID,
			Kind:        a.Kind,
			Title:       a.Label,
			Description: a.Description,
			Duration:    a.Duration,
			Status:      StatusPending,
			Reason:      a.Reason,
			Intent:      a.Intent,
			Before:      snapshot,
			Criteria:    a.Criteria,
			AssignedAt:  now.UnixMilli(),
		})
	}
	return rm, updated
}

// signalThresholds: engagement moves of more than 0.05 (on the 0..1
// score) decide success or fail; a hands-on gain above 0.10 of the
// fraction (ten percentage points) also counts as success.
const (
	engagementDelta = 0.05
	handsOnDelta    = 0.10
)

// GrowthSignal compares before/after metric snapshots.
func GrowthSignal(before, after *metrics.Bundle) Signal {
	if before == nil || after == nil {
		return SignalNeutral
	}
	engDiff := after.EngagementScore - before.EngagementScore
	handsDiff := after.HandsOnRate - before.HandsOnRate

	switch {
	case engDiff > engagementDelta || handsDiff > handsOnDelta:
		return SignalSuccess
	case engDiff < -engagementDelta:
		return SignalFail
	default:
		return SignalNeutral
	}
}
