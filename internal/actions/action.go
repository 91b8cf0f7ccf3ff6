// Package actions holds the static recommendation pool and the selector
// that turns decisions into concrete nudges and roadmap tasks.
package actions

import "github.com/abhinav-rk/studyloop/internal/activity"

// Kind distinguishes a lightweight nudge from a scheduled roadmap task.
type Kind string

const (
	KindNudge       Kind = "nudge"
	KindRoadmapTask Kind = "roadmap_task"
)

// SuccessCriteria is the machine-checkable completion contract for a
// task. All present fields must hold (AND semantics). A zero-valued
// record can never be satisfied, which makes a task with missing
// criteria pend forever instead of crashing the watcher.
type SuccessCriteria struct {
	MinDuration     float64         `json:"min_duration,omitempty"`     // total session minutes
	MaxDuration     float64         `json:"max_duration,omitempty"`     // cap per session, minutes
	RequiredEvents  []activity.Type `json:"required_events,omitempty"`  // every type must appear
	MinInteractions int             `json:"min_interactions,omitempty"` // interaction event count
	MaxSessionGap   float64         `json:"max_session_gap,omitempty"`  // minutes between sessions
	RequireMode     activity.Mode   `json:"require_mode,omitempty"`     // at least one event in mode
}

// Empty reports whether no criterion is set.
func (c SuccessCriteria) Empty() bool {
	return c.MinDuration == 0 &&
		c.MaxDuration == 0 &&
		len(c.RequiredEvents) == 0 &&
		c.MinInteractions == 0 &&
		c.MaxSessionGap == 0 &&
		c.RequireMode == ""
}

// Action is one concrete recommendation drawn from the pool.
type Action struct {
	Kind        Kind            `json:"type"`
	ID          string          `json:"id"`
	Label       string          `json:"label"`
	Description string          `json:"description,omitempty"`
	Variant     string          `json:"variant,omitempty"`
	Duration    int             `json:"duration,omitempty"` // minutes
	Reason      string          `json:"reason"`
	Intent      string          `json:"intent"`
	Criteria    SuccessCriteria `json:"success_criteria"`
}
