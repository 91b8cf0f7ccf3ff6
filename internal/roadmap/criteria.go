package roadmap

import (
	"github.com/abhinav-rk/studyloop/internal/actions"
	"github.com/abhinav-rk/studyloop/internal/activity"
)

// Satisfied evaluates success criteria against a slice of events, which
// the watcher has already filtered to those after the task's assignment.
// Every present criterion must hold. An empty criteria record is never
// satisfied: a task without a contract cannot auto-complete.
func Satisfied(c actions.SuccessCriteria, events []activity.Event) bool {
	if c.Empty() {
		return false
	}

	sessions := activity.Sessionize(events)

	if c.MinDuration > 0 {
		var total float64
		for _, s := range sessions {
			total += s.Duration
		}
		if total < c.MinDuration {
			return false
		}
	}

	if c.MaxDuration > 0 {
		if len(sessions) == 0 {
			return false
		}
		for _, s := range sessions {
			if s.Duration > c.MaxDuration {
				return false
			}
		}
	}

	if len(c.RequiredEvents) > 0 {
		present := make(map[activity.Type]bool, len(events))
		for _, e := range events {
			present[e.Type] = true
		}
		for _, want := range c.RequiredEvents {
			if !present[want] {
				return false
			}
		}
	}

	if c.MinInteractions > 0 {
		count := 0
		for _, e := range events {
			if e.IsInteraction() {
				count++
			}
		}
		if count < c.MinInteractions {
			return false
		}
	}

	if c.MaxSessionGap > 0 && len(sessions) > 1 {
		for i := 1; i < len(sessions); i++ {
			gap := float64(sessions[i].StartTime-sessions[i-1].EndTime) / 60000.0
			if gap > c.MaxSessionGap {
				return false
			}
		}
	}

	if c.RequireMode != "" {
		found := false
		for _, e := range events {
			if e.Mode == c.RequireMode {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	return true
}
