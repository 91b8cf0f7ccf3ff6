package activity

import "sort"

const (
	// MinSessionMinutes and MaxSessionMinutes bound the plausibility
	// window. Sessions at or outside the bounds are excluded from all
	// metrics, guarding against clock skew and stuck sessions.
	MinSessionMinutes = 1.0
	MaxSessionMinutes = 480.0

	// MinDurationFloor is the smallest duration a session can report.
	MinDurationFloor = 0.5
)

// Session is a derived grouping of events sharing a session identifier.
// It is never persisted; it is rebuilt from the event log on demand.
type Session struct {
	ID        string
	StartTime int64 // Unix ms, min event timestamp
	EndTime   int64 // Unix ms, max event timestamp
	Events    []Event
	Mode      Mode
	Duration  float64 // minutes, floored at MinDurationFloor
}

// Valid reports whether the session falls inside the plausibility window.
func (s Session) Valid() bool {
	return s.Duration > MinSessionMinutes && s.Duration < MaxSessionMinutes
}

// Sessionize groups events by session identifier and returns sessions
// sorted by start time. Events with no session identifier are dropped.
func Sessionize(events []Event) []Session {
	groups := make(map[string][]Event)
	for _, e := range events {
		if e.SessionID == "" {
			continue
		}
		groups[e.SessionID] = append(groups[e.SessionID], e)
	}

	sessions := make([]Session, 0, len(groups))
	for id, evs := range groups {
		SortByTimestamp(evs)
		s := Session{
			ID:        id,
			StartTime: evs[0].Timestamp,
			EndTime:   evs[len(evs)-1].Timestamp,
			Events:    evs,
			Mode:      ModeSolo,
		}
		for _, e := range evs {
			if e.Mode == ModeGroup {
				s.Mode = ModeGroup
				break
			}
		}
		s.Duration = float64(s.EndTime-s.StartTime) / 60000.0
		if s.Duration < MinDurationFloor {
			s.Duration = MinDurationFloor
		}
		sessions = append(sessions, s)
	}

	sort.Slice(sessions, func(i, j int) bool {
		return sessions[i].StartTime < sessions[j].StartTime
	})
	return sessions
}

// ValidSessions sessionizes events and keeps only plausible sessions.
func ValidSessions(events []Event) []Session {
	all := Sessionize(events)
	out := make([]Session, 0, len(all))
	for _, s := range all {
		if s.Valid() {
			out = append(out, s)
		}
	}
	return out
}
