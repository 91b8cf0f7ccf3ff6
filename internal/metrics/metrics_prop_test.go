package metrics

import (
	"fmt"
	"testing"
	"time"

	"pgregory.net/rapid"

	"github.com/abhinav-rk/studyloop/internal/activity"
)

var allTypes = []activity.Type{
	activity.TypeSessionJoined,
	activity.TypeSessionLeft,
	activity.TypeChatMessage,
	activity.TypeQuestionAsked,
	activity.TypeWhiteboardUsed,
	activity.TypeChatbotOpened,
	activity.TypeResourceOpened,
	activity.TypeQuizSubmitted,
	activity.TypeNoteEdited,
}

// genEvents draws a random event log: a handful of sessions with random
// events spread over random offsets inside a two-week window.
func genEvents(t *rapid.T) []activity.Event {
	base := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	sessionCount := rapid.IntRange(0, 8).Draw(t, "sessions")

	var events []activity.Event
	for s := 0; s < sessionCount; s++ {
		sessionID := fmt.Sprintf("s%d", s)
		startMin := rapid.Float64Range(0, 14*24*60).Draw(t, "start")
		eventCount := rapid.IntRange(1, 12).Draw(t, "events")

		for i := 0; i < eventCount; i++ {
			offset := rapid.Float64Range(0, 600).Draw(t, "offset")
			typ := allTypes[rapid.IntRange(0, len(allTypes)-1).Draw(t, "type")]
			mode := activity.ModeSolo
			if rapid.Bool().Draw(t, "group") {
				mode = activity.ModeGroup
			}
			events = append(events, activity.Event{
				EventID:   fmt.Sprintf("%s-%d", sessionID, i),
				SessionID: sessionID,
				Type:      typ,
				Mode:      mode,
				Timestamp: base.Add(time.Duration((startMin + offset) * float64(time.Minute))).UnixMilli(),
			})
		}
	}
	return events
}

func inUnit(v float64) bool { return v >= 0 && v <= 1 }

func TestComputeInvariants(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		events := genEvents(t)
		b := Compute(events, nil)

		if len(events) == 0 {
			if b != nil {
				t.Fatalf("empty log must yield nil bundle, got %+v", b)
			}
			return
		}
		if b == nil {
			t.Fatal("non-empty log must yield a bundle")
		}

		for name, v := range map[string]float64{
			"CollabRatio":      b.CollabRatio,
			"SilentRatio":      b.SilentRatio,
			"HandsOnRate":      b.HandsOnRate,
			"ClusterRatio":     b.ClusterRatio,
			"EngagementScore":  b.EngagementScore,
			"ConsistencyScore": b.ConsistencyScore,
		} {
			if !inUnit(v) {
				t.Fatalf("%s = %v, want within [0, 1]", name, v)
			}
		}

		if b.AvgDuration < 0 || b.TotalMinutes < 0 {
			t.Fatalf("negative durations: avg %v total %v", b.AvgDuration, b.TotalMinutes)
		}
		if b.TotalSessions > 0 {
			if b.AvgDuration <= activity.MinSessionMinutes || b.AvgDuration >= activity.MaxSessionMinutes {
				t.Fatalf("AvgDuration %v outside the plausibility window", b.AvgDuration)
			}
			if b.ActiveDays < 1 {
				t.Fatalf("ActiveDays = %d with %d sessions", b.ActiveDays, b.TotalSessions)
			}
			if b.Frequency <= 0 {
				t.Fatalf("Frequency = %v with sessions present", b.Frequency)
			}
		}
		if b.ExecutionKnown {
			t.Fatal("ExecutionKnown must stay false without task stats")
		}
	})
}
