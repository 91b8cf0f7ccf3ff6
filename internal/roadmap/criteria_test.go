package roadmap

import (
	"testing"
	"time"

	"github.com/abhinav-rk/studyloop/internal/actions"
	"github.com/abhinav-rk/studyloop/internal/activity"
)

var criteriaBase = time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC).UnixMilli()

func sev(session string, typ activity.Type, offsetMin float64) activity.Event {
	return activity.Event{
		EventID:   session + string(typ),
		SessionID: session,
		Type:      typ,
		Mode:      activity.ModeSolo,
		Timestamp: criteriaBase + int64(offsetMin*60000),
	}
}

// session builds a join/leave pair of the given length in minutes.
func session(id string, startMin, lengthMin float64) []activity.Event {
	return []activity.Event{
		sev(id, activity.TypeSessionJoined, startMin),
		sev(id, activity.TypeSessionLeft, startMin+lengthMin),
	}
}

func TestSatisfiedEmptyCriteria(t *testing.T) {
	events := session("s1", 0, 60)
	if Satisfied(actions.SuccessCriteria{}, events) {
		t.Fatal("empty criteria must never be satisfied")
	}
}

func TestSatisfiedMinDuration(t *testing.T) {
	// Two 10-minute sessions: total 20 minutes.
	events := append(session("s1", 0, 10), session("s2", 30, 10)...)

	if !Satisfied(actions.SuccessCriteria{MinDuration: 15}, events) {
		t.Error("20 total minutes should satisfy MinDuration 15")
	}
	if Satisfied(actions.SuccessCriteria{MinDuration: 25}, events) {
		t.Error("20 total minutes should not satisfy MinDuration 25")
	}
	if Satisfied(actions.SuccessCriteria{MinDuration: 15}, nil) {
		t.Error("no events should not satisfy MinDuration")
	}
}

func TestSatisfiedMaxDuration(t *testing.T) {
	short := session("s1", 0, 20)
	long := session("s2", 60, 45)

	if !Satisfied(actions.SuccessCriteria{MaxDuration: 30}, short) {
		t.Error("20-minute session should satisfy MaxDuration 30")
	}
	if Satisfied(actions.SuccessCriteria{MaxDuration: 30}, append(short, long...)) {
		t.Error("a 45-minute session should break MaxDuration 30")
	}
	// The cap demands at least one session: doing nothing is not
	// "staying under the limit".
	if Satisfied(actions.SuccessCriteria{MaxDuration: 30}, nil) {
		t.Error("no sessions should not satisfy MaxDuration")
	}
}

func TestSatisfiedRequiredEvents(t *testing.T) {
	events := append(session("s1", 0, 20),
		sev("s1", activity.TypeWhiteboardUsed, 5),
	)
	c := actions.SuccessCriteria{RequiredEvents: []activity.Type{activity.TypeWhiteboardUsed}}
	if !Satisfied(c, events) {
		t.Error("whiteboard event present, criteria should hold")
	}

	c.RequiredEvents = append(c.RequiredEvents, activity.TypeQuizSubmitted)
	if Satisfied(c, events) {
		t.Error("missing quiz event, criteria should not hold")
	}
}

func TestSatisfiedMinInteractions(t *testing.T) {
	events := append(session("s1", 0, 20),
		sev("s1", activity.TypeChatMessage, 2),
		sev("s1", activity.TypeQuestionAsked, 4),
	)
	if !Satisfied(actions.SuccessCriteria{MinInteractions: 2}, events) {
		t.Error("two interactions should satisfy MinInteractions 2")
	}
	if Satisfied(actions.SuccessCriteria{MinInteractions: 3}, events) {
		t.Error("two interactions should not satisfy MinInteractions 3")
	}
}

func TestSatisfiedMaxSessionGap(t *testing.T) {
	// s1 ends at minute 20, s2 starts at minute 50: a 30-minute gap.
	events := append(session("s1", 0, 20), session("s2", 50, 20)...)

	if !Satisfied(actions.SuccessCriteria{MaxSessionGap: 60}, events) {
		t.Error("30-minute gap should satisfy a 60-minute cap")
	}
	if Satisfied(actions.SuccessCriteria{MaxSessionGap: 10}, events) {
		t.Error("30-minute gap should break a 10-minute cap")
	}
	// A gap cap with a single session has nothing to measure.
	if !Satisfied(actions.SuccessCriteria{MaxSessionGap: 10}, session("s1", 0, 20)) {
		t.Error("single session should satisfy any gap cap")
	}
}

func TestSatisfiedRequireMode(t *testing.T) {
	solo := session("s1", 0, 20)
	if Satisfied(actions.SuccessCriteria{RequireMode: activity.ModeGroup}, solo) {
		t.Error("solo-only events should not satisfy RequireMode group")
	}

	mixed := append(solo, activity.Event{
		EventID:   "g1",
		SessionID: "s1",
		Type:      activity.TypeChatMessage,
		Mode:      activity.ModeGroup,
		Timestamp: criteriaBase + 5*60000,
	})
	if !Satisfied(actions.SuccessCriteria{RequireMode: activity.ModeGroup}, mixed) {
		t.Error("one group event should satisfy RequireMode group")
	}
}

func TestSatisfiedAllCriteriaMustHold(t *testing.T) {
	events := append(session("s1", 0, 20),
		sev("s1", activity.TypeWhiteboardUsed, 5),
	)
	c := actions.SuccessCriteria{
		MinDuration:    15,
		RequiredEvents: []activity.Type{activity.TypeQuizSubmitted},
	}
	if Satisfied(c, events) {
		t.Error("duration holds but the quiz event is missing; AND semantics require both")
	}
}
