package metrics

import (
	"reflect"
	"testing"
	"time"

	"github.com/abhinav-rk/studyloop/internal/activity"
)

var testBase = time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

func ev(sessionID string, typ activity.Type, mode activity.Mode, minute float64) activity.Event {
	return activity.Event{
		EventID:   sessionID + "-" + string(typ) + "-" + time.Duration(minute*float64(time.Minute)).String(),
		SessionID: sessionID,
		Type:      typ,
		Mode:      mode,
		Timestamp: testBase.Add(time.Duration(minute * float64(time.Minute))).UnixMilli(),
	}
}

// thirtyMinuteSession is one solo session with a single chat message
// ten minutes in.
func thirtyMinuteSession() []activity.Event {
	return []activity.Event{
		ev("s1", activity.TypeSessionJoined, activity.ModeSolo, 0),
		ev("s1", activity.TypeChatMessage, activity.ModeSolo, 10),
		ev("s1", activity.TypeSessionLeft, activity.ModeSolo, 30),
	}
}

func TestComputeEmptyLog(t *testing.T) {
	if got := Compute(nil, nil); got != nil {
		t.Fatalf("Compute(nil) = %+v, want nil", got)
	}
}

func TestComputeNoValidSessions(t *testing.T) {
	// A single event yields a floored 0.5 min session, below the window.
	events := []activity.Event{ev("s1", activity.TypeSessionJoined, activity.ModeSolo, 0)}

	b := Compute(events, nil)
	if b == nil {
		t.Fatal("expected zero bundle, got nil")
	}
	if b.TotalSessions != 0 {
		t.Errorf("TotalSessions = %d, want 0", b.TotalSessions)
	}
	if b.ActivityMap == nil {
		t.Error("ActivityMap should be non-nil even when empty")
	}
}

func TestComputeSingleSession(t *testing.T) {
	b := Compute(thirtyMinuteSession(), nil)
	if b == nil {
		t.Fatal("expected bundle")
	}

	if b.TotalSessions != 1 {
		t.Errorf("TotalSessions = %d, want 1", b.TotalSessions)
	}
	if b.AvgDuration != 30 {
		t.Errorf("AvgDuration = %v, want 30", b.AvgDuration)
	}
	if b.InteractionCount != 1 {
		t.Errorf("InteractionCount = %d, want 1", b.InteractionCount)
	}
	if want := 1.0 / 30.0; b.InteractRate != want {
		t.Errorf("InteractRate = %v, want %v", b.InteractRate, want)
	}
	if b.MessageCount != 1 || b.MsgsPerSession != 1 {
		t.Errorf("messages = %d (%v /session), want 1 (1)", b.MessageCount, b.MsgsPerSession)
	}
	if b.SilentRatio != 0 {
		t.Errorf("SilentRatio = %v, want 0", b.SilentRatio)
	}
	if b.ActiveDays != 1 {
		t.Errorf("ActiveDays = %d, want 1", b.ActiveDays)
	}
	if b.Frequency != 1 {
		t.Errorf("Frequency = %v, want 1", b.Frequency)
	}
	// Chat at minute 10 is the only interaction.
	if b.DecayPoint != 10 {
		t.Errorf("DecayPoint = %v, want 10", b.DecayPoint)
	}
	if want := 2.0 / 30.0; b.EngagementScore != want {
		t.Errorf("EngagementScore = %v, want %v", b.EngagementScore, want)
	}
	if b.ConsistencyScore != 0.1 {
		t.Errorf("ConsistencyScore = %v, want 0.1", b.ConsistencyScore)
	}
	if b.ExecutionKnown {
		t.Error("ExecutionKnown should be false without task stats")
	}
}

func TestComputeExcludesImplausibleSessions(t *testing.T) {
	events := append(thirtyMinuteSession(),
		ev("stuck", activity.TypeSessionJoined, activity.ModeSolo, 100),
		ev("stuck", activity.TypeSessionLeft, activity.ModeSolo, 100+1000),
	)

	b := Compute(events, nil)
	if b.TotalSessions != 1 {
		t.Errorf("TotalSessions = %d, want 1 (stuck session excluded)", b.TotalSessions)
	}
	if b.AvgDuration != 30 {
		t.Errorf("AvgDuration = %v, want 30", b.AvgDuration)
	}
}

func TestComputeCollaboration(t *testing.T) {
	events := append(thirtyMinuteSession(),
		ev("g1", activity.TypeSessionJoined, activity.ModeGroup, 120),
		ev("g1", activity.TypeSessionLeft, activity.ModeSolo, 150),
	)

	b := Compute(events, nil)
	if b.TotalSessions != 2 {
		t.Fatalf("TotalSessions = %d, want 2", b.TotalSessions)
	}
	if b.CollabRatio != 0.5 {
		t.Errorf("CollabRatio = %v, want 0.5", b.CollabRatio)
	}
	// The group session has no chat message.
	if b.SilentRatio != 0.5 {
		t.Errorf("SilentRatio = %v, want 0.5", b.SilentRatio)
	}
}

func TestComputeHandsOn(t *testing.T) {
	events := []activity.Event{
		ev("s1", activity.TypeSessionJoined, activity.ModeSolo, 0),
		ev("s1", activity.TypeChatMessage, activity.ModeSolo, 5),
		ev("s1", activity.TypeWhiteboardUsed, activity.ModeSolo, 10),
		ev("s1", activity.TypeChatbotOpened, activity.ModeSolo, 15),
		ev("s1", activity.TypeQuestionAsked, activity.ModeSolo, 20),
		ev("s1", activity.TypeSessionLeft, activity.ModeSolo, 30),
	}

	b := Compute(events, nil)
	if b.InteractionCount != 4 {
		t.Fatalf("InteractionCount = %d, want 4", b.InteractionCount)
	}
	if b.HandsOnRate != 0.5 {
		t.Errorf("HandsOnRate = %v, want 0.5", b.HandsOnRate)
	}
	if b.HelpActions != 1 {
		t.Errorf("HelpActions = %v, want 1", b.HelpActions)
	}
}

func TestComputeRhythmClustering(t *testing.T) {
	// Two sessions an hour apart: one clustered pair.
	events := append(thirtyMinuteSession(),
		ev("s2", activity.TypeSessionJoined, activity.ModeSolo, 90),
		ev("s2", activity.TypeSessionLeft, activity.ModeSolo, 120),
	)

	b := Compute(events, nil)
	if b.ClusterRatio != 1 {
		t.Errorf("ClusterRatio = %v, want 1", b.ClusterRatio)
	}

	// Push the second session past the cluster gap.
	events = append(thirtyMinuteSession(),
		ev("s2", activity.TypeSessionJoined, activity.ModeSolo, 30+200),
		ev("s2", activity.TypeSessionLeft, activity.ModeSolo, 30+230),
	)
	b = Compute(events, nil)
	if b.ClusterRatio != 0 {
		t.Errorf("ClusterRatio = %v, want 0", b.ClusterRatio)
	}
}

func TestComputeLongestGap(t *testing.T) {
	events := append(thirtyMinuteSession(),
		ev("s2", activity.TypeSessionJoined, activity.ModeSolo, 3*24*60),
		ev("s2", activity.TypeSessionLeft, activity.ModeSolo, 3*24*60+30),
	)

	b := Compute(events, nil)
	if b.ActiveDays != 2 {
		t.Errorf("ActiveDays = %d, want 2", b.ActiveDays)
	}
	if b.LongestGapDays != 3 {
		t.Errorf("LongestGapDays = %d, want 3", b.LongestGapDays)
	}
}

func TestComputeHistogramBuckets(t *testing.T) {
	b := Compute(thirtyMinuteSession(), nil)

	total := 0
	for _, n := range b.Histogram {
		total += n
	}
	if total != 3 {
		t.Fatalf("histogram total = %d, want 3 events", total)
	}
	// Session start lands in bucket 0, end clamps into the last bucket.
	if b.Histogram[0] == 0 {
		t.Error("bucket 0 should hold the session start")
	}
	if b.Histogram[HistogramBuckets-1] == 0 {
		t.Error("last bucket should hold the session end")
	}
}

func TestComputeExecution(t *testing.T) {
	b := Compute(thirtyMinuteSession(), &TaskStats{Total: 4, Completed: 3, Abandoned: 1})
	if !b.ExecutionKnown {
		t.Fatal("ExecutionKnown should be true")
	}
	if b.CompletionRate != 0.75 {
		t.Errorf("CompletionRate = %v, want 0.75", b.CompletionRate)
	}
	if b.AbandonRate != 0.25 {
		t.Errorf("AbandonRate = %v, want 0.25", b.AbandonRate)
	}

	// Zero-task stats behave like no stats.
	b = Compute(thirtyMinuteSession(), &TaskStats{})
	if b.ExecutionKnown {
		t.Error("ExecutionKnown should be false for empty stats")
	}
}

func TestComputeDeterministic(t *testing.T) {
	events := append(thirtyMinuteSession(),
		ev("g1", activity.TypeSessionJoined, activity.ModeGroup, 120),
		ev("g1", activity.TypeWhiteboardUsed, activity.ModeGroup, 135),
		ev("g1", activity.TypeSessionLeft, activity.ModeSolo, 150),
	)

	a := Compute(events, nil)
	b := Compute(events, nil)
	if !reflect.DeepEqual(a, b) {
		t.Errorf("Compute is not deterministic:\n%+v\n%+v", a, b)
	}
}
