package activity

import (
	"testing"
	"time"
)

// mkEvent builds an event at the given minute offset from a fixed base.
func mkEvent(sessionID string, typ Type, mode Mode, minute float64) Event {
	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	return Event{
		EventID:   sessionID + "-" + string(typ),
		SessionID: sessionID,
		Type:      typ,
		Mode:      mode,
		Timestamp: base.Add(time.Duration(minute * float64(time.Minute))).UnixMilli(),
	}
}

func TestSessionize(t *testing.T) {
	events := []Event{
		mkEvent("s2", TypeSessionJoined, ModeSolo, 60),
		mkEvent("s1", TypeSessionJoined, ModeSolo, 0),
		mkEvent("s1", TypeChatMessage, ModeSolo, 10),
		mkEvent("s1", TypeSessionLeft, ModeSolo, 30),
		mkEvent("s2", TypeWhiteboardUsed, ModeGroup, 75),
		mkEvent("s2", TypeSessionLeft, ModeSolo, 90),
		{EventID: "orphan", Type: TypeChatMessage, Timestamp: 1}, // no session id
	}

	sessions := Sessionize(events)
	if len(sessions) != 2 {
		t.Fatalf("got %d sessions, want 2", len(sessions))
	}

	// Sorted by start time: s1 first.
	if sessions[0].ID != "s1" || sessions[1].ID != "s2" {
		t.Errorf("session order = %s, %s; want s1, s2", sessions[0].ID, sessions[1].ID)
	}

	if got := sessions[0].Duration; got != 30 {
		t.Errorf("s1 duration = %v, want 30", got)
	}
	if sessions[0].Mode != ModeSolo {
		t.Errorf("s1 mode = %s, want solo", sessions[0].Mode)
	}

	// One group event makes the whole session group.
	if sessions[1].Mode != ModeGroup {
		t.Errorf("s2 mode = %s, want group", sessions[1].Mode)
	}
}

func TestSessionizeSingleEventDurationFloor(t *testing.T) {
	sessions := Sessionize([]Event{mkEvent("s1", TypeSessionJoined, ModeSolo, 0)})
	if len(sessions) != 1 {
		t.Fatalf("got %d sessions, want 1", len(sessions))
	}
	if got := sessions[0].Duration; got != MinDurationFloor {
		t.Errorf("duration = %v, want floor %v", got, MinDurationFloor)
	}
}

func TestSessionValid(t *testing.T) {
	tests := []struct {
		name    string
		minutes float64
		want    bool
	}{
		{"below minimum", 0.5, false},
		{"at minimum", 1, false},
		{"just above minimum", 1.5, true},
		{"typical", 45, true},
		{"just below maximum", 479, true},
		{"at maximum", 480, false},
		{"ludicrous", 1000, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Session{Duration: tt.minutes}
			if got := s.Valid(); got != tt.want {
				t.Errorf("Valid() with %v min = %v, want %v", tt.minutes, got, tt.want)
			}
		})
	}
}

func TestValidSessionsFilters(t *testing.T) {
	events := []Event{
		mkEvent("ok", TypeSessionJoined, ModeSolo, 0),
		mkEvent("ok", TypeSessionLeft, ModeSolo, 30),
		mkEvent("long", TypeSessionJoined, ModeSolo, 100),
		mkEvent("long", TypeSessionLeft, ModeSolo, 100+1000),
	}

	valid := ValidSessions(events)
	if len(valid) != 1 {
		t.Fatalf("got %d valid sessions, want 1", len(valid))
	}
	if valid[0].ID != "ok" {
		t.Errorf("kept session %q, want ok", valid[0].ID)
	}
}

func TestIsInteraction(t *testing.T) {
	tests := []struct {
		typ  Type
		want bool
	}{
		{TypeChatMessage, true},
		{TypeQuestionAsked, true},
		{TypeWhiteboardUsed, true},
		{TypeChatbotOpened, true},
		{TypeResourceOpened, true},
		{TypeSessionJoined, false},
		{TypeSessionLeft, false},
		{TypeQuizSubmitted, false},
		{TypeNoteEdited, false},
	}
	for _, tt := range tests {
		e := Event{Type: tt.typ}
		if got := e.IsInteraction(); got != tt.want {
			t.Errorf("IsInteraction(%s) = %v, want %v", tt.typ, got, tt.want)
		}
	}
}

func TestIsHandsOn(t *testing.T) {
	tests := []struct {
		typ  Type
		want bool
	}{
		{TypeWhiteboardUsed, true},
		{TypeChatbotOpened, true},
		{TypeChatMessage, false},
		{TypeQuestionAsked, false},
		{TypeResourceOpened, false},
	}
	for _, tt := range tests {
		e := Event{Type: tt.typ}
		if got := e.IsHandsOn(); got != tt.want {
			t.Errorf("IsHandsOn(%s) = %v, want %v", tt.typ, got, tt.want)
		}
	}
}

func TestAfterFilters(t *testing.T) {
	events := []Event{
		mkEvent("s1", TypeSessionJoined, ModeSolo, 0),
		mkEvent("s1", TypeChatMessage, ModeSolo, 10),
		mkEvent("s1", TypeSessionLeft, ModeSolo, 30),
	}
	cutoff := events[1].Timestamp

	got := After(events, cutoff)
	if len(got) != 1 {
		t.Fatalf("got %d events after cutoff, want 1", len(got))
	}
	if got[0].Type != TypeSessionLeft {
		t.Errorf("kept %s, want SESSION_LEFT", got[0].Type)
	}
}

func TestSortByTimestampStable(t *testing.T) {
	a := Event{EventID: "a", Timestamp: 100}
	b := Event{EventID: "b", Timestamp: 100}
	c := Event{EventID: "c", Timestamp: 50}

	events := []Event{a, b, c}
	SortByTimestamp(events)

	if events[0].EventID != "c" {
		t.Errorf("first = %s, want c", events[0].EventID)
	}
	// Equal timestamps keep insertion order.
	if events[1].EventID != "a" || events[2].EventID != "b" {
		t.Errorf("tie order = %s, %s; want a, b", events[1].EventID, events[2].EventID)
	}
}
