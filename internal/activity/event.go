package activity

import (
	"sort"
	"time"
)

// Mode is the study context an event happened in.
type Mode string

const (
	ModeSolo  Mode = "solo"
	ModeGroup Mode = "group"
)

// Type identifies what kind of activity an event records.
type Type string

const (
	TypeSessionJoined  Type = "SESSION_JOINED"
	TypeSessionLeft    Type = "SESSION_LEFT"
	TypeChatMessage    Type = "CHAT_MESSAGE_SENT"
	TypeQuestionAsked  Type = "QUESTION_ASKED"
	TypeWhiteboardUsed Type = "WHITEBOARD_USED"
	TypeChatbotOpened  Type = "CHATBOT_OPENED"
	TypeResourceOpened Type = "RESOURCE_OPENED"
	TypeQuizSubmitted  Type = "QUIZ_SUBMITTED"
	TypeNoteEdited     Type = "NOTE_EDITED"
	TypeTaskCompleted  Type = "ROADMAP_TASK_COMPLETED"
)

// interactionTypes is the fixed allow-list of event types that count as
// active interactions for rate and hands-on metrics.
var interactionTypes = map[Type]bool{
	TypeChatMessage:    true,
	TypeQuestionAsked:  true,
	TypeWhiteboardUsed: true,
	TypeChatbotOpened:  true,
	TypeResourceOpened: true,
}

// handsOnTypes are the interactions that involve actively producing
// something rather than consuming.
var handsOnTypes = map[Type]bool{
	TypeWhiteboardUsed: true,
	TypeChatbotOpened:  true,
}

// Event is one immutable behavioral activity record.
// Ordering is by Timestamp (client event time), never by arrival.
type Event struct {
	EventID   string         `json:"event_id"`
	UserID    string         `json:"user_id,omitempty"`
	SessionID string         `json:"session_id,omitempty"`
	Type      Type           `json:"event_type"`
	Mode      Mode           `json:"mode"`
	Source    string         `json:"source,omitempty"`
	Metadata  map[string]any `json:"metadata,omitempty"`
	Timestamp int64          `json:"timestamp"` // Unix milliseconds
	CreatedAt time.Time      `json:"created_at,omitempty"`
}

// Time converts the millisecond timestamp to a time.Time.
func (e Event) Time() time.Time {
	return time.UnixMilli(e.Timestamp)
}

// IsInteraction reports whether the event counts as an active interaction.
func (e Event) IsInteraction() bool {
	return interactionTypes[e.Type]
}

// IsHandsOn reports whether the event is a hands-on interaction.
func (e Event) IsHandsOn() bool {
	return handsOnTypes[e.Type]
}

// SortByTimestamp orders events by client timestamp, oldest first.
// The sort is stable so same-millisecond events keep their append order.
func SortByTimestamp(events []Event) {
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Timestamp < events[j].Timestamp
	})
}

// After returns the events with a timestamp strictly greater than ts.
func After(events []Event, ts int64) []Event {
	out := make([]Event, 0, len(events))
	for _, e := range events {
		if e.Timestamp > ts {
			out = append(out, e)
		}
	}
	return out
}
