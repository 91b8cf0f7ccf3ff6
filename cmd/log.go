package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/abhinav-rk/studyloop/internal/activity"
	"github.com/spf13/cobra"
)

var knownEventTypes = []activity.Type{
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

var logCmd = &cobra.Command{
	Use:   "log <event-type>",
	Short: "Append an activity event to the log",
	Long: "Append one raw activity event. Event types:\n  " +
		joinTypes() + "\n\nEvents are append-only; nothing is ever rewritten.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		eventType := activity.Type(strings.ToUpper(args[0]))
		if !validEventType(eventType) {
			return fmt.Errorf("unknown event type %q; known types:\n  %s", args[0], joinTypes())
		}

		sessionID, _ := cmd.Flags().GetString("session")
		userID, _ := cmd.Flags().GetString("user")
		mode, _ := cmd.Flags().GetString("mode")
		at, _ := cmd.Flags().GetString("at")

		if mode != string(activity.ModeSolo) && mode != string(activity.ModeGroup) {
			return fmt.Errorf("invalid mode %q: must be solo or group", mode)
		}

		e := activity.Event{
			UserID:    userID,
			SessionID: sessionID,
			Type:      eventType,
			Mode:      activity.Mode(mode),
			Source:    "cli",
		}

		if at != "" {
			t, err := time.Parse(time.RFC3339, at)
			if err != nil {
				return fmt.Errorf("invalid --at timestamp %q: %w", at, err)
			}
			e.Timestamp = t.UnixMilli()
		}

		s, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		if err := s.EventRepo().Append(cmd.Context(), e); err != nil {
			return fmt.Errorf("append event: %w", err)
		}

		fmt.Printf("Logged %s", eventType)
		if sessionID != "" {
			fmt.Printf(" (session %s)", sessionID)
		}
		fmt.Println()
		return nil
	},
}

func validEventType(t activity.Type) bool {
	for _, k := range knownEventTypes {
		if k == t {
			return true
		}
	}
	return false
}

func joinTypes() string {
	parts := make([]string, len(knownEventTypes))
	for i, t := range knownEventTypes {
		parts[i] = string(t)
	}
	return strings.Join(parts, ", ")
}

func init() {
	logCmd.Flags().StringP("session", "s", "", "Session ID the event belongs to")
	logCmd.Flags().StringP("user", "u", "", "User ID")
	logCmd.Flags().StringP("mode", "m", "solo", "Session mode: solo or group")
	logCmd.Flags().String("at", "", "Event time (RFC 3339, defaults to now)")
}
