package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/abhinav-rk/studyloop/ent"
	entactivity "github.com/abhinav-rk/studyloop/ent/activityevent"
	"github.com/abhinav-rk/studyloop/internal/activity"
)

func (r *eventRepo) Append(ctx context.Context, e activity.Event) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	if e.EventID == "" {
		e.EventID = uuid.NewString()
	}
	if e.Timestamp == 0 {
		e.Timestamp = time.Now().UnixMilli()
	}
	if e.Mode == "" {
		e.Mode = activity.ModeSolo
	}

	builder := r.client.ActivityEvent.Create().
		SetSequence(seqNum).
		SetEventID(e.EventID).
		SetUserID(e.UserID).
		SetSessionID(e.SessionID).
		SetEventType(string(e.Type)).
		SetMode(string(e.Mode)).
		SetSource(e.Source).
		SetTimestampMs(e.Timestamp)

	if len(e.Metadata) > 0 {
		builder = builder.SetMetadata(e.Metadata)
	}

	if _, err := builder.Save(ctx); err != nil {
		return fmt.Errorf("save activity event: %w", err)
	}
	return nil
}

func (r *eventRepo) Events(ctx context.Context) ([]activity.Event, error) {
	rows, err := r.client.ActivityEvent.Query().
		Order(ent.Asc(entactivity.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query activity events: %w", err)
	}

	out := make([]activity.Event, len(rows))
	for i, row := range rows {
		out[i] = activity.Event{
			EventID:   row.EventID,
			UserID:    row.UserID,
			SessionID: row.SessionID,
			Type:      activity.Type(row.EventType),
			Mode:      activity.Mode(row.Mode),
			Source:    row.Source,
			Metadata:  row.Metadata,
			Timestamp: row.TimestampMs,
			CreatedAt: row.CreatedAt,
		}
	}
	return out, nil
}
