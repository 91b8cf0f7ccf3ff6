package store

import (
	"context"
	"testing"
	"time"

	"github.com/abhinav-rk/studyloop/internal/activity"
	"github.com/abhinav-rk/studyloop/internal/llm"
	"github.com/abhinav-rk/studyloop/internal/roadmap"
	"github.com/abhinav-rk/studyloop/internal/swot"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestAutoMigrationCreatesTables(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	for _, table := range []string{"activity_events", "llm_request_events", "profiles"} {
		var name string
		err := db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		if err != nil {
			t.Errorf("table %s: %v", table, err)
		}
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	sc, err := newSequenceCounter(s.DB())
	if err != nil {
		t.Fatalf("new sequence counter: %v", err)
	}

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := sc.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Monotonically increasing starting from 1.
	for i, seq := range seqs {
		if want := int64(i + 1); seq != want {
			t.Errorf("seq[%d] = %d, want %d", i, seq, want)
		}
	}
}

func TestSequenceSharedAcrossEventTypes(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	if err := repo.Append(ctx, activity.Event{Type: activity.TypeSessionJoined, SessionID: "s1"}); err != nil {
		t.Fatalf("append activity: %v", err)
	}
	if err := repo.AppendLLMRequest(ctx, llm.RequestLog{Provider: "anthropic", Model: "m", Purpose: "swot"}); err != nil {
		t.Fatalf("append llm: %v", err)
	}

	recs, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query llm events: %v", err)
	}
	if len(recs) != 1 {
		t.Fatalf("llm events = %d, want 1", len(recs))
	}
	// The LLM event came second, so it carries sequence 2.
	if recs[0].Sequence != 2 {
		t.Errorf("llm event sequence = %d, want 2", recs[0].Sequence)
	}
}

func TestAppendAndEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	ts := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC).UnixMilli()
	err := repo.Append(ctx, activity.Event{
		EventID:   "ev-1",
		SessionID: "s1",
		Type:      activity.TypeSessionJoined,
		Mode:      activity.ModeGroup,
		Source:    "cli",
		Timestamp: ts,
		Metadata:  map[string]any{"topic": "algebra"},
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	// Defaults filled in on a sparse event.
	if err := repo.Append(ctx, activity.Event{Type: activity.TypeChatMessage, SessionID: "s1"}); err != nil {
		t.Fatalf("append sparse: %v", err)
	}

	events, err := repo.Events(ctx)
	if err != nil {
		t.Fatalf("events: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("events = %d, want 2", len(events))
	}

	first := events[0]
	if first.EventID != "ev-1" || first.Timestamp != ts {
		t.Errorf("first event = %+v", first)
	}
	if first.Mode != activity.ModeGroup || first.Source != "cli" {
		t.Errorf("first event mode/source = %s/%s", first.Mode, first.Source)
	}
	if first.Metadata["topic"] != "algebra" {
		t.Errorf("metadata = %v", first.Metadata)
	}

	second := events[1]
	if second.EventID == "" {
		t.Error("missing event id should be assigned")
	}
	if second.Timestamp == 0 {
		t.Error("zero timestamp should default to now")
	}
	if second.Mode != activity.ModeSolo {
		t.Errorf("mode = %s, want default solo", second.Mode)
	}
}

func TestLLMEventQueryAndGet(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	logs := []llm.RequestLog{
		{Provider: "anthropic", Model: "claude", Purpose: "swot", InputTokens: 100, OutputTokens: 50, LatencyMs: 800, Success: true},
		{Provider: "anthropic", Model: "claude", Purpose: "swot-evolution", InputTokens: 200, OutputTokens: 80, LatencyMs: 1200, Success: true},
		{Provider: "openai", Model: "gpt", Purpose: "swot", InputTokens: 300, OutputTokens: 10, LatencyMs: 400, Success: false, ErrorMessage: "rate limited"},
	}
	for i, l := range logs {
		if err := repo.AppendLLMRequest(ctx, l); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	// Newest first.
	recs, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(recs) != 3 {
		t.Fatalf("records = %d, want 3", len(recs))
	}
	if recs[0].Purpose != "swot" || recs[0].Provider != "openai" {
		t.Errorf("newest record = %+v, want the openai call", recs[0].RequestLog)
	}
	if recs[0].ErrorMessage != "rate limited" {
		t.Errorf("error message = %q", recs[0].ErrorMessage)
	}

	// Purpose filter.
	recs, err = repo.QueryLLMEvents(ctx, QueryOpts{Purpose: "swot-evolution"})
	if err != nil {
		t.Fatalf("query filtered: %v", err)
	}
	if len(recs) != 1 || recs[0].InputTokens != 200 {
		t.Errorf("filtered records = %+v", recs)
	}

	// Limit.
	recs, err = repo.QueryLLMEvents(ctx, QueryOpts{Limit: 1})
	if err != nil {
		t.Fatalf("query limited: %v", err)
	}
	if len(recs) != 1 {
		t.Errorf("limited records = %d, want 1", len(recs))
	}

	// Get by id, and a miss.
	rec, err := repo.GetLLMEvent(ctx, recs[0].ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if rec == nil || rec.ID != recs[0].ID {
		t.Errorf("get returned %+v", rec)
	}
	rec, err = repo.GetLLMEvent(ctx, 99999)
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if rec != nil {
		t.Errorf("missing id returned %+v, want nil", rec)
	}
}

func TestLLMUsageAggregation(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	logs := []llm.RequestLog{
		{Provider: "anthropic", Model: "claude", Purpose: "swot", InputTokens: 100, OutputTokens: 40, LatencyMs: 1000, Success: true},
		{Provider: "anthropic", Model: "claude", Purpose: "swot", InputTokens: 300, OutputTokens: 60, LatencyMs: 2000, Success: true},
		{Provider: "openai", Model: "gpt", Purpose: "swot-evolution", InputTokens: 50, OutputTokens: 20, LatencyMs: 500, Success: true},
	}
	for i, l := range logs {
		if err := repo.AppendLLMRequest(ctx, l); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	byPurpose, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage by purpose: %v", err)
	}
	if len(byPurpose) != 2 {
		t.Fatalf("purposes = %d, want 2", len(byPurpose))
	}
	// Ordered by purpose: swot, swot-evolution.
	st := byPurpose[0]
	if st.Purpose != "swot" || st.Calls != 2 || st.InputTokens != 400 || st.OutputTokens != 100 {
		t.Errorf("swot usage = %+v", st)
	}
	if st.AvgLatencyMs != 1500 {
		t.Errorf("avg latency = %d, want 1500", st.AvgLatencyMs)
	}

	byModel, err := repo.LLMUsageByModel(ctx)
	if err != nil {
		t.Fatalf("usage by model: %v", err)
	}
	if len(byModel) != 2 {
		t.Fatalf("models = %d, want 2", len(byModel))
	}
	if byModel[0].Model != "claude" || byModel[0].Calls != 2 || byModel[0].InputTokens != 400 {
		t.Errorf("claude usage = %+v", byModel[0])
	}
}

func TestProfileLoadEmpty(t *testing.T) {
	s := openTestStore(t)
	p, err := s.ProfileRepo().Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if p == nil || p.Roadmap != nil || p.ActionHistory != nil {
		t.Errorf("empty profile = %+v", p)
	}
}

func TestProfileSaveLoad(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProfileRepo()
	ctx := context.Background()

	updated := time.Date(2026, 3, 15, 8, 0, 0, 0, time.UTC)
	in := &ProfileData{
		Roadmap: &roadmap.Roadmap{
			GeneratedAt: updated,
			Tasks: []roadmap.Task{
				{ID: "sd-standard", Title: "Steady session", Status: roadmap.StatusPending, AssignedAt: updated.UnixMilli()},
			},
		},
		ActionHistory: []string{"sd-standard", "ab-quiz"},
		Swot:          swot.Fallback(),
		SwotUpdatedAt: &updated,
	}
	if err := repo.Save(ctx, in); err != nil {
		t.Fatalf("save: %v", err)
	}

	out, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if out.Roadmap == nil || len(out.Roadmap.Tasks) != 1 {
		t.Fatalf("roadmap = %+v", out.Roadmap)
	}
	task := out.Roadmap.Tasks[0]
	if task.ID != "sd-standard" || task.Status != roadmap.StatusPending || task.AssignedAt != updated.UnixMilli() {
		t.Errorf("task round-trip = %+v", task)
	}
	if len(out.ActionHistory) != 2 || out.ActionHistory[1] != "ab-quiz" {
		t.Errorf("history = %v", out.ActionHistory)
	}
	if out.Swot == nil || len(out.Swot.Strengths) < 2 {
		t.Errorf("swot = %+v", out.Swot)
	}
	if out.SwotUpdatedAt == nil || !out.SwotUpdatedAt.Equal(updated) {
		t.Errorf("swot updated at = %v, want %v", out.SwotUpdatedAt, updated)
	}
}

func TestSaveRoadmapKeepsRestOfProfile(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProfileRepo()
	ctx := context.Background()

	if err := repo.SaveActionHistory(ctx, []string{"sd-short-sprint"}); err != nil {
		t.Fatalf("save history: %v", err)
	}
	rm := &roadmap.Roadmap{GeneratedAt: time.Now().UTC(), Tasks: []roadmap.Task{{ID: "lp-catchup", Status: roadmap.StatusPending}}}
	if err := repo.SaveRoadmap(ctx, rm); err != nil {
		t.Fatalf("save roadmap: %v", err)
	}

	got, err := repo.Roadmap(ctx)
	if err != nil {
		t.Fatalf("roadmap: %v", err)
	}
	if got == nil || got.Tasks[0].ID != "lp-catchup" {
		t.Errorf("roadmap = %+v", got)
	}

	history, err := repo.ActionHistory(ctx)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(history) != 1 || history[0] != "sd-short-sprint" {
		t.Errorf("history = %v, want the earlier entry preserved", history)
	}
}

func TestRoadmapNilBeforeGeneration(t *testing.T) {
	s := openTestStore(t)
	rm, err := s.ProfileRepo().Roadmap(context.Background())
	if err != nil {
		t.Fatalf("roadmap: %v", err)
	}
	if rm != nil {
		t.Errorf("roadmap = %+v, want nil before first generation", rm)
	}
}

func TestProfilePrune(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProfileRepo()
	ctx := context.Background()

	for i := 0; i < 7; i++ {
		if err := repo.SaveActionHistory(ctx, []string{"v", string(rune('a' + i))}); err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
		// Version timestamps must be distinct for prune ordering.
		time.Sleep(2 * time.Millisecond)
	}

	if err := repo.Prune(ctx, 3); err != nil {
		t.Fatalf("prune: %v", err)
	}

	count, err := s.Client().Profile.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 3 {
		t.Errorf("remaining profiles = %d, want 3", count)
	}

	// The newest version survives.
	history, err := repo.ActionHistory(ctx)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(history) != 2 || history[1] != "g" {
		t.Errorf("history = %v, want the last saved version", history)
	}
}

func TestProfilePruneExactKeep(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProfileRepo()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if err := repo.SaveActionHistory(ctx, []string{"v"}); err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
		time.Sleep(2 * time.Millisecond)
	}

	if err := repo.Prune(ctx, 3); err != nil {
		t.Fatalf("prune: %v", err)
	}

	count, err := s.Client().Profile.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 3 {
		t.Errorf("remaining profiles = %d, want all 3 kept", count)
	}
}

func TestProfilePruneFewerThanKeep(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProfileRepo()
	ctx := context.Background()

	if err := repo.SaveActionHistory(ctx, []string{"only"}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := repo.Prune(ctx, 5); err != nil {
		t.Fatalf("prune: %v", err)
	}

	count, err := s.Client().Profile.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("remaining profiles = %d, want 1", count)
	}
}
