package swot

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/abhinav-rk/studyloop/internal/insight"
	"github.com/abhinav-rk/studyloop/internal/llm"
	"github.com/abhinav-rk/studyloop/internal/roadmap"
)

// stubProvider returns a canned response or error and records the last
// request and the purpose attached to the context.
type stubProvider struct {
	content     string
	err         error
	lastReq     llm.Request
	lastPurpose string
}

func (s *stubProvider) Generate(ctx context.Context, req llm.Request) (*llm.Response, error) {
	s.lastReq = req
	s.lastPurpose = llm.PurposeFrom(ctx)
	if s.err != nil {
		return nil, s.err
	}
	return &llm.Response{Content: json.RawMessage(s.content), Model: "stub"}, nil
}

func (s *stubProvider) ModelID() string { return "stub" }

func validDocJSON() string {
	doc := Document{
		Strengths: []Entry{
			{Insight: "Deep focus", Explanation: "Your sessions run long and steady."},
			{Insight: "Curiosity", Explanation: "You ask questions when stuck."},
		},
		Weaknesses: []Entry{
			{Insight: "Passive stretches", Explanation: "Long silences inside sessions."},
			{Insight: "Solo habit", Explanation: "You rarely study with others."},
		},
		Opportunities: []Entry{
			{Insight: "Group sessions", Explanation: "One shared session a week would help."},
			{Insight: "Quizzes", Explanation: "Practice tests would firm up recall."},
		},
		Threats: []Entry{
			{Insight: "Burnout", Explanation: "Marathon sessions without breaks wear down."},
			{Insight: "Gaps", Explanation: "Multi-day gaps erode momentum."},
		},
	}
	b, _ := json.Marshal(doc)
	return string(b)
}

func testInsights() []insight.Insight {
	return []insight.Insight{
		{Kind: insight.Strength, Category: "flow_state", Reason: "long average sessions", MetricRefs: []string{"avgSessionDuration=45.0"}},
		{Kind: insight.Weakness, Category: "low_engagement", Reason: "few interactions per minute", MetricRefs: []string{"interactionRate=2.0"}},
	}
}

func TestGenerateLive(t *testing.T) {
	p := &stubProvider{content: validDocJSON()}
	svc := NewService(p, DefaultServiceConfig())

	doc, live := svc.Generate(context.Background(), testInsights(), "")
	if !live {
		t.Fatal("expected a live document")
	}
	if len(doc.Strengths) != 2 || doc.Strengths[0].Insight != "Deep focus" {
		t.Errorf("unexpected document: %+v", doc)
	}
	if p.lastPurpose != "swot" {
		t.Errorf("purpose = %q, want swot", p.lastPurpose)
	}
	if p.lastReq.Schema != ReportSchema {
		t.Error("request missing the report schema")
	}
	if !strings.Contains(p.lastReq.Messages[0].Content, "flow_state") {
		t.Error("prompt should carry the insight categories")
	}
}

func TestGenerateEvolutionPurpose(t *testing.T) {
	p := &stubProvider{content: validDocJSON()}
	svc := NewService(p, DefaultServiceConfig())

	_, live := svc.Generate(context.Background(), testInsights(), "3 of 5 tasks completed")
	if !live {
		t.Fatal("expected a live document")
	}
	if p.lastPurpose != "swot-evolution" {
		t.Errorf("purpose = %q, want swot-evolution", p.lastPurpose)
	}
	if !strings.Contains(p.lastReq.Messages[0].Content, "3 of 5 tasks completed") {
		t.Error("prompt should carry the evolution context")
	}
}

func TestGenerateFallsBack(t *testing.T) {
	tests := []struct {
		name string
		stub *stubProvider
	}{
		{"provider error", &stubProvider{err: errors.New("api down")}},
		{"invalid json", &stubProvider{content: "not json"}},
		{"thin categories", &stubProvider{content: `{"strengths":[{"insight":"a","explanation":"b"}],"weaknesses":[],"opportunities":[],"threats":[]}`}},
		{"blank fields", &stubProvider{content: `{"strengths":[{"insight":"","explanation":"b"},{"insight":"a","explanation":"b"}],"weaknesses":[{"insight":"a","explanation":"b"},{"insight":"a","explanation":"b"}],"opportunities":[{"insight":"a","explanation":"b"},{"insight":"a","explanation":"b"}],"threats":[{"insight":"a","explanation":"b"},{"insight":"a","explanation":"b"}]}`}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewService(tt.stub, DefaultServiceConfig())
			doc, live := svc.Generate(context.Background(), testInsights(), "")
			if live {
				t.Fatal("expected the fallback, got a live document")
			}
			if !doc.wellFormed() {
				t.Error("fallback document must itself be well formed")
			}
		})
	}
}

func TestGenerateHonorsTimeout(t *testing.T) {
	cfg := DefaultServiceConfig()
	cfg.Timeout = time.Nanosecond

	blocked := providerFunc(func(ctx context.Context, _ llm.Request) (*llm.Response, error) {
		<-ctx.Done()
		return nil, ctx.Err()
	})
	svc := NewService(blocked, cfg)

	doc, live := svc.Generate(context.Background(), testInsights(), "")
	if live {
		t.Fatal("expected the fallback on timeout")
	}
	if doc == nil {
		t.Fatal("fallback document missing")
	}
}

type providerFunc func(ctx context.Context, req llm.Request) (*llm.Response, error)

func (f providerFunc) Generate(ctx context.Context, req llm.Request) (*llm.Response, error) {
	return f(ctx, req)
}

func (f providerFunc) ModelID() string { return "func" }

func TestFallbackShape(t *testing.T) {
	if !Fallback().wellFormed() {
		t.Error("fallback must satisfy the document contract")
	}
}

func TestBuildUserMessage(t *testing.T) {
	msg, err := buildUserMessage(testInsights(), "")
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	for _, want := range []string{"[strength] flow_state", "long average sessions", "avgSessionDuration=45.0"} {
		if !strings.Contains(msg, want) {
			t.Errorf("prompt missing %q:\n%s", want, msg)
		}
	}
	if strings.Contains(msg, "evolution context") {
		t.Error("first-pass prompt should not mention evolution")
	}

	msg, err = buildUserMessage(testInsights(), "2 of 3 tasks completed")
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if !strings.Contains(msg, "2 of 3 tasks completed") {
		t.Error("evolution prompt missing the context line")
	}
}

func TestEvolutionContext(t *testing.T) {
	if got := EvolutionContext(nil); got != "" {
		t.Errorf("nil roadmap: %q, want empty", got)
	}
	if got := EvolutionContext(&roadmap.Roadmap{}); got != "" {
		t.Errorf("empty roadmap: %q, want empty", got)
	}

	pendingOnly := &roadmap.Roadmap{Tasks: []roadmap.Task{
		{Status: roadmap.StatusPending},
		{Status: roadmap.StatusPending},
	}}
	if got := EvolutionContext(pendingOnly); !strings.Contains(got, "none completed") {
		t.Errorf("pending-only summary = %q", got)
	}

	mixed := &roadmap.Roadmap{Tasks: []roadmap.Task{
		{Status: roadmap.StatusCompleted, Signal: roadmap.SignalSuccess},
		{Status: roadmap.StatusCompleted, Signal: roadmap.SignalFail},
		{Status: roadmap.StatusCompleted, Signal: roadmap.SignalNeutral},
		{Status: roadmap.StatusPending},
	}}
	got := EvolutionContext(mixed)
	if !strings.Contains(got, "3 of 4") {
		t.Errorf("summary = %q, want completion ratio 3 of 4", got)
	}
	if !strings.Contains(got, "1 showed measurable behavioral improvement, 1 showed regression") {
		t.Errorf("summary = %q, want signal counts", got)
	}
}
