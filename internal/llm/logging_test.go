package llm

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

type captureRecorder struct {
	logs []RequestLog
	err  error
}

func (r *captureRecorder) AppendLLMRequest(_ context.Context, log RequestLog) error {
	r.logs = append(r.logs, log)
	return r.err
}

func TestLoggingProvider_RecordsSuccess(t *testing.T) {
	inner := NewMockProvider(MockResponse{
		Content: json.RawMessage(`{"ok":true}`),
		Usage:   Usage{InputTokens: 12, OutputTokens: 7, TotalTokens: 19},
	})
	rec := &captureRecorder{}
	p := WithLogging(inner, rec)

	ctx := WithPurpose(context.Background(), "swot")
	_, err := p.Generate(ctx, Request{
		System:   "be helpful",
		Messages: []Message{{Role: RoleUser, Content: "hello"}},
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if len(rec.logs) != 1 {
		t.Fatalf("recorded %d logs, want 1", len(rec.logs))
	}
	log := rec.logs[0]
	if log.Purpose != "swot" {
		t.Errorf("purpose = %q, want swot", log.Purpose)
	}
	if !log.Success {
		t.Error("success not set")
	}
	if log.InputTokens != 12 || log.OutputTokens != 7 {
		t.Errorf("tokens = %d/%d, want 12/7", log.InputTokens, log.OutputTokens)
	}
	if log.ResponseBody != `{"ok":true}` {
		t.Errorf("response body = %q", log.ResponseBody)
	}
	if !strings.Contains(log.RequestBody, "be helpful") || !strings.Contains(log.RequestBody, "hello") {
		t.Errorf("request body missing prompt content:\n%s", log.RequestBody)
	}
}

func TestLoggingProvider_RecordsFailure(t *testing.T) {
	inner := &erroringProvider{err: errors.New("api down")}
	rec := &captureRecorder{}
	p := WithLogging(inner, rec)

	_, err := p.Generate(context.Background(), Request{})
	if err == nil {
		t.Fatal("expected the inner error to propagate")
	}

	if len(rec.logs) != 1 {
		t.Fatalf("recorded %d logs, want 1", len(rec.logs))
	}
	log := rec.logs[0]
	if log.Success {
		t.Error("failed request recorded as success")
	}
	if log.ErrorMessage != "api down" {
		t.Errorf("error message = %q", log.ErrorMessage)
	}
	if log.Purpose != "unknown" {
		t.Errorf("purpose = %q, want unknown without context label", log.Purpose)
	}
}

func TestLoggingProvider_RecorderFailureDoesNotFailRequest(t *testing.T) {
	inner := NewMockProvider(MockResponse{Content: json.RawMessage(`{}`)})
	rec := &captureRecorder{err: errors.New("disk full")}
	p := WithLogging(inner, rec)

	if _, err := p.Generate(context.Background(), Request{}); err != nil {
		t.Fatalf("logging failure leaked into the request: %v", err)
	}
}

func TestLoggingProvider_NilRecorder(t *testing.T) {
	inner := NewMockProvider(MockResponse{Content: json.RawMessage(`{}`)})
	p := WithLogging(inner, nil)

	if _, err := p.Generate(context.Background(), Request{}); err != nil {
		t.Fatalf("nil recorder should disable logging, got %v", err)
	}
}

func TestSerializeRequestIncludesSchema(t *testing.T) {
	body := serializeRequest(Request{
		Messages: []Message{{Role: RoleUser, Content: "prompt"}},
		Schema: &Schema{
			Name:       "swot-report",
			Definition: map[string]any{"type": "object"},
		},
	})
	if !strings.Contains(body, "[schema: swot-report]") {
		t.Errorf("serialized request missing schema header:\n%s", body)
	}
	if !strings.Contains(body, `"type":"object"`) {
		t.Errorf("serialized request missing schema definition:\n%s", body)
	}
}

type erroringProvider struct {
	err error
}

func (p *erroringProvider) Generate(context.Context, Request) (*Response, error) {
	return nil, p.err
}

func (p *erroringProvider) ModelID() string { return "err-model" }
