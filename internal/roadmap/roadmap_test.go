package roadmap

import (
	"testing"
	"time"

	"github.com/abhinav-rk/studyloop/internal/metrics"
)

func TestCurrent(t *testing.T) {
	var nilRoadmap *Roadmap
	if nilRoadmap.Current() != nil {
		t.Error("nil roadmap should have no current task")
	}

	rm := &Roadmap{Tasks: []Task{
		{ID: "a", Status: StatusCompleted},
		{ID: "b", Status: StatusPending},
		{ID: "c", Status: StatusPending},
	}}
	if cur := rm.Current(); cur == nil || cur.ID != "b" {
		t.Errorf("current = %v, want task b", cur)
	}

	rm.Tasks[1].Status = StatusCompleted
	rm.Tasks[2].Status = StatusCompleted
	if rm.Current() != nil {
		t.Error("fully completed roadmap should have no current task")
	}
}

func TestFind(t *testing.T) {
	rm := &Roadmap{Tasks: []Task{{ID: "a"}, {ID: "b"}}}
	if got := rm.Find("b"); got == nil || got.ID != "b" {
		t.Errorf("Find(b) = %v", got)
	}
	if rm.Find("zzz") != nil {
		t.Error("Find of unknown id should return nil")
	}

	// Find must return a pointer into the roadmap so completion
	// mutates the stored task.
	rm.Find("a").Status = StatusCompleted
	if rm.Tasks[0].Status != StatusCompleted {
		t.Error("mutation through Find did not reach the roadmap")
	}
}

func TestStats(t *testing.T) {
	now := time.Date(2026, 3, 20, 12, 0, 0, 0, time.UTC)

	var nilRoadmap *Roadmap
	if nilRoadmap.Stats(now) != nil {
		t.Error("nil roadmap should have nil stats")
	}
	if (&Roadmap{}).Stats(now) != nil {
		t.Error("empty roadmap should have nil stats")
	}

	fresh := now.Add(-24 * time.Hour).UnixMilli()
	stale := now.Add(-8 * 24 * time.Hour).UnixMilli()
	almost := now.Add(-7*24*time.Hour + time.Hour).UnixMilli()

	rm := &Roadmap{Tasks: []Task{
		{ID: "a", Status: StatusCompleted, AssignedAt: stale},
		{ID: "b", Status: StatusPending, AssignedAt: stale},
		{ID: "c", Status: StatusPending, AssignedAt: almost},
		{ID: "d", Status: StatusPending, AssignedAt: fresh},
	}}
	s := rm.Stats(now)
	if s.Total != 4 || s.Completed != 1 || s.Abandoned != 1 {
		t.Errorf("stats = %+v, want total 4, completed 1, abandoned 1", s)
	}
}

func TestGenerate(t *testing.T) {
	now := time.Date(2026, 3, 20, 12, 0, 0, 0, time.UTC)
	rm, history := Generate(nil, nil, now)

	if !rm.GeneratedAt.Equal(now) {
		t.Errorf("GeneratedAt = %v, want %v", rm.GeneratedAt, now)
	}
	if len(rm.Tasks) == 0 || len(rm.Tasks) > 3 {
		t.Fatalf("generated %d tasks, want 1..3", len(rm.Tasks))
	}
	if len(history) < len(rm.Tasks) {
		t.Errorf("history has %d entries for %d tasks", len(history), len(rm.Tasks))
	}

	for _, task := range rm.Tasks {
		if task.Status != StatusPending {
			t.Errorf("task %s status = %s, want pending", task.ID, task.Status)
		}
		if task.AssignedAt != now.UnixMilli() {
			t.Errorf("task %s assigned at %d, want %d", task.ID, task.AssignedAt, now.UnixMilli())
		}
		if task.Title == "" || task.Reason == "" {
			t.Errorf("task %s missing title or reason", task.ID)
		}
		if task.Before.Metrics != nil {
			t.Errorf("task %s snapshot metrics = %v, want nil for empty log", task.ID, task.Before.Metrics)
		}
	}
}

func TestGenerateSnapshotsBundle(t *testing.T) {
	bundle := &metrics.Bundle{EngagementScore: 0.4, HandsOnRate: 0.2}
	rm, _ := Generate(bundle, nil, time.Now())
	for _, task := range rm.Tasks {
		if task.Before.Metrics != bundle {
			t.Errorf("task %s did not snapshot the bundle", task.ID)
		}
	}
}

func TestGrowthSignal(t *testing.T) {
	base := &metrics.Bundle{EngagementScore: 0.5, HandsOnRate: 0.3}
	after := func(eng, hands float64) *metrics.Bundle {
		return &metrics.Bundle{EngagementScore: eng, HandsOnRate: hands}
	}

	tests := []struct {
		name   string
		before *metrics.Bundle
		after  *metrics.Bundle
		want   Signal
	}{
		{"nil before", nil, after(0.9, 0.9), SignalNeutral},
		{"nil after", base, nil, SignalNeutral},
		{"engagement gain", base, after(0.56, 0.3), SignalSuccess},
		{"engagement drop", base, after(0.44, 0.3), SignalFail},
		{"hands-on gain", base, after(0.5, 0.41), SignalSuccess},
		{"engagement just under threshold", base, after(0.549, 0.3), SignalNeutral},
		{"hands-on just under threshold", base, after(0.5, 0.399), SignalNeutral},
		{"small drop", base, after(0.46, 0.3), SignalNeutral},
		{"hands-on gain beats engagement drop", base, after(0.42, 0.45), SignalSuccess},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GrowthSignal(tt.before, tt.after); got != tt.want {
				t.Errorf("GrowthSignal = %s, want %s", got, tt.want)
			}
		})
	}
}
