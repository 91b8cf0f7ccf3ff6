package insight

import (
	"testing"

	"github.com/abhinav-rk/studyloop/internal/metrics"
)

// quietBundle is shaped so that no rule fires; tests flip one field at a
// time to isolate a single rule.
func quietBundle() *metrics.Bundle {
	return &metrics.Bundle{
		AvgDuration:    30,   // between the 20 weakness and 40 strength cutoffs
		DecayPoint:     25,   // above the 20 risk cutoff
		InteractRate:   0.2,  // above the 0.1 risk cutoff
		ActiveDays:     6,    // above the 5 risk cutoff
		LongestGapDays: 1,    // within the 2 day risk cutoff
		CollabRatio:    0.5,  // above the 30% neutral cutoff
		SilentRatio:    0.5,  // above the 20% strength cutoff
		MsgsPerSession: 2,    // above the 1 weakness cutoff
		HandsOnRate:    0.5,  // above the 40% weakness cutoff
		HelpActions:    1,    // above the 0.5 opportunity cutoff
		ClusterRatio:   0.2,  // within the 40% neutral cutoff
		Frequency:      1.5,  // above the 1 risk cutoff
	}
}

func findKind(insights []Insight, category string, kind Kind) *Insight {
	for i := range insights {
		if insights[i].Category == category && insights[i].Kind == kind {
			return &insights[i]
		}
	}
	return nil
}

func TestFromBundleNil(t *testing.T) {
	if got := FromBundle(nil); got != nil {
		t.Fatalf("nil bundle should yield no insights, got %v", got)
	}
}

func TestFromBundleQuiet(t *testing.T) {
	if got := FromBundle(quietBundle()); len(got) != 0 {
		t.Fatalf("quiet bundle fired %d insights: %v", len(got), got)
	}
}

func TestRuleTable(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*metrics.Bundle)
		category string
		kind     Kind
	}{
		{"long sessions strength", func(b *metrics.Bundle) { b.AvgDuration = 45 }, metrics.CategoryEngagement, Strength},
		{"short sessions weakness", func(b *metrics.Bundle) { b.AvgDuration = 15 }, metrics.CategoryEngagement, Weakness},
		{"early decay risk", func(b *metrics.Bundle) { b.DecayPoint = 10 }, metrics.CategoryEngagement, Risk},
		{"low interaction risk", func(b *metrics.Bundle) { b.InteractRate = 0.05 }, metrics.CategoryEngagement, Risk},
		{"few active days risk", func(b *metrics.Bundle) { b.ActiveDays = 3 }, metrics.CategoryConsistency, Risk},
		{"long gap risk", func(b *metrics.Bundle) { b.LongestGapDays = 4 }, metrics.CategoryConsistency, Risk},
		{"solo preference neutral", func(b *metrics.Bundle) { b.CollabRatio = 0.1 }, metrics.CategoryCollaboration, Neutral},
		{"vocal strength", func(b *metrics.Bundle) { b.SilentRatio = 0.1 }, metrics.CategoryParticipation, Strength},
		{"quiet weakness", func(b *metrics.Bundle) { b.MsgsPerSession = 0.5 }, metrics.CategoryParticipation, Weakness},
		{"passive weakness", func(b *metrics.Bundle) { b.HandsOnRate = 0.2 }, metrics.CategoryEngagementMode, Weakness},
		{"help opportunity", func(b *metrics.Bundle) { b.HelpActions = 0.3 }, metrics.CategoryHelpSeeking, Opportunity},
		{"burst study neutral", func(b *metrics.Bundle) { b.ClusterRatio = 0.6 }, metrics.CategoryRhythm, Neutral},
		{"low frequency risk", func(b *metrics.Bundle) { b.Frequency = 0.5 }, metrics.CategoryRhythm, Risk},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := quietBundle()
			tt.mutate(b)
			got := FromBundle(b)
			if len(got) != 1 {
				t.Fatalf("fired %d insights, want exactly 1: %v", len(got), got)
			}
			if got[0].Category != tt.category || got[0].Kind != tt.kind {
				t.Errorf("got %s/%s, want %s/%s", got[0].Category, got[0].Kind, tt.category, tt.kind)
			}
			if len(got[0].MetricRefs) != 1 {
				t.Errorf("MetricRefs = %v, want one metric label", got[0].MetricRefs)
			}
		})
	}
}

func TestBoundaries(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*metrics.Bundle)
		fires  bool
	}{
		{"avg duration exactly 40 fires strength", func(b *metrics.Bundle) { b.AvgDuration = 40 }, true},
		{"avg duration 39.99 stays quiet", func(b *metrics.Bundle) { b.AvgDuration = 39.99 }, false},
		{"avg duration exactly 20 stays quiet", func(b *metrics.Bundle) { b.AvgDuration = 20 }, false},
		{"avg duration 19.99 fires weakness", func(b *metrics.Bundle) { b.AvgDuration = 19.99 }, true},
		{"gap exactly 2 stays quiet", func(b *metrics.Bundle) { b.LongestGapDays = 2 }, false},
		{"gap 3 fires", func(b *metrics.Bundle) { b.LongestGapDays = 3 }, true},
		{"hands-on exactly 40 percent stays quiet", func(b *metrics.Bundle) { b.HandsOnRate = 0.4 }, false},
		{"help exactly 0.5 stays quiet", func(b *metrics.Bundle) { b.HelpActions = 0.5 }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := quietBundle()
			tt.mutate(b)
			got := FromBundle(b)
			if fired := len(got) > 0; fired != tt.fires {
				t.Errorf("fired = %v, want %v (%v)", fired, tt.fires, got)
			}
		})
	}
}

func TestExecutionRulesGated(t *testing.T) {
	b := quietBundle()
	b.CompletionRate = 0.9
	b.AbandonRate = 0.05

	// Without execution data the completion rules stay off.
	if got := FromBundle(b); len(got) != 0 {
		t.Fatalf("execution rules fired without execution data: %v", got)
	}

	b.ExecutionKnown = true
	got := FromBundle(b)
	if ins := findKind(got, metrics.CategoryExecution, Strength); ins == nil {
		t.Errorf("expected execution strengths, got %v", got)
	}
	if len(got) != 2 {
		t.Errorf("fired %d insights, want 2 (completion + abandonment)", len(got))
	}
}

func TestFromDisplay(t *testing.T) {
	b := quietBundle()
	b.AvgDuration = 45
	b.ExecutionKnown = true
	b.CompletionRate = 0.9
	b.AbandonRate = 0.5 // 50%, above the 15% strength cutoff

	got := FromDisplay(b.Display())

	if ins := findKind(got, metrics.CategoryEngagement, Strength); ins == nil {
		t.Errorf("expected engagement strength from display values, got %v", got)
	}
	if ins := findKind(got, metrics.CategoryExecution, Strength); ins == nil {
		t.Errorf("expected completion strength from display values, got %v", got)
	}
}

func TestParseLeading(t *testing.T) {
	tests := []struct {
		in     string
		want   float64
		wantOK bool
	}{
		{"45.0 min", 45, true},
		{"33.3%", 33.3, true},
		{"0.03 /min", 0.03, true},
		{"3 sessions", 3, true},
		{"-1.5 min", -1.5, true},
		{"  7 msgs", 7, true},
		{"min 45", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		got, ok := ParseLeading(tt.in)
		if ok != tt.wantOK || got != tt.want {
			t.Errorf("ParseLeading(%q) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}
