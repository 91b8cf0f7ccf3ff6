package learnstate

import (
	"testing"

	"github.com/abhinav-rk/studyloop/internal/metrics"
)

func TestClassifyNilBundle(t *testing.T) {
	s := Classify(nil)

	want := State{
		Focus:          FocusBalanced,
		Consistency:    ConsistencyIrregular,
		Collaboration:  CollabIndependent,
		EngagementMode: EngagementPassive,
		HelpSeeking:    HelpLow,
		Execution:      ExecutionInconsistent,
	}
	if s != want {
		t.Errorf("Classify(nil) = %+v, want neutral defaults %+v", s, want)
	}
}

func TestClassifyFocus(t *testing.T) {
	tests := []struct {
		avgDuration float64
		want        Focus
	}{
		{45, FocusSustained},
		{40, FocusSustained},
		{39.9, FocusBalanced},
		{20, FocusBalanced},
		{19.9, FocusShortBurst},
		{5, FocusShortBurst},
	}
	for _, tt := range tests {
		s := Classify(&metrics.Bundle{AvgDuration: tt.avgDuration})
		if s.Focus != tt.want {
			t.Errorf("AvgDuration %v: focus = %s, want %s", tt.avgDuration, s.Focus, tt.want)
		}
	}
}

func TestClassifyConsistency(t *testing.T) {
	tests := []struct {
		activeDays int
		gap        int
		want       Consistency
	}{
		{5, 2, ConsistencyConsistent},
		{7, 1, ConsistencyConsistent},
		{4, 1, ConsistencyIrregular},
		{6, 3, ConsistencyIrregular},
	}
	for _, tt := range tests {
		s := Classify(&metrics.Bundle{ActiveDays: tt.activeDays, LongestGapDays: tt.gap})
		if s.Consistency != tt.want {
			t.Errorf("days %d gap %d: consistency = %s, want %s", tt.activeDays, tt.gap, s.Consistency, tt.want)
		}
	}
}

func TestClassifyOtherAxes(t *testing.T) {
	b := &metrics.Bundle{
		CollabRatio: 0.3,
		HandsOnRate: 0.4,
		HelpActions: 0.5,
	}
	s := Classify(b)

	if s.Collaboration != CollabCollaborative {
		t.Errorf("collaboration = %s, want collaborative at the 0.3 boundary", s.Collaboration)
	}
	if s.EngagementMode != EngagementHandsOn {
		t.Errorf("engagement = %s, want hands_on at the 0.4 boundary", s.EngagementMode)
	}
	if s.HelpSeeking != HelpHealthy {
		t.Errorf("help = %s, want healthy at the 0.5 boundary", s.HelpSeeking)
	}
}

func TestClassifyExecution(t *testing.T) {
	// With a roadmap, completion rate decides.
	s := Classify(&metrics.Bundle{ExecutionKnown: true, CompletionRate: 0.8})
	if s.Execution != ExecutionStrong {
		t.Errorf("completion 0.8: execution = %s, want strong", s.Execution)
	}
	s = Classify(&metrics.Bundle{ExecutionKnown: true, CompletionRate: 0.7})
	if s.Execution != ExecutionInconsistent {
		t.Errorf("completion 0.7: execution = %s, want inconsistent", s.Execution)
	}

	// Without a roadmap, engagement stands in.
	s = Classify(&metrics.Bundle{EngagementScore: 0.6})
	if s.Execution != ExecutionStrong {
		t.Errorf("no roadmap, engagement 0.6: execution = %s, want strong", s.Execution)
	}
	s = Classify(&metrics.Bundle{EngagementScore: 0.4})
	if s.Execution != ExecutionInconsistent {
		t.Errorf("no roadmap, engagement 0.4: execution = %s, want inconsistent", s.Execution)
	}

	// A poor completion rate is not rescued by high engagement.
	s = Classify(&metrics.Bundle{ExecutionKnown: true, CompletionRate: 0.2, EngagementScore: 0.9})
	if s.Execution != ExecutionInconsistent {
		t.Errorf("roadmap present overrides engagement proxy: got %s", s.Execution)
	}
}

func TestDecideDefaults(t *testing.T) {
	d := Decide(Classify(nil))

	want := Decisions{
		SessionDesign:         DesignStandard,
		LearningPace:          PaceFlexibleCatchup,
		ActivityBias:          BiasIncreaseHandsOn,
		SupportStyle:          SupportGentleNudges,
		CollaborationPressure: PressureNone,
	}
	if d != want {
		t.Errorf("Decide(neutral) = %+v, want %+v", d, want)
	}
}

func TestDecideMapping(t *testing.T) {
	tests := []struct {
		name  string
		state State
		check func(Decisions) bool
		desc  string
	}{
		{"short burst", State{Focus: FocusShortBurst},
			func(d Decisions) bool { return d.SessionDesign == DesignShorterBlocks }, "shorter_blocks"},
		{"sustained", State{Focus: FocusSustained},
			func(d Decisions) bool { return d.SessionDesign == DesignDeepDive }, "deep_dive_sessions"},
		{"consistent", State{Consistency: ConsistencyConsistent},
			func(d Decisions) bool { return d.LearningPace == PaceSteadyAcceleration }, "steady_acceleration"},
		{"hands on", State{EngagementMode: EngagementHandsOn},
			func(d Decisions) bool { return d.ActivityBias == BiasMaintainActiveTools }, "maintain_active_tools"},
		{"healthy help", State{HelpSeeking: HelpHealthy},
			func(d Decisions) bool { return d.SupportStyle == SupportCollaborativeInquiry }, "collaborative_inquiry"},
		{"collaborative", State{Collaboration: CollabCollaborative},
			func(d Decisions) bool { return d.CollaborationPressure == PressureModerate }, "moderate"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if d := Decide(tt.state); !tt.check(d) {
				t.Errorf("expected %s, got %+v", tt.desc, d)
			}
		})
	}
}
