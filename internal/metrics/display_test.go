package metrics

import "testing"

func TestDisplayNil(t *testing.T) {
	var b *Bundle
	if got := b.Display(); got != nil {
		t.Fatalf("nil bundle Display = %v, want nil", got)
	}
}

func TestDisplayFormats(t *testing.T) {
	b := &Bundle{
		TotalSessions:  3,
		AvgDuration:    42.25,
		InteractRate:   0.0333,
		DecayPoint:     12.5,
		ActiveDays:     4,
		LongestGapDays: 2,
		CollabRatio:    0.5,
		MessageCount:   7,
		MsgsPerSession: 2.33,
		SilentRatio:    0.333,
		HandsOnRate:    0.25,
		HelpActions:    0.67,
		ClusterRatio:   1,
		Frequency:      0.75,
	}

	d := b.Display()

	tests := []struct {
		category string
		label    string
		want     string
	}{
		{CategoryEngagement, LabelTotalSessions, "3 sessions"},
		{CategoryEngagement, LabelAvgDuration, "42.2 min"},
		{CategoryEngagement, LabelInteractRate, "0.03 /min"},
		{CategoryEngagement, LabelDecayPoint, "12.5 min"},
		{CategoryConsistency, LabelActiveDays, "4 days"},
		{CategoryConsistency, LabelLongestGap, "2 days"},
		{CategoryCollaboration, LabelCollabRatio, "50.0%"},
		{CategoryParticipation, LabelMessages, "7 msgs"},
		{CategoryParticipation, LabelMsgsPerSess, "2.3 /session"},
		{CategoryParticipation, LabelSilentRatio, "33.3%"},
		{CategoryEngagementMode, LabelHandsOnRate, "25.0%"},
		{CategoryHelpSeeking, LabelHelpActions, "0.67 /session"},
		{CategoryRhythm, LabelClustering, "100.0%"},
		{CategoryRhythm, LabelFrequency, "0.8 /day"},
	}

	for _, tt := range tests {
		got, ok := d[tt.category][tt.label]
		if !ok {
			t.Errorf("missing %s / %s", tt.category, tt.label)
			continue
		}
		if got != tt.want {
			t.Errorf("%s / %s = %q, want %q", tt.category, tt.label, got, tt.want)
		}
	}

	if _, ok := d[CategoryExecution]; ok {
		t.Error("execution category should be absent without task stats")
	}
}

func TestDisplayExecution(t *testing.T) {
	b := &Bundle{ExecutionKnown: true, CompletionRate: 0.8, AbandonRate: 0.1}
	d := b.Display()

	if got := d[CategoryExecution][LabelCompletion]; got != "80.0%" {
		t.Errorf("completion = %q, want 80.0%%", got)
	}
	if got := d[CategoryExecution][LabelAbandonment]; got != "10.0%" {
		t.Errorf("abandonment = %q, want 10.0%%", got)
	}
}
