// Package learnstate maps a metrics bundle to a compact categorical
// learning state and from there to pedagogical decisions. Both layers are
// pure functions evaluated strictly by threshold.
package learnstate

import "github.com/abhinav-rk/studyloop/internal/metrics"

// Focus classifies session length patterns.
type Focus string

const (
	FocusShortBurst Focus = "short_burst"
	FocusSustained  Focus = "sustained"
	FocusBalanced   Focus = "balanced"
)

// Consistency classifies the study cadence.
type Consistency string

const (
	ConsistencyIrregular  Consistency = "irregular"
	ConsistencyConsistent Consistency = "consistent"
)

// Collaboration classifies solo versus group preference.
type Collaboration string

const (
	CollabIndependent   Collaboration = "independent"
	CollabCollaborative Collaboration = "collaborative"
)

// EngagementMode classifies passive versus hands-on behavior.
type EngagementMode string

const (
	EngagementPassive EngagementMode = "mostly_passive"
	EngagementHandsOn EngagementMode = "hands_on"
)

// HelpSeeking classifies how often the learner asks for help.
type HelpSeeking string

const (
	HelpLow     HelpSeeking = "low"
	HelpHealthy HelpSeeking = "healthy"
)

// Execution classifies roadmap follow-through.
type Execution string

const (
	ExecutionStrong       Execution = "strong"
	ExecutionInconsistent Execution = "inconsistent"
)

// State is the six-axis behavioral summary of a learner.
type State struct {
	Focus          Focus          `json:"focus"`
	Consistency    Consistency    `json:"consistency"`
	Collaboration  Collaboration  `json:"collaboration"`
	EngagementMode EngagementMode `json:"engagement_mode"`
	HelpSeeking    HelpSeeking    `json:"help_seeking"`
	Execution      Execution      `json:"execution"`
}

// Classify derives the learning state from a metrics bundle. A nil bundle
// returns the neutral defaults so downstream layers never see a failure.
func Classify(b *metrics.Bundle) State {
	s := State{
		Focus:          FocusBalanced,
		Consistency:    ConsistencyIrregular,
		Collaboration:  CollabIndependent,
		EngagementMode: EngagementPassive,
		HelpSeeking:    HelpLow,
		Execution:      ExecutionInconsistent,
	}
	if b == nil {
		return s
	}

	switch {
	case b.AvgDuration >= 40:
		s.Focus = FocusSustained
	case b.AvgDuration < 20:
		s.Focus = FocusShortBurst
	}

	if b.ActiveDays >= 5 && b.LongestGapDays <= 2 {
		s.Consistency = ConsistencyConsistent
	}

	if b.CollabRatio >= 0.3 {
		s.Collaboration = CollabCollaborative
	}

	if b.HandsOnRate >= 0.4 {
		s.EngagementMode = EngagementHandsOn
	}

	if b.HelpActions >= 0.5 {
		s.HelpSeeking = HelpHealthy
	}

	if b.ExecutionKnown {
		if b.CompletionRate >= 0.8 {
			s.Execution = ExecutionStrong
		}
	} else if b.EngagementScore >= 0.5 {
		// No roadmap yet: lean on engagement as the execution proxy.
		s.Execution = ExecutionStrong
	}

	return s
}
