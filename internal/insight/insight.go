// Package insight turns a metrics bundle into qualitative SWOT-style tags
// via a fixed threshold table. Rules are independent and non-exclusive:
// any number may fire at once, and a rule that does not trigger emits
// nothing rather than a neutral placeholder.
package insight

import (
	"strconv"
	"strings"

	"github.com/abhinav-rk/studyloop/internal/metrics"
)

// Kind classifies an insight.
type Kind string

const (
	Strength    Kind = "strength"
	Weakness    Kind = "weakness"
	Risk        Kind = "risk"
	Opportunity Kind = "opportunity"
	Neutral     Kind = "neutral"
)

// Insight is one qualitative tag derived from a metric crossing a threshold.
type Insight struct {
	Category   string   `json:"category"`
	Kind       Kind     `json:"type"`
	Reason     string   `json:"reason"`
	MetricRefs []string `json:"metric_refs"`
}

// rule is one threshold check against a display-scale metric value.
// Percent-style metrics are evaluated on the 0..100 scale they display at.
type rule struct {
	category string
	label    string
	fires    func(v float64) bool
	kind     Kind
	reason   string
}

var rules = []rule{
	{metrics.CategoryEngagement, metrics.LabelAvgDuration,
		func(v float64) bool { return v >= 40 }, Strength,
		"sustains long, focused study sessions"},
	{metrics.CategoryEngagement, metrics.LabelAvgDuration,
		func(v float64) bool { return v < 20 }, Weakness,
		"sessions end before deep work can happen"},
	{metrics.CategoryEngagement, metrics.LabelDecayPoint,
		func(v float64) bool { return v < 20 }, Risk,
		"interaction fades early in each session"},
	{metrics.CategoryEngagement, metrics.LabelInteractRate,
		func(v float64) bool { return v < 0.1 }, Risk,
		"very low interaction while studying"},
	{metrics.CategoryConsistency, metrics.LabelActiveDays,
		func(v float64) bool { return v < 5 }, Risk,
		"few active study days"},
	{metrics.CategoryConsistency, metrics.LabelLongestGap,
		func(v float64) bool { return v > 2 }, Risk,
		"long gaps between study days"},
	{metrics.CategoryCollaboration, metrics.LabelCollabRatio,
		func(v float64) bool { return v < 30 }, Neutral,
		"prefers solo study"},
	{metrics.CategoryParticipation, metrics.LabelSilentRatio,
		func(v float64) bool { return v < 20 }, Strength,
		"speaks up in most sessions"},
	{metrics.CategoryParticipation, metrics.LabelMsgsPerSess,
		func(v float64) bool { return v < 1 }, Weakness,
		"rarely communicates during sessions"},
	{metrics.CategoryEngagementMode, metrics.LabelHandsOnRate,
		func(v float64) bool { return v < 40 }, Weakness,
		"mostly passive consumption, little hands-on work"},
	{metrics.CategoryHelpSeeking, metrics.LabelHelpActions,
		func(v float64) bool { return v < 0.5 }, Opportunity,
		"asks for help less than once every two sessions"},
	{metrics.CategoryRhythm, metrics.LabelClustering,
		func(v float64) bool { return v > 40 }, Neutral,
		"study happens in tight bursts"},
	{metrics.CategoryRhythm, metrics.LabelFrequency,
		func(v float64) bool { return v < 1 }, Risk,
		"less than one session per active day"},
	{metrics.CategoryExecution, metrics.LabelCompletion,
		func(v float64) bool { return v > 80 }, Strength,
		"finishes what the roadmap assigns"},
	{metrics.CategoryExecution, metrics.LabelAbandonment,
		func(v float64) bool { return v < 15 }, Strength,
		"rarely abandons assigned tasks"},
}

// FromBundle evaluates the rule table against a bundle. A nil bundle (no
// events at all) yields no insights. Execution rules only run when the
// bundle carries execution data.
func FromBundle(b *metrics.Bundle) []Insight {
	if b == nil {
		return nil
	}
	return evaluate(displayValues(b), b.ExecutionKnown)
}

// FromDisplay evaluates the rule table against an already-formatted
// display bundle, parsing the leading numeral out of each value. Used
// when only the persisted display form is available.
func FromDisplay(d map[string]map[string]string) []Insight {
	if d == nil {
		return nil
	}
	vals := make(map[string]float64)
	for _, labels := range d {
		for label, s := range labels {
			if v, ok := ParseLeading(s); ok {
				vals[label] = v
			}
		}
	}
	_, hasExec := d[metrics.CategoryExecution]
	return evaluate(vals, hasExec)
}

func evaluate(vals map[string]float64, hasExecution bool) []Insight {
	var out []Insight
	for _, r := range rules {
		if r.category == metrics.CategoryExecution && !hasExecution {
			continue
		}
		v, ok := vals[r.label]
		if !ok {
			continue
		}
		if r.fires(v) {
			out = append(out, Insight{
				Category:   r.category,
				Kind:       r.kind,
				Reason:     r.reason,
				MetricRefs: []string{r.label},
			})
		}
	}
	return out
}

// displayValues produces the same numbers Display would show, without the
// string round-trip, so thresholds are exact at the boundary.
func displayValues(b *metrics.Bundle) map[string]float64 {
	return map[string]float64{
		metrics.LabelTotalSessions: float64(b.TotalSessions),
		metrics.LabelAvgDuration:   b.AvgDuration,
		metrics.LabelInteractRate:  b.InteractRate,
		metrics.LabelDecayPoint:    b.DecayPoint,
		metrics.LabelActiveDays:    float64(b.ActiveDays),
		metrics.LabelLongestGap:    float64(b.LongestGapDays),
		metrics.LabelCollabRatio:   b.CollabRatio * 100,
		metrics.LabelMessages:      float64(b.MessageCount),
		metrics.LabelMsgsPerSess:   b.MsgsPerSession,
		metrics.LabelSilentRatio:   b.SilentRatio * 100,
		metrics.LabelHandsOnRate:   b.HandsOnRate * 100,
		metrics.LabelHelpActions:   b.HelpActions,
		metrics.LabelClustering:    b.ClusterRatio * 100,
		metrics.LabelFrequency:     b.Frequency,
		metrics.LabelCompletion:    b.CompletionRate * 100,
		metrics.LabelAbandonment:   b.AbandonRate * 100,
	}
}

// ParseLeading extracts the leading numeral from a formatted metric value,
// e.g. "45.0 min" -> 45.0 and "33.3%" -> 33.3.
func ParseLeading(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	end := 0
	for end < len(s) {
		c := s[end]
		if c >= '0' && c <= '9' || c == '.' || (end == 0 && c == '-') {
			end++
			continue
		}
		break
	}
	if end == 0 {
		return 0, false
	}
	v, err := strconv.ParseFloat(s[:end], 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
