package metrics

import "fmt"

// Category names for the display bundle.
const (
	CategoryEngagement     = "engagement"
	CategoryConsistency    = "consistency"
	CategoryCollaboration  = "collaboration"
	CategoryParticipation  = "participation"
	CategoryEngagementMode = "engagementMode"
	CategoryHelpSeeking    = "helpSeeking"
	CategoryRhythm         = "rhythm"
	CategoryExecution      = "execution"
)

// Metric labels inside each category. The insight rules look these up in
// the display bundle and parse the leading numeral back out, so label and
// format changes are threshold-rule changes too.
const (
	LabelTotalSessions = "Total Sessions"
	LabelAvgDuration   = "Avg Duration"
	LabelInteractRate  = "Interact Rate"
	LabelDecayPoint    = "Decay Point"
	LabelActiveDays    = "Active Days"
	LabelLongestGap    = "Longest Gap"
	LabelCollabRatio   = "Collab Ratio"
	LabelMessages      = "Messages"
	LabelMsgsPerSess   = "Msgs/Session"
	LabelSilentRatio   = "Silent Ratio"
	LabelHandsOnRate   = "Hands-on Rate"
	LabelHelpActions   = "Help Actions"
	LabelClustering    = "Clustering"
	LabelFrequency     = "Frequency"
	LabelCompletion    = "Completion"
	LabelAbandonment   = "Abandonment"
)

// Display renders the bundle as category -> label -> formatted value.
// Ratios are shown as percentages; raw 0..1 scores stay on the Bundle.
func (b *Bundle) Display() map[string]map[string]string {
	if b == nil {
		return nil
	}

	d := map[string]map[string]string{
		CategoryEngagement: {
			LabelTotalSessions: fmt.Sprintf("%d sessions", b.TotalSessions),
			LabelAvgDuration:   fmt.Sprintf("%.1f min", b.AvgDuration),
			LabelInteractRate:  fmt.Sprintf("%.2f /min", b.InteractRate),
			LabelDecayPoint:    fmt.Sprintf("%.1f min", b.DecayPoint),
		},
		CategoryConsistency: {
			LabelActiveDays: fmt.Sprintf("%d days", b.ActiveDays),
			LabelLongestGap: fmt.Sprintf("%d days", b.LongestGapDays),
		},
		CategoryCollaboration: {
			LabelCollabRatio: fmt.Sprintf("%.1f%%", b.CollabRatio*100),
		},
		CategoryParticipation: {
			LabelMessages:    fmt.Sprintf("%d msgs", b.MessageCount),
			LabelMsgsPerSess: fmt.Sprintf("%.1f /session", b.MsgsPerSession),
			LabelSilentRatio: fmt.Sprintf("%.1f%%", b.SilentRatio*100),
		},
		CategoryEngagementMode: {
			LabelHandsOnRate: fmt.Sprintf("%.1f%%", b.HandsOnRate*100),
		},
		CategoryHelpSeeking: {
			LabelHelpActions: fmt.Sprintf("%.2f /session", b.HelpActions),
		},
		CategoryRhythm: {
			LabelClustering: fmt.Sprintf("%.1f%%", b.ClusterRatio*100),
			LabelFrequency:  fmt.Sprintf("%.1f /day", b.Frequency),
		},
	}

	if b.ExecutionKnown {
		d[CategoryExecution] = map[string]string{
			LabelCompletion:  fmt.Sprintf("%.1f%%", b.CompletionRate*100),
			LabelAbandonment: fmt.Sprintf("%.1f%%", b.AbandonRate*100),
		}
	}

	return d
}
