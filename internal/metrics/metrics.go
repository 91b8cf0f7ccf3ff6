// Package metrics derives behavioral metrics from the raw activity event
// log. Computation is pure and total: the same event list always produces
// the same bundle, and there is no incremental state. Callers that need
// fresh numbers recompute over the full log.
package metrics

import (
	"sort"
	"time"

	"github.com/abhinav-rk/studyloop/internal/activity"
)

// HistogramBuckets is the number of slices each session's span is divided
// into for the in-session activity distribution.
const HistogramBuckets = 10

// clusterGapMinutes is the largest end-to-start gap between consecutive
// sessions that still counts as clustered study.
const clusterGapMinutes = 180.0

// TaskStats summarizes roadmap execution for the execution category.
// The roadmap package produces it; metrics stays independent of roadmap
// types so the dependency points one way.
type TaskStats struct {
	Total     int
	Completed int
	Abandoned int
}

// Bundle is the full derived metrics set. Raw numeric scores live here;
// Display renders the formatted strings the insight rules parse.
type Bundle struct {
	TotalSessions int
	TotalMinutes  float64
	AvgDuration   float64 // minutes per session

	InteractionCount int
	InteractRate     float64 // interactions per minute
	DecayPoint       float64 // minutes into a session where interaction centers

	ActiveDays     int
	LongestGapDays int

	CollabRatio float64 // 0..1, group sessions over total

	MessageCount   int
	MsgsPerSession float64
	SilentRatio    float64 // 0..1, sessions with no chat over total

	HandsOnRate float64 // 0..1, hands-on interactions over all interactions

	HelpActions float64 // questions asked per session

	ClusterRatio float64 // 0..1, clustered consecutive session pairs
	Frequency    float64 // sessions per active day

	// Histogram buckets each interaction into tenths of its session's
	// span: where in a session does activity happen.
	Histogram [HistogramBuckets]int

	// ActivityMap counts events per calendar day for visualization.
	ActivityMap map[string]int

	// Scores kept on a 0..1 scale for programmatic comparison. HandsOnRate
	// above doubles as the third score; it is a fraction everywhere, so a
	// growth delta of 0.10 means ten percentage points.
	EngagementScore  float64 // min(InteractRate*2, 1)
	ConsistencyScore float64 // min(TotalSessions/10, 1)

	// Execution is present only when the learner has a roadmap.
	ExecutionKnown bool
	CompletionRate float64 // 0..1
	AbandonRate    float64 // 0..1
}

// Compute derives the full metrics bundle from the event log. It returns
// nil when the log is empty, and a zero-valued bundle when events exist
// but no session passes the plausibility window. stats may be nil when no
// roadmap has been generated yet; the execution category is then omitted.
func Compute(events []activity.Event, stats *TaskStats) *Bundle {
	if len(events) == 0 {
		return nil
	}

	sessions := activity.ValidSessions(events)
	if len(sessions) == 0 {
		return &Bundle{ActivityMap: map[string]int{}}
	}

	b := &Bundle{
		TotalSessions: len(sessions),
		ActivityMap:   make(map[string]int),
	}

	var filtered []activity.Event
	for _, s := range sessions {
		b.TotalMinutes += s.Duration
		filtered = append(filtered, s.Events...)
	}
	b.AvgDuration = b.TotalMinutes / float64(b.TotalSessions)

	for _, e := range filtered {
		if e.IsInteraction() {
			b.InteractionCount++
		}
		if e.Type == activity.TypeChatMessage {
			b.MessageCount++
		}
		day := e.Time().UTC().Format("2006-01-02")
		b.ActivityMap[day]++
	}
	b.InteractRate = float64(b.InteractionCount) / b.TotalMinutes

	computeConsistency(b, sessions)
	computeCollaboration(b, sessions)
	computeParticipation(b, sessions)
	computeHandsOn(b, filtered)
	computeHelp(b, filtered)
	computeRhythm(b, sessions)
	computeDecay(b, sessions)
	computeHistogram(b, sessions)

	b.EngagementScore = min(b.InteractRate*2, 1)
	b.ConsistencyScore = min(float64(b.TotalSessions)/10, 1)

	if stats != nil && stats.Total > 0 {
		b.ExecutionKnown = true
		b.CompletionRate = float64(stats.Completed) / float64(stats.Total)
		b.AbandonRate = float64(stats.Abandoned) / float64(stats.Total)
	}

	return b
}

// computeConsistency fills active-day and gap metrics from session start dates.
func computeConsistency(b *Bundle, sessions []activity.Session) {
	daySet := make(map[string]time.Time)
	for _, s := range sessions {
		start := time.UnixMilli(s.StartTime).UTC()
		day := start.Truncate(24 * time.Hour)
		daySet[day.Format("2006-01-02")] = day
	}
	b.ActiveDays = len(daySet)

	if len(daySet) <= 1 {
		b.LongestGapDays = 0
		return
	}

	days := make([]time.Time, 0, len(daySet))
	for _, d := range daySet {
		days = append(days, d)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	for i := 1; i < len(days); i++ {
		gap := int(days[i].Sub(days[i-1]).Hours() / 24)
		if gap > b.LongestGapDays {
			b.LongestGapDays = gap
		}
	}
}

func computeCollaboration(b *Bundle, sessions []activity.Session) {
	group := 0
	for _, s := range sessions {
		if s.Mode == activity.ModeGroup {
			group++
		}
	}
	b.CollabRatio = float64(group) / float64(b.TotalSessions)
}

func computeParticipation(b *Bundle, sessions []activity.Session) {
	silent := 0
	for _, s := range sessions {
		hasChat := false
		for _, e := range s.Events {
			if e.Type == activity.TypeChatMessage {
				hasChat = true
				break
			}
		}
		if !hasChat {
			silent++
		}
	}
	b.SilentRatio = float64(silent) / float64(b.TotalSessions)
	b.MsgsPerSession = float64(b.MessageCount) / float64(b.TotalSessions)
}

func computeHandsOn(b *Bundle, events []activity.Event) {
	handsOn := 0
	for _, e := range events {
		if e.IsHandsOn() {
			handsOn++
		}
	}
	denom := b.InteractionCount
	if denom < 1 {
		denom = 1
	}
	b.HandsOnRate = float64(handsOn) / float64(denom)
}

func computeHelp(b *Bundle, events []activity.Event) {
	questions := 0
	for _, e := range events {
		if e.Type == activity.TypeQuestionAsked {
			questions++
		}
	}
	b.HelpActions = float64(questions) / float64(b.TotalSessions)
}

// computeRhythm derives clustering and frequency. Sessions arrive sorted
// by start time from ValidSessions. The early return in Compute guarantees
// TotalSessions > 0 here; only the pair denominator needs a guard.
func computeRhythm(b *Bundle, sessions []activity.Session) {
	pairs := b.TotalSessions - 1
	if pairs > 0 {
		clustered := 0
		for i := 1; i < len(sessions); i++ {
			gap := float64(sessions[i].StartTime-sessions[i-1].EndTime) / 60000.0
			if gap < clusterGapMinutes {
				clustered++
			}
		}
		b.ClusterRatio = float64(clustered) / float64(pairs)
	}

	if b.ActiveDays > 0 {
		b.Frequency = float64(b.TotalSessions) / float64(b.ActiveDays)
	}
}

// computeDecay finds how many minutes into a session interactions happen
// on average. With no interactions it falls back to half the average
// session duration.
func computeDecay(b *Bundle, sessions []activity.Session) {
	var sum float64
	count := 0
	for _, s := range sessions {
		for _, e := range s.Events {
			if e.IsInteraction() {
				sum += float64(e.Timestamp-s.StartTime) / 60000.0
				count++
			}
		}
	}
	if count == 0 {
		b.DecayPoint = b.AvgDuration * 0.5
		return
	}
	b.DecayPoint = sum / float64(count)
}

// computeHistogram buckets every event into tenths of its session's span.
func computeHistogram(b *Bundle, sessions []activity.Session) {
	for _, s := range sessions {
		span := s.EndTime - s.StartTime
		for _, e := range s.Events {
			bucket := 0
			if span > 0 {
				bucket = int(float64(e.Timestamp-s.StartTime) / float64(span) * HistogramBuckets)
			}
			if bucket < 0 {
				bucket = 0
			}
			if bucket > HistogramBuckets-1 {
				bucket = HistogramBuckets - 1
			}
			b.Histogram[bucket]++
		}
	}
}
