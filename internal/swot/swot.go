// Package swot expands deterministic insight tags into a natural-language
// SWOT narrative via the LLM layer. The narrative is cosmetic framing: on
// any failure the static fallback document is returned, never an error.
package swot

// Entry is one narrative item in a SWOT category.
type Entry struct {
	Insight     string `json:"insight"`
	Explanation string `json:"explanation"`
}

// Document is the full SWOT narrative. Every category carries at least
// MinEntriesPerCategory entries; anything thinner is rejected and
// replaced by the fallback.
type Document struct {
	Strengths     []Entry `json:"strengths"`
	Weaknesses    []Entry `json:"weaknesses"`
	Opportunities []Entry `json:"opportunities"`
	Threats       []Entry `json:"threats"`
}

// MinEntriesPerCategory is the minimum accepted entries per category.
const MinEntriesPerCategory = 2

// wellFormed checks the strict shape contract on a parsed document.
func (d *Document) wellFormed() bool {
	if d == nil {
		return false
	}
	for _, cat := range [][]Entry{d.Strengths, d.Weaknesses, d.Opportunities, d.Threats} {
		if len(cat) < MinEntriesPerCategory {
			return false
		}
		for _, e := range cat {
			if e.Insight == "" || e.Explanation == "" {
				return false
			}
		}
	}
	return true
}

// Fallback is the static document substituted when the narrative service
// is unavailable or returns a malformed response.
func Fallback() *Document {
	return &Document{
		Strengths: []Entry{
			{Insight: "Showing up", Explanation: "You are logging study activity, which is the foundation every other habit builds on."},
			{Insight: "Self-awareness", Explanation: "Reviewing your own learning data puts you ahead of most learners."},
		},
		Weaknesses: []Entry{
			{Insight: "Not enough data", Explanation: "There is not yet enough recorded activity to name a specific weakness with confidence."},
			{Insight: "Unreviewed habits", Explanation: "Until patterns emerge, unexamined routines may be costing you study time."},
		},
		Opportunities: []Entry{
			{Insight: "Build a streak", Explanation: "A few consecutive active days would sharpen every metric on your dashboard."},
			{Insight: "Try active tools", Explanation: "Whiteboard work and practice quizzes convert passive time into durable learning."},
		},
		Threats: []Entry{
			{Insight: "Inconsistency", Explanation: "Gaps between study days are the most common way momentum quietly dies."},
			{Insight: "Passive drift", Explanation: "Watching and rereading feel productive while retention slips."},
		},
	}
}
