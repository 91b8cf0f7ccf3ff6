package swot

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/abhinav-rk/studyloop/internal/insight"
	"github.com/abhinav-rk/studyloop/internal/roadmap"
)

const systemPrompt = `You are a supportive learning coach. You turn behavioral insight tags into an honest, encouraging SWOT analysis of how a learner studies.

Instructions:
- Write for the learner directly ("you"), in plain language.
- Ground every entry in the supplied insight tags; do not invent behaviors.
- Produce at least two entries per category. When the tags are thin, generalize carefully from what is there rather than fabricating specifics.
- Keep each explanation to one or two sentences.`

var userTemplate = template.Must(template.New("swot").Parse(`Behavioral insight tags derived from this learner's activity log:
{{range .Insights}}- [{{.Kind}}] {{.Category}}: {{.Reason}} ({{index .MetricRefs 0}})
{{end}}{{if .Evolution}}
Prior roadmap performance (evolution context):
{{.Evolution}}
{{end}}
Write the SWOT analysis.`))

type promptData struct {
	Insights  []insight.Insight
	Evolution string
}

// buildUserMessage renders the prompt from insights and optional
// evolution context.
func buildUserMessage(insights []insight.Insight, evolution string) (string, error) {
	var buf bytes.Buffer
	err := userTemplate.Execute(&buf, promptData{Insights: insights, Evolution: evolution})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}

// EvolutionContext summarizes prior roadmap performance for the second
// narrative pass. Returns "" when there is nothing worth mentioning.
func EvolutionContext(rm *roadmap.Roadmap) string {
	if rm == nil || len(rm.Tasks) == 0 {
		return ""
	}

	completed, success, fail := 0, 0, 0
	for _, t := range rm.Tasks {
		if t.Status != roadmap.StatusCompleted {
			continue
		}
		completed++
		switch t.Signal {
		case roadmap.SignalSuccess:
			success++
		case roadmap.SignalFail:
			fail++
		}
	}
	if completed == 0 {
		return fmt.Sprintf("%d tasks assigned, none completed yet.", len(rm.Tasks))
	}

	return fmt.Sprintf(
		"%d of %d assigned tasks completed; %d showed measurable behavioral improvement, %d showed regression.",
		completed, len(rm.Tasks), success, fail)
}
