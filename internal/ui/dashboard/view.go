package dashboard

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhinav-rk/studyloop/internal/insight"
	"github.com/abhinav-rk/studyloop/internal/roadmap"
	"github.com/abhinav-rk/studyloop/internal/ui/components"
	"github.com/abhinav-rk/studyloop/internal/ui/layout"
	"github.com/abhinav-rk/studyloop/internal/ui/theme"
)

func (m *Model) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	completed, total := 0, 0
	if m.roadmap != nil {
		total = len(m.roadmap.Tasks)
		for _, t := range m.roadmap.Tasks {
			if t.Status == roadmap.StatusCompleted {
				completed++
			}
		}
	}

	title := m.spin.View() + "watching"
	header := layout.RenderHeader(title, completed, total, m.width)
	footer := layout.RenderFooter(m.keyHints(), m.width)

	contentHeight := m.height - lipgloss.Height(header) - lipgloss.Height(footer)
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.renderContent(m.width, contentHeight)
	v.SetContent(layout.RenderFrame(header, content, footer, m.width, m.height))
	return v
}

func (m *Model) renderContent(width, height int) string {
	if m.loadErr != nil {
		return theme.Negative.Render("  load error: " + m.loadErr.Error())
	}
	if m.bundle == nil {
		return theme.Hint.Render("  No activity recorded yet. Log events with: studyloop log")
	}

	half := width / 2

	left := lipgloss.JoinVertical(lipgloss.Left,
		m.renderScores(half-4),
		"",
		m.renderTask(half-4),
	)
	right := lipgloss.JoinVertical(lipgloss.Left,
		m.renderInsights(half-4),
		"",
		m.renderCompletions(half-4),
	)

	return lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.NewStyle().Width(half).Render(left),
		lipgloss.NewStyle().Width(width-half).Render(right),
	)
}

func (m *Model) renderScores(width int) string {
	b := m.bundle

	var rows []string
	rows = append(rows, theme.Title.Render("Scores"))
	rows = append(rows, components.NewScoreBar("Engagement ", b.EngagementScore, true, width).View())
	rows = append(rows, components.NewScoreBar("Consistency", b.ConsistencyScore, true, width).View())
	rows = append(rows, components.NewScoreBar("Hands-on   ", b.HandsOnRate, true, width).View())
	rows = append(rows, "")
	rows = append(rows, theme.Body.Render(fmt.Sprintf("%d sessions, %.1f min avg, %d active days",
		b.TotalSessions, b.AvgDuration, b.ActiveDays)))
	if b.ExecutionKnown {
		rows = append(rows, theme.Body.Render(fmt.Sprintf("completion %.0f%%, abandonment %.0f%%",
			b.CompletionRate*100, b.AbandonRate*100)))
	}

	return theme.Card.Width(width).Render(strings.Join(rows, "\n"))
}

func (m *Model) renderInsights(width int) string {
	var rows []string
	rows = append(rows, theme.Title.Render("Insights"))

	if len(m.insights) == 0 {
		rows = append(rows, theme.Hint.Render("none yet"))
	}
	for _, ins := range m.insights {
		style := theme.Pending
		switch ins.Kind {
		case insight.Strength:
			style = theme.Positive
		case insight.Weakness, insight.Risk:
			style = theme.Negative
		case insight.Opportunity:
			style = theme.Warning
		}
		rows = append(rows, style.Render(string(ins.Kind))+theme.Body.Render(": "+ins.Reason))
	}

	return theme.Card.Width(width).Render(strings.Join(rows, "\n"))
}

func (m *Model) renderTask(width int) string {
	var rows []string
	rows = append(rows, theme.Title.Render("Current Task"))

	// Current has a nil-receiver guard, so a missing roadmap reads as nil.
	cur := m.roadmap.Current()
	switch {
	case m.roadmap == nil || len(m.roadmap.Tasks) == 0:
		rows = append(rows, theme.Hint.Render("no roadmap; press g to generate"))
	case cur == nil:
		rows = append(rows, theme.Positive.Render("roadmap complete"))
	default:
		rows = append(rows, theme.Body.Render(cur.Title))
		if cur.Description != "" {
			rows = append(rows, theme.Hint.Render(cur.Description))
		}
		rows = append(rows, theme.Pending.Render("why: "+cur.Reason))
	}

	return theme.Card.Width(width).Render(strings.Join(rows, "\n"))
}

func (m *Model) renderCompletions(width int) string {
	var rows []string
	rows = append(rows, theme.Title.Render("Completed"))

	if len(m.completions) == 0 {
		rows = append(rows, theme.Hint.Render("nothing completed this session"))
	}
	for _, c := range m.completions {
		style := theme.Pending
		switch c.Signal {
		case roadmap.SignalSuccess:
			style = theme.Positive
		case roadmap.SignalFail:
			style = theme.Negative
		}
		rows = append(rows, theme.Body.Render(c.At.Format("15:04:05")+"  "+c.Title)+
			"  "+style.Render(string(c.Signal)))
	}

	return theme.Card.Width(width).Render(strings.Join(rows, "\n"))
}
