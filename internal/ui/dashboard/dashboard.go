// Package dashboard is the live terminal view of the learning loop:
// metrics, insights, and the roadmap watcher running in one screen.
package dashboard

import (
	"context"
	"fmt"
	"os"
	"time"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhinav-rk/studyloop/internal/insight"
	"github.com/abhinav-rk/studyloop/internal/metrics"
	"github.com/abhinav-rk/studyloop/internal/roadmap"
	"github.com/abhinav-rk/studyloop/internal/store"
	"github.com/abhinav-rk/studyloop/internal/ui/layout"
	"github.com/abhinav-rk/studyloop/internal/ui/theme"
)

// refreshEvery is how often the dashboard recomputes metrics from the log.
const refreshEvery = 2 * time.Second

// Options carries the repositories the dashboard reads from.
type Options struct {
	EventRepo   store.EventRepo
	ProfileRepo store.ProfileRepo
}

// refreshMsg carries a freshly computed snapshot of the derived state.
type refreshMsg struct {
	bundle   *metrics.Bundle
	insights []insight.Insight
	roadmap  *roadmap.Roadmap
	err      error
}

// taskDoneMsg is sent when the background watcher completes a task.
type taskDoneMsg struct {
	task roadmap.Task
}

// refreshTickMsg schedules the next periodic refresh.
type refreshTickMsg time.Time

// completionEntry is one line in the dashboard's completion log.
type completionEntry struct {
	At     time.Time
	Title  string
	Signal roadmap.Signal
}

// Model is the root Bubble Tea model for the watch dashboard.
type Model struct {
	opts Options

	width  int
	height int

	bundle   *metrics.Bundle
	insights []insight.Insight
	roadmap  *roadmap.Roadmap
	loadErr  error

	completions []completionEntry
	done        chan roadmap.Task

	watcher     *roadmap.Watcher
	watcherCtx  context.Context
	watcherStop context.CancelFunc

	spin spinner.Model
}

func newModel(opts Options) *Model {
	ctx, cancel := context.WithCancel(context.Background())

	sp := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(theme.Primary)),
	)

	w := roadmap.NewWatcher(opts.EventRepo, opts.ProfileRepo, roadmap.DefaultPollInterval)
	m := &Model{
		opts:        opts,
		done:        make(chan roadmap.Task, 8),
		watcher:     w,
		watcherCtx:  ctx,
		watcherStop: cancel,
		spin:        sp,
	}
	w.OnComplete = func(t roadmap.Task) {
		select {
		case m.done <- t:
		default:
		}
	}
	return m
}

func (m *Model) Init() tea.Cmd {
	go func() {
		// Watcher errors surface as stale state, not a crash; the
		// dashboard keeps rendering whatever the store last held.
		if err := m.watcher.Run(m.watcherCtx); err != nil && m.watcherCtx.Err() == nil {
			fmt.Fprintln(os.Stderr, "watcher stopped:", err)
		}
	}()

	return tea.Batch(
		m.refreshCmd(),
		m.waitForCompletion(),
		scheduleRefresh(),
		m.spin.Tick,
	)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.watcherStop()
			m.watcher.Stop()
			return m, tea.Quit
		case "g":
			return m, m.generateCmd()
		case "r":
			return m, m.refreshCmd()
		}
		return m, nil

	case refreshMsg:
		m.bundle = msg.bundle
		m.insights = msg.insights
		m.roadmap = msg.roadmap
		m.loadErr = msg.err
		return m, nil

	case taskDoneMsg:
		m.completions = append(m.completions, completionEntry{
			At:     time.Now(),
			Title:  msg.task.Title,
			Signal: msg.task.Signal,
		})
		return m, tea.Batch(m.waitForCompletion(), m.refreshCmd())

	case refreshTickMsg:
		return m, tea.Batch(m.refreshCmd(), scheduleRefresh())

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}

	return m, nil
}

// refreshCmd recomputes the derived state from the event log.
func (m *Model) refreshCmd() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		events, err := m.opts.EventRepo.Events(ctx)
		if err != nil {
			return refreshMsg{err: err}
		}
		rm, err := m.opts.ProfileRepo.Roadmap(ctx)
		if err != nil {
			return refreshMsg{err: err}
		}

		bundle := metrics.Compute(events, rm.Stats(time.Now()))
		return refreshMsg{
			bundle:   bundle,
			insights: insight.FromBundle(bundle),
			roadmap:  rm,
		}
	}
}

// generateCmd builds a fresh roadmap from current behavior.
func (m *Model) generateCmd() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		events, err := m.opts.EventRepo.Events(ctx)
		if err != nil {
			return refreshMsg{err: err}
		}
		prev, err := m.opts.ProfileRepo.Roadmap(ctx)
		if err != nil {
			return refreshMsg{err: err}
		}
		history, err := m.opts.ProfileRepo.ActionHistory(ctx)
		if err != nil {
			return refreshMsg{err: err}
		}

		now := time.Now()
		bundle := metrics.Compute(events, prev.Stats(now))
		rm, updated := roadmap.Generate(bundle, history, now)

		if err := m.opts.ProfileRepo.SaveRoadmap(ctx, rm); err != nil {
			return refreshMsg{err: err}
		}
		if err := m.opts.ProfileRepo.SaveActionHistory(ctx, updated); err != nil {
			return refreshMsg{err: err}
		}

		return refreshMsg{
			bundle:   bundle,
			insights: insight.FromBundle(bundle),
			roadmap:  rm,
		}
	}
}

// waitForCompletion blocks on the watcher's completion channel.
func (m *Model) waitForCompletion() tea.Cmd {
	return func() tea.Msg {
		t, ok := <-m.done
		if !ok {
			return nil
		}
		return taskDoneMsg{task: t}
	}
}

func scheduleRefresh() tea.Cmd {
	return tea.Tick(refreshEvery, func(t time.Time) tea.Msg {
		return refreshTickMsg(t)
	})
}

func (m *Model) keyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "g", Description: "Generate roadmap"},
		{Key: "r", Description: "Refresh"},
		{Key: "q", Description: "Quit"},
	}
}

// Run starts the dashboard program and blocks until it exits.
func Run(opts Options) error {
	p := tea.NewProgram(newModel(opts))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run dashboard: %w", err)
	}
	return nil
}
