package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/abhinav-rk/studyloop/internal/metrics"
	"github.com/abhinav-rk/studyloop/internal/roadmap"
	"github.com/spf13/cobra"
)

var roadmapCmd = &cobra.Command{
	Use:   "roadmap",
	Short: "Generate and track the adaptive task roadmap",
}

var roadmapGenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a fresh roadmap from current behavior",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx := cmd.Context()
		events, err := s.EventRepo().Events(ctx)
		if err != nil {
			return fmt.Errorf("load events: %w", err)
		}

		profiles := s.ProfileRepo()
		prev, err := profiles.Roadmap(ctx)
		if err != nil {
			return fmt.Errorf("load roadmap: %w", err)
		}
		history, err := profiles.ActionHistory(ctx)
		if err != nil {
			return fmt.Errorf("load action history: %w", err)
		}

		now := time.Now()
		bundle := metrics.Compute(events, prev.Stats(now))
		rm, updated := roadmap.Generate(bundle, history, now)

		if err := profiles.SaveRoadmap(ctx, rm); err != nil {
			return fmt.Errorf("save roadmap: %w", err)
		}
		if err := profiles.SaveActionHistory(ctx, updated); err != nil {
			return fmt.Errorf("save action history: %w", err)
		}

		if len(rm.Tasks) == 0 {
			fmt.Println("No tasks selected; every mapped action was shown recently.")
			return nil
		}

		fmt.Printf("Generated %d task(s):\n\n", len(rm.Tasks))
		printTasks(rm)
		return nil
	},
}

var roadmapShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current roadmap",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		rm, err := s.ProfileRepo().Roadmap(cmd.Context())
		if err != nil {
			return fmt.Errorf("load roadmap: %w", err)
		}
		if rm == nil || len(rm.Tasks) == 0 {
			fmt.Println("No roadmap yet. Generate one with: studyloop roadmap generate")
			return nil
		}

		fmt.Printf("Roadmap generated %s\n\n", rm.GeneratedAt.Local().Format("2006-01-02 15:04"))
		printTasks(rm)

		stats := rm.Stats(time.Now())
		if stats != nil {
			fmt.Printf("\n%d total, %d completed, %d abandoned\n",
				stats.Total, stats.Completed, stats.Abandoned)
		}
		return nil
	},
}

var roadmapWatchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Poll the event log and auto-complete tasks",
	Long: "Polls the event log against the current task's success criteria and\n" +
		"completes tasks as they are earned. Runs until interrupted.",
	RunE: func(cmd *cobra.Command, args []string) error {
		interval, _ := cmd.Flags().GetDuration("interval")

		s, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		w := roadmap.NewWatcher(s.EventRepo(), s.ProfileRepo(), interval)
		w.OnComplete = func(t roadmap.Task) {
			fmt.Printf("[%s] completed %q (signal: %s)\n",
				time.Now().Format("15:04:05"), t.Title, t.Signal)
		}

		fmt.Printf("Watching for task completion every %s. Ctrl-C to stop.\n", interval)
		return w.Run(cmd.Context())
	},
}

var roadmapSimulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Synthesize events that satisfy the current task",
	Long: "Appends a synthetic session satisfying the current task's success\n" +
		"criteria, then runs one watcher tick. Debug affordance for exercising\n" +
		"the completion loop without real usage.",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		w := roadmap.NewWatcher(s.EventRepo(), s.ProfileRepo(), 0)
		task, err := roadmap.Simulate(cmd.Context(), w)
		if err != nil {
			return err
		}

		fmt.Printf("Completed %q (signal: %s)\n", task.Title, task.Signal)
		return nil
	},
}

func printTasks(rm *roadmap.Roadmap) {
	for i, t := range rm.Tasks {
		marker := "[ ]"
		if t.Status == roadmap.StatusCompleted {
			marker = "[x]"
		}
		fmt.Printf("%s %d. %s (%s)\n", marker, i+1, t.Title, t.Kind)
		if t.Description != "" {
			fmt.Printf("       %s\n", t.Description)
		}
		fmt.Printf("       why: %s\n", t.Reason)
		if t.Duration > 0 {
			fmt.Printf("       duration: %d min\n", t.Duration)
		}
		if t.Status == roadmap.StatusCompleted && t.CompletedAt != nil {
			fmt.Printf("       completed %s, signal: %s\n",
				t.CompletedAt.Local().Format("2006-01-02 15:04"), t.Signal)
		}
		if i < len(rm.Tasks)-1 {
			fmt.Println(strings.Repeat(" ", 4) + strings.Repeat("·", 3))
		}
	}
}

func init() {
	roadmapWatchCmd.Flags().DurationP("interval", "i", roadmap.DefaultPollInterval, "Poll interval")

	roadmapCmd.AddCommand(roadmapGenerateCmd)
	roadmapCmd.AddCommand(roadmapShowCmd)
	roadmapCmd.AddCommand(roadmapWatchCmd)
	roadmapCmd.AddCommand(roadmapSimulateCmd)
}
