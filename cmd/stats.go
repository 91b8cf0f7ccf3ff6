package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/abhinav-rk/studyloop/internal/metrics"
	"github.com/spf13/cobra"
)

// displayOrder fixes category and label ordering for terminal output;
// the display bundle itself is an unordered map.
var displayOrder = []struct {
	category string
	labels   []string
}{
	{metrics.CategoryEngagement, []string{metrics.LabelTotalSessions, metrics.LabelAvgDuration, metrics.LabelInteractRate, metrics.LabelDecayPoint}},
	{metrics.CategoryConsistency, []string{metrics.LabelActiveDays, metrics.LabelLongestGap}},
	{metrics.CategoryCollaboration, []string{metrics.LabelCollabRatio}},
	{metrics.CategoryParticipation, []string{metrics.LabelMessages, metrics.LabelMsgsPerSess, metrics.LabelSilentRatio}},
	{metrics.CategoryEngagementMode, []string{metrics.LabelHandsOnRate}},
	{metrics.CategoryHelpSeeking, []string{metrics.LabelHelpActions}},
	{metrics.CategoryRhythm, []string{metrics.LabelClustering, metrics.LabelFrequency}},
	{metrics.CategoryExecution, []string{metrics.LabelCompletion, metrics.LabelAbandonment}},
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show derived learning metrics",
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

		rm, err := s.ProfileRepo().Roadmap(ctx)
		if err != nil {
			return fmt.Errorf("load roadmap: %w", err)
		}

		bundle := metrics.Compute(events, rm.Stats(time.Now()))
		if bundle == nil {
			fmt.Println("No activity recorded yet. Log events with: studyloop log")
			return nil
		}

		d := bundle.Display()
		for _, cat := range displayOrder {
			labels, ok := d[cat.category]
			if !ok {
				continue
			}
			fmt.Println(titleCase(cat.category))
			fmt.Println(strings.Repeat("─", 40))
			for _, label := range cat.labels {
				if v, ok := labels[label]; ok {
					fmt.Printf("  %-16s %s\n", label, v)
				}
			}
			fmt.Println()
		}

		fmt.Println("Scores")
		fmt.Println(strings.Repeat("─", 40))
		fmt.Printf("  %-16s %.2f\n", "Engagement", bundle.EngagementScore)
		fmt.Printf("  %-16s %.2f\n", "Consistency", bundle.ConsistencyScore)
		fmt.Printf("  %-16s %.2f\n", "Hands-on", bundle.HandsOnRate)

		if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
			fmt.Println()
			fmt.Println("In-session Activity (tenths of session span)")
			fmt.Println(strings.Repeat("─", 40))
			max := 0
			for _, n := range bundle.Histogram {
				if n > max {
					max = n
				}
			}
			for i, n := range bundle.Histogram {
				bar := ""
				if max > 0 {
					bar = strings.Repeat("█", n*20/max)
				}
				fmt.Printf("  %2d0%%  %-20s %d\n", i, bar, n)
			}
		}

		return nil
	},
}

// titleCase renders a camelCase category name as a heading.
func titleCase(category string) string {
	var b strings.Builder
	for i, r := range category {
		switch {
		case i == 0 && r >= 'a' && r <= 'z':
			b.WriteRune(r - ('a' - 'A'))
		case r >= 'A' && r <= 'Z':
			b.WriteRune(' ')
			b.WriteRune(r)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func init() {
	statsCmd.Flags().BoolP("verbose", "v", false, "Include the in-session activity histogram")
}
