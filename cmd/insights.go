package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/abhinav-rk/studyloop/internal/insight"
	"github.com/abhinav-rk/studyloop/internal/metrics"
	"github.com/spf13/cobra"
)

var kindGlyphs = map[insight.Kind]string{
	insight.Strength:    "+",
	insight.Weakness:    "-",
	insight.Risk:        "!",
	insight.Opportunity: "*",
	insight.Neutral:     "·",
}

var insightsCmd = &cobra.Command{
	Use:   "insights",
	Short: "Show threshold-derived learning insights",
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
		insights := insight.FromBundle(bundle)
		if len(insights) == 0 {
			fmt.Println("No insights yet. Log some study sessions first.")
			return nil
		}

		kindFilter, _ := cmd.Flags().GetString("type")

		shown := 0
		for _, ins := range insights {
			if kindFilter != "" && string(ins.Kind) != kindFilter {
				continue
			}
			glyph := kindGlyphs[ins.Kind]
			fmt.Printf("%s [%s] %s: %s\n", glyph, ins.Kind, ins.Category, ins.Reason)
			if len(ins.MetricRefs) > 0 {
				fmt.Printf("    refs: %s\n", strings.Join(ins.MetricRefs, ", "))
			}
			shown++
		}
		if shown == 0 {
			fmt.Printf("No insights of type %q.\n", kindFilter)
		}
		return nil
	},
}

func init() {
	insightsCmd.Flags().StringP("type", "t", "", "Filter by kind: strength, weakness, risk, opportunity, neutral")
}
