package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/abhinav-rk/studyloop/internal/insight"
	"github.com/abhinav-rk/studyloop/internal/llm"
	"github.com/abhinav-rk/studyloop/internal/metrics"
	"github.com/abhinav-rk/studyloop/internal/swot"
	"github.com/spf13/cobra"
)

// swotMaxAge is how long a cached SWOT document stays fresh.
const swotMaxAge = 24 * time.Hour

var swotCmd = &cobra.Command{
	Use:   "swot",
	Short: "Generate the SWOT learning narrative",
	RunE: func(cmd *cobra.Command, args []string) error {
		refresh, _ := cmd.Flags().GetBool("refresh")

		s, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx := cmd.Context()
		profiles := s.ProfileRepo()

		// Serve the cached document while it's fresh.
		if !refresh {
			profile, err := profiles.Load(ctx)
			if err != nil {
				return fmt.Errorf("load profile: %w", err)
			}
			if profile.Swot != nil && profile.SwotUpdatedAt != nil &&
				time.Since(*profile.SwotUpdatedAt) < swotMaxAge {
				fmt.Printf("(cached, generated %s; --refresh to regenerate)\n\n",
					profile.SwotUpdatedAt.Local().Format("2006-01-02 15:04"))
				printSwot(profile.Swot)
				return nil
			}
		}

		events, err := s.EventRepo().Events(ctx)
		if err != nil {
			return fmt.Errorf("load events: %w", err)
		}
		rm, err := profiles.Roadmap(ctx)
		if err != nil {
			return fmt.Errorf("load roadmap: %w", err)
		}

		bundle := metrics.Compute(events, rm.Stats(time.Now()))
		insights := insight.FromBundle(bundle)
		evolution := swot.EvolutionContext(rm)

		var doc *swot.Document
		provider, err := llm.NewProviderFromEnv(ctx, s.EventRepo())
		if err != nil {
			fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
			fmt.Fprintln(os.Stderr, "Using the static fallback narrative.")
			doc = swot.Fallback()
		} else {
			svc := swot.NewService(provider, swot.DefaultServiceConfig())
			doc, _ = svc.Generate(ctx, insights, evolution)
		}

		// Cache the result whichever path produced it.
		profile, err := profiles.Load(ctx)
		if err != nil {
			return fmt.Errorf("load profile: %w", err)
		}
		now := time.Now()
		profile.Swot = doc
		profile.SwotUpdatedAt = &now
		if err := profiles.Save(ctx, profile); err != nil {
			return fmt.Errorf("save profile: %w", err)
		}

		printSwot(doc)
		return nil
	},
}

func printSwot(doc *swot.Document) {
	printSwotCategory("Strengths", doc.Strengths)
	printSwotCategory("Weaknesses", doc.Weaknesses)
	printSwotCategory("Opportunities", doc.Opportunities)
	printSwotCategory("Threats", doc.Threats)
}

func printSwotCategory(title string, entries []swot.Entry) {
	fmt.Println(title)
	fmt.Println(strings.Repeat("─", len(title)))
	for _, e := range entries {
		fmt.Printf("  • %s\n", e.Insight)
		if e.Explanation != "" {
			fmt.Printf("    %s\n", e.Explanation)
		}
	}
	fmt.Println()
}

func init() {
	swotCmd.Flags().BoolP("refresh", "r", false, "Regenerate even if a fresh cached document exists")
}
