package cmd

import (
	"fmt"

	"github.com/abhinav-rk/studyloop/internal/ui/dashboard"
	"github.com/spf13/cobra"
)

// runDashboard opens the store and launches the watch dashboard TUI.
func runDashboard(cmd *cobra.Command) error {
	s, err := openStore(cmd)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer s.Close()

	return dashboard.Run(dashboard.Options{
		EventRepo:   s.EventRepo(),
		ProfileRepo: s.ProfileRepo(),
	})
}
