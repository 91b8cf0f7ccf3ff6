package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/abhinav-rk/studyloop/internal/selfupdate"
	"github.com/spf13/cobra"
)

var updateTargetVersion string

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update studyloop to the latest version",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), 2*time.Minute)
		defer cancel()

		checker := selfupdate.NewChecker(selfupdate.WithTimeout(2 * time.Minute))
		err := checker.Update(ctx, &selfupdate.UpdateInput{
			CurrentVersion: resolvedVersion(),
			TargetVersion:  updateTargetVersion,
		}, func(p selfupdate.UpdateProgress) {
			fmt.Println(p.Message)
		})

		switch {
		case err == nil:
			return nil
		case errors.Is(err, selfupdate.ErrDevBuild):
			fmt.Println("Cannot update a development build. Install a release build first.")
			return nil
		case errors.Is(err, selfupdate.ErrAlreadyLatest):
			fmt.Println("Already running the latest version.")
			return nil
		case os.IsPermission(err):
			return fmt.Errorf("%w\n\nTry running: sudo studyloop update", err)
		default:
			return err
		}
	},
}

func init() {
	updateCmd.Flags().StringVar(&updateTargetVersion, "version", "", "update to a specific release tag instead of the latest")
}
