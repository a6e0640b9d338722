package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jiahui/grampoint/internal/selfupdate"
)

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Check whether a newer release is available",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		checker := &selfupdate.Checker{
			Repo:    "jiahui/grampoint",
			Current: version,
		}

		release, newer, err := checker.Check(ctx)
		if err != nil {
			return fmt.Errorf("check for updates: %w", err)
		}
		if release == nil {
			fmt.Println("Cannot check updates for a development build.")
			return nil
		}
		if !newer {
			fmt.Println("Already running the latest version.")
			return nil
		}

		fmt.Printf("A newer version is available: %s\n%s\n", release.Version, release.URL)
		return nil
	},
}
