package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all recorded weak points",
	RunE: func(cmd *cobra.Command, args []string) error {
		yes, _ := cmd.Flags().GetBool("yes")
		if !yes {
			return fmt.Errorf("this deletes all weak-point history; re-run with --yes to confirm")
		}

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		if err := st.WeakPointRepo().Reset(); err != nil {
			return fmt.Errorf("reset weak points: %w", err)
		}
		fmt.Println("Weak-point history deleted.")
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("yes", false, "confirm deletion")
}
