package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jiahui/grampoint/internal/app"
	"github.com/jiahui/grampoint/internal/store"
	"github.com/jiahui/grampoint/internal/weakpoints"
)

var weakCmd = &cobra.Command{
	Use:   "weak",
	Short: "Inspect and work on recorded weak points",
}

var weakListCmd = &cobra.Command{
	Use:   "list",
	Short: "List weak points, most-missed first",
	RunE: func(cmd *cobra.Command, args []string) error {
		wp, st, err := openWeakPoints(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		records := wp.List()
		if len(records) == 0 {
			fmt.Println("No weak points recorded. Nice.")
			return nil
		}

		fmt.Printf("%-40s  %-6s  %s\n", "Grammar point", "Misses", "Last practiced")
		for _, r := range records {
			fmt.Printf("%-40s  %-6d  %s\n",
				r.GrammarPoint, r.ErrorCount, r.LastPracticeDate.Local().Format("2006-01-02"))
		}
		return nil
	},
}

var weakClearCmd = &cobra.Command{
	Use:   "clear <grammar-point>",
	Short: "Remove a weak-point record",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		wp, st, err := openWeakPoints(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		point := joinArgs(args)
		if !wp.Contains(point) {
			fmt.Printf("No weak point recorded for %q.\n", point)
			return nil
		}
		wp.Clear(point)
		fmt.Printf("Cleared %q.\n", point)
		return nil
	},
}

var weakPracticeCmd = &cobra.Command{
	Use:   "practice",
	Short: "Practice your most-missed grammar point",
	RunE: func(cmd *cobra.Command, args []string) error {
		count, _ := cmd.Flags().GetInt("count")

		a, st, err := buildApp(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		records := a.WeakPoints.List()
		if len(records) == 0 {
			fmt.Println("No weak points recorded — pick a point with 'grampoint practice'.")
			return nil
		}

		_, err = a.Practice(cmd.Context(), app.PracticeOptions{
			GrammarPoint: records[0].GrammarPoint,
			Count:        count,
		})
		return err
	},
}

func init() {
	weakPracticeCmd.Flags().IntP("count", "n", 5, "number of exercises")

	weakCmd.AddCommand(weakListCmd)
	weakCmd.AddCommand(weakClearCmd)
	weakCmd.AddCommand(weakPracticeCmd)
}

func openWeakPoints(cmd *cobra.Command) (*weakpoints.Store, *store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve database path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open store: %w", err)
	}
	return weakpoints.NewStore(st.WeakPointRepo()), st, nil
}
