package cmd

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/jiahui/grampoint/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "grampoint",
	Short: "AI grammar practice assistant",
	Long:  "Grampoint — terminal grammar coach that generates targeted exercises, grades them with an LLM, and tracks your weak points.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

func Execute() error {
	// A .env in the working directory is a convenience, not a requirement.
	_ = godotenv.Load()
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides GRAMPOINT_DB env var)")

	rootCmd.AddCommand(practiceCmd)
	rootCmd.AddCommand(unitsCmd)
	rootCmd.AddCommand(weakCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then GRAMPOINT_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
