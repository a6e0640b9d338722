package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jiahui/grampoint/internal/app"
	"github.com/jiahui/grampoint/internal/curriculum"
	"github.com/jiahui/grampoint/internal/exercisegen"
	"github.com/jiahui/grampoint/internal/grader"
	"github.com/jiahui/grampoint/internal/llm"
	"github.com/jiahui/grampoint/internal/store"
	"github.com/jiahui/grampoint/internal/weakpoints"
)

var practiceCmd = &cobra.Command{
	Use:   "practice <grammar-point>",
	Short: "Practice a grammar point",
	Long: `Generates a batch of exercises for the named grammar point, walks you
through them, grades the round, and records misses as weak points.

Run 'grampoint units' to see the available grammar points.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		count, _ := cmd.Flags().GetInt("count")

		// The catalog is a menu, not a gate: any non-empty grammar point
		// can be practiced, but catalog spellings are normalized.
		point := strings.TrimSpace(joinArgs(args))
		if point == "" {
			return fmt.Errorf("grammar point is empty (see 'grampoint units')")
		}
		if canonical, err := curriculum.CanonicalGrammarPoint(point); err == nil {
			point = canonical
		}

		a, st, err := buildApp(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		_, err = a.Practice(cmd.Context(), app.PracticeOptions{
			GrammarPoint: point,
			Count:        count,
		})
		return err
	},
}

func init() {
	practiceCmd.Flags().IntP("count", "n", exercisegen.DefaultCount,
		fmt.Sprintf("number of exercises (%d-%d)", exercisegen.MinCount, exercisegen.MaxCount))
}

// buildApp opens the store and wires the generator, grader, and weak-point
// store. The caller closes the returned store.
func buildApp(cmd *cobra.Command) (*app.App, *store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve database path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open store: %w", err)
	}

	provider, err := llm.NewProviderFromEnv(cmd.Context(), st.EventRepo())
	if err != nil {
		st.Close()
		return nil, nil, fmt.Errorf("LLM provider not configured: %w", err)
	}

	return &app.App{
		Generator:  exercisegen.NewLLMGenerator(provider),
		Grader:     grader.NewLLMGrader(provider),
		WeakPoints: weakpoints.NewStore(st.WeakPointRepo()),
		In:         os.Stdin,
		Out:        os.Stdout,
	}, st, nil
}

func joinArgs(args []string) string {
	out := args[0]
	for _, a := range args[1:] {
		out += " " + a
	}
	return out
}
