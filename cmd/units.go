package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jiahui/grampoint/internal/curriculum"
)

var unitsCmd = &cobra.Command{
	Use:   "units",
	Short: "List the teaching units and their grammar points",
	Run: func(cmd *cobra.Command, args []string) {
		for _, u := range curriculum.Units() {
			fmt.Printf("%s — %s\n", u.Name, u.Title)
			for _, gp := range u.GrammarPoints {
				fmt.Printf("  %s\n", gp)
			}
			fmt.Println()
		}
	},
}
