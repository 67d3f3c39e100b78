package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"GoFuzzy/internal/distance"
)

func newDistanceCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "distance <a> <b>",
		Short: "Print the edit distance between two words",
		Long: `Distance prints the Levenshtein distance between a and b, counted on code
points. When --threshold is given it also prints whether the words are
within that many edits.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, distance.Levenshtein(args[0], args[1]))
			if cmd.Flags().Changed("threshold") {
				k := a.cfg.Threshold
				fmt.Fprintf(out, "within %d: %t\n", k, distance.Within(args[0], args[1], k))
			}
			return nil
		},
	}
}
