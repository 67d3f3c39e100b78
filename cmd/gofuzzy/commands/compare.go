package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"runtime"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"GoFuzzy/internal/analysis"
	"GoFuzzy/internal/pairs"
)

// ErrInconsistent is returned by compare --strict when some verdict
// contradicts the edit distance.
var ErrInconsistent = errors.New("automaton verdict inconsistent with edit distance")

func newCompareCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare [words...]",
		Short: "Compare every pair of words",
		Long: `Compare builds a Levenshtein automaton for each word and reports, for every
pair, whether the two automata accept a common string. Words come from the
arguments, from --file, or from the words list in the config file.

A match means the words are within 2k edits of each other; words within k
edits always match.`,
		RunE: a.runCompare,
	}
	f := cmd.Flags()
	f.StringP("file", "f", "", "read words from a text file")
	f.String("analyzer", "standard", "analyzer used with --file: standard, whitespace, keyword")
	f.Int("workers", runtime.NumCPU(), "pairs compared concurrently")
	f.Int("cache-size", 256, "automata kept for reuse")
	f.Int("state-limit", 1<<16, "maximum subsets per automaton, 0 for none")
	f.BoolP("json", "j", false, "output results as JSON")
	f.Bool("strict", false, "fail when a verdict contradicts the edit distance")
	f.Bool("matches-only", false, "list matching pairs only")
	return cmd
}

func (a *app) runCompare(cmd *cobra.Command, args []string) error {
	words, err := a.compareWords(cmd, args)
	if err != nil {
		return err
	}
	if len(words) < 2 {
		return errors.WithHint(errors.New("need at least two words"),
			"pass words as arguments, use --file, or set words in the config file")
	}

	eval, err := a.evaluator()
	if err != nil {
		return err
	}
	results, err := eval.CompareAll(cmd.Context(), pairs.Enumerate(words))
	if err != nil {
		return err
	}
	summary := pairs.Summarize(results)

	jsonOutput, _ := cmd.Flags().GetBool("json")
	matchesOnly, _ := cmd.Flags().GetBool("matches-only")
	if matchesOnly {
		results = filterMatched(results)
	}

	out := cmd.OutOrStdout()
	if jsonOutput {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(map[string]interface{}{
			"threshold": eval.Threshold(),
			"results":   results,
			"summary":   summary,
		}); err != nil {
			return errors.Wrap(err, "encode results")
		}
	} else if err := renderResults(out, eval.Threshold(), results, summary); err != nil {
		return err
	}

	if strict, _ := cmd.Flags().GetBool("strict"); strict && summary.Inconsistent > 0 {
		return errors.Wrapf(ErrInconsistent, "%d of %d pairs", summary.Inconsistent, summary.Total)
	}
	return nil
}

// compareWords picks the word source: arguments, then --file, then config.
func (a *app) compareWords(cmd *cobra.Command, args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}
	if path, _ := cmd.Flags().GetString("file"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrapf(err, "read %s", path)
		}
		an, err := analysis.NewRegistry().Get(a.cfg.Analyzer)
		if err != nil {
			return nil, err
		}
		return analysis.Terms(an, string(data)), nil
	}
	return a.cfg.Words, nil
}

func filterMatched(results []pairs.Result) []pairs.Result {
	out := results[:0:0]
	for _, r := range results {
		if r.Matched {
			out = append(out, r)
		}
	}
	return out
}

func renderResults(w io.Writer, k int, results []pairs.Result, s pairs.Summary) error {
	data := pterm.TableData{{"A", "B", "MATCH", "WITNESS", "DISTANCE", "WITHIN K", "CONSISTENT"}}
	for _, r := range results {
		data = append(data, []string{
			r.A, r.B,
			strconv.FormatBool(r.Matched),
			strconv.Quote(r.Witness),
			strconv.Itoa(r.Distance),
			strconv.FormatBool(r.WithinK),
			strconv.FormatBool(r.Consistent),
		})
	}
	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return errors.Wrap(err, "render table")
	}
	fmt.Fprintln(w, table)

	line := fmt.Sprintf("k=%d: %d pairs, %d matched, %d within k, %d agree with distance <= k",
		k, s.Total, s.Matched, s.WithinK, s.Agreed)
	if s.Inconsistent > 0 {
		fmt.Fprint(w, pterm.Warning.Sprintfln("%s, %d inconsistent", line, s.Inconsistent))
	} else {
		fmt.Fprint(w, pterm.Success.Sprintfln("%s", line))
	}
	return nil
}
