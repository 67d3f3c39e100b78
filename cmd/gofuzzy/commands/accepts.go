package commands

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"GoFuzzy/internal/automaton"
	"GoFuzzy/internal/distance"
	"GoFuzzy/internal/logger"
)

type acceptance struct {
	Input    string `json:"input"`
	Accepted bool   `json:"accepted"`
	Distance int    `json:"distance"`
	// Reference fields are set with --reference.
	NFAAccepted *bool `json:"nfa_accepted,omitempty"`
	NFAErrors   *int  `json:"nfa_errors,omitempty"`
}

func newAcceptsCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "accepts <pattern> <input>...",
		Short: "Run one Levenshtein automaton over inputs",
		Long: `Accepts determinizes the automaton for pattern and reports which inputs it
accepts. With --reference each input is also matched against the
nondeterministic automaton, which reports the fewest edits it found.`,
		Args: cobra.MinimumNArgs(2),
		RunE: a.runAccepts,
	}
	cmd.Flags().Int("state-limit", 1<<16, "maximum subsets per automaton, 0 for none")
	cmd.Flags().Bool("reference", false, "also match with the nondeterministic automaton")
	cmd.Flags().BoolP("json", "j", false, "output results as JSON")
	return cmd
}

func (a *app) runAccepts(cmd *cobra.Command, args []string) error {
	pattern, inputs := args[0], args[1:]
	k := a.cfg.Threshold

	nfa, err := automaton.NewNFA(pattern, k)
	if err != nil {
		return err
	}
	dfa, err := automaton.Determinize(nfa,
		automaton.WithStateLimit(a.cfg.StateLimit),
		automaton.WithLogger(logger.Logger),
	)
	if err != nil {
		return err
	}

	reference, _ := cmd.Flags().GetBool("reference")
	results := make([]acceptance, len(inputs))
	for i, in := range inputs {
		results[i] = acceptance{
			Input:    in,
			Accepted: automaton.Run(dfa, in),
			Distance: distance.Levenshtein(pattern, in),
		}
		if reference {
			ok, errs := nfa.Match(in)
			results[i].NFAAccepted = &ok
			results[i].NFAErrors = &errs
		}
	}

	out := cmd.OutOrStdout()
	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return errors.Wrap(enc.Encode(map[string]interface{}{
			"pattern":   pattern,
			"threshold": k,
			"states":    dfa.NumStates(),
			"results":   results,
		}), "encode results")
	}

	header := []string{"INPUT", "ACCEPTED", "DISTANCE"}
	if reference {
		header = append(header, "NFA", "NFA ERRORS")
	}
	data := pterm.TableData{header}
	for _, r := range results {
		row := []string{strconv.Quote(r.Input), strconv.FormatBool(r.Accepted), strconv.Itoa(r.Distance)}
		if reference {
			nfaErrs := "-"
			if *r.NFAAccepted {
				nfaErrs = strconv.Itoa(*r.NFAErrors)
			}
			row = append(row, strconv.FormatBool(*r.NFAAccepted), nfaErrs)
		}
		data = append(data, row)
	}
	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return errors.Wrap(err, "render table")
	}
	fmt.Fprint(out, pterm.Info.Sprintfln("%q k=%d: %d states", pattern, k, dfa.NumStates()))
	fmt.Fprintln(out, table)
	return nil
}
