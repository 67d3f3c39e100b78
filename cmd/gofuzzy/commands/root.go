// Package commands implements the gofuzzy command line.
package commands

import (
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"GoFuzzy/internal/config"
	"GoFuzzy/internal/logger"
	"GoFuzzy/internal/pairs"
)

// flagKeys maps command-line flags to the config keys they override.
var flagKeys = map[string]string{
	"threshold":      "threshold",
	"workers":        "workers",
	"cache-size":     "cache_size",
	"state-limit":    "state_limit",
	"analyzer":       "analyzer",
	"port":           "server.port",
	"max-threshold":  "server.max_threshold",
	"max-body-bytes": "server.max_body_bytes",
	"max-runes":      "server.max_pattern_runes",
	"log-level":      "log.level",
	"log-json":       "log.json",
}

// app carries the configuration resolved before a subcommand runs.
type app struct {
	v   *viper.Viper
	cfg *config.Config
}

// NewRootCommand builds the gofuzzy command tree.
func NewRootCommand() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "gofuzzy",
		Short: "Compare words through Levenshtein automata",
		Long: `gofuzzy builds a Levenshtein automaton for each word, determinizes it and
decides whether two words are close by searching for a string both automata
accept. Every verdict is checked against the exact edit distance.

Examples:
  gofuzzy compare food fxod bar       # compare every pair, k=1
  gofuzzy compare -k 2 -f corpus.txt  # words from a text file
  gofuzzy accepts ab ab abc xy        # run one automaton over inputs
  gofuzzy distance kitten sitting     # edit distance only
  gofuzzy serve --port 8080           # HTTP API`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	pf := root.PersistentFlags()
	pf.String("config", "", "config file (default ./gofuzzy.toml when present)")
	pf.IntP("threshold", "k", 1, "edit distance threshold")
	pf.String("log-level", "info", "log level: debug, info, warn, error")
	pf.Bool("log-json", false, "log as JSON")
	pf.CountP("verbose", "v", "log at debug level")

	root.AddCommand(
		newCompareCommand(a),
		newAcceptsCommand(a),
		newDistanceCommand(a),
		newServeCommand(a),
		newVersionCommand(),
	)
	return root
}

// setup loads the configuration with flags layered on top and starts the
// logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	path, _ := cmd.Flags().GetString("config")
	v, err := config.New(path)
	if err != nil {
		return err
	}

	var bindErr error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if key, ok := flagKeys[f.Name]; ok && bindErr == nil {
			bindErr = v.BindPFlag(key, f)
		}
	})
	if bindErr != nil {
		return errors.Wrap(bindErr, "bind flags")
	}
	if n, _ := cmd.Flags().GetCount("verbose"); n > 0 && !cmd.Flags().Changed("log-level") {
		v.Set("log.level", "debug")
	}

	cfg, err := config.LoadWithViper(v)
	if err != nil {
		return err
	}
	if err := logger.Initialize(cfg.Log.JSON, cfg.Log.Level); err != nil {
		return err
	}
	a.v, a.cfg = v, cfg
	logger.Logger.Debugw("configuration loaded",
		"config_file", v.ConfigFileUsed(),
		"threshold", cfg.Threshold,
		"workers", cfg.Workers)
	return nil
}

func (a *app) evaluator() (*pairs.Evaluator, error) {
	return pairs.NewEvaluator(a.evaluatorOptions())
}

func (a *app) evaluatorOptions() pairs.Options {
	return pairs.Options{
		Threshold:  a.cfg.Threshold,
		Workers:    a.cfg.Workers,
		CacheSize:  a.cfg.CacheSize,
		StateLimit: a.cfg.StateLimit,
		Logger:     logger.Logger,
	}
}
