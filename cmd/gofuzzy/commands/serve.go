package commands

import (
	"net"
	"os"
	"os/signal"
	"runtime"
	"strconv"
	"syscall"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"GoFuzzy/internal/config"
	"GoFuzzy/internal/logger"
	"GoFuzzy/internal/server"
)

func newServeCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the comparison API over HTTP",
		Long: `Serve exposes POST /match, /compare, /accepts and /distance plus the
GET /health and /ready probes. Requests may override the threshold up to
--max-threshold. The server stops cleanly on SIGINT or SIGTERM.`,
		Args: cobra.NoArgs,
		RunE: a.runServe,
	}
	f := cmd.Flags()
	f.IntP("port", "p", 8080, "port to listen on")
	f.Int("max-threshold", 3, "largest threshold a request may ask for")
	f.Int64("max-body-bytes", 1<<20, "request body limit")
	f.Int("max-runes", 256, "longest word a request may name, in runes")
	f.Int("workers", runtime.NumCPU(), "pairs compared concurrently per request")
	f.Int("cache-size", 256, "automata kept per threshold")
	f.Int("state-limit", 1<<16, "maximum subsets per automaton, 0 for none")
	return cmd
}

func (a *app) runServe(cmd *cobra.Command, _ []string) error {
	if a.cfg.Server.MaxThreshold < a.cfg.Threshold {
		return errors.WithHintf(
			errors.Wrapf(config.ErrInvalidConfig, "server.max_threshold %d", a.cfg.Server.MaxThreshold),
			"server.max_threshold must be at least threshold (%d)", a.cfg.Threshold)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log := logger.Logger.Named("server")
	opts := a.evaluatorOptions()
	opts.MaxPatternRunes = a.cfg.Server.MaxPatternRunes
	mgr := server.NewManager(opts, a.cfg.Server.MaxThreshold, log)
	h := server.NewHandler(mgr, a.cfg.Server.MaxBodyBytes, Version, log)

	addr := net.JoinHostPort("", strconv.Itoa(a.cfg.Server.Port))
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return errors.Wrapf(err, "listen on %s", addr)
	}
	log.Infow("starting gofuzzy",
		"version", Version,
		"threshold", a.cfg.Threshold,
		"max_threshold", a.cfg.Server.MaxThreshold,
		"config", a.v.ConfigFileUsed())
	return server.Serve(ctx, ln, server.NewMux(h, log), log)
}
