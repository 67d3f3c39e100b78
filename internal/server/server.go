// Package server exposes pair comparison, automaton acceptance and edit
// distance over HTTP.
package server

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

// NewMux builds the routed, logged handler for h.
func NewMux(h *Handler, logger *zap.SugaredLogger) http.Handler {
	mux := http.NewServeMux()
	h.RegisterRoutes(mux)
	return WithRequestLogging(mux, logger)
}

// Serve runs handler on ln until ctx is cancelled, then shuts down
// gracefully.
func Serve(ctx context.Context, ln net.Listener, handler http.Handler, logger *zap.SugaredLogger) error {
	srv := &http.Server{
		Handler:      handler,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		logger.Infow("listening", "addr", ln.Addr().String())
		errc <- srv.Serve(ln)
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return errors.Wrap(err, "serve")
	case <-ctx.Done():
	}

	logger.Infow("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return errors.Wrap(err, "shutdown")
	}
	return nil
}
