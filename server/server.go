// Package server wires the lr1construct HTTP API together: a chi router
// mounting the api.API handlers behind request-ID and panic-recovery
// middleware, in the manner of dekarrin/tunaq's server.go/cmd/tqserver
// wiring but without any of the account/session/game-world state that
// server carried.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/corvidlabs/lr1construct/server/api"
	"github.com/corvidlabs/lr1construct/server/middle"
	"github.com/go-chi/chi/v5"
)

// Server is the lr1construct HTTP server: a configured router plus the
// underlying http.Server used to run it.
type Server struct {
	router chi.Router
	http   *http.Server
}

// New builds a Server listening on addr. ReadHeaderTimeout/WriteTimeout are
// conservative defaults (spec does not mandate any; picked to bound a
// hung client without affecting normal parser-construction requests, which
// complete in well under a second even for large grammars).
func New(addr string) Server {
	r := chi.NewRouter()
	r.Use(middle.RequestID())
	r.Use(middle.DontPanic())

	a := api.API{}
	r.Route(api.PathPrefix, func(r chi.Router) {
		r.Get("/info", a.HTTPGetInfo())
		r.Post("/parse", a.HTTPPostParse())
	})

	return Server{
		router: r,
		http: &http.Server{
			Addr:              addr,
			Handler:           r,
			ReadHeaderTimeout: 10 * time.Second,
			WriteTimeout:      30 * time.Second,
		},
	}
}

// ListenAndServe runs the server until it errors or ctx is canceled, in
// which case it is shut down gracefully.
func (s Server) ListenAndServe(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return s.http.Shutdown(shutdownCtx)
	}
}
