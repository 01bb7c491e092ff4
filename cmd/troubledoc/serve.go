package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/fwojciec/troubledoc"
	troubledocprom "github.com/fwojciec/troubledoc/prometheus"
)

// Run executes the serve command. The server runs until the command
// context is cancelled or the listener fails.
func (c *ServeCmd) Run(deps *Dependencies) error {
	srv := &http.Server{
		Addr:              c.Addr,
		Handler:           NewServeHandler(deps),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	fmt.Fprintf(deps.Stdout, "Serving search API on %s\n", c.Addr)
	deps.Logger.Info("listening", "addr", c.Addr)

	select {
	case err := <-errCh:
		return err
	case <-deps.Ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

// NewServeHandler builds the HTTP API served by the serve command:
// POST /search runs a search, GET /healthz reports liveness and
// GET /metrics exposes Prometheus metrics.
func NewServeHandler(deps *Dependencies) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /search", func(w http.ResponseWriter, r *http.Request) {
		var req troubledoc.SearchRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}

		result := deps.Searcher.Search(r.Context(), req)

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(result); err != nil {
			deps.Logger.Error("encode search response", "err", err)
		}
	})

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})

	mux.Handle("GET /metrics", troubledocprom.Handler())

	return mux
}
