package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/icmixed/league-cli/internal/store"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the cleaned dataset and its validation report",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		st, err := store.Open(ctx, cfg.Store.Driver, cfg.Store.DSN)
		if err != nil {
			return err
		}
		defer st.Close()

		if err := st.Migrate(ctx); err != nil {
			return err
		}

		port := servePort
		if port == 0 {
			port = cfg.Server.Port
		}

		srv := &http.Server{
			Addr:    fmt.Sprintf(":%d", port),
			Handler: newServeMux(st),
		}

		zap.L().Info("starting server", zap.Int("port", port))
		return runServer(ctx, srv)
	},
}

const shutdownTimeout = 10 * time.Second

// runServer serves until ctx is cancelled, then drains in-flight requests
// before returning. The drain uses a fresh timeout context because ctx is
// already cancelled by the time shutdown starts.
func runServer(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return eris.Wrap(err, "server listen")
	case <-ctx.Done():
	}

	zap.L().Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return eris.Wrap(err, "server shutdown")
	}
	if err := <-errCh; err != nil {
		return eris.Wrap(err, "server listen")
	}
	return nil
}

func newServeMux(st store.Store) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	mux.HandleFunc("GET /report", func(w http.ResponseWriter, r *http.Request) {
		run, err := st.LatestRun(r.Context())
		if errors.Is(err, store.ErrNotFound) {
			http.Error(w, `{"error":"no ingest runs yet"}`, http.StatusNotFound)
			return
		}
		if err != nil {
			zap.L().Error("latest run lookup failed", zap.Error(err))
			http.Error(w, `{"error":"internal"}`, http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, run)
	})

	mux.HandleFunc("GET /matches", func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		filter := store.MatchFilter{
			RunID:    q.Get("run_id"),
			Division: q.Get("division"),
			Team:     q.Get("team"),
		}
		if raw := q.Get("limit"); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil || n < 1 {
				http.Error(w, `{"error":"limit must be a positive integer"}`, http.StatusBadRequest)
				return
			}
			filter.Limit = n
		}

		// Default to the latest run when none is named, so the endpoint
		// returns one coherent batch.
		if filter.RunID == "" {
			run, err := st.LatestRun(r.Context())
			if errors.Is(err, store.ErrNotFound) {
				http.Error(w, `{"error":"no ingest runs yet"}`, http.StatusNotFound)
				return
			}
			if err != nil {
				zap.L().Error("latest run lookup failed", zap.Error(err))
				http.Error(w, `{"error":"internal"}`, http.StatusInternalServerError)
				return
			}
			filter.RunID = run.ID
		}

		matches, err := st.ListMatches(r.Context(), filter)
		if err != nil {
			zap.L().Error("list matches failed", zap.Error(err))
			http.Error(w, `{"error":"internal"}`, http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"run_id":  filter.RunID,
			"count":   len(matches),
			"matches": matches,
		})
	})

	return mux
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "listen port (default from config)")
	rootCmd.AddCommand(serveCmd)
}
