package main

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	httpadapter "svw.info/anagram/internal/adapters/http"
)

// statusWriter captures HTTP status and bytes written.
type statusWriter struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	n, err := w.ResponseWriter.Write(b)
	w.bytes += n
	return n, err
}

// requestLogger logs method, path, status, bytes and duration per request.
func requestLogger(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w}
		next.ServeHTTP(sw, r)
		logger.Info("http",
			"method", r.Method,
			"path", r.URL.Path,
			"status", sw.status,
			"bytes", sw.bytes,
			"dur", time.Since(start).Round(time.Millisecond),
		)
	})
}

func newServeCmd(a *app) *cobra.Command {
	var addr, solverKind string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the JSON API and Prometheus metrics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr != "" {
				a.cfg.Addr = addr
			}
			if solverKind != "" {
				a.cfg.Solver = solverKind
			}
			uc, err := a.service()
			if err != nil {
				return err
			}
			mux := http.NewServeMux()
			httpadapter.New(uc, a.cfg.MaxAttempts).Register(mux)

			srv := &http.Server{
				Addr:              a.cfg.Addr,
				Handler:           requestLogger(a.logger, mux),
				ReadHeaderTimeout: 5 * time.Second,
			}
			a.logger.Info("listening", "addr", a.cfg.Addr, "data", a.cfg.OutputDir, "solver", a.cfg.Solver)
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				return err
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides config)")
	cmd.Flags().StringVar(&solverKind, "solver", "", "decomposer to use: indexed|scan")
	return cmd
}
