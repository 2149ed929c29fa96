package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/IliaW/partner-evaluator/internal/evaluation"
)

type Server struct {
	router    *http.ServeMux
	evaluator evaluation.PartnerEvaluator
	log       *slog.Logger
}

func NewServer(evaluator evaluation.PartnerEvaluator, log *slog.Logger) *Server {
	server := &Server{
		router:    http.NewServeMux(),
		evaluator: evaluator,
		log:       log,
	}
	server.router.HandleFunc("GET /health", server.handleHealth)
	server.router.HandleFunc("POST /predict", server.handlePredict)
	server.router.HandleFunc("GET /{$}", server.handleIndex)
	server.router.Handle("GET /static/", staticHandler())
	return server
}

func (s *Server) Handler() http.Handler {
	return s.withCORS(s.withLogging(s.router))
}

// Start serves on addr until ctx is done, then shuts down gracefully.
func (s *Server) Start(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	errChan := make(chan error, 1)
	go func() {
		s.log.Info("starting http server.", slog.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
		close(errChan)
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
	}
	s.log.Info("stopping http server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "*")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.log.Debug("request served.", slog.String("method", r.Method), slog.String("path", r.URL.Path),
			slog.Int("status", rec.status), slog.Int64("time_ms", time.Since(start).Milliseconds()))
	})
}
