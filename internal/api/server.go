// Package api serves person feeds over HTTP.
package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"movie_feed/internal/domain"
	"movie_feed/internal/feed"
)

const shutdownTimeout = 10 * time.Second

// FeedProvider builds the feed of one person.
type FeedProvider interface {
	Feed(ctx context.Context, personID int64, req feed.Request) (domain.Feed, error)
}

type Config struct {
	RequestTimeout time.Duration
}

type Server struct {
	feeds  FeedProvider
	logger *slog.Logger
	cfg    Config
	router *mux.Router
}

func NewServer(feeds FeedProvider, logger *slog.Logger, cfg Config) *Server {
	s := &Server{
		feeds:  feeds,
		logger: logger.With("component", "api"),
		cfg:    cfg,
		router: mux.NewRouter(),
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.router.Use(requestID, s.accessLog)

	s.router.HandleFunc("/ok", s.handleOK).Methods(http.MethodGet)

	person := s.router.PathPrefix("/person").Subrouter()
	person.Handle("/{person_id}/combined_credits", s.withTimeout(s.handleCombinedCredits)).Methods(http.MethodGet)
}

func (s *Server) withTimeout(h http.HandlerFunc) http.Handler {
	if s.cfg.RequestTimeout <= 0 {
		return h
	}
	return http.TimeoutHandler(h, s.cfg.RequestTimeout, "request timed out")
}

func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves on addr until ctx is done, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	s.logger.Info("shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http: %w", err)
	}
	return nil
}
