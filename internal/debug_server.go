package internal

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"room-bot/contract"
	"room-bot/domain"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var _ contract.Worker = (*DebugServer)(nil)

const shutdownTimeout = 5 * time.Second

// Snapshot is what /state reports about the running bot.
type Snapshot struct {
	LoggedIn         bool                 `json:"logged_in"`
	Account          string               `json:"account,omitempty"`
	ManagedRoom      *domain.Room         `json:"managed_room,omitempty"`
	ObservedRooms    []domain.RoomID      `json:"observed_rooms"`
	PendingEvictions []domain.EvictionKey `json:"pending_evictions"`
}

// DebugServer exposes health, prometheus metrics and the bot state over HTTP.
type DebugServer struct {
	log       *slog.Logger
	port      int
	registry  *prometheus.Registry
	state     *domain.State
	observers contract.IRegistry
	evictions contract.IEvictionScheduler
}

func NewDebugServer(log *slog.Logger, port int, registry *prometheus.Registry, state *domain.State,
	observers contract.IRegistry, evictions contract.IEvictionScheduler) *DebugServer {
	return &DebugServer{
		log:       log,
		port:      port,
		registry:  registry,
		state:     state,
		observers: observers,
		evictions: evictions,
	}
}

func (s *DebugServer) Handler() http.Handler {
	router := mux.NewRouter()
	router.HandleFunc("/health", s.health).Methods(http.MethodGet)
	router.Handle("/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{})).Methods(http.MethodGet)
	router.HandleFunc("/state", s.snapshot).Methods(http.MethodGet)
	return router
}

func (s *DebugServer) Run(ctx context.Context) error {
	server := &http.Server{
		Addr:              fmt.Sprintf("0.0.0.0:%d", s.port),
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		s.log.Info("Debug server listening", "url", fmt.Sprintf("http://localhost:%d/state", s.port))
		errChan <- server.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("debug server shutdown: %w", err)
		}
		return ctx.Err()
	case err := <-errChan:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("debug server: %w", err)
	}
}

func (s *DebugServer) health(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = fmt.Fprint(w, "ok")
}

func (s *DebugServer) snapshot(w http.ResponseWriter, _ *http.Request) {
	snapshot := Snapshot{
		ObservedRooms:    s.observers.Observed(),
		PendingEvictions: s.evictions.Pending(),
	}
	if session, ok := s.state.Session(); ok {
		snapshot.LoggedIn = true
		snapshot.Account = session.Account.Name
	}
	if room, ok := s.state.ManagedRoom(); ok {
		snapshot.ManagedRoom = &room
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(snapshot); err != nil {
		s.log.Warn("Cannot encode state", "error", err)
	}
}
