package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"
)

const shutdownTimeout = 5 * time.Second

// NewRouter wires the game endpoints.
func NewRouter(logger *slog.Logger, games gameUseCase) *mux.Router {
	handler := NewHandlers(logger, games)

	router := mux.NewRouter()
	router.HandleFunc("/ping", handler.PingHandler).Methods(http.MethodGet)

	api := router.PathPrefix("/games").Subrouter()
	api.HandleFunc("", handler.NewGame).Methods(http.MethodPost)
	api.HandleFunc("/{id}", handler.GetGame).Methods(http.MethodGet)
	api.HandleFunc("/{id}", handler.EndGame).Methods(http.MethodDelete)
	api.HandleFunc("/{id}/drop", handler.DropToken).Methods(http.MethodPost)
	api.HandleFunc("/{id}/restart", handler.Restart).Methods(http.MethodPost)
	api.HandleFunc("/{id}/cells/{row:-?[0-9]+}/{col:-?[0-9]+}", handler.GetCell).Methods(http.MethodGet)

	return router
}

// Start - serves the REST API until ctx is canceled.
func Start(ctx context.Context, logger *slog.Logger, port string, games gameUseCase) error {
	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      NewRouter(logger, games),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("HTTP server shutdown failed", "error", err)
		}
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}
