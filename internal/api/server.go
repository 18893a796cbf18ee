// Package api exposes the pixelbar LED controller over HTTP.
//
// Two surfaces are served: the v1 API used by the PixelLight touchscreen
// (named groups, channel values 0-100) and the more compact v2 API used by
// PixelDash (hex color tokens, same format as the CLI arguments).
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/pixelbar/pixeld/internal/controller"
	"github.com/pixelbar/pixeld/internal/ledger"
)

// Server is the HTTP facade in front of the Controller.
type Server struct {
	addr       string
	ctrl       *controller.Controller
	ledger     *ledger.Ledger // nil when history is disabled
	httpServer *http.Server
}

// NewServer creates a new API server. ldg may be nil when the send-history
// ledger is disabled.
func NewServer(host string, port int, ctrl *controller.Controller, ldg *ledger.Ledger) *Server {
	return &Server{
		addr:   fmt.Sprintf("%s:%d", host, port),
		ctrl:   ctrl,
		ledger: ldg,
	}
}

// Handler builds the route table.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/v1/get", s.handleGetStateV1)
	mux.HandleFunc("POST /api/v1/set", s.handleSetStateV1)
	mux.HandleFunc("GET /api/v2", s.handleGetStateV2)
	mux.HandleFunc("POST /api/v2", s.handleSetStateV2)
	mux.HandleFunc("PATCH /api/v2", s.handlePatchStateV2)
	mux.HandleFunc("GET /api/v2/history", s.handleHistory)

	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
	})
	mux.HandleFunc("/ready", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
	})

	return mux
}

// Run starts the API server. It blocks until the context is cancelled.
func (s *Server) Run(ctx context.Context, shutdownTimeout time.Duration) error {
	s.httpServer = &http.Server{
		Addr:    s.addr,
		Handler: s.Handler(),
	}

	log.Info().Str("addr", s.addr).Msg("Starting API server")

	// Handle graceful shutdown
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("API server shutdown error")
		}
	}()

	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}

	return nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("Failed to encode response")
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

// writeApplyError maps controller errors onto HTTP statuses: validation
// failures are the client's fault, transport failures are a gateway problem.
func writeApplyError(w http.ResponseWriter, err error) {
	var te *controller.TransportError
	if errors.As(err, &te) {
		writeJSON(w, http.StatusBadGateway, errorResponse{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
}
