// Package adminapi is the read-only HTTP API over the pairing audit
// trail: Bearer-token gated pairing history plus a health endpoint.
package adminapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"golang.org/x/net/http2"

	"github.com/dalbodeule/hopgate/internal/audit"
	"github.com/dalbodeule/hopgate/internal/logging"
)

// PairingReader is the subset of *audit.PairingStore the admin API
// needs to serve pairing history.
type PairingReader interface {
	List(ctx context.Context, limit int) ([]audit.Record, error)
	Get(ctx context.Context, id string) (audit.Record, error)
}

// Handler serves /api/v1/admin/pairings and /healthz.
type Handler struct {
	Logger      logging.Logger
	AdminAPIKey string
	Store       PairingReader
}

// NewHandler builds a Handler. An empty adminAPIKey rejects every
// authenticated route, failing closed.
func NewHandler(logger logging.Logger, adminAPIKey string, store PairingReader) *Handler {
	return &Handler{
		Logger:      logger.With(logging.Fields{"component": "admin_api"}),
		AdminAPIKey: strings.TrimSpace(adminAPIKey),
		Store:       store,
	}
}

// RegisterRoutes registers the admin API's routes on mux.
//   - GET /api/v1/admin/pairings
//   - GET /api/v1/admin/pairings/{id}
//   - GET /healthz
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.Handle("/api/v1/admin/pairings", h.authMiddleware(http.HandlerFunc(h.handleList)))
	mux.Handle("/api/v1/admin/pairings/", h.authMiddleware(http.HandlerFunc(h.handleGet)))
	mux.HandleFunc("/healthz", h.handleHealth)
}

// NewHTTPServer builds an H1/H2 http.Server serving the admin API.
func NewHTTPServer(addr string, handler http.Handler) *http.Server {
	srv := &http.Server{
		Addr:    addr,
		Handler: handler,
	}
	_ = http2.ConfigureServer(srv, &http2.Server{})
	return srv
}

func (h *Handler) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !h.authenticate(r) {
			h.writeJSON(w, http.StatusUnauthorized, map[string]any{
				"success": false,
				"error":   "unauthorized",
			})
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (h *Handler) authenticate(r *http.Request) bool {
	if h.AdminAPIKey == "" {
		return false
	}
	auth := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if !strings.HasPrefix(auth, prefix) {
		return false
	}
	token := strings.TrimSpace(strings.TrimPrefix(auth, prefix))
	return token == h.AdminAPIKey
}

type listResponse struct {
	Success  bool          `json:"success"`
	Pairings []audit.Record `json:"pairings,omitempty"`
	Error    string        `json:"error,omitempty"`
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		h.writeMethodNotAllowed(w)
		return
	}

	records, err := h.Store.List(r.Context(), 100)
	if err != nil {
		h.Logger.Error("failed to list pairings", logging.Fields{"error": err.Error()})
		h.writeJSON(w, http.StatusInternalServerError, listResponse{Success: false, Error: "internal error"})
		return
	}

	h.writeJSON(w, http.StatusOK, listResponse{Success: true, Pairings: records})
}

type getResponse struct {
	Success bool         `json:"success"`
	Pairing *audit.Record `json:"pairing,omitempty"`
	Error   string       `json:"error,omitempty"`
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		h.writeMethodNotAllowed(w)
		return
	}

	id := strings.TrimPrefix(r.URL.Path, "/api/v1/admin/pairings/")
	if id == "" {
		h.writeJSON(w, http.StatusBadRequest, getResponse{Success: false, Error: "id is required"})
		return
	}

	record, err := h.Store.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, audit.ErrNotFound) {
			h.writeJSON(w, http.StatusNotFound, getResponse{Success: false, Error: "not found"})
			return
		}
		h.Logger.Error("failed to get pairing", logging.Fields{"id": id, "error": err.Error()})
		h.writeJSON(w, http.StatusInternalServerError, getResponse{Success: false, Error: "internal error"})
		return
	}

	h.writeJSON(w, http.StatusOK, getResponse{Success: true, Pairing: &record})
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]any{"success": true, "status": "ok"})
}

func (h *Handler) writeMethodNotAllowed(w http.ResponseWriter) {
	h.writeJSON(w, http.StatusMethodNotAllowed, map[string]any{
		"success": false,
		"error":   "method not allowed",
	})
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.Logger.Error("failed to write json response", logging.Fields{"error": err.Error()})
	}
}
