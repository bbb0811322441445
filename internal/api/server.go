// Package api exposes the public website API and the admin API over HTTP.
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"

	"github.com/acns/backend/internal/ai"
	"github.com/acns/backend/internal/storage"
)

const maxRequestBodySize = 1 << 20 // 1MB

const aiRateLimit = 20 // requests per IP per minute on AI routes

// NewHandler returns the full HTTP API. adminToken guards the admin surface;
// when it is empty every admin request is rejected.
func NewHandler(store *storage.Store, assistant *ai.Service, adminToken string) http.Handler {
	r := chi.NewRouter()

	r.Get("/health", handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Route("/ai", func(r chi.Router) {
			r.Use(httprate.LimitByIP(aiRateLimit, time.Minute))
			r.Use(AdminDetector(adminToken))

			r.Post("/chat", handleChat(assistant))
			r.Get("/search", handleSearch(assistant))
			r.Get("/quick-actions", handleQuickActions(assistant))
			r.Post("/summarize", handleSummarize(assistant))

			r.With(BearerAuth(adminToken)).Post("/generate", handleGenerate(assistant))
		})

		registerContentRoutes(r, store)

		r.Route("/admin", func(r chi.Router) {
			r.Use(BearerAuth(adminToken))
			registerAdminRoutes(r, store)
		})
	})

	return r
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		httpError(w, http.StatusBadRequest, "invalid_request_error", "invalid request body: %v", err)
		return false
	}
	return true
}

func httpError(w http.ResponseWriter, code int, errType string, format string, args ...any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	msg := fmt.Sprintf(format, args...)
	json.NewEncoder(w).Encode(map[string]any{
		"error": map[string]any{
			"message": msg,
			"type":    errType,
		},
	})
}

// aiError maps assistant failures onto the error envelope. Anything that is
// not a known sentinel is treated as an upstream failure.
func aiError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ai.ErrInvalidInput):
		httpError(w, http.StatusBadRequest, "invalid_request_error", "%v", err)
	case errors.Is(err, ai.ErrNotConfigured):
		httpError(w, http.StatusServiceUnavailable, "configuration_error", "%v", err)
	case errors.Is(err, storage.ErrNotFound):
		httpError(w, http.StatusNotFound, "not_found_error", "%v", err)
	default:
		httpError(w, http.StatusBadGateway, "api_error", "%v", err)
	}
}

// storeError maps data layer failures for the content and admin handlers.
func storeError(w http.ResponseWriter, err error) {
	if errors.Is(err, storage.ErrNotFound) {
		httpError(w, http.StatusNotFound, "not_found_error", "%v", err)
		return
	}
	httpError(w, http.StatusInternalServerError, "server_error", "%v", err)
}
