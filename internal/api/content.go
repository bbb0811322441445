package api

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/acns/backend/internal/storage"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

func registerContentRoutes(r chi.Router, store *storage.Store) {
	r.Get("/settings", handleGetSettings(store))
	r.Get("/services", handleListServices(store))
	r.Get("/services/{slug}", handleGetService(store))
	r.Get("/blogs", handleListPosts(store))
	r.Get("/blogs/{slug}", handleGetPost(store))
	r.Get("/products", handleListProducts(store))
	r.Get("/products/{slug}", handleGetProduct(store))
	r.Get("/jobs", handleListJobs(store))
	r.Get("/testimonials", handleListTestimonials(store))
	r.Post("/contact", handleContact(store))
}

// pagination reads limit/offset query params, clamping to sane bounds.
func pagination(r *http.Request) (limit, offset int) {
	limit = defaultPageSize
	if v, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && v > 0 {
		limit = min(v, maxPageSize)
	}
	if v, err := strconv.Atoi(r.URL.Query().Get("offset")); err == nil && v > 0 {
		offset = v
	}
	return limit, offset
}

func handleGetSettings(store *storage.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		settings, err := store.GetSettings()
		if err != nil {
			storeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, settings)
	}
}

func handleListServices(store *storage.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, _ := pagination(r)
		services, err := store.ActiveServices(limit)
		if err != nil {
			storeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"services": services})
	}
}

func handleGetService(store *storage.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		svc, err := store.GetServiceBySlug(chi.URLParam(r, "slug"))
		if err != nil {
			storeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, svc)
	}
}

func handleListPosts(store *storage.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, offset := pagination(r)
		posts, err := store.ListPosts(limit, offset)
		if err != nil {
			storeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"posts": posts})
	}
}

func handleGetPost(store *storage.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		post, err := store.GetPostBySlug(chi.URLParam(r, "slug"))
		if err != nil {
			storeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, post)
	}
}

func handleListProducts(store *storage.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, _ := pagination(r)
		products, err := store.ActiveProducts(limit)
		if err != nil {
			storeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"products": products})
	}
}

func handleGetProduct(store *storage.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		product, err := store.GetProductBySlug(chi.URLParam(r, "slug"))
		if err != nil {
			storeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, product)
	}
}

func handleListJobs(store *storage.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, _ := pagination(r)
		jobs, err := store.ActiveJobs(limit)
		if err != nil {
			storeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"jobs": jobs})
	}
}

func handleListTestimonials(store *storage.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, _ := pagination(r)
		testimonials, err := store.ActiveTestimonials(limit)
		if err != nil {
			storeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"testimonials": testimonials})
	}
}

func handleContact(store *storage.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Name    string `json:"name"`
			Email   string `json:"email"`
			Phone   string `json:"phone"`
			Subject string `json:"subject"`
			Message string `json:"message"`
		}
		if !decodeBody(w, r, &req) {
			return
		}

		req.Name = strings.TrimSpace(req.Name)
		req.Message = strings.TrimSpace(req.Message)
		if req.Name == "" || req.Message == "" {
			httpError(w, http.StatusBadRequest, "invalid_request_error", "name and message are required")
			return
		}
		if !strings.Contains(req.Email, "@") {
			httpError(w, http.StatusBadRequest, "invalid_request_error", "a valid email is required")
			return
		}

		submission := storage.ContactSubmission{
			ID:        uuid.New().String(),
			Name:      req.Name,
			Email:     req.Email,
			Phone:     req.Phone,
			Subject:   req.Subject,
			Message:   req.Message,
			CreatedAt: time.Now().UTC(),
		}
		if err := store.SaveContact(submission); err != nil {
			storeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, map[string]any{"id": submission.ID, "status": "received"})
	}
}
